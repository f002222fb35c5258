package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/lang"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// runTripForm fills the missing trip fields through an interactive form.
// Fields the context already carries are pre-filled and can be edited.
func runTripForm(tc *trip.Context) error {
	var country, region string
	if len(tc.Destinations) > 0 {
		country = tc.Destinations[0].Country
		region = tc.Destinations[0].Region
	}
	month := tc.Month
	days := ""
	if tc.DurationDays > 0 {
		days = strconv.Itoa(tc.DurationDays)
	}
	activities := strings.Join(tc.Activities, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Country").
				Placeholder("Vietnam").
				Value(&country),
			huh.NewInput().
				Title("Region (optional)").
				Value(&region),
			huh.NewInput().
				Title("Travel month").
				Placeholder("July").
				Value(&month).
				Validate(validateOptionalMonth),
			huh.NewInput().
				Title("Duration in days").
				Placeholder("21").
				Value(&days).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Activities (comma-separated)").
				Placeholder("hiking, diving").
				Value(&activities),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("trip form: %w", err)
	}

	applyFormValues(tc, country, region, month, days, activities)
	return nil
}

// applyFormValues writes the form answers back into the context. The form
// edits the primary leg in place; extra legs from earlier input survive.
func applyFormValues(tc *trip.Context, country, region, month, days, activities string) {
	country = strings.TrimSpace(country)
	if country != "" {
		d := trip.Destination{Country: country, Region: strings.TrimSpace(region)}
		if len(tc.Destinations) == 0 {
			tc.AddDestination(d)
		} else {
			tc.Destinations[0] = d
		}
	}

	if m := strings.TrimSpace(month); m != "" {
		tc.SetMonth(m)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(days)); err == nil && n >= 1 {
		tc.DurationDays = n
	}
	if a := strings.TrimSpace(activities); a != "" {
		tc.Activities = nil
		tc.AddActivities(strings.Split(a, ","))
	}
}

func validateOptionalMonth(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, ok := lang.MonthAbbrev(s); !ok {
		return fmt.Errorf("not a recognizable month")
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n < 1 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}
