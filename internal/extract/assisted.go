package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/lang"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/llm"
	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// slotPayload is the structured shape the assisted tier asks the model for.
// All fields are optional; the prompt forbids fields not present in the
// utterance.
type slotPayload struct {
	Destinations []struct {
		Country string `json:"country"`
		Region  string `json:"region"`
	} `json:"destinations"`
	Activities   []string `json:"activities"`
	DurationDays int      `json:"duration_days"`
	Month        string   `json:"month"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
}

// validateSlotPayload is the schema validator for ExtractJSON.
func validateSlotPayload(p slotPayload) error {
	if p.DurationDays < 0 {
		return fmt.Errorf("duration_days must be non-negative, got %d", p.DurationDays)
	}
	if p.Month != "" {
		if _, ok := lang.MonthAbbrev(p.Month); !ok {
			return fmt.Errorf("unknown month %q", p.Month)
		}
	}
	for _, d := range []string{p.StartDate, p.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("date %q is not ISO-8601", d)
		}
	}
	return nil
}

// assisted asks the completion service for slots present in the utterance
// and converts the response into a partial context. Any failure returns an
// error for the caller to swallow.
func assisted(ctx context.Context, client llm.Client, utterance string, current *trip.Context) (*trip.Context, error) {
	resp, err := client.Complete(ctx, llm.CompleteRequest{
		Task:         llm.TaskSlotExtract,
		SystemPrompt: buildSlotSystemPrompt(),
		UserPrompt:   buildSlotUserPrompt(utterance, current),
	})
	if err != nil {
		return nil, fmt.Errorf("assisted extraction: %w", err)
	}

	payload, err := llm.ExtractJSON(resp.Text, validateSlotPayload)
	if err != nil {
		return nil, fmt.Errorf("assisted extraction: %w", err)
	}

	return payloadToContext(payload), nil
}

// payloadToContext canonicalizes the model's answer into a partial context.
func payloadToContext(p slotPayload) *trip.Context {
	c := trip.NewContext()
	for _, d := range p.Destinations {
		if d.Country == "" {
			continue
		}
		c.AddDestination(trip.Destination{
			Country: lang.CanonicalCountry(d.Country),
			Region:  lang.Fold(d.Region),
		})
	}
	c.AddActivities(p.Activities)
	if p.DurationDays >= 1 {
		c.DurationDays = p.DurationDays
	}
	if p.StartDate != "" {
		c.SetDateRange(p.StartDate, p.EndDate)
	} else if p.Month != "" {
		if m, ok := lang.MonthAbbrev(p.Month); ok {
			c.SetMonth(m)
		}
	}
	return c
}
