package trip

import (
	"strconv"
	"strings"
)

// Normalize builds a Context from a loosely-typed payload, typically the
// decoded JSON body the transport layer hands over. It never fails: fields
// that are absent or malformed stay at their unknown sentinel, and a payload
// that is unusable altogether yields an empty context.
//
// A legacy singular "destination" (or bare "country"/"region" pair) is
// promoted into Destinations exactly once; Destinations stays the single
// source of truth afterwards. Normalizing an already-normalized payload is a
// no-op.
func Normalize(raw map[string]any) *Context {
	c := NewContext()
	if raw == nil {
		return c
	}

	for _, d := range asList(raw["destinations"]) {
		if m, ok := d.(map[string]any); ok {
			c.AddDestination(Destination{
				Country: asString(m["country"]),
				Region:  asString(m["region"]),
			})
		}
	}

	// Legacy singular destination: promote into the sequence once.
	if legacy, ok := raw["destination"].(map[string]any); ok {
		c.AddDestination(Destination{
			Country: asString(legacy["country"]),
			Region:  asString(legacy["region"]),
		})
	} else if country := asString(raw["country"]); country != "" {
		c.AddDestination(Destination{
			Country: country,
			Region:  asString(raw["region"]),
		})
	}

	c.AddActivities(splitActivities(raw["activities"]))

	if days, ok := asInt(firstPresent(raw, "durationDays", "duration_days", "days")); ok && days >= 1 {
		c.DurationDays = days
	}

	period, _ := raw["period"].(map[string]any)
	start := asString(firstPresent(raw, "startDate", "start_date"))
	end := asString(firstPresent(raw, "endDate", "end_date"))
	if period != nil {
		if s := asString(firstPresent(period, "startDate", "start_date")); s != "" {
			start = s
			end = asString(firstPresent(period, "endDate", "end_date"))
		}
		if m := asString(period["month"]); m != "" && start == "" {
			c.SetMonth(m)
		}
	}
	if start != "" {
		c.SetDateRange(start, end)
	} else if c.Month == "" {
		if m := asString(raw["month"]); m != "" {
			c.SetMonth(m)
		}
	}

	if prefs, ok := raw["preferences"].(map[string]any); ok {
		for k, v := range prefs {
			if s := asString(v); s != "" {
				c.Preferences[k] = s
			}
		}
	}

	return c
}

// splitActivities accepts either a comma-separated string or a list of
// strings and returns the raw tokens.
func splitActivities(v any) []string {
	switch val := v.(type) {
	case string:
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				out = append(out, t)
			}
		}
		return out
	case []any:
		var out []string
		for _, item := range val {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return val
	}
	return nil
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

func asString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i, true
		}
	}
	return 0, false
}
