package extract

import (
	"encoding/json"
	"fmt"

	"github.com/jiddewiegertjes-stack/packlist-bot-sub000/internal/trip"
)

// buildSlotSystemPrompt instructs the model to return only slot values that
// are explicitly present in the new utterance, as bare JSON.
func buildSlotSystemPrompt() string {
	return `You extract travel details from a user message. The message may be in English or Dutch.

Return ONLY a JSON object, no prose, no markdown fences, with this shape:
{
  "destinations": [{"country": "...", "region": "..."}],
  "activities": ["..."],
  "duration_days": 0,
  "month": "...",
  "start_date": "YYYY-MM-DD",
  "end_date": "YYYY-MM-DD"
}

Rules:
- Include ONLY fields that are explicitly present in the user message. Omit everything else.
- Country names in English. Activities as single lowercase English words.
- "month" is a month name; use it only when no explicit dates are given.
- duration_days must be a whole number of days; convert weeks to days.
- Never guess. An omitted field is better than a wrong one.`
}

// buildSlotUserPrompt pairs the known context with the new utterance so the
// model does not re-extract already-known fields.
func buildSlotUserPrompt(utterance string, current *trip.Context) string {
	known := "{}"
	if current != nil {
		if b, err := json.Marshal(contextSummary(current)); err == nil {
			known = string(b)
		}
	}
	return fmt.Sprintf("Already known context (do not repeat): %s\n\nUser message: %s", known, utterance)
}

func contextSummary(c *trip.Context) map[string]any {
	out := map[string]any{}
	if len(c.Destinations) > 0 {
		dests := make([]map[string]string, 0, len(c.Destinations))
		for _, d := range c.Destinations {
			dests = append(dests, map[string]string{"country": d.Country, "region": d.Region})
		}
		out["destinations"] = dests
	}
	if len(c.Activities) > 0 {
		out["activities"] = c.Activities
	}
	if c.DurationDays > 0 {
		out["duration_days"] = c.DurationDays
	}
	if c.Month != "" {
		out["month"] = c.Month
	}
	if c.StartDate != "" {
		out["start_date"] = c.StartDate
		out["end_date"] = c.EndDate
	}
	return out
}
