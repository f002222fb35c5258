package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Month        string `json:"month"`
	DurationDays int    `json:"duration_days"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"month":"Jul","duration_days":14}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Jul", result.Month)
	assert.Equal(t, 14, result.DurationDays)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"month\":\"Nov\",\"duration_days\":7}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Nov", result.Month)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := "Here is what I found:\n{\"month\":\"May\",\"duration_days\":10}\nLet me know if you need more."
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, result.DurationDays)
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	type nested struct {
		Destinations []map[string]string `json:"destinations"`
	}
	raw := `{"destinations":[{"country":"Vietnam","region":"north"}]}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	require.Len(t, result.Destinations, 1)
	assert.Equal(t, "Vietnam", result.Destinations[0]["country"])
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"month":"Jul{nope}","duration_days":1}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Jul{nope}", result.Month)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload]("I have no idea.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"month":"Jul", broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p testPayload) error {
		if p.DurationDays < 0 {
			return fmt.Errorf("duration must be non-negative, got %d", p.DurationDays)
		}
		return nil
	}
	_, err := ExtractJSON(`{"month":"Jul","duration_days":-3}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ValidatorAccepts(t *testing.T) {
	validator := func(p testPayload) error { return nil }
	result, err := ExtractJSON(`{"month":"Jul","duration_days":3}`, validator)
	require.NoError(t, err)
	assert.Equal(t, 3, result.DurationDays)
}
