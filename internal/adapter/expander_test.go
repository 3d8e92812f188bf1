package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestExpand(t *testing.T) {
	e := NewExpanderForTesting(zaptest.NewLogger(t))

	got, err := e.Expand("{person} visits {landmark} in {region}.", map[string]string{
		"person":   "Priya",
		"landmark": "Marina Beach",
		"region":   "Tamil Nadu",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya visits Marina Beach in Tamil Nadu.", got)
}

func TestExpandRepeatedPlaceholder(t *testing.T) {
	e := NewExpanderForTesting(zaptest.NewLogger(t))

	got, err := e.Expand("{person} and {person} again", map[string]string{"person": "Raj"})
	require.NoError(t, err)
	assert.Equal(t, "Raj and Raj again", got)
}

func TestExpandMissingVariable(t *testing.T) {
	e := NewExpanderForTesting(zaptest.NewLogger(t))

	got, err := e.Expand("{person} eats {local_dish}", map[string]string{"person": "Raj"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local_dish")
	assert.Empty(t, got)
}

func TestExpandNoPlaceholders(t *testing.T) {
	e := NewExpanderForTesting(zaptest.NewLogger(t))

	got, err := e.Expand("plain text", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text", got)
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		template string
		want     []string
	}{
		{"{a} {b} {a}", []string{"a", "b"}},
		{"no tokens", nil},
		{"dangling {brace", nil},
		{"empty {} token", nil},
		{"{festival} festival in {region}", []string{"festival", "region"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, placeholders(tt.template), tt.template)
	}
}

func TestTemplateBanksComplete(t *testing.T) {
	for subject, bank := range subjectTemplates {
		for _, level := range []string{"low", "medium", "high"} {
			assert.NotEmpty(t, bank[level], "%s/%s bank is empty", subject, level)
		}
	}
}
