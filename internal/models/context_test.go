package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var ctx Context
	ctx.ApplyDefaults()

	assert.Equal(t, 5, ctx.User.Grade)
	assert.Equal(t, "en", ctx.User.PreferredLanguage)
	assert.Equal(t, "Punjab", ctx.User.Region)
	assert.Equal(t, "auditory", ctx.User.LearningStyle)
	assert.NotNil(t, ctx.User.CulturalPreferences)
	assert.Equal(t, "General", ctx.Content.Subject)
	assert.Equal(t, "medium", ctx.Content.Difficulty)
	assert.Equal(t, "high", ctx.Content.AdaptationLevel)
}

func TestApplyDefaultsTreatsGradeZeroAsUnset(t *testing.T) {
	ctx := Context{User: UserContext{Grade: 0}}
	ctx.ApplyDefaults()
	assert.Equal(t, DefaultGrade, ctx.User.Grade)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	ctx := Context{
		User:    UserContext{Grade: 8, PreferredLanguage: "ta", Region: "Tamil Nadu"},
		Content: ContentContext{Subject: "Math", Difficulty: "hard", AdaptationLevel: "low"},
	}
	ctx.ApplyDefaults()

	assert.Equal(t, 8, ctx.User.Grade)
	assert.Equal(t, "ta", ctx.User.PreferredLanguage)
	assert.Equal(t, "Tamil Nadu", ctx.User.Region)
	assert.Equal(t, "Math", ctx.Content.Subject)
	assert.Equal(t, "hard", ctx.Content.Difficulty)
	assert.Equal(t, "low", ctx.Content.AdaptationLevel)
}

func TestDefaultContextDecodeKeepsExplicitFalse(t *testing.T) {
	// local_examples defaults to true, but an explicit false in the body
	// must survive decoding on top of the defaults.
	ctx := DefaultContext()
	require.True(t, ctx.User.LocalExamples)

	body := []byte(`{"user":{"grade":3,"local_examples":false}}`)
	require.NoError(t, json.Unmarshal(body, &ctx))

	assert.Equal(t, 3, ctx.User.Grade)
	assert.False(t, ctx.User.LocalExamples)
	assert.Equal(t, "Punjab", ctx.User.Region)
}

func TestValidDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"easy", true},
		{"medium", true},
		{"hard", true},
		{"extreme", false},
		{"", false},
		{"Medium", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidDifficulty(tt.in), tt.in)
	}
}
