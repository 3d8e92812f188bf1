package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/edumorph/mcp-service/internal/models"
)

func adaptRequest(subject, level string) models.AdaptRequest {
	return models.AdaptRequest{
		LessonContent: "Original lesson content.",
		Context: models.Context{
			User: models.UserContext{
				Grade:             6,
				PreferredLanguage: "ta",
				Region:            "Tamil Nadu",
			},
			Content: models.ContentContext{
				Subject:         subject,
				AdaptationLevel: level,
			},
		},
	}
}

func TestAdaptHighLevel(t *testing.T) {
	a := NewForTesting(zaptest.NewLogger(t), 42)

	resp := a.Adapt(adaptRequest("Math", "high"))

	assert.Equal(t, 0.9, resp.PersonalizationScore)
	assert.Equal(t, "High cultural adaptation", resp.PersonalizationLabel)
	assert.Equal(t, "ta", resp.Language)
	assert.Equal(t, "Tamil Nadu", resp.Region)
	assert.Equal(t, 6, resp.Grade)

	require.NotEqual(t, "Original lesson content.", resp.AdaptedText)
	assert.Contains(t, resp.AdaptedText, "Tamil Nadu")
	assert.NotContains(t, resp.AdaptedText, "{", "all placeholders must be filled")
}

func TestAdaptNoneLevelPassthrough(t *testing.T) {
	a := NewForTesting(zaptest.NewLogger(t), 1)

	resp := a.Adapt(adaptRequest("Math", "none"))

	assert.Equal(t, "Original lesson content.", resp.AdaptedText)
	assert.Equal(t, 0.0, resp.PersonalizationScore)
	assert.Equal(t, "No personalization", resp.PersonalizationLabel)
}

func TestAdaptInvalidLevelCoercedToMedium(t *testing.T) {
	a := NewForTesting(zaptest.NewLogger(t), 1)

	resp := a.Adapt(adaptRequest("Science", "extreme"))

	assert.Equal(t, 0.6, resp.PersonalizationScore)
	assert.Equal(t, "Medium cultural adaptation", resp.PersonalizationLabel)
}

func TestAdaptUnknownSubjectUsesGeneralBank(t *testing.T) {
	a := NewForTesting(zaptest.NewLogger(t), 7)
	b := NewForTesting(zaptest.NewLogger(t), 7)

	// "general" shares the math bank, so an unknown subject and an explicit
	// "general" produce identical output under the same seed.
	unknown := a.Adapt(adaptRequest("Astrology", "medium"))
	general := b.Adapt(adaptRequest("general", "medium"))

	assert.Equal(t, general.AdaptedText, unknown.AdaptedText)
}

func TestAdaptDeterministicUnderSeed(t *testing.T) {
	a := NewForTesting(zaptest.NewLogger(t), 99)
	b := NewForTesting(zaptest.NewLogger(t), 99)

	assert.Equal(t, a.Adapt(adaptRequest("history", "high")), b.Adapt(adaptRequest("history", "high")))
}

func TestAdaptAllSubjectsAndLevels(t *testing.T) {
	subjects := []string{"math", "science", "history", "language", "general"}
	levels := []string{"low", "medium", "high"}

	a := NewForTesting(zaptest.NewLogger(t), 1234)
	for _, subject := range subjects {
		for _, level := range levels {
			resp := a.Adapt(adaptRequest(subject, level))
			assert.NotContains(t, resp.AdaptedText, "{", "%s/%s left a placeholder unfilled", subject, level)
			assert.NotEmpty(t, resp.AdaptedText, "%s/%s", subject, level)
		}
	}
}

func TestAdaptDefaultsEmptyContext(t *testing.T) {
	a := NewForTesting(zaptest.NewLogger(t), 5)

	resp := a.Adapt(models.AdaptRequest{LessonContent: "Lesson."})

	// Defaults: grade 5, en, Punjab, subject General, level high.
	assert.Equal(t, 5, resp.Grade)
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "Punjab", resp.Region)
	assert.Equal(t, 0.9, resp.PersonalizationScore)
	assert.Equal(t, "High cultural adaptation", resp.PersonalizationLabel)
}

func TestSampleVariablesKnownRegion(t *testing.T) {
	a := NewForTesting(zaptest.NewLogger(t), 3)

	vars := sampleVariables(a.rng, "Punjab", "math")

	assert.Equal(t, "Punjab", vars["region"])
	assert.Equal(t, "Punjabi", vars["language"])
	assert.Equal(t, "rupees", vars["currency"])
	assert.Contains(t, []string{"Golden Temple", "Jallianwala Bagh", "Wagah Border"}, vars["landmark"])
	assert.Equal(t, "Punjab City", vars["city1"])
	assert.Equal(t, "Delhi", vars["city2"])
}

func TestSampleVariablesUnknownRegionUsesDollars(t *testing.T) {
	a := NewForTesting(zaptest.NewLogger(t), 3)

	vars := sampleVariables(a.rng, "Atlantis", "math")

	assert.Equal(t, "dollars", vars["currency"])
	assert.Equal(t, "English", vars["language"])
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "High", capitalize("high"))
	assert.Equal(t, "", capitalize(""))
}
