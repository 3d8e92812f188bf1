package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edumorph/mcp-service/internal/models"
	"github.com/edumorph/mcp-service/internal/personalization"
)

func TestBuild(t *testing.T) {
	ctx := models.Context{
		User: models.UserContext{
			Grade:             4,
			PreferredLanguage: "hi",
			Region:            "Punjab",
		},
		Content: models.ContentContext{
			Subject:    "Science",
			Difficulty: "medium",
		},
	}
	res := personalization.Result{Score: 0.9, Label: "engaged"}

	got := Build(ctx, "Water boils at 100 degrees.", res)

	want := "Translate and culturally adapt for grade 4 in Punjab. " +
		"Target language: hi. Be concise and age-appropriate. " +
		"Personalization score: 0.90 (engaged). Subject: Science. Difficulty: medium.\n\n" +
		"Lesson:\nWater boils at 100 degrees."
	assert.Equal(t, want, got)
}

func TestBuildDeterministic(t *testing.T) {
	ctx := models.DefaultContext()
	res := personalization.Result{Score: 0.5, Label: "neutral"}

	a := Build(ctx, "lesson", res)
	b := Build(ctx, "lesson", res)
	assert.Equal(t, a, b)
}

func TestFallback(t *testing.T) {
	ctx := models.Context{
		User: models.UserContext{
			Grade:             3,
			PreferredLanguage: "pa",
			Region:            "Punjab",
		},
	}
	got := Fallback(ctx, "Plants need sunlight.")
	assert.Equal(t, "[Fallback] pa/Punjab/g3\nPlants need sunlight.", got)
}
