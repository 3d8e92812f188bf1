// Package prompt assembles the natural-language instruction sent to the
// generation backend, and the deterministic fallback text used when
// generation is unavailable.
package prompt

import (
	"fmt"

	"github.com/edumorph/mcp-service/internal/models"
	"github.com/edumorph/mcp-service/internal/personalization"
)

// Build renders the adaptation instruction from the enriched context, the
// personalization result and the raw lesson text. It is deterministic given
// identical inputs.
func Build(ctx models.Context, lessonContent string, p personalization.Result) string {
	hints := fmt.Sprintf("Personalization score: %.2f (%s). Subject: %s. Difficulty: %s.",
		p.Score, p.Label, ctx.Content.Subject, ctx.Content.Difficulty)
	return fmt.Sprintf(
		"Translate and culturally adapt for grade %d in %s. "+
			"Target language: %s. Be concise and age-appropriate. %s\n\nLesson:\n%s",
		ctx.User.Grade, ctx.User.Region, ctx.User.PreferredLanguage, hints, lessonContent)
}

// Fallback composes the deterministic substitute served when the generation
// backend is unavailable or returns empty output.
func Fallback(ctx models.Context, lessonContent string) string {
	return fmt.Sprintf("[Fallback] %s/%s/g%d\n%s",
		ctx.User.PreferredLanguage, ctx.User.Region, ctx.User.Grade, lessonContent)
}
