// Package policies implements the postprocessing chain applied to generated
// or fallback text. The chain order is fixed: reading level, regional
// examples, mobile formatting. Every policy is total; none can fail.
package policies

import (
	"strings"

	"github.com/edumorph/mcp-service/internal/models"
)

// Policy transforms text given the request context.
type Policy func(ctx models.Context, text string) string

// Chain returns the fixed postprocessing sequence. It is not reorderable at
// runtime.
func Chain() []Policy {
	return []Policy{ReadingLevel, RegionalExamples, MobileFormat}
}

// Apply runs text through the chain, feeding each policy the output of the
// previous one.
func Apply(ctx models.Context, text string) string {
	for _, p := range Chain() {
		text = p(ctx, text)
	}
	return text
}

// ReadingLevel prepends a simplification cue for young learners.
func ReadingLevel(ctx models.Context, text string) string {
	if ctx.User.Grade <= 5 {
		return "Use simple words. " + text
	}
	return text
}

// RegionalExamples is the hook between the reading-level and mobile stages
// where a regional example injector plugs in. The built-in behavior is
// passthrough; regional grounding currently happens in the prompt and the
// template adapter instead.
func RegionalExamples(ctx models.Context, text string) string {
	return text
}

// maxLineLength is the mobile truncation threshold in characters.
const maxLineLength = 120

// MobileFormat reshapes text for small screens: every non-empty trimmed line
// becomes a bullet, and lines longer than 120 characters are truncated with
// an ellipsis. Non-mobile devices pass through unchanged.
func MobileFormat(ctx models.Context, text string) string {
	if !ctx.Device.IsMobile {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r := []rune(line)
		if len(r) > maxLineLength {
			line = string(r[:maxLineLength]) + "…"
		}
		out = append(out, "• "+line)
	}
	return strings.Join(out, "\n")
}
