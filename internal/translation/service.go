// Package translation provides context-aware translation of educational
// content. It builds a structured instruction embedding domain terminology
// and learner context, delegates to the generation client and scores the
// result with a length-ratio heuristic.
package translation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/enrich"
	"github.com/edumorph/mcp-service/internal/models"
	"github.com/edumorph/mcp-service/internal/observability"
)

// Generator is the slice of the llm client the service needs.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// languageNames maps language codes to full names used in prompts.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"pa": "Punjabi",
	"ta": "Tamil",
	"te": "Telugu",
	"mr": "Marathi",
	"bn": "Bengali",
	"gu": "Gujarati",
	"kn": "Kannada",
	"ml": "Malayalam",
	"or": "Odia",
	"ur": "Urdu",
}

// educationalTerms is the per-language domain terminology glossary appended
// to translation prompts when the target language has one.
var educationalTerms = map[string]map[string]string{
	"en": {
		"lesson":      "lesson",
		"exercise":    "exercise",
		"quiz":        "quiz",
		"chapter":     "chapter",
		"mathematics": "mathematics",
		"science":     "science",
		"history":     "history",
		"geography":   "geography",
	},
	"hi": {
		"lesson":      "पाठ",
		"exercise":    "अभ्यास",
		"quiz":        "प्रश्नोत्तरी",
		"chapter":     "अध्याय",
		"mathematics": "गणित",
		"science":     "विज्ञान",
		"history":     "इतिहास",
		"geography":   "भूगोल",
	},
	"pa": {
		"lesson":      "ਪਾਠ",
		"exercise":    "ਅਭਿਆਸ",
		"quiz":        "ਕੁਇਜ਼",
		"chapter":     "ਅਧਿਆਇ",
		"mathematics": "ਗਣਿਤ",
		"science":     "ਵਿਗਿਆਨ",
		"history":     "ਇਤਿਹਾਸ",
		"geography":   "ਭੂਗੋਲ",
	},
}

// Service translates educational content.
type Service struct {
	generator Generator
	logger    *zap.Logger
	metrics   observability.MetricsRegistry
}

// New creates a translation service.
func New(generator Generator, logger *zap.Logger, metrics observability.MetricsRegistry) *Service {
	return &Service{generator: generator, logger: logger, metrics: metrics}
}

// Translate performs a context-aware translation. It never returns an error:
// an empty generation result or any failure degrades to the original text
// with quality 0.0 and context_preserved=false.
func (s *Service) Translate(ctx context.Context, req models.TranslateRequest) models.TranslateResponse {
	sourceLang := req.SourceLanguage
	if sourceLang == "" {
		sourceLang = "en"
	}
	targetLang := req.TargetLanguage

	failed := models.TranslateResponse{
		TranslatedText:   req.Text,
		SourceLanguage:   sourceLang,
		TargetLanguage:   targetLang,
		QualityScore:     0.0,
		ContextPreserved: false,
	}

	s.logger.Info("translating",
		zap.String("source_language", languageName(sourceLang)),
		zap.String("target_language", languageName(targetLang)))

	var reqCtx *models.Context
	if req.Context != nil {
		enriched := *req.Context
		enriched.ApplyDefaults()
		enriched = enrich.AttachCulture(enriched)
		reqCtx = &enriched
	}

	prompt := buildPrompt(req.Text, sourceLang, targetLang, reqCtx)

	translated, err := s.generator.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("translation error", zap.Error(err))
		s.metrics.IncrementTranslations(targetLang, "error")
		return failed
	}
	if translated == "" {
		s.logger.Error("translation failed, returning original text")
		s.metrics.IncrementTranslations(targetLang, "empty")
		return failed
	}

	s.metrics.IncrementTranslations(targetLang, "success")
	return models.TranslateResponse{
		TranslatedText:   translated,
		SourceLanguage:   sourceLang,
		TargetLanguage:   targetLang,
		QualityScore:     QualityScore(req.Text, translated),
		ContextPreserved: true,
	}
}

// QualityScore computes the length-ratio quality heuristic, scaled to
// [0.2, 1.0]. Lengths are counted in characters, not bytes, so multi-byte
// scripts like Devanagari score the same as Latin text of equal length. It is
// an acknowledged proxy, not a fidelity guarantee.
func QualityScore(source, translated string) float64 {
	srcLen := float64(utf8.RuneCountInString(source))
	outLen := float64(utf8.RuneCountInString(translated))
	if srcLen == 0 || outLen == 0 {
		return 0.2
	}
	ratio := srcLen / outLen
	if outLen < srcLen {
		ratio = outLen / srcLen
	}
	return ratio*0.8 + 0.2
}

// buildPrompt assembles the numbered translation directives with optional
// context hints and the target-language terminology glossary.
func buildPrompt(text, sourceLang, targetLang string, ctx *models.Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Translate the following educational content from %s to %s.\n\n",
		languageName(sourceLang), languageName(targetLang))
	b.WriteString("IMPORTANT INSTRUCTIONS:\n")
	b.WriteString("1. Maintain the educational context and meaning\n")
	b.WriteString("2. Preserve all HTML formatting and tags\n")
	b.WriteString("3. Keep mathematical formulas, code snippets, and technical terms intact\n")
	fmt.Fprintf(&b, "4. Use appropriate educational terminology for %s\n", languageName(targetLang))
	b.WriteString("5. Ensure the translation is appropriate for the student's grade level\n")
	b.WriteString("6. Maintain any cultural references that are present in the original text\n")
	fmt.Fprintf(&b, "\nTEXT TO TRANSLATE:\n%s\n", text)

	if ctx != nil {
		b.WriteString("\nCONTEXT INFORMATION:\n")
		fmt.Fprintf(&b, "- Student grade level: %d\n", ctx.User.Grade)
		fmt.Fprintf(&b, "- Subject: %s\n", ctx.Content.Subject)
		fmt.Fprintf(&b, "- Region: %s\n", ctx.User.Region)
		fmt.Fprintf(&b, "- Learning style: %s\n", ctx.User.LearningStyle)
	}

	if terms, ok := educationalTerms[targetLang]; ok {
		b.WriteString("\nUSE THESE DOMAIN-SPECIFIC TERMS:\n")
		keys := make([]string, 0, len(terms))
		for k := range terms {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s: %s\n", k, terms[k])
		}
	}

	return b.String()
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
