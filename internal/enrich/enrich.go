// Package enrich implements the context-enrichment stages of the adaptation
// pipeline. Each stage is a pure function taking a Context snapshot and
// returning a new one; the Enricher strings the stages together and adds
// logging plus the optional GeoIP-backed locale suffix.
package enrich

import (
	"github.com/avct/uasurfer"
	"go.uber.org/zap"

	"github.com/edumorph/mcp-service/internal/culture"
	"github.com/edumorph/mcp-service/internal/geoip"
	"github.com/edumorph/mcp-service/internal/models"
)

// DefaultLocaleSuffix is the region suffix used when no GeoIP database is
// configured or the client IP does not resolve to a country.
const DefaultLocaleSuffix = "IN"

// Enricher runs the enrichment stages in order. Geo may be nil.
type Enricher struct {
	logger *zap.Logger
	geo    *geoip.Resolver
}

// New constructs an Enricher.
func New(logger *zap.Logger, geo *geoip.Resolver) *Enricher {
	return &Enricher{logger: logger, geo: geo}
}

// Enrich applies device detection, locale derivation, difficulty
// normalization and cultural attachment, in that order. clientIP is used only
// for the locale suffix and may be empty.
func (e *Enricher) Enrich(ctx models.Context, clientIP string) models.Context {
	ctx = DetectDevice(ctx)
	ctx = DeriveLocale(ctx, e.localeSuffix(clientIP))
	ctx = NormalizeDifficulty(ctx)
	before := ctx.Content.AdaptationLevel
	ctx = AttachCulture(ctx)
	if before == models.AdaptationNone {
		e.logger.Debug("cultural adaptation disabled",
			zap.String("region", ctx.User.Region))
	} else {
		e.logger.Debug("context enriched",
			zap.String("region", ctx.User.Region),
			zap.String("locale_hint", ctx.Device.LocaleHint),
			zap.String("difficulty", ctx.Content.Difficulty),
			zap.String("adaptation_level", ctx.Content.AdaptationLevel))
	}
	return ctx
}

func (e *Enricher) localeSuffix(clientIP string) string {
	if e.geo != nil && clientIP != "" {
		if iso := e.geo.Country(clientIP); iso != "" {
			return iso
		}
	}
	return DefaultLocaleSuffix
}

// DetectDevice fills DeviceContext.IsMobile from the User-Agent string when
// the client did not already flag the device as mobile. An explicit
// is_mobile=true is never overridden.
func DetectDevice(ctx models.Context) models.Context {
	if ctx.Device.IsMobile || ctx.Device.UserAgent == "" {
		return ctx
	}
	ua := uasurfer.Parse(ctx.Device.UserAgent)
	if ua.DeviceType == uasurfer.DevicePhone {
		ctx.Device.IsMobile = true
	}
	return ctx
}

// DeriveLocale sets DeviceContext.LocaleHint to "{preferred_language}-{suffix}"
// when the client did not supply a hint. It always succeeds.
func DeriveLocale(ctx models.Context, suffix string) models.Context {
	if ctx.Device.LocaleHint != "" {
		return ctx
	}
	lang := ctx.User.PreferredLanguage
	if lang == "" {
		lang = models.DefaultLanguage
	}
	if suffix == "" {
		suffix = DefaultLocaleSuffix
	}
	ctx.Device.LocaleHint = lang + "-" + suffix
	return ctx
}

// NormalizeDifficulty coerces any unknown difficulty to "medium". Valid
// values pass through unchanged, so the stage is idempotent.
func NormalizeDifficulty(ctx models.Context) models.Context {
	if !models.ValidDifficulty(ctx.Content.Difficulty) {
		ctx.Content.Difficulty = models.DifficultyMedium
	}
	return ctx
}

// AttachCulture resolves the user's region against the cultural knowledge
// base and stores a serialized snapshot in the content context. The snapshot
// is set once; re-applying the stage never overwrites it. User-supplied
// cultural preferences are left untouched; absent preferences are defaulted
// from the resolved profile. The whole stage is skipped when the adaptation
// level is "none".
func AttachCulture(ctx models.Context) models.Context {
	if ctx.Content.AdaptationLevel == models.AdaptationNone {
		return ctx
	}

	profile, _ := culture.Lookup(ctx.User.Region)

	if ctx.Content.CulturalContext == "" {
		ctx.Content.CulturalContext = profile.Snapshot()
	}

	if len(ctx.User.CulturalPreferences) == 0 {
		ctx.User.CulturalPreferences = map[string]string{
			"language":           profile.Language,
			"use_local_examples": boolString(ctx.User.LocalExamples),
			"adaptation_level":   ctx.Content.AdaptationLevel,
		}
	}
	return ctx
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
