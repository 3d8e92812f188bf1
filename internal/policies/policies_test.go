package policies

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumorph/mcp-service/internal/models"
)

func gradeCtx(grade int) models.Context {
	return models.Context{User: models.UserContext{Grade: grade}}
}

func TestReadingLevel(t *testing.T) {
	assert.Equal(t, "Use simple words. Plants grow.", ReadingLevel(gradeCtx(3), "Plants grow."))
	assert.Equal(t, "Use simple words. Plants grow.", ReadingLevel(gradeCtx(5), "Plants grow."))
	assert.Equal(t, "Plants grow.", ReadingLevel(gradeCtx(6), "Plants grow."))
	assert.Equal(t, "Plants grow.", ReadingLevel(gradeCtx(10), "Plants grow."))
}

func TestRegionalExamplesPassthrough(t *testing.T) {
	ctx := models.DefaultContext()
	assert.Equal(t, "any text at all", RegionalExamples(ctx, "any text at all"))
}

func TestMobileFormatNonMobilePassthrough(t *testing.T) {
	ctx := models.Context{Device: models.DeviceContext{IsMobile: false}}
	text := "First line.\nSecond line."
	assert.Equal(t, text, MobileFormat(ctx, text))
}

func TestMobileFormatBullets(t *testing.T) {
	ctx := models.Context{Device: models.DeviceContext{IsMobile: true}}
	got := MobileFormat(ctx, "First line.\n\n  Second line.  \nThird.")
	assert.Equal(t, "• First line.\n• Second line.\n• Third.", got)
}

func TestMobileFormatTruncatesLongLines(t *testing.T) {
	ctx := models.Context{Device: models.DeviceContext{IsMobile: true}}
	long := strings.Repeat("a", 200)
	got := MobileFormat(ctx, long)

	require.True(t, strings.HasPrefix(got, "• "))
	body := strings.TrimPrefix(got, "• ")
	assert.True(t, strings.HasSuffix(body, "…"))
	assert.Equal(t, maxLineLength, len([]rune(strings.TrimSuffix(body, "…"))))
}

func TestMobileFormatTruncationIsRuneSafe(t *testing.T) {
	ctx := models.Context{Device: models.DeviceContext{IsMobile: true}}
	long := strings.Repeat("ਪ", 150) // multi-byte Gurmukhi runes
	got := MobileFormat(ctx, long)

	body := strings.TrimPrefix(got, "• ")
	runes := []rune(strings.TrimSuffix(body, "…"))
	assert.Len(t, runes, maxLineLength)
	for _, r := range runes {
		assert.Equal(t, 'ਪ', r)
	}
}

func TestApplyChainOrder(t *testing.T) {
	ctx := models.Context{
		User:   models.UserContext{Grade: 2},
		Device: models.DeviceContext{IsMobile: true},
	}
	got := Apply(ctx, "Water is wet.\nIce is cold.")

	// Reading-level prefix lands on the first line before bulleting happens.
	assert.Equal(t, "• Use simple words. Water is wet.\n• Ice is cold.", got)
}

func TestApplyNoOpForOlderDesktopReader(t *testing.T) {
	ctx := models.Context{
		User:   models.UserContext{Grade: 9},
		Device: models.DeviceContext{IsMobile: false},
	}
	assert.Equal(t, "Water is wet.", Apply(ctx, "Water is wet."))
}

func TestChainLength(t *testing.T) {
	assert.Len(t, Chain(), 3)
}
