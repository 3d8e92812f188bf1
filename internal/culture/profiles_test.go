package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownRegion(t *testing.T) {
	p, ok := Lookup("Punjab")
	require.True(t, ok)
	assert.Equal(t, "Punjabi", p.Language)
	assert.Contains(t, p.Landmarks, "Golden Temple")
	assert.Contains(t, p.Festivals, "Baisakhi")
}

func TestLookupUnknownRegionFallsBack(t *testing.T) {
	p, ok := Lookup("Atlantis")
	assert.False(t, ok)
	assert.Equal(t, DefaultProfile, p)
	assert.Equal(t, "English", p.Language)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("Tamil Nadu"))
	assert.False(t, Known("atlantis"))
	assert.False(t, Known("punjab")) // lookups are case-sensitive
}

func TestRegions(t *testing.T) {
	assert.Equal(t, 10, Regions())
}

func TestSnapshotRoundTrip(t *testing.T) {
	p, ok := Lookup("Kerala")
	require.True(t, ok)

	snap := p.Snapshot()
	require.NotEmpty(t, snap)

	got, err := ParseSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParseSnapshotInvalid(t *testing.T) {
	_, err := ParseSnapshot("{not json")
	assert.Error(t, err)
}
