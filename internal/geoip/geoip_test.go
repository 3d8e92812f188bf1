package geoip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCIDRTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cidr.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenJSONFallback(t *testing.T) {
	path := writeCIDRTable(t, `[
		{"net": "203.0.113.0/24", "country": "IN"},
		{"net": "198.51.100.0/24", "country": "US"},
		{"net": "not a cidr", "country": "XX"}
	]`)

	r, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	assert.Equal(t, "IN", r.Country("203.0.113.42"))
	assert.Equal(t, "US", r.Country("198.51.100.1"))
	assert.Equal(t, "", r.Country("192.0.2.1"))
	assert.Equal(t, "", r.Country("not-an-ip"))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.mmdb"))
	assert.Error(t, err)
}

func TestOpenInvalidJSON(t *testing.T) {
	path := writeCIDRTable(t, "neither mmdb nor json")
	_, err := Open(path)
	assert.Error(t, err)
}

func TestNilResolver(t *testing.T) {
	var r *Resolver
	assert.Equal(t, "", r.Country("203.0.113.1"))
	assert.NoError(t, r.Close())
}
