// Package geoip resolves a client IP to an ISO country code. The locale
// derivation stage uses it to pick the region suffix of a derived locale
// hint; when no database is configured the stage falls back to its fixed
// default suffix.
package geoip

import (
	"encoding/json"
	"net"
	"os"

	"github.com/oschwald/geoip2-golang"
)

// Resolver answers country lookups from a MaxMind GeoIP2 database, or from a
// small JSON CIDR table when the path points at one (used in tests and
// air-gapped deployments). A nil Resolver never resolves.
type Resolver struct {
	db       *geoip2.Reader
	fallback []cidrEntry
}

type cidrEntry struct {
	net     *net.IPNet
	country string
}

// Open loads the database at path. An mmdb file is preferred; otherwise the
// file is parsed as a JSON array of {"net","country"} entries.
func Open(path string) (*Resolver, error) {
	r := &Resolver{}
	db, err := geoip2.Open(path)
	if err == nil {
		r.db = db
		return r, nil
	}

	data, jerr := os.ReadFile(path)
	if jerr != nil {
		return nil, err
	}
	var entries []struct {
		Net     string `json:"net"`
		Country string `json:"country"`
	}
	if jerr = json.Unmarshal(data, &entries); jerr != nil {
		return nil, err
	}
	for _, e := range entries {
		if _, n, perr := net.ParseCIDR(e.Net); perr == nil {
			r.fallback = append(r.fallback, cidrEntry{net: n, country: e.Country})
		}
	}
	return r, nil
}

// Country returns the ISO country code for addr, or "" when addr is not a
// parseable IP, is unknown to the database, or the resolver is nil.
func (r *Resolver) Country(addr string) string {
	if r == nil {
		return ""
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return ""
	}
	if r.db != nil {
		if rec, err := r.db.Country(ip); err == nil {
			return rec.Country.IsoCode
		}
	}
	for _, e := range r.fallback {
		if e.net.Contains(ip) {
			return e.country
		}
	}
	return ""
}

// Close releases the underlying database.
func (r *Resolver) Close() error {
	if r != nil && r.db != nil {
		return r.db.Close()
	}
	return nil
}
