package cache

import (
	"fmt"
	"strings"
)

// HeaderConfig describes a Cache-Control policy for API responses.
type HeaderConfig struct {
	MaxAge               int // seconds fresh in the browser
	SMaxAge              int // seconds fresh in CDN/proxy caches
	StaleWhileRevalidate int // seconds stale content may be served during revalidation
	Private              bool
}

// Presets chosen per response kind: confirmed data is cached longer, errors
// not at all.
var (
	PresetWipeData  = HeaderConfig{MaxAge: 300, SMaxAge: 300, StaleWhileRevalidate: 600}
	PresetConfirmed = HeaderConfig{MaxAge: 900, SMaxAge: 900, StaleWhileRevalidate: 3600}
	PresetDynamic   = HeaderConfig{MaxAge: 60, SMaxAge: 60, StaleWhileRevalidate: 300}
	PresetNoCache   = HeaderConfig{Private: true}
)

// ControlHeader renders the Cache-Control header value for a config.
func ControlHeader(cfg HeaderConfig) string {
	visibility := "public"
	if cfg.Private {
		visibility = "private"
	}
	parts := []string{
		visibility,
		fmt.Sprintf("max-age=%d", cfg.MaxAge),
		fmt.Sprintf("s-maxage=%d", cfg.SMaxAge),
		fmt.Sprintf("stale-while-revalidate=%d", cfg.StaleWhileRevalidate),
	}
	return strings.Join(parts, ", ")
}
