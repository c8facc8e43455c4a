// Package colorapi implements the scheme.Provider capability against
// thecolorapi.com (or a self-hosted clone of its /scheme endpoint).
package colorapi

import (
	"fmt"
	"time"

	"github.com/metafates/gache"
	"github.com/spf13/viper"

	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/key"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/monkeypaint-cli/monkeypaint/where"
)

// cacheLifetime returns the configured scheme cache lifetime.
// A zero or negative lifetime disables caching entirely.
func cacheLifetime() time.Duration {
	return time.Duration(viper.GetInt(key.CacheSchemeLifetimeHours)) * time.Hour
}

// cacher builds the file-backed cache holding past scheme responses keyed by
// seed, mode and requested count.
func cacher(lifetime time.Duration) *gache.Cache[map[string][]rgb.Color] {
	return gache.New[map[string][]rgb.Color](&gache.Options{
		Path:       where.SchemeCache(),
		Lifetime:   lifetime,
		FileSystem: &filesystem.GacheFs{},
	})
}

func cacheKey(base rgb.Color, mode string, count int) string {
	return fmt.Sprintf("%s|%s|%d", base.Hex(), mode, count)
}

func cacheRead(base rgb.Color, mode string, count int) ([]rgb.Color, bool) {
	lifetime := cacheLifetime()
	if lifetime <= 0 {
		return nil, false
	}

	cached, expired, err := cacher(lifetime).Get()
	if err != nil || expired || cached == nil {
		return nil, false
	}

	colors, ok := cached[cacheKey(base, mode, count)]
	return colors, ok && len(colors) > 0
}

func cacheWrite(base rgb.Color, mode string, count int, colors []rgb.Color) {
	lifetime := cacheLifetime()
	if lifetime <= 0 {
		return
	}

	c := cacher(lifetime)
	cached, expired, err := c.Get()
	if err != nil || expired || cached == nil {
		cached = make(map[string][]rgb.Color)
	}

	cached[cacheKey(base, mode, count)] = colors
	_ = c.Set(cached)
}
