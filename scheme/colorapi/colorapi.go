// Package colorapi implements the scheme.Provider capability against
// thecolorapi.com (or a self-hosted clone of its /scheme endpoint).
package colorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/monkeypaint-cli/monkeypaint/auth"
	"github.com/monkeypaint-cli/monkeypaint/constant"
	"github.com/monkeypaint-cli/monkeypaint/key"
	"github.com/monkeypaint-cli/monkeypaint/log"
	"github.com/monkeypaint-cli/monkeypaint/network"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/monkeypaint-cli/monkeypaint/scheme"
)

// DefaultURL is the public scheme endpoint used when no override is configured.
const DefaultURL = "https://www.thecolorapi.com/scheme"

// Name identifies this provider in the generator registry.
const Name = "thecolorapi"

// Client talks to the color-scheme service over HTTP.
type Client struct {
	URL   string
	HTTP  *http.Client
	Token mo.Option[string]
}

// NewFromConfig assembles a Client from the global configuration, attaching a
// bearer token from the system keyring when keyring auth is enabled.
func NewFromConfig() *Client {
	c := &Client{
		URL:  viper.GetString(key.ColorAPIURL),
		HTTP: network.Client,
	}
	if c.URL == "" {
		c.URL = DefaultURL
	}

	if viper.GetBool(key.ColorAPIKeyringAuth) {
		token, err := auth.GetToken()
		if err != nil {
			log.Warnf("keyring auth enabled but no token available: %v", err)
		} else {
			c.Token = mo.Some(token)
		}
	}

	return c
}

// Name returns the unique identifier of the generator.
func (c *Client) Name() string {
	return Name
}

// schemeResponse defines the anticipated JSON response structure of the scheme endpoint.
type schemeResponse struct {
	Colors []struct {
		RGB struct {
			R int `json:"r"`
			G int `json:"g"`
			B int `json:"b"`
		} `json:"rgb"`
	} `json:"colors"`
}

// Generate requests an ordered scheme from the service. Transport failures,
// non-success statuses and empty schemes all surface as scheme.Unavailable.
func (c *Client) Generate(ctx context.Context, base rgb.Color, mode string, count int) ([]rgb.Color, error) {
	if colors, ok := cacheRead(base, mode, count); ok {
		log.Debugf("scheme cache hit for %s/%s/%d", base, mode, count)
		return colors, nil
	}

	params := url.Values{}
	params.Set("hex", base.Hex())
	params.Set("mode", mode)
	params.Set("count", strconv.Itoa(count))
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &scheme.Unavailable{Provider: c.Name(), Err: err}
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	if token, ok := c.Token.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Infof("requesting %s scheme of %d colors from %s", mode, count, c.URL)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &scheme.Unavailable{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &scheme.Unavailable{
			Provider: c.Name(),
			Err:      fmt.Errorf("unexpected response status %d", resp.StatusCode),
		}
	}

	var decoded schemeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &scheme.Unavailable{Provider: c.Name(), Err: err}
	}

	if len(decoded.Colors) == 0 {
		return nil, &scheme.Unavailable{
			Provider: c.Name(),
			Err:      fmt.Errorf("service returned an empty scheme"),
		}
	}

	colors := make([]rgb.Color, len(decoded.Colors))
	for i, entry := range decoded.Colors {
		colors[i] = rgb.New(
			clampChannel(entry.RGB.R),
			clampChannel(entry.RGB.G),
			clampChannel(entry.RGB.B),
		)
	}

	cacheWrite(base, mode, count, colors)
	return colors, nil
}

// clampChannel forces an out-of-range service value back into [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
