// Package generate implements the palette-generation pipeline: group
// resolution, base color selection, scheme retrieval and profile encoding.
package generate

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/monkeypaint-cli/monkeypaint/config"
	"github.com/monkeypaint-cli/monkeypaint/filesystem"
	"github.com/monkeypaint-cli/monkeypaint/groups"
	"github.com/monkeypaint-cli/monkeypaint/key"
	"github.com/monkeypaint-cli/monkeypaint/log"
	"github.com/monkeypaint-cli/monkeypaint/palette"
	"github.com/monkeypaint-cli/monkeypaint/profile"
	"github.com/monkeypaint-cli/monkeypaint/rgb"
	"github.com/monkeypaint-cli/monkeypaint/util"
)

// Result is a fully generated, encoded lighting profile awaiting publication.
type Result struct {
	Base        rgb.Color
	Registry    *groups.Registry
	Mode        string
	FnMode      string
	MainPalette palette.Palette
	FnPalette   palette.Palette
	Main        palette.KeyColorMap
	Fn          palette.KeyColorMap
	Encoded     []byte
	Destination string
}

// Run executes the full pipeline and publishes the encoded profile to the
// resolved destination. Nothing is written on any failure upstream of
// encoding.
func Run(options *Options) error {
	result, err := Build(options)
	if err != nil {
		return err
	}

	if options.Json {
		return writeJson(outStream(options), result)
	}

	return Publish(result, outStream(options))
}

// Build runs every stage up to and including encoding, leaving publication to
// the caller so interactive surfaces can preview and regenerate first.
func Build(options *Options) (*Result, error) {
	if options.Provider == nil {
		return nil, errors.New("no scheme provider configured")
	}

	sections := options.Sections
	if sections == nil {
		var err error
		if sections, err = config.GroupSections(); err != nil {
			return nil, err
		}
	}

	prefix := options.Prefix.OrElse(viper.GetString(key.PaletteGroupPrefix))
	registry, err := groups.New(prefix, sections)
	if err != nil {
		return nil, err
	}

	selector := palette.BaseSelector{
		Explicit: options.Base,
		Minimum:  options.MinimumBase.OrElse(viper.GetInt(key.PaletteMinimumBase)),
		Rand:     options.Rand,
	}
	base, err := selector.Select()
	if err != nil {
		return nil, err
	}

	mode := viper.GetString(key.ColorAPIMode)
	fnMode := viper.GetString(key.ColorAPIFnMode)
	log.Infof(
		"generating a palette from %s with %s",
		base, util.Quantify(registry.Count(), "group", "groups"),
	)

	mainColors, fnColors, err := fetchLayers(options, base, mode, fnMode, registry.Count())
	if err != nil {
		return nil, err
	}

	mainPalette, err := palette.Assign(registry.Order(), mainColors)
	if err != nil {
		return nil, err
	}
	fnPalette, err := palette.Assign(registry.Order(), fnColors)
	if err != nil {
		return nil, err
	}

	fallback, err := rgb.Parse(viper.GetString(key.PaletteDefaultColor))
	if err != nil {
		return nil, err
	}

	result := &Result{
		Base:        base,
		Registry:    registry,
		Mode:        mode,
		FnMode:      fnMode,
		MainPalette: mainPalette,
		FnPalette:   fnPalette,
		Main:        mainPalette.Expand(registry, fallback),
		Fn:          fnPalette.Expand(registry, fallback),
		Destination: options.Output.OrElse(viper.GetString(key.OutputPath)),
	}
	result.Encoded = profile.Encode(result.Main, result.Fn)
	return result, nil
}

// layerResult carries one layer's scheme back from its fetch goroutine.
type layerResult struct {
	fn     bool
	colors []rgb.Color
	err    error
}

// fetchLayers requests the main and fn schemes concurrently under a shared
// deadline. Both must succeed; the first failure cancels the other request
// and aborts the run.
func fetchLayers(options *Options, base rgb.Color, mode, fnMode string, count int) (main, fn []rgb.Color, err error) {
	timeout := time.Duration(viper.GetInt(key.ColorAPITimeoutSeconds)) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	results := make(chan layerResult, 2)
	for _, layer := range []struct {
		fn   bool
		mode string
	}{
		{false, mode},
		{true, fnMode},
	} {
		go func(isFn bool, layerMode string) {
			colors, err := options.Provider.Generate(ctx, base, layerMode, count)
			results <- layerResult{fn: isFn, colors: colors, err: err}
		}(layer.fn, layer.mode)
	}

	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			cancel()
			return nil, nil, r.err
		}
		if r.fn {
			fn = r.colors
		} else {
			main = r.colors
		}
	}

	return main, fn, nil
}

func outStream(options *Options) io.Writer {
	if options.Out != nil {
		return options.Out
	}
	return os.Stdout
}

// Publish commits the fully encoded profile to its destination. The bytes
// are buffered up front, so a file destination is written in a single call
// and never left holding a partial profile.
func Publish(result *Result, out io.Writer) error {
	if result.Destination == "-" {
		_, err := out.Write(result.Encoded)
		return err
	}

	log.Infof("writing lighting profile to %s", result.Destination)
	return filesystem.API().WriteFile(result.Destination, result.Encoded, 0644)
}
