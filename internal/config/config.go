// Package config resolves run settings from defaults, an optional JSON
// settings file and command-line flags, in that order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"subpixel/internal/discover"
)

const DefaultFile = "subpixel.json"

var (
	ErrInvalidScale   = errors.New("scale must be 0 (best fit) or a positive integer")
	ErrInvalidTPS     = errors.New("tps must be positive")
	ErrInvalidVisible = errors.New("visible rows must be positive")
)

type Config struct {
	Scale       int      `json:"scale"`
	AssetDir    string   `json:"assetDir"`
	RomDir      string   `json:"romDir"`
	Extensions  []string `json:"extensions"`
	Builtin     bool     `json:"builtinSkin"`
	Sound       bool     `json:"sound"`
	Debug       bool     `json:"debug"`
	TPS         int      `json:"tps"`
	VisibleRows int      `json:"visibleRows"`
	HelpURL     string   `json:"helpURL"`

	// Source is the settings file that was applied, if any.
	Source string `json:"-"`
}

func Default() Config {
	return Config{
		AssetDir:    "assets",
		RomDir:      ".",
		Extensions:  append([]string(nil), discover.DefaultExtensions...),
		Sound:       true,
		TPS:         60,
		VisibleRows: 10,
	}
}

// Parse builds a Config from args (without the program name). A settings
// file named by -config must exist; the default file is optional.
func Parse(args []string) (Config, error) {
	def := Default()
	fs := flag.NewFlagSet("subpixel", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("config", DefaultFile, "JSON settings file")
	scale := fs.Int("scale", def.Scale, "window scale factor (0 = best fit for the display)")
	assetDir := fs.String("assets", def.AssetDir, "directory holding the skin images and fonts")
	romDir := fs.String("roms", def.RomDir, "directory searched for ROM files")
	exts := fs.String("ext", strings.Join(def.Extensions, ","), "comma-separated ROM file extensions")
	builtin := fs.Bool("builtin", def.Builtin, "use the built-in skin instead of loading assets")
	sound := fs.Bool("sound", def.Sound, "play interface sound effects")
	debug := fs.Bool("debug", def.Debug, "verbose/debug logging and overlay")
	tps := fs.Int("tps", def.TPS, "frame rate cap")
	visible := fs.Int("rows", def.VisibleRows, "visible rows in the file picker")
	helpURL := fs.String("helpurl", def.HelpURL, "page opened by the dashboard help icon")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(os.Stderr)
			fs.PrintDefaults()
		}
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := def
	loaded, err := loadFile(*path, &cfg)
	if err != nil && (set["config"] || !errors.Is(err, os.ErrNotExist)) {
		return Config{}, err
	}
	if loaded {
		cfg.Source = *path
	}

	if set["scale"] {
		cfg.Scale = *scale
	}
	if set["assets"] {
		cfg.AssetDir = *assetDir
	}
	if set["roms"] {
		cfg.RomDir = *romDir
	}
	if set["ext"] {
		cfg.Extensions = splitList(*exts)
	}
	if set["builtin"] {
		cfg.Builtin = *builtin
	}
	if set["sound"] {
		cfg.Sound = *sound
	}
	if set["debug"] {
		cfg.Debug = *debug
	}
	if set["tps"] {
		cfg.TPS = *tps
	}
	if set["rows"] {
		cfg.VisibleRows = *visible
	}
	if set["helpurl"] {
		cfg.HelpURL = *helpURL
	}
	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return false, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return true, nil
}

func (c Config) Validate() error {
	if c.Scale < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTPS, c.TPS)
	}
	if c.VisibleRows <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVisible, c.VisibleRows)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
