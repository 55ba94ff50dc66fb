package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]string{"-config", writeSettings(t, "{}")})
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.Scale != 0 || cfg.AssetDir != def.AssetDir || cfg.RomDir != "." || cfg.TPS != 60 || !cfg.Sound {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.Extensions) != 7 || cfg.VisibleRows != 10 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseMissingDefaultFileIsFine(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Parse([]string{"-scale", "2"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 2 || cfg.Source != "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseExplicitMissingFileFails(t *testing.T) {
	_, err := Parse([]string{"-config", filepath.Join(t.TempDir(), "nope.json")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeSettings(t, `{"scale": 3, "romDir": "roms", "sound": false, "extensions": ["nes"]}`)
	cfg, err := Parse([]string{"-config", path, "-scale", "1", "-ext", "sfc, smc", "-helpurl", "https://example.com/help"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 1 {
		t.Fatalf("flag should win: scale=%d", cfg.Scale)
	}
	if cfg.RomDir != "roms" || cfg.Sound {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != "sfc" || cfg.Extensions[1] != "smc" {
		t.Fatalf("unexpected extensions: %v", cfg.Extensions)
	}
	if cfg.HelpURL != "https://example.com/help" {
		t.Fatalf("unexpected help url %q", cfg.HelpURL)
	}
	if cfg.Source != path {
		t.Fatalf("unexpected source %q", cfg.Source)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	if _, err := Parse([]string{"-config", writeSettings(t, "{}"), "-scale", "-1"}); !errors.Is(err, ErrInvalidScale) {
		t.Fatalf("expected ErrInvalidScale, got %v", err)
	}
	if _, err := Parse([]string{"-config", writeSettings(t, `{"tps": 0}`)}); !errors.Is(err, ErrInvalidTPS) {
		t.Fatalf("expected ErrInvalidTPS, got %v", err)
	}
	if _, err := Parse([]string{"-config", writeSettings(t, "{}"), "-rows", "0"}); !errors.Is(err, ErrInvalidVisible) {
		t.Fatalf("expected ErrInvalidVisible, got %v", err)
	}
}

func TestParseMalformedFile(t *testing.T) {
	if _, err := Parse([]string{"-config", writeSettings(t, "{scale: ")}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseUnknownFlag(t *testing.T) {
	if _, err := Parse([]string{"-bogus"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}
