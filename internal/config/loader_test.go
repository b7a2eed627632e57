package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/brickbreak/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
physics:
  friction: 0.5
colors:
  ball: yellow
quirks:
  one_sided_velocity_cap: false
layout:
  - ".-."
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Friction != 0.5 {
		t.Errorf("Friction = %g, expected 0.5", cfg.Physics.Friction)
	}
	if cfg.Physics.Sensitivity != 0.3 {
		t.Errorf("Sensitivity = %g, expected default 0.3", cfg.Physics.Sensitivity)
	}
	if cfg.Colors.Ball != core.ColorYellow {
		t.Errorf("Colors.Ball = %v, expected yellow", cfg.Colors.Ball)
	}
	if cfg.Colors.Block != core.ColorRed {
		t.Errorf("Colors.Block = %v, expected default red", cfg.Colors.Block)
	}
	if cfg.Quirks.OneSidedVelocityCap {
		t.Error("OneSidedVelocityCap should be overridden to false")
	}
	if !cfg.Quirks.HorizontalBounceUsesVY {
		t.Error("HorizontalBounceUsesVY should keep its default")
	}
	if !reflect.DeepEqual(cfg.Layout, []string{".-."}) {
		t.Errorf("Layout = %v, expected [.-.]", cfg.Layout)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad friction", "physics: {friction: 1.5}", "friction"},
		{"zero tick rate", "screen: {tick_rate: 0}", "tick_rate"},
		{"negative padding", "blocks: {padding: -1}", "padding"},
		{"wide paddle", "paddle: {width: 700}", "paddle width"},
		{"unknown color", "colors: {ball: plaid}", "unknown color"},
		{"malformed", "screen: [", "cannot parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Parse() error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Screen.Width != 640 {
		t.Errorf("Screen.Width = %d, expected 640", cfg.Screen.Width)
	}

	// Local configs directory
	local := filepath.Join(work, "configs", "breakout.yaml")
	writeFile(t, local, "screen: {tick_rate: 30}")
	cfg, source, _ = Load("")
	if source != filepath.Join("configs", "breakout.yaml") || cfg.Screen.TickRate != 30 {
		t.Errorf("Load() = (%d, %q), expected local config with tick_rate 30", cfg.Screen.TickRate, source)
	}

	// User config wins over local
	user := filepath.Join(home, ".brickbreak", "config.yaml")
	writeFile(t, user, "screen: {tick_rate: 45}")
	cfg, source, _ = Load("")
	if source != user || cfg.Screen.TickRate != 45 {
		t.Errorf("Load() = (%d, %q), expected user config with tick_rate 45", cfg.Screen.TickRate, source)
	}

	// Invalid user config falls through to local
	writeFile(t, user, "physics: {friction: 9}")
	cfg, _, _ = Load("")
	if cfg.Screen.TickRate != 30 {
		t.Errorf("invalid user config should be skipped, tick_rate = %d", cfg.Screen.TickRate)
	}

	// Custom path wins over everything
	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "screen: {tick_rate: 120}")
	cfg, source, _ = Load(custom)
	if source != custom || cfg.Screen.TickRate != 120 {
		t.Errorf("Load(custom) = (%d, %q), expected custom config with tick_rate 120", cfg.Screen.TickRate, source)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "ball: {size: 0}")
	if _, _, err := Load(bad); err == nil {
		t.Error("Load() with invalid custom config should fail")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}
