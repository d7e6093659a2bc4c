package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-match-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func noEnv(string) string { return "" }

func TestApplyFlags_OnlySetFlagsOverride(t *testing.T) {
	defer saveRestoreBool(plainMode, true)()
	defer saveRestoreBool(asciiPieces, true)()
	defer saveRestoreString(logLevel, "debug")()

	cfg := config.NewConfig()
	applyFlags(cfg, map[string]bool{"plain": true})

	if cfg.Game.Interface != config.InterfacePlain {
		t.Errorf("Interface = %q; want plain", cfg.Game.Interface)
	}
	if !cfg.Display.Unicode {
		t.Error("unset -ascii should not change Display.Unicode")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("unset -log-level changed Level to %q", cfg.Log.Level)
	}
}

func TestApplyFlags_DisplayAndLog(t *testing.T) {
	defer saveRestoreBool(asciiPieces, true)()
	defer saveRestoreBool(noColour, true)()
	defer saveRestoreBool(noMoves, true)()
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreString(logFormat, "json")()
	defer saveRestoreString(svgOut, "end.svg")()

	cfg := config.NewConfig()
	applyFlags(cfg, map[string]bool{
		"ascii": true, "nocolour": true, "nomoves": true,
		"log-level": true, "log-format": true, "svg": true,
	})

	if cfg.Display.Unicode || cfg.Display.Colour || cfg.Display.ShowMoves {
		t.Errorf("Display = %+v; want all disabled", cfg.Display)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v; want debug/json", cfg.Log)
	}
	if cfg.Game.SVGOut != "end.svg" {
		t.Errorf("SVGOut = %q; want end.svg", cfg.Game.SVGOut)
	}
}

func TestLoadConfig_Layering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\ngame:\n  interface: plain\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer saveRestoreString(logLevel, "error")()

	env := func(k string) string {
		if k == "CHESS_LOG_LEVEL" {
			return "debug"
		}
		return ""
	}
	cfg, err := loadConfig(path, map[string]bool{"log-level": true}, env)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Level = %q; flag should win over env and file", cfg.Log.Level)
	}
	if cfg.Game.Interface != config.InterfacePlain {
		t.Errorf("Interface = %q; want plain from file", cfg.Game.Interface)
	}
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	defer saveRestoreString(logFormat, "xml")()
	if _, err := loadConfig("", map[string]bool{"log-format": true}, noEnv); err == nil {
		t.Error("loadConfig() with -log-format xml should fail")
	}
}

func TestRun_PlainCheckmateWritesSVG(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithInterface(config.InterfacePlain).
		WithStartFEN("6k1/5ppp/8/8/8/8/8/R5K1 w").
		WithSVGOut(filepath.Join(dir, "final.svg")).
		WithColour(false).
		WithOutput(&out).
		WithInput(strings.NewReader("a1\na8\n")).
		Build()
	cfg.Log.Quiet = true

	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "CHECKMATE! Winner: White") {
		t.Errorf("output missing checkmate line:\n%s", out.String())
	}

	raw, err := os.ReadFile(cfg.Game.SVGOut)
	if err != nil {
		t.Fatalf("reading svg: %v", err)
	}
	if !strings.Contains(string(raw), "<svg") {
		t.Error("final.svg is not an SVG document")
	}
}

func TestRun_BadStartPosition(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithInterface(config.InterfacePlain).
		WithStartFEN("8/8/8/8/8/8/8/8 w").
		WithOutput(&bytes.Buffer{}).
		WithInput(strings.NewReader("")).
		Build()
	cfg.Log.Quiet = true

	if err := run(context.Background(), cfg); err == nil {
		t.Error("run() without kings should fail")
	}
}
