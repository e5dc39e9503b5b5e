package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing config, got %v", err)
	}
	if cfg.Game.WordsFile != nil || cfg.Game.MaxWords != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigDecodesGameTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[game]\nwords-file = \"animals.txt\"\nmax-words = 20\nmask = \"_\"\ntui = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.WordsFile == nil || *cfg.Game.WordsFile != "animals.txt" {
		t.Fatalf("unexpected words-file: %v", cfg.Game.WordsFile)
	}
	if cfg.Game.MaxWords == nil || *cfg.Game.MaxWords != 20 {
		t.Fatalf("unexpected max-words: %v", cfg.Game.MaxWords)
	}
	if cfg.Game.Mask == nil || *cfg.Game.Mask != "_" {
		t.Fatalf("unexpected mask: %v", cfg.Game.Mask)
	}
	if cfg.Game.TUI == nil || !*cfg.Game.TUI {
		t.Fatalf("expected tui to be set")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nwords = 10\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "game.words") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "wordguess", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
