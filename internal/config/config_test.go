package config

import (
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom on missing file: %v", err)
	}
	if cfg.ScrollbackLines != 10000 {
		t.Errorf("ScrollbackLines = %d, want default 10000", cfg.ScrollbackLines)
	}
	if cfg.Clipboard != ClipboardAsk {
		t.Errorf("Clipboard = %q, want default %q", cfg.Clipboard, ClipboardAsk)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Shell = "/bin/zsh"
	cfg.ScrollbackLines = 500
	cfg.Clipboard = ClipboardAllow
	cfg.AddCustomCommand("greet", "echo hello", "says hello")
	cfg.SetAlias("ll", "ls -la")

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Shell != cfg.Shell {
		t.Errorf("Shell = %q, want %q", loaded.Shell, cfg.Shell)
	}
	if loaded.ScrollbackLines != cfg.ScrollbackLines {
		t.Errorf("ScrollbackLines = %d, want %d", loaded.ScrollbackLines, cfg.ScrollbackLines)
	}
	if loaded.Clipboard != cfg.Clipboard {
		t.Errorf("Clipboard = %q, want %q", loaded.Clipboard, cfg.Clipboard)
	}
	if len(loaded.CustomCommands) != 1 || loaded.CustomCommands[0].Name != "greet" {
		t.Errorf("CustomCommands = %+v, want one entry named greet", loaded.CustomCommands)
	}
	if loaded.Aliases["ll"] != "ls -la" {
		t.Errorf("Aliases[ll] = %q, want %q", loaded.Aliases["ll"], "ls -la")
	}
}

func TestResolveCommandTokenizesWithShlex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AddCustomCommand("search", `grep -n "foo bar" file.go`, "")
	cfg.SetAlias("ll", "ls -la")

	args, err := cfg.ResolveCommand("search")
	if err != nil {
		t.Fatalf("ResolveCommand(search): %v", err)
	}
	want := []string{"grep", "-n", "foo bar", "file.go"}
	if !equalSlices(args, want) {
		t.Errorf("ResolveCommand(search) = %v, want %v", args, want)
	}

	args, err = cfg.ResolveCommand("ll")
	if err != nil {
		t.Fatalf("ResolveCommand(ll): %v", err)
	}
	if !equalSlices(args, []string{"ls", "-la"}) {
		t.Errorf("ResolveCommand(ll) = %v, want [ls -la]", args)
	}

	if _, err := cfg.ResolveCommand("missing"); err == nil {
		t.Error("ResolveCommand(missing) = nil error, want error")
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
