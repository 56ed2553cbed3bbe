// Package config implements the engine-level configuration surface
// named in the ambient stack: scrollback capacity, tab width,
// bracketed-paste default, OSC 52 clipboard policy, shell override,
// and user-defined custom commands/aliases. Grounded on the teacher's
// config.Config (config/config.go) -- Config/CustomCommand/
// DefaultConfig/GetConfigPath/Load/Save -- reworked from JSON to TOML
// and with a file lock guarding concurrent writers, since a terminal
// core (unlike a single-window GUI app) may have multiple sessions
// sharing one config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"github.com/google/shlex"
)

// ClipboardPolicy is the three-valued OSC 52 setting stored in the
// config file. The screen package takes a predicate instead
// (screen.ClipboardPolicy, func(op string) bool); config does not
// import screen, so callers translate at the boundary.
type ClipboardPolicy string

const (
	ClipboardAsk   ClipboardPolicy = "ask"
	ClipboardAllow ClipboardPolicy = "allow"
	ClipboardDeny  ClipboardPolicy = "deny"
)

// Config holds the terminal engine configuration.
type Config struct {
	// Shell overrides shell discovery; empty means auto-detect (spec
	// §6 ptyio.Options.ShellPath).
	Shell string `toml:"shell"`

	// ScrollbackLines bounds the scrollback ring (spec §3 "bounded
	// FIFO... default capacity is a configuration parameter").
	ScrollbackLines int `toml:"scrollback_lines"`

	// TabWidth is the tab stop interval setting. It is loaded and
	// saved with the file, but no package in this module reads it: the
	// screen model always starts with a tab stop every 8 columns.
	TabWidth int `toml:"tab_width"`

	// BracketedPasteDefault is the bracketed-paste setting. It is
	// loaded and saved with the file, but no package in this module
	// reads it: the screen model starts with bracketed paste off until
	// CSI ?2004h is seen.
	BracketedPasteDefault bool `toml:"bracketed_paste_default"`

	// ClipboardPolicy gates OSC 52 read/write (spec §4.4).
	Clipboard ClipboardPolicy `toml:"clipboard_policy"`

	CustomCommands []CustomCommand   `toml:"custom_commands"`
	Aliases        map[string]string `toml:"aliases"`
}

// CustomCommand is a user-defined command, tokenized with shlex at
// invocation time rather than stored pre-split, so the config file
// keeps ordinary shell-quoted strings.
type CustomCommand struct {
	Name        string `toml:"name"`
	Command     string `toml:"command"`
	Description string `toml:"description"`
}

// DefaultConfig returns the baseline configuration applied before any
// file on disk is consulted.
func DefaultConfig() *Config {
	return &Config{
		Shell:                 "",
		ScrollbackLines:       10000,
		TabWidth:              8,
		BracketedPasteDefault: true,
		Clipboard:             ClipboardAsk,
		CustomCommands:        []CustomCommand{},
		Aliases:               make(map[string]string),
	}
}

// GetConfigPath returns the path to the TOML config file, creating its
// parent directory if necessary.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".fermterm.toml"
	}
	configDir := filepath.Join(homeDir, ".config", "fermterm")
	os.MkdirAll(configDir, 0755)
	return filepath.Join(configDir, "config.toml")
}

// lockPath returns the sibling lock file flock guards writers with.
func lockPath(configPath string) string {
	return configPath + ".lock"
}

// Load reads the configuration from disk, falling back to
// DefaultConfig if the file does not exist yet.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads a TOML configuration from an explicit path, useful
// for tests that don't want to touch the real home directory.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]string)
	}
	return cfg, nil
}

// Save writes the configuration to disk, holding a file lock for the
// duration so two sessions editing aliases/custom commands
// concurrently don't clobber each other's writes.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes the configuration to an explicit path under an
// exclusive flock.
func (c *Config) SaveTo(path string) error {
	lock := flock.New(lockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("config: lock %s: %w", path, err)
	}
	defer lock.Unlock()

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// GetAvailableShells returns a list of available shells on the
// system, for a host presenting a shell picker.
func GetAvailableShells() []string {
	possibleShells := []string{
		"/bin/bash", "/usr/bin/bash",
		"/bin/zsh", "/usr/bin/zsh",
		"/bin/fish", "/usr/bin/fish",
		"/bin/sh", "/usr/bin/sh",
		"/bin/dash", "/usr/bin/dash",
		"/bin/tcsh", "/usr/bin/tcsh",
		"/bin/ksh", "/usr/bin/ksh",
	}

	seen := make(map[string]bool)
	var shells []string
	for _, shell := range possibleShells {
		if _, err := os.Stat(shell); err == nil {
			base := filepath.Base(shell)
			if !seen[base] {
				seen[base] = true
				shells = append(shells, shell)
			}
		}
	}
	return shells
}

// AddCustomCommand registers a new custom command.
func (c *Config) AddCustomCommand(name, command, description string) {
	c.CustomCommands = append(c.CustomCommands, CustomCommand{
		Name:        name,
		Command:     command,
		Description: description,
	})
}

// RemoveCustomCommand removes a custom command by index.
func (c *Config) RemoveCustomCommand(index int) {
	if index >= 0 && index < len(c.CustomCommands) {
		c.CustomCommands = append(c.CustomCommands[:index], c.CustomCommands[index+1:]...)
	}
}

// SetAlias sets an alias.
func (c *Config) SetAlias(name, command string) {
	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
	c.Aliases[name] = command
}

// RemoveAlias removes an alias.
func (c *Config) RemoveAlias(name string) {
	delete(c.Aliases, name)
}

// ResolveCommand tokenizes a custom command or alias body with shlex,
// so "grep -n \"foo bar\" file.go" splits the same way a shell would
// split it, rather than on naive whitespace.
func (c *Config) ResolveCommand(name string) ([]string, error) {
	if body, ok := c.Aliases[name]; ok {
		return shlex.Split(body)
	}
	for _, cc := range c.CustomCommands {
		if cc.Name == name {
			return shlex.Split(cc.Command)
		}
	}
	return nil, fmt.Errorf("config: no custom command or alias named %q", name)
}
