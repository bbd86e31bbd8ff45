// Package config loads the yinsh configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/longyuxi/yinsh"
)

// Config represents the complete yinsh configuration
type Config struct {
	UI    UISettings    `hcl:"ui,block"`
	Match MatchSettings `hcl:"match,block"`
	Sim   SimSettings   `hcl:"sim,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFile   string `hcl:"log_file,optional"`
	Theme     string `hcl:"theme,optional"`
	ShowHints bool   `hcl:"show_hints,optional"`
}

// MatchSettings contains hotseat match settings
type MatchSettings struct {
	WhiteName   string `hcl:"white_name,optional"`
	BlackName   string `hcl:"black_name,optional"`
	PlayPastWin bool   `hcl:"play_past_win,optional"`
}

// SimSettings contains self-play simulation settings
type SimSettings struct {
	Games    int   `hcl:"games,optional"`
	Workers  int   `hcl:"workers,optional"` // 0 means one per CPU, capped
	Seed     int64 `hcl:"seed,optional"`    // 0 means time-derived
	MaxMoves int   `hcl:"max_moves,optional"`
}

// DefaultConfig returns default yinsh configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UISettings{
			LogLevel:  "warn",
			LogFile:   "yinsh.log",
			Theme:     "default",
			ShowHints: true,
		},
		Match: MatchSettings{
			WhiteName:   "White",
			BlackName:   "Black",
			PlayPastWin: false,
		},
		Sim: SimSettings{
			Games:    100,
			Workers:  0,
			Seed:     0,
			MaxMoves: 0,
		},
	}
}

// Load loads configuration from an HCL file
func Load(filename string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}
	if config.UI.LogFile == "" {
		config.UI.LogFile = defaults.UI.LogFile
	}
	if config.UI.Theme == "" {
		config.UI.Theme = defaults.UI.Theme
	}

	if config.Match.WhiteName == "" {
		config.Match.WhiteName = defaults.Match.WhiteName
	}
	if config.Match.BlackName == "" {
		config.Match.BlackName = defaults.Match.BlackName
	}

	if config.Sim.Games == 0 {
		config.Sim.Games = defaults.Sim.Games
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.Match.WhiteName == c.Match.BlackName {
		return fmt.Errorf("player names must differ: both are %q", c.Match.WhiteName)
	}

	if c.Sim.Games < 0 {
		return fmt.Errorf("sim games cannot be negative")
	}
	if c.Sim.Workers < 0 {
		return fmt.Errorf("sim workers cannot be negative")
	}
	if c.Sim.MaxMoves < 0 {
		return fmt.Errorf("sim max_moves cannot be negative")
	}

	return nil
}

// GetLogLevel returns the log level
func (c *Config) GetLogLevel() string {
	return c.UI.LogLevel
}

// PlayerName returns the configured display name for a player
func (c *Config) PlayerName(p yinsh.Player) string {
	if p == yinsh.White {
		return c.Match.WhiteName
	}
	return c.Match.BlackName
}
