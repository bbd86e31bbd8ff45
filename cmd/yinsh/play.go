package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/longyuxi/yinsh"
	"github.com/longyuxi/yinsh/internal/config"
	"github.com/longyuxi/yinsh/internal/match"
	"github.com/longyuxi/yinsh/internal/tui"
)

// PlayCmd starts an interactive hotseat match in the terminal.
type PlayCmd struct {
	Config      string `short:"c" default:"yinsh.hcl" help:"Path to configuration file"`
	White       string `help:"Name for the white player"`
	Black       string `help:"Name for the black player"`
	LogLevel    string `short:"l" help:"Log level (debug, info, warn, error)"`
	LogFile     string `help:"Log file path"`
	Theme       string `help:"Piece color theme (default, dark, light)"`
	NoHints     bool   `help:"Start with landing-point hints turned off"`
	PlayPastWin bool   `help:"Keep accepting moves after a player reaches the winning score"`
}

func (p *PlayCmd) Run() error {
	cfg, err := config.Load(p.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file.
	if p.White != "" {
		cfg.Match.WhiteName = p.White
	}
	if p.Black != "" {
		cfg.Match.BlackName = p.Black
	}
	if p.LogLevel != "" {
		cfg.UI.LogLevel = p.LogLevel
	}
	if p.LogFile != "" {
		cfg.UI.LogFile = p.LogFile
	}
	if p.Theme != "" {
		cfg.UI.Theme = p.Theme
	}
	if p.NoHints {
		cfg.UI.ShowHints = false
	}
	if p.PlayPastWin {
		cfg.Match.PlayPastWin = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	logger := log.New(logFile)
	switch cfg.UI.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	logger.Info("starting match",
		"white", cfg.PlayerName(yinsh.White),
		"black", cfg.PlayerName(yinsh.Black),
		"play_past_win", cfg.Match.PlayPastWin,
	)

	var opts []match.Option
	if !cfg.Match.PlayPastWin {
		opts = append(opts, match.WithEndOnWin())
	}
	m := match.New(logger, opts...)

	model := tui.NewModel(m, cfg, logger)
	model.AddLogEntry(fmt.Sprintf("Welcome! %s takes white, %s takes black.",
		cfg.PlayerName(yinsh.White), cfg.PlayerName(yinsh.Black)))
	model.AddLogEntry("Type a coordinate like f6 to move, or 'help' for commands.")

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
