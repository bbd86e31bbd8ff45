package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/longyuxi/yinsh/internal/config"
	"github.com/longyuxi/yinsh/internal/fileutil"
	"github.com/longyuxi/yinsh/internal/simulator"
)

// SimCmd plays batches of random legal games to exercise the engine.
type SimCmd struct {
	Config   string `short:"c" default:"yinsh.hcl" help:"Path to configuration file"`
	Games    int    `short:"g" help:"Number of games to play"`
	Workers  int    `short:"w" help:"Number of parallel workers (0 = one per CPU)"`
	Seed     int64  `short:"s" help:"Random seed (0 = use current time)"`
	MaxMoves int    `help:"Abandon a game after this many moves"`
	Output   string `short:"o" help:"Write results to a JSON file"`
	Verbose  bool   `help:"Enable verbose logging"`
}

func (s *SimCmd) Run() error {
	cfg, err := config.Load(s.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file.
	if s.Games != 0 {
		cfg.Sim.Games = s.Games
	}
	if s.Workers != 0 {
		cfg.Sim.Workers = s.Workers
	}
	if s.Seed != 0 {
		cfg.Sim.Seed = s.Seed
	}
	if s.MaxMoves != 0 {
		cfg.Sim.MaxMoves = s.MaxMoves
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var logger *log.Logger
	if s.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level: log.DebugLevel,
		})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level: log.WarnLevel,
		})
	}

	fmt.Printf("Starting simulation: %d games (seed: %d)\n", cfg.Sim.Games, seed)

	sim := simulator.New(simulator.Config{
		Games:    cfg.Sim.Games,
		Workers:  cfg.Sim.Workers,
		Seed:     seed,
		MaxMoves: cfg.Sim.MaxMoves,
		Logger:   logger,
	})

	result, err := sim.Run()
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	simulator.PrintSummary(result)

	if s.Output != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		// Atomic write so a watcher tailing the file never sees half a report.
		if err := fileutil.WriteFileAtomic(s.Output, data, 0644); err != nil {
			return fmt.Errorf("failed to write results file: %w", err)
		}
		fmt.Printf("\nResults written to %s\n", s.Output)
	}

	if result.Rejections > 0 {
		return fmt.Errorf("engine rejected %d enumerated moves", result.Rejections)
	}
	return nil
}
