// Package simulator plays random legal games against the rules engine in
// parallel. Every target it submits comes from its own enumeration of the
// legal set, so any rejection — or any game that wedges short of the move
// cap — points at a defect in either the engine or the enumeration.
package simulator

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/longyuxi/yinsh"
	"github.com/longyuxi/yinsh/internal/match"
	"github.com/longyuxi/yinsh/internal/randutil"
	"github.com/longyuxi/yinsh/internal/statistics"
)

// DefaultMaxMoves caps a single random game. Uniform random play normally
// reaches the winning score well before this; a game still going is
// counted as unfinished rather than looping forever.
const DefaultMaxMoves = 10000

// Config holds configuration for running simulations
type Config struct {
	Games    int
	Workers  int   // defaults to GOMAXPROCS capped at 8
	Seed     int64 // master seed; per-game seeds derive from it
	MaxMoves int   // per-game cap, DefaultMaxMoves when zero
	Logger   *log.Logger
}

// Result aggregates the outcome of a simulation batch.
type Result struct {
	Games      int                     `json:"games"`
	Finished   int                     `json:"finished"`   // reached the winning score
	Unfinished int                     `json:"unfinished"` // hit the move cap or wedged
	WhiteWins  int                     `json:"white_wins"`
	BlackWins  int                     `json:"black_wins"`
	Moves      int                     `json:"moves"`      // accepted interactions across all games
	Runs       int                     `json:"runs"`       // runs formed
	Rings      int                     `json:"rings"`      // rings scored
	Rejections int                     `json:"rejections"` // engine refusals of enumerated targets; must stay zero
	Lengths    statistics.Distribution `json:"lengths"`    // move counts of finished games
	Duration   time.Duration           `json:"duration_ns"`
}

// Simulator runs random self-play games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the batch across a worker pool and returns aggregated
// results. The same seed and worker count reproduce the same counts.
func (s *Simulator) Run() (*Result, error) {
	if s.config.Games <= 0 {
		return &Result{}, nil
	}

	workers := s.config.Workers
	if workers <= 0 {
		workers = min(runtime.GOMAXPROCS(0), 8)
	}
	if workers > s.config.Games {
		workers = s.config.Games
	}
	maxMoves := s.config.MaxMoves
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}
	logger := s.config.Logger.WithPrefix("simulator")

	logger.Debug("starting batch",
		"games", s.config.Games,
		"workers", workers,
		"seed", s.config.Seed)

	start := time.Now()
	// Worker seeds are fixed up front so the batch stays reproducible
	// regardless of goroutine scheduling.
	workerSeeds := randutil.Seeds(s.config.Seed, workers)

	gamesPerWorker := s.config.Games / workers
	remainder := s.config.Games % workers

	g, ctx := errgroup.WithContext(context.Background())
	results := make(chan Result, workers)

	for w := 0; w < workers; w++ {
		workerGames := gamesPerWorker
		if w < remainder {
			workerGames++
		}
		workerSeed := workerSeeds[w]

		g.Go(func() error {
			workerRng := randutil.New(workerSeed)
			var agg Result
			for i := 0; i < workerGames; i++ {
				one := playGame(workerRng.Int64(), maxMoves, logger)
				addInto(&agg, one)
			}
			select {
			case results <- agg:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	// Close the results channel once all workers finish.
	go func() {
		defer close(results)
		g.Wait() //nolint:errcheck // checked below
	}()

	total := &Result{}
	for r := range results {
		addInto(total, r)
	}
	if err := g.Wait(); err != nil {
		return total, fmt.Errorf("simulation worker failed: %w", err)
	}

	total.Duration = time.Since(start)
	logger.Debug("batch complete",
		"games", total.Games,
		"finished", total.Finished,
		"moves", total.Moves,
		"duration", total.Duration)
	return total, nil
}

func addInto(agg *Result, r Result) {
	agg.Games += r.Games
	agg.Finished += r.Finished
	agg.Unfinished += r.Unfinished
	agg.WhiteWins += r.WhiteWins
	agg.BlackWins += r.BlackWins
	agg.Moves += r.Moves
	agg.Runs += r.Runs
	agg.Rings += r.Rings
	agg.Rejections += r.Rejections
	agg.Lengths.Merge(r.Lengths)
}

// gameStats counts match events for a single game.
type gameStats struct {
	runs  int
	rings int
}

func (s *gameStats) OnEvent(event match.MatchEvent) {
	switch event.EventType() {
	case match.EventTypeRunFormed:
		s.runs++
	case match.EventTypeRingScored:
		s.rings++
	}
}

// playGame runs one uniformly random game to a win or the move cap.
func playGame(seed int64, maxMoves int, logger *log.Logger) Result {
	rng := randutil.New(seed)
	m := match.New(logger, match.WithEndOnWin())
	stats := &gameStats{}
	m.Bus().Subscribe(stats)

	r := Result{Games: 1}
	for m.Moves() < maxMoves {
		if _, over := m.Winner(); over {
			break
		}
		state := m.State()
		targets := legalTargets(state)
		if len(targets) == 0 {
			// Every ring of the active player is boxed in; the game
			// cannot continue.
			logger.Debug("game wedged", "seed", seed, "moves", m.Moves())
			break
		}
		target := targets[rng.IntN(len(targets))]
		if _, err := m.Play(target); err != nil {
			r.Rejections++
			logger.Error("enumerated target rejected",
				"seed", seed,
				"phase", state.Phase,
				"target", target,
				"error", err)
		}
	}

	r.Moves = m.Moves()
	r.Runs = stats.runs
	r.Rings = stats.rings
	if winner, over := m.Winner(); over {
		r.Finished = 1
		// Capped and wedged games have censored lengths; only games played
		// to a win enter the distribution.
		r.Lengths.Add(float64(m.Moves()))
		if winner == yinsh.White {
			r.WhiteWins = 1
		} else {
			r.BlackWins = 1
		}
	} else {
		r.Unfinished = 1
	}
	return r
}

// legalTargets enumerates every coordinate the current phase accepts,
// independently of the engine's own guards. During marker placement only
// rings that can actually slide are offered: the engine accepts any own
// ring, but picking a boxed-in one would leave the turn with no legal
// continuation.
func legalTargets(state yinsh.GameState) []yinsh.Coord {
	switch ph := state.Phase.(type) {
	case yinsh.PlaceRing:
		var out []yinsh.Coord
		for _, c := range yinsh.BoardCoordinates() {
			if state.Board.IsFree(c) {
				out = append(out, c)
			}
		}
		return out
	case yinsh.PlaceMarker:
		var out []yinsh.Coord
		for _, c := range state.Board.Rings(state.Active) {
			if len(yinsh.ValidDestinations(state.Board, c)) > 0 {
				out = append(out, c)
			}
		}
		return out
	case yinsh.SlideRing:
		return yinsh.ValidDestinations(state.Board, ph.Origin)
	case yinsh.SwapPending:
		// The match driver settles this phase itself; a raw engine
		// caller may pass any coordinate.
		return yinsh.BoardCoordinates()[:1]
	case yinsh.RemoveRun:
		markers := state.Board.Markers(state.Active)
		var out []yinsh.Coord
		for _, c := range markers {
			if yinsh.PartOfRun(markers, c) {
				out = append(out, c)
			}
		}
		return out
	case yinsh.RemoveRing:
		return state.Board.Rings(state.Active)
	}
	return nil
}

// PrintSummary prints a human-readable summary of a simulation batch.
func PrintSummary(result *Result) {
	fmt.Printf("\n=== SIMULATION RESULTS ===\n")
	fmt.Printf("Games:      %d (%d finished, %d unfinished)\n",
		result.Games, result.Finished, result.Unfinished)
	fmt.Printf("Wins:       White %d, Black %d\n", result.WhiteWins, result.BlackWins)
	fmt.Printf("Moves:      %d total", result.Moves)
	if result.Games > 0 {
		fmt.Printf(" (%.1f per game)", float64(result.Moves)/float64(result.Games))
	}
	fmt.Printf("\n")
	fmt.Printf("Runs:       %d formed, %d rings scored\n", result.Runs, result.Rings)
	fmt.Printf("Rejections: %d\n", result.Rejections)
	if result.Lengths.Count > 0 {
		low, high := result.Lengths.ConfidenceInterval95()
		fmt.Printf("Length:     %.1f moves to a win (95%% CI %.1f-%.1f), min %.0f, max %.0f\n",
			result.Lengths.Mean(), low, high, result.Lengths.Min, result.Lengths.Max)
	}

	fmt.Printf("\n=== THROUGHPUT ===\n")
	fmt.Printf("Duration:   %v\n", result.Duration.Round(time.Millisecond))
	if secs := result.Duration.Seconds(); secs > 0 {
		fmt.Printf("Speed:      %.0f moves/sec, %.1f games/sec\n",
			float64(result.Moves)/secs, float64(result.Games)/secs)
	}
}
