package simulator

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/longyuxi/yinsh"
	"github.com/longyuxi/yinsh/internal/randutil"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestRunSmallBatch(t *testing.T) {
	config := Config{
		Games:    4,
		Workers:  2,
		Seed:     42,
		MaxMoves: 5000,
		Logger:   testLogger(),
	}

	result, err := New(config).Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if result.Games != 4 {
		t.Errorf("expected 4 games, got %d", result.Games)
	}
	if got := result.Finished + result.Unfinished; got != 4 {
		t.Errorf("finished+unfinished = %d, want 4", got)
	}
	if result.Rejections != 0 {
		t.Errorf("engine rejected %d enumerated targets, want 0", result.Rejections)
	}
	if got := result.WhiteWins + result.BlackWins; got != result.Finished {
		t.Errorf("wins = %d, want %d finished games", got, result.Finished)
	}

	// Every game at least plays out the ten-ring opening.
	if result.Moves < 10*result.Games {
		t.Errorf("expected at least %d moves, got %d", 10*result.Games, result.Moves)
	}

	// A ring is scored only after a run forms, and a finished game means
	// someone scored the winning total.
	if result.Runs < result.Rings {
		t.Errorf("runs (%d) < rings scored (%d)", result.Runs, result.Rings)
	}
	if result.Rings < yinsh.PointsForWin*result.Finished {
		t.Errorf("rings scored = %d, want at least %d for %d finished games",
			result.Rings, yinsh.PointsForWin*result.Finished, result.Finished)
	}

	// The length distribution tracks finished games only.
	if result.Lengths.Count != result.Finished {
		t.Errorf("length observations = %d, want %d", result.Lengths.Count, result.Finished)
	}
	if result.Finished > 0 {
		if result.Lengths.Min < 10 {
			t.Errorf("shortest win took %.0f moves, impossible before the rings are down",
				result.Lengths.Min)
		}
		if result.Lengths.Max > 5000 {
			t.Errorf("longest win took %.0f moves, beyond the cap", result.Lengths.Max)
		}
	}
}

func TestRunDeterministicWithSeed(t *testing.T) {
	config := Config{
		Games:    3,
		Workers:  2,
		Seed:     12345,
		MaxMoves: 5000,
		Logger:   testLogger(),
	}

	first, err := New(config).Run()
	if err != nil {
		t.Fatalf("first Run() failed: %v", err)
	}
	second, err := New(config).Run()
	if err != nil {
		t.Fatalf("second Run() failed: %v", err)
	}

	// Everything except wall-clock duration must reproduce.
	first.Duration = 0
	second.Duration = 0
	if *first != *second {
		t.Errorf("same seed produced different results:\n%+v\n%+v", first, second)
	}
}

func TestRunDistributesRemainder(t *testing.T) {
	config := Config{
		Games:    5,
		Workers:  3,
		Seed:     7,
		MaxMoves: 2000,
		Logger:   testLogger(),
	}

	result, err := New(config).Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if result.Games != 5 {
		t.Errorf("expected 5 games across 3 workers, got %d", result.Games)
	}
}

func TestRunZeroGames(t *testing.T) {
	result, err := New(Config{Logger: testLogger()}).Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if result.Games != 0 || result.Moves != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

// TestLegalTargetsApplyCleanly drives the raw engine with enumerated
// targets, covering the pending-swap phase the match driver normally hides.
func TestLegalTargetsApplyCleanly(t *testing.T) {
	rng := randutil.New(99)
	state := yinsh.NewGame()

	for move := 0; move < 3000; move++ {
		if _, won := state.Winner(); won {
			return
		}
		targets := legalTargets(state)
		if len(targets) == 0 {
			return // every ring boxed in; nothing left to verify
		}
		target := targets[rng.IntN(len(targets))]
		next, err := state.Apply(target)
		if err != nil {
			t.Fatalf("move %d: Apply(%s) in phase %q rejected: %v",
				move, target, state.Phase, err)
		}
		state = next
	}
}

func TestLegalTargetsSkipStuckRings(t *testing.T) {
	// The white ring at (1,2) has three on-board neighbors and a ring on
	// each, so it cannot slide anywhere. Only the mobile ring at (6,6)
	// should be offered for marker placement.
	board := yinsh.NewBoard().
		Place(yinsh.Coord{X: 1, Y: 2}, yinsh.Ring(yinsh.White)).
		Place(yinsh.Coord{X: 6, Y: 6}, yinsh.Ring(yinsh.White)).
		Place(yinsh.Coord{X: 1, Y: 3}, yinsh.Ring(yinsh.Black)).
		Place(yinsh.Coord{X: 2, Y: 3}, yinsh.Ring(yinsh.Black)).
		Place(yinsh.Coord{X: 2, Y: 2}, yinsh.Ring(yinsh.Black))
	state := yinsh.GameState{
		Active: yinsh.White,
		Phase:  yinsh.PlaceMarker{},
		Board:  board,
	}

	targets := legalTargets(state)
	if len(targets) != 1 {
		t.Fatalf("expected 1 mobile ring, got %d: %v", len(targets), targets)
	}
	if want := (yinsh.Coord{X: 6, Y: 6}); targets[0] != want {
		t.Errorf("expected %s, got %s", want, targets[0])
	}
}

func TestPrintSummary(t *testing.T) {
	config := Config{
		Games:    1,
		Workers:  1,
		Seed:     12345,
		MaxMoves: 2000,
		Logger:   testLogger(),
	}

	result, err := New(config).Run()
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// Should not panic on a populated or an empty result.
	PrintSummary(result)
	PrintSummary(&Result{})
}

func BenchmarkRunSmallBatch(b *testing.B) {
	config := Config{
		Games:    2,
		Workers:  2,
		MaxMoves: 2000,
		Logger:   testLogger(),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		config.Seed = int64(i)
		if _, err := New(config).Run(); err != nil {
			b.Fatalf("Run() failed: %v", err)
		}
	}
}
