// Package match drives a single game of Yinsh between two players. It owns
// the current snapshot, serializes interactions onto it, hides the pending
// swap phase from callers, tracks thinking time, and publishes events for
// UIs and recorders.
package match

import (
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/longyuxi/yinsh"
	"github.com/longyuxi/yinsh/internal/gameid"
)

// ErrMatchOver is returned by Play once a configured win has been reached.
var ErrMatchOver = errors.New("match is over")

// Option configures a Match during creation.
type Option func(*matchConfig)

// matchConfig holds all configuration for creating a match.
type matchConfig struct {
	clock    quartz.Clock
	bus      EventBus
	initial  yinsh.GameState
	endOnWin bool
}

// WithClock sets the clock used to attribute thinking time. Tests inject a
// quartz mock; the default is the real clock.
func WithClock(clock quartz.Clock) Option {
	return func(c *matchConfig) {
		c.clock = clock
	}
}

// WithEventBus uses an existing bus instead of a fresh one, letting several
// matches share subscribers.
func WithEventBus(bus EventBus) Option {
	return func(c *matchConfig) {
		c.bus = bus
	}
}

// WithInitialState starts the match from an arbitrary snapshot instead of a
// fresh game.
func WithInitialState(state yinsh.GameState) Option {
	return func(c *matchConfig) {
		c.initial = state
	}
}

// WithEndOnWin makes the match consult the layered win check after every
// accepted move and refuse further play once a player has the winning
// score. Without it the match plays on forever, matching the engine.
func WithEndOnWin() Option {
	return func(c *matchConfig) {
		c.endOnWin = true
	}
}

// Match serializes two players' interactions onto one evolving game state.
// All methods are safe for concurrent use.
type Match struct {
	mu     sync.Mutex
	id     string
	state  yinsh.GameState
	logger *log.Logger
	bus    EventBus
	clock  quartz.Clock

	endOnWin bool
	over     bool
	winner   yinsh.Player

	moves     int
	thinking  [2]time.Duration
	turnStart time.Time
}

// New creates a match ready for White's first interaction.
func New(logger *log.Logger, opts ...Option) *Match {
	cfg := &matchConfig{
		clock:   quartz.NewReal(),
		initial: yinsh.NewGame(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	id := gameid.Generate()
	return &Match{
		id:        id,
		state:     cfg.initial,
		logger:    logger.WithPrefix("match").With("id", id),
		bus:       cfg.bus,
		clock:     cfg.clock,
		endOnWin:  cfg.endOnWin,
		turnStart: cfg.clock.Now(),
	}
}

// ID returns the identifier minted for this match at creation. It
// distinguishes interleaved log lines when many matches share a logger.
func (m *Match) ID() string {
	return m.id
}

// Bus returns the event bus for subscribing to match events.
func (m *Match) Bus() EventBus {
	return m.bus
}

// State returns the current snapshot. Callers never see the pending-swap
// phase; Play advances through it before returning.
func (m *Match) State() yinsh.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Moves returns the number of accepted interactions so far. The hidden
// swap advance is not counted; it consumes no player input.
func (m *Match) Moves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.moves
}

// ThinkingTime returns how long p has spent to produce their accepted moves.
// Time burned on rejected attempts counts toward the move that follows.
func (m *Match) ThinkingTime(p yinsh.Player) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.thinking[p]
}

// Winner reports the winning player once the match has ended. It only ever
// reports true on a match created with WithEndOnWin.
func (m *Match) Winner() (yinsh.Player, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.winner, m.over
}

// Play applies the active player's selection of target and returns the
// settled snapshot. Illegal selections return the unchanged state and a
// rejection error the caller can re-prompt on.
func (m *Match) Play(target yinsh.Coord) (yinsh.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.over {
		return m.state, ErrMatchOver
	}

	mover := m.state.Active
	phase := m.state.Phase

	next, err := m.state.Apply(target)
	if err != nil {
		m.logger.Debug("move rejected",
			"player", mover,
			"phase", phase,
			"target", target,
			"error", err)
		m.bus.Publish(NewMoveRejectedEvent(mover, target, phase, err))
		return m.state, err
	}

	now := m.clock.Now()
	m.thinking[mover] += now.Sub(m.turnStart)
	m.turnStart = now
	m.moves++

	if _, ok := phase.(yinsh.RemoveRing); ok {
		m.bus.Publish(NewRingScoredEvent(mover, target, next.Score(mover)))
	}

	// The pending swap consumes no input; settle it here so callers only
	// ever face phases that want a coordinate.
	if _, ok := next.Phase.(yinsh.SwapPending); ok {
		next, err = next.Apply(target)
		if err != nil {
			// SwapPending accepts anything; an error here is a defect.
			panic("match: pending swap rejected an interaction: " + err.Error())
		}
		m.bus.Publish(NewRunFormedEvent(mover))
	}

	m.state = next
	m.logger.Debug("move accepted",
		"player", mover,
		"phase", phase,
		"target", target,
		"next", next.Phase,
		"score", []int{next.ScoreWhite, next.ScoreBlack})
	m.bus.Publish(NewMoveAcceptedEvent(mover, target, phase, next))

	if m.endOnWin {
		if winner, won := next.Winner(); won {
			m.over = true
			m.winner = winner
			m.logger.Info("match won",
				"winner", winner,
				"scoreWhite", next.ScoreWhite,
				"scoreBlack", next.ScoreBlack,
				"moves", m.moves)
			m.bus.Publish(NewGameWonEvent(winner, next.ScoreWhite, next.ScoreBlack))
		}
	}

	return m.state, nil
}
