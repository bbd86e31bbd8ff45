package match

import (
	"time"

	"github.com/longyuxi/yinsh"
)

// EventType identifies a match event with type safety.
type EventType string

const (
	EventTypeMoveAccepted EventType = "move_accepted"
	EventTypeMoveRejected EventType = "move_rejected"
	EventTypeRunFormed    EventType = "run_formed"
	EventTypeRingScored   EventType = "ring_scored"
	EventTypeGameWon      EventType = "game_won"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// MatchEvent represents anything noteworthy that happens during a match.
type MatchEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// MoveAcceptedEvent is published after a legal interaction has been applied.
// State is the fully settled snapshot: if the move formed a run, the pending
// swap has already been advanced through.
type MoveAcceptedEvent struct {
	Player    yinsh.Player
	Target    yinsh.Coord
	Phase     yinsh.Phase // the phase that interpreted the target
	State     yinsh.GameState
	timestamp time.Time
}

func (e MoveAcceptedEvent) EventType() EventType { return EventTypeMoveAccepted }
func (e MoveAcceptedEvent) Timestamp() time.Time { return e.timestamp }

// NewMoveAcceptedEvent creates a new move accepted event.
func NewMoveAcceptedEvent(player yinsh.Player, target yinsh.Coord, phase yinsh.Phase, state yinsh.GameState) MoveAcceptedEvent {
	return MoveAcceptedEvent{
		Player:    player,
		Target:    target,
		Phase:     phase,
		State:     state,
		timestamp: time.Now(),
	}
}

// MoveRejectedEvent is published when an interaction fails its phase guard.
// The match state is unchanged.
type MoveRejectedEvent struct {
	Player    yinsh.Player
	Target    yinsh.Coord
	Phase     yinsh.Phase
	Reason    error
	timestamp time.Time
}

func (e MoveRejectedEvent) EventType() EventType { return EventTypeMoveRejected }
func (e MoveRejectedEvent) Timestamp() time.Time { return e.timestamp }

// NewMoveRejectedEvent creates a new move rejected event.
func NewMoveRejectedEvent(player yinsh.Player, target yinsh.Coord, phase yinsh.Phase, reason error) MoveRejectedEvent {
	return MoveRejectedEvent{
		Player:    player,
		Target:    target,
		Phase:     phase,
		Reason:    reason,
		timestamp: time.Now(),
	}
}

// RunFormedEvent is published when a slide completes five in a row and the
// turn swings back to the run's owner for removal.
type RunFormedEvent struct {
	Player    yinsh.Player
	timestamp time.Time
}

func (e RunFormedEvent) EventType() EventType { return EventTypeRunFormed }
func (e RunFormedEvent) Timestamp() time.Time { return e.timestamp }

// NewRunFormedEvent creates a new run formed event.
func NewRunFormedEvent(player yinsh.Player) RunFormedEvent {
	return RunFormedEvent{
		Player:    player,
		timestamp: time.Now(),
	}
}

// RingScoredEvent is published when a player removes a ring and scores.
type RingScoredEvent struct {
	Player    yinsh.Player
	Ring      yinsh.Coord
	Score     int // the player's score after this ring
	timestamp time.Time
}

func (e RingScoredEvent) EventType() EventType { return EventTypeRingScored }
func (e RingScoredEvent) Timestamp() time.Time { return e.timestamp }

// NewRingScoredEvent creates a new ring scored event.
func NewRingScoredEvent(player yinsh.Player, ring yinsh.Coord, score int) RingScoredEvent {
	return RingScoredEvent{
		Player:    player,
		Ring:      ring,
		Score:     score,
		timestamp: time.Now(),
	}
}

// GameWonEvent is published once when a match configured to end on a win
// sees a player reach the winning score. No further moves are accepted.
type GameWonEvent struct {
	Winner     yinsh.Player
	ScoreWhite int
	ScoreBlack int
	timestamp  time.Time
}

func (e GameWonEvent) EventType() EventType { return EventTypeGameWon }
func (e GameWonEvent) Timestamp() time.Time { return e.timestamp }

// NewGameWonEvent creates a new game won event.
func NewGameWonEvent(winner yinsh.Player, scoreWhite, scoreBlack int) GameWonEvent {
	return GameWonEvent{
		Winner:     winner,
		ScoreWhite: scoreWhite,
		ScoreBlack: scoreBlack,
		timestamp:  time.Now(),
	}
}

// EventSubscriber can subscribe to match events.
type EventSubscriber interface {
	OnEvent(event MatchEvent)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event MatchEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation. Delivery is
// synchronous and in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers.
func (bus *SimpleEventBus) Publish(event MatchEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
