package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventPlayerJoined  EventType = "player_joined"
	EventPlayerRenamed EventType = "player_renamed"
	EventGameStarted   EventType = "game_started"
)

// Event is delivered to session subscribers while they wait for setup to
// complete
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameCode  GameCode
	Payload   any // type-specific data
}

// PlayerJoinedPayload contains data for player joined events
type PlayerJoinedPayload struct {
	Player Player
}

// PlayerRenamedPayload contains data for player renamed events
type PlayerRenamedPayload struct {
	PlayerID PlayerID
	Name     string
}

// GameStartedPayload carries the snapshot taken at the start transition.
// Every waiter released by the same start observes this same snapshot.
type GameStartedPayload struct {
	Snapshot GameSnapshot
}
