package model

import "time"

// GameCode is the six digit code players share to join a session. Leading
// zeros are significant: "003981" is a valid, distinct code.
type GameCode string

// GameCodeLength is the number of decimal digits in a game code
const GameCodeLength = 6

// Valid reports whether c is exactly six decimal digits
func (c GameCode) Valid() bool {
	if len(c) != GameCodeLength {
		return false
	}
	for _, r := range c {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Phase is the lifecycle stage of a session. The only transition is
// Lobby -> Started and it is irreversible; later in-game phases belong to
// the rules engine, not the lobby server.
type Phase string

const (
	PhaseLobby   Phase = "lobby"   // open for joining
	PhaseStarted Phase = "started" // setup complete, play underway
)

// GameSnapshot is a point-in-time copy of a session's visible state.
// Callers always receive snapshots; live session internals are never
// shared outside the session's own lock.
type GameSnapshot struct {
	Code      GameCode
	Phase     Phase
	Players   []Player // copies, in join order
	CreatedAt time.Time
	StartedAt time.Time // zero until the session starts
}
