package model

import "strconv"

// PlayerID uniquely identifies a player within one session. IDs are drawn
// from the same uint32 pool as tokens; callers must not assume the two
// spaces are disjoint.
type PlayerID uint32

// Token is a capability token. Possession of a token is the only form of
// authorization in the system: the admin token authorizes session control,
// a player token authorizes actions on that player.
type Token uint32

// Team is the chip color a player plays as. Colors are dealt by the rules
// engine once the game starts; every player is TeamNone while in the lobby.
type Team string

const (
	TeamNone  Team = "none"
	TeamBlue  Team = "blue"
	TeamGreen Team = "green"
	TeamRed   Team = "red"
)

// Valid reports whether t is a known team color
func (t Team) Valid() bool {
	switch t {
	case TeamNone, TeamBlue, TeamGreen, TeamRed:
		return true
	}
	return false
}

// Player represents a game participant
type Player struct {
	ID   PlayerID
	Name string // display name, mutable via rename
	Team Team
}

// String returns the decimal wire form of the token
func (t Token) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// ParseToken parses the decimal wire form of a token
func ParseToken(s string) (Token, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return Token(v), nil
}

// String returns the decimal wire form of the player id
func (id PlayerID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParsePlayerID parses the decimal wire form of a player id
func ParsePlayerID(s string) (PlayerID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return PlayerID(v), nil
}
