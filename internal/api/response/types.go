package response

import (
	"time"

	"github.com/mcoot/gamelobby-go/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team string `json:"team"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:   p.ID.String(),
		Name: p.Name,
		Team: string(p.Team),
	}
}

// playersFromModel converts a slice of players, never returning nil
func playersFromModel(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// CreateGameResponse is the response for creating a game. The admin token
// is disclosed here and never again.
type CreateGameResponse struct {
	GameCode   string `json:"game_code"`
	AdminToken string `json:"admin_token"`
}

// JoinGameResponse is the response for joining a game. The player token
// is disclosed here and never again.
type JoinGameResponse struct {
	PlayerToken string `json:"player_token"`
	Player      Player `json:"player"`
}

// Game represents a session snapshot in API responses
type Game struct {
	GameCode  string     `json:"game_code"`
	Phase     string     `json:"phase"`
	Players   []Player   `json:"players"`
	CreatedAt time.Time  `json:"created_at"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// GameFromSnapshot converts a session snapshot to a response Game
func GameFromSnapshot(snapshot model.GameSnapshot) Game {
	g := Game{
		GameCode:  string(snapshot.Code),
		Phase:     string(snapshot.Phase),
		Players:   playersFromModel(snapshot.Players),
		CreatedAt: snapshot.CreatedAt,
	}
	if !snapshot.StartedAt.IsZero() {
		startedAt := snapshot.StartedAt
		g.StartedAt = &startedAt
	}
	return g
}

// ArchivedGame represents an archived game record in API responses
type ArchivedGame struct {
	GameCode  string    `json:"game_code"`
	Players   []Player  `json:"players"`
	StartedAt time.Time `json:"started_at"`
}

// ArchivedGameFromRecord converts an archive record
func ArchivedGameFromRecord(record *model.ArchiveRecord) ArchivedGame {
	return ArchivedGame{
		GameCode:  string(record.GameCode),
		Players:   playersFromModel(record.Players),
		StartedAt: record.StartedAt,
	}
}

// ArchiveListResponse is the response for listing archived games
type ArchiveListResponse struct {
	Games []ArchivedGame `json:"games"`
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	LiveGames int    `json:"live_games"`
}

// Event stream payloads

// ConnectedEvent is sent when an event stream opens
type ConnectedEvent struct {
	Status string `json:"status"`
}

// PlayerJoinedEvent is sent when a player joins the watched game
type PlayerJoinedEvent struct {
	Player Player `json:"player"`
}

// PlayerRenamedEvent is sent when a player in the watched game is renamed
type PlayerRenamedEvent struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// GameStartedEvent is sent exactly once, when the watched game starts
type GameStartedEvent struct {
	Game Game `json:"game"`
}
