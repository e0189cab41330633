package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateResult:
		o.printCreateResult(v)
	case JoinResult:
		o.printJoinResult(v)
	case Game:
		o.printGame(v)
	case ArchivedGame:
		o.printArchivedGame(v)
	case ArchiveList:
		o.printArchiveList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team string `json:"team"`
}

// CreateResult is the response for creating a game
type CreateResult struct {
	GameCode   string `json:"game_code"`
	AdminToken string `json:"admin_token"`
}

// JoinResult is the response for joining a game
type JoinResult struct {
	PlayerToken string `json:"player_token"`
	Player      Player `json:"player"`
}

// Game response type
type Game struct {
	GameCode  string     `json:"game_code"`
	Phase     string     `json:"phase"`
	Players   []Player   `json:"players"`
	CreatedAt time.Time  `json:"created_at"`
	StartedAt *time.Time `json:"started_at"`
}

// ArchivedGame response type
type ArchivedGame struct {
	GameCode  string    `json:"game_code"`
	Players   []Player  `json:"players"`
	StartedAt time.Time `json:"started_at"`
}

// ArchiveList response type
type ArchiveList struct {
	Games []ArchivedGame `json:"games"`
}

// HealthResult response type
type HealthResult struct {
	Status    string `json:"status"`
	LiveGames int    `json:"live_games"`
}

func (o *Output) printCreateResult(r CreateResult) {
	fmt.Printf("Game: %s\n", r.GameCode)
	fmt.Printf("Admin Token: %s\n", r.AdminToken)
}

func (o *Output) printJoinResult(r JoinResult) {
	fmt.Printf("Joined as: %s (%s)\n", r.Player.Name, r.Player.ID)
	fmt.Printf("Token: %s\n", r.PlayerToken)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.GameCode)
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Created: %s\n", g.CreatedAt.Format(time.RFC3339))
	if g.StartedAt != nil {
		fmt.Printf("Started: %s\n", g.StartedAt.Format(time.RFC3339))
	}
	fmt.Printf("Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		teamStr := ""
		if p.Team != "" && p.Team != "none" {
			teamStr = fmt.Sprintf(" [%s]", p.Team)
		}
		fmt.Printf("  - %s (%s)%s\n", p.Name, p.ID, teamStr)
	}
}

func (o *Output) printArchivedGame(a ArchivedGame) {
	fmt.Printf("Game: %s\n", a.GameCode)
	fmt.Printf("Started: %s\n", a.StartedAt.Format(time.RFC3339))
	fmt.Printf("Players (%d):\n", len(a.Players))
	for _, p := range a.Players {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
}

func (o *Output) printArchiveList(l ArchiveList) {
	if len(l.Games) == 0 {
		fmt.Println("No archived games")
		return
	}
	fmt.Printf("Archived games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		fmt.Printf("  %s - %d players, started %s\n",
			g.GameCode, len(g.Players), g.StartedAt.Format(time.RFC3339))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	fmt.Printf("Live Games: %d\n", h.LiveGames)
}
