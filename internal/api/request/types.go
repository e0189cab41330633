package request

// JoinGameRequest is the request body for joining a game
type JoinGameRequest struct {
	Name string `json:"name"`
}

// SetPlayerNameRequest is the request body for renaming a player
type SetPlayerNameRequest struct {
	Name string `json:"name"`
}
