package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/gamelobby-go/internal/api/middleware"
	"github.com/mcoot/gamelobby-go/internal/api/request"
	"github.com/mcoot/gamelobby-go/internal/api/response"
	"github.com/mcoot/gamelobby-go/internal/model"
	"github.com/mcoot/gamelobby-go/internal/services/lobby"
)

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	controller lobby.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller lobby.ControllerInterface) *GameHandler {
	return &GameHandler{
		controller: controller,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.CreateGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateGameResponse{
		GameCode:   string(session.Code()),
		AdminToken: session.AdminToken().String(),
	})
}

// Join handles POST /api/v1/games/{code}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	var req request.JoinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("Name is required"))
		return
	}

	player, token, err := h.controller.JoinGame(r.Context(), code, req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinGameResponse{
		PlayerToken: token.String(),
		Player:      response.PlayerFromModel(player),
	})
}

// Get handles GET /api/v1/games/{code}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := middleware.MustGetToken(r.Context())
	code := model.GameCode(mux.Vars(r)["code"])

	snapshot, err := h.controller.GetGame(r.Context(), code, token)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromSnapshot(snapshot))
}

// Rename handles PATCH /api/v1/games/{code}/players/{player_id}
func (h *GameHandler) Rename(w http.ResponseWriter, r *http.Request) {
	token := middleware.MustGetToken(r.Context())
	code := model.GameCode(mux.Vars(r)["code"])

	playerID, err := model.ParsePlayerID(mux.Vars(r)["player_id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("Invalid player id"))
		return
	}

	var req request.SetPlayerNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("Name is required"))
		return
	}

	if err := h.controller.SetPlayerName(r.Context(), code, token, playerID, req.Name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Start handles POST /api/v1/games/{code}/start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	token := middleware.MustGetToken(r.Context())
	code := model.GameCode(mux.Vars(r)["code"])

	if _, err := h.controller.StartGame(r.Context(), code, token); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
