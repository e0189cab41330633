package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/gamelobby-go/internal/api/response"
	"github.com/mcoot/gamelobby-go/internal/model"
	"github.com/mcoot/gamelobby-go/internal/services/lobby"
)

const (
	defaultArchiveLimit = 20
	maxArchiveLimit     = 100
)

// ArchiveHandler serves records of games that have already started
type ArchiveHandler struct {
	controller lobby.ControllerInterface
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(controller lobby.ControllerInterface) *ArchiveHandler {
	return &ArchiveHandler{
		controller: controller,
	}
}

// List handles GET /api/v1/archive
func (h *ArchiveHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultArchiveLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = parsed
	}
	if limit > maxArchiveLimit {
		limit = maxArchiveLimit
	}

	records, err := h.controller.ListArchivedGames(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	games := make([]response.ArchivedGame, 0, len(records))
	for _, record := range records {
		games = append(games, response.ArchivedGameFromRecord(record))
	}

	response.JSON(w, http.StatusOK, response.ArchiveListResponse{
		Games: games,
	})
}

// Get handles GET /api/v1/archive/{code}
func (h *ArchiveHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	record, err := h.controller.GetArchivedGame(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ArchivedGameFromRecord(record))
}
