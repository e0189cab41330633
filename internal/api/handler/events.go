package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/gamelobby-go/internal/api/middleware"
	"github.com/mcoot/gamelobby-go/internal/api/response"
	"github.com/mcoot/gamelobby-go/internal/model"
	"github.com/mcoot/gamelobby-go/internal/services/lobby"
	"github.com/mcoot/gamelobby-go/internal/sse"
)

// EventsHandler streams lobby events to players waiting for their game to
// start
type EventsHandler struct {
	controller lobby.ControllerInterface
	logger     *slog.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(controller lobby.ControllerInterface, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		controller: controller,
		logger:     logger.With(slog.String("component", "events")),
	}
}

// Stream handles GET /api/v1/games/{code}/events
//
// The stream delivers a connected event, then player change events while
// the lobby fills, then exactly one game-started event, and closes. If the
// game has already started the game-started event comes immediately.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	token := middleware.MustGetToken(r.Context())
	code := model.GameCode(mux.Vars(r)["code"])

	session, player, err := h.controller.WatchGame(r.Context(), code, token)
	if err != nil {
		WriteError(w, err)
		return
	}

	stream, err := sse.NewWriter(w)
	if err != nil {
		WriteError(w, NewInternalError())
		return
	}

	sub := session.Subscribe()
	defer session.Unsubscribe(sub)

	logger := h.logger.With(
		slog.String("game_code", string(code)),
		slog.String("player_id", player.ID.String()),
	)
	logger.Info("event stream opened")
	openedAt := time.Now()
	defer func() {
		logger.Info("event stream closed",
			slog.Duration("connection_duration", time.Since(openedAt)))
	}()

	if err := stream.WriteRetry(sse.DefaultRetry); err != nil {
		return
	}
	if err := stream.WriteEvent("connected", response.Marshal(response.ConnectedEvent{Status: "connected"})); err != nil {
		return
	}

	keepalive := time.NewTicker(sse.KeepalivePeriod)
	defer keepalive.Stop()

	for {
		select {
		case <-session.Started():
			payload := response.GameStartedEvent{
				Game: response.GameFromSnapshot(session.StartSnapshot()),
			}
			if err := stream.WriteEvent("game-started", response.Marshal(payload)); err != nil {
				logger.Warn("failed to write game started event",
					slog.String("error", err.Error()))
			}
			return

		case event, ok := <-sub.C:
			if !ok {
				return
			}
			name, data, known := eventMessage(event)
			if !known {
				continue
			}
			if err := stream.WriteEvent(name, data); err != nil {
				return
			}

		case <-keepalive.C:
			if err := stream.WriteKeepalive(); err != nil {
				return
			}

		case <-r.Context().Done():
			return
		}
	}
}

// eventMessage converts a session event to its wire name and payload
func eventMessage(event model.Event) (string, string, bool) {
	switch event.Type {
	case model.EventPlayerJoined:
		payload, ok := event.Payload.(model.PlayerJoinedPayload)
		if !ok {
			return "", "", false
		}
		return "player-joined", response.Marshal(response.PlayerJoinedEvent{
			Player: response.PlayerFromModel(payload.Player),
		}), true

	case model.EventPlayerRenamed:
		payload, ok := event.Payload.(model.PlayerRenamedPayload)
		if !ok {
			return "", "", false
		}
		return "player-renamed", response.Marshal(response.PlayerRenamedEvent{
			PlayerID: payload.PlayerID.String(),
			Name:     payload.Name,
		}), true
	}

	return "", "", false
}
