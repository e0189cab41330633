package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/gamelobby-go/internal/dependencies/clock"
	"github.com/mcoot/gamelobby-go/internal/model"
)

// Session holds the live state of one game from creation through its start
// transition. All mutable state is guarded by the session's own mutex, which
// is independent of every other session and of the registry. Callers only
// ever receive copies; interior references never escape the lock.
type Session struct {
	code       model.GameCode
	adminToken model.Token

	clock    clock.Clock
	notifier *Notifier

	mu        sync.Mutex
	phase     model.Phase
	players   []model.Player
	playerIdx map[model.PlayerID]int
	tokens    map[model.Token]model.PlayerID
	createdAt time.Time
	startedAt time.Time
}

// NewSession creates a session in the lobby phase with no players
func NewSession(code model.GameCode, adminToken model.Token, clk clock.Clock, logger *slog.Logger) *Session {
	return &Session{
		code:       code,
		adminToken: adminToken,
		clock:      clk,
		notifier:   NewNotifier(logger.With(slog.String("game_code", string(code)))),
		phase:      model.PhaseLobby,
		playerIdx:  make(map[model.PlayerID]int),
		tokens:     make(map[model.Token]model.PlayerID),
		createdAt:  clk.Now(),
	}
}

// Code returns the session's game code
func (s *Session) Code() model.GameCode {
	return s.code
}

// AdminToken returns the session's admin capability token
func (s *Session) AdminToken() model.Token {
	return s.adminToken
}

// IsAdminToken reports whether token is this session's admin token
func (s *Session) IsAdminToken(token model.Token) bool {
	return token == s.adminToken
}

// Phase returns the session's current lifecycle phase
func (s *Session) Phase() model.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// AddPlayer admits a new player while the session is still in the lobby
// phase. The player starts with no team; teams are dealt by the rules
// engine once play begins. Returns the stored player record.
func (s *Session) AddPlayer(id model.PlayerID, token model.Token, name string) (model.Player, error) {
	player := model.Player{ID: id, Name: name, Team: model.TeamNone}

	s.mu.Lock()
	if s.phase != model.PhaseLobby {
		s.mu.Unlock()
		return model.Player{}, model.ErrAlreadyStarted
	}
	s.players = append(s.players, player)
	s.playerIdx[id] = len(s.players) - 1
	s.tokens[token] = id
	s.mu.Unlock()

	s.publish(model.EventPlayerJoined, model.PlayerJoinedPayload{Player: player})
	return player, nil
}

// RenamePlayer updates a player's display name. Renames are allowed in
// either phase; the name is lobby metadata and does not affect play.
func (s *Session) RenamePlayer(id model.PlayerID, name string) (model.Player, error) {
	s.mu.Lock()
	idx, ok := s.playerIdx[id]
	if !ok {
		s.mu.Unlock()
		return model.Player{}, model.ErrPlayerNotFound
	}
	s.players[idx].Name = name
	player := s.players[idx]
	s.mu.Unlock()

	s.publish(model.EventPlayerRenamed, model.PlayerRenamedPayload{PlayerID: id, Name: name})
	return player, nil
}

// GetPlayerByToken resolves a player token to the player it was issued to.
// The admin token is not a player token and does not resolve.
func (s *Session) GetPlayerByToken(token model.Token) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.tokens[token]
	if !ok {
		return model.Player{}, model.ErrPlayerNotFound
	}
	return s.players[s.playerIdx[id]], nil
}

// GetPlayerByID returns a copy of the player with the given id
func (s *Session) GetPlayerByID(id model.PlayerID) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.playerIdx[id]
	if !ok {
		return model.Player{}, model.ErrPlayerNotFound
	}
	return s.players[idx], nil
}

// Start moves the session from the lobby phase to started. The transition
// happens at most once; a second call returns ErrAlreadyStarted. The
// snapshot is taken inside the same critical section that flips the phase,
// so every released waiter observes the identical started state.
func (s *Session) Start() (model.GameSnapshot, error) {
	s.mu.Lock()
	if s.phase == model.PhaseStarted {
		s.mu.Unlock()
		return model.GameSnapshot{}, model.ErrAlreadyStarted
	}
	s.phase = model.PhaseStarted
	s.startedAt = s.clock.Now()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifier.MarkStarted(snapshot)
	return snapshot, nil
}

// Snapshot returns a point-in-time copy of the session's visible state
func (s *Session) Snapshot() model.GameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() model.GameSnapshot {
	players := make([]model.Player, len(s.players))
	copy(players, s.players)
	return model.GameSnapshot{
		Code:      s.code,
		Phase:     s.phase,
		Players:   players,
		CreatedAt: s.createdAt,
		StartedAt: s.startedAt,
	}
}

// WaitForStart blocks until the session starts or ctx is done. No session
// lock is held while blocked. If the session has already started it returns
// the start snapshot immediately.
func (s *Session) WaitForStart(ctx context.Context) (model.GameSnapshot, error) {
	return s.notifier.WaitForStart(ctx)
}

// Subscribe registers a listener for player change events
func (s *Session) Subscribe() *Subscription {
	return s.notifier.Subscribe()
}

// Unsubscribe releases a subscription and closes its channel
func (s *Session) Unsubscribe(sub *Subscription) {
	s.notifier.Unsubscribe(sub)
}

// Started exposes the start latch for callers multiplexing over several
// channels. The channel is closed exactly once, at the start transition.
func (s *Session) Started() <-chan struct{} {
	return s.notifier.Started()
}

// StartSnapshot returns the snapshot taken at the start transition. It is
// only valid after the Started channel is closed.
func (s *Session) StartSnapshot() model.GameSnapshot {
	return s.notifier.StartSnapshot()
}

func (s *Session) publish(eventType model.EventType, payload any) {
	s.notifier.Publish(model.Event{
		Type:      eventType,
		Timestamp: s.clock.Now(),
		GameCode:  s.code,
		Payload:   payload,
	})
}
