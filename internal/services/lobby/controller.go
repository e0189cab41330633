package lobby

import (
	"context"
	"log/slog"

	"github.com/mcoot/gamelobby-go/internal/model"
	"github.com/mcoot/gamelobby-go/internal/services/game"
	"github.com/mcoot/gamelobby-go/internal/services/identity"
	"github.com/mcoot/gamelobby-go/internal/services/registry"
	"github.com/mcoot/gamelobby-go/internal/storage"
)

// Controller orchestrates game lifecycle operations over the session
// registry. It owns authorization: handlers pass raw tokens in and the
// controller decides what they permit.
type Controller struct {
	registry  *registry.Registry
	generator *identity.Generator
	archive   storage.Store
	logger    *slog.Logger
}

// NewController creates a new lobby controller
func NewController(
	registry *registry.Registry,
	generator *identity.Generator,
	archive storage.Store,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		registry:  registry,
		generator: generator,
		archive:   archive,
		logger:    logger,
	}
}

// CreateGame registers a new empty session and returns it. The caller
// reads the code and admin token off the session.
func (c *Controller) CreateGame(ctx context.Context) (*game.Session, error) {
	session, err := c.registry.Create()
	if err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_code", string(session.Code())),
		slog.Int("live_sessions", c.registry.Count()),
	)
	return session, nil
}

// JoinGame adds a player to a session still in the lobby phase. The
// player's id and token are fresh draws from the shared token pool; the
// token is returned exactly once, here.
func (c *Controller) JoinGame(ctx context.Context, code model.GameCode, name string) (model.Player, model.Token, error) {
	session, err := c.registry.Lookup(code)
	if err != nil {
		return model.Player{}, 0, err
	}

	id := c.generator.PlayerID()
	token := c.generator.Token()

	player, err := session.AddPlayer(id, token, name)
	if err != nil {
		return model.Player{}, 0, err
	}

	c.logger.Info("player joined",
		slog.String("game_code", string(code)),
		slog.String("player_id", player.ID.String()),
	)
	return player, token, nil
}

// SetPlayerName renames a player. Permitted for the session admin and for
// the player holding the target's own token; any other token is rejected.
func (c *Controller) SetPlayerName(ctx context.Context, code model.GameCode, token model.Token, playerID model.PlayerID, name string) error {
	session, err := c.registry.Lookup(code)
	if err != nil {
		return err
	}

	if !session.IsAdminToken(token) {
		actor, err := session.GetPlayerByToken(token)
		if err != nil || actor.ID != playerID {
			return model.ErrNotAuthorized
		}
	}

	if _, err := session.RenamePlayer(playerID, name); err != nil {
		return err
	}

	c.logger.Info("player renamed",
		slog.String("game_code", string(code)),
		slog.String("player_id", playerID.String()),
	)
	return nil
}

// StartGame moves a session out of the lobby phase. Admin only. Every
// waiter blocked on the session is released with the snapshot taken at
// the transition, and the game is archived.
func (c *Controller) StartGame(ctx context.Context, code model.GameCode, token model.Token) (model.GameSnapshot, error) {
	session, err := c.registry.Lookup(code)
	if err != nil {
		return model.GameSnapshot{}, err
	}

	if !session.IsAdminToken(token) {
		return model.GameSnapshot{}, model.ErrNotAuthorized
	}

	snapshot, err := session.Start()
	if err != nil {
		return model.GameSnapshot{}, err
	}

	// The archive write is best effort; a storage outage must not stop
	// the game from starting.
	record := &model.ArchiveRecord{
		GameCode:  snapshot.Code,
		Players:   snapshot.Players,
		StartedAt: snapshot.StartedAt,
	}
	if err := c.archive.SaveRecord(ctx, record); err != nil {
		c.logger.Warn("failed to archive started game",
			slog.String("game_code", string(code)),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("game started",
		slog.String("game_code", string(code)),
		slog.Int("player_count", len(snapshot.Players)),
	)
	return snapshot, nil
}

// GetGame returns a snapshot of a session's current state. Any of the
// session's tokens may read it, admin included.
func (c *Controller) GetGame(ctx context.Context, code model.GameCode, token model.Token) (model.GameSnapshot, error) {
	session, err := c.registry.Lookup(code)
	if err != nil {
		return model.GameSnapshot{}, err
	}

	if !session.IsAdminToken(token) {
		if _, err := session.GetPlayerByToken(token); err != nil {
			return model.GameSnapshot{}, model.ErrNotAuthorized
		}
	}

	return session.Snapshot(), nil
}

// WatchGame validates a streaming subscription request and returns the
// live session with the watching player. Only players watch; the admin
// token does not resolve to a player and is rejected.
func (c *Controller) WatchGame(ctx context.Context, code model.GameCode, token model.Token) (*game.Session, model.Player, error) {
	session, err := c.registry.Lookup(code)
	if err != nil {
		return nil, model.Player{}, err
	}

	player, err := session.GetPlayerByToken(token)
	if err != nil {
		return nil, model.Player{}, err
	}

	return session, player, nil
}

// WaitForStart blocks until the session starts or ctx is done, then
// returns the snapshot taken at the start transition
func (c *Controller) WaitForStart(ctx context.Context, code model.GameCode, token model.Token) (model.GameSnapshot, error) {
	session, _, err := c.WatchGame(ctx, code, token)
	if err != nil {
		return model.GameSnapshot{}, err
	}

	return session.WaitForStart(ctx)
}

// GetArchivedGame retrieves the archived record of a started game
func (c *Controller) GetArchivedGame(ctx context.Context, code model.GameCode) (*model.ArchiveRecord, error) {
	return c.archive.GetRecord(ctx, code)
}

// ListArchivedGames returns archived games, most recently started first
func (c *Controller) ListArchivedGames(ctx context.Context, limit int) ([]*model.ArchiveRecord, error) {
	return c.archive.ListRecords(ctx, limit)
}

// LiveGameCount returns the number of sessions in the registry
func (c *Controller) LiveGameCount() int {
	return c.registry.Count()
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context) (*game.Session, error)
	JoinGame(ctx context.Context, code model.GameCode, name string) (model.Player, model.Token, error)
	SetPlayerName(ctx context.Context, code model.GameCode, token model.Token, playerID model.PlayerID, name string) error
	StartGame(ctx context.Context, code model.GameCode, token model.Token) (model.GameSnapshot, error)
	GetGame(ctx context.Context, code model.GameCode, token model.Token) (model.GameSnapshot, error)
	WatchGame(ctx context.Context, code model.GameCode, token model.Token) (*game.Session, model.Player, error)
	WaitForStart(ctx context.Context, code model.GameCode, token model.Token) (model.GameSnapshot, error)
	GetArchivedGame(ctx context.Context, code model.GameCode) (*model.ArchiveRecord, error)
	ListArchivedGames(ctx context.Context, limit int) ([]*model.ArchiveRecord, error)
	LiveGameCount() int
}

var _ ControllerInterface = (*Controller)(nil)
