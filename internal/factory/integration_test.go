package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamelobby-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete flow from game creation to start
func (s *IntegrationSuite) TestCompleteLobbyFlow() {
	s.app.QueueGame("042917", 9001)

	// Step 1: Create a game
	session, err := s.app.Controller.CreateGame(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.GameCode("042917"), session.Code())
	s.Equal(model.Token(9001), session.AdminToken())

	// Step 2: Two players join
	s.app.QueuePlayer(101, 1001)
	ann, annToken, err := s.app.Controller.JoinGame(s.ctx, "042917", "Ann")
	s.Require().NoError(err)
	s.Equal(model.PlayerID(101), ann.ID)
	s.Equal(model.Token(1001), annToken)

	s.app.QueuePlayer(102, 1002)
	bo, _, err := s.app.Controller.JoinGame(s.ctx, "042917", "Bo")
	s.Require().NoError(err)

	// Step 3: The admin fixes Bo's name
	err = s.app.Controller.SetPlayerName(s.ctx, "042917", 9001, bo.ID, "Robert")
	s.Require().NoError(err)

	// Step 4: A player waits for the start while the admin starts the game
	waited := make(chan model.GameSnapshot, 1)
	go func() {
		snapshot, waitErr := s.app.Controller.WaitForStart(s.ctx, "042917", annToken)
		if waitErr == nil {
			waited <- snapshot
		}
	}()

	time.Sleep(20 * time.Millisecond)

	s.app.MockClock.Advance(5 * time.Minute)
	started, err := s.app.Controller.StartGame(s.ctx, "042917", 9001)
	s.Require().NoError(err)
	s.Equal(model.PhaseStarted, started.Phase)
	s.Equal(s.app.MockClock.Now(), started.StartedAt)

	select {
	case snapshot := <-waited:
		s.Equal(started, snapshot)
	case <-time.After(time.Second):
		s.Fail("waiter was not released")
	}

	// Step 5: The finished lobby is archived
	record, err := s.app.Controller.GetArchivedGame(s.ctx, "042917")
	s.Require().NoError(err)
	s.Equal(model.GameCode("042917"), record.GameCode)
	s.Require().Len(record.Players, 2)
	s.Equal("Ann", record.Players[0].Name)
	s.Equal("Robert", record.Players[1].Name)
}

// Test: Several live games run independently
func (s *IntegrationSuite) TestMultipleLiveGames() {
	s.app.QueueGame("111111", 9001)
	s.app.QueueGame("222222", 9002)

	first, err := s.app.Controller.CreateGame(s.ctx)
	s.Require().NoError(err)
	second, err := s.app.Controller.CreateGame(s.ctx)
	s.Require().NoError(err)

	s.app.QueuePlayer(101, 1001)
	_, _, err = s.app.Controller.JoinGame(s.ctx, first.Code(), "Ann")
	s.Require().NoError(err)

	_, err = s.app.Controller.StartGame(s.ctx, first.Code(), first.AdminToken())
	s.Require().NoError(err)

	// The second game is still open for joins
	s.app.QueuePlayer(102, 1002)
	_, _, err = s.app.Controller.JoinGame(s.ctx, second.Code(), "Bo")
	s.Require().NoError(err)

	s.Equal(2, s.app.Controller.LiveGameCount())
}

// Test: Production factory wires working defaults
func (s *IntegrationSuite) TestProductionFactoryDefaults() {
	app, err := New(Config{})
	s.Require().NoError(err)

	session, err := app.Controller.CreateGame(s.ctx)
	s.Require().NoError(err)
	s.True(session.Code().Valid())
	s.Equal(1, app.Controller.LiveGameCount())
}

// Test: Factory rejects bad storage configuration
func (s *IntegrationSuite) TestFactoryRejectsBadStorage() {
	_, err := New(Config{StorageType: "cassandra"})
	s.Error(err)

	// Redis storage needs connection settings
	_, err = New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}
