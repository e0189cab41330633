package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamelobby-go/internal/dependencies/mocks"
	"github.com/mcoot/gamelobby-go/internal/model"
	"github.com/mcoot/gamelobby-go/internal/testutil"
)

const testAdminToken = model.Token(900001)

type SessionSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	session *Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.session = NewSession("042917", testAdminToken, s.clock, testutil.NopLogger())
}

// AddPlayer tests

func (s *SessionSuite) TestAddPlayerSucceeds() {
	player, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)

	s.Equal(model.PlayerID(1), player.ID)
	s.Equal("Ann", player.Name)
	s.Equal(model.TeamNone, player.Team)
}

func (s *SessionSuite) TestAddPlayerKeepsJoinOrder() {
	_, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)
	_, err = s.session.AddPlayer(2, 1002, "Bo")
	s.Require().NoError(err)

	snapshot := s.session.Snapshot()
	s.Require().Len(snapshot.Players, 2)
	s.Equal(model.PlayerID(1), snapshot.Players[0].ID)
	s.Equal(model.PlayerID(2), snapshot.Players[1].ID)
}

func (s *SessionSuite) TestAddPlayerFailsAfterStart() {
	_, err := s.session.Start()
	s.Require().NoError(err)

	_, err = s.session.AddPlayer(1, 1001, "Late")
	s.ErrorIs(err, model.ErrAlreadyStarted)

	s.Empty(s.session.Snapshot().Players)
}

// RenamePlayer tests

func (s *SessionSuite) TestRenamePlayerSucceeds() {
	_, err := s.session.AddPlayer(2, 1002, "Bo")
	s.Require().NoError(err)

	player, err := s.session.RenamePlayer(2, "Robert")
	s.Require().NoError(err)
	s.Equal("Robert", player.Name)

	stored, err := s.session.GetPlayerByID(2)
	s.Require().NoError(err)
	s.Equal("Robert", stored.Name)
}

func (s *SessionSuite) TestRenamePlayerFailsForUnknownID() {
	_, err := s.session.RenamePlayer(42, "Nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *SessionSuite) TestRenamePlayerAllowedAfterStart() {
	_, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)
	_, err = s.session.Start()
	s.Require().NoError(err)

	_, err = s.session.RenamePlayer(1, "Annabel")
	s.Require().NoError(err)

	stored, err := s.session.GetPlayerByID(1)
	s.Require().NoError(err)
	s.Equal("Annabel", stored.Name)
}

// Token resolution tests

func (s *SessionSuite) TestGetPlayerByTokenResolvesPlayer() {
	_, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)

	player, err := s.session.GetPlayerByToken(1001)
	s.Require().NoError(err)
	s.Equal(model.PlayerID(1), player.ID)
}

func (s *SessionSuite) TestGetPlayerByTokenFailsForUnknownToken() {
	_, err := s.session.GetPlayerByToken(5555)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *SessionSuite) TestGetPlayerByTokenRejectsAdminToken() {
	_, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)

	_, err = s.session.GetPlayerByToken(testAdminToken)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *SessionSuite) TestIsAdminToken() {
	s.True(s.session.IsAdminToken(testAdminToken))
	s.False(s.session.IsAdminToken(1001))
}

// Start tests

func (s *SessionSuite) TestStartTransitionsPhase() {
	s.Equal(model.PhaseLobby, s.session.Phase())

	s.clock.Advance(5 * time.Minute)
	snapshot, err := s.session.Start()
	s.Require().NoError(err)

	s.Equal(model.PhaseStarted, snapshot.Phase)
	s.Equal(s.clock.Now(), snapshot.StartedAt)
	s.Equal(model.PhaseStarted, s.session.Phase())
}

func (s *SessionSuite) TestStartTwiceFails() {
	_, err := s.session.Start()
	s.Require().NoError(err)

	_, err = s.session.Start()
	s.ErrorIs(err, model.ErrAlreadyStarted)
}

func (s *SessionSuite) TestStartSnapshotExcludesLaterRenames() {
	_, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)

	_, err = s.session.Start()
	s.Require().NoError(err)
	_, err = s.session.RenamePlayer(1, "Annabel")
	s.Require().NoError(err)

	started := s.session.StartSnapshot()
	s.Require().Len(started.Players, 1)
	s.Equal("Ann", started.Players[0].Name)
}

func (s *SessionSuite) TestWaitForStartReturnsImmediatelyWhenStarted() {
	_, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)
	_, err = s.session.Start()
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	snapshot, err := s.session.WaitForStart(ctx)
	s.Require().NoError(err)
	s.Equal(model.PhaseStarted, snapshot.Phase)
	s.Require().Len(snapshot.Players, 1)
	s.Equal("Ann", snapshot.Players[0].Name)
}

// Snapshot isolation tests

func (s *SessionSuite) TestSnapshotIsIsolatedFromLaterChanges() {
	_, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)

	snapshot := s.session.Snapshot()

	_, err = s.session.RenamePlayer(1, "Robert")
	s.Require().NoError(err)

	s.Equal("Ann", snapshot.Players[0].Name)
}

func (s *SessionSuite) TestSnapshotMutationDoesNotAffectSession() {
	_, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)

	snapshot := s.session.Snapshot()
	snapshot.Players[0].Name = "Mangled"

	stored, err := s.session.GetPlayerByID(1)
	s.Require().NoError(err)
	s.Equal("Ann", stored.Name)
}

// Event feed tests

func (s *SessionSuite) TestSubscribeReceivesPlayerChanges() {
	sub := s.session.Subscribe()
	defer s.session.Unsubscribe(sub)

	_, err := s.session.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)
	_, err = s.session.RenamePlayer(1, "Annabel")
	s.Require().NoError(err)

	joined := <-sub.C
	s.Equal(model.EventPlayerJoined, joined.Type)
	s.Equal(model.GameCode("042917"), joined.GameCode)
	joinedPayload, ok := joined.Payload.(model.PlayerJoinedPayload)
	s.Require().True(ok)
	s.Equal("Ann", joinedPayload.Player.Name)

	renamed := <-sub.C
	s.Equal(model.EventPlayerRenamed, renamed.Type)
	renamedPayload, ok := renamed.Payload.(model.PlayerRenamedPayload)
	s.Require().True(ok)
	s.Equal(model.PlayerID(1), renamedPayload.PlayerID)
	s.Equal("Annabel", renamedPayload.Name)
}
