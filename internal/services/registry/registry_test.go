package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/mcoot/gamelobby-go/internal/dependencies/mocks"
	"github.com/mcoot/gamelobby-go/internal/dependencies/random"
	"github.com/mcoot/gamelobby-go/internal/model"
	"github.com/mcoot/gamelobby-go/internal/services/identity"
	"github.com/mcoot/gamelobby-go/internal/testutil"
)

type RegistrySuite struct {
	suite.Suite
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	registry *Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.registry = New(identity.NewGenerator(s.random), s.clock, testutil.NopLogger())
}

func (s *RegistrySuite) TestCreateRegistersSession() {
	s.random.QueueCode("042917")
	s.random.QueueUint32(7001)

	session, err := s.registry.Create()
	s.Require().NoError(err)

	s.Equal(model.GameCode("042917"), session.Code())
	s.Equal(model.Token(7001), session.AdminToken())
	s.Equal(1, s.registry.Count())

	found, err := s.registry.Lookup("042917")
	s.Require().NoError(err)
	s.Same(session, found)
}

func (s *RegistrySuite) TestCreateKeepsLeadingZeros() {
	s.random.QueueCode("000042")

	session, err := s.registry.Create()
	s.Require().NoError(err)
	s.Equal(model.GameCode("000042"), session.Code())

	_, err = s.registry.Lookup("000042")
	s.NoError(err)
}

func (s *RegistrySuite) TestCreateRerollsCollidingCode() {
	s.random.QueueCode("111111")
	first, err := s.registry.Create()
	s.Require().NoError(err)

	s.random.QueueCode("111111")
	s.random.QueueCode("222222")
	second, err := s.registry.Create()
	s.Require().NoError(err)

	s.Equal(model.GameCode("111111"), first.Code())
	s.Equal(model.GameCode("222222"), second.Code())
	s.Equal(2, s.registry.Count())
}

func (s *RegistrySuite) TestCreateFailsWhenCodeSpaceExhausted() {
	s.random.QueueCode("111111")
	_, err := s.registry.Create()
	s.Require().NoError(err)

	for i := 0; i < MaxCodeAttempts; i++ {
		s.random.QueueCode("111111")
	}
	_, err = s.registry.Create()
	s.ErrorIs(err, model.ErrCapacityExceeded)

	s.Equal(1, s.registry.Count())
}

func (s *RegistrySuite) TestLookupUnknownCodeFails() {
	_, err := s.registry.Lookup("999999")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *RegistrySuite) TestSessionsAreIndependent() {
	s.random.QueueCode("111111")
	s.random.QueueCode("222222")

	first, err := s.registry.Create()
	s.Require().NoError(err)
	second, err := s.registry.Create()
	s.Require().NoError(err)

	_, err = first.AddPlayer(1, 1001, "Ann")
	s.Require().NoError(err)

	s.Empty(second.Snapshot().Players)
	s.Len(first.Snapshot().Players, 1)
}

// Property-based tests

func TestCreatedCodesAreUniqueAndValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 64).Draw(t, "count")

		reg := New(
			identity.NewGenerator(random.New()),
			mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
			testutil.NopLogger(),
		)

		seen := make(map[model.GameCode]bool, count)
		for i := 0; i < count; i++ {
			session, err := reg.Create()
			if err != nil {
				t.Fatalf("create %d failed: %v", i, err)
			}
			code := session.Code()
			if !code.Valid() {
				t.Fatalf("create %d produced invalid code %q", i, code)
			}
			if seen[code] {
				t.Fatalf("create %d produced duplicate code %q", i, code)
			}
			seen[code] = true
		}

		if reg.Count() != count {
			t.Fatalf("registry holds %d sessions, want %d", reg.Count(), count)
		}
	})
}
