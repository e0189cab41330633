package factory

import (
	"time"

	"github.com/mcoot/gamelobby-go/internal/dependencies/mocks"
	"github.com/mcoot/gamelobby-go/internal/storage/memory"
	"github.com/mcoot/gamelobby-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := testutil.NopLogger()

	app := newWithDependencies(store, mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueGame queues the random draws for one created game: six digit draws
// for the code, then one token draw for the admin token
func (t *TestApp) QueueGame(code string, adminToken uint32) {
	t.MockRandom.QueueCode(code)
	t.MockRandom.QueueUint32(adminToken)
}

// QueuePlayer queues the random draws for one joining player: the player
// id draw, then the player token draw
func (t *TestApp) QueuePlayer(id, token uint32) {
	t.MockRandom.QueueUint32(id, token)
}
