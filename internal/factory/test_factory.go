package factory

import (
	"time"

	"github.com/okarpov/boardbanker/internal/dependencies/mocks"
	"github.com/okarpov/boardbanker/internal/services/auth"
	"github.com/okarpov/boardbanker/internal/storage/memory"
	"github.com/okarpov/boardbanker/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MemStorage *memory.Store
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp(authCfg auth.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, mockClock, mockRandom, authCfg, testutil.NopLogger())
	if err != nil {
		// Only reachable through a bcrypt failure on the configured passcode
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MemStorage: store,
	}
}
