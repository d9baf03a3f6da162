package factory

import (
	"time"

	"wordleboard/internal/dependencies/mocks"
	"wordleboard/internal/secrets"
	"wordleboard/internal/storage/memory"
	"wordleboard/internal/testutil"
)

// TestRelaySecret is the fixed relay secret used by test apps
var TestRelaySecret = secrets.RelaySecret{
	AccountSID:   "AC00000000000000000000000000000000",
	AuthToken:    "test-auth-token",
	SenderNumber: "+15550100000",
}

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock    *mocks.MockClock
	MockRandom   *mocks.MockRandom
	MockNotifier *mocks.MockNotifier
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockNotifier := mocks.NewMockNotifier()
	secretSource := secrets.NewStatic(TestRelaySecret)

	cfg := Config{
		HashPepper:      "test-pepper",
		CallbackBaseURL: "http://localhost:8080",
	}

	app := newWithDependencies(store, mockClock, mockRandom, mockNotifier, secretSource, cfg, testutil.NopLogger())

	return &TestApp{
		App:          app,
		MockClock:    mockClock,
		MockRandom:   mockRandom,
		MockNotifier: mockNotifier,
	}
}
