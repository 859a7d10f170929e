package factory

import (
	"time"

	"github.com/mcoot/playerlist/internal/dependencies/mocks"
	"github.com/mcoot/playerlist/internal/settings"
	"github.com/mcoot/playerlist/internal/storage/memory"
	"github.com/mcoot/playerlist/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	Memory    *memory.Storage
}

// NewTestApp creates an App backed by memory storage with a mocked clock.
// The playerlist starts empty and is bound to playerlist.json.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app, err := newWithDependencies("playerlist.json", store, mockClock, settings.StaticLocator{}, testutil.NopLogger())
	if err != nil {
		// memory storage starts empty, so loading can only hit not-found
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Memory:    store,
	}
}

// Reload loads the playerlist again from memory storage, as a restart would
func (t *TestApp) Reload() error {
	app, err := newWithDependencies(t.Store.Path(), t.Memory, t.MockClock, t.Locator, testutil.NopLogger())
	if err != nil {
		return err
	}
	t.App = app
	return nil
}
