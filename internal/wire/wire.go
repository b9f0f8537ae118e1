// Package wire provides dependency injection for the bosun application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/bosun/internal/adapters/journal"
	"github.com/example/bosun/internal/adapters/sqlite"
	"github.com/example/bosun/internal/adapters/work"
	"github.com/example/bosun/internal/app"
	"github.com/example/bosun/internal/config"
	"github.com/example/bosun/internal/db"
	"github.com/example/bosun/internal/ports/primary"
	"github.com/example/bosun/internal/ports/secondary"
	"github.com/example/bosun/internal/tmux"
)

var (
	cfgOnce sync.Once
	cfg     *config.Config

	once             sync.Once
	store            *db.Store
	missionService   primary.MissionService
	lifecycleService primary.LifecycleService
	workflowService  primary.WorkflowService
	eventService     primary.EventService
)

// Config returns the singleton configuration. Loading never opens the
// ledger, so commands that must run without one (init, doctor) can use it.
func Config() *config.Config {
	cfgOnce.Do(func() {
		loaded, err := config.Load()
		if err != nil {
			log.Fatalf("failed to load configuration: %v", err)
		}
		cfg = loaded
	})
	return cfg
}

// MissionService returns the singleton MissionService instance.
func MissionService() primary.MissionService {
	once.Do(initServices)
	return missionService
}

// LifecycleService returns the singleton LifecycleService instance.
func LifecycleService() primary.LifecycleService {
	once.Do(initServices)
	return lifecycleService
}

// WorkflowService returns the singleton WorkflowService instance.
func WorkflowService() primary.WorkflowService {
	once.Do(initServices)
	return workflowService
}

// EventService returns the singleton EventService instance.
func EventService() primary.EventService {
	once.Do(initServices)
	return eventService
}

// SessionLauncher returns a new tmux session launcher. Each call creates
// a new adapter (the client holds no per-session state). Errors out when
// no tmux binary is available, so it is not part of initServices.
func SessionLauncher() (secondary.SessionLauncher, error) {
	return tmux.NewGotmuxAdapter()
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	c := Config()

	opened, err := db.Open(c.DBPath, db.Options{})
	if err != nil {
		log.Fatalf("failed to open mission ledger: %v (run 'bosun init' first)", err)
	}
	store = opened

	// Repository adapters (secondary ports) with the injected DB
	missionRepo := sqlite.NewMissionRepository(store.DB())
	eventRepo := sqlite.NewEventRepository(store.DB())
	journalWriter := journal.NewFileJournal(c.JournalDir())
	executor := work.NewSimulator()

	// Services (primary ports implementation)
	missionService = app.NewMissionService(missionRepo)
	lifecycleService = app.NewLifecycleService(store, missionRepo, journalWriter)
	workflowService = app.NewWorkflowService(store, missionRepo, lifecycleService, executor)
	eventService = app.NewEventService(eventRepo, missionRepo)
}

// Shutdown releases the scoped store. Safe to call repeatedly, and safe
// to call when no service was ever requested.
func Shutdown() {
	if store != nil {
		_ = store.Close()
	}
}
