package app

import (
	"context"
	"database/sql"

	"github.com/memocal/memocal/internal/config"
	"github.com/memocal/memocal/internal/event_bus"
	"github.com/memocal/memocal/internal/metric"
	"github.com/memocal/memocal/internal/utils"
	"github.com/memocal/memocal/pkg/event"
	"github.com/memocal/memocal/pkg/storage"
	"github.com/memocal/memocal/pkg/view"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Metrics  *metric.Metrics

	Storage         storage.Storage
	EventRepository event.Repository
	EventStore      *event.Store
	EventHandler    *event.EventHandler

	ViewService    *view.Service
	GridRenderer   *view.GridRenderer
	AgendaRenderer *view.AgendaRenderer
	ViewHandler    *view.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
// The event list is loaded from storage once, here, at startup.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Metrics = metric.Init(deps.EventBus)
	deps.Clock = &utils.SystemClock{}

	deps.Storage = storage.NewSQLiteStorage(db)
	deps.EventRepository = event.NewStorageRepository(deps.Storage, cfg.Calendar.StorageKey)
	deps.EventStore = event.NewStore(deps.EventRepository, deps.EventBus)
	deps.EventStore.Load(context.Background())
	deps.EventHandler = event.NewEventHandler(deps.EventStore)

	deps.ViewService = view.NewService(deps.EventStore, deps.Clock, cfg.Calendar.DefaultColor)
	deps.GridRenderer = view.NewGridRenderer(deps.Clock)
	deps.AgendaRenderer = view.NewAgendaRenderer()
	deps.ViewHandler = view.NewHandler(deps.ViewService, deps.EventStore, deps.GridRenderer, deps.AgendaRenderer)

	return deps
}
