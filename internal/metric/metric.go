package metric

import (
	"github.com/memocal/memocal/internal/event_bus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

// Metrics exposes counters for store mutations and persistence failures.
// Values are fed from the event bus so the store stays metrics-agnostic.
type Metrics struct {
	eventsCreated       prometheus.Counter
	eventsUpdated       prometheus.Counter
	eventsDeleted       prometheus.Counter
	persistenceFailures prometheus.Counter
}

func Init(bus *event_bus.EventBus) *Metrics {
	m := &Metrics{
		eventsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memocal_events_created_total",
			Help: "Number of calendar events created",
		}),
		eventsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memocal_events_updated_total",
			Help: "Number of calendar events updated",
		}),
		eventsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memocal_events_deleted_total",
			Help: "Number of calendar events deleted",
		}),
		persistenceFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "memocal_persistence_failures_total",
			Help: "Number of failed event list writes to storage",
		}),
	}

	event_bus.SubscribeTyped[event_bus.CalendarEventCreated](
		bus,
		event_bus.CalendarEventCreatedType,
		func(e event_bus.EventT[event_bus.CalendarEventCreated]) error {
			m.eventsCreated.Inc()
			return nil
		},
	)
	event_bus.SubscribeTyped[event_bus.CalendarEventUpdated](
		bus,
		event_bus.CalendarEventUpdatedType,
		func(e event_bus.EventT[event_bus.CalendarEventUpdated]) error {
			m.eventsUpdated.Inc()
			return nil
		},
	)
	event_bus.SubscribeTyped[event_bus.CalendarEventDeleted](
		bus,
		event_bus.CalendarEventDeletedType,
		func(e event_bus.EventT[event_bus.CalendarEventDeleted]) error {
			m.eventsDeleted.Inc()
			return nil
		},
	)
	event_bus.SubscribeTyped[event_bus.PersistenceFailed](
		bus,
		event_bus.PersistenceFailedType,
		func(e event_bus.EventT[event_bus.PersistenceFailed]) error {
			log.Warnf("persistence failure during %s: %s", e.Data.Operation, e.Data.Reason)
			m.persistenceFailures.Inc()
			return nil
		},
	)

	return m
}
