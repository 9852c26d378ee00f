package event_bus

const (
	CalendarEventCreatedType EventType = "calendar.event.created"
	CalendarEventUpdatedType EventType = "calendar.event.updated"
	CalendarEventDeletedType EventType = "calendar.event.deleted"
	PersistenceFailedType    EventType = "calendar.persistence.failed"
)

type CalendarEventCreated struct {
	ID         string
	Title      string
	Date       string
	Time       string
	Recurrence string
}

type CalendarEventUpdated struct {
	ID    string
	Title string
}

type CalendarEventDeleted struct {
	ID string
}

// PersistenceFailed is published when re-persisting the event list fails.
// The in-memory state is still mutated; the failure is informational.
type PersistenceFailed struct {
	Operation string
	Reason    string
}
