package view

import (
	"time"

	"github.com/memocal/memocal/pkg/event"
	"github.com/memocal/memocal/pkg/occurrence"
)

// AgendaDocument lists the occurrences for one date, sorted by time of day.
// Unlike the grid, minutes matter here: 09:00 sorts before 09:45.
type AgendaDocument struct {
	Date   string        `json:"date"`
	Count  int           `json:"count"`
	Events []AgendaEvent `json:"events"`
}

type AgendaEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Recurrence  string `json:"recurrence"`
	Color       string `json:"color"`
}

// AgendaRenderer produces the agenda document for a date.
type AgendaRenderer struct{}

func NewAgendaRenderer() *AgendaRenderer {
	return &AgendaRenderer{}
}

func (a *AgendaRenderer) Render(events []event.Event, date time.Time) AgendaDocument {
	occurrences := occurrence.SortByTime(occurrence.OnDate(events, date))

	doc := AgendaDocument{
		Date:   date.Format(event.DateLayout),
		Count:  len(occurrences),
		Events: make([]AgendaEvent, 0, len(occurrences)),
	}
	for _, e := range occurrences {
		doc.Events = append(doc.Events, AgendaEvent{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Time:        e.Time,
			Duration:    e.Duration,
			Recurrence:  string(e.Recurrence),
			Color:       e.DisplayColor(),
		})
	}
	return doc
}
