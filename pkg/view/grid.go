package view

import (
	"time"

	"github.com/memocal/memocal/internal/utils"
	"github.com/memocal/memocal/pkg/event"
	"github.com/memocal/memocal/pkg/occurrence"
)

// GridDocument is the rendered day/week time grid: one column per visible
// date, one cell per hour of day.
type GridDocument struct {
	Mode Mode      `json:"mode"`
	Days []GridDay `json:"days"`
}

type GridDay struct {
	Date    string     `json:"date"`
	Weekday string     `json:"weekday"`
	Today   bool       `json:"today"`
	Cells   []GridCell `json:"cells"`
}

type GridCell struct {
	Hour   int         `json:"hour"`
	Events []GridEvent `json:"events,omitempty"`
}

type GridEvent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Color    string `json:"color"`
}

// GridRenderer turns an event snapshot and a visible date range into a grid
// document, resolving each (date, hour) cell through the occurrence resolver.
type GridRenderer struct {
	clock utils.Clock
}

func NewGridRenderer(clock utils.Clock) *GridRenderer {
	return &GridRenderer{clock: clock}
}

func (g *GridRenderer) Render(events []event.Event, mode Mode, days []time.Time) GridDocument {
	today := g.clock.Now().Format(event.DateLayout)

	doc := GridDocument{Mode: mode, Days: make([]GridDay, 0, len(days))}
	for _, day := range days {
		date := day.Format(event.DateLayout)
		column := GridDay{
			Date:    date,
			Weekday: day.Weekday().String(),
			Today:   date == today,
			Cells:   make([]GridCell, 0, 24),
		}
		for hour := 0; hour < 24; hour++ {
			cell := GridCell{Hour: hour}
			for _, e := range occurrence.AtHour(events, day, hour) {
				cell.Events = append(cell.Events, GridEvent{
					ID:       e.ID,
					Title:    e.Title,
					Time:     e.Time,
					Duration: e.Duration,
					Color:    e.DisplayColor(),
				})
			}
			column.Cells = append(column.Cells, cell)
		}
		doc.Days = append(doc.Days, column)
	}
	return doc
}
