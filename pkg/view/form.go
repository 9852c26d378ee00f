package view

import (
	"time"

	"github.com/memocal/memocal/pkg/event"
)

// Form holds the edit dialog's field state. It only turns into a store
// payload once validation passes.
type Form struct {
	Title       string
	Description string
	Date        string
	Time        string
	Duration    int
	Recurrence  string
	Color       string
}

const (
	defaultFormTime     = "09:00"
	defaultFormDuration = 60
)

// SeedForCreate returns the form state for a new event on the selected date.
func SeedForCreate(selectedDate time.Time, defaultColor string) Form {
	return Form{
		Date:       selectedDate.Format(event.DateLayout),
		Time:       defaultFormTime,
		Duration:   defaultFormDuration,
		Recurrence: string(event.RecurrenceNone),
		Color:      defaultColor,
	}
}

// SeedForEdit returns the form state pre-filled from an existing event.
func SeedForEdit(e event.Event) Form {
	return Form{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Duration:    e.Duration,
		Recurrence:  string(e.Recurrence),
		Color:       e.DisplayColor(),
	}
}

// Payload validates the form and produces the event draft. When validation
// fails no draft is emitted and the field errors are returned instead.
func (f Form) Payload() (event.Draft, event.ValidationErrors) {
	draft := event.Draft{
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		Time:        f.Time,
		Duration:    f.Duration,
		Recurrence:  event.Recurrence(f.Recurrence),
		Color:       f.Color,
	}
	if errs := draft.Validate(); errs != nil {
		return event.Draft{}, errs
	}
	return draft, nil
}
