// Package occurrence resolves which events occur at a given calendar date or
// (date, hour) grid cell, applying the recurrence rules. All functions are
// pure: they read the event snapshot and never mutate it.
package occurrence

import (
	"sort"
	"time"

	"github.com/memocal/memocal/pkg/event"
)

// Matches reports whether e occurs on the given date. An event matches when
// its anchor date equals the query date, when it recurs daily, or when it
// recurs weekly and the weekdays agree. The anchor date is not a lower
// bound: a recurring event also matches dates before its anchor.
func Matches(e event.Event, date time.Time) bool {
	if e.Date == date.Format(event.DateLayout) {
		return true
	}

	switch e.Recurrence {
	case event.RecurrenceDaily:
		return true
	case event.RecurrenceWeekly:
		anchor, err := e.AnchorDate()
		if err != nil {
			return false
		}
		return anchor.Weekday() == date.Weekday()
	}

	return false
}

// OnDate returns the events occurring on the given date, in store order.
func OnDate(events []event.Event, date time.Time) []event.Event {
	matched := make([]event.Event, 0, len(events))
	for _, e := range events {
		if Matches(e, date) {
			matched = append(matched, e)
		}
	}
	return matched
}

// AtHour returns the events occurring on the given date whose leading hour
// component equals hour. Minutes play no part: 09:00 and 09:45 land in the
// same hour bucket.
func AtHour(events []event.Event, date time.Time, hour int) []event.Event {
	matched := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.Hour() == hour && Matches(e, date) {
			matched = append(matched, e)
		}
	}
	return matched
}

// SortByTime returns a copy of events ordered by time of day. The HH:MM
// format sorts correctly as a plain string. Order of equal times follows
// the input order.
func SortByTime(events []event.Event) []event.Event {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}
