package view

import (
	"testing"
	"time"

	"github.com/memocal/memocal/internal/utils"
	"github.com/memocal/memocal/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekDays(start time.Time) []time.Time {
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

func TestGridRenderer_WeekView(t *testing.T) {
	renderer := NewGridRenderer(&utils.MockClock{FixedNow: testNow})
	events := []event.Event{
		{ID: "daily", Title: "Standup", Date: "2024-06-03", Time: "09:00", Duration: 30, Recurrence: event.RecurrenceDaily},
		{ID: "weekly", Title: "Team sync", Date: "2024-06-03", Time: "14:00", Duration: 60, Recurrence: event.RecurrenceWeekly},
		{ID: "single", Title: "Dentist", Date: "2024-06-12", Time: "16:30", Duration: 45, Recurrence: event.RecurrenceNone, Color: "#ef4444"},
	}

	// Week of Monday 2024-06-10.
	days := weekDays(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	doc := renderer.Render(events, ModeWeek, days)

	assert.Equal(t, ModeWeek, doc.Mode)
	require.Len(t, doc.Days, 7)
	for _, day := range doc.Days {
		assert.Len(t, day.Cells, 24)
	}

	monday := doc.Days[0]
	assert.Equal(t, "2024-06-10", monday.Date)
	assert.Equal(t, "Monday", monday.Weekday)
	assert.False(t, monday.Today)

	wednesday := doc.Days[2]
	assert.Equal(t, "2024-06-12", wednesday.Date)
	assert.True(t, wednesday.Today)

	// The daily event fills the 09:00 cell of every day.
	for _, day := range doc.Days {
		require.Len(t, day.Cells[9].Events, 1, "day %s", day.Date)
		assert.Equal(t, "Standup", day.Cells[9].Events[0].Title)
	}

	// The weekly event appears only on Monday.
	require.Len(t, monday.Cells[14].Events, 1)
	assert.Equal(t, "Team sync", monday.Cells[14].Events[0].Title)
	assert.Empty(t, doc.Days[1].Cells[14].Events)

	// The single event lands in Wednesday's 16:00 cell despite its minutes.
	require.Len(t, wednesday.Cells[16].Events, 1)
	single := wednesday.Cells[16].Events[0]
	assert.Equal(t, "Dentist", single.Title)
	assert.Equal(t, "16:30", single.Time)
	assert.Equal(t, "#ef4444", single.Color)
}

func TestGridRenderer_DefaultColorApplied(t *testing.T) {
	renderer := NewGridRenderer(&utils.MockClock{FixedNow: testNow})
	events := []event.Event{
		{ID: "1", Title: "Plain", Date: "2024-06-12", Time: "08:00", Duration: 30, Recurrence: event.RecurrenceNone},
	}

	days := []time.Time{time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)}
	doc := renderer.Render(events, ModeDay, days)

	require.Len(t, doc.Days, 1)
	require.Len(t, doc.Days[0].Cells[8].Events, 1)
	assert.Equal(t, event.DefaultColor, doc.Days[0].Cells[8].Events[0].Color)
}
