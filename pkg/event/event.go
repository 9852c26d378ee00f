package event

import (
	"strconv"
	"strings"
	"time"
)

// Recurrence describes how often an event repeats.
type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly:
		return true
	}
	return false
}

const (
	// DateLayout is the stored calendar date format (anchor date).
	DateLayout = "2006-01-02"
	// TimeLayout is the stored time-of-day format (24h).
	TimeLayout = "15:04"
)

// DefaultColor is used when an event carries no color of its own.
const DefaultColor = "#6366f1"

// PaletteColor is one entry of the fixed color palette offered by the edit form.
type PaletteColor struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Palette is the fixed set of colors an event may be assigned.
var Palette = []PaletteColor{
	{Value: "#6366f1", Label: "indigo"},
	{Value: "#8b5cf6", Label: "violet"},
	{Value: "#ec4899", Label: "pink"},
	{Value: "#f59e0b", Label: "amber"},
	{Value: "#10b981", Label: "emerald"},
	{Value: "#3b82f6", Label: "blue"},
	{Value: "#ef4444", Label: "red"},
}

// Event is the sole persisted entity. Date is the anchor date in DateLayout,
// Time is the time of day in TimeLayout, Duration is in minutes.
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Duration    int        `json:"duration"`
	Recurrence  Recurrence `json:"recurrence"`
	Color       string     `json:"color,omitempty"`
}

// Draft is an Event before the store has assigned it an id.
type Draft struct {
	Title       string
	Description string
	Date        string
	Time        string
	Duration    int
	Recurrence  Recurrence
	Color       string
}

// Hour returns the leading hour component of the event's time, or -1 when it
// cannot be parsed. Minutes are deliberately ignored: events at 09:00 and
// 09:45 occupy the same hour bucket.
func (e Event) Hour() int {
	return HourOf(e.Time)
}

// HourOf parses the leading hour component of a HH:MM string.
func HourOf(timeOfDay string) int {
	head, _, _ := strings.Cut(timeOfDay, ":")
	hour, err := strconv.Atoi(head)
	if err != nil || hour < 0 || hour > 23 {
		return -1
	}
	return hour
}

// DisplayColor returns the event's color, falling back to the default accent.
func (e Event) DisplayColor() string {
	if e.Color == "" {
		return DefaultColor
	}
	return e.Color
}

// AnchorDate parses the event's stored date.
func (e Event) AnchorDate() (time.Time, error) {
	return time.Parse(DateLayout, e.Date)
}

// ValidationErrors maps field names to human-readable problems.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	return "invalid event fields: " + strings.Join(fields, ", ")
}

// Validate checks the draft against the data model constraints. It returns
// nil when the draft may be turned into an event.
func (d Draft) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(d.Title) == "" {
		errs["title"] = "title must not be empty"
	}
	// time.Parse accepts single-digit components ("9:00", "2024-6-1"); the
	// round-trip check pins stored values to the zero-padded canonical form,
	// which the agenda's string ordering relies on.
	if parsed, err := time.Parse(DateLayout, d.Date); err != nil || parsed.Format(DateLayout) != d.Date {
		errs["date"] = "date must be a calendar date in YYYY-MM-DD format"
	}
	if parsed, err := time.Parse(TimeLayout, d.Time); err != nil || parsed.Format(TimeLayout) != d.Time {
		errs["time"] = "time must be a zero-padded time of day in HH:MM format"
	}
	if d.Duration <= 0 {
		errs["duration"] = "duration must be a positive number of minutes"
	}
	if !d.Recurrence.Valid() {
		errs["recurrence"] = "recurrence must be one of none, daily, weekly"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
