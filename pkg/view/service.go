package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/memocal/memocal/internal/utils"
	"github.com/memocal/memocal/pkg/event"
	log "github.com/sirupsen/logrus"
)

var ErrNoDialog = errors.New("no dialog is open")

// Service is the view controller: it holds the selected date, the day/week
// mode, and the dialog state, and wires save/delete actions to the store.
// All state lives here so the frontend stays a dumb renderer.
type Service struct {
	mu           sync.Mutex
	store        *event.Store
	clock        utils.Clock
	defaultColor string

	selectedDate time.Time
	mode         Mode
	dialog       DialogState
	editingID    string
	form         Form
}

func NewService(store *event.Store, clock utils.Clock, defaultColor string) *Service {
	now := clock.Now()
	return &Service{
		store:        store,
		clock:        clock,
		defaultColor: defaultColor,
		selectedDate: truncateToDate(now),
		mode:         ModeWeek,
		dialog:       DialogClosed,
	}
}

// State returns a snapshot of the controller state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := s.visibleRangeLocked()
	dates := make([]string, 0, len(visible))
	for _, d := range visible {
		dates = append(dates, d.Format(event.DateLayout))
	}

	return State{
		SelectedDate: s.selectedDate.Format(event.DateLayout),
		Mode:         s.mode,
		Dialog:       s.dialog,
		EditingID:    s.editingID,
		VisibleDates: dates,
	}
}

// SelectDate changes the selected date. The dialog state is untouched.
func (s *Service) SelectDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = truncateToDate(date)
}

// SetMode switches between day and week view.
func (s *Service) SetMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown view mode %q", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	return nil
}

// Previous shifts the selected date one week back in week view, one day back
// in day view. Navigation is unbounded.
func (s *Service) Previous() time.Time {
	return s.shift(-1)
}

// Next shifts the selected date one week forward in week view, one day
// forward in day view.
func (s *Service) Next() time.Time {
	return s.shift(1)
}

func (s *Service) shift(direction int) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := 1
	if s.mode == ModeWeek {
		days = 7
	}
	s.selectedDate = s.selectedDate.AddDate(0, 0, direction*days)
	return s.selectedDate
}

// OpenCreate opens the dialog with a form seeded for a new event on the
// selected date.
func (s *Service) OpenCreate() Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dialog = DialogCreate
	s.editingID = ""
	s.form = SeedForCreate(s.selectedDate, s.defaultColor)
	return s.form
}

// OpenEdit opens the dialog seeded from the event with the given id.
func (s *Service) OpenEdit(id string) (Form, error) {
	target, err := s.store.Get(id)
	if err != nil {
		return Form{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dialog = DialogEdit
	s.editingID = target.ID
	s.form = SeedForEdit(target)
	return s.form, nil
}

// Form returns the current dialog form state.
func (s *Service) Form() (Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dialog == DialogClosed {
		return Form{}, ErrNoDialog
	}
	return s.form, nil
}

// Submit validates the form and saves it: create when the dialog was opened
// for a new event, full-record update when it was opened for an existing
// one. The dialog closes on success. A persistence write failure is returned
// alongside the saved event; the in-memory save already happened.
func (s *Service) Submit(ctx context.Context, form Form) (event.Event, error) {
	// The lock is held across the whole save so a concurrent OpenEdit or
	// Cancel cannot change the dialog state between the decision and the
	// store mutation. The store never calls back into the service.
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dialog == DialogClosed {
		return event.Event{}, ErrNoDialog
	}

	draft, validationErrs := form.Payload()
	if validationErrs != nil {
		return event.Event{}, validationErrs
	}

	var saved event.Event
	var persistErr error
	if s.dialog == DialogCreate {
		saved, persistErr = s.store.Create(ctx, draft)
	} else {
		saved = event.Event{
			ID:          s.editingID,
			Title:       draft.Title,
			Description: draft.Description,
			Date:        draft.Date,
			Time:        draft.Time,
			Duration:    draft.Duration,
			Recurrence:  draft.Recurrence,
			Color:       draft.Color,
		}
		persistErr = s.store.Update(ctx, saved)
		if errors.Is(persistErr, event.ErrEventNotFound) {
			// The edited event vanished; treated as a no-op save.
			log.Warnf("update of unknown event id %s ignored", s.editingID)
			persistErr = nil
		}
	}

	s.closeDialogLocked()
	return saved, persistErr
}

// Delete removes the event and closes the dialog. Unknown ids are no-ops.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	s.closeDialog()
	return err
}

// Cancel closes the dialog and discards unsaved form edits.
func (s *Service) Cancel() {
	s.closeDialog()
}

func (s *Service) closeDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeDialogLocked()
}

func (s *Service) closeDialogLocked() {
	s.dialog = DialogClosed
	s.editingID = ""
	s.form = Form{}
}

// Viewport returns the mode and its visible dates as one consistent pair,
// so a render cannot mix the range of one mode with the label of another.
// The range is the selected date alone in day view, the Monday-starting
// week containing it in week view.
func (s *Service) Viewport() (Mode, []time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.visibleRangeLocked()
}

// SelectedDate returns the currently selected date.
func (s *Service) SelectedDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

func (s *Service) visibleRangeLocked() []time.Time {
	if s.mode == ModeDay {
		return []time.Time{s.selectedDate}
	}

	start := startOfWeek(s.selectedDate)
	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// startOfWeek returns the Monday of the week containing date.
func startOfWeek(date time.Time) time.Time {
	delta := (int(date.Weekday()) - int(time.Monday) + 7) % 7
	return date.AddDate(0, 0, -delta)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
