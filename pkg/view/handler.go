package view

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/memocal/memocal/internal/rest"
	"github.com/memocal/memocal/pkg/event"
	log "github.com/sirupsen/logrus"
)

type StateDTO struct {
	SelectedDate string   `json:"selectedDate"`
	Mode         string   `json:"mode"`
	Dialog       string   `json:"dialog"`
	EditingID    string   `json:"editingId,omitempty"`
	VisibleDates []string `json:"visibleDates"`
}

type FormDTO struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Recurrence  string `json:"recurrence"`
	Color       string `json:"color,omitempty"`
}

type Handler struct {
	service *Service
	store   *event.Store
	grid    *GridRenderer
	agenda  *AgendaRenderer
}

func NewHandler(service *Service, store *event.Store, grid *GridRenderer, agenda *AgendaRenderer) *Handler {
	return &Handler{service: service, store: store, grid: grid, agenda: agenda}
}

func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateToDTO(h.service.State()))
}

func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	dateString := r.URL.Query().Get("date")
	date, err := time.Parse(event.DateLayout, dateString)
	if err != nil {
		writeBadRequest(w, "Invalid date format", "'date' must be in YYYY-MM-DD format")
		return
	}

	h.service.SelectDate(date)
	writeJSON(w, http.StatusOK, stateToDTO(h.service.State()))
}

func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "Invalid request body format", "")
		return
	}

	if err := h.service.SetMode(Mode(request.Mode)); err != nil {
		writeBadRequest(w, "Invalid view mode", "'mode' must be 'day' or 'week'")
		return
	}
	writeJSON(w, http.StatusOK, stateToDTO(h.service.State()))
}

func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	h.service.Previous()
	writeJSON(w, http.StatusOK, stateToDTO(h.service.State()))
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.service.Next()
	writeJSON(w, http.StatusOK, stateToDTO(h.service.State()))
}

func (h *Handler) OpenDialog(w http.ResponseWriter, r *http.Request) {
	log.Trace("Opening event dialog")

	var request struct {
		Mode    string `json:"mode"`
		EventID string `json:"eventId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeBadRequest(w, "Invalid request body format", "")
		return
	}

	var form Form
	switch request.Mode {
	case "create":
		form = h.service.OpenCreate()
	case "edit":
		var err error
		form, err = h.service.OpenEdit(request.EventID)
		if err != nil {
			if errors.Is(err, event.ErrEventNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	default:
		writeBadRequest(w, "Invalid dialog mode", "'mode' must be 'create' or 'edit'")
		return
	}

	writeJSON(w, http.StatusOK, formToDTO(form))
}

func (h *Handler) GetForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.Form()
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, formToDTO(form))
}

func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	log.Trace("Submitting event form")

	var dto FormDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeBadRequest(w, "Invalid request body format", "")
		return
	}

	saved, err := h.service.Submit(r.Context(), dtoToForm(dto))
	if err != nil {
		var validationErrs event.ValidationErrors
		if errors.As(err, &validationErrs) {
			writeJSON(w, http.StatusUnprocessableEntity, rest.ErrorResponse{
				Error:  "Event validation failed",
				Fields: validationErrs,
			})
			return
		}
		if errors.Is(err, ErrNoDialog) {
			writeJSON(w, http.StatusConflict, rest.ErrorResponse{
				Error: "No dialog is open",
			})
			return
		}
		// Storage write failure: the save happened in memory, warn and go on.
		log.Warnf("event %s saved but not persisted: %v", saved.ID, err)
	}

	writeJSON(w, http.StatusOK, eventToDTO(saved))
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.service.Cancel()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventId := vars["eventId"]

	if err := h.service.Delete(r.Context(), eventId); err != nil {
		log.Warnf("event %s deleted but deletion not persisted: %v", eventId, err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	mode, days := h.service.Viewport()
	doc := h.grid.Render(h.store.Events(), mode, days)
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	doc := h.agenda.Render(h.store.Events(), h.service.SelectedDate())
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) GetPalette(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, event.Palette)
}

func stateToDTO(s State) StateDTO {
	return StateDTO{
		SelectedDate: s.SelectedDate,
		Mode:         string(s.Mode),
		Dialog:       string(s.Dialog),
		EditingID:    s.EditingID,
		VisibleDates: s.VisibleDates,
	}
}

func formToDTO(f Form) FormDTO {
	return FormDTO{
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		Time:        f.Time,
		Duration:    f.Duration,
		Recurrence:  f.Recurrence,
		Color:       f.Color,
	}
}

func dtoToForm(dto FormDTO) Form {
	return Form{
		Title:       dto.Title,
		Description: dto.Description,
		Date:        dto.Date,
		Time:        dto.Time,
		Duration:    dto.Duration,
		Recurrence:  dto.Recurrence,
		Color:       dto.Color,
	}
}

func eventToDTO(e event.Event) event.EventDTO {
	return event.EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Duration:    e.Duration,
		Recurrence:  string(e.Recurrence),
		Color:       e.Color,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeBadRequest(w http.ResponseWriter, message, details string) {
	writeJSON(w, http.StatusBadRequest, rest.ErrorResponse{
		Error:   message,
		Details: details,
	})
}
