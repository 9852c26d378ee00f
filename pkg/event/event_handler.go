package event

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/memocal/memocal/internal/rest"
	log "github.com/sirupsen/logrus"
)

type EventDTO struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Recurrence  string `json:"recurrence"`
	Color       string `json:"color,omitempty"`
}

type EventHandler struct {
	store *Store
}

func NewEventHandler(store *Store) *EventHandler {
	return &EventHandler{store: store}
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.store.Events()

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, eventToDTO(e))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Trace("Creating new event")

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	draft := dtoToDraft(dto)
	if errs := draft.Validate(); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	created, err := h.store.Create(r.Context(), draft)
	if err != nil {
		// The event exists in memory; the warning is all the caller gets.
		log.Warnf("event %s created but not persisted: %v", created.ID, err)
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(eventToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	eventId := vars["eventId"]

	var dto EventDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	draft := dtoToDraft(dto)
	if errs := draft.Validate(); errs != nil {
		writeValidationErrors(w, errs)
		return
	}

	updated := draftToEvent(eventId, draft)
	if err := h.store.Update(r.Context(), updated); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Warnf("event %s updated but not persisted: %v", eventId, err)
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(eventToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventId := vars["eventId"]

	if err := h.store.Delete(r.Context(), eventId); err != nil {
		log.Warnf("event %s deleted but deletion not persisted: %v", eventId, err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeValidationErrors(w http.ResponseWriter, errs ValidationErrors) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:  "Event validation failed",
		Fields: errs,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func eventToDTO(e Event) EventDTO {
	return EventDTO{
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

func dtoToDraft(dto EventDTO) Draft {
	return Draft{
		Title:       dto.Title,
		Description: dto.Description,
		Date:        dto.Date,
		Time:        dto.Time,
		Duration:    dto.Duration,
		Recurrence:  Recurrence(dto.Recurrence),
		Color:       dto.Color,
	}
}

func draftToEvent(id string, d Draft) Event {
	return Event{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		Time:        d.Time,
		Duration:    d.Duration,
		Recurrence:  d.Recurrence,
		Color:       d.Color,
	}
}
