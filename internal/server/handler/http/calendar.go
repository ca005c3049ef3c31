package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/okravets/scholardesk/internal/models"
)

// CalendarService defines the event operations required by the HTTP
// handlers.
type CalendarService interface {
	CreateEvent(ctx context.Context, e *models.CalendarEvent) (*models.CalendarEvent, error)
	Events(ctx context.Context, email string) ([]models.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id int64, e *models.CalendarEvent) (int64, error)
	DeleteEvent(ctx context.Context, id int64) (int64, error)
}

// CalendarHandler serves the canonical camelCase /events surface and the
// legacy snake_case /calendar_events alias. Both operate on the same store.
type CalendarHandler struct {
	Service CalendarService
	Log     *zap.Logger
}

// CreateEvent handles POST /events.
func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var e models.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	created, err := h.Service.CreateEvent(r.Context(), &e)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListEvents handles GET /events/{email}.
func (h *CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.Events(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// UpdateEvent handles PUT /events/{id}.
func (h *CalendarHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var e models.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	n, err := h.Service.UpdateEvent(r.Context(), id, &e)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// DeleteEvent handles DELETE /events/{id} and /calendar_events/{id}.
func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	n, err := h.Service.DeleteEvent(r.Context(), id)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

func legacyToEvent(l *models.LegacyEvent) *models.CalendarEvent {
	return &models.CalendarEvent{
		UserEmail:       l.UserEmail,
		Title:           l.Title,
		Description:     l.Description,
		EventDate:       l.EventDate,
		StartTime:       l.StartTime,
		EndTime:         l.EndTime,
		Location:        l.Location,
		ReminderMinutes: l.ReminderMinutes,
	}
}

func eventToLegacy(e *models.CalendarEvent) models.LegacyEvent {
	return models.LegacyEvent{
		ID:              e.ID,
		UserEmail:       e.UserEmail,
		Title:           e.Title,
		Description:     e.Description,
		EventDate:       e.EventDate,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		Location:        e.Location,
		ReminderMinutes: e.ReminderMinutes,
	}
}

// CreateLegacyEvent handles POST /calendar_events with the snake_case
// subset of fields.
func (h *CalendarHandler) CreateLegacyEvent(w http.ResponseWriter, r *http.Request) {
	var l models.LegacyEvent
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	created, err := h.Service.CreateEvent(r.Context(), legacyToEvent(&l))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, eventToLegacy(created))
}

// ListLegacyEvents handles GET /calendar_events/{email}.
func (h *CalendarHandler) ListLegacyEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Service.Events(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	out := make([]models.LegacyEvent, 0, len(events))
	for i := range events {
		out = append(out, eventToLegacy(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateLegacyEvent handles PUT /calendar_events/{id}. Like every update it
// is a full-row replacement, so fields outside the legacy subset are reset.
func (h *CalendarHandler) UpdateLegacyEvent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var l models.LegacyEvent
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	n, err := h.Service.UpdateEvent(r.Context(), id, legacyToEvent(&l))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}
