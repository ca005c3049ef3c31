package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/okravets/scholardesk/internal/models"
)

// TrackerService defines the idea/note/future-work/deadline/goal operations
// required by the HTTP handlers.
type TrackerService interface {
	CreateEntry(ctx context.Context, table string, e *models.Entry) (*models.Entry, error)
	Entries(ctx context.Context, table, email string) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, table string, id int64, e *models.Entry) (int64, error)
	DeleteEntry(ctx context.Context, table string, id int64) (int64, error)

	CreateFutureWork(ctx context.Context, w *models.FutureWork) (*models.FutureWork, error)
	FutureWork(ctx context.Context, email string) ([]models.FutureWork, error)
	UpdateFutureWork(ctx context.Context, id int64, w *models.FutureWork) (int64, error)
	DeleteFutureWork(ctx context.Context, id int64) (int64, error)

	CreateDeadline(ctx context.Context, d *models.Deadline) (*models.Deadline, error)
	Deadlines(ctx context.Context, email string) ([]models.Deadline, error)
	UpdateDeadline(ctx context.Context, id int64, d *models.Deadline) (int64, error)
	DeleteDeadline(ctx context.Context, id int64) (int64, error)

	CreateGoal(ctx context.Context, g *models.CareerGoal) (*models.CareerGoal, error)
	Goals(ctx context.Context, email string) ([]models.CareerGoal, error)
	UpdateGoal(ctx context.Context, id int64, g *models.CareerGoal) (int64, error)
	DeleteGoal(ctx context.Context, id int64) (int64, error)
}

// TrackerHandler handles HTTP requests for the tracking resources. Ideas and
// notes share handler logic; the table name is bound at route registration.
type TrackerHandler struct {
	Service TrackerService
	Log     *zap.Logger
}

// CreateEntry returns the POST handler for an idea or note table.
func (h *TrackerHandler) CreateEntry(table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e models.Entry
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		created, err := h.Service.CreateEntry(r.Context(), table, &e)
		if err != nil {
			respondErr(w, h.Log, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// ListEntries returns the GET-by-owner handler for an idea or note table.
func (h *TrackerHandler) ListEntries(table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.Service.Entries(r.Context(), table, chi.URLParam(r, "email"))
		if err != nil {
			respondErr(w, h.Log, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// UpdateEntry returns the PUT-by-id handler for an idea or note table.
func (h *TrackerHandler) UpdateEntry(table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		var e models.Entry
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		n, err := h.Service.UpdateEntry(r.Context(), table, id, &e)
		if err != nil {
			respondErr(w, h.Log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
	}
}

// DeleteEntry returns the DELETE-by-id handler for an idea or note table.
func (h *TrackerHandler) DeleteEntry(table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid id")
			return
		}
		n, err := h.Service.DeleteEntry(r.Context(), table, id)
		if err != nil {
			respondErr(w, h.Log, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
	}
}

// CreateFutureWork handles POST /future_work.
func (h *TrackerHandler) CreateFutureWork(w http.ResponseWriter, r *http.Request) {
	var work models.FutureWork
	if err := json.NewDecoder(r.Body).Decode(&work); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	created, err := h.Service.CreateFutureWork(r.Context(), &work)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListFutureWork handles GET /future_work/{email}.
func (h *TrackerHandler) ListFutureWork(w http.ResponseWriter, r *http.Request) {
	work, err := h.Service.FutureWork(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, work)
}

// UpdateFutureWork handles PUT /future_work/{id}.
func (h *TrackerHandler) UpdateFutureWork(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var work models.FutureWork
	if err := json.NewDecoder(r.Body).Decode(&work); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	n, err := h.Service.UpdateFutureWork(r.Context(), id, &work)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// DeleteFutureWork handles DELETE /future_work/{id}.
func (h *TrackerHandler) DeleteFutureWork(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	n, err := h.Service.DeleteFutureWork(r.Context(), id)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// CreateDeadline handles POST /deadlines.
func (h *TrackerHandler) CreateDeadline(w http.ResponseWriter, r *http.Request) {
	var d models.Deadline
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	created, err := h.Service.CreateDeadline(r.Context(), &d)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListDeadlines handles GET /deadlines/{email}.
func (h *TrackerHandler) ListDeadlines(w http.ResponseWriter, r *http.Request) {
	deadlines, err := h.Service.Deadlines(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, deadlines)
}

// UpdateDeadline handles PUT /deadlines/{id}.
func (h *TrackerHandler) UpdateDeadline(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var d models.Deadline
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	n, err := h.Service.UpdateDeadline(r.Context(), id, &d)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// DeleteDeadline handles DELETE /deadlines/{id}.
func (h *TrackerHandler) DeleteDeadline(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	n, err := h.Service.DeleteDeadline(r.Context(), id)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// CreateGoal handles POST /career_goals and its /career alias.
func (h *TrackerHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var g models.CareerGoal
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	created, err := h.Service.CreateGoal(r.Context(), &g)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListGoals handles GET /career_goals/{email}.
func (h *TrackerHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.Service.Goals(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

// UpdateGoal handles PUT /career_goals/{id}.
func (h *TrackerHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var g models.CareerGoal
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	n, err := h.Service.UpdateGoal(r.Context(), id, &g)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// DeleteGoal handles DELETE /career_goals/{id}.
func (h *TrackerHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	n, err := h.Service.DeleteGoal(r.Context(), id)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
