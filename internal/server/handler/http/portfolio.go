package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/okravets/scholardesk/internal/models"
)

// PortfolioService defines the project, colleague and meeting operations
// required by the HTTP handlers.
type PortfolioService interface {
	CreateProject(ctx context.Context, p *models.Project) (*models.Project, error)
	Projects(ctx context.Context, email string) ([]models.Project, error)
	UpdateProject(ctx context.Context, id int64, p *models.Project) (int64, error)
	DeleteProject(ctx context.Context, id int64) (int64, error)

	CreateColleague(ctx context.Context, c *models.Colleague) (*models.Colleague, error)
	Colleagues(ctx context.Context, projectID int64) ([]models.Colleague, error)
	DeleteColleague(ctx context.Context, id int64) (int64, error)

	CreateMeeting(ctx context.Context, m *models.Meeting) (*models.Meeting, error)
	Meetings(ctx context.Context, email string) ([]models.Meeting, error)
	UpdateMeeting(ctx context.Context, id int64, m *models.Meeting) (int64, error)
	DeleteMeeting(ctx context.Context, id int64) (int64, error)
}

// PortfolioHandler handles HTTP requests for projects, colleagues and
// meetings.
type PortfolioHandler struct {
	Service PortfolioService
	Log     *zap.Logger
}

// CreateProject handles POST /projects.
func (h *PortfolioHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	created, err := h.Service.CreateProject(r.Context(), &p)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListProjects handles GET /projects/{email}.
func (h *PortfolioHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Service.Projects(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// UpdateProject handles PUT /projects/{id}. The body is a full replacement
// of the mutable fields.
func (h *PortfolioHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var p models.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	n, err := h.Service.UpdateProject(r.Context(), id, &p)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// DeleteProject handles DELETE /projects/{id}.
func (h *PortfolioHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	n, err := h.Service.DeleteProject(r.Context(), id)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// CreateColleague handles POST /colleagues.
func (h *PortfolioHandler) CreateColleague(w http.ResponseWriter, r *http.Request) {
	var c models.Colleague
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	created, err := h.Service.CreateColleague(r.Context(), &c)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListColleagues handles GET /colleagues/{project_id}.
func (h *PortfolioHandler) ListColleagues(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "project_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}
	colleagues, err := h.Service.Colleagues(r.Context(), projectID)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, colleagues)
}

// DeleteColleague handles DELETE /colleagues/{id}.
func (h *PortfolioHandler) DeleteColleague(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	n, err := h.Service.DeleteColleague(r.Context(), id)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// CreateMeeting handles POST /meetings.
func (h *PortfolioHandler) CreateMeeting(w http.ResponseWriter, r *http.Request) {
	var m models.Meeting
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	created, err := h.Service.CreateMeeting(r.Context(), &m)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListMeetings handles GET /meetings/{email}.
func (h *PortfolioHandler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.Service.Meetings(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, meetings)
}

// UpdateMeeting handles PUT /meetings/{id}.
func (h *PortfolioHandler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var m models.Meeting
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	n, err := h.Service.UpdateMeeting(r.Context(), id, &m)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

// DeleteMeeting handles DELETE /meetings/{id}.
func (h *PortfolioHandler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	n, err := h.Service.DeleteMeeting(r.Context(), id)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}
