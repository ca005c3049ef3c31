package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/okravets/scholardesk/internal/models"
	"github.com/okravets/scholardesk/internal/service"
)

// ProfileService defines the profile operations required by the HTTP
// handlers.
type ProfileService interface {
	Get(ctx context.Context, email string) (*models.Profile, error)
	Save(ctx context.Context, p *models.Profile) (bool, error)
	Delete(ctx context.Context, email string) (int64, error)
}

// ResumeService renders a resume document for one email.
type ResumeService interface {
	Render(ctx context.Context, email string) ([]byte, error)
}

// ProfileHandler handles the researcher profile and resume routes.
type ProfileHandler struct {
	Service ProfileService
	Resume  ResumeService
	Log     *zap.Logger
}

// Get handles GET /profile/{email}. A missing profile is a 200 with a JSON
// null body; API callers have always keyed off that rather than a 404.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.Get(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Save handles POST /profile: insert when the email has no profile yet,
// full update otherwise.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	created, err := h.Service.Save(r.Context(), &p)
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{
		"success": true,
		"id":      p.ID,
		"message": "profile saved",
	})
}

// Delete handles DELETE /profile/{email}.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	n, err := h.Service.Delete(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

// GenerateResume handles GET /generate-resume/{email}, answering an HTML
// document. Unlike the profile API this is a user-facing page, so a missing
// profile gets a real 404.
func (h *ProfileHandler) GenerateResume(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Resume.Render(r.Context(), chi.URLParam(r, "email"))
	if errors.Is(err, service.ErrNoProfile) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(noProfilePage))
		return
	}
	if err != nil {
		respondErr(w, h.Log, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

const noProfilePage = `<!DOCTYPE html>
<html><head><title>No profile</title></head>
<body><h1>No profile found</h1>
<p>There is no stored profile for this email, so a resume cannot be generated yet.</p>
</body></html>
`
