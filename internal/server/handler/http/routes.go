package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/okravets/scholardesk/internal/middleware"
	"github.com/okravets/scholardesk/internal/repository"
)

// NewRouter constructs the HTTP handler serving the whole API. Every route
// maps 1:1 to one handler method; the legacy aliases (/signup, /career,
// /future, /calendar_events) are kept for old callers.
func NewRouter(
	auth *AuthHandler,
	portfolio *PortfolioHandler,
	tracker *TrackerHandler,
	calendar *CalendarHandler,
	profile *ProfileHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Post("/register", auth.Register)
	r.Post("/signup", auth.Register) // alias, identical behavior
	r.Post("/login", auth.Login)

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", portfolio.CreateProject)
		r.Get("/{email}", portfolio.ListProjects)
		r.Put("/{id}", portfolio.UpdateProject)
		r.Delete("/{id}", portfolio.DeleteProject)
	})

	r.Route("/colleagues", func(r chi.Router) {
		r.Post("/", portfolio.CreateColleague)
		r.Get("/{project_id}", portfolio.ListColleagues)
		r.Delete("/{id}", portfolio.DeleteColleague)
	})

	r.Route("/meetings", func(r chi.Router) {
		r.Post("/", portfolio.CreateMeeting)
		r.Get("/{email}", portfolio.ListMeetings)
		r.Put("/{id}", portfolio.UpdateMeeting)
		r.Delete("/{id}", portfolio.DeleteMeeting)
	})

	mountEntries := func(r chi.Router, table string) {
		r.Post("/", tracker.CreateEntry(table))
		r.Get("/{email}", tracker.ListEntries(table))
		r.Put("/{id}", tracker.UpdateEntry(table))
		r.Delete("/{id}", tracker.DeleteEntry(table))
	}
	r.Route("/ideas", func(r chi.Router) { mountEntries(r, repository.TableIdeas) })
	r.Route("/notes", func(r chi.Router) { mountEntries(r, repository.TableNotes) })

	mountFutureWork := func(r chi.Router) {
		r.Post("/", tracker.CreateFutureWork)
		r.Get("/{email}", tracker.ListFutureWork)
		r.Put("/{id}", tracker.UpdateFutureWork)
		r.Delete("/{id}", tracker.DeleteFutureWork)
	}
	r.Route("/future_work", mountFutureWork)
	r.Route("/future", mountFutureWork) // alias

	r.Route("/deadlines", func(r chi.Router) {
		r.Post("/", tracker.CreateDeadline)
		r.Get("/{email}", tracker.ListDeadlines)
		r.Put("/{id}", tracker.UpdateDeadline)
		r.Delete("/{id}", tracker.DeleteDeadline)
	})

	mountGoals := func(r chi.Router) {
		r.Post("/", tracker.CreateGoal)
		r.Get("/{email}", tracker.ListGoals)
		r.Put("/{id}", tracker.UpdateGoal)
		r.Delete("/{id}", tracker.DeleteGoal)
	}
	r.Route("/career_goals", mountGoals)
	r.Route("/career", mountGoals) // alias

	r.Route("/events", func(r chi.Router) {
		r.Post("/", calendar.CreateEvent)
		r.Get("/{email}", calendar.ListEvents)
		r.Put("/{id}", calendar.UpdateEvent)
		r.Delete("/{id}", calendar.DeleteEvent)
	})

	// Legacy snake_case surface over the same event store.
	r.Route("/calendar_events", func(r chi.Router) {
		r.Post("/", calendar.CreateLegacyEvent)
		r.Get("/{email}", calendar.ListLegacyEvents)
		r.Put("/{id}", calendar.UpdateLegacyEvent)
		r.Delete("/{id}", calendar.DeleteEvent)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Post("/", profile.Save)
		r.Get("/{email}", profile.Get)
		r.Delete("/{email}", profile.Delete)
	})

	r.Get("/generate-resume/{email}", profile.GenerateResume)

	return r
}
