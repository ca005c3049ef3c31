package service

import (
	"context"

	"github.com/okravets/scholardesk/internal/models"
)

// TrackerRepository defines the persistence operations needed by the
// TrackerService.
type TrackerRepository interface {
	CreateEntry(ctx context.Context, table string, e *models.Entry) (int64, error)
	EntriesByUser(ctx context.Context, table, email string) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, table string, id int64, e *models.Entry) (int64, error)
	DeleteEntry(ctx context.Context, table string, id int64) (int64, error)

	CreateFutureWork(ctx context.Context, w *models.FutureWork) (int64, error)
	FutureWorkByUser(ctx context.Context, email string) ([]models.FutureWork, error)
	UpdateFutureWork(ctx context.Context, id int64, w *models.FutureWork) (int64, error)
	DeleteFutureWork(ctx context.Context, id int64) (int64, error)

	CreateDeadline(ctx context.Context, d *models.Deadline) (int64, error)
	DeadlinesByUser(ctx context.Context, email string) ([]models.Deadline, error)
	UpdateDeadline(ctx context.Context, id int64, d *models.Deadline) (int64, error)
	DeleteDeadline(ctx context.Context, id int64) (int64, error)

	CreateGoal(ctx context.Context, g *models.CareerGoal) (int64, error)
	GoalsByUser(ctx context.Context, email string) ([]models.CareerGoal, error)
	UpdateGoal(ctx context.Context, id int64, g *models.CareerGoal) (int64, error)
	DeleteGoal(ctx context.Context, id int64) (int64, error)
}

// TrackerService manages ideas, notes, future work, deadlines and career
// goals: validation, documented defaults and server-side timestamps.
type TrackerService struct {
	repo TrackerRepository
}

// NewTrackerService constructs a TrackerService with the given repository.
func NewTrackerService(repo TrackerRepository) *TrackerService {
	return &TrackerService{repo: repo}
}

// CreateEntry stores an idea or note with category and timestamp defaults.
func (s *TrackerService) CreateEntry(ctx context.Context, table string, e *models.Entry) (*models.Entry, error) {
	if e.UserEmail == "" {
		return nil, validationErr("user_email is required")
	}
	if e.Category == "" {
		e.Category = "general"
	}
	if e.CreatedDate == "" {
		e.CreatedDate = now()
	}

	id, err := s.repo.CreateEntry(ctx, table, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return e, nil
}

// Entries lists one user's ideas or notes, newest first.
func (s *TrackerService) Entries(ctx context.Context, table, email string) ([]models.Entry, error) {
	return s.repo.EntriesByUser(ctx, table, email)
}

// UpdateEntry replaces an idea's or note's mutable fields.
func (s *TrackerService) UpdateEntry(ctx context.Context, table string, id int64, e *models.Entry) (int64, error) {
	return s.repo.UpdateEntry(ctx, table, id, e)
}

// DeleteEntry removes one idea or note.
func (s *TrackerService) DeleteEntry(ctx context.Context, table string, id int64) (int64, error) {
	return s.repo.DeleteEntry(ctx, table, id)
}

// CreateFutureWork stores a planned-work item with priority and status
// defaults.
func (s *TrackerService) CreateFutureWork(ctx context.Context, w *models.FutureWork) (*models.FutureWork, error) {
	if w.UserEmail == "" {
		return nil, validationErr("user_email is required")
	}
	if w.Priority == "" {
		w.Priority = "medium"
	}
	if w.Status == "" {
		w.Status = "planned"
	}
	if w.CreatedDate == "" {
		w.CreatedDate = now()
	}

	id, err := s.repo.CreateFutureWork(ctx, w)
	if err != nil {
		return nil, err
	}
	w.ID = id
	return w, nil
}

// FutureWork lists one user's planned work, newest first.
func (s *TrackerService) FutureWork(ctx context.Context, email string) ([]models.FutureWork, error) {
	return s.repo.FutureWorkByUser(ctx, email)
}

// UpdateFutureWork replaces a planned-work item's mutable fields.
func (s *TrackerService) UpdateFutureWork(ctx context.Context, id int64, w *models.FutureWork) (int64, error) {
	return s.repo.UpdateFutureWork(ctx, id, w)
}

// DeleteFutureWork removes one planned-work item.
func (s *TrackerService) DeleteFutureWork(ctx context.Context, id int64) (int64, error) {
	return s.repo.DeleteFutureWork(ctx, id)
}

// CreateDeadline stores a deadline with a priority default.
func (s *TrackerService) CreateDeadline(ctx context.Context, d *models.Deadline) (*models.Deadline, error) {
	if d.UserEmail == "" {
		return nil, validationErr("user_email is required")
	}
	if d.Priority == "" {
		d.Priority = "medium"
	}
	if d.CreatedDate == "" {
		d.CreatedDate = now()
	}

	id, err := s.repo.CreateDeadline(ctx, d)
	if err != nil {
		return nil, err
	}
	d.ID = id
	return d, nil
}

// Deadlines lists one user's deadlines ascending by due date.
func (s *TrackerService) Deadlines(ctx context.Context, email string) ([]models.Deadline, error) {
	return s.repo.DeadlinesByUser(ctx, email)
}

// UpdateDeadline replaces a deadline's mutable fields.
func (s *TrackerService) UpdateDeadline(ctx context.Context, id int64, d *models.Deadline) (int64, error) {
	return s.repo.UpdateDeadline(ctx, id, d)
}

// DeleteDeadline removes one deadline.
func (s *TrackerService) DeleteDeadline(ctx context.Context, id int64) (int64, error) {
	return s.repo.DeleteDeadline(ctx, id)
}

// CreateGoal stores a career goal. A zero stage count becomes the default
// of five stages, mirroring how absent input has always been treated.
func (s *TrackerService) CreateGoal(ctx context.Context, g *models.CareerGoal) (*models.CareerGoal, error) {
	if g.UserEmail == "" {
		return nil, validationErr("user_email is required")
	}
	if g.TotalStages == 0 {
		g.TotalStages = 5
	}
	if g.CreatedDate == "" {
		g.CreatedDate = now()
	}

	id, err := s.repo.CreateGoal(ctx, g)
	if err != nil {
		return nil, err
	}
	g.ID = id
	return g, nil
}

// Goals lists one user's career goals, newest first.
func (s *TrackerService) Goals(ctx context.Context, email string) ([]models.CareerGoal, error) {
	return s.repo.GoalsByUser(ctx, email)
}

// UpdateGoal replaces a career goal's mutable fields.
func (s *TrackerService) UpdateGoal(ctx context.Context, id int64, g *models.CareerGoal) (int64, error) {
	return s.repo.UpdateGoal(ctx, id, g)
}

// DeleteGoal removes one career goal.
func (s *TrackerService) DeleteGoal(ctx context.Context, id int64) (int64, error) {
	return s.repo.DeleteGoal(ctx, id)
}
