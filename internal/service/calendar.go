package service

import (
	"context"

	"github.com/okravets/scholardesk/internal/models"
)

// CalendarRepository defines the persistence operations needed by the
// CalendarService.
type CalendarRepository interface {
	CreateEvent(ctx context.Context, e *models.CalendarEvent) (int64, error)
	EventsByUser(ctx context.Context, email string) ([]models.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id int64, e *models.CalendarEvent) (int64, error)
	DeleteEvent(ctx context.Context, id int64) (int64, error)
}

// CalendarService manages calendar events.
type CalendarService struct {
	repo CalendarRepository
}

// NewCalendarService constructs a CalendarService with the given repository.
func NewCalendarService(repo CalendarRepository) *CalendarService {
	return &CalendarService{repo: repo}
}

// CreateEvent applies defaults (reminder 15 minutes, "busy" visibility,
// server-side timestamps) and stores the event.
func (s *CalendarService) CreateEvent(ctx context.Context, e *models.CalendarEvent) (*models.CalendarEvent, error) {
	if e.UserEmail == "" {
		return nil, validationErr("userEmail is required")
	}
	if e.ReminderMinutes == 0 {
		e.ReminderMinutes = 15
	}
	if e.Visibility == "" {
		e.Visibility = "busy"
	}
	ts := now()
	if e.CreatedDate == "" {
		e.CreatedDate = ts
	}
	e.ModifiedDate = ts

	id, err := s.repo.CreateEvent(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return e, nil
}

// Events lists one user's events ordered by date then start time.
func (s *CalendarService) Events(ctx context.Context, email string) ([]models.CalendarEvent, error) {
	return s.repo.EventsByUser(ctx, email)
}

// UpdateEvent replaces an event's mutable fields. The modification
// timestamp is regenerated on every update regardless of caller input.
func (s *CalendarService) UpdateEvent(ctx context.Context, id int64, e *models.CalendarEvent) (int64, error) {
	if e.ReminderMinutes == 0 {
		e.ReminderMinutes = 15
	}
	if e.Visibility == "" {
		e.Visibility = "busy"
	}
	e.ModifiedDate = now()
	return s.repo.UpdateEvent(ctx, id, e)
}

// DeleteEvent removes one event.
func (s *CalendarService) DeleteEvent(ctx context.Context, id int64) (int64, error) {
	return s.repo.DeleteEvent(ctx, id)
}
