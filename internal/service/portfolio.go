package service

import (
	"context"

	"github.com/okravets/scholardesk/internal/models"
)

// PortfolioRepository defines the persistence operations needed by the
// PortfolioService.
type PortfolioRepository interface {
	CreateProject(ctx context.Context, p *models.Project) (int64, error)
	ProjectsByOwner(ctx context.Context, email string) ([]models.Project, error)
	UpdateProject(ctx context.Context, id int64, p *models.Project) (int64, error)
	DeleteProject(ctx context.Context, id int64) (int64, error)

	CreateColleague(ctx context.Context, c *models.Colleague) (int64, error)
	ColleaguesByProject(ctx context.Context, projectID int64) ([]models.Colleague, error)
	DeleteColleague(ctx context.Context, id int64) (int64, error)

	CreateMeeting(ctx context.Context, m *models.Meeting) (int64, error)
	MeetingsByColleague(ctx context.Context, email string) ([]models.Meeting, error)
	UpdateMeeting(ctx context.Context, id int64, m *models.Meeting) (int64, error)
	DeleteMeeting(ctx context.Context, id int64) (int64, error)
}

// PortfolioService manages projects, colleagues and meetings.
type PortfolioService struct {
	repo PortfolioRepository
}

// NewPortfolioService constructs a PortfolioService with the given repository.
func NewPortfolioService(repo PortfolioRepository) *PortfolioService {
	return &PortfolioService{repo: repo}
}

// CreateProject applies defaults, validates required fields and stores the
// project, returning the effective record including its generated id.
func (s *PortfolioService) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p.Name == "" {
		return nil, validationErr("name is required")
	}
	if p.OwnerEmail == "" {
		return nil, validationErr("owner_email is required")
	}
	if p.Colleagues == "" {
		p.Colleagues = "[]"
	}

	id, err := s.repo.CreateProject(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// Projects lists all projects owned by an email.
func (s *PortfolioService) Projects(ctx context.Context, email string) ([]models.Project, error) {
	return s.repo.ProjectsByOwner(ctx, email)
}

// UpdateProject replaces a project's fields, returning the affected count.
func (s *PortfolioService) UpdateProject(ctx context.Context, id int64, p *models.Project) (int64, error) {
	if p.Colleagues == "" {
		p.Colleagues = "[]"
	}
	return s.repo.UpdateProject(ctx, id, p)
}

// DeleteProject removes one project by id.
func (s *PortfolioService) DeleteProject(ctx context.Context, id int64) (int64, error) {
	return s.repo.DeleteProject(ctx, id)
}

// CreateColleague stores a colleague attached to a project.
func (s *PortfolioService) CreateColleague(ctx context.Context, c *models.Colleague) (*models.Colleague, error) {
	if c.ProjectID == 0 {
		return nil, validationErr("project_id is required")
	}
	if c.Name == "" {
		return nil, validationErr("name is required")
	}
	id, err := s.repo.CreateColleague(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

// Colleagues lists the colleagues of one project.
func (s *PortfolioService) Colleagues(ctx context.Context, projectID int64) ([]models.Colleague, error) {
	return s.repo.ColleaguesByProject(ctx, projectID)
}

// DeleteColleague removes one colleague by id.
func (s *PortfolioService) DeleteColleague(ctx context.Context, id int64) (int64, error) {
	return s.repo.DeleteColleague(ctx, id)
}

// CreateMeeting stores a meeting for a colleague email.
func (s *PortfolioService) CreateMeeting(ctx context.Context, m *models.Meeting) (*models.Meeting, error) {
	if m.ColleagueEmail == "" {
		return nil, validationErr("colleague_email is required")
	}
	id, err := s.repo.CreateMeeting(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

// Meetings lists the meetings recorded for one colleague email.
func (s *PortfolioService) Meetings(ctx context.Context, email string) ([]models.Meeting, error) {
	return s.repo.MeetingsByColleague(ctx, email)
}

// UpdateMeeting replaces a meeting's fields.
func (s *PortfolioService) UpdateMeeting(ctx context.Context, id int64, m *models.Meeting) (int64, error) {
	return s.repo.UpdateMeeting(ctx, id, m)
}

// DeleteMeeting removes one meeting by id.
func (s *PortfolioService) DeleteMeeting(ctx context.Context, id int64) (int64, error) {
	return s.repo.DeleteMeeting(ctx, id)
}
