package repository

import (
	"context"
	"fmt"

	"github.com/okravets/scholardesk/internal/db"
	"github.com/okravets/scholardesk/internal/models"
)

// projectColumns is the fixed column order shared by every project
// statement. website is last because it was added by a later migration.
const projectColumns = `name, owner_email, colleagues, progress, description, status,
	start_date, end_date, funding_source, budget, institution, department,
	keywords, objectives, methodology, expected_outcomes, publications, notes, website`

// PortfolioRepository persists projects with their colleagues and meetings.
type PortfolioRepository struct {
	DB *db.DB
}

// NewPortfolioRepository creates a PortfolioRepository on the given adapter.
func NewPortfolioRepository(d *db.DB) *PortfolioRepository {
	return &PortfolioRepository{DB: d}
}

func projectArgs(p *models.Project) []any {
	return []any{
		p.Name, p.OwnerEmail, p.Colleagues, p.Progress, p.Description, p.Status,
		p.StartDate, p.EndDate, p.FundingSource, p.Budget, p.Institution, p.Department,
		p.Keywords, p.Objectives, p.Methodology, p.ExpectedOutcomes, p.Publications,
		p.Notes, p.Website,
	}
}

func scanProject(row interface{ Scan(...any) error }, p *models.Project) error {
	return row.Scan(
		&p.ID, &p.Name, &p.OwnerEmail, &p.Colleagues, &p.Progress, &p.Description,
		&p.Status, &p.StartDate, &p.EndDate, &p.FundingSource, &p.Budget,
		&p.Institution, &p.Department, &p.Keywords, &p.Objectives, &p.Methodology,
		&p.ExpectedOutcomes, &p.Publications, &p.Notes, &p.Website,
	)
}

// CreateProject inserts a project and returns the generated id.
func (r *PortfolioRepository) CreateProject(ctx context.Context, p *models.Project) (int64, error) {
	id, err := r.DB.Insert(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		projectArgs(p)...,
	)
	if err != nil {
		return 0, fmt.Errorf("create project: %w", err)
	}
	return id, nil
}

// ProjectsByOwner lists all projects owned by the given email, newest first.
func (r *PortfolioRepository) ProjectsByOwner(ctx context.Context, email string) ([]models.Project, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, `+projectColumns+` FROM projects WHERE owner_email = ? ORDER BY id DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("projects by owner: %w", err)
	}
	defer rows.Close()

	out := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateProject replaces every mutable field of the project with the given
// id and returns the affected-row count (0 when the id does not exist).
func (r *PortfolioRepository) UpdateProject(ctx context.Context, id int64, p *models.Project) (int64, error) {
	args := append(projectArgs(p), id)
	n, err := r.DB.Exec(ctx,
		`UPDATE projects SET name = ?, owner_email = ?, colleagues = ?, progress = ?,
		 description = ?, status = ?, start_date = ?, end_date = ?, funding_source = ?,
		 budget = ?, institution = ?, department = ?, keywords = ?, objectives = ?,
		 methodology = ?, expected_outcomes = ?, publications = ?, notes = ?, website = ?
		 WHERE id = ?`,
		args...,
	)
	if err != nil {
		return 0, fmt.Errorf("update project: %w", err)
	}
	return n, nil
}

// DeleteProject removes one project. Its colleagues are kept: the link is a
// soft reference with no cascading delete.
func (r *PortfolioRepository) DeleteProject(ctx context.Context, id int64) (int64, error) {
	n, err := r.DB.Exec(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete project: %w", err)
	}
	return n, nil
}

// CreateColleague inserts a colleague row for a project.
func (r *PortfolioRepository) CreateColleague(ctx context.Context, c *models.Colleague) (int64, error) {
	id, err := r.DB.Insert(ctx,
		`INSERT INTO colleagues (project_id, name, email) VALUES (?, ?, ?)`,
		c.ProjectID, c.Name, c.Email,
	)
	if err != nil {
		return 0, fmt.Errorf("create colleague: %w", err)
	}
	return id, nil
}

// ColleaguesByProject lists all colleagues attached to a project.
func (r *PortfolioRepository) ColleaguesByProject(ctx context.Context, projectID int64) ([]models.Colleague, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, project_id, name, email FROM colleagues WHERE project_id = ? ORDER BY id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("colleagues by project: %w", err)
	}
	defer rows.Close()

	out := []models.Colleague{}
	for rows.Next() {
		var c models.Colleague
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("scan colleague: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteColleague removes one colleague row.
func (r *PortfolioRepository) DeleteColleague(ctx context.Context, id int64) (int64, error) {
	n, err := r.DB.Exec(ctx, `DELETE FROM colleagues WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete colleague: %w", err)
	}
	return n, nil
}

// CreateMeeting inserts a meeting keyed by the colleague's email.
func (r *PortfolioRepository) CreateMeeting(ctx context.Context, m *models.Meeting) (int64, error) {
	id, err := r.DB.Insert(ctx,
		`INSERT INTO meetings (colleague_email, date, description) VALUES (?, ?, ?)`,
		m.ColleagueEmail, m.Date, m.Description,
	)
	if err != nil {
		return 0, fmt.Errorf("create meeting: %w", err)
	}
	return id, nil
}

// MeetingsByColleague lists meetings for one colleague email, soonest first.
func (r *PortfolioRepository) MeetingsByColleague(ctx context.Context, email string) ([]models.Meeting, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, colleague_email, date, description FROM meetings
		 WHERE colleague_email = ? ORDER BY date, id`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("meetings by colleague: %w", err)
	}
	defer rows.Close()

	out := []models.Meeting{}
	for rows.Next() {
		var m models.Meeting
		if err := rows.Scan(&m.ID, &m.ColleagueEmail, &m.Date, &m.Description); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpdateMeeting replaces the mutable fields of one meeting.
func (r *PortfolioRepository) UpdateMeeting(ctx context.Context, id int64, m *models.Meeting) (int64, error) {
	n, err := r.DB.Exec(ctx,
		`UPDATE meetings SET colleague_email = ?, date = ?, description = ? WHERE id = ?`,
		m.ColleagueEmail, m.Date, m.Description, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update meeting: %w", err)
	}
	return n, nil
}

// DeleteMeeting removes one meeting row.
func (r *PortfolioRepository) DeleteMeeting(ctx context.Context, id int64) (int64, error) {
	n, err := r.DB.Exec(ctx, `DELETE FROM meetings WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete meeting: %w", err)
	}
	return n, nil
}
