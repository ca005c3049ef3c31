package repository

import (
	"context"
	"fmt"

	"github.com/okravets/scholardesk/internal/db"
	"github.com/okravets/scholardesk/internal/models"
)

// Entry tables share one column set; the table name selects ideas or notes.
const (
	TableIdeas = "ideas"
	TableNotes = "notes"
)

// TrackerRepository persists the per-user tracking resources: ideas, notes,
// future work, deadlines and career goals.
type TrackerRepository struct {
	DB *db.DB
}

// NewTrackerRepository creates a TrackerRepository on the given adapter.
func NewTrackerRepository(d *db.DB) *TrackerRepository {
	return &TrackerRepository{DB: d}
}

// CreateEntry inserts an idea or note, depending on table.
func (r *TrackerRepository) CreateEntry(ctx context.Context, table string, e *models.Entry) (int64, error) {
	id, err := r.DB.Insert(ctx,
		`INSERT INTO `+table+` (user_email, title, content, category, created_date)
		 VALUES (?, ?, ?, ?, ?)`,
		e.UserEmail, e.Title, e.Content, e.Category, e.CreatedDate,
	)
	if err != nil {
		return 0, fmt.Errorf("create %s entry: %w", table, err)
	}
	return id, nil
}

// EntriesByUser lists ideas or notes for one user, newest first.
func (r *TrackerRepository) EntriesByUser(ctx context.Context, table, email string) ([]models.Entry, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_email, title, content, category, created_date
		 FROM `+table+` WHERE user_email = ? ORDER BY created_date DESC, id DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("%s by user: %w", table, err)
	}
	defer rows.Close()

	out := []models.Entry{}
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.ID, &e.UserEmail, &e.Title, &e.Content, &e.Category, &e.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan %s entry: %w", table, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateEntry replaces the mutable fields of one idea or note.
func (r *TrackerRepository) UpdateEntry(ctx context.Context, table string, id int64, e *models.Entry) (int64, error) {
	n, err := r.DB.Exec(ctx,
		`UPDATE `+table+` SET title = ?, content = ?, category = ? WHERE id = ?`,
		e.Title, e.Content, e.Category, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update %s entry: %w", table, err)
	}
	return n, nil
}

// DeleteEntry removes one idea or note.
func (r *TrackerRepository) DeleteEntry(ctx context.Context, table string, id int64) (int64, error) {
	n, err := r.DB.Exec(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete %s entry: %w", table, err)
	}
	return n, nil
}

// CreateFutureWork inserts a planned-work row.
func (r *TrackerRepository) CreateFutureWork(ctx context.Context, w *models.FutureWork) (int64, error) {
	id, err := r.DB.Insert(ctx,
		`INSERT INTO future_work (user_email, title, description, priority, status, created_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		w.UserEmail, w.Title, w.Description, w.Priority, w.Status, w.CreatedDate,
	)
	if err != nil {
		return 0, fmt.Errorf("create future work: %w", err)
	}
	return id, nil
}

// FutureWorkByUser lists planned work for one user, newest first.
func (r *TrackerRepository) FutureWorkByUser(ctx context.Context, email string) ([]models.FutureWork, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_email, title, description, priority, status, created_date
		 FROM future_work WHERE user_email = ? ORDER BY created_date DESC, id DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("future work by user: %w", err)
	}
	defer rows.Close()

	out := []models.FutureWork{}
	for rows.Next() {
		var w models.FutureWork
		if err := rows.Scan(&w.ID, &w.UserEmail, &w.Title, &w.Description, &w.Priority, &w.Status, &w.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan future work: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// UpdateFutureWork replaces the mutable fields of one planned-work row.
func (r *TrackerRepository) UpdateFutureWork(ctx context.Context, id int64, w *models.FutureWork) (int64, error) {
	n, err := r.DB.Exec(ctx,
		`UPDATE future_work SET title = ?, description = ?, priority = ?, status = ? WHERE id = ?`,
		w.Title, w.Description, w.Priority, w.Status, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update future work: %w", err)
	}
	return n, nil
}

// DeleteFutureWork removes one planned-work row.
func (r *TrackerRepository) DeleteFutureWork(ctx context.Context, id int64) (int64, error) {
	n, err := r.DB.Exec(ctx, `DELETE FROM future_work WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete future work: %w", err)
	}
	return n, nil
}

// CreateDeadline inserts a deadline row.
func (r *TrackerRepository) CreateDeadline(ctx context.Context, d *models.Deadline) (int64, error) {
	id, err := r.DB.Insert(ctx,
		`INSERT INTO deadlines (user_email, title, description, due_date, priority, created_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.UserEmail, d.Title, d.Description, d.DueDate, d.Priority, d.CreatedDate,
	)
	if err != nil {
		return 0, fmt.Errorf("create deadline: %w", err)
	}
	return id, nil
}

// DeadlinesByUser lists deadlines for one user ascending by due date.
func (r *TrackerRepository) DeadlinesByUser(ctx context.Context, email string) ([]models.Deadline, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_email, title, description, due_date, priority, created_date
		 FROM deadlines WHERE user_email = ? ORDER BY due_date, id`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("deadlines by user: %w", err)
	}
	defer rows.Close()

	out := []models.Deadline{}
	for rows.Next() {
		var d models.Deadline
		if err := rows.Scan(&d.ID, &d.UserEmail, &d.Title, &d.Description, &d.DueDate, &d.Priority, &d.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan deadline: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateDeadline replaces the mutable fields of one deadline.
func (r *TrackerRepository) UpdateDeadline(ctx context.Context, id int64, d *models.Deadline) (int64, error) {
	n, err := r.DB.Exec(ctx,
		`UPDATE deadlines SET title = ?, description = ?, due_date = ?, priority = ? WHERE id = ?`,
		d.Title, d.Description, d.DueDate, d.Priority, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update deadline: %w", err)
	}
	return n, nil
}

// DeleteDeadline removes one deadline row.
func (r *TrackerRepository) DeleteDeadline(ctx context.Context, id int64) (int64, error) {
	n, err := r.DB.Exec(ctx, `DELETE FROM deadlines WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete deadline: %w", err)
	}
	return n, nil
}

// CreateGoal inserts a career-goal row.
func (r *TrackerRepository) CreateGoal(ctx context.Context, g *models.CareerGoal) (int64, error) {
	id, err := r.DB.Insert(ctx,
		`INSERT INTO career_goals (user_email, title, description, progress, goal_type,
		 target_date, total_stages, current_stage, start_date, stage_description, created_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.UserEmail, g.Title, g.Description, g.Progress, g.GoalType,
		g.TargetDate, g.TotalStages, g.CurrentStage, g.StartDate, g.StageDescription, g.CreatedDate,
	)
	if err != nil {
		return 0, fmt.Errorf("create career goal: %w", err)
	}
	return id, nil
}

// GoalsByUser lists career goals for one user, newest first.
func (r *TrackerRepository) GoalsByUser(ctx context.Context, email string) ([]models.CareerGoal, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_email, title, description, progress, goal_type, target_date,
		 total_stages, current_stage, start_date, stage_description, created_date
		 FROM career_goals WHERE user_email = ? ORDER BY created_date DESC, id DESC`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("career goals by user: %w", err)
	}
	defer rows.Close()

	out := []models.CareerGoal{}
	for rows.Next() {
		var g models.CareerGoal
		if err := rows.Scan(&g.ID, &g.UserEmail, &g.Title, &g.Description, &g.Progress,
			&g.GoalType, &g.TargetDate, &g.TotalStages, &g.CurrentStage, &g.StartDate,
			&g.StageDescription, &g.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan career goal: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// UpdateGoal replaces the mutable fields of one career goal.
func (r *TrackerRepository) UpdateGoal(ctx context.Context, id int64, g *models.CareerGoal) (int64, error) {
	n, err := r.DB.Exec(ctx,
		`UPDATE career_goals SET title = ?, description = ?, progress = ?, goal_type = ?,
		 target_date = ?, total_stages = ?, current_stage = ?, start_date = ?, stage_description = ?
		 WHERE id = ?`,
		g.Title, g.Description, g.Progress, g.GoalType, g.TargetDate,
		g.TotalStages, g.CurrentStage, g.StartDate, g.StageDescription, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update career goal: %w", err)
	}
	return n, nil
}

// DeleteGoal removes one career goal.
func (r *TrackerRepository) DeleteGoal(ctx context.Context, id int64) (int64, error) {
	n, err := r.DB.Exec(ctx, `DELETE FROM career_goals WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete career goal: %w", err)
	}
	return n, nil
}
