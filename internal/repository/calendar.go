package repository

import (
	"context"
	"fmt"

	"github.com/okravets/scholardesk/internal/db"
	"github.com/okravets/scholardesk/internal/models"
)

// CalendarRepository persists calendar events. The three flag fields are
// stored as 0/1 integers; this is the only place that knows that.
type CalendarRepository struct {
	DB *db.DB
}

// NewCalendarRepository creates a CalendarRepository on the given adapter.
func NewCalendarRepository(d *db.DB) *CalendarRepository {
	return &CalendarRepository{DB: d}
}

const eventColumns = `user_email, title, description, event_date, start_time, end_time,
	location, category, attendees, reminder_minutes, is_all_day, is_online,
	repeat_weekly, recurrence_type, recurrence_end, visibility, priority,
	meeting_link, attachments, created_date, modified_date`

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CreateEvent inserts an event and returns the generated id.
func (r *CalendarRepository) CreateEvent(ctx context.Context, e *models.CalendarEvent) (int64, error) {
	id, err := r.DB.Insert(ctx,
		`INSERT INTO calendar_events (`+eventColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.UserEmail, e.Title, e.Description, e.EventDate, e.StartTime, e.EndTime,
		e.Location, e.Category, e.Attendees, e.ReminderMinutes,
		boolToInt(e.IsAllDay), boolToInt(e.IsOnline), boolToInt(e.RepeatWeekly),
		e.RecurrenceType, e.RecurrenceEnd, e.Visibility, e.Priority,
		e.MeetingLink, e.Attachments, e.CreatedDate, e.ModifiedDate,
	)
	if err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

// EventsByUser lists one user's events ordered by date then start time.
func (r *CalendarRepository) EventsByUser(ctx context.Context, email string) ([]models.CalendarEvent, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, `+eventColumns+` FROM calendar_events
		 WHERE user_email = ? ORDER BY event_date, start_time, id`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("events by user: %w", err)
	}
	defer rows.Close()

	out := []models.CalendarEvent{}
	for rows.Next() {
		var (
			e                          models.CalendarEvent
			allDay, online, weekly int
		)
		if err := rows.Scan(&e.ID, &e.UserEmail, &e.Title, &e.Description, &e.EventDate,
			&e.StartTime, &e.EndTime, &e.Location, &e.Category, &e.Attendees,
			&e.ReminderMinutes, &allDay, &online, &weekly,
			&e.RecurrenceType, &e.RecurrenceEnd, &e.Visibility, &e.Priority,
			&e.MeetingLink, &e.Attachments, &e.CreatedDate, &e.ModifiedDate); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.IsAllDay = allDay != 0
		e.IsOnline = online != 0
		e.RepeatWeekly = weekly != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateEvent replaces every mutable field of one event. ModifiedDate must
// already carry the refreshed timestamp.
func (r *CalendarRepository) UpdateEvent(ctx context.Context, id int64, e *models.CalendarEvent) (int64, error) {
	n, err := r.DB.Exec(ctx,
		`UPDATE calendar_events SET title = ?, description = ?, event_date = ?,
		 start_time = ?, end_time = ?, location = ?, category = ?, attendees = ?,
		 reminder_minutes = ?, is_all_day = ?, is_online = ?, repeat_weekly = ?,
		 recurrence_type = ?, recurrence_end = ?, visibility = ?, priority = ?,
		 meeting_link = ?, attachments = ?, modified_date = ?
		 WHERE id = ?`,
		e.Title, e.Description, e.EventDate, e.StartTime, e.EndTime, e.Location,
		e.Category, e.Attendees, e.ReminderMinutes,
		boolToInt(e.IsAllDay), boolToInt(e.IsOnline), boolToInt(e.RepeatWeekly),
		e.RecurrenceType, e.RecurrenceEnd, e.Visibility, e.Priority,
		e.MeetingLink, e.Attachments, e.ModifiedDate, id,
	)
	if err != nil {
		return 0, fmt.Errorf("update event: %w", err)
	}
	return n, nil
}

// DeleteEvent removes one event row.
func (r *CalendarRepository) DeleteEvent(ctx context.Context, id int64) (int64, error) {
	n, err := r.DB.Exec(ctx, `DELETE FROM calendar_events WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete event: %w", err)
	}
	return n, nil
}
