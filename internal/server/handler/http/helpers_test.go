package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"go.uber.org/zap"

	"github.com/okravets/scholardesk/internal/models"
	"github.com/okravets/scholardesk/internal/repository"
	"github.com/okravets/scholardesk/internal/service"
)

// memStore is an in-memory stand-in for the repositories, so handler tests
// run the real services against the real router.
type memStore struct {
	nextID     int64
	users      map[string]models.User
	projects   []models.Project
	colleagues []models.Colleague
	meetings   []models.Meeting
	entries    map[string][]models.Entry
	work       []models.FutureWork
	deadlines  []models.Deadline
	goals      []models.CareerGoal
	events     []models.CalendarEvent
	profiles   map[string]models.Profile
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]models.User{},
		entries:  map[string][]models.Entry{},
		profiles: map[string]models.Profile{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUser(_ context.Context, email, hash string) (int64, error) {
	if _, ok := m.users[email]; ok {
		return 0, repository.ErrDuplicate
	}
	u := models.User{ID: m.id(), Email: email, PasswordHash: hash}
	m.users[email] = u
	return u.ID, nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := m.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *memStore) CreateProject(_ context.Context, p *models.Project) (int64, error) {
	p.ID = m.id()
	m.projects = append(m.projects, *p)
	return p.ID, nil
}

func (m *memStore) ProjectsByOwner(_ context.Context, email string) ([]models.Project, error) {
	out := []models.Project{}
	for i := len(m.projects) - 1; i >= 0; i-- {
		if m.projects[i].OwnerEmail == email {
			out = append(out, m.projects[i])
		}
	}
	return out, nil
}

func (m *memStore) UpdateProject(_ context.Context, id int64, p *models.Project) (int64, error) {
	for i := range m.projects {
		if m.projects[i].ID == id {
			p.ID = id
			m.projects[i] = *p
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteProject(_ context.Context, id int64) (int64, error) {
	for i := range m.projects {
		if m.projects[i].ID == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) CreateColleague(_ context.Context, c *models.Colleague) (int64, error) {
	c.ID = m.id()
	m.colleagues = append(m.colleagues, *c)
	return c.ID, nil
}

func (m *memStore) ColleaguesByProject(_ context.Context, projectID int64) ([]models.Colleague, error) {
	out := []models.Colleague{}
	for _, c := range m.colleagues {
		if c.ProjectID == projectID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) DeleteColleague(_ context.Context, id int64) (int64, error) {
	for i := range m.colleagues {
		if m.colleagues[i].ID == id {
			m.colleagues = append(m.colleagues[:i], m.colleagues[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) CreateMeeting(_ context.Context, mt *models.Meeting) (int64, error) {
	mt.ID = m.id()
	m.meetings = append(m.meetings, *mt)
	return mt.ID, nil
}

func (m *memStore) MeetingsByColleague(_ context.Context, email string) ([]models.Meeting, error) {
	out := []models.Meeting{}
	for _, mt := range m.meetings {
		if mt.ColleagueEmail == email {
			out = append(out, mt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *memStore) UpdateMeeting(_ context.Context, id int64, mt *models.Meeting) (int64, error) {
	for i := range m.meetings {
		if m.meetings[i].ID == id {
			mt.ID = id
			m.meetings[i] = *mt
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteMeeting(_ context.Context, id int64) (int64, error) {
	for i := range m.meetings {
		if m.meetings[i].ID == id {
			m.meetings = append(m.meetings[:i], m.meetings[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) CreateEntry(_ context.Context, table string, e *models.Entry) (int64, error) {
	e.ID = m.id()
	m.entries[table] = append(m.entries[table], *e)
	return e.ID, nil
}

func (m *memStore) EntriesByUser(_ context.Context, table, email string) ([]models.Entry, error) {
	out := []models.Entry{}
	list := m.entries[table]
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].UserEmail == email {
			out = append(out, list[i])
		}
	}
	return out, nil
}

func (m *memStore) UpdateEntry(_ context.Context, table string, id int64, e *models.Entry) (int64, error) {
	list := m.entries[table]
	for i := range list {
		if list[i].ID == id {
			e.ID = id
			e.UserEmail = list[i].UserEmail
			list[i] = *e
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteEntry(_ context.Context, table string, id int64) (int64, error) {
	list := m.entries[table]
	for i := range list {
		if list[i].ID == id {
			m.entries[table] = append(list[:i], list[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) CreateFutureWork(_ context.Context, w *models.FutureWork) (int64, error) {
	w.ID = m.id()
	m.work = append(m.work, *w)
	return w.ID, nil
}

func (m *memStore) FutureWorkByUser(_ context.Context, email string) ([]models.FutureWork, error) {
	out := []models.FutureWork{}
	for i := len(m.work) - 1; i >= 0; i-- {
		if m.work[i].UserEmail == email {
			out = append(out, m.work[i])
		}
	}
	return out, nil
}

func (m *memStore) UpdateFutureWork(_ context.Context, id int64, w *models.FutureWork) (int64, error) {
	for i := range m.work {
		if m.work[i].ID == id {
			w.ID = id
			m.work[i] = *w
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteFutureWork(_ context.Context, id int64) (int64, error) {
	for i := range m.work {
		if m.work[i].ID == id {
			m.work = append(m.work[:i], m.work[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) CreateDeadline(_ context.Context, d *models.Deadline) (int64, error) {
	d.ID = m.id()
	m.deadlines = append(m.deadlines, *d)
	return d.ID, nil
}

func (m *memStore) DeadlinesByUser(_ context.Context, email string) ([]models.Deadline, error) {
	out := []models.Deadline{}
	for _, d := range m.deadlines {
		if d.UserEmail == email {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	return out, nil
}

func (m *memStore) UpdateDeadline(_ context.Context, id int64, d *models.Deadline) (int64, error) {
	for i := range m.deadlines {
		if m.deadlines[i].ID == id {
			d.ID = id
			m.deadlines[i] = *d
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteDeadline(_ context.Context, id int64) (int64, error) {
	for i := range m.deadlines {
		if m.deadlines[i].ID == id {
			m.deadlines = append(m.deadlines[:i], m.deadlines[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) CreateGoal(_ context.Context, g *models.CareerGoal) (int64, error) {
	g.ID = m.id()
	m.goals = append(m.goals, *g)
	return g.ID, nil
}

func (m *memStore) GoalsByUser(_ context.Context, email string) ([]models.CareerGoal, error) {
	out := []models.CareerGoal{}
	for i := len(m.goals) - 1; i >= 0; i-- {
		if m.goals[i].UserEmail == email {
			out = append(out, m.goals[i])
		}
	}
	return out, nil
}

func (m *memStore) UpdateGoal(_ context.Context, id int64, g *models.CareerGoal) (int64, error) {
	for i := range m.goals {
		if m.goals[i].ID == id {
			g.ID = id
			m.goals[i] = *g
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteGoal(_ context.Context, id int64) (int64, error) {
	for i := range m.goals {
		if m.goals[i].ID == id {
			m.goals = append(m.goals[:i], m.goals[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) CreateEvent(_ context.Context, e *models.CalendarEvent) (int64, error) {
	e.ID = m.id()
	m.events = append(m.events, *e)
	return e.ID, nil
}

func (m *memStore) EventsByUser(_ context.Context, email string) ([]models.CalendarEvent, error) {
	out := []models.CalendarEvent{}
	for _, e := range m.events {
		if e.UserEmail == email {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EventDate != out[j].EventDate {
			return out[i].EventDate < out[j].EventDate
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (m *memStore) UpdateEvent(_ context.Context, id int64, e *models.CalendarEvent) (int64, error) {
	for i := range m.events {
		if m.events[i].ID == id {
			e.ID = id
			e.UserEmail = m.events[i].UserEmail
			e.CreatedDate = m.events[i].CreatedDate
			m.events[i] = *e
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) DeleteEvent(_ context.Context, id int64) (int64, error) {
	for i := range m.events {
		if m.events[i].ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memStore) ProfileByEmail(_ context.Context, email string) (*models.Profile, error) {
	if p, ok := m.profiles[email]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *memStore) InsertProfile(_ context.Context, p *models.Profile) (int64, error) {
	if _, ok := m.profiles[p.UserEmail]; ok {
		return 0, repository.ErrDuplicate
	}
	p.ID = m.id()
	m.profiles[p.UserEmail] = *p
	return p.ID, nil
}

func (m *memStore) UpdateProfileByEmail(_ context.Context, email string, p *models.Profile) (int64, error) {
	if _, ok := m.profiles[email]; !ok {
		return 0, nil
	}
	m.profiles[email] = *p
	return 1, nil
}

func (m *memStore) DeleteProfileByEmail(_ context.Context, email string) (int64, error) {
	if _, ok := m.profiles[email]; !ok {
		return 0, nil
	}
	delete(m.profiles, email)
	return 1, nil
}

// newTestRouter wires real services over the in-memory store.
func newTestRouter() (http.Handler, *memStore) {
	store := newMemStore()
	log := zap.NewNop()

	auth := &AuthHandler{AuthService: service.NewAuthService(store), Log: log}
	portfolio := &PortfolioHandler{Service: service.NewPortfolioService(store), Log: log}
	tracker := &TrackerHandler{Service: service.NewTrackerService(store), Log: log}
	calendar := &CalendarHandler{Service: service.NewCalendarService(store), Log: log}
	profile := &ProfileHandler{
		Service: service.NewProfileService(store),
		Resume:  service.NewResumeService(store),
		Log:     log,
	}

	return NewRouter(auth, portfolio, tracker, calendar, profile, log), store
}

// doJSON issues one request against the router and decodes the response.
func doJSON(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec, rec.Body.Bytes()
}
