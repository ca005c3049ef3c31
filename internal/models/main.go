// Package models defines the persisted record types exposed over the API.
package models

// User represents a registered identity.
type User struct {
	// ID is the generated identifier of the user row.
	ID int64 `json:"id"`
	// Email is the case-folded login email, unique per user.
	Email string `json:"email"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`
}

// Project is a research project owned by one user.
//
// Colleagues is kept as serialized JSON text: the API historically returned
// the raw string (e.g. "[]") and callers depend on that shape.
type Project struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	OwnerEmail       string `json:"owner_email"`
	Colleagues       string `json:"colleagues"`
	Progress         int    `json:"progress"`
	Description      string `json:"description"`
	Status           string `json:"status"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	FundingSource    string `json:"funding_source"`
	Budget           string `json:"budget"`
	Institution      string `json:"institution"`
	Department       string `json:"department"`
	Keywords         string `json:"keywords"`
	Objectives       string `json:"objectives"`
	Methodology      string `json:"methodology"`
	ExpectedOutcomes string `json:"expected_outcomes"`
	Publications     string `json:"publications"`
	Website          string `json:"website"`
	Notes            string `json:"notes"`
}

// Colleague is a person attached to a project. The project link is a plain
// reference, not enforced at write time.
type Colleague struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Meeting is keyed by the colleague's email rather than a colleague id.
type Meeting struct {
	ID             int64  `json:"id"`
	ColleagueEmail string `json:"colleague_email"`
	Date           string `json:"date"`
	Description    string `json:"description"`
}

// Entry is the shared shape of ideas and notes: a titled text snippet with a
// category. Both tables have identical columns.
type Entry struct {
	ID          int64  `json:"id"`
	UserEmail   string `json:"user_email"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	CreatedDate string `json:"created_date"`
}

// FutureWork is a planned research direction.
type FutureWork struct {
	ID          int64  `json:"id"`
	UserEmail   string `json:"user_email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	CreatedDate string `json:"created_date"`
}

// Deadline is a dated obligation, listed ascending by due date.
type Deadline struct {
	ID          int64  `json:"id"`
	UserEmail   string `json:"user_email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	CreatedDate string `json:"created_date"`
}

// CareerGoal tracks a staged long-term goal. Progress and CurrentStage are
// caller-supplied and not bounded.
type CareerGoal struct {
	ID               int64  `json:"id"`
	UserEmail        string `json:"user_email"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Progress         int    `json:"progress"`
	GoalType         string `json:"goal_type"`
	TargetDate       string `json:"target_date"`
	TotalStages      int    `json:"total_stages"`
	CurrentStage     int    `json:"current_stage"`
	StartDate        string `json:"start_date"`
	StageDescription string `json:"stage_description"`
	CreatedDate      string `json:"created_date"`
}

// CalendarEvent is the canonical camelCase event projection. The three flag
// fields are stored as 0/1 and must come back as JSON booleans.
type CalendarEvent struct {
	ID              int64  `json:"id"`
	UserEmail       string `json:"userEmail"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	EventDate       string `json:"eventDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Location        string `json:"location"`
	Category        string `json:"category"`
	Attendees       string `json:"attendees"`
	ReminderMinutes int    `json:"reminderMinutes"`
	IsAllDay        bool   `json:"isAllDay"`
	IsOnline        bool   `json:"isOnline"`
	RepeatWeekly    bool   `json:"repeatWeekly"`
	RecurrenceType  string `json:"recurrenceType"`
	RecurrenceEnd   string `json:"recurrenceEnd"`
	Visibility      string `json:"visibility"`
	Priority        string `json:"priority"`
	MeetingLink     string `json:"meetingLink"`
	Attachments     string `json:"attachments"`
	CreatedDate     string `json:"createdDate"`
	ModifiedDate    string `json:"modifiedDate"`
}

// LegacyEvent is the snake_case subset served on /calendar_events for old
// callers. It reads and writes the same table as CalendarEvent.
type LegacyEvent struct {
	ID              int64  `json:"id"`
	UserEmail       string `json:"user_email"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	EventDate       string `json:"event_date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Location        string `json:"location"`
	ReminderMinutes int    `json:"reminder_minutes"`
}

// Degree is one entry of a profile's education history.
type Degree struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Employment is one entry of a profile's employment history.
type Employment struct {
	Position    string `json:"position"`
	Institution string `json:"institution"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
}

// Course is one course taught by the profile owner.
type Course struct {
	Code  string `json:"code"`
	Title string `json:"title"`
	Term  string `json:"term"`
}

// Grant is one funded grant held by the profile owner.
type Grant struct {
	Title  string `json:"title"`
	Agency string `json:"agency"`
	Amount string `json:"amount"`
	Year   string `json:"year"`
}

// Award is one honor or award.
type Award struct {
	Title string `json:"title"`
	Year  string `json:"year"`
}

// Profile is the researcher profile, at most one per user email. The five
// list fields are stored as serialized JSON text columns.
type Profile struct {
	ID                int64        `json:"id"`
	UserEmail         string       `json:"userEmail"`
	FullName          string       `json:"fullName"`
	Title             string       `json:"title"`
	Institution       string       `json:"institution"`
	Department        string       `json:"department"`
	Office            string       `json:"office"`
	Phone             string       `json:"phone"`
	EmailPublic       string       `json:"emailPublic"`
	Website           string       `json:"website"`
	Orcid             string       `json:"orcid"`
	GoogleScholar     string       `json:"googleScholar"`
	Linkedin          string       `json:"linkedin"`
	Github            string       `json:"github"`
	Twitter           string       `json:"twitter"`
	Bio               string       `json:"bio"`
	ResearchInterests string       `json:"researchInterests"`
	TeachingInterests string       `json:"teachingInterests"`
	Address           string       `json:"address"`
	City              string       `json:"city"`
	Country           string       `json:"country"`
	PostalCode        string       `json:"postalCode"`
	Degrees           []Degree     `json:"degrees"`
	Employment        []Employment `json:"employment"`
	Courses           []Course     `json:"courses"`
	Grants            []Grant      `json:"grants"`
	Awards            []Award      `json:"awards"`
	CreatedDate       string       `json:"createdDate"`
	ModifiedDate      string       `json:"modifiedDate"`
}
