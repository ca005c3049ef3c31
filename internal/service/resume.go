package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

// ResumeService renders a static HTML resume from a stored profile.
type ResumeService struct {
	repo ProfileRepository
	tmpl *template.Template
}

// NewResumeService constructs a ResumeService with the given repository.
func NewResumeService(repo ProfileRepository) *ResumeService {
	return &ResumeService{
		repo: repo,
		tmpl: template.Must(template.New("resume").Parse(resumeTemplate)),
	}
}

// Render produces the resume document for one email. ErrNoProfile is
// returned when no profile is stored.
func (s *ResumeService) Render(ctx context.Context, email string) ([]byte, error) {
	profile, err := s.repo.ProfileByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoProfile
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, profile); err != nil {
		return nil, fmt.Errorf("render resume: %w", err)
	}
	return buf.Bytes(), nil
}

const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.FullName}} — Resume</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; color: #222; }
h1 { margin-bottom: 0; }
h2 { border-bottom: 1px solid #999; padding-bottom: .2rem; margin-top: 1.6rem; }
.subtitle { color: #555; margin-top: .2rem; }
.contact { font-size: .9rem; color: #444; }
ul { padding-left: 1.2rem; }
li { margin-bottom: .3rem; }
</style>
</head>
<body>
<h1>{{.FullName}}</h1>
<p class="subtitle">{{.Title}}{{if .Institution}}, {{.Institution}}{{end}}{{if .Department}} — {{.Department}}{{end}}</p>
<p class="contact">
{{if .EmailPublic}}{{.EmailPublic}}{{end}}
{{if .Phone}} · {{.Phone}}{{end}}
{{if .Website}} · {{.Website}}{{end}}
{{if .Orcid}} · ORCID {{.Orcid}}{{end}}
</p>
{{if .Bio}}<h2>About</h2><p>{{.Bio}}</p>{{end}}
{{if .ResearchInterests}}<h2>Research Interests</h2><p>{{.ResearchInterests}}</p>{{end}}
{{if .Degrees}}
<h2>Education</h2>
<ul>
{{range .Degrees}}<li>{{.Degree}}, {{.Institution}}{{if .Year}} ({{.Year}}){{end}}</li>{{end}}
</ul>
{{end}}
{{if .Employment}}
<h2>Employment</h2>
<ul>
{{range .Employment}}<li>{{.Position}}, {{.Institution}}{{if .StartYear}} ({{.StartYear}}&ndash;{{if .EndYear}}{{.EndYear}}{{else}}present{{end}}){{end}}</li>{{end}}
</ul>
{{end}}
{{if .Courses}}
<h2>Teaching</h2>
<ul>
{{range .Courses}}<li>{{.Code}} {{.Title}}{{if .Term}} ({{.Term}}){{end}}</li>{{end}}
</ul>
{{end}}
{{if .Grants}}
<h2>Grants</h2>
<ul>
{{range .Grants}}<li>{{.Title}}, {{.Agency}}{{if .Amount}} — {{.Amount}}{{end}}{{if .Year}} ({{.Year}}){{end}}</li>{{end}}
</ul>
{{end}}
{{if .Awards}}
<h2>Honors &amp; Awards</h2>
<ul>
{{range .Awards}}<li>{{.Title}}{{if .Year}} ({{.Year}}){{end}}</li>{{end}}
</ul>
{{end}}
</body>
</html>
`
