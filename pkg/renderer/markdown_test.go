package renderer

import (
	"strings"
	"testing"

	"github.com/nikogura/jd-agent/pkg/jobdesc"
)

func sampleJob() (jd jobdesc.JobDescription) {
	jd = jobdesc.JobDescription{
		JobTitle:            "Senior Go Developer",
		Department:          "Engineering",
		ExperienceLevel:     "Senior",
		JobSummary:          "Own our billing services.",
		KeyResponsibilities: []string{"Design APIs", "Mentor engineers"},
		RequiredSkills:      []string{"Go", "PostgreSQL"},
		PreferredSkills:     []string{"Kubernetes"},
		Education:           "BS in Computer Science",
		Location:            "Remote",
		SalaryRange:         "$150k-$180k",
		Benefits:            []string{"Health insurance", "401k"},
		CompanyCulture:      "Small, senior team.",
	}
	return jd
}

func TestRender(t *testing.T) {
	want := `# Senior Go Developer

**Department:** Engineering  
**Experience Level:** Senior  
**Location:** Remote  
**Salary Range:** $150k-$180k

## Job Summary
Own our billing services.

## Key Responsibilities
1. Design APIs
2. Mentor engineers

## Required Skills
- Go
- PostgreSQL

## Preferred Skills
- Kubernetes

## Education
BS in Computer Science

## Benefits
- Health insurance
- 401k

## Company Culture
Small, senior team.
`

	got := Render(sampleJob())
	if got != want {
		t.Errorf("Render mismatch.\nExpected:\n%s\nGot:\n%s", want, got)
	}
}

func TestRenderOmitsEmptyPreferredSkills(t *testing.T) {
	jd := sampleJob()
	jd.PreferredSkills = nil

	got := Render(jd)
	if strings.Contains(got, "Preferred Skills") {
		t.Error("Expected Preferred Skills section to be omitted")
	}
}

func TestRenderKeepsEmptyBenefitsHeader(t *testing.T) {
	jd := sampleJob()
	jd.Benefits = []string{}

	got := Render(jd)
	if !strings.Contains(got, "## Benefits\n\n## Company Culture") {
		t.Errorf("Expected an empty Benefits section, got:\n%s", got)
	}
}

func TestRenderNumbersResponsibilitiesInOrder(t *testing.T) {
	got := Render(sampleJob())

	first := strings.Index(got, "1. Design APIs\n")
	second := strings.Index(got, "2. Mentor engineers\n")
	if first < 0 || second < 0 || second < first {
		t.Errorf("Expected numbered responsibilities in order, got:\n%s", got)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Senior Go Developer", want: "job_description_senior_go_developer.md"},
		{title: "  C++ / Rust Engineer ", want: "job_description_c_rust_engineer.md"},
		{title: "Site-Reliability Lead", want: "job_description_site-reliability_lead.md"},
		{title: "???", want: "job_description_untitled.md"},
	}

	for _, tt := range tests {
		if got := Filename(tt.title); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
