package jobdesc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikogura/jd-agent/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResponse = `{
  "job_title": "Senior Python Developer",
  "department": "Engineering",
  "experience_level": "Senior",
  "job_summary": "Build and run our data services.",
  "key_responsibilities": ["Design services", "Review code"],
  "required_skills": ["Python", "SQL"],
  "preferred_skills": [],
  "education": "BS in Computer Science or equivalent",
  "location": "Remote",
  "salary_range": "$140k-$170k",
  "benefits": ["Health insurance"],
  "company_culture": "Remote-first and collaborative.",
  "extra_field": "ignored"
}`

func TestParse(t *testing.T) {
	jd, err := Parse(validResponse)
	require.NoError(t, err)

	want := JobDescription{
		JobTitle:            "Senior Python Developer",
		Department:          "Engineering",
		ExperienceLevel:     "Senior",
		JobSummary:          "Build and run our data services.",
		KeyResponsibilities: []string{"Design services", "Review code"},
		RequiredSkills:      []string{"Python", "SQL"},
		PreferredSkills:     []string{},
		Education:           "BS in Computer Science or equivalent",
		Location:            "Remote",
		SalaryRange:         "$140k-$170k",
		Benefits:            []string{"Health insurance"},
		CompanyCulture:      "Remote-first and collaborative.",
	}

	if diff := cmp.Diff(want, jd); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFenced(t *testing.T) {
	for _, fence := range []string{"```json\n", "```\n"} {
		jd, err := Parse(fence + validResponse + "\n```")
		require.NoError(t, err)
		assert.Equal(t, "Senior Python Developer", jd.JobTitle)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "prose", raw: "Here is your job description!"},
		{name: "array", raw: `["a"]`},
		{name: "empty", raw: ""},
		{name: "missing title", raw: `{"department":"x"}`},
		{name: "number title", raw: replace("\"Senior Python Developer\"", "42")},
		{name: "blank summary", raw: replace("\"Build and run our data services.\"", "\"   \"")},
		{name: "list not a list", raw: replace(`["Python", "SQL"]`, `"Python"`)},
		{name: "non-string element", raw: replace(`["Python", "SQL"]`, `["Python", 3]`)},
		{name: "empty responsibilities", raw: replace(`["Design services", "Review code"]`, `[]`)},
		{name: "missing benefits", raw: replace(`"benefits": ["Health insurance"],`, ``)},
		{name: "duplicate blank title", raw: strings.Replace(validResponse, "{", `{"job_title": "   ", `, 1)},
		{name: "duplicate title last wins", raw: strings.TrimSuffix(strings.TrimSpace(validResponse), "}") + `, "job_title": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err), "expected validation error, got %v", err)
			assert.Equal(t, tt.raw, errs.RawOf(err))
		})
	}
}

func TestParseAllowsEmptyOptionalLists(t *testing.T) {
	raw := replace(`["Health insurance"]`, `[]`)
	jd, err := Parse(raw)
	require.NoError(t, err)
	assert.Empty(t, jd.Benefits)
	assert.Empty(t, jd.PreferredSkills)
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fence", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "\n  ```json\n{\"a\":1}\n```  \n", want: `{"a":1}`},
		{name: "unterminated", in: "```json\n{\"a\":1}", want: "```json\n{\"a\":1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.in); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func replace(old, replacement string) (out string) {
	if !strings.Contains(validResponse, old) {
		panic("fixture does not contain " + old)
	}
	out = strings.Replace(validResponse, old, replacement, 1)
	return out
}
