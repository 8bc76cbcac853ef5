package llm

import (
	"fmt"
	"strings"

	"github.com/nikogura/jd-agent/pkg/orgcontext"
)

// OutputDirective closes every prompt.
const OutputDirective = `Reply with a single JSON object and nothing else: no markdown, no commentary. The object must
have exactly these fields:
{
  "job_title": "string",
  "department": "string",
  "experience_level": "string",
  "job_summary": "string",
  "key_responsibilities": ["string"],
  "required_skills": ["string"],
  "preferred_skills": ["string"],
  "education": "string",
  "location": "string",
  "salary_range": "string",
  "benefits": ["string"],
  "company_culture": "string"
}
All string fields must be non-empty. key_responsibilities and required_skills must contain at
least one item. preferred_skills and benefits may be empty lists.`

// SystemPrompt keeps the model to a bare JSON reply.
const SystemPrompt = "You are a helpful assistant that returns only JSON."

// NoContextNotice replaces the organization section when no organization data is available.
const NoContextNotice = "No organization details are available. Generate a general job description without specific company details."

// BuildPrompt assembles the instruction for one generation request.
//
//nolint:funlen // Prompt template
func BuildPrompt(userText string, c orgcontext.Context) (prompt string) {
	orgSection := NoContextNotice
	if !c.IsEmpty() {
		orgSection = "ORGANIZATION CONTEXT:\n" + formatContext(c)
	}

	styleSection := ""
	if c.Style != nil {
		styleSection = fmt.Sprintf(`
WRITING STYLE (%s):
Culture keywords: %s
Benefits to emphasize: %s
Technology focus: %s
`, c.StyleLabel, joinOrNone(c.Style.CultureKeywords), joinOrNone(c.Style.BenefitsEmphasis), yesNo(c.Style.TechFocus))
	}

	prompt = fmt.Sprintf(`You are an expert HR professional and job description writer.
Create a comprehensive, professional job description based on the following input: %s

%s
%s
Make sure the job description is:
- Professional and engaging
- Specific to the role and experience level
- Inclusive and welcoming to diverse candidates
- Realistic in terms of requirements and expectations
- Aligned with current industry standards
- Tailored to the organization's culture, values, and requirements when they are given

Use the organization's salary range and benefits verbatim when they are given. Do not invent
company facts that are not listed above.

%s`, userText, orgSection, styleSection, OutputDirective)

	return prompt
}

// formatContext writes one labelled line per populated field.
func formatContext(c orgcontext.Context) (text string) {
	var lines []string
	add := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, label+": "+value)
		}
	}

	add("Company", c.CompanyName)
	add("Industry", c.Industry)
	add("Company Size", c.Size)
	add("Location", c.Location)
	add("Mission", c.Mission)
	add("Company Values", strings.Join(c.Values, ", "))
	add("Work Style", c.WorkStyle)
	add("Salary Range", c.SalaryRange)

	add("Health Insurance", c.Benefits.HealthInsurance)
	add("Retirement Plans", c.Benefits.RetirementPlans)
	add("Paid Time Off", c.Benefits.PaidTimeOff)
	add("Work Arrangement", c.Benefits.FlexibleWork)
	add("Professional Development", c.Benefits.ProfessionalDevelopment)
	add("Additional Benefits", strings.Join(c.Benefits.AdditionalBenefits, ", "))

	add("Tech Stack", strings.Join(c.TechStack, ", "))
	add("Tools & Platforms", strings.Join(c.Tools, ", "))
	add("Preferred Certifications", strings.Join(c.Certifications, ", "))

	if c.Department != nil {
		add("Department", c.Department.Name)
		add("Department Description", c.Department.Description)
		add("Typical Roles", strings.Join(c.Department.TypicalRoles, ", "))
		add("Growth Opportunities", c.Department.GrowthOpportunities)
		add("Team Size", c.Department.TeamSize)
	}

	text = strings.Join(lines, "\n")
	return text
}

func joinOrNone(items []string) (joined string) {
	joined = strings.Join(items, ", ")
	if joined == "" {
		joined = "none"
	}
	return joined
}

func yesNo(b bool) (s string) {
	s = "no"
	if b {
		s = "yes"
	}
	return s
}
