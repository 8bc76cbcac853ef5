// Package renderer turns job descriptions into Markdown and, optionally, PDF files.
package renderer

import (
	"strconv"
	"strings"

	"github.com/nikogura/jd-agent/pkg/jobdesc"
)

// Render formats jd as Markdown. Preferred Skills is left out when empty; every other
// section header is always written.
func Render(jd jobdesc.JobDescription) (markdown string) {
	var b strings.Builder

	b.WriteString("# " + jd.JobTitle + "\n\n")

	// Two trailing spaces force Markdown line breaks inside the block.
	b.WriteString("**Department:** " + jd.Department + "  \n")
	b.WriteString("**Experience Level:** " + jd.ExperienceLevel + "  \n")
	b.WriteString("**Location:** " + jd.Location + "  \n")
	b.WriteString("**Salary Range:** " + jd.SalaryRange + "\n\n")

	b.WriteString("## Job Summary\n")
	b.WriteString(jd.JobSummary + "\n\n")

	b.WriteString("## Key Responsibilities\n")
	for i, responsibility := range jd.KeyResponsibilities {
		b.WriteString(strconv.Itoa(i+1) + ". " + responsibility + "\n")
	}
	b.WriteString("\n")

	writeBullets(&b, "Required Skills", jd.RequiredSkills)

	if len(jd.PreferredSkills) > 0 {
		writeBullets(&b, "Preferred Skills", jd.PreferredSkills)
	}

	b.WriteString("## Education\n")
	b.WriteString(jd.Education + "\n\n")

	writeBullets(&b, "Benefits", jd.Benefits)

	b.WriteString("## Company Culture\n")
	b.WriteString(jd.CompanyCulture + "\n")

	markdown = b.String()
	return markdown
}

func writeBullets(b *strings.Builder, header string, items []string) {
	b.WriteString("## " + header + "\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}

// Filename returns the file name a description with the given title is saved under.
func Filename(title string) (name string) {
	slug := strings.Map(func(r rune) (result rune) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			result = r
		case r == ' ' || r == '_':
			result = '_'
		default:
			result = -1
		}
		return result
	}, strings.ToLower(strings.TrimSpace(title)))

	// Collapse runs left behind by dropped characters.
	for strings.Contains(slug, "__") {
		slug = strings.ReplaceAll(slug, "__", "_")
	}
	slug = strings.Trim(slug, "_")

	if slug == "" {
		slug = "untitled"
	}

	name = "job_description_" + slug + ".md"
	return name
}
