package knowledge

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/nikogura/jd-agent/pkg/errs"
)

// StyleTemplate tunes the tone of a description for a type of company.
type StyleTemplate struct {
	CultureKeywords  []string `json:"culture_keywords"`
	BenefitsEmphasis []string `json:"benefits_emphasis"`
	TechFocus        bool     `json:"tech_focus"`
}

// DefaultTemplates returns the built-in style templates.
func DefaultTemplates() (templates map[string]StyleTemplate) {
	templates = map[string]StyleTemplate{
		"tech_company": {
			CultureKeywords:  []string{"innovative", "fast-paced", "collaborative", "growth-oriented"},
			BenefitsEmphasis: []string{"stock options", "learning budget", "flexible hours"},
			TechFocus:        true,
		},
		"startup": {
			CultureKeywords:  []string{"entrepreneurial", "agile", "high-impact", "ownership"},
			BenefitsEmphasis: []string{"equity", "rapid growth", "direct impact"},
			TechFocus:        true,
		},
		"enterprise": {
			CultureKeywords:  []string{"stable", "structured", "comprehensive", "established"},
			BenefitsEmphasis: []string{"job security", "comprehensive benefits", "career paths"},
			TechFocus:        false,
		},
		"non_profit": {
			CultureKeywords:  []string{"mission-driven", "impactful", "community-focused", "purpose"},
			BenefitsEmphasis: []string{"meaningful work", "work-life balance", "social impact"},
			TechFocus:        false,
		},
	}
	return templates
}

// Templates returns the style templates from the store directory, or the built-in set
// when no template file exists. The file is never written.
func (s *Store) Templates() (templates map[string]StyleTemplate, err error) {
	var data []byte
	data, err = os.ReadFile(s.templatesPath)
	if err != nil {
		if os.IsNotExist(err) {
			templates = DefaultTemplates()
			err = nil
			return templates, err
		}
		err = errs.Persistence("failed to read templates file: "+s.templatesPath, err)
		return templates, err
	}

	err = json.Unmarshal(data, &templates)
	if err != nil {
		err = errs.Persistence("corrupt templates file: "+s.templatesPath, err)
		return templates, err
	}

	return templates, err
}

// Template looks up a single style template by label.
func (s *Store) Template(label string) (template StyleTemplate, found bool, err error) {
	var templates map[string]StyleTemplate
	templates, err = s.Templates()
	if err != nil {
		return template, found, err
	}

	template, found = templates[label]
	return template, found, err
}

// TemplateLabels returns the available template labels, sorted.
func (s *Store) TemplateLabels() (labels []string, err error) {
	var templates map[string]StyleTemplate
	templates, err = s.Templates()
	if err != nil {
		return labels, err
	}

	labels = make([]string, 0, len(templates))
	for label := range templates {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels, err
}
