// Package jobdesc holds the generated job description record and the parser that
// turns model output into one.
package jobdesc

import (
	"encoding/json"
	"strings"

	"github.com/nikogura/jd-agent/pkg/errs"
	"github.com/tidwall/gjson"
)

// JobDescription is a generated job description.
type JobDescription struct {
	JobTitle            string   `json:"job_title"`
	Department          string   `json:"department"`
	ExperienceLevel     string   `json:"experience_level"`
	JobSummary          string   `json:"job_summary"`
	KeyResponsibilities []string `json:"key_responsibilities"`
	RequiredSkills      []string `json:"required_skills"`
	PreferredSkills     []string `json:"preferred_skills"`
	Education           string   `json:"education"`
	Location            string   `json:"location"`
	SalaryRange         string   `json:"salary_range"`
	Benefits            []string `json:"benefits"`
	CompanyCulture      string   `json:"company_culture"`
}

// StringFields are the keys that must hold non-blank strings.
//
//nolint:gochecknoglobals // Fixed record schema
var StringFields = []string{
	"job_title",
	"department",
	"experience_level",
	"job_summary",
	"education",
	"location",
	"salary_range",
	"company_culture",
}

// ListFields are the keys that must hold lists of strings.
//
//nolint:gochecknoglobals // Fixed record schema
var ListFields = []string{
	"key_responsibilities",
	"required_skills",
	"preferred_skills",
	"benefits",
}

// Lists that may not be empty.
//
//nolint:gochecknoglobals // Fixed record schema
var nonEmptyLists = map[string]bool{
	"key_responsibilities": true,
	"required_skills":      true,
}

// Parse validates raw model output and decodes it. Any failure is a validation error
// carrying raw. A surrounding Markdown code fence is removed first; nothing else is repaired.
func Parse(raw string) (jd JobDescription, err error) {
	cleaned := StripCodeFences(raw)

	if !gjson.Valid(cleaned) {
		err = errs.Validation("response is not valid JSON", raw, nil)
		return jd, err
	}

	doc := gjson.Parse(cleaned)
	if !doc.IsObject() {
		err = errs.Validation("response is not a JSON object", raw, nil)
		return jd, err
	}

	// gjson reads the first occurrence of a key and encoding/json keeps the last.
	err = checkDuplicateFields(doc, raw)
	if err != nil {
		return jd, err
	}

	for _, field := range StringFields {
		value := doc.Get(field)
		switch {
		case !value.Exists():
			err = errs.Validation("missing field "+field, raw, nil)
			return jd, err
		case value.Type != gjson.String:
			err = errs.Validation("field "+field+" is not a string", raw, nil)
			return jd, err
		case strings.TrimSpace(value.Str) == "":
			err = errs.Validation("field "+field+" is blank", raw, nil)
			return jd, err
		}
	}

	for _, field := range ListFields {
		value := doc.Get(field)
		if !value.Exists() {
			err = errs.Validation("missing field "+field, raw, nil)
			return jd, err
		}
		if !value.IsArray() {
			err = errs.Validation("field "+field+" is not a list", raw, nil)
			return jd, err
		}

		items := value.Array()
		for _, item := range items {
			if item.Type != gjson.String {
				err = errs.Validation("field "+field+" contains a non-string element", raw, nil)
				return jd, err
			}
		}

		if nonEmptyLists[field] && len(items) == 0 {
			err = errs.Validation("field "+field+" is empty", raw, nil)
			return jd, err
		}
	}

	err = json.Unmarshal([]byte(cleaned), &jd)
	if err != nil {
		err = errs.Validation("response could not be decoded", raw, err)
		return jd, err
	}

	return jd, err
}

func checkDuplicateFields(doc gjson.Result, raw string) (err error) {
	known := make(map[string]bool, len(StringFields)+len(ListFields))
	for _, field := range StringFields {
		known[field] = true
	}
	for _, field := range ListFields {
		known[field] = true
	}

	seen := make(map[string]bool)
	doc.ForEach(func(key, _ gjson.Result) (more bool) {
		name := key.String()
		if known[name] && seen[name] {
			err = errs.Validation("duplicate field "+name, raw, nil)
			return more
		}
		seen[name] = true
		more = true
		return more
	})

	return err
}

// StripCodeFences removes a Markdown code fence wrapped around the whole text.
func StripCodeFences(text string) (cleaned string) {
	cleaned = strings.TrimSpace(text)

	if !strings.HasPrefix(cleaned, "```") || !strings.HasSuffix(cleaned, "```") || len(cleaned) < 6 {
		return cleaned
	}

	// Drop the opening fence line, including any language tag.
	newline := strings.IndexByte(cleaned, '\n')
	if newline < 0 {
		return cleaned
	}

	cleaned = strings.TrimSpace(cleaned[newline+1 : len(cleaned)-3])
	return cleaned
}
