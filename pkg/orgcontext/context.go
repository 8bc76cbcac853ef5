// Package orgcontext reduces a stored organization to the fields a generation prompt needs.
package orgcontext

import (
	"github.com/nikogura/jd-agent/pkg/errs"
	"github.com/nikogura/jd-agent/pkg/knowledge"
	"github.com/nikogura/jd-agent/pkg/roles"
)

// SalaryNotSpecified is used when the tier table has no entry for the role.
const SalaryNotSpecified = "Not specified"

// Getter reads organization records.
type Getter interface {
	Get(orgID string) (org knowledge.Organization, found bool, err error)
}

// TemplateSource reads style templates.
type TemplateSource interface {
	Template(label string) (template knowledge.StyleTemplate, found bool, err error)
}

// Context is the organization data injected into a prompt.
type Context struct {
	CompanyName    string
	Industry       string
	Size           string
	Location       string
	Mission        string
	Values         []string
	WorkStyle      string
	Benefits       knowledge.BenefitsPackage
	SalaryRange    string
	Department     *knowledge.DepartmentInfo
	TechStack      []string
	Tools          []string
	Certifications []string

	// StyleLabel and Style are set by WithStyle. They do not count toward IsEmpty.
	StyleLabel string
	Style      *knowledge.StyleTemplate
}

// IsEmpty reports whether no organization data was found.
func (c Context) IsEmpty() (empty bool) {
	empty = c.CompanyName == "" &&
		c.Industry == "" &&
		c.Size == "" &&
		c.Location == "" &&
		c.Mission == "" &&
		len(c.Values) == 0 &&
		c.WorkStyle == "" &&
		c.SalaryRange == "" &&
		c.Department == nil &&
		len(c.TechStack) == 0 &&
		len(c.Tools) == 0 &&
		len(c.Certifications) == 0
	return empty
}

// Builder assembles contexts from the organization store.
type Builder struct {
	orgs      Getter
	templates TemplateSource
}

// NewBuilder returns a Builder. templates may be nil when style templates are not used.
func NewBuilder(orgs Getter, templates TemplateSource) (b *Builder) {
	b = &Builder{
		orgs:      orgs,
		templates: templates,
	}
	return b
}

// Build returns the context for orgID. A blank or unknown orgID yields an empty context.
func (b *Builder) Build(orgID, role string, level roles.Level) (c Context, err error) {
	if orgID == "" || b.orgs == nil {
		return c, err
	}

	var org knowledge.Organization
	var found bool
	org, found, err = b.orgs.Get(orgID)
	if err != nil {
		if errs.KindOf(err) == errs.KindUnknown {
			err = errs.Persistence("failed to read organization "+orgID, err)
		}
		return c, err
	}
	if !found {
		return c, err
	}

	c = Context{
		CompanyName:    org.CompanyInfo.Name,
		Industry:       org.CompanyInfo.Industry,
		Size:           org.CompanyInfo.Size,
		Location:       org.CompanyInfo.Location,
		Mission:        org.Culture.Mission,
		Values:         org.Culture.Values,
		WorkStyle:      org.Culture.WorkStyle,
		Benefits:       org.Benefits,
		SalaryRange:    SalaryNotSpecified,
		TechStack:      nonNil(org.TechStack),
		Tools:          nonNil(org.ToolsPlatforms),
		Certifications: nonNil(org.CertificationsPreferred),
	}

	if salary, ok := org.SalaryRanges.Lookup(string(level), role); ok {
		c.SalaryRange = salary
	}

	if dept, ok := org.DepartmentFor(role); ok {
		c.Department = &dept
	}

	return c, err
}

// WithStyle attaches the style template named label. An empty label leaves c unchanged.
func (b *Builder) WithStyle(c Context, label string) (styled Context, err error) {
	styled = c
	if label == "" {
		return styled, err
	}

	if b.templates == nil {
		err = errs.Configuration("style templates are not available", nil)
		return styled, err
	}

	var tmpl knowledge.StyleTemplate
	var found bool
	tmpl, found, err = b.templates.Template(label)
	if err != nil {
		return styled, err
	}
	if !found {
		err = errs.Configuration("unknown style template: "+label, nil)
		return styled, err
	}

	styled.StyleLabel = label
	styled.Style = &tmpl
	return styled, err
}

func nonNil(in []string) (out []string) {
	out = in
	if out == nil {
		out = []string{}
	}
	return out
}
