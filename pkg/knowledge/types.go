package knowledge

import (
	"strings"

	"github.com/pkg/errors"
)

// Organization is the stored description of one company.
type Organization struct {
	CompanyInfo             CompanyInfo      `json:"company_info"`
	Culture                 CompanyCulture   `json:"culture"`
	Benefits                BenefitsPackage  `json:"benefits"`
	SalaryRanges            SalaryRanges     `json:"salary_ranges"`
	Departments             []DepartmentInfo `json:"departments"`
	TechStack               []string         `json:"tech_stack"`
	ToolsPlatforms          []string         `json:"tools_platforms"`
	CertificationsPreferred []string         `json:"certifications_preferred"`
	LastUpdated             string           `json:"last_updated,omitempty"`
}

// CompanyInfo holds basic company facts.
type CompanyInfo struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Size        string `json:"size"` // e.g. "50-100 employees"
	Location    string `json:"location"`
	FoundedYear int    `json:"founded_year,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
}

// CompanyCulture holds mission and values.
type CompanyCulture struct {
	Mission            string   `json:"mission"`
	Vision             string   `json:"vision"`
	Values             []string `json:"values"`
	WorkStyle          string   `json:"work_style"`
	DiversityInclusion string   `json:"diversity_inclusion"`
	WorkLifeBalance    string   `json:"work_life_balance"`
}

// BenefitsPackage holds benefits and perks.
type BenefitsPackage struct {
	HealthInsurance         string   `json:"health_insurance"`
	RetirementPlans         string   `json:"retirement_plans"`
	PaidTimeOff             string   `json:"paid_time_off"`
	FlexibleWork            string   `json:"flexible_work"` // remote, hybrid, on-site
	ProfessionalDevelopment string   `json:"professional_development"`
	AdditionalBenefits      []string `json:"additional_benefits"`
}

// SalaryRanges maps lowercase role labels to display ranges, per experience tier.
type SalaryRanges struct {
	EntryLevel     map[string]string `json:"entry_level"`
	MidLevel       map[string]string `json:"mid_level"`
	SeniorLevel    map[string]string `json:"senior_level"`
	ExecutiveLevel map[string]string `json:"executive_level"`
}

// DepartmentInfo describes one department.
type DepartmentInfo struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	TypicalRoles        []string `json:"typical_roles"`
	GrowthOpportunities string   `json:"growth_opportunities"`
	TeamSize            string   `json:"team_size"`
}

// ForLevel returns the salary table for an experience tier. Unknown tiers use the mid table.
func (s SalaryRanges) ForLevel(level string) (table map[string]string) {
	switch strings.ToLower(level) {
	case "entry", "junior":
		table = s.EntryLevel
	case "senior":
		table = s.SeniorLevel
	case "executive":
		table = s.ExecutiveLevel
	default:
		table = s.MidLevel
	}
	return table
}

// Lookup finds the range for role in the tier's table. Keys match exactly, ignoring case.
func (s SalaryRanges) Lookup(level, role string) (salary string, found bool) {
	table := s.ForLevel(level)
	if salary, found = table[strings.ToLower(role)]; found {
		return salary, found
	}
	for key, value := range table {
		if strings.EqualFold(key, role) {
			salary = value
			found = true
			return salary, found
		}
	}
	return salary, found
}

// DepartmentFor returns the first department listing role among its typical roles.
func (o *Organization) DepartmentFor(role string) (dept DepartmentInfo, found bool) {
	for _, d := range o.Departments {
		for _, typical := range d.TypicalRoles {
			if strings.EqualFold(typical, role) {
				dept = d
				found = true
				return dept, found
			}
		}
	}
	return dept, found
}

// Validate checks the fields the context builder depends on.
func (o *Organization) Validate() (err error) {
	if strings.TrimSpace(o.CompanyInfo.Name) == "" {
		err = errors.New("company_info.name is required")
		return err
	}
	if strings.TrimSpace(o.CompanyInfo.Industry) == "" {
		err = errors.New("company_info.industry is required")
		return err
	}
	if strings.TrimSpace(o.CompanyInfo.Size) == "" {
		err = errors.New("company_info.size is required")
		return err
	}
	if strings.TrimSpace(o.CompanyInfo.Location) == "" {
		err = errors.New("company_info.location is required")
		return err
	}

	for i, d := range o.Departments {
		if d.Name == "" {
			err = errors.Errorf("department at index %d missing name", i)
			return err
		}
	}

	return err
}
