package knowledge

import (
	"testing"
)

func TestSalaryLookup(t *testing.T) {
	ranges := SalaryRanges{
		EntryLevel:     map[string]string{"developer": "$60k"},
		MidLevel:       map[string]string{"developer": "$90k-$110k", "Designer": "$80k"},
		SeniorLevel:    map[string]string{"developer": "$140k"},
		ExecutiveLevel: map[string]string{"cto": "$250k"},
	}

	tests := []struct {
		name      string
		level     string
		role      string
		want      string
		wantFound bool
	}{
		{name: "exact match", level: "mid", role: "developer", want: "$90k-$110k", wantFound: true},
		{name: "role case ignored", level: "mid", role: "Developer", want: "$90k-$110k", wantFound: true},
		{name: "stored key case ignored", level: "mid", role: "designer", want: "$80k", wantFound: true},
		{name: "junior uses entry table", level: "junior", role: "developer", want: "$60k", wantFound: true},
		{name: "senior", level: "senior", role: "developer", want: "$140k", wantFound: true},
		{name: "executive", level: "executive", role: "CTO", want: "$250k", wantFound: true},
		{name: "unknown tier uses mid", level: "wizard", role: "developer", want: "$90k-$110k", wantFound: true},
		{name: "no substring match", level: "mid", role: "dev", wantFound: false},
		{name: "missing role", level: "senior", role: "designer", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ranges.Lookup(tt.level, tt.role)
			if found != tt.wantFound {
				t.Fatalf("Expected found=%v, got %v", tt.wantFound, found)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDepartmentFor(t *testing.T) {
	org := acmeOrganization()
	org.Departments = append(org.Departments, DepartmentInfo{Name: "Platform", TypicalRoles: []string{"developer"}})

	dept, found := org.DepartmentFor("developer")
	if !found {
		t.Fatal("Expected a department for developer")
	}
	if dept.Name != "Engineering" {
		t.Errorf("Expected first matching department Engineering, got %s", dept.Name)
	}

	_, found = org.DepartmentFor("accountant")
	if found {
		t.Error("Expected no department for accountant")
	}
}
