package roles

import (
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantRole  string
		wantLevel Level
	}{
		{name: "senior", input: "senior python developer remote", wantRole: "senior", wantLevel: Senior},
		{name: "empty", input: "", wantRole: "developer", wantLevel: Mid},
		{name: "whitespace only", input: "   ", wantRole: "developer", wantLevel: Mid},
		{name: "no keyword", input: "developer for payments", wantRole: "developer", wantLevel: Mid},
		{name: "junior", input: "Junior Designer", wantRole: "Junior", wantLevel: Entry},
		{name: "new graduate", input: "analyst, new graduate welcome", wantRole: "analyst,", wantLevel: Entry},
		{name: "executive", input: "VP of Engineering", wantRole: "VP", wantLevel: Executive},
		{name: "entry beats senior", input: "junior to senior engineer", wantRole: "junior", wantLevel: Entry},
		{name: "mid beats senior", input: "experienced lead engineer", wantRole: "experienced", wantLevel: Mid},
		{name: "substring match", input: "engineer with leadership", wantRole: "engineer", wantLevel: Senior},
		{name: "case preserved", input: "Developer", wantRole: "Developer", wantLevel: Mid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, level := Extract(tt.input)
			if role != tt.wantRole {
				t.Errorf("Expected role %q, got %q", tt.wantRole, role)
			}
			if level != tt.wantLevel {
				t.Errorf("Expected level %q, got %q", tt.wantLevel, level)
			}
		})
	}
}

func TestLevels(t *testing.T) {
	levels := Levels()
	want := []Level{Entry, Mid, Senior, Executive}
	if len(levels) != len(want) {
		t.Fatalf("Expected %d levels, got %d", len(want), len(levels))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("Expected level %d to be %s, got %s", i, want[i], levels[i])
		}
	}
}

func TestSalaryKey(t *testing.T) {
	if got := Senior.SalaryKey(); got != "senior_level" {
		t.Errorf("Expected senior_level, got %s", got)
	}
}
