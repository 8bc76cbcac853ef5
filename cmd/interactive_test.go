package cmd

import (
	"bufio"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nikogura/jd-agent/pkg/config"
	"github.com/nikogura/jd-agent/pkg/knowledge"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOrganization(t *testing.T) {
	ids := []string{"acme", "globex"}

	tests := []struct {
		name      string
		input     string
		wantOrg   string
		wantKnown bool
	}{
		{name: "known", input: "acme", wantOrg: "acme", wantKnown: true},
		{name: "typo", input: "acmee", wantOrg: "", wantKnown: false},
		{name: "case differs", input: "ACME", wantOrg: "", wantKnown: false},
		{name: "blank", input: "", wantOrg: "", wantKnown: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, known := resolveOrganization(ids, tt.input)
			if org != tt.wantOrg {
				t.Errorf("Expected org %q, got %q", tt.wantOrg, org)
			}
			assert.Equal(t, tt.wantKnown, known)
		})
	}
}

func TestChooseOrganization(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "kb")
	store, err := knowledge.NewStore(dir)
	require.NoError(t, err)

	_, err = store.Put("acme", knowledge.Organization{
		CompanyInfo: knowledge.CompanyInfo{Name: "Acme", Industry: "Software", Size: "10", Location: "Remote"},
	})
	require.NoError(t, err)

	cfg := config.Config{KnowledgeBaseDir: dir}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "known id", input: "acme\n", want: "acme"},
		{name: "unknown id", input: "nope\n", want: ""},
		{name: "blank", input: "\n", want: ""},
		{name: "end of input", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := bufio.NewScanner(strings.NewReader(tt.input))
			org, err := chooseOrganization(cfg, scanner)
			require.NoError(t, err)
			if org != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, org)
			}
		})
	}
}

func TestGenerationFlagsRegistered(t *testing.T) {
	for _, c := range []*cobra.Command{generateCmd, interactiveCmd} {
		for _, name := range []string{"raw", "style", "model", "temperature", "output-dir", "org"} {
			if c.Flags().Lookup(name) == nil {
				t.Errorf("Expected %s to have --%s", c.Name(), name)
			}
		}
	}
}
