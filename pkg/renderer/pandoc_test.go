package renderer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteMarkdown(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")
	path := filepath.Join(outDir, Filename("Platform Engineer"))
	content := "# Platform Engineer\n\n**Department:** Infrastructure  \n"

	err := WriteMarkdown(content, path)
	if err != nil {
		t.Fatalf("Failed to write markdown: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	if string(data) != content {
		t.Errorf("Expected content %q, got %q", content, string(data))
	}
}

func TestCleanupMarkdown(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "job_description_sre.md")

	err := os.WriteFile(path, []byte("# SRE"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err = CleanupMarkdown(path)
	if err != nil {
		t.Fatalf("Failed to cleanup: %v", err)
	}

	_, err = os.Stat(path)
	if !os.IsNotExist(err) {
		t.Error("Markdown file was not deleted")
	}

	err = CleanupMarkdown(path)
	if err == nil {
		t.Error("Expected error cleaning up a file that is already gone")
	}
}

func TestValidateFiles(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "template.latex")
	err := os.WriteFile(existing, []byte("$body$"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{name: "existing", paths: []string{existing}},
		{name: "missing", paths: []string{"/nonexistent/template.latex"}, wantErr: true},
		{name: "one missing", paths: []string{existing, "/nonexistent/jd.md"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFiles(tt.paths...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRenderPDFMissingMarkdown(t *testing.T) {
	if checkPandocExists() != nil {
		t.Skip("Pandoc not installed, skipping test")
	}

	out := filepath.Join(t.TempDir(), "jd.pdf")
	err := RenderPDF("/nonexistent/jd.md", out, "")
	if err == nil {
		t.Error("Expected error for missing markdown input")
	}
}
