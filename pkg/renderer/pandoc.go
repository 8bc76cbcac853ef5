package renderer

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// RenderPDF converts a Markdown file to PDF with pandoc. templatePath is optional;
// when empty pandoc's default LaTeX template is used.
func RenderPDF(markdownPath, outputPath, templatePath string) (err error) {
	err = checkPandocExists()
	if err != nil {
		return err
	}

	files := []string{markdownPath}
	if templatePath != "" {
		files = append(files, templatePath)
	}
	err = validateFiles(files...)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	args := []string{
		"-f", "markdown",
		"-t", "pdf",
		"-o", outputPath,
	}
	if templatePath != "" {
		args = append(args, "--template", templatePath)

		// Let LaTeX find class and style files that sit next to the template.
		templateDir := filepath.Dir(templatePath)
		args = append(args, "--resource-path", templateDir)
	}
	args = append(args, markdownPath)

	//nolint:noctx // pandoc runs to completion; there is no request context to honor
	cmd := exec.Command("pandoc", args...)
	if templatePath != "" {
		cmd.Env = append(os.Environ(), "TEXINPUTS="+filepath.Dir(templatePath)+":"+os.Getenv("TEXINPUTS"))
	}

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists() (err error) {
	_, err = exec.LookPath("pandoc")
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate PDFs)")
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

// WriteMarkdown writes markdown content to a file.
func WriteMarkdown(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}

// CleanupMarkdown removes intermediate markdown files once the PDF exists.
func CleanupMarkdown(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to remove markdown file: %s", path)
			return err
		}
	}
	return err
}
