package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikogura/jd-agent/pkg/errs"
)

//nolint:gochecknoglobals // Terminal styles
var (
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// errorMessage returns the short user-facing message and a hint for err's kind.
func errorMessage(err error) (message, hint string) {
	switch errs.KindOf(err) {
	case errs.KindConfiguration:
		message = "Configuration problem: " + err.Error()
		hint = "Check your API key and settings (jd-agent init creates a starter config)."
	case errs.KindPersistence:
		message = "Could not read or write the knowledge base: " + err.Error()
		hint = "Check the knowledge_base_dir setting and file permissions."
	case errs.KindTransport:
		message = "The model provider request failed: " + err.Error()
		hint = "Try again in a moment."
	case errs.KindValidation:
		message = "Invalid data: " + err.Error()
		hint = "Model output varies between runs; try again, or run with --verbose to see the raw text."
	default:
		message = "Error: " + err.Error()
	}
	return message, hint
}

// printError prints one styled line per failure, plus the raw text in verbose mode.
func printError(err error) {
	message, hint := errorMessage(err)
	fmt.Fprintln(os.Stderr, errorStyle.Render(message))
	if hint != "" {
		fmt.Fprintln(os.Stderr, hintStyle.Render(hint))
	}

	if raw := errs.RawOf(err); raw != "" && getVerbose() {
		fmt.Fprintln(os.Stderr, hintStyle.Render("Raw response:"))
		fmt.Fprintln(os.Stderr, raw)
	}
}

func printSuccess(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...interface{}) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

func printHeading(text string) {
	fmt.Println(headingStyle.Render(text))
}

// renderTerminal formats Markdown for the terminal. Plain Markdown is returned when
// raw is set or glamour fails.
func renderTerminal(markdown string, raw bool) (out string) {
	out = markdown
	if raw {
		return out
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return out
	}

	rendered, err := r.Render(markdown)
	if err != nil {
		return out
	}

	out = rendered
	return out
}

// spinner animates a status line on w until stopped.
type spinner struct {
	w        io.Writer
	message  string
	interval time.Duration
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

//nolint:gochecknoglobals // Animation frames
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// startSpinner begins drawing message on w. Call stop before writing anything else to w.
func startSpinner(w io.Writer, message string, interval time.Duration) (s *spinner) {
	ctx, cancel := context.WithCancel(context.Background())
	s = &spinner{
		w:        w,
		message:  message,
		interval: interval,
		cancel:   cancel,
	}

	s.wg.Add(1)
	go s.run(ctx)

	return s
}

func (s *spinner) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frame := 0
	s.draw(frame)
	for {
		select {
		case <-ctx.Done():
			// Blank the status line so the next output starts clean.
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", lipgloss.Width(s.message)+2))
			return
		case <-ticker.C:
			frame++
			s.draw(frame)
		}
	}
}

func (s *spinner) draw(frame int) {
	glyph := infoStyle.Render(spinnerFrames[frame%len(spinnerFrames)])
	fmt.Fprintf(s.w, "\r%s %s", glyph, s.message)
}

// stop ends the animation and waits for the line to be cleared. Safe to call twice.
func (s *spinner) stop() {
	s.once.Do(func() {
		s.cancel()
		s.wg.Wait()
	})
}
