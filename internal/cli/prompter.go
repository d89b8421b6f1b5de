package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/mathspeak/internal/model"
	"github.com/schollz/progressbar/v3"
)

// Commands recognized at the answer prompt.
const (
	CommandQuit = "quit"
	CommandSkip = "skip"
)

// SubmitFunc grades and records one answer.
type SubmitFunc func(ctx context.Context, item model.PracticeItem, answer string) (model.PracticeAttempt, error)

// SessionSummary is the outcome of a line-mode practice session.
type SessionSummary struct {
	Attempts []model.PracticeAttempt
	Skipped  int
	Quit     bool
}

// Correct returns the number of correct answers.
func (s SessionSummary) Correct() int {
	n := 0
	for _, a := range s.Attempts {
		if a.Correct {
			n++
		}
	}
	return n
}

// Prompter runs a line-oriented practice session.
type Prompter struct {
	writer      io.Writer
	reader      *NonBlockingReader
	progressBar *progressbar.ProgressBar
}

// NewPrompter creates a prompter reading answers from reader.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// Run asks each item in turn. It stops early on "quit", end of input or
// context cancellation; answers given so far are kept in the summary.
func (p *Prompter) Run(ctx context.Context, items []model.PracticeItem, submit SubmitFunc) (SessionSummary, error) {
	var summary SessionSummary

	if len(items) > 1 {
		p.initProgressBar(len(items))
	}

	p.printf("%s\n", SubtleStyle.Render(fmt.Sprintf("Type the expression, %q to move on, or %q to stop.", CommandSkip, CommandQuit)))

	for i, item := range items {
		p.printf("\n%s %s\n", BoldStyle.Render(fmt.Sprintf("Q%d.", i+1)), item.Phrase)
		p.printf("%s", FormatPrompt("Your answer"))

		answer, err := p.reader.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrInputCancelled) {
				summary.Quit = true
				return summary, nil
			}
			return summary, fmt.Errorf("failed to read answer: %w", err)
		}

		switch strings.ToLower(answer) {
		case CommandQuit:
			summary.Quit = true
			return summary, nil
		case CommandSkip:
			summary.Skipped++
			p.printf("%s\n", FormatInfo("Answer: "+item.Answer))
			p.updateProgress()
			continue
		}

		attempt, err := submit(ctx, item, answer)
		if err != nil {
			return summary, err
		}
		summary.Attempts = append(summary.Attempts, attempt)

		if attempt.Correct {
			p.printf("%s\n", FormatSuccess("Correct!"))
		} else {
			p.printf("%s\n", FormatError("Not quite. Expected: "+attempt.Expected))
		}
		p.updateProgress()
	}

	return summary, nil
}

// RenderSummary renders a one-box recap of a session.
func RenderSummary(summary SessionSummary) string {
	answered := len(summary.Attempts)
	lines := []string{
		field("Answered", fmt.Sprintf("%d", answered)),
		field("Correct", SuccessStyle.Render(fmt.Sprintf("%d", summary.Correct()))),
	}
	if summary.Skipped > 0 {
		lines = append(lines, field("Skipped", fmt.Sprintf("%d", summary.Skipped)))
	}
	for _, a := range summary.Attempts {
		if !a.Correct {
			lines = append(lines, FormatWarning(fmt.Sprintf("%s: expected %s, you wrote %s", a.Phrase, a.Expected, a.Answer)))
		}
	}
	return RenderBox(CheckIcon+" Session complete", strings.Join(lines, "\n"))
}

func (p *Prompter) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.writer, format, args...); err != nil {
		slog.Warn("Failed to write prompt", "error", err)
	}
}

func (p *Prompter) initProgressBar(total int) {
	p.progressBar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][bold]Practice[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func (p *Prompter) updateProgress() {
	if p.progressBar == nil {
		return
	}
	if err := p.progressBar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// NewCheckProgress returns a progress bar for a run over total items.
func NewCheckProgress(writer io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionClearOnFinish(),
	)
}
