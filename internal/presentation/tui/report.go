// Package tui renders generated test suites for the terminal: a markdown
// report, passed through glamour when stdout is an interactive terminal.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/sxm/pkg/registry"
)

// SuiteMarkdown builds a markdown report for a generated suite.
func SuiteMarkdown(suite *registry.Suite) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s: %s tests\n\n", suite.Model, suite.Kind)
	fmt.Fprintf(&sb, "%d test case(s) generated.\n\n", len(suite.Cases))

	for _, c := range suite.Cases {
		fmt.Fprintf(&sb, "## %s\n\n", c.Name)
		fmt.Fprintf(&sb, "- Setup: `%s`\n", renderSequence(c.Setup))
		fmt.Fprintf(&sb, "- Input: `%s`\n", c.Input)
		if c.ExpectedOutput != nil {
			fmt.Fprintf(&sb, "- Expected output: `%s`\n", *c.ExpectedOutput)
		} else {
			sb.WriteString("- Expected output: none\n")
		}
		fmt.Fprintf(&sb, "- Verification: `%s`\n\n", renderSequence(c.Verification))
	}

	if len(suite.Uncovered) > 0 {
		sb.WriteString("## Uncovered obligations\n\n")
		for _, o := range suite.Uncovered {
			fmt.Fprintf(&sb, "- %s\n", o)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderSequence(symbols []string) string {
	if len(symbols) == 0 {
		return "(empty)"
	}
	return strings.Join(symbols, ", ")
}

// NewRenderer returns a function that renders markdown for the current
// terminal. On a TTY it uses glamour with auto-detected styling; piped
// output passes through unchanged.
func NewRenderer() func(string) (string, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) || termenv.ColorProfile() == termenv.Ascii {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
