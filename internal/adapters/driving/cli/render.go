package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trident-labs/trident-cli/internal/core/domain"
	"github.com/trident-labs/trident-cli/internal/core/services"
)

// Styles for the auto color mode. Match lines keep their plain text; only
// the block heading (path or repo) is decorated.
var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	lineNoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// writeReport renders sorted blocks to w according to the color mode.
// "never" produces the plain report, "auto" decorates headings when the
// output is a terminal.
func writeReport(w io.Writer, blocks []domain.OutputBlock, color string) error {
	if color == "auto" && stdoutIsTerminal() {
		return writeStyled(w, blocks)
	}
	return domain.WriteBlocks(w, blocks)
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var styledLineRe = regexp.MustCompile(`^(  )(\d+)(:)(.*)$`)

// writeStyled mirrors WriteBlocks' layout, including the blank line rule,
// while decorating headings and line numbers.
func writeStyled(w io.Writer, blocks []domain.OutputBlock) error {
	for i, block := range blocks {
		if i > 0 && (blocks[i-1].Multi() || block.Multi()) {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for j, line := range block.Lines {
			styled := line
			if j == 0 && !strings.HasPrefix(line, "  ") {
				styled = headingStyle.Render(line)
			} else if m := styledLineRe.FindStringSubmatch(line); m != nil {
				styled = m[1] + lineNoStyle.Render(m[2]) + m[3] + m[4]
			}
			if _, err := fmt.Fprintln(w, styled); err != nil {
				return err
			}
		}
	}
	return nil
}

// rg-compatible escape sequences for --color=ansi.
const (
	ansiPath   = "\x1b[0m\x1b[35m"
	ansiLineNo = "\x1b[0m\x1b[32m"
	ansiMatch  = "\x1b[0m\x1b[1m\x1b[31m"
	ansiReset  = "\x1b[0m"
)

// runANSI is the --color=ansi path: content matches only, rendered in
// ripgrep's escape vocabulary so downstream tools that parse rg output
// keep working.
func runANSI(ctx context.Context, cmd *cobra.Command, svc *services.Search, req domain.SearchRequest) error {
	files, err := svc.ContentMatches(ctx, req)
	if err != nil {
		return err
	}

	expr, insensitive := services.ResolvePattern(req)
	if insensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	printedAny := false
	for _, fm := range files {
		var lines []string
		binary := false
		for _, m := range fm.Matches {
			switch m := m.(type) {
			case domain.LineMatch:
				lines = append(lines, fmt.Sprintf("%s%s%s:%s%d%s:%s",
					ansiPath, fm.Path, ansiReset,
					ansiLineNo, m.Number, ansiReset,
					highlight(re, m.Text)))
			case domain.BinaryMatch:
				binary = true
			}
		}
		if binary {
			fmt.Fprintf(errOut, "WARNING: stopped searching binary file %s%s%s after match\n",
				ansiPath, fm.Path, ansiReset)
		}
		if len(lines) == 0 {
			continue
		}
		if printedAny {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
		}
		printedAny = true
	}
	return nil
}

// highlight wraps every match span in the bold-red escape pair rg uses.
func highlight(re *regexp.Regexp, text string) string {
	spans := re.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(text[last:span[0]])
		b.WriteString(ansiMatch)
		b.WriteString(text[span[0]:span[1]])
		b.WriteString(ansiReset)
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
