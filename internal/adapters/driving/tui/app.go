package tui

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/trident-labs/trident-cli/internal/adapters/driving/tui/keymap"
	"github.com/trident-labs/trident-cli/internal/adapters/driving/tui/styles"
	"github.com/trident-labs/trident-cli/internal/core/domain"
)

// resultsMsg carries a finished search's sorted blocks.
type resultsMsg struct {
	blocks []domain.OutputBlock
}

// searchFailedMsg carries a search error.
type searchFailedMsg struct {
	err error
}

// App is the TUI application. It implements tea.Model.
type App struct {
	ports *Ports
	ctx   context.Context

	// base is the request template built from the command line. Each
	// search copies it and swaps in the current pattern.
	base domain.SearchRequest

	styles *styles.Styles
	keys   *keymap.KeyMap

	input    textinput.Model
	viewport viewport.Model

	blockCount int
	searching  bool
	err        error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports and request
// template.
func NewApp(ports *Ports, base domain.SearchRequest) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "pattern"
	input.Prompt = "> "
	input.SetValue(base.Pattern)
	input.Focus()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		base:   base,
		styles: styles.DefaultStyles(),
		keys:   keymap.DefaultKeyMap(),
		input:  input,
	}, nil
}

// WithContext sets the context used for searches.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if a.base.Pattern != "" {
		cmds = append(cmds, a.runSearch(a.base.Pattern))
	}
	return tea.Batch(cmds...)
}

// runSearch returns a command executing one search for pattern.
func (a *App) runSearch(pattern string) tea.Cmd {
	req := a.base
	req.Pattern = pattern
	return func() tea.Msg {
		blocks, err := a.ports.Search.Run(a.ctx, req)
		if err != nil {
			return searchFailedMsg{err: err}
		}
		return resultsMsg{blocks: blocks}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		a.ready = true
		return a, nil

	case resultsMsg:
		a.searching = false
		a.err = nil
		a.blockCount = len(msg.blocks)
		a.viewport.SetContent(a.renderBlocks(msg.blocks))
		a.viewport.GotoTop()
		return a, nil

	case searchFailedMsg:
		a.searching = false
		a.err = msg.err
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if a.input.Focused() {
		switch {
		case key.Matches(msg, a.keys.Search):
			pattern := strings.TrimSpace(a.input.Value())
			if pattern == "" {
				return a, nil
			}
			a.searching = true
			a.input.Blur()
			return a, a.runSearch(pattern)
		case key.Matches(msg, a.keys.Blur):
			a.input.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Focus):
		a.input.Focus()
		return a, textinput.Blink
	case key.Matches(msg, a.keys.Top):
		a.viewport.GotoTop()
		return a, nil
	case key.Matches(msg, a.keys.Bottom):
		a.viewport.GotoBottom()
		return a, nil
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// layout resizes the viewport to the space left under the header and above
// the status line.
func (a *App) layout() {
	headerHeight := lipgloss.Height(a.headerView())
	statusHeight := 1
	a.viewport.Width = a.width
	a.viewport.Height = max(a.height-headerHeight-statusHeight, 0)
}

var contentLineRe = regexp.MustCompile(`^(  )(\d+)(:.*)$`)

// renderBlocks styles the report for the viewport: headings in the accent
// colour, line numbers dimmed green, a blank line between multi-line
// neighbours as in the plain report.
func (a *App) renderBlocks(blocks []domain.OutputBlock) string {
	var b strings.Builder
	for i, block := range blocks {
		if i > 0 && (blocks[i-1].Multi() || block.Multi()) {
			b.WriteByte('\n')
		}
		for j, line := range block.Lines {
			switch {
			case j == 0 && !strings.HasPrefix(line, "  "):
				b.WriteString(a.styles.Heading.Render(line))
			default:
				if m := contentLineRe.FindStringSubmatch(line); m != nil {
					b.WriteString(m[1])
					b.WriteString(a.styles.LineNo.Render(m[2]))
					b.WriteString(m[3])
				} else {
					b.WriteString(line)
				}
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (a *App) headerView() string {
	title := a.styles.Title.Render("trident")
	input := a.styles.Input.Width(max(a.width-2, 20)).Render(a.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, title, input)
}

func (a *App) statusView() string {
	switch {
	case a.err != nil:
		return a.styles.Error.Render("error: " + a.err.Error())
	case a.searching:
		return a.styles.Status.Render("searching…")
	default:
		help := make([]string, 0, len(a.keys.ShortHelp()))
		for _, binding := range a.keys.ShortHelp() {
			help = append(help, binding.Help().Key+" "+binding.Help().Desc)
		}
		return a.styles.Status.Render(
			fmt.Sprintf("%d blocks · %s", a.blockCount, strings.Join(help, " · ")))
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "loading…"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.headerView(),
		a.viewport.View(),
		a.statusView(),
	)
}

// Run starts the TUI program in the alternate screen and blocks until it
// exits.
func Run(ctx context.Context, ports *Ports, base domain.SearchRequest) error {
	app, err := NewApp(ports, base)
	if err != nil {
		return err
	}
	app = app.WithContext(ctx)

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}
