package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spotget/spot-downloader/internal/config"
	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/runner"
)

// GoodbyeMessage is printed once the interactive session ends
const GoodbyeMessage = "Exiting spotDL downloader. Goodbye!"

// screen identifies which view the interface currently shows
type screen int

const (
	screenMenu screen = iota
	screenForm
	screenRunning
	screenSummary
)

// Messages the run goroutine posts back into the update loop
type (
	// outputMsg carries one captured spotdl output line
	outputMsg string

	// doneMsg reports the finished run
	doneMsg runDone
)

// runDone bundles everything the runner goroutine hands back
type runDone struct {
	result *runner.Result
	err    error
}

// Model is the bubbletea model for the interactive console. It owns the
// whole session: menu choice, option form, the live run and its summary.
type Model struct {
	cfg    *config.FileConfig
	runner runner.CommandRunner
	styles Styles

	screen screen
	width  int
	height int
	ready  bool

	// Menu
	menuCursor int

	// Form
	op         model.Operation
	fields     []formField
	focusIndex int
	formErr    string

	// Active run
	viewport viewport.Model
	spinner  spinner.Model
	lines    []string
	args     []string
	opts     model.DownloadOptions
	cancel   context.CancelFunc
	lineCh   chan string
	doneCh   chan runDone
	stopping bool

	// Finished run
	summary []string
}

// New creates the interactive console model. The config provides the
// option defaults every form starts from; the runner executes spotdl.
func New(cfg *config.FileConfig, r runner.CommandRunner) Model {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)
	vp.SetContent("")

	return Model{
		cfg:      cfg,
		runner:   r,
		styles:   styles,
		spinner:  sp,
		viewport: vp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenForm:
			return m.updateForm(msg)
		case screenRunning:
			return m.updateRunning(msg)
		case screenSummary:
			return m.updateSummary(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Header line, divider, command line, status line, footer
		vpWidth := msg.Width - 6
		vpHeight := msg.Height - 9
		if vpWidth < 20 {
			vpWidth = 20
		}
		if vpHeight < 3 {
			vpHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		return m, nil

	case spinner.TickMsg:
		if m.screen == screenRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case outputMsg:
		m.lines = append(m.lines, string(msg))
		m.viewport.SetContent(strings.Join(m.lines, "\n"))
		m.viewport.GotoBottom()
		return m, m.waitForOutput()

	case doneMsg:
		return m.finishRun(runDone(msg))
	}

	// Blink and other component messages reach the focused text field
	if m.screen == screenForm && len(m.fields) > 0 {
		f := &m.fields[m.focusIndex]
		if f.kind == fieldText {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.renderHeader()

	var content string
	switch m.screen {
	case screenMenu:
		content = m.viewMenu()
	case screenForm:
		content = m.viewForm()
	case screenRunning:
		content = m.viewRunning()
	case screenSummary:
		content = m.viewSummary()
	}

	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		footer,
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" 🎵 spotDL Downloader ")

	parts := []string{title}
	if m.screen != screenMenu {
		parts = append(parts, " ", m.styles.Badge.Render(m.op.DisplayName()))
	}

	var status string
	if m.screen == screenRunning {
		status = m.styles.Warning.Render("● Running")
	} else {
		status = m.styles.Success.Render("● Idle")
	}
	parts = append(parts, "  ", status)

	headerLine := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderFooter() string {
	var help string
	switch m.screen {
	case screenMenu:
		help = "↑/↓: navigate • 1-5: choose • Enter: select • q: quit"
	case screenForm:
		help = "↑/↓: field • ←/→: change value • Enter: start • Esc: back"
	case screenRunning:
		help = "↑/↓: scroll output • Esc: stop run • Ctrl+C: quit"
	case screenSummary:
		help = "↑/↓: scroll output • Enter: menu • q: quit"
	}
	return lipgloss.NewStyle().
		MarginTop(1).
		Render(m.styles.Footer.Render(help))
}

// backToMenu clears the per-run state and returns to the operation menu
func (m Model) backToMenu() Model {
	m.screen = screenMenu
	m.fields = nil
	m.focusIndex = 0
	m.formErr = ""
	m.lines = nil
	m.args = nil
	m.summary = nil
	m.stopping = false
	m.viewport.SetContent("")
	return m
}
