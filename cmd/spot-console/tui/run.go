package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
	"github.com/spotget/spot-downloader/internal/runner"
)

// lineBufferSize decouples the runner goroutine from the UI event loop
const lineBufferSize = 64

// launch starts the spotdl process and switches to the running screen.
// A goroutine feeds captured lines through lineCh and reports the final
// result through doneCh once the process is gone.
func (m Model) launch(queries []string, opts model.DownloadOptions) (tea.Model, tea.Cmd) {
	args := model.BuildCommandArgs(m.op, queries, opts)

	ctx, cancel := context.WithCancel(context.Background())
	lineCh := make(chan string, lineBufferSize)
	doneCh := make(chan runDone, 1)

	go func(r runner.CommandRunner) {
		result, err := r.Run(ctx, model.SpotdlCommand, args, func(line string) {
			lineCh <- line
		})
		close(lineCh)
		doneCh <- runDone{result: result, err: err}
	}(m.runner)

	m.screen = screenRunning
	m.args = args
	m.opts = opts
	m.lines = nil
	m.cancel = cancel
	m.lineCh = lineCh
	m.doneCh = doneCh
	m.stopping = false
	m.summary = nil
	m.viewport.SetContent("")

	return m, tea.Batch(m.spinner.Tick, m.waitForOutput())
}

// waitForOutput blocks on the next captured line, yielding the run result
// once the line channel is closed.
func (m Model) waitForOutput() tea.Cmd {
	lineCh, doneCh := m.lineCh, m.doneCh
	return func() tea.Msg {
		if line, ok := <-lineCh; ok {
			return outputMsg(line)
		}
		return doneMsg(<-doneCh)
	}
}

func (m Model) updateRunning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		if m.cancel != nil && !m.stopping {
			m.stopping = true
			m.cancel()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// finishRun moves to the summary screen once the process is gone
func (m Model) finishRun(d runDone) (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.lineCh = nil
	m.doneCh = nil
	m.summary = m.summaryLines(d)
	m.screen = screenSummary
	return m, nil
}

// summaryLines renders the run outcome: completion banner, failure detail
// and the skipped/failed songs report for download and sync runs.
func (m Model) summaryLines(d runDone) []string {
	if d.err != nil {
		if errors.Is(d.err, runner.ErrBinaryNotFound) {
			return []string{
				fmt.Sprintf(platform.CommandNotFoundFormat, model.SpotdlCommand),
				platform.PathGuidance,
			}
		}
		if m.stopping || errors.Is(d.err, context.Canceled) {
			return []string{fmt.Sprintf("%s Stopped.", m.op.DisplayName())}
		}
		return []string{"Error: " + d.err.Error()}
	}

	lines := []string{platform.RunBanner(d.result.ExitCode)}
	if d.result.ExitCode != 0 {
		lines = append(lines,
			platform.ExecutedCommandPrefix+model.SpotdlCommand+" "+platform.QuoteCommand(m.args),
			platform.ReviewOutputHint,
		)
	}

	var failures []string
	if m.op.WantsFailureSummary() {
		failures = platform.ClassifyFailures(d.result.Lines)
	}
	if summary := platform.SummarizeRun(m.op, d.result.ExitCode, failures); len(summary) > 0 {
		lines = append(lines, "")
		lines = append(lines, summary...)
	}

	if m.op == model.OperationSync && d.result.ExitCode == 0 && m.opts.SaveFile != "" {
		lines = append(lines, "", fmt.Sprintf(platform.SyncNoteFormat, m.opts.SaveFile))
	}

	return lines
}

func (m Model) viewRunning() string {
	cmdLine := m.styles.Muted.Render(model.SpotdlCommand + " " + platform.QuoteCommand(m.args))

	status := m.styles.Spinner.Render(m.spinner.View()) + " " +
		m.styles.Body.Render(fmt.Sprintf("%s in progress...", m.op.DisplayName()))
	if m.stopping {
		status = m.styles.Warning.Render("Stopping...")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		cmdLine,
		m.styles.Output.Render(m.viewport.View()),
		status,
	)
}

func (m Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		return m.backToMenu(), nil
	case "q":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) viewSummary() string {
	var sb strings.Builder
	for _, line := range m.summary {
		sb.WriteString(m.renderSummaryLine(line))
		sb.WriteString("\n")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Output.Render(m.viewport.View()),
		"",
		sb.String(),
	)
}

func (m Model) renderSummaryLine(line string) string {
	switch {
	case line == platform.RunCompletedBanner,
		line == platform.AllProcessedDownloads,
		line == platform.AllProcessedSync:
		return m.styles.Success.Render(line)
	case strings.HasPrefix(line, "--- Command Failed"),
		strings.HasPrefix(line, "Error:"):
		return m.styles.Error.Render(line)
	case strings.HasPrefix(line, platform.SummaryEntryPrefix):
		return m.styles.Warning.Render(line)
	case strings.HasPrefix(line, "Note:"):
		return m.styles.Info.Render(line)
	default:
		return m.styles.Body.Render(line)
	}
}
