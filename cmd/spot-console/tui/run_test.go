package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/spotget/spot-downloader/internal/config"
	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
	"github.com/spotget/spot-downloader/internal/runner"
)

// stubRunner feeds canned output instead of starting a process
type stubRunner struct {
	lines    []string
	exitCode int
	err      error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(ctx context.Context, name string, args []string, onLine func(string)) (*runner.Result, error) {
	s.gotName = name
	s.gotArgs = args
	for _, line := range s.lines {
		if onLine != nil {
			onLine(line)
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return &runner.Result{Lines: s.lines, ExitCode: s.exitCode}, nil
}

func TestWaitForOutputDeliversLinesThenDone(t *testing.T) {
	lineCh := make(chan string, 2)
	doneCh := make(chan runDone, 1)
	lineCh <- "Processing query"
	close(lineCh)
	doneCh <- runDone{result: &runner.Result{ExitCode: 3}}

	m := Model{lineCh: lineCh, doneCh: doneCh}

	msg := m.waitForOutput()()
	line, ok := msg.(outputMsg)
	if !ok || string(line) != "Processing query" {
		t.Fatalf("expected output line, got %#v", msg)
	}

	msg = m.waitForOutput()()
	done, ok := msg.(doneMsg)
	if !ok || done.result.ExitCode != 3 {
		t.Fatalf("expected done with exit code 3, got %#v", msg)
	}
}

func TestLaunchRunsToSummary(t *testing.T) {
	stub := &stubRunner{
		lines: []string{
			"Processing query",
			"Failed to download: Artist - Lost Song",
		},
		exitCode: 1,
	}
	m := New(config.DefaultFileConfig(), stub)
	m.op = model.OperationDownload

	updated, _ := m.launch([]string{"https://open.spotify.com/track/a"}, model.DefaultDownloadOptions())
	current := updated.(Model)
	if current.screen != screenRunning {
		t.Fatalf("expected running screen, got %d", current.screen)
	}

	// Pump the subscription until the finished run lands on the summary
	for current.screen == screenRunning {
		next, _ := current.Update(current.waitForOutput()())
		current = next.(Model)
	}

	if current.screen != screenSummary {
		t.Fatalf("expected summary screen, got %d", current.screen)
	}
	if stub.gotName != model.SpotdlCommand {
		t.Fatalf("expected %s invocation, got %s", model.SpotdlCommand, stub.gotName)
	}
	if len(stub.gotArgs) == 0 || stub.gotArgs[0] != "download" {
		t.Fatalf("unexpected args %v", stub.gotArgs)
	}
	if len(current.lines) != 2 {
		t.Fatalf("expected 2 captured lines, got %d", len(current.lines))
	}

	joined := strings.Join(current.summary, "\n")
	if !strings.Contains(joined, "Exit Code 1") {
		t.Fatalf("expected failure banner, got %q", joined)
	}
	if !strings.Contains(joined, "Artist - Lost Song") {
		t.Fatalf("expected classified failure, got %q", joined)
	}
}

func TestSummaryLinesSuccess(t *testing.T) {
	m := Model{op: model.OperationDownload, styles: NewStyles(LightTheme())}
	d := runDone{result: &runner.Result{ExitCode: 0}}

	lines := m.summaryLines(d)
	if lines[0] != platform.RunCompletedBanner {
		t.Fatalf("expected completion banner, got %q", lines[0])
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, platform.AllProcessedDownloads) {
		t.Fatalf("expected all-processed message, got %q", joined)
	}
}

func TestSummaryLinesFailureDetail(t *testing.T) {
	m := Model{
		op:     model.OperationURL,
		args:   []string{"url", "https://open.spotify.com/track/a"},
		styles: NewStyles(LightTheme()),
	}
	d := runDone{result: &runner.Result{ExitCode: 2}}

	joined := strings.Join(m.summaryLines(d), "\n")
	if !strings.Contains(joined, platform.ExecutedCommandPrefix) {
		t.Fatalf("expected executed command line, got %q", joined)
	}
	if !strings.Contains(joined, platform.ReviewOutputHint) {
		t.Fatalf("expected review hint, got %q", joined)
	}
	// URL runs are never summarized song by song
	if strings.Contains(joined, platform.SummaryHeaderDownloads) {
		t.Fatalf("unexpected failure summary for url run: %q", joined)
	}
}

func TestSummaryLinesMissingBinary(t *testing.T) {
	m := Model{op: model.OperationDownload, styles: NewStyles(LightTheme())}
	d := runDone{err: fmt.Errorf("%w: %s", runner.ErrBinaryNotFound, model.SpotdlCommand)}

	lines := m.summaryLines(d)
	want := fmt.Sprintf(platform.CommandNotFoundFormat, model.SpotdlCommand)
	if lines[0] != want {
		t.Fatalf("expected %q, got %q", want, lines[0])
	}
	if lines[1] != platform.PathGuidance {
		t.Fatalf("expected path guidance, got %q", lines[1])
	}
}

func TestSummaryLinesStopped(t *testing.T) {
	m := Model{op: model.OperationDownload, stopping: true, styles: NewStyles(LightTheme())}
	d := runDone{result: &runner.Result{ExitCode: -1}, err: context.Canceled}

	lines := m.summaryLines(d)
	if len(lines) != 1 || !strings.Contains(lines[0], "Stopped") {
		t.Fatalf("expected stopped message, got %v", lines)
	}
}

func TestSummaryLinesSyncNote(t *testing.T) {
	m := Model{
		op:     model.OperationSync,
		opts:   model.DownloadOptions{SaveFile: "mix.spotdl"},
		styles: NewStyles(LightTheme()),
	}
	d := runDone{result: &runner.Result{ExitCode: 0}}

	joined := strings.Join(m.summaryLines(d), "\n")
	want := fmt.Sprintf(platform.SyncNoteFormat, "mix.spotdl")
	if !strings.Contains(joined, want) {
		t.Fatalf("expected sync note, got %q", joined)
	}

	// No note after a failed sync
	d = runDone{result: &runner.Result{ExitCode: 1}}
	joined = strings.Join(m.summaryLines(d), "\n")
	if strings.Contains(joined, "Note:") {
		t.Fatalf("unexpected sync note after failure: %q", joined)
	}
}
