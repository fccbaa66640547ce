package download

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/runner"
)

// stubRunner replays canned output instead of invoking spotdl.
type stubRunner struct {
	lines    []string
	exitCode int
	err      error
	block    chan struct{} // when set, Run waits for close or cancellation
	gotName  string
	gotArgs  []string
}

func (r *stubRunner) Run(ctx context.Context, name string, args []string, onLine func(string)) (*runner.Result, error) {
	r.gotName = name
	r.gotArgs = args

	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return &runner.Result{Lines: []string{}, ExitCode: -1}, ctx.Err()
		}
	}

	for _, line := range r.lines {
		if onLine != nil {
			onLine(line)
		}
	}

	if r.err != nil {
		return nil, r.err
	}
	return &runner.Result{Lines: r.lines, ExitCode: r.exitCode}, nil
}

func watchStatus(service *Service) <-chan model.JobStatus {
	updates := make(chan model.JobStatus, 32)
	service.SetUpdateCallback(func(job *model.Job) {
		updates <- job.Status
	})
	return updates
}

func waitForStatus(t *testing.T, updates <-chan model.JobStatus, want model.JobStatus) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case status := <-updates:
			if status == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for status %s", want)
		}
	}
}

func TestNewService(t *testing.T) {
	service := NewService(&stubRunner{})

	if len(service.jobs) != 0 {
		t.Errorf("Expected empty jobs map, got %d items", len(service.jobs))
	}

	if _, active := service.ActiveJob(); active {
		t.Error("Expected no active job on a fresh service")
	}
}

func TestStartJob_NoQueries(t *testing.T) {
	service := NewService(&stubRunner{})

	_, err := service.StartJob(model.OperationDownload, nil, model.DefaultDownloadOptions())
	if err == nil {
		t.Error("Expected error for empty queries, got nil")
	}
}

func TestStartJob_RunsToCompletion(t *testing.T) {
	stub := &stubRunner{
		lines:    []string{"Processing query", "Downloaded \"Song\": done"},
		exitCode: 0,
	}
	service := NewService(stub)
	updates := watchStatus(service)

	job, err := service.StartJob(model.OperationDownload, []string{"https://open.spotify.com/track/abc"}, model.DefaultDownloadOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	waitForStatus(t, updates, model.JobStatusCompleted)

	finished, exists := service.GetJob(job.ID)
	if !exists {
		t.Fatal("Expected job to exist")
	}

	if finished.ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", finished.ExitCode)
	}

	if finished.LineCount != 2 {
		t.Errorf("Expected 2 captured lines, got %d", finished.LineCount)
	}

	if len(finished.Failures) != 0 {
		t.Errorf("Expected no failures, got %v", finished.Failures)
	}

	if stub.gotName != model.SpotdlCommand {
		t.Errorf("Expected command %q, got %q", model.SpotdlCommand, stub.gotName)
	}

	if len(stub.gotArgs) == 0 || stub.gotArgs[0] != "download" {
		t.Errorf("Expected download operation args, got %v", stub.gotArgs)
	}
}

func TestStartJob_ClassifiesFailures(t *testing.T) {
	stub := &stubRunner{
		lines: []string{
			"Processing query",
			"Failed to download: Broken Song",
			"AudioProviderError: no stream",
			"https://music.youtube.com/watch?v=abc123",
		},
		exitCode: 1,
	}
	service := NewService(stub)
	updates := watchStatus(service)

	job, err := service.StartJob(model.OperationDownload, []string{"https://open.spotify.com/playlist/x"}, model.DefaultDownloadOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	waitForStatus(t, updates, model.JobStatusError)

	finished, _ := service.GetJob(job.ID)

	if finished.ExitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", finished.ExitCode)
	}

	expected := []string{
		"Broken Song",
		"Download failed for YouTube URL: https://music.youtube.com/watch?v=abc123 (AudioProviderError)",
	}

	if len(finished.Failures) != len(expected) {
		t.Fatalf("Expected %d failures, got %v", len(expected), finished.Failures)
	}

	for i, want := range expected {
		if finished.Failures[i] != want {
			t.Errorf("Failure %d: expected %q, got %q", i, want, finished.Failures[i])
		}
	}
}

func TestStartJob_SaveSkipsClassification(t *testing.T) {
	stub := &stubRunner{
		lines:    []string{"Failed to download: Should Not Be Recorded"},
		exitCode: 0,
	}
	service := NewService(stub)
	updates := watchStatus(service)

	job, err := service.StartJob(model.OperationSave, []string{"https://open.spotify.com/playlist/x"}, model.DownloadOptions{SaveFile: "x.spotdl"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	waitForStatus(t, updates, model.JobStatusCompleted)

	finished, _ := service.GetJob(job.ID)
	if len(finished.Failures) != 0 {
		t.Errorf("Save runs must not be classified, got %v", finished.Failures)
	}
}

func TestStartJob_SecondJobRejected(t *testing.T) {
	stub := &stubRunner{block: make(chan struct{})}
	service := NewService(stub)
	updates := watchStatus(service)

	_, err := service.StartJob(model.OperationDownload, []string{"one"}, model.DefaultDownloadOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	waitForStatus(t, updates, model.JobStatusRunning)

	_, err = service.StartJob(model.OperationDownload, []string{"two"}, model.DefaultDownloadOptions())
	if !errors.Is(err, ErrJobActive) {
		t.Errorf("Expected ErrJobActive, got %v", err)
	}

	// Finishing the first job frees the slot
	close(stub.block)
	waitForStatus(t, updates, model.JobStatusCompleted)

	if _, err := service.StartJob(model.OperationDownload, []string{"three"}, model.DefaultDownloadOptions()); err != nil {
		t.Errorf("Expected slot to be free after completion, got %v", err)
	}
}

func TestStopJob(t *testing.T) {
	stub := &stubRunner{block: make(chan struct{})}
	service := NewService(stub)
	updates := watchStatus(service)

	job, err := service.StartJob(model.OperationDownload, []string{"one"}, model.DefaultDownloadOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	waitForStatus(t, updates, model.JobStatusRunning)

	if err := service.StopJob(job.ID); err != nil {
		t.Fatalf("Expected no error from StopJob, got %v", err)
	}

	waitForStatus(t, updates, model.JobStatusStopped)

	finished, _ := service.GetJob(job.ID)
	if finished.Status != model.JobStatusStopped {
		t.Errorf("Expected status Stopped, got %s", finished.Status)
	}
}

func TestStopJob_NotFound(t *testing.T) {
	service := NewService(&stubRunner{})

	err := service.StopJob("missing-id")
	if err == nil {
		t.Error("Expected error for unknown job, got nil")
	}
}

func TestStopJob_NotActive(t *testing.T) {
	stub := &stubRunner{exitCode: 0}
	service := NewService(stub)
	updates := watchStatus(service)

	job, err := service.StartJob(model.OperationURL, []string{"one"}, model.DownloadOptions{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	waitForStatus(t, updates, model.JobStatusCompleted)

	if err := service.StopJob(job.ID); err == nil {
		t.Error("Expected error for finished job, got nil")
	}
}

func TestStartJob_LineCallback(t *testing.T) {
	stub := &stubRunner{lines: []string{"alpha", "beta"}, exitCode: 0}
	service := NewService(stub)

	lines := make(chan string, 8)
	service.SetLineCallback(func(jobID, line string) {
		lines <- line
	})
	updates := watchStatus(service)

	if _, err := service.StartJob(model.OperationDownload, []string{"one"}, model.DefaultDownloadOptions()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	waitForStatus(t, updates, model.JobStatusCompleted)

	close(lines)
	var streamed []string
	for line := range lines {
		streamed = append(streamed, line)
	}

	if len(streamed) != 2 || streamed[0] != "alpha" || streamed[1] != "beta" {
		t.Errorf("Expected streamed lines [alpha beta], got %v", streamed)
	}
}

func TestGetAllJobs(t *testing.T) {
	stub := &stubRunner{exitCode: 0}
	service := NewService(stub)
	updates := watchStatus(service)

	job1, err := service.StartJob(model.OperationURL, []string{"one"}, model.DownloadOptions{})
	if err != nil {
		t.Fatalf("Failed to start first job: %v", err)
	}
	waitForStatus(t, updates, model.JobStatusCompleted)

	job2, err := service.StartJob(model.OperationURL, []string{"two"}, model.DownloadOptions{})
	if err != nil {
		t.Fatalf("Failed to start second job: %v", err)
	}
	waitForStatus(t, updates, model.JobStatusCompleted)

	jobs := service.GetAllJobs()
	if len(jobs) != 2 {
		t.Fatalf("Expected 2 jobs, got %d", len(jobs))
	}

	foundJob1 := false
	foundJob2 := false
	for _, job := range jobs {
		if job.ID == job1.ID {
			foundJob1 = true
		}
		if job.ID == job2.ID {
			foundJob2 = true
		}
	}

	if !foundJob1 {
		t.Error("Job 1 not found in results")
	}
	if !foundJob2 {
		t.Error("Job 2 not found in results")
	}
}

func TestGenerateJobID(t *testing.T) {
	id1 := generateJobID()
	id2 := generateJobID()

	if id1 == id2 {
		t.Error("Expected different job IDs")
	}

	if !strings.HasPrefix(id1, JobIDPrefix) {
		t.Errorf("Expected ID to start with %q, got: %s", JobIDPrefix, id1)
	}

	// Check UUID format (job- + 36 chars for UUID)
	if len(id1) != len(JobIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(JobIDPrefix)+36, len(id1), id1)
	}
}
