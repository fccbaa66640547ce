package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spotget/spot-downloader/internal/model"
	"github.com/spotget/spot-downloader/internal/platform"
	"github.com/spotget/spot-downloader/internal/runner"
)

// ErrJobActive reports that a job is already running; spotdl invocations are
// serialized so their output streams stay attributable.
var ErrJobActive = errors.New("a job is already running")

// Job identifier and polling constants
const (
	JobIDPrefix = "job-"

	// StopPollInterval is how often a running job checks for a stop request.
	StopPollInterval = 100 * time.Millisecond
)

// Service runs spotdl jobs one at a time and tracks their lifecycle
type Service struct {
	jobs      map[string]*model.Job
	jobsMutex sync.RWMutex
	activeID  string
	cmdRunner runner.CommandRunner
	onUpdate  func(*model.Job)         // callback for UI updates
	onLine    func(jobID, line string) // callback for streamed output lines
}

// NewService creates a new job service backed by the given command runner
func NewService(cmdRunner runner.CommandRunner) *Service {
	return &Service{
		jobs:      make(map[string]*model.Job),
		cmdRunner: cmdRunner,
	}
}

// SetUpdateCallback sets the callback function for job updates
func (s *Service) SetUpdateCallback(callback func(*model.Job)) {
	s.onUpdate = callback
}

// SetLineCallback sets the callback function for streamed output lines
func (s *Service) SetLineCallback(callback func(jobID, line string)) {
	s.onLine = callback
}

// StartJob validates the request, registers a job, and runs it in the
// background. Only one job may be active at a time.
func (s *Service) StartJob(op model.Operation, queries []string, opts model.DownloadOptions) (*model.Job, error) {
	if len(queries) == 0 {
		return nil, fmt.Errorf("no queries provided")
	}

	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	if s.activeID != "" {
		return nil, fmt.Errorf("%w: %s", ErrJobActive, s.activeID)
	}

	job := &model.Job{
		ID:        generateJobID(),
		Operation: op,
		Queries:   queries,
		Options:   opts,
		Status:    model.JobStatusPending,
		ExitCode:  -1,
		StartedAt: time.Now(),
	}

	s.jobs[job.ID] = job
	s.activeID = job.ID

	go s.runJob(job)

	return job, nil
}

// StopJob requests a running job to stop
func (s *Service) StopJob(id string) error {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job not found: %s", id)
	}

	if !job.Status.IsActive() {
		return fmt.Errorf("job is not active: %s", job.Status)
	}

	job.Status = model.JobStatusStopping
	s.notifyUpdate(job)

	// The actual stopping is handled in the job goroutine
	return nil
}

// GetJob returns a job by ID
func (s *Service) GetJob(id string) (*model.Job, bool) {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	job, exists := s.jobs[id]
	return job, exists
}

// GetAllJobs returns all jobs
func (s *Service) GetAllJobs() []*model.Job {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()

	jobs := make([]*model.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

// ActiveJob returns the currently running job, if any
func (s *Service) ActiveJob() (*model.Job, bool) {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()

	if s.activeID == "" {
		return nil, false
	}
	job, exists := s.jobs[s.activeID]
	return job, exists
}

// runJob executes one spotdl invocation and records its outcome
func (s *Service) runJob(job *model.Job) {
	s.jobsMutex.Lock()
	job.Status = model.JobStatusStarting
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel the run context once a stop is requested
	go func() {
		for {
			s.jobsMutex.RLock()
			status := job.Status
			s.jobsMutex.RUnlock()

			if status == model.JobStatusStopping {
				cancel()
				return
			}
			if status.IsFinished() {
				return
			}
			time.Sleep(StopPollInterval)
		}
	}()

	args := job.CommandArgs()
	log.Printf("Starting job %s: %s %s", job.ID, model.SpotdlCommand, platform.QuoteCommand(args))

	s.jobsMutex.Lock()
	job.Status = model.JobStatusRunning
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)

	result, err := s.cmdRunner.Run(ctx, model.SpotdlCommand, args, func(line string) {
		s.jobsMutex.Lock()
		job.LineCount++
		s.jobsMutex.Unlock()
		s.notifyLine(job.ID, line)
	})

	// Record the outcome
	s.jobsMutex.Lock()
	if result != nil {
		job.ExitCode = result.ExitCode
		if job.Operation.WantsFailureSummary() {
			job.Failures = platform.ClassifyFailures(result.Lines)
		}
	}

	switch {
	case err != nil && ctx.Err() == context.Canceled:
		job.Status = model.JobStatusStopped
	case err != nil:
		job.Status = model.JobStatusError
		job.LastError = err.Error()
	case result.ExitCode != 0:
		job.Status = model.JobStatusError
		job.LastError = fmt.Sprintf("spotdl exited with code %d", result.ExitCode)
	default:
		job.Status = model.JobStatusCompleted
	}
	job.FinishedAt = time.Now()
	// Free the slot before notifying so a callback can start the next job.
	s.activeID = ""
	s.jobsMutex.Unlock()

	s.notifyUpdate(job)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job *model.Job) {
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}

// notifyLine calls the line callback if set
func (s *Service) notifyLine(jobID, line string) {
	if s.onLine != nil {
		s.onLine(jobID, line)
	}
}

// IsMissingBinary reports whether the job failed because the spotdl binary
// could not be found on PATH
func IsMissingBinary(job *model.Job) bool {
	return job != nil && job.LastError != "" &&
		strings.Contains(job.LastError, runner.ErrBinaryNotFound.Error())
}

// generateJobID generates a unique job ID using UUID v7 for better uniqueness and time ordering
func generateJobID() string {
	// Use UUID v7 which includes timestamp and is naturally ordered
	// This allows job history to sort chronologically by ID
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
