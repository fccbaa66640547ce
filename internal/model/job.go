package model

import (
	"fmt"
	"strings"
	"time"
)

// Display constants
const (
	MaxDisplayQueryLength = 60
	DisplayTruncateSuffix = "..."
)

// Job represents a single spotdl invocation
type Job struct {
	ID         string
	Operation  Operation
	Queries    []string        // Spotify URLs, search term, or sync source
	Options    DownloadOptions // options snapshot taken when the job was created
	Status     JobStatus
	ExitCode   int       // process exit code, valid once finished
	LastError  string    // last error message if any
	Failures   []string  // failure records extracted from the captured output
	LineCount  int       // number of output lines captured
	StartedAt  time.Time // when the job started
	FinishedAt time.Time // when the job finished
}

// CommandArgs returns the spotdl argument list for this job
func (j *Job) CommandArgs() []string {
	return BuildCommandArgs(j.Operation, j.Queries, j.Options)
}

// DisplayName returns a short label for status bars and lists
func (j *Job) DisplayName() string {
	// First priority: operation label plus the first query
	if len(j.Queries) > 0 {
		query := j.Queries[0]
		if len(query) > MaxDisplayQueryLength {
			query = query[:MaxDisplayQueryLength] + DisplayTruncateSuffix
		}
		if len(j.Queries) > 1 {
			return fmt.Sprintf("%s: %s (+%d more)", j.Operation.DisplayName(), query, len(j.Queries)-1)
		}
		return fmt.Sprintf("%s: %s", j.Operation.DisplayName(), query)
	}

	// Fallback: the operation alone
	return j.Operation.DisplayName()
}

// DurationString returns elapsed time formatted as hh:mm:ss or mm:ss
func (j *Job) DurationString() string {
	if j.StartedAt.IsZero() {
		return "—"
	}

	end := j.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}

	total := int(end.Sub(j.StartedAt).Seconds())
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var b strings.Builder
	if hours > 0 {
		b.WriteString(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%02d:%02d", minutes, seconds))
	return b.String()
}

// HasPlaylistQuery returns true if any query hints at a playlist or album,
// which enables the playlist range and archive options
func (j *Job) HasPlaylistQuery() bool {
	return IsPlaylistQuery(j.Queries)
}

// IsPlaylistQuery returns true if any query hints at a playlist or album
func IsPlaylistQuery(queries []string) bool {
	for _, q := range queries {
		lower := strings.ToLower(q)
		if strings.Contains(lower, "playlist") || strings.Contains(lower, "album") {
			return true
		}
	}
	return false
}
