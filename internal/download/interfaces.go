package download

import (
	"github.com/spotget/spot-downloader/internal/model"
)

// Downloader defines the interface for the job service.
type Downloader interface {
	SetUpdateCallback(func(*model.Job))
	SetLineCallback(func(jobID, line string))
	StartJob(op model.Operation, queries []string, opts model.DownloadOptions) (*model.Job, error)
	StopJob(id string) error
	GetJob(id string) (*model.Job, bool)
	GetAllJobs() []*model.Job
	ActiveJob() (*model.Job, bool)
}
