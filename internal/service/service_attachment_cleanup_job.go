package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

const defaultCleanupInterval = 10 * time.Minute

type attachmentCleanupJob struct {
	attachments store.AttachmentRepository
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAttachmentCleanupJob creates a job that calls DeleteOrphans on a ticker.
// The job is idle until Start is called.
func NewAttachmentCleanupJob(attachments store.AttachmentRepository, logger *logger.Logger) AttachmentCleanupJob {
	return &attachmentCleanupJob{attachments: attachments, logger: logger}
}

// Start implements AttachmentCleanupJob. It stops any previously running job,
// then launches a background goroutine that sweeps every interval. If interval
// is zero or negative it defaults to 10 minutes. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *attachmentCleanupJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

// Stop implements AttachmentCleanupJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *attachmentCleanupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *attachmentCleanupJob) sweep(ctx context.Context) {
	removed, err := j.attachments.DeleteOrphans(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Str("func", "attachmentCleanupJob.sweep").Msg("orphaned attachments sweep failed")
		return
	}
	if removed > 0 {
		j.logger.Info().Str("func", "attachmentCleanupJob.sweep").Int64("removed", removed).Msg("orphaned attachments removed")
	}
}
