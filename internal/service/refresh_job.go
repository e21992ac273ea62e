package service

import (
	"context"
	"sync"
	"time"

	"github.com/akmaldavlatboyev/crm/models"
)

// ContactLister is the part of ContactService the refresh job depends on.
type ContactLister interface {
	List(ctx context.Context) ([]models.Contact, error)
}

// RefreshJob periodically re-fetches the contact list and hands the result
// to a callback, typically the TUI's refresh hook. The job is idle until
// Start is called.
type RefreshJob struct {
	contacts ContactLister
	notify   func([]models.Contact, error)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob. notify is invoked after every fetch,
// successful or not, from the job's goroutine.
func NewRefreshJob(contacts ContactLister, notify func([]models.Contact, error)) *RefreshJob {
	return &RefreshJob{contacts: contacts, notify: notify}
}

// Start stops any previously running job, then launches a background
// goroutine that refreshes every interval. If interval is zero or negative it
// defaults to 1 minute. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *RefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
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
				contacts, err := j.contacts.List(jobCtx)
				j.notify(contacts, err)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
