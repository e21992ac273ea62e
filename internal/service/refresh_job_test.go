package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akmaldavlatboyev/crm/models"
	"github.com/stretchr/testify/assert"
)

// spyContactLister counts List calls and returns a fixed result.
type spyContactLister struct {
	calls atomic.Int64
	err   error
}

func (s *spyContactLister) List(_ context.Context) ([]models.Contact, error) {
	s.calls.Add(1)
	return []models.Contact{{ID: "c-1"}}, s.err
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestRefreshJob_Start_InvokesNotify(t *testing.T) {
	spy := &spyContactLister{}
	var notified atomic.Int64

	job := NewRefreshJob(spy, func(contacts []models.Contact, err error) {
		assert.NoError(t, err)
		assert.Len(t, contacts, 1)
		notified.Add(1)
	})

	// interval 10ms, ~5 ticks in 55ms
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := notified.Load()
	assert.GreaterOrEqual(t, got, int64(3), "notify should fire on every tick, fired: %d", got)
	assert.Equal(t, spy.calls.Load(), got)
}

func TestRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyContactLister{}
	job := NewRefreshJob(spy, func([]models.Contact, error) {})

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls may happen after Stop")
}

func TestRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyContactLister{}, func([]models.Contact, error) {})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewRefreshJob(&spyContactLister{}, func([]models.Contact, error) {})
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyContactLister{}
	job := NewRefreshJob(spy, func([]models.Contact, error) {})
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 defaults to 1 minute, so no ticks within 20ms
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestRefreshJob_FetchError_DoesNotStopJob(t *testing.T) {
	spy := &spyContactLister{err: assert.AnError}
	var sawError atomic.Bool

	job := NewRefreshJob(spy, func(_ []models.Contact, err error) {
		if err != nil {
			sawError.Store(true)
		}
	})

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.True(t, sawError.Load())
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3), "errors must not stop the ticker")
}

func TestRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyContactLister{}
	job := NewRefreshJob(spy, func([]models.Contact, error) {})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
