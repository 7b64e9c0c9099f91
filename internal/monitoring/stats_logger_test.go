package monitoring

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fitlog/fitlog-be/internal/models"
	"github.com/fitlog/fitlog-be/internal/services"
)

type stubTracker struct {
	services.TrackerServiceProvider
	calls atomic.Int32
}

func (s *stubTracker) Stats() (models.Stats, error) {
	s.calls.Add(1)
	return models.Stats{Users: 1, Exercises: 2}, nil
}

func TestNewStatsLogger_InvalidSchedule(t *testing.T) {
	if _, err := NewStatsLogger(&stubTracker{}, "not a cron expression"); err == nil {
		t.Error("expected an error for an invalid schedule")
	}
}

func TestStatsLogger_RunAndStop(t *testing.T) {
	stub := &stubTracker{}
	sl, err := NewStatsLogger(stub, "@every 1h")
	if err != nil {
		t.Fatalf("NewStatsLogger: %v", err)
	}

	stopped := make(chan struct{})
	go func() {
		sl.Run()
		close(stopped)
	}()

	// Run logs once immediately before waiting on the schedule.
	deadline := time.After(2 * time.Second)
	for stub.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("no stats collected after startup")
		case <-time.After(10 * time.Millisecond):
		}
	}

	sl.Stop()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
