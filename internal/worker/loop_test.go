package worker

import (
	"context"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"log/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestLoopRunsImmediately checks that the first tick fires on Start, not an
// interval later.
func TestLoopRunsImmediately(t *testing.T) {
	ticked := make(chan struct{}, 1)
	l := NewLoop("test", time.Hour, discardLogger(), func(ctx context.Context) {
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	l.Start(context.Background())
	defer l.Stop()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("first tick did not fire on start")
	}
}

func TestLoopStop(t *testing.T) {
	l := NewLoop("test", time.Millisecond, discardLogger(), func(ctx context.Context) {})
	l.Start(context.Background())

	l.Stop()
	l.Stop() // must be safe to call twice

	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after Stop")
	}
}

// TestLoopStopsOnContextCancel checks the loop honours its parent context.
func TestLoopStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop("test", time.Millisecond, discardLogger(), func(ctx context.Context) {})
	l.Start(ctx)

	cancel()

	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit after context cancel")
	}
}

func TestLoopTicksRepeat(t *testing.T) {
	var count int64
	l := NewLoop("test", 5*time.Millisecond, discardLogger(), func(ctx context.Context) {
		atomic.AddInt64(&count, 1)
	})
	l.Start(context.Background())

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt64(&count) < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d ticks before deadline", atomic.LoadInt64(&count))
		case <-time.After(time.Millisecond):
		}
	}
	l.Stop()
	<-l.Done()
}
