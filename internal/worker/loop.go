package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Loop drives a tick function on a fixed interval. It replaces ambient
// package-level timers with something that can be started, stopped, and
// awaited from tests. A tick that overruns the interval simply delays the
// next one; ticks never run concurrently within one Loop.
type Loop struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)
	logger   *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewLoop creates a loop that runs tick every interval once started.
func NewLoop(name string, interval time.Duration, logger *slog.Logger, tick func(ctx context.Context)) *Loop {
	return &Loop{
		name:     name,
		interval: interval,
		tick:     tick,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the loop goroutine. The first tick runs immediately so a
// freshly started service picks up backlog without waiting an interval.
func (l *Loop) Start(ctx context.Context) {
	go l.run(ctx)
	l.logger.Info("loop started", slog.String("loop", l.name), slog.Duration("interval", l.interval))
}

// Stop requests shutdown. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.tick(ctx)
	for {
		select {
		case <-ticker.C:
			l.tick(ctx)
		case <-l.stop:
			l.logger.Info("loop stopped", slog.String("loop", l.name))
			return
		case <-ctx.Done():
			return
		}
	}
}
