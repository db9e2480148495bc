package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"

	"pet_market/internal/domain/entity"
	"pet_market/pkg/logx"
)

var ErrClockAlreadyRunning = errors.New("update clock is already running")

const (
	DefaultCountingInterval = time.Second
	DefaultIdleInterval     = 5 * time.Second
)

type StatusSource interface {
	Status(ctx context.Context) (entity.Status, error)
}

// UpdateClock polls the backend status and counts down to its next refresh.
// It re-polls every second while counting and every five seconds otherwise.
type UpdateClock struct {
	source  StatusSource
	clock   clock.Clock
	metrics *ClockMetrics

	countingInterval time.Duration
	idleInterval     time.Duration

	snapshotMu sync.RWMutex
	snapshot   entity.Countdown

	running atomic.Bool
}

type ClockOption func(*UpdateClock)

func WithClock(c clock.Clock) ClockOption {
	return func(u *UpdateClock) {
		u.clock = c
	}
}

func WithClockMetrics(m *ClockMetrics) ClockOption {
	return func(u *UpdateClock) {
		u.metrics = m
	}
}

func WithIntervals(counting, idle time.Duration) ClockOption {
	return func(u *UpdateClock) {
		if counting > 0 {
			u.countingInterval = counting
		}

		if idle > 0 {
			u.idleInterval = idle
		}
	}
}

func NewUpdateClock(source StatusSource, opts ...ClockOption) *UpdateClock {
	u := &UpdateClock{
		source:           source,
		clock:            clock.New(),
		countingInterval: DefaultCountingInterval,
		idleInterval:     DefaultIdleInterval,
	}

	for _, opt := range opts {
		opt(u)
	}

	if u.metrics == nil {
		u.metrics = NewClockMetrics(nil)
	}

	return u
}

// Tick polls once, publishes the new countdown and returns it together with
// the delay before the next poll.
func (u *UpdateClock) Tick(ctx context.Context) (entity.Countdown, time.Duration) {
	status, err := u.source.Status(ctx)
	now := u.clock.Now()

	var (
		countdown entity.Countdown
		delay     time.Duration
	)

	switch {
	case err != nil:
		u.metrics.statusFailure.Inc()
		logger(ctx).WarnContext(ctx, "status poll failed", logx.Error(err))

		countdown = entity.Countdown{State: entity.ClockUnknown, CheckedAt: now}
		delay = u.idleInterval
	case status.LastUpdate == nil:
		countdown = entity.Countdown{State: entity.ClockUnknown, NextUpdate: status.NextUpdate, CheckedAt: now}
		delay = u.idleInterval
	case status.NextUpdate.After(now):
		countdown = entity.Countdown{
			State:            entity.ClockCounting,
			LastUpdate:       status.LastUpdate,
			NextUpdate:       status.NextUpdate,
			SecondsRemaining: int64(status.NextUpdate.Sub(now) / time.Second),
			CheckedAt:        now,
		}
		delay = u.countingInterval
	default:
		countdown = entity.Countdown{
			State:      entity.ClockOverdue,
			LastUpdate: status.LastUpdate,
			NextUpdate: status.NextUpdate,
			CheckedAt:  now,
		}
		delay = u.idleInterval
	}

	u.publish(ctx, countdown)

	return countdown, delay
}

func (u *UpdateClock) publish(ctx context.Context, countdown entity.Countdown) {
	u.snapshotMu.Lock()
	prev := u.snapshot
	u.snapshot = countdown
	u.snapshotMu.Unlock()

	u.metrics.state.Set(float64(countdown.State))
	u.metrics.secondsLeft.Set(float64(countdown.SecondsRemaining))

	if prev.State != countdown.State {
		logger(ctx).InfoContext(ctx, "update clock state changed",
			logx.Stringer(logx.FieldClockState, countdown.State),
			slog.Time("next-update", countdown.NextUpdate),
		)
	}
}

// Snapshot returns the countdown of the latest tick; Unknown before the first.
func (u *UpdateClock) Snapshot() entity.Countdown {
	u.snapshotMu.RLock()
	defer u.snapshotMu.RUnlock()

	return u.snapshot
}

// Run ticks until ctx is cancelled. Only one Run may be active per clock; a
// concurrent call returns ErrClockAlreadyRunning without polling.
func (u *UpdateClock) Run(ctx context.Context) error {
	if !u.running.CompareAndSwap(false, true) {
		return ErrClockAlreadyRunning
	}
	defer u.running.Store(false)

	logger(ctx).InfoContext(ctx, "update clock started")

	for {
		_, delay := u.Tick(ctx)

		logger(ctx).DebugContext(ctx, "update clock tick", slog.Duration(logx.FieldNextTick, delay))

		timer := u.clock.Timer(delay)

		select {
		case <-ctx.Done():
			timer.Stop()
			logger(ctx).InfoContext(ctx, "update clock stopped")

			return nil
		case <-timer.C:
		}
	}
}
