package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const DefaultSpec = "@every 10m"

var ErrInvalidSchedule = errors.New("invalid schedule")

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Parse accepts descriptors ("@every 10m", "@hourly") and 5-field cron
// expressions.
func Parse(spec string) (cron.Schedule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		spec = DefaultSpec
	}
	sched, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSchedule, spec, err)
	}
	return sched, nil
}

// Loop runs a job, waits until the schedule's next activation after the job
// finished, and repeats.
type Loop struct {
	schedule cron.Schedule
	now      func() time.Time
	logger   zerolog.Logger

	// OnWait, when set, is told how long the loop is about to sleep.
	OnWait func(next time.Time, wait time.Duration)
}

func NewLoop(sched cron.Schedule, logger zerolog.Logger) *Loop {
	return &Loop{
		schedule: sched,
		now:      time.Now,
		logger:   logger,
	}
}

// Run blocks until ctx is done. A cancelled ctx prevents the next job from
// starting and ends the wait between runs. The job gets the same ctx, so it
// may also cut its current run short.
func (l *Loop) Run(ctx context.Context, job func(context.Context)) error {
	for iteration := 1; ; iteration++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		started := l.now()
		job(ctx)
		finished := l.now()

		next := l.schedule.Next(finished)
		wait := next.Sub(finished)
		if wait < 0 {
			wait = 0
		}
		l.logger.Debug().
			Int("iteration", iteration).
			Dur("took", finished.Sub(started)).
			Time("next", next).
			Msg("run finished")
		if l.OnWait != nil {
			l.OnWait(next, wait)
		}

		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
