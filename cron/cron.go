package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Sweeper clears expired login codes of one account kind.
type Sweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// StartCronJobs schedules the expired login code sweep and starts the
// scheduler. Stop the returned scheduler on shutdown.
func StartCronJobs(schedule string, log *logrus.Logger, sweepers map[string]Sweeper) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { sweepExpiredOTPs(context.Background(), log, sweepers) }); err != nil {
		return nil, err
	}
	c.Start()
	log.WithField("schedule", schedule).Info("cron job scheduler started for login code sweep")
	return c, nil
}

func sweepExpiredOTPs(ctx context.Context, log *logrus.Logger, sweepers map[string]Sweeper) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for kind, s := range sweepers {
		n, err := s.SweepExpired(ctx)
		if err != nil {
			log.WithError(err).WithField("kind", kind).Error("login code sweep failed")
			continue
		}
		if n > 0 {
			log.WithFields(logrus.Fields{"kind": kind, "cleared": n}).Info("cleared expired login codes")
		}
	}
}
