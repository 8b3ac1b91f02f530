package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler owns the recurring reminder job. The composition root starts it
// alongside the HTTP server and stops it on shutdown.
type Scheduler struct {
	cron *cron.Cron
	log  *logrus.Logger
}

func NewScheduler(job *ReminderJob, log *logrus.Logger) (*Scheduler, error) {
	c := cron.New()
	if _, err := c.AddJob(reminderSpec, job); err != nil {
		return nil, fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	return &Scheduler{
		cron: c,
		log:  log,
	}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Infof("Reminder scheduler started (%s)", reminderSpec)
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Reminder scheduler stopped")
}
