package scheduler

import (
	"context"
	"fmt"
	"time"

	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"
	"clinic-booking/internal/usecase"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// The job fires every 24 hours, first run 24 hours after startup.
	reminderSpec = "@every 24h"

	// Dedup keys outlive one scheduler interval so a restart within the
	// same day does not re-send reminders.
	dedupTTL = 48 * time.Hour

	runTimeout = 5 * time.Minute
)

// ReminderJob sends reminder notifications for tomorrow's appointments. It
// runs outside any request context and establishes its own database scope
// per run.
type ReminderJob struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	notifier        usecase.Notifier
	redisClient     *redis.Client
	now             func() time.Time
}

func NewReminderJob(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notifier usecase.Notifier,
	redisClient *redis.Client,
) *ReminderJob {
	return &ReminderJob{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		redisClient:     redisClient,
		now:             time.Now,
	}
}

// WithClock pins the job's clock; tests use it to fix "tomorrow".
func (j *ReminderJob) WithClock(now func() time.Time) *ReminderJob {
	j.now = now
	return j
}

// Run sends a reminder for every appointment scheduled for tomorrow.
func (j *ReminderJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	tomorrow := j.now().UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour)

	appointments, err := j.appointmentRepo.FindByDate(j.db.WithContext(ctx), tomorrow)
	if err != nil {
		j.log.Warnf("Reminder job failed to list appointments for %s: %+v", tomorrow.Format("2006-01-02"), err)
		return
	}

	sent := 0
	for i := range appointments {
		appointment := &appointments[i]

		if j.alreadyReminded(ctx, appointment.ID) {
			continue
		}

		j.notifier.Notify(ctx, appointment, service.TemplateReminder)
		j.markReminded(ctx, appointment.ID)
		sent++
	}

	j.log.Infof("Reminder job finished: date=%s, appointments=%d, reminded=%d", tomorrow.Format("2006-01-02"), len(appointments), sent)
}

func (j *ReminderJob) alreadyReminded(ctx context.Context, id uint) bool {
	if j.redisClient == nil {
		return false
	}
	exists, err := j.redisClient.Exists(ctx, dedupKey(id)).Result()
	if err != nil {
		j.log.Warnf("Reminder dedup check failed for appointment %d (treating as not sent): %+v", id, err)
		return false
	}
	return exists > 0
}

func (j *ReminderJob) markReminded(ctx context.Context, id uint) {
	if j.redisClient == nil {
		return
	}
	if err := j.redisClient.Set(ctx, dedupKey(id), 1, dedupTTL).Err(); err != nil {
		j.log.Warnf("Failed to mark reminder sent for appointment %d: %+v", id, err)
	}
}

func dedupKey(id uint) string {
	return fmt.Sprintf("reminder:sent:%d", id)
}
