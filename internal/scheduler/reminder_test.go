package scheduler

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/repository"
	"clinic-booking/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type mockNotifier struct {
	calls []notifyCall
}

type notifyCall struct {
	appointmentID uint
	template      service.Template
}

func (m *mockNotifier) Notify(_ context.Context, appointment *entity.Appointment, template service.Template) {
	m.calls = append(m.calls, notifyCall{appointmentID: appointment.ID, template: template})
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every sqlite connection gets its own in-memory database; a single
	// pooled connection keeps the tests on one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Appointment{}))

	return db
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func seed(t *testing.T, db *gorm.DB, name string, date time.Time) uint {
	t.Helper()
	appointment := &entity.Appointment{
		PatientName:     name,
		Email:           name + "@example.com",
		AppointmentDate: date,
		AppointmentTime: "09:00 AM",
		Status:          entity.AppointmentStatusPending,
	}
	require.NoError(t, db.Create(appointment).Error)
	return appointment.ID
}

func TestRunRemindsTomorrowOnly(t *testing.T) {
	db := newTestDB(t)
	notifier := &mockNotifier{}

	today := time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC)
	tomorrowID := seed(t, db, "tomorrow", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	seed(t, db, "day-after", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))

	job := NewReminderJob(db, silentLogger(), repository.NewAppointmentRepository(), notifier, nil).
		WithClock(func() time.Time { return today })
	job.Run()

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, tomorrowID, notifier.calls[0].appointmentID)
	assert.Equal(t, service.TemplateReminder, notifier.calls[0].template)
}

func TestRunWithNoAppointmentsDoesNothing(t *testing.T) {
	db := newTestDB(t)
	notifier := &mockNotifier{}

	job := NewReminderJob(db, silentLogger(), repository.NewAppointmentRepository(), notifier, nil)
	job.Run()

	assert.Empty(t, notifier.calls)
}

// With the redis guard configured, a second run inside the dedup window
// must not re-send.
func TestRunDedupsAcrossRestarts(t *testing.T) {
	db := newTestDB(t)
	notifier := &mockNotifier{}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	today := time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC)
	seed(t, db, "tomorrow", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	job := NewReminderJob(db, silentLogger(), repository.NewAppointmentRepository(), notifier, client).
		WithClock(func() time.Time { return today })

	job.Run()
	job.Run()

	assert.Len(t, notifier.calls, 1)
}
