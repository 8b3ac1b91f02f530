package usecase

import (
	"context"
	"time"

	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppointmentUsecase serves the doctor's read-only views.
type AppointmentUsecase interface {
	ListAll(ctx context.Context) ([]entity.Appointment, error)
	ListForDate(ctx context.Context, date time.Time) ([]entity.Appointment, error)
	ListForTomorrow(ctx context.Context) ([]entity.Appointment, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return NewAppointmentUsecaseWithClock(db, log, appointmentRepo, time.Now)
}

// NewAppointmentUsecaseWithClock injects the clock used to compute
// "tomorrow"; tests pin it to a fixed date.
func NewAppointmentUsecaseWithClock(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	now func() time.Time,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		now:             now,
	}
}

func (u *appointmentUsecase) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	appointments, err := u.appointmentRepo.FindAllOrdered(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}

func (u *appointmentUsecase) ListForDate(ctx context.Context, date time.Time) ([]entity.Appointment, error) {
	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), date)
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", date.Format("2006-01-02"), err)
		return nil, err
	}
	return appointments, nil
}

func (u *appointmentUsecase) ListForTomorrow(ctx context.Context) ([]entity.Appointment, error) {
	tomorrow := u.now().UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	return u.ListForDate(ctx, tomorrow)
}
