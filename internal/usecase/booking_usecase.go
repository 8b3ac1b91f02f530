package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/domain/repository"
	"clinic-booking/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDate = errors.New("appointment date is not a valid date")
	ErrInvalidSlot = errors.New("appointment time is not a bookable slot")
)

// Notifier dispatches best-effort notifications for an appointment.
type Notifier interface {
	Notify(ctx context.Context, appointment *entity.Appointment, template service.Template)
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.BookingRequest) (*entity.Appointment, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	notifier        Notifier
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	notifier Notifier,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
	}
}

// CreateBooking persists a validated booking request and dispatches the
// booked notification. Notification failures never fail the booking; the
// dispatcher logs and swallows them.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.BookingRequest) (*entity.Appointment, error) {
	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !entity.IsValidSlot(req.AppointmentTime) {
		return nil, ErrInvalidSlot
	}

	appointment := &entity.Appointment{
		PatientName:     req.PatientName,
		Email:           req.Email,
		Phone:           req.Phone,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Status:          entity.AppointmentStatusPending,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	u.notifier.Notify(ctx, appointment, service.TemplateBooked)

	u.log.Infof("Appointment booked: id=%d, date=%s, time=%s", appointment.ID, appointment.DateString(), appointment.AppointmentTime)
	return appointment, nil
}
