package repository

import (
	"errors"
	"time"

	"clinic-booking/internal/domain/entity"
	domainRepo "clinic-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindAllOrdered returns every appointment ordered by date, then by the
// stored time string. Times are display strings ("02:00 PM"), so the
// within-day order is lexicographic, not chronological.
func (r *appointmentRepository) FindAllOrdered(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Order("appointment_date ASC, appointment_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	day := date.Truncate(24 * time.Hour)
	err := db.Where("appointment_date >= ? AND appointment_date < ?", day, day.AddDate(0, 0, 1)).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
