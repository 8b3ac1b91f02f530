package repository

import (
	"time"

	"clinic-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAllOrdered(db *gorm.DB) ([]entity.Appointment, error)
	FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
}
