package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// TimeSlots is the fixed set of bookable time-of-day slots. The values are
// display strings and are stored as-is.
var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
}

// IsValidSlot reports whether slot is one of the bookable time slots.
func IsValidSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Appointment represents a single patient booking record
type Appointment struct {
	ID              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientName     string            `gorm:"type:varchar(100);not null" json:"patient_name"`
	Email           string            `gorm:"type:varchar(120);not null" json:"email"`
	Phone           string            `gorm:"type:varchar(20)" json:"phone"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(20);not null" json:"appointment_time"`
	CreatedOn       time.Time         `gorm:"autoCreateTime" json:"created_on"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is in pending status
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if the appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// DateString returns the appointment date formatted as YYYY-MM-DD, the form
// in which it appears in notifications and views.
func (a *Appointment) DateString() string {
	return a.AppointmentDate.Format("2006-01-02")
}
