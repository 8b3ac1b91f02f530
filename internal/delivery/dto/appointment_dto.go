package dto

import "time"

// View models rendered by the HTML templates.

type AppointmentView struct {
	ID              uint
	PatientName     string
	Email           string
	Phone           string
	AppointmentDate string
	AppointmentTime string
	Status          string
	Notes           string
	CreatedOn       time.Time
}
