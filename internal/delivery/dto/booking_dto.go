package dto

// Form-bound request structs. Field names map to the form input names via
// the schema tags; validation rules mirror the booking form constraints.

type BookingRequest struct {
	PatientName     string `schema:"patient_name" validate:"required,max=100"`
	Email           string `schema:"email" validate:"required,email,max=120"`
	Phone           string `schema:"phone" validate:"omitempty,max=20"`
	AppointmentDate string `schema:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `schema:"appointment_time" validate:"required,time_slot"`
	Notes           string `schema:"notes"`
}

type DoctorLoginRequest struct {
	Username string `schema:"username" validate:"required"`
	Password string `schema:"password" validate:"required"`
}
