package converter

import (
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
)

// AppointmentToView converts an Appointment entity to its template view model
func AppointmentToView(appointment *entity.Appointment) *dto.AppointmentView {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentView{
		ID:              appointment.ID,
		PatientName:     appointment.PatientName,
		Email:           appointment.Email,
		Phone:           appointment.Phone,
		AppointmentDate: appointment.DateString(),
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		CreatedOn:       appointment.CreatedOn,
	}
}

// AppointmentsToViews converts a slice of Appointment entities to view models
func AppointmentsToViews(appointments []entity.Appointment) []dto.AppointmentView {
	views := make([]dto.AppointmentView, len(appointments))
	for i := range appointments {
		views[i] = *AppointmentToView(&appointments[i])
	}
	return views
}
