package handler

import (
	"net/http"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/renderer"
)

type DashboardHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	renderer           *renderer.Renderer
}

func NewDashboardHandler(appointmentUsecase usecase.AppointmentUsecase, renderer *renderer.Renderer) *DashboardHandler {
	return &DashboardHandler{
		appointmentUsecase: appointmentUsecase,
		renderer:           renderer,
	}
}

// Dashboard renders the full appointment list, ordered by date and stored
// time string.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListAll(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, http.StatusOK, "doctor_dashboard", map[string]interface{}{
		"Title":        "Doctor Dashboard",
		"Appointments": converter.AppointmentsToViews(appointments),
	})
}

// Reminders renders tomorrow's appointments without dispatching anything.
func (h *DashboardHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListForTomorrow(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, http.StatusOK, "doctor_reminders", map[string]interface{}{
		"Title":        "Tomorrow's Appointments",
		"Appointments": converter.AppointmentsToViews(appointments),
	})
}
