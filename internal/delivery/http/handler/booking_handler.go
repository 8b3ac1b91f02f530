package handler

import (
	"net/http"

	"clinic-booking/internal/converter"
	"clinic-booking/internal/delivery/dto"
	"clinic-booking/internal/domain/entity"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/renderer"
	"clinic-booking/pkg/validator"

	"github.com/gorilla/schema"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
	renderer       *renderer.Renderer
	decoder        *schema.Decoder
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator, renderer *renderer.Renderer) *BookingHandler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
		renderer:       renderer,
		decoder:        decoder,
	}
}

func (h *BookingHandler) ShowBookingForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, http.StatusOK, &dto.BookingRequest{}, nil)
}

// ProcessBooking validates the submitted form, persists the appointment and
// renders the confirmation. On validation failure the form is redisplayed
// with field errors; nothing is persisted and no notification is sent.
func (h *BookingHandler) ProcessBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	var req dto.BookingRequest
	if err := h.decoder.Decode(&req, r.PostForm); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.renderForm(w, http.StatusOK, &req, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			h.renderForm(w, http.StatusOK, &req, map[string]string{"AppointmentDate": "AppointmentDate must be a valid date"})
		case usecase.ErrInvalidSlot:
			h.renderForm(w, http.StatusOK, &req, map[string]string{"AppointmentTime": "AppointmentTime must be one of the available time slots"})
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.renderer.Render(w, http.StatusOK, "booking_success", map[string]interface{}{
		"Title":       "Appointment Booked",
		"Appointment": converter.AppointmentToView(appointment),
	})
}

func (h *BookingHandler) renderForm(w http.ResponseWriter, statusCode int, form *dto.BookingRequest, errors map[string]string) {
	if errors == nil {
		errors = map[string]string{}
	}
	h.renderer.Render(w, statusCode, "book", map[string]interface{}{
		"Title":  "Book an Appointment",
		"Form":   form,
		"Errors": errors,
		"Slots":  entity.TimeSlots,
	})
}
