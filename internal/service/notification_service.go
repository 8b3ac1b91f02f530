package service

import (
	"context"
	"fmt"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Template selects the message pair sent for an appointment.
type Template string

const (
	TemplateBooked   Template = "booked"
	TemplateReminder Template = "reminder"
)

// Upper bound on a single channel send.
const sendTimeout = 15 * time.Second

// EmailSender delivers a plain-text email. Implementations can be swapped
// without changing the dispatcher.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// NotificationService sends the email and, when possible, the SMS for an
// appointment. Both channels are best effort: a failure on either is logged
// and swallowed, and one channel failing never suppresses the other. A
// booking must succeed even when the mail or SMS provider is down.
type NotificationService struct {
	email EmailSender
	sms   SMSSender
	log   *logrus.Logger
}

func NewNotificationService(email EmailSender, sms SMSSender, log *logrus.Logger) *NotificationService {
	return &NotificationService{
		email: email,
		sms:   sms,
		log:   log,
	}
}

// Notify dispatches the template's email and SMS for the appointment. It
// never returns an error to the caller. SMS is attempted only when an SMS
// client was configured and the appointment carries a phone number.
func (s *NotificationService) Notify(ctx context.Context, appointment *entity.Appointment, template Template) {
	subject, body := emailContent(appointment, template)

	if s.email != nil {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		if err := s.email.Send(sendCtx, appointment.Email, subject, body); err != nil {
			s.log.Warnf("Email send failed for appointment %d: %+v", appointment.ID, err)
		}
		cancel()
	}

	if s.sms != nil && appointment.Phone != "" {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		if err := s.sms.Send(sendCtx, appointment.Phone, smsContent(appointment, template)); err != nil {
			s.log.Warnf("SMS send failed for appointment %d: %+v", appointment.ID, err)
		}
		cancel()
	}
}

func emailContent(a *entity.Appointment, template Template) (subject, body string) {
	switch template {
	case TemplateReminder:
		subject = "Reminder: Appointment Tomorrow"
		body = fmt.Sprintf(
			"Hi %s,\n\nThis is a reminder for your appointment tomorrow at %s.\nRegards, Clinic Team",
			a.PatientName, a.AppointmentTime,
		)
	default:
		subject = "Appointment Received"
		body = fmt.Sprintf(
			"Hi %s,\nYour appointment for %s at %s has been booked.\nRegards, Clinic Team",
			a.PatientName, a.DateString(), a.AppointmentTime,
		)
	}
	return subject, body
}

func smsContent(a *entity.Appointment, template Template) string {
	if template == TemplateReminder {
		return fmt.Sprintf("Reminder: Your appointment is tomorrow at %s.", a.AppointmentTime)
	}
	return fmt.Sprintf("Appointment booked for %s at %s.", a.DateString(), a.AppointmentTime)
}
