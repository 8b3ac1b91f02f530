package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEmailSender records sends and can be forced to fail.
type mockEmailSender struct {
	sent []emailCall
	err  error
}

type emailCall struct {
	To, Subject, Body string
}

func (m *mockEmailSender) Send(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, emailCall{To: to, Subject: subject, Body: body})
	return nil
}

type mockSMSSender struct {
	sent []smsCall
	err  error
}

type smsCall struct {
	To, Body string
}

func (m *mockSMSSender) Send(_ context.Context, to, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, smsCall{To: to, Body: body})
	return nil
}

func testAppointment() *entity.Appointment {
	return &entity.Appointment{
		ID:              1,
		PatientName:     "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "+15551234567",
		AppointmentDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "09:00 AM",
		Status:          entity.AppointmentStatusPending,
	}
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestNotifyBookedSendsBothChannels(t *testing.T) {
	email := &mockEmailSender{}
	sms := &mockSMSSender{}
	svc := NewNotificationService(email, sms, silentLogger())

	svc.Notify(context.Background(), testAppointment(), TemplateBooked)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "jane@example.com", email.sent[0].To)
	assert.Equal(t, "Appointment Received", email.sent[0].Subject)
	assert.Equal(t, "Hi Jane Doe,\nYour appointment for 2025-06-01 at 09:00 AM has been booked.\nRegards, Clinic Team", email.sent[0].Body)

	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+15551234567", sms.sent[0].To)
	assert.Equal(t, "Appointment booked for 2025-06-01 at 09:00 AM.", sms.sent[0].Body)
}

func TestNotifyReminderContent(t *testing.T) {
	email := &mockEmailSender{}
	sms := &mockSMSSender{}
	svc := NewNotificationService(email, sms, silentLogger())

	svc.Notify(context.Background(), testAppointment(), TemplateReminder)

	require.Len(t, email.sent, 1)
	assert.Equal(t, "Reminder: Appointment Tomorrow", email.sent[0].Subject)
	assert.Equal(t, "Hi Jane Doe,\n\nThis is a reminder for your appointment tomorrow at 09:00 AM.\nRegards, Clinic Team", email.sent[0].Body)

	require.Len(t, sms.sent, 1)
	assert.Equal(t, "Reminder: Your appointment is tomorrow at 09:00 AM.", sms.sent[0].Body)
}

// One channel failing must never suppress the other.
func TestNotifyEmailFailureStillSendsSMS(t *testing.T) {
	email := &mockEmailSender{err: errors.New("smtp down")}
	sms := &mockSMSSender{}
	svc := NewNotificationService(email, sms, silentLogger())

	svc.Notify(context.Background(), testAppointment(), TemplateBooked)

	require.Len(t, sms.sent, 1)
}

func TestNotifySkipsSMSWhenPhoneEmpty(t *testing.T) {
	email := &mockEmailSender{}
	sms := &mockSMSSender{}
	svc := NewNotificationService(email, sms, silentLogger())

	appointment := testAppointment()
	appointment.Phone = ""
	svc.Notify(context.Background(), appointment, TemplateBooked)

	require.Len(t, email.sent, 1)
	assert.Empty(t, sms.sent)
}

func TestNotifySkipsSMSWhenNotConfigured(t *testing.T) {
	email := &mockEmailSender{}
	svc := NewNotificationService(email, nil, silentLogger())

	// Must not panic on the nil sender.
	svc.Notify(context.Background(), testAppointment(), TemplateBooked)

	require.Len(t, email.sent, 1)
}

func TestNotifyBothChannelsFailingIsSilent(t *testing.T) {
	email := &mockEmailSender{err: errors.New("smtp down")}
	sms := &mockSMSSender{err: errors.New("provider down")}
	svc := NewNotificationService(email, sms, silentLogger())

	// Notify has no error return; a total outage must not reach the caller.
	svc.Notify(context.Background(), testAppointment(), TemplateBooked)
}
