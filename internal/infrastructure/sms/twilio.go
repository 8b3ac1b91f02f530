package sms

import (
	"context"
	"time"

	"clinic-booking/config"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

const requestTimeout = 10 * time.Second

// TwilioSender delivers SMS through the Twilio REST API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender returns nil when Twilio credentials are not configured;
// the dispatcher treats a nil sender as "SMS disabled".
func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	client.SetTimeout(requestTimeout)

	return &TwilioSender{
		client: client,
		from:   cfg.FromNumber,
	}
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	_, err := s.client.Api.CreateMessage(params)
	return err
}
