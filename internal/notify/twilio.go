package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"wordleboard/internal/secrets"
)

// TwilioNotifier sends text messages through the Twilio REST API. The REST
// client is built per send from the current relay secret, so credential
// rotation needs no restart.
type TwilioNotifier struct {
	secrets secrets.Source
}

// NewTwilio creates a Twilio-backed notifier
func NewTwilio(secrets secrets.Source) *TwilioNotifier {
	return &TwilioNotifier{secrets: secrets}
}

// Ensure TwilioNotifier implements the interface
var _ Notifier = (*TwilioNotifier)(nil)

// Send dispatches a single outbound message
func (n *TwilioNotifier) Send(ctx context.Context, to, from, body string) error {
	secret, err := n.secrets.RelaySecret(ctx)
	if err != nil {
		return fmt.Errorf("fetching relay secret: %w", err)
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: secret.AccountSID,
		Password: secret.AuthToken,
	})

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	return nil
}
