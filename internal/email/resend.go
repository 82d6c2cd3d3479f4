package email

import (
	"context"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// ResendConfig holds the configuration for the Resend email sender.
type ResendConfig struct {
	// APIKey is the Resend API key.
	APIKey string
	// BaseURL overrides the Resend API root; empty uses the public endpoint.
	BaseURL string
}

// ResendSender implements Sender using the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a new ResendSender.
func NewResendSender(cfg ResendConfig) (*ResendSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("resend: API key is required")
	}

	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base URL: %w", err)
		}
		client.BaseURL = u
	}

	return &ResendSender{client: client}, nil
}

// Send sends an email via the Resend API and returns the Resend email ID.
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTMLBody,
		Text:    msg.TextBody,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}
	return sent.Id, nil
}
