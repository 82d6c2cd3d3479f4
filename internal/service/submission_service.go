package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tinadigital/webquest/internal/config"
	"github.com/tinadigital/webquest/internal/email"
	"github.com/tinadigital/webquest/internal/logger"
	"github.com/tinadigital/webquest/internal/questionnaire"
)

// Submission errors
var (
	ErrRenderFailed   = errors.New("failed to render submission email")
	ErrDeliveryFailed = errors.New("failed to deliver submission email")
)

// SubmissionService forwards questionnaire submissions as emails.
// It keeps no state between calls.
type SubmissionService struct {
	sender   email.Sender
	provider string
	from     string
	to       string
	log      *logger.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(sender email.Sender, cfg *config.Config, log *logger.Logger) *SubmissionService {
	from := cfg.Email.From
	// Gmail only sends as the authenticated mailbox
	if cfg.Email.Provider == "gmail" && cfg.Email.Gmail.SenderAddress != "" {
		from = cfg.Email.Gmail.SenderAddress
	}

	return &SubmissionService{
		sender:   sender,
		provider: cfg.Email.Provider,
		from:     from,
		to:       cfg.Email.To,
		log:      log.WithComponent("submission"),
	}
}

// Compose renders the email for sub without sending it.
func (s *SubmissionService) Compose(sub questionnaire.Submission) (email.Message, error) {
	html, err := email.RequestEmailHTML(sub)
	if err != nil {
		return email.Message{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	text, err := email.RequestEmailText(sub)
	if err != nil {
		return email.Message{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	return email.Message{
		From:     s.from,
		To:       s.to,
		Subject:  email.RequestSubject(sub),
		HTMLBody: html,
		TextBody: text,
	}, nil
}

// Forward renders sub and hands it to the email sender, returning the delivery ID.
// Failures are not retried.
func (s *SubmissionService) Forward(ctx context.Context, sub questionnaire.Submission) (string, error) {
	msg, err := s.Compose(sub)
	if err != nil {
		s.log.Error().Err(err).Msg("submission render failed")
		return "", err
	}

	s.log.Debug().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("sending submission email")

	id, err := s.sender.Send(ctx, msg)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	s.log.Submission(sub.BusinessName, s.provider, id, err)
	if err != nil {
		return "", err
	}
	return id, nil
}
