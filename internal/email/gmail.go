package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailConfig holds the configuration for the Gmail email sender.
type GmailConfig struct {
	// CredentialsJSON is a service account credentials JSON with domain-wide delegation.
	CredentialsJSON string
	// ClientID, ClientSecret and RefreshToken are used instead of CredentialsJSON
	// for personal mailboxes.
	ClientID     string
	ClientSecret string
	RefreshToken string
	// SenderAddress is the mailbox the service account impersonates.
	SenderAddress string
}

// GmailSender implements Sender using the Gmail API.
type GmailSender struct {
	service       *gmail.Service
	senderAddress string
}

// NewGmailSender creates a GmailSender from either service account credentials
// or OAuth2 client credentials plus a refresh token.
func NewGmailSender(ctx context.Context, cfg GmailConfig) (*GmailSender, error) {
	if cfg.SenderAddress == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}

	var opt option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.CredentialsJSON), gmail.GmailSendScope)
		if err != nil {
			return nil, fmt.Errorf("gmail: failed to parse credentials: %w", err)
		}
		jwtConfig.Subject = cfg.SenderAddress
		opt = option.WithHTTPClient(jwtConfig.Client(ctx))
	case cfg.RefreshToken != "":
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmail.GmailSendScope},
		}
		opt = option.WithHTTPClient(oauthCfg.Client(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}))
	default:
		return nil, fmt.Errorf("gmail: credentials JSON or refresh token is required")
	}

	svc, err := gmail.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}

	return &GmailSender{service: svc, senderAddress: cfg.SenderAddress}, nil
}

// Send sends an email via the Gmail API and returns the Gmail message ID.
func (g *GmailSender) Send(ctx context.Context, msg Message) (string, error) {
	from := msg.From
	if from == "" {
		from = g.senderAddress
	}

	raw := base64.URLEncoding.EncodeToString([]byte(buildMIME(from, msg)))
	sent, err := g.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gmail: failed to send email: %w", err)
	}
	return sent.Id, nil
}

// buildMIME renders msg as a MIME document, multipart/alternative when both bodies are set.
func buildMIME(from string, msg Message) string {
	header := []string{
		"From: " + from,
		"To: " + msg.To,
		"Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject),
		"MIME-Version: 1.0",
	}

	switch {
	case msg.HTMLBody != "" && msg.TextBody != "":
		boundary := "boundary_webquest_email"
		return strings.Join(append(header,
			"Content-Type: multipart/alternative; boundary="+boundary,
			"",
			"--"+boundary,
			"Content-Type: text/plain; charset=UTF-8",
			"Content-Transfer-Encoding: 8bit",
			"",
			msg.TextBody,
			"",
			"--"+boundary,
			"Content-Type: text/html; charset=UTF-8",
			"Content-Transfer-Encoding: 8bit",
			"",
			msg.HTMLBody,
			"",
			"--"+boundary+"--",
		), "\r\n")
	case msg.HTMLBody != "":
		return strings.Join(append(header,
			"Content-Type: text/html; charset=UTF-8",
			"",
			msg.HTMLBody,
		), "\r\n")
	default:
		return strings.Join(append(header,
			"Content-Type: text/plain; charset=UTF-8",
			"",
			msg.TextBody,
		), "\r\n")
	}
}
