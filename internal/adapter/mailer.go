package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/inventory-master/internal/config"
	"github.com/MKhiriev/inventory-master/internal/logger"
	"github.com/go-resty/resty/v2"
)

// welcomeSubject is the subject line of the signup notification.
const welcomeSubject = "Welcome to Inventory Master"

// mailMessage is the wire format accepted by the mail gateway.
type mailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// mailGatewayAdapter is the resty-backed [Mailer] implementation that posts
// messages to an HTTP mail gateway.
type mailGatewayAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewMailGateway constructs a [Mailer] for the configured gateway.
//
// When no gateway address is configured the returned Mailer logs and drops
// every message, so the signup flow keeps working in development setups
// without a mail service.
func NewMailGateway(cfg config.Mailer, log *logger.Logger) Mailer {
	if cfg.BaseURL == "" {
		log.Warn().Msg("no mail gateway configured, outgoing mail will be dropped")
		return &noopMailer{logger: log}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &mailGatewayAdapter{client: cli, logger: log}
}

// SendWelcomeEmail posts the signup notification to the gateway's /messages
// endpoint. Any non-2xx gateway response is reported as an error.
func (m *mailGatewayAdapter) SendWelcomeEmail(ctx context.Context, email string) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(mailMessage{
			To:      email,
			Subject: welcomeSubject,
			Body:    "Signup successful! Your account is ready.",
		}).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("error sending welcome email: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("mail gateway returned status %d", resp.StatusCode())
	}

	return nil
}

// noopMailer satisfies [Mailer] without external I/O. Used when no gateway
// is configured.
type noopMailer struct {
	logger *logger.Logger
}

func (n *noopMailer) SendWelcomeEmail(_ context.Context, email string) error {
	n.logger.Info().Str("email", email).Msg("mail gateway disabled, dropping welcome email")
	return nil
}
