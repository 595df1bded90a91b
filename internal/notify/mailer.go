package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/senbim-immo/admin-service/internal/config"
)

// Email is an outbound notification message. Body is rich text (HTML).
type Email struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	FromName string `json:"from_name"`
}

// Mailer dispatches outbound notification emails.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// relayMailer posts messages to an HTTP mail relay.
type relayMailer struct {
	cfg    config.NotificationConfig
	client *http.Client
	logger *zap.Logger
}

// NewMailer builds a Mailer from configuration. With no relay URL configured
// it returns a logging stub so development environments keep working.
func NewMailer(cfg config.NotificationConfig, logger *zap.Logger) Mailer {
	if cfg.RelayURL == "" {
		return &logMailer{logger: logger}
	}
	return &relayMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout()},
		logger: logger,
	}
}

func (m *relayMailer) Send(ctx context.Context, email Email) error {
	payload := struct {
		Email
		From string `json:"from"`
	}{Email: email, From: m.cfg.EmailFrom}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.RelayURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail relay: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail relay returned status %d", resp.StatusCode)
	}
	m.logger.Debug("email relayed", zap.String("to", email.To), zap.String("subject", email.Subject))
	return nil
}

// logMailer logs instead of sending; used when no relay is configured.
type logMailer struct {
	logger *zap.Logger
}

func (m *logMailer) Send(_ context.Context, email Email) error {
	m.logger.Info("email (no relay configured)",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("from_name", email.FromName))
	return nil
}
