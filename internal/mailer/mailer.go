package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/muzahidswe/fs17-Backend-project/internal/logger"
)

const resendAPI = "https://api.resend.com/emails"

// Mailer delivers transactional mail over the Resend HTTP API. With no API
// key configured it logs the message instead of sending, which keeps local
// development and tests off the network.
type Mailer struct {
	apiKey string
	from   string
	client *http.Client
}

func New(apiKey, from string) *Mailer {
	return &Mailer{
		apiKey: apiKey,
		from:   from,
		client: http.DefaultClient,
	}
}

type message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

// SendPasswordReset mails the reset link to the account's address.
func (m *Mailer) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	html := fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>Click the following link to reset your password:</p>
		<p><a href="%s">%s</a></p>
		<p>The link is valid for 1 hour.</p>
	`, resetLink, resetLink)
	return m.send(ctx, message{
		From:    m.from,
		To:      to,
		Subject: "Password Reset",
		HTML:    html,
		Text:    "Reset your password: " + resetLink,
	})
}

func (m *Mailer) send(ctx context.Context, msg message) error {
	if m.apiKey == "" {
		logger.Get().Info("mail API key not set, logging message instead of sending",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendAPI, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail API error: %s", resp.Status)
	}
	logger.Get().Info("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
