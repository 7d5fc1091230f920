package notification

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"brightpath/models"
)

// ResendMailer implements EmailService using the Resend delivery API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

func NewResendMailer(apiKey, from, to string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (m *ResendMailer) SendContact(ctx context.Context, req models.ContactRequest) (string, error) {
	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("Website inquiry from %s", req.Name)
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: req.Email,
		Subject: subject,
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send contact email: %w", err)
	}
	return sent.Id, nil
}
