package service

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/resend/resend-go/v3"

	"stumpworks-site/internal/config"
	"stumpworks-site/internal/domain"
)

var (
	ErrContactNotConfigured = errors.New("contact form is not configured")
	ErrInvalidContact       = errors.New("invalid contact request")
)

// ContactService relays the public contact form to the business inbox.
type ContactService interface {
	Send(ctx context.Context, input domain.ContactInput) error
}

type contactService struct {
	client *resend.Client
	cfg    *config.Config
}

func NewContactService(cfg *config.Config) ContactService {
	return &contactService{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *contactService) Send(ctx context.Context, input domain.ContactInput) error {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return fmt.Errorf("%w: name, email and message are required", ErrInvalidContact)
	}

	if s.cfg.ResendAPIKey == "" || s.cfg.ContactRecipient == "" {
		return ErrContactNotConfigured
	}

	phone := input.Phone
	if phone == "" {
		phone = "not provided"
	}

	body := fmt.Sprintf(`
<h2>New website inquiry</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(input.Name),
		html.EscapeString(input.Email),
		html.EscapeString(phone),
		html.EscapeString(input.Message),
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Stumpworks Website <%s>", s.cfg.FromEmail),
		To:      []string{s.cfg.ContactRecipient},
		Subject: fmt.Sprintf("New inquiry from %s", input.Name),
		Html:    body,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
