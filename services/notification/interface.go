package notification

import (
	"context"

	"brightpath/models"
)

// EmailService forwards a contact-form submission to the site owner's inbox
// and returns the provider-assigned message id.
type EmailService interface {
	SendContact(ctx context.Context, req models.ContactRequest) (string, error)
}
