package notifier

import (
	"context"

	"github.com/gdg-garage/wedding-rsvp/internal/models"
)

// Confirmation is the content of the mail sent after a guest registers as
// attending.
type Confirmation struct {
	Email     string
	FirstName string
	Code      string
	ManageURL string
}

// ConfirmationSender delivers the confirmation to the guest.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, c Confirmation) error
}

// Notifier tells the organisers about new and changed registrations.
type Notifier interface {
	NotifyRegistration(registration models.Registration, created bool) error
}
