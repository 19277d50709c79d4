// Package rsvp creates and updates registrations and sends the
// confirmation that belongs to a new attending registration.
package rsvp

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdg-garage/wedding-rsvp/internal/form"
	"github.com/gdg-garage/wedding-rsvp/internal/logging"
	"github.com/gdg-garage/wedding-rsvp/internal/models"
	"github.com/gdg-garage/wedding-rsvp/internal/notifier"
	"github.com/gdg-garage/wedding-rsvp/internal/rsvpcode"
	"gorm.io/gorm"
)

// maxCodeAttempts bounds retries when a freshly generated code loses a race
// against a concurrent insert.
const maxCodeAttempts = 5

type codeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type Service struct {
	db         *gorm.DB
	codes      codeGenerator
	validator  *form.Validator
	sender     notifier.ConfirmationSender
	organisers notifier.Notifier
	manageURL  func(code string) string
}

// NewService wires the workflow. organisers may be nil.
func NewService(db *gorm.DB, sender notifier.ConfirmationSender, organisers notifier.Notifier, manageURL func(code string) string) *Service {
	s := &Service{
		db:         db,
		sender:     sender,
		organisers: organisers,
		manageURL:  manageURL,
	}
	s.codes = rsvpcode.NewGenerator(s.CodeExists)
	s.validator = form.NewValidator(s.EmailTaken)
	return s
}

// Validate checks a submission. For an edit, existing is the stored
// registration; its e-mail address does not count as taken.
func (s *Service) Validate(ctx context.Context, sub form.Submission, withPartner bool, existing *models.Registration) (models.RegistrationFields, error) {
	var existingEmail *string
	if existing != nil {
		existingEmail = existing.GuestEmail
	}
	return s.validator.Validate(ctx, sub, withPartner, existingEmail)
}

// Create stores a new registration under a fresh code. When the guest
// attends, a confirmation is sent; if that fails the registration is removed
// again and the send error is returned.
func (s *Service) Create(ctx context.Context, fields models.RegistrationFields, withPartner bool) (*models.Registration, error) {
	log := logging.FromContext(ctx)
	fields.WithPartner = withPartner

	reg, err := s.insert(ctx, fields)
	if err != nil {
		return nil, err
	}
	log.Info("registration created", "rsvp_code", reg.RSVPCode, "with_partner", reg.WithPartner, "present", reg.GuestPresent)

	if reg.GuestPresent {
		confirmation := notifier.Confirmation{
			FirstName: reg.GuestFirstName,
			Code:      reg.RSVPCode,
			ManageURL: s.manageURL(reg.RSVPCode),
		}
		if reg.GuestEmail != nil {
			confirmation.Email = *reg.GuestEmail
		}

		if err := s.sender.SendConfirmation(ctx, confirmation); err != nil {
			log.Error("confirmation failed, removing registration", "rsvp_code", reg.RSVPCode, "error", err)
			if rmErr := s.remove(context.WithoutCancel(ctx), reg); rmErr != nil {
				log.Error("failed to remove registration", "rsvp_code", reg.RSVPCode, "error", rmErr)
				return nil, errors.Join(fmt.Errorf("sending confirmation: %w", err), rmErr)
			}
			return nil, fmt.Errorf("sending confirmation: %w", err)
		}
	}

	s.notifyOrganisers(ctx, *reg, true)
	return reg, nil
}

func (s *Service) insert(ctx context.Context, fields models.RegistrationFields) (*models.Registration, error) {
	for attempt := 1; ; attempt++ {
		code, err := s.codes.Generate(ctx)
		if err != nil {
			return nil, err
		}

		reg := &models.Registration{RSVPCode: code, RegistrationFields: fields}
		err = s.save(ctx, reg, true)
		if err == nil {
			return reg, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("storing registration: %w", err)
		}

		if fields.GuestEmail != nil {
			taken, lookupErr := s.EmailTaken(ctx, *fields.GuestEmail)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if taken {
				return nil, ErrDuplicateEmail
			}
		}

		if attempt == maxCodeAttempts {
			return nil, fmt.Errorf("no free rsvp code after %d attempts: %w", attempt, err)
		}
		logging.FromContext(ctx).Warn("rsvp code collision, retrying", "rsvp_code", code, "attempt", attempt)
	}
}

// Update applies fields to reg. Whether the registration includes a partner
// cannot change, and no confirmation is sent.
func (s *Service) Update(ctx context.Context, reg *models.Registration, fields models.RegistrationFields) (*models.Registration, error) {
	fields.WithPartner = reg.WithPartner
	reg.RegistrationFields = fields

	if err := s.save(ctx, reg, false); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("updating registration %s: %w", reg.RSVPCode, err)
	}
	logging.FromContext(ctx).Info("registration updated", "rsvp_code", reg.RSVPCode, "present", reg.GuestPresent)

	s.notifyOrganisers(ctx, *reg, false)
	return reg, nil
}

func (s *Service) notifyOrganisers(ctx context.Context, reg models.Registration, created bool) {
	if s.organisers == nil {
		return
	}
	if err := s.organisers.NotifyRegistration(reg, created); err != nil {
		logging.FromContext(ctx).Warn("failed to notify organisers", "rsvp_code", reg.RSVPCode, "error", err)
	}
}
