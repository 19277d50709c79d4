package form

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gdg-garage/wedding-rsvp/internal/models"
	"github.com/go-playground/validator/v10"
)

// fieldOrder is the order in which fields appear on the form.
var fieldOrder = []string{
	"guest_first_name",
	"guest_last_name",
	"guest_present",
	"guest_present_ceremony",
	"guest_present_reception",
	"guest_present_dinner",
	"guest_email",
	"guest_diet_meat",
	"guest_diet_fish",
	"guest_diet_vega",
	"partner_first_name",
	"partner_last_name",
	"partner_diet_meat",
	"partner_diet_fish",
	"partner_diet_vega",
	"remarks",
}

// EmailLookup reports whether an e-mail address is used by any registration.
type EmailLookup func(ctx context.Context, email string) (bool, error)

type Validator struct {
	validate   *validator.Validate
	emailTaken EmailLookup
}

// textRules holds the per-field rules on the normalized text values.
// Conditional requirements are checked separately.
type textRules struct {
	GuestFirstName   string `json:"guest_first_name" validate:"required,max=50"`
	GuestLastName    string `json:"guest_last_name" validate:"required,max=50"`
	GuestEmail       string `json:"guest_email" validate:"omitempty,max=254,email"`
	PartnerFirstName string `json:"partner_first_name" validate:"omitempty,max=50"`
	PartnerLastName  string `json:"partner_last_name" validate:"omitempty,max=50"`
	Remarks          string `json:"remarks" validate:"omitempty,max=250"`
}

func NewValidator(emailTaken EmailLookup) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, emailTaken: emailTaken}
}

// Validate normalizes sub and checks it. existingEmail is the address stored
// on the registration being edited (nil on create); keeping it unchanged
// skips the uniqueness check. A failed check returns Errors; any other
// error comes from the e-mail lookup.
func (v *Validator) Validate(ctx context.Context, sub Submission, withPartner bool, existingEmail *string) (models.RegistrationFields, error) {
	f := Normalize(sub, withPartner)

	found, err := v.textErrors(f)
	if err != nil {
		return f, err
	}
	add := func(field, msg string) {
		if _, ok := found[field]; !ok {
			found[field] = msg
		}
	}

	if sub.GuestPresent == nil {
		add("guest_present", MsgRequired)
	}

	if f.GuestPresent && f.GuestEmail == nil {
		add("guest_email", MsgRequired)
	}

	if withPartner && f.GuestPresent {
		if f.PartnerFirstName == "" {
			add("partner_first_name", MsgRequired)
		}
		if f.PartnerLastName == "" {
			add("partner_last_name", MsgRequired)
		}
	}

	for field, msg := range crossFieldErrors(f) {
		add(field, msg)
	}

	if _, bad := found["guest_email"]; !bad && f.GuestEmail != nil && !sameEmail(f.GuestEmail, existingEmail) && v.emailTaken != nil {
		taken, err := v.emailTaken(ctx, *f.GuestEmail)
		if err != nil {
			return f, fmt.Errorf("checking e-mail address: %w", err)
		}
		if taken {
			add("guest_email", MsgEmailTaken)
		}
	}

	if len(found) == 0 {
		return f, nil
	}
	return f, ordered(found)
}

// crossFieldErrors applies the rules spanning several fields to the
// normalized payload.
func crossFieldErrors(f models.RegistrationFields) map[string]string {
	errs := map[string]string{}

	anyProgramItem := f.GuestPresentCeremony || f.GuestPresentReception || f.GuestPresentDinner
	if f.GuestPresent && !anyProgramItem {
		errs["guest_present_dinner"] = MsgNoProgramItem
	}

	if f.GuestPresentDinner && !(f.GuestDietMeat || f.GuestDietFish || f.GuestDietVega) {
		errs["guest_diet_vega"] = MsgNoDiet
	}

	if f.WithPartner && f.GuestPresentDinner &&
		!(isTrue(f.PartnerDietMeat) || isTrue(f.PartnerDietFish) || isTrue(f.PartnerDietVega)) {
		errs["partner_diet_vega"] = MsgNoDiet
	}

	return errs
}

func (v *Validator) textErrors(f models.RegistrationFields) (map[string]string, error) {
	rules := textRules{
		GuestFirstName:   f.GuestFirstName,
		GuestLastName:    f.GuestLastName,
		PartnerFirstName: f.PartnerFirstName,
		PartnerLastName:  f.PartnerLastName,
		Remarks:          f.Remarks,
	}
	if f.GuestEmail != nil {
		rules.GuestEmail = *f.GuestEmail
	}

	found := map[string]string{}

	err := v.validate.Struct(rules)
	if err == nil {
		return found, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			found[fe.Field()] = MsgRequired
		case "max":
			found[fe.Field()] = fmt.Sprintf(MsgTooLong, fe.Param())
		case "email":
			found[fe.Field()] = MsgInvalidEmail
		default:
			found[fe.Field()] = fe.Error()
		}
	}

	return found, nil
}

func ordered(found map[string]string) Errors {
	errs := make(Errors, 0, len(found))
	for _, field := range fieldOrder {
		if msg, ok := found[field]; ok {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}
	return errs
}

func sameEmail(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
