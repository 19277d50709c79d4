// Package form normalizes and validates RSVP submissions.
package form

import (
	"strings"

	"github.com/gdg-garage/wedding-rsvp/internal/models"
)

// Submission is the raw data a guest posts. Partner fields are always part
// of the shape and are ignored unless the registration is with a partner.
type Submission struct {
	GuestFirstName        string `json:"guest_first_name,omitempty" doc:"Wat is je voornaam?"`
	GuestLastName         string `json:"guest_last_name,omitempty" doc:"Wat is je achternaam?"`
	GuestPresent          *bool  `json:"guest_present,omitempty" doc:"Ben je aanwezig op de bruiloft?"`
	GuestPresentCeremony  bool   `json:"guest_present_ceremony,omitempty" doc:"Ceremonie"`
	GuestPresentReception bool   `json:"guest_present_reception,omitempty" doc:"Receptie"`
	GuestPresentDinner    bool   `json:"guest_present_dinner,omitempty" doc:"Diner"`
	GuestEmail            string `json:"guest_email,omitempty" doc:"Wat is je e-mailadres?"`
	GuestDietMeat         bool   `json:"guest_diet_meat,omitempty" doc:"Vlees"`
	GuestDietFish         bool   `json:"guest_diet_fish,omitempty" doc:"Vis"`
	GuestDietVega         bool   `json:"guest_diet_vega,omitempty" doc:"Vegetarisch"`
	PartnerFirstName      string `json:"partner_first_name,omitempty" doc:"Wat is je partner's voornaam?"`
	PartnerLastName       string `json:"partner_last_name,omitempty" doc:"Wat is je partner's achternaam?"`
	PartnerDietMeat       bool   `json:"partner_diet_meat,omitempty" doc:"Vlees"`
	PartnerDietFish       bool   `json:"partner_diet_fish,omitempty" doc:"Vis"`
	PartnerDietVega       bool   `json:"partner_diet_vega,omitempty" doc:"Vegetarisch"`
	Remarks               string `json:"remarks,omitempty" doc:"Zijn er nog dingen die we moeten weten?"`
}

// Defaults is the state of an empty registration form.
func Defaults() Submission {
	return Submission{
		GuestPresentCeremony:  true,
		GuestPresentReception: true,
		GuestPresentDinner:    true,
	}
}

// FromRegistration fills a submission with the stored values of reg.
func FromRegistration(reg *models.Registration) Submission {
	f := reg.RegistrationFields
	present := f.GuestPresent
	sub := Submission{
		GuestFirstName:        f.GuestFirstName,
		GuestLastName:         f.GuestLastName,
		GuestPresent:          &present,
		GuestPresentCeremony:  f.GuestPresentCeremony,
		GuestPresentReception: f.GuestPresentReception,
		GuestPresentDinner:    f.GuestPresentDinner,
		GuestDietMeat:         f.GuestDietMeat,
		GuestDietFish:         f.GuestDietFish,
		GuestDietVega:         f.GuestDietVega,
		PartnerFirstName:      f.PartnerFirstName,
		PartnerLastName:       f.PartnerLastName,
		PartnerDietMeat:       isTrue(f.PartnerDietMeat),
		PartnerDietFish:       isTrue(f.PartnerDietFish),
		PartnerDietVega:       isTrue(f.PartnerDietVega),
		Remarks:               f.Remarks,
	}
	if f.GuestEmail != nil {
		sub.GuestEmail = *f.GuestEmail
	}
	return sub
}

// Normalize trims every text value, lower-cases the e-mail address (empty
// becomes absent) and resets the partner fields when there is no partner.
func Normalize(sub Submission, withPartner bool) models.RegistrationFields {
	f := models.RegistrationFields{
		GuestFirstName:        strings.TrimSpace(sub.GuestFirstName),
		GuestLastName:         strings.TrimSpace(sub.GuestLastName),
		GuestPresent:          isTrue(sub.GuestPresent),
		GuestPresentCeremony:  sub.GuestPresentCeremony,
		GuestPresentReception: sub.GuestPresentReception,
		GuestPresentDinner:    sub.GuestPresentDinner,
		GuestEmail:            normalizeEmail(sub.GuestEmail),
		GuestDietMeat:         sub.GuestDietMeat,
		GuestDietFish:         sub.GuestDietFish,
		GuestDietVega:         sub.GuestDietVega,
		WithPartner:           withPartner,
		Remarks:               strings.TrimSpace(sub.Remarks),
	}

	if withPartner {
		f.PartnerFirstName = strings.TrimSpace(sub.PartnerFirstName)
		f.PartnerLastName = strings.TrimSpace(sub.PartnerLastName)
		f.PartnerDietMeat = boolPtr(sub.PartnerDietMeat)
		f.PartnerDietFish = boolPtr(sub.PartnerDietFish)
		f.PartnerDietVega = boolPtr(sub.PartnerDietVega)
	}

	return f
}

func normalizeEmail(email string) *string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil
	}
	return &email
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func boolPtr(b bool) *bool {
	return &b
}
