package models

import (
	"time"
)

const RSVPCodeLength = 4

// RegistrationFields holds everything a guest submits. It is shared by the
// live record and its history snapshots.
type RegistrationFields struct {
	GuestFirstName        string  `json:"guest_first_name" gorm:"size:50;not null"`
	GuestLastName         string  `json:"guest_last_name" gorm:"size:50;not null"`
	GuestPresent          bool    `json:"guest_present" gorm:"not null"`
	GuestPresentCeremony  bool    `json:"guest_present_ceremony" gorm:"not null"`
	GuestPresentReception bool    `json:"guest_present_reception" gorm:"not null"`
	GuestPresentDinner    bool    `json:"guest_present_dinner" gorm:"not null"`
	GuestEmail            *string `json:"guest_email" gorm:"size:254;uniqueIndex"`
	GuestDietMeat         bool    `json:"guest_diet_meat" gorm:"not null"`
	GuestDietFish         bool    `json:"guest_diet_fish" gorm:"not null"`
	GuestDietVega         bool    `json:"guest_diet_vega" gorm:"not null"`

	WithPartner      bool   `json:"with_partner" gorm:"not null"`
	PartnerFirstName string `json:"partner_first_name" gorm:"size:50;not null;default:''"`
	PartnerLastName  string `json:"partner_last_name" gorm:"size:50;not null;default:''"`
	PartnerDietMeat  *bool  `json:"partner_diet_meat"`
	PartnerDietFish  *bool  `json:"partner_diet_fish"`
	PartnerDietVega  *bool  `json:"partner_diet_vega"`

	Remarks string `json:"remarks" gorm:"size:250;not null;default:''"`
}

// Registration is one guest's RSVP, optionally including a partner. It is
// addressed by its RSVPCode, never by e-mail.
type Registration struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	RSVPCode           string    `json:"rsvp_code" gorm:"size:4;not null;uniqueIndex"`
	CreatedAt          time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"not null"`
	RegistrationFields `gorm:"embedded"`
}

func (Registration) TableName() string { return "rsvp" }
