package models

import (
	"time"
)

// RegistrationHistory is a snapshot of a registration taken on every save.
type RegistrationHistory struct {
	ID             uint               `json:"id" gorm:"primaryKey"`
	RegistrationID uint               `json:"registration_id" gorm:"index;not null"`
	RSVPCode       string             `json:"rsvp_code" gorm:"size:4;not null;index"`
	Snapshot       RegistrationFields `json:"snapshot" gorm:"serializer:json;not null"`
	CreatedAt      time.Time          `json:"created_at"`
}

func (RegistrationHistory) TableName() string { return "rsvp_history" }

func SnapshotOf(r *Registration) RegistrationHistory {
	return RegistrationHistory{
		RegistrationID: r.ID,
		RSVPCode:       r.RSVPCode,
		Snapshot:       r.RegistrationFields,
	}
}

// Registration rebuilds a registration value from the snapshot so history
// entries can be rendered with the export columns.
func (h RegistrationHistory) Registration() Registration {
	return Registration{
		ID:                 h.RegistrationID,
		RSVPCode:           h.RSVPCode,
		RegistrationFields: h.Snapshot,
		CreatedAt:          h.CreatedAt,
		UpdatedAt:          h.CreatedAt,
	}
}
