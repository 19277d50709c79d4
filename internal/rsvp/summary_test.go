package rsvp

import (
	"testing"

	"github.com/gdg-garage/wedding-rsvp/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	yes, no := true, false

	couple := models.Registration{}
	couple.GuestPresent = true
	couple.GuestPresentCeremony = true
	couple.GuestPresentDinner = true
	couple.GuestDietVega = true
	couple.WithPartner = true
	couple.PartnerDietMeat = &yes
	couple.PartnerDietFish = &no
	couple.PartnerDietVega = &no

	single := models.Registration{}
	single.GuestPresent = true
	single.GuestPresentReception = true

	declined := models.Registration{}

	s := Summarize([]models.Registration{couple, single, declined})

	assert.Equal(t, Summary{
		Registrations: 3,
		Attending:     3,
		Declined:      1,
		Ceremony:      2,
		Reception:     1,
		Dinner:        2,
		DietMeat:      1,
		DietVega:      1,
	}, s)
}
