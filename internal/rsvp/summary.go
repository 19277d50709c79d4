package rsvp

import (
	"github.com/gdg-garage/wedding-rsvp/internal/models"
)

// Summary counts people, not registrations: an attending registration with a
// partner counts twice for every part of the day.
type Summary struct {
	Registrations int `json:"registrations"`
	Attending     int `json:"attending" doc:"People attending at least one part"`
	Declined      int `json:"declined" doc:"Registrations that will not attend"`
	Ceremony      int `json:"ceremony"`
	Reception     int `json:"reception"`
	Dinner        int `json:"dinner"`
	DietMeat      int `json:"diet_meat"`
	DietFish      int `json:"diet_fish"`
	DietVega      int `json:"diet_vega"`
}

func Summarize(regs []models.Registration) Summary {
	var s Summary
	s.Registrations = len(regs)

	for _, r := range regs {
		if !r.GuestPresent {
			s.Declined++
			continue
		}

		people := 1
		if r.WithPartner {
			people = 2
		}
		s.Attending += people

		if r.GuestPresentCeremony {
			s.Ceremony += people
		}
		if r.GuestPresentReception {
			s.Reception += people
		}
		if !r.GuestPresentDinner {
			continue
		}
		s.Dinner += people

		s.countDiet(r.GuestDietMeat, r.GuestDietFish, r.GuestDietVega)
		if r.WithPartner {
			s.countDiet(isSet(r.PartnerDietMeat), isSet(r.PartnerDietFish), isSet(r.PartnerDietVega))
		}
	}

	return s
}

func (s *Summary) countDiet(meat, fish, vega bool) {
	if meat {
		s.DietMeat++
	}
	if fish {
		s.DietFish++
	}
	if vega {
		s.DietVega++
	}
}

func isSet(b *bool) bool {
	return b != nil && *b
}
