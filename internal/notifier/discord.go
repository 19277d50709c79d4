package notifier

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/wedding-rsvp/internal/models"
)

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

// NewDiscordSession creates a bot session for token. The session is only used
// for REST calls, so it is never opened.
func NewDiscordSession(token string) (*discordgo.Session, error) {
	return discordgo.New("Bot " + token)
}

func (n *DiscordNotifier) NotifyRegistration(registration models.Registration, created bool) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, RegistrationMessage(registration, created))
	if err != nil {
		return fmt.Errorf("sending discord message: %w", err)
	}

	return nil
}

// RegistrationMessage is the organiser-facing summary of a registration.
func RegistrationMessage(r models.Registration, created bool) string {
	status := "aanmelding gewijzigd ✏️"
	if created {
		status = "nieuwe aanmelding 🎉"
	}

	attendance := "afwezig 😢"
	if r.GuestPresent {
		var parts []string
		if r.GuestPresentCeremony {
			parts = append(parts, "ceremonie")
		}
		if r.GuestPresentReception {
			parts = append(parts, "receptie")
		}
		if r.GuestPresentDinner {
			parts = append(parts, "diner")
		}
		attendance = "aanwezig (" + strings.Join(parts, ", ") + ")"
	}

	name := r.GuestFirstName + " " + r.GuestLastName
	if r.WithPartner && r.PartnerFirstName != "" {
		name += " + " + r.PartnerFirstName + " " + r.PartnerLastName
	}

	remarks := ""
	if r.Remarks != "" {
		remarks = fmt.Sprintf("\n**Opmerkingen:** %s", r.Remarks)
	}

	return fmt.Sprintf("💌 **RSVP %s**\n**Gast:** %s\n**Status:** %s, %s%s",
		r.RSVPCode,
		name,
		status,
		attendance,
		remarks,
	)
}
