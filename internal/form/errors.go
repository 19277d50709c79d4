package form

import (
	"strings"
)

// Messages shown to guests. The site has a single locale (nl).
const (
	MsgRequired      = "Dit veld is verplicht."
	MsgTooLong       = "Dit veld mag niet langer zijn dan %s tekens."
	MsgInvalidEmail  = "Ongeldig e-mailadres."
	MsgEmailTaken    = "Je hebt je al met dit e-mailadres aangemeld. Controleer je inbox voor de link om je aanmelding aan te passen."
	MsgNoProgramItem = "Je dient je aan te melden voor minimaal één onderdeel."
	MsgNoDiet        = "Je dient minimaal één dieetwens in te vullen."
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the set of field errors of one submission, in form order.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Has reports whether field has at least one error.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Messages returns the messages attached to field.
func (e Errors) Messages(field string) []string {
	var msgs []string
	for _, fe := range e {
		if fe.Field == field {
			msgs = append(msgs, fe.Message)
		}
	}
	return msgs
}
