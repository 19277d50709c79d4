package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/wedding-rsvp/internal/auth"
	"github.com/gdg-garage/wedding-rsvp/internal/config"
	"github.com/gdg-garage/wedding-rsvp/internal/form"
	"github.com/gdg-garage/wedding-rsvp/internal/logging"
	"github.com/gdg-garage/wedding-rsvp/internal/models"
	"github.com/gdg-garage/wedding-rsvp/internal/rsvp"
	"github.com/gdg-garage/wedding-rsvp/internal/rsvpcode"
)

const (
	msgNotFound = "Kon de aanmelding niet vinden. Controleer of je de volledige link hebt gekopieerd."
	msgFailed   = "Er is iets misgegaan bij het verwerken van je aanmelding. Probeer het later opnieuw."
)

type RSVPHandler struct {
	service     *rsvp.Service
	cfg         *config.Config
	authHandler *auth.AuthHandler
	now         func() time.Time
}

func NewRSVPHandler(service *rsvp.Service, cfg *config.Config, authHandler *auth.AuthHandler) *RSVPHandler {
	return &RSVPHandler{service: service, cfg: cfg, authHandler: authHandler, now: time.Now}
}

// FormState is everything needed to render the registration form.
type FormState struct {
	FormEnabled  bool            `json:"form_enabled" doc:"Whether the form accepts submissions"`
	WithPartner  bool            `json:"with_partner" doc:"Whether the form includes the partner fields"`
	Deadline     string          `json:"deadline" doc:"Submissions close at the start of this day (YYYY-MM-DD)"`
	ContactEmail string          `json:"contact_email" doc:"Address guests can write to after the deadline"`
	RSVPCode     string          `json:"rsvp_code,omitempty" doc:"Code of the stored registration"`
	ManageURL    string          `json:"manage_url,omitempty" doc:"Personal link to change the registration"`
	Values       form.Submission `json:"values"`
}

type FormOutput struct {
	Body FormState
}

// SubmitOutput is a 303 to the management page on success, or the
// unchanged form with status 200 when the form is closed.
type SubmitOutput struct {
	Status   int
	Location string `header:"Location" doc:"Management page of the registration"`
	Body     FormState
}

// formEnabled decides whether the form accepts submissions: the admin may
// always submit, guests only before the deadline. Handlers call it once per
// request and pass the result on.
func (h *RSVPHandler) formEnabled(ctx context.Context) bool {
	return auth.IsAdmin(ctx) || !h.cfg.DeadlinePassed(h.now())
}

func (h *RSVPHandler) state(enabled, withPartner bool, values form.Submission) FormState {
	return FormState{
		FormEnabled:  enabled,
		WithPartner:  withPartner,
		Deadline:     h.cfg.RSVPDeadline,
		ContactEmail: h.cfg.ContactEmail,
		Values:       values,
	}
}

func (h *RSVPHandler) registrationState(enabled bool, reg *models.Registration) FormState {
	st := h.state(enabled, reg.WithPartner, form.FromRegistration(reg))
	st.RSVPCode = reg.RSVPCode
	st.ManageURL = h.cfg.ManageURL(reg.RSVPCode)
	return st
}

func (h *RSVPHandler) redirect(enabled bool, reg *models.Registration) *SubmitOutput {
	return &SubmitOutput{
		Status:   http.StatusSeeOther,
		Location: "/" + reg.RSVPCode,
		Body:     h.registrationState(enabled, reg),
	}
}

// lookup loads a registration by a code as typed or pasted by a guest.
func (h *RSVPHandler) lookup(ctx context.Context, code string) (*models.Registration, error) {
	code = rsvpcode.Normalize(code)
	if !rsvpcode.Valid(code) {
		return nil, huma.Error404NotFound(msgNotFound)
	}

	reg, err := h.service.GetByCode(ctx, code)
	if errors.Is(err, rsvp.ErrNotFound) {
		return nil, huma.Error404NotFound(msgNotFound)
	}
	if err != nil {
		logging.FromContext(ctx).Error("failed to load registration", "rsvp_code", code, "error", err)
		return nil, huma.Error500InternalServerError(msgFailed)
	}
	return reg, nil
}

// submissionError translates a workflow error into the response a guest sees.
func submissionError(ctx context.Context, err error) error {
	var fieldErrs form.Errors
	switch {
	case errors.As(err, &fieldErrs):
		return validationError(fieldErrs)
	case errors.Is(err, rsvp.ErrDuplicateEmail):
		return validationError(form.Errors{{Field: "guest_email", Message: form.MsgEmailTaken}})
	default:
		logging.FromContext(ctx).Error("failed to process registration", "error", err)
		return huma.Error500InternalServerError(msgFailed)
	}
}

func validationError(errs form.Errors) error {
	details := make([]error, 0, len(errs))
	for _, fe := range errs {
		details = append(details, &huma.ErrorDetail{
			Message:  fe.Message,
			Location: "body." + fe.Field,
		})
	}
	return huma.Error422UnprocessableEntity("Controleer de gemarkeerde velden.", details...)
}
