package handlers

import (
	"context"
	"net/http"

	"github.com/gdg-garage/wedding-rsvp/internal/form"
)

type SubmitRequest struct {
	Body form.Submission
}

func (h *RSVPHandler) HandleRegisterForm(ctx context.Context, _ *struct{}) (*FormOutput, error) {
	return h.registerForm(ctx, false)
}

func (h *RSVPHandler) HandleRegisterFormWithPartner(ctx context.Context, _ *struct{}) (*FormOutput, error) {
	return h.registerForm(ctx, true)
}

func (h *RSVPHandler) HandleRegister(ctx context.Context, input *SubmitRequest) (*SubmitOutput, error) {
	return h.register(ctx, input, false)
}

func (h *RSVPHandler) HandleRegisterWithPartner(ctx context.Context, input *SubmitRequest) (*SubmitOutput, error) {
	return h.register(ctx, input, true)
}

func (h *RSVPHandler) registerForm(ctx context.Context, withPartner bool) (*FormOutput, error) {
	return &FormOutput{Body: h.state(h.formEnabled(ctx), withPartner, form.Defaults())}, nil
}

func (h *RSVPHandler) register(ctx context.Context, input *SubmitRequest, withPartner bool) (*SubmitOutput, error) {
	enabled := h.formEnabled(ctx)
	if !enabled {
		return &SubmitOutput{Status: http.StatusOK, Body: h.state(enabled, withPartner, form.Defaults())}, nil
	}

	fields, err := h.service.Validate(ctx, input.Body, withPartner, nil)
	if err != nil {
		return nil, submissionError(ctx, err)
	}

	reg, err := h.service.Create(ctx, fields, withPartner)
	if err != nil {
		return nil, submissionError(ctx, err)
	}

	return h.redirect(enabled, reg), nil
}
