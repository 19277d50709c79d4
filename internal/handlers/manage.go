package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/wedding-rsvp/internal/form"
	"github.com/gdg-garage/wedding-rsvp/internal/logging"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type CodeInput struct {
	Code string `path:"code" doc:"Four-letter registration code"`
}

type UpdateRequest struct {
	Code string `path:"code" doc:"Four-letter registration code"`
	Body form.Submission
}

type QRCodeOutput struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}

func (h *RSVPHandler) HandleManageForm(ctx context.Context, input *CodeInput) (*FormOutput, error) {
	reg, err := h.lookup(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	return &FormOutput{Body: h.registrationState(h.formEnabled(ctx), reg)}, nil
}

func (h *RSVPHandler) HandleUpdate(ctx context.Context, input *UpdateRequest) (*SubmitOutput, error) {
	reg, err := h.lookup(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	enabled := h.formEnabled(ctx)
	if !enabled {
		return &SubmitOutput{Status: http.StatusOK, Body: h.registrationState(enabled, reg)}, nil
	}

	fields, err := h.service.Validate(ctx, input.Body, reg.WithPartner, reg)
	if err != nil {
		return nil, submissionError(ctx, err)
	}

	reg, err = h.service.Update(ctx, reg, fields)
	if err != nil {
		return nil, submissionError(ctx, err)
	}

	return h.redirect(enabled, reg), nil
}

// HandleQRCode renders the personal management link as a QR code.
func (h *RSVPHandler) HandleQRCode(ctx context.Context, input *CodeInput) (*QRCodeOutput, error) {
	reg, err := h.lookup(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(h.cfg.ManageURL(reg.RSVPCode), qrcode.Medium, qrSize)
	if err != nil {
		logging.FromContext(ctx).Error("failed to render qr code", "rsvp_code", reg.RSVPCode, "error", err)
		return nil, huma.Error500InternalServerError("Failed to render QR code")
	}

	return &QRCodeOutput{
		ContentType:  "image/png",
		CacheControl: "private, max-age=86400",
		Body:         png,
	}, nil
}
