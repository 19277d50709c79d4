package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/wedding-rsvp/internal/export"
	"github.com/gdg-garage/wedding-rsvp/internal/logging"
	"github.com/gdg-garage/wedding-rsvp/internal/models"
	"github.com/gdg-garage/wedding-rsvp/internal/rsvp"
	"github.com/gdg-garage/wedding-rsvp/internal/rsvpcode"
)

type AdminListOutput struct {
	Body struct {
		Summary       rsvp.Summary          `json:"summary"`
		Registrations []models.Registration `json:"registrations"`
	}
}

type ExportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type HistoryInput struct {
	Code string `path:"code" doc:"Four-letter registration code"`
	Diff bool   `query:"diff" default:"true" doc:"Only list the columns that changed since the previous version"`
}

// Change is one column that differs from the previous version.
type Change struct {
	Column string `json:"column"`
	Header string `json:"header"`
	Old    string `json:"old"`
	New    string `json:"new"`
}

type HistoryEntry struct {
	CreatedAt time.Time                  `json:"created_at"`
	Snapshot  *models.RegistrationFields `json:"snapshot,omitempty" doc:"Full version, when diff is false"`
	Changes   []Change                   `json:"changes,omitempty" doc:"Changed columns, when diff is true"`
}

type HistoryOutput struct {
	Body struct {
		RSVPCode string         `json:"rsvp_code"`
		History  []HistoryEntry `json:"history"`
	}
}

func (h *RSVPHandler) HandleAdminList(ctx context.Context, _ *struct{}) (*AdminListOutput, error) {
	if err := h.authHandler.Authorize(ctx); err != nil {
		return nil, err
	}

	regs, err := h.service.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("failed to list registrations", "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch registrations")
	}

	res := &AdminListOutput{}
	res.Body.Summary = rsvp.Summarize(regs)
	res.Body.Registrations = regs
	return res, nil
}

func (h *RSVPHandler) HandleExport(ctx context.Context, _ *struct{}) (*ExportOutput, error) {
	if err := h.authHandler.Authorize(ctx); err != nil {
		return nil, err
	}

	regs, err := h.service.List(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("failed to list registrations", "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch registrations")
	}

	data, err := export.CSV(regs)
	if err != nil {
		logging.FromContext(ctx).Error("failed to export registrations", "error", err)
		return nil, huma.Error500InternalServerError("Failed to export registrations")
	}

	return &ExportOutput{
		ContentType:        export.ContentType,
		ContentDisposition: "attachment; filename=rsvp.csv",
		Body:               data,
	}, nil
}

func (h *RSVPHandler) HandleHistory(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	if err := h.authHandler.Authorize(ctx); err != nil {
		return nil, err
	}

	code := rsvpcode.Normalize(input.Code)
	history, err := h.service.History(ctx, code)
	if errors.Is(err, rsvp.ErrNotFound) {
		return nil, huma.Error404NotFound(msgNotFound)
	}
	if err != nil {
		logging.FromContext(ctx).Error("failed to fetch history", "rsvp_code", code, "error", err)
		return nil, huma.Error500InternalServerError("Failed to fetch history")
	}

	res := &HistoryOutput{}
	res.Body.RSVPCode = code
	res.Body.History = make([]HistoryEntry, 0, len(history))

	for i := range history {
		entry := HistoryEntry{CreatedAt: history[i].CreatedAt}
		if !input.Diff {
			entry.Snapshot = &history[i].Snapshot
			res.Body.History = append(res.Body.History, entry)
			continue
		}

		// history is newest first, so the previous version is the next entry.
		var previous *models.RegistrationHistory
		if i+1 < len(history) {
			previous = &history[i+1]
		}
		entry.Changes = diffSnapshots(previous, &history[i])
		res.Body.History = append(res.Body.History, entry)
	}

	return res, nil
}

// diffSnapshots lists the export columns that differ between two versions.
// The very first version is compared against an empty registration.
// The code and the timestamps are left out.
func diffSnapshots(previous, current *models.RegistrationHistory) []Change {
	var prev models.Registration
	if previous != nil {
		prev = previous.Registration()
	}
	cur := current.Registration()

	var changes []Change
	for _, col := range export.Columns {
		if col.Key == "created_at" || col.Key == "updated_at" || col.Key == "rsvp_code" {
			continue
		}
		oldValue := export.Format(col.Value(&prev))
		newValue := export.Format(col.Value(&cur))
		if oldValue != newValue {
			changes = append(changes, Change{Column: col.Key, Header: col.Header, Old: oldValue, New: newValue})
		}
	}
	return changes
}
