package presenter

import (
	dto "github.com/johnquangdev/event-planner/internal/adapter/dto/bulk"
	"github.com/johnquangdev/event-planner/internal/usecase/bulk"
)

// ToBarResponse converts the bulk actions bar state
func ToBarResponse(s *bulk.BarState) *dto.BarResponse {
	if s == nil {
		return nil
	}

	resp := &dto.BarResponse{
		Visible:   s.Visible,
		Count:     s.Count,
		Breakdown: ToBreakdown(s.Breakdown),
	}
	for _, a := range s.Actions {
		resp.Actions = append(resp.Actions, dto.ActionResponse{
			Action:        string(a.Action),
			Label:         a.Action.Title(),
			Enabled:       a.Enabled,
			EligibleCount: a.EligibleCount,
		})
	}
	return resp
}

// ToDialogResponse converts an opened dialog
func ToDialogResponse(out *bulk.OpenDialogOutput) *dto.DialogResponse {
	if out == nil {
		return nil
	}

	view := out.View
	resp := &dto.DialogResponse{
		ExpiresAt:     out.ExpiresAt,
		Action:        string(view.Action),
		State:         string(view.State),
		Title:         view.Title,
		Description:   view.Description,
		SelectedCount: view.SelectedCount,
		EligibleCount: view.EligibleCount,
		Breakdown:     ToBreakdown(view.Breakdown),
		Ineligible:    make([]dto.IneligibleGuestResponse, 0, len(view.Ineligible)),
		CanConfirm:    view.CanConfirm,
	}
	if out.SnapshotID != nil {
		id := out.SnapshotID.String()
		resp.SnapshotID = &id
	}
	for _, g := range view.Ineligible {
		resp.Ineligible = append(resp.Ineligible, dto.IneligibleGuestResponse{
			ID:     g.ID.String(),
			Name:   g.Name,
			Reason: g.Reason,
		})
	}
	return resp
}

// ToResultResponse converts a confirmed bulk action result
func ToResultResponse(r *bulk.BulkResult) *dto.ResultResponse {
	if r == nil {
		return nil
	}

	resp := &dto.ResultResponse{
		SnapshotID: r.SnapshotID.String(),
		Action:     string(r.Action),
		Requested:  r.Requested,
		Processed:  r.Processed,
		Skipped:    r.Skipped,
		Failed:     make([]dto.FailedGuestResponse, 0, len(r.Failed)),
	}
	for _, f := range r.Failed {
		resp.Failed = append(resp.Failed, dto.FailedGuestResponse{
			GuestID: f.GuestID.String(),
			Reason:  f.Reason,
		})
	}
	return resp
}
