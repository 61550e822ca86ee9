package presenter

import (
	"github.com/johnquangdev/event-planner/internal/adapter/dto/common"
	"github.com/johnquangdev/event-planner/internal/adapter/dto/guest"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/internal/usecase/bulk"
	guestUsecase "github.com/johnquangdev/event-planner/internal/usecase/guest"
)

// ToGuestResponse converts a Guest entity to GuestResponse DTO
func ToGuestResponse(g *entities.Guest) *guest.GuestResponse {
	if g == nil {
		return nil
	}

	return &guest.GuestResponse{
		ID:               g.ID.String(),
		EventID:          g.EventID.String(),
		Name:             g.Name,
		Email:            g.Email,
		Phone:            g.Phone,
		RSVPStatus:       string(g.RSVPStatus),
		CheckedInAt:      g.CheckedInAt,
		InvitationSentAt: g.InvitationSentAt,
		PlusOne:          g.PlusOne,
		PlusOneName:      g.PlusOneName,
		Notes:            g.Notes,
		Metadata:         decodeMetadata(g.Metadata),
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

// ToGuestListResponse converts a slice of Guest entities to GuestListResponse
func ToGuestListResponse(guests []*entities.Guest, total int64, page, pageSize int) *guest.GuestListResponse {
	responses := make([]*guest.GuestResponse, len(guests))
	for i, g := range guests {
		responses[i] = ToGuestResponse(g)
	}

	return &guest.GuestListResponse{
		Guests:     responses,
		Pagination: common.NewPagination(total, page, pageSize),
	}
}

// ToSummaryResponse converts a guest list summary
func ToSummaryResponse(s *guestUsecase.Summary) *guest.SummaryResponse {
	if s == nil {
		return nil
	}
	return &guest.SummaryResponse{
		EventID:   s.EventID.String(),
		Total:     s.Total,
		Breakdown: ToBreakdown(s.Breakdown),
		CheckedIn: s.CheckedIn,
		Invited:   s.Invited,
		WithEmail: s.WithEmail,
		PlusOnes:  s.PlusOnes,
	}
}

// ToExportResponse converts an export result
func ToExportResponse(out *guestUsecase.ExportOutput) *guest.ExportResponse {
	if out == nil {
		return nil
	}
	return &guest.ExportResponse{
		URL:       out.URL,
		Object:    out.ObjectName,
		Rows:      out.Rows,
		ExpiresAt: out.ExpiresAt,
	}
}

// ToBreakdown converts a status breakdown to plain string keys
func ToBreakdown(b bulk.StatusBreakdown) map[string]int {
	if b == nil {
		return nil
	}
	out := make(map[string]int, len(b))
	for status, count := range b {
		out[string(status)] = count
	}
	return out
}
