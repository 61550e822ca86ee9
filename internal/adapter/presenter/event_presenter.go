package presenter

import (
	"encoding/json"

	"github.com/johnquangdev/event-planner/internal/adapter/dto/common"
	"github.com/johnquangdev/event-planner/internal/adapter/dto/event"
	"github.com/johnquangdev/event-planner/internal/domain/entities"
)

// ToEventResponse converts an Event entity to EventResponse DTO
func ToEventResponse(e *entities.Event) *event.EventResponse {
	if e == nil {
		return nil
	}

	return &event.EventResponse{
		ID:          e.ID.String(),
		OrganizerID: e.OrganizerID.String(),
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
		Status:      string(e.Status),
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
		Metadata:    decodeMetadata(e.Metadata),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToEventListResponse converts a slice of Event entities to EventListResponse
func ToEventListResponse(events []*entities.Event, total int64, page, pageSize int) *event.EventListResponse {
	responses := make([]*event.EventResponse, len(events))
	for i, e := range events {
		responses[i] = ToEventResponse(e)
	}

	return &event.EventListResponse{
		Events:     responses,
		Pagination: common.NewPagination(total, page, pageSize),
	}
}

// decodeMetadata parses a JSON column, ignoring malformed content
func decodeMetadata(raw []byte) map[string]interface{} {
	if len(raw) == 0 {
		return nil
	}
	var metadata map[string]interface{}
	if err := json.Unmarshal(raw, &metadata); err != nil || len(metadata) == 0 {
		return nil
	}
	return metadata
}
