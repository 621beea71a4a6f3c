package board

import (
	"encoding/json"
	"fmt"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
)

// dragPayloadDTO is the wire shape of the drag payload as it rides the
// platform's drag-data channel: the job plus its origin cell. A nil routeId
// means the job came from the unassigned row.
type dragPayloadDTO struct {
	JobID   string  `json:"jobId"`
	RouteID *string `json:"routeId"`
	Date    string  `json:"date"`
}

// Encode serializes the payload for the drag-data channel.
func (p DragPayload) Encode() (string, error) {
	if err := p.Origin.Validate(); err != nil {
		return "", err
	}

	dto := dragPayloadDTO{
		JobID: p.JobID.String(),
		Date:  p.Origin.Date().String(),
	}
	if id := p.Origin.RouteID(); id != nil {
		s := id.String()
		dto.RouteID = &s
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeDragPayload parses a payload previously produced by Encode.
// Anything malformed comes back as an error; callers treat that the same
// way as a stale payload and abandon the drop.
func DecodeDragPayload(s string) (DragPayload, error) {
	var dto dragPayloadDTO
	if err := json.Unmarshal([]byte(s), &dto); err != nil {
		return DragPayload{}, fmt.Errorf("malformed drag payload: %w", err)
	}

	jobID, err := kernel.UUIDFromString(dto.JobID)
	if err != nil {
		return DragPayload{}, fmt.Errorf("malformed drag payload: %w", err)
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		id, routeErr := kernel.UUIDFromString(*dto.RouteID)
		if routeErr != nil {
			return DragPayload{}, fmt.Errorf("malformed drag payload: %w", routeErr)
		}
		routeID = &id
	}

	date, err := kernel.DateFromString(dto.Date)
	if err != nil {
		return DragPayload{}, fmt.Errorf("malformed drag payload: %w", err)
	}

	origin, err := job.NewPlacement(routeID, date)
	if err != nil {
		return DragPayload{}, fmt.Errorf("malformed drag payload: %w", err)
	}

	return DragPayload{JobID: jobID, Origin: origin}, nil
}
