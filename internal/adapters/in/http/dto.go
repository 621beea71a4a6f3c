package http

import (
	"hireboard/internal/core/application/usecases/queries"
	"hireboard/internal/core/domain/model/job"
)

// Error is the JSON error body every failing endpoint returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JobResponse is the wire representation of a job record.
// A null routeId means the job sits in the unassigned row.
type JobResponse struct {
	ID            string  `json:"id"`
	RouteID       *string `json:"routeId"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	CustomerName  string  `json:"customerName"`
	OrderNumber   string  `json:"orderNumber"`
	ScheduledTime string  `json:"scheduledTime,omitempty"`
	Address       string  `json:"address,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	IsRecurring   bool    `json:"isRecurring"`
	DriverID      *string `json:"driverId"`
	OffHireDate   *string `json:"offHireDate"`
}

// RouteResponse is the wire representation of a route.
// A capacity of zero means the route carries no capacity hint.
type RouteResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Capacity int    `json:"capacity"`
}

// PlacementRequest names a target board cell.
// A null routeId targets the unassigned row on the given day.
type PlacementRequest struct {
	RouteID *string `json:"routeId"`
	Date    string  `json:"date"`
}

// ValidationResponse is the answer of the assignment check endpoint.
type ValidationResponse struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
}

// ReassignDriverRequest carries the new driver for a job.
type ReassignDriverRequest struct {
	DriverID string `json:"driverId"`
}

// MarkOffHireRequest carries the day a hire ends.
type MarkOffHireRequest struct {
	OffHireDate string `json:"offHireDate"`
}

// CreateJobRequest carries the fields for scheduling a new job.
type CreateJobRequest struct {
	Type          string `json:"type"`
	Date          string `json:"date"`
	CustomerName  string `json:"customerName"`
	OrderNumber   string `json:"orderNumber"`
	ScheduledTime string `json:"scheduledTime"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	IsRecurring   bool   `json:"isRecurring"`
}

// CreateRouteRequest carries the fields for adding a board row.
type CreateRouteRequest struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Capacity int    `json:"capacity"`
}

// jobToResponse maps a job aggregate to its wire representation.
func jobToResponse(aggregate *job.Job) JobResponse {
	resp := JobResponse{
		ID:            aggregate.ID().String(),
		Date:          aggregate.Date().String(),
		Type:          aggregate.Type().String(),
		Status:        aggregate.Status().String(),
		CustomerName:  aggregate.Details().CustomerName,
		OrderNumber:   aggregate.Details().OrderNumber,
		ScheduledTime: aggregate.Details().ScheduledTime,
		Address:       aggregate.Details().Address,
		Notes:         aggregate.Details().Notes,
		IsRecurring:   aggregate.Details().IsRecurring,
	}
	if id := aggregate.RouteID(); id != nil {
		s := id.String()
		resp.RouteID = &s
	}
	if id := aggregate.Driver(); id != nil {
		s := id.String()
		resp.DriverID = &s
	}
	if d := aggregate.OffHireDate(); d != nil {
		s := d.String()
		resp.OffHireDate = &s
	}
	return resp
}

// jobRowToResponse maps a read-model row to the same wire representation.
func jobRowToResponse(row queries.GetJobsForRangeQueryResponse) JobResponse {
	resp := JobResponse{
		ID:            row.ID.String(),
		Date:          row.Date.String(),
		Type:          row.JobType.String(),
		Status:        row.Status.String(),
		CustomerName:  row.Details.CustomerName,
		OrderNumber:   row.Details.OrderNumber,
		ScheduledTime: row.Details.ScheduledTime,
		Address:       row.Details.Address,
		Notes:         row.Details.Notes,
		IsRecurring:   row.Details.IsRecurring,
	}
	if row.RouteID != nil {
		s := row.RouteID.String()
		resp.RouteID = &s
	}
	if row.DriverID != nil {
		s := row.DriverID.String()
		resp.DriverID = &s
	}
	if row.OffHireDate != nil {
		s := row.OffHireDate.String()
		resp.OffHireDate = &s
	}
	return resp
}
