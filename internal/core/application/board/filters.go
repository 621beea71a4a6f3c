package board

import (
	"strings"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
)

// Filters narrows which jobs appear on the board. Dimensions combine with
// AND; values within one dimension combine with OR. An empty dimension
// matches everything, so the zero value shows the full board.
//
// Filters affect presentation only. Filtered-out jobs stay in the store and
// keep participating in moves and server updates.
type Filters struct {
	// Routes keeps jobs assigned to any of the listed routes. Jobs in the
	// unassigned bucket have no route and so never match a non-empty
	// route set.
	Routes []kernel.UUID
	// Statuses keeps jobs whose status is any of the listed values.
	Statuses []job.Status
	// Types keeps jobs whose type is any of the listed values.
	Types []job.Type
	// Customer keeps jobs whose customer name contains this text,
	// case-insensitively.
	Customer string
}

// FilterUpdate is a partial change to the filter set. A nil field leaves
// its dimension as it is; pointing a field at an empty value clears that
// dimension.
type FilterUpdate struct {
	Routes   *[]kernel.UUID
	Statuses *[]job.Status
	Types    *[]job.Type
	Customer *string
}

// Merge applies the update on top of the receiver and returns the result.
func (f Filters) Merge(update FilterUpdate) Filters {
	if update.Routes != nil {
		f.Routes = *update.Routes
	}
	if update.Statuses != nil {
		f.Statuses = *update.Statuses
	}
	if update.Types != nil {
		f.Types = *update.Types
	}
	if update.Customer != nil {
		f.Customer = *update.Customer
	}
	return f
}

// IsZero reports whether the filters match every job.
func (f Filters) IsZero() bool {
	return len(f.Routes) == 0 && len(f.Statuses) == 0 && len(f.Types) == 0 && f.Customer == ""
}

// Matches reports whether the job passes every active dimension.
func (f Filters) Matches(j *job.Job) bool {
	if len(f.Routes) > 0 {
		routeID := j.RouteID()
		if routeID == nil || !containsRoute(f.Routes, *routeID) {
			return false
		}
	}
	if len(f.Statuses) > 0 && !containsStatus(f.Statuses, j.Status()) {
		return false
	}
	if len(f.Types) > 0 && !containsType(f.Types, j.Type()) {
		return false
	}
	if f.Customer != "" {
		name := strings.ToLower(j.Details().CustomerName)
		if !strings.Contains(name, strings.ToLower(f.Customer)) {
			return false
		}
	}
	return true
}

func containsRoute(routes []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range routes {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}

func containsStatus(statuses []job.Status, s job.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func containsType(types []job.Type, t job.Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
