package board

import (
	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
)

// Cell is one route-by-day intersection of the grid with the jobs that sit
// in it, in stable fetch order.
type Cell struct {
	Placement job.Placement
	Jobs      []*job.Job
}

// Row is one horizontal band of the grid: a route and its cell per day.
// The unassigned row carries a nil Route.
type Row struct {
	Route *route.Route
	Cells []Cell
}

// Grid is the presentation shape of the board: one row per route plus the
// unassigned row, one column per day in the loaded range. It is a derived
// value; rebuilding it from the same state always yields the same grid.
type Grid struct {
	Days []kernel.Date
	Rows []Row

	// Unassigned is the bucket row for jobs without a route. It is always
	// present, even when empty.
	Unassigned Row
}

// Cell returns the cell at the given placement, or false if the placement
// names a route or day the grid does not have.
func (g Grid) Cell(p job.Placement) (Cell, bool) {
	col := -1
	for i, day := range g.Days {
		if day.IsEqual(p.Date()) {
			col = i
			break
		}
	}
	if col == -1 {
		return Cell{}, false
	}

	if p.IsUnassigned() {
		return g.Unassigned.Cells[col], true
	}
	for _, row := range g.Rows {
		if row.Route.ID().IsEqual(*p.RouteID()) {
			return row.Cells[col], true
		}
	}
	return Cell{}, false
}

// BuildGrid derives the presentation grid from board state. It is a pure
// transform: routes give the rows in order, the range gives the columns,
// and each job that passes the filters lands in exactly one cell. Jobs on
// an unknown route fall back to the unassigned row rather than vanishing.
//
// An invalid range yields an empty grid with no columns.
func BuildGrid(routes []*route.Route, jobs []*job.Job, rng kernel.DateRange, filters Filters) Grid {
	if rng.Validate() != nil {
		return Grid{}
	}

	days := rng.Days()

	columnByDay := make(map[kernel.Date]int, len(days))
	for i, day := range days {
		columnByDay[day] = i
	}
	rowByRoute := make(map[kernel.UUID]int, len(routes))
	for i, r := range routes {
		rowByRoute[r.ID()] = i
	}

	grid := Grid{
		Days:       days,
		Rows:       make([]Row, len(routes)),
		Unassigned: newRow(nil, days),
	}
	for i, r := range routes {
		grid.Rows[i] = newRow(r, days)
	}

	for _, j := range jobs {
		if !filters.Matches(j) {
			continue
		}
		col, ok := columnByDay[j.Date()]
		if !ok {
			continue
		}

		cell := &grid.Unassigned.Cells[col]
		if routeID := j.RouteID(); routeID != nil {
			if rowIdx, known := rowByRoute[*routeID]; known {
				cell = &grid.Rows[rowIdx].Cells[col]
			}
		}
		cell.Jobs = append(cell.Jobs, j)
	}

	return grid
}

func newRow(r *route.Route, days []kernel.Date) Row {
	row := Row{
		Route: r,
		Cells: make([]Cell, len(days)),
	}
	for i, day := range days {
		var placement job.Placement
		if r == nil {
			placement, _ = job.NewUnassignedPlacement(day)
		} else {
			id := r.ID()
			placement, _ = job.NewPlacement(&id, day)
		}
		row.Cells[i] = Cell{Placement: placement}
	}
	return row
}
