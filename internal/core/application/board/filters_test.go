package board_test

import (
	"testing"
	"time"

	"hireboard/internal/core/application/board"
	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilters_Matches(t *testing.T) {
	date := kernel.NewDate(2024, time.June, 5)

	newJob := func(t *testing.T, jobType job.Type, customer string) *job.Job {
		t.Helper()
		j, err := job.NewJob(kernel.NewUUID(), jobType, date, job.Details{
			CustomerName: customer,
			OrderNumber:  "ORD-77",
		})
		require.NoError(t, err)
		return j
	}

	t.Run("zero filters should match everything", func(t *testing.T) {
		j := newJob(t, job.Delivery, "Acme Plant Hire")

		assert.True(t, board.Filters{}.IsZero())
		assert.True(t, board.Filters{}.Matches(j))
	})

	t.Run("values within a dimension should combine with OR", func(t *testing.T) {
		delivery := newJob(t, job.Delivery, "Acme Plant Hire")
		collection := newJob(t, job.Collection, "Acme Plant Hire")
		service := newJob(t, job.Service, "Acme Plant Hire")

		filters := board.Filters{Types: []job.Type{job.Delivery, job.Collection}}

		assert.True(t, filters.Matches(delivery))
		assert.True(t, filters.Matches(collection))
		assert.False(t, filters.Matches(service))
	})

	t.Run("dimensions should combine with AND", func(t *testing.T) {
		j := newJob(t, job.Delivery, "Acme Plant Hire")

		match := board.Filters{
			Types:    []job.Type{job.Delivery},
			Statuses: []job.Status{job.Scheduled},
		}
		mismatch := board.Filters{
			Types:    []job.Type{job.Delivery},
			Statuses: []job.Status{job.Completed},
		}

		assert.True(t, match.Matches(j))
		assert.False(t, mismatch.Matches(j))
	})

	t.Run("customer text should match case-insensitively on substrings", func(t *testing.T) {
		j := newJob(t, job.Delivery, "Acme Plant Hire")

		assert.True(t, board.Filters{Customer: "acme"}.Matches(j))
		assert.True(t, board.Filters{Customer: "PLANT"}.Matches(j))
		assert.False(t, board.Filters{Customer: "globex"}.Matches(j))
	})

	t.Run("route filter should match any listed route", func(t *testing.T) {
		routeA := makeRoute(t, "North loop")
		routeB := makeRoute(t, "South loop")
		routeC := makeRoute(t, "Depot run")

		onA := makeJob(t, routeA, date)
		onB := makeJob(t, routeB, date)
		onC := makeJob(t, routeC, date)

		filters := board.Filters{Routes: []kernel.UUID{routeA.ID(), routeB.ID()}}

		assert.True(t, filters.Matches(onA))
		assert.True(t, filters.Matches(onB))
		assert.False(t, filters.Matches(onC))
	})

	t.Run("route filter should exclude the unassigned bucket", func(t *testing.T) {
		r := makeRoute(t, "North loop")
		unassigned := makeJob(t, nil, date)

		assert.False(t, board.Filters{Routes: []kernel.UUID{r.ID()}}.Matches(unassigned))
		assert.True(t, board.Filters{}.Matches(unassigned))
	})

	t.Run("route and status filters should each be able to exclude", func(t *testing.T) {
		routeA := makeRoute(t, "North loop")
		routeB := makeRoute(t, "South loop")

		scheduledOnA := makeJob(t, routeA, date)
		inProgressOnA := makeJob(t, routeA, date)
		require.NoError(t, inProgressOnA.Start())
		scheduledOnB := makeJob(t, routeB, date)

		filters := board.Filters{
			Routes:   []kernel.UUID{routeA.ID()},
			Statuses: []job.Status{job.Scheduled},
		}

		assert.True(t, filters.Matches(scheduledOnA))
		assert.False(t, filters.Matches(inProgressOnA), "status must fail on route A")
		assert.False(t, filters.Matches(scheduledOnB), "route must fail despite the status")
	})

	t.Run("status filter should track status changes", func(t *testing.T) {
		j := newJob(t, job.Delivery, "Acme Plant Hire")
		filters := board.Filters{Statuses: []job.Status{job.InProgress}}

		assert.False(t, filters.Matches(j))
		require.NoError(t, j.Start())
		assert.True(t, filters.Matches(j))
	})
}
