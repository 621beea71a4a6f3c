package services_test

import (
	"testing"
	"time"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"
	"hireboard/internal/core/domain/model/route"
	"hireboard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(), job.Delivery, kernel.NewDate(2024, time.June, 1), job.Details{
		CustomerName: "Acme Plant Hire",
		OrderNumber:  "ORD-1042",
	})
	require.NoError(t, err)
	return j
}

func newTestRoute(t *testing.T, capacity int) *route.Route {
	t.Helper()
	r, err := route.NewRoute(kernel.NewUUID(), "North loop", "", capacity)
	require.NoError(t, err)
	return r
}

func placementOn(t *testing.T, r *route.Route, date kernel.Date) job.Placement {
	t.Helper()
	id := r.ID()
	p, err := job.NewPlacement(&id, date)
	require.NoError(t, err)
	return p
}

func TestAssignmentValidator_Validate(t *testing.T) {
	validator := services.NewAssignmentValidator()
	targetDate := kernel.NewDate(2024, time.June, 2)

	t.Run("approves a movable job onto a route with room", func(t *testing.T) {
		j := newTestJob(t)
		r := newTestRoute(t, 5)

		decision, err := validator.Validate(j, placementOn(t, r, targetDate), r, 2)

		require.NoError(t, err)
		assert.True(t, decision.IsValid)
		assert.Empty(t, decision.Message)
	})

	t.Run("approves a move into the unassigned bucket regardless of occupancy", func(t *testing.T) {
		j := newTestJob(t)
		target, err := job.NewUnassignedPlacement(targetDate)
		require.NoError(t, err)

		decision, err := validator.Validate(j, target, nil, 100)

		require.NoError(t, err)
		assert.True(t, decision.IsValid)
	})

	t.Run("rejects a completed job", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.Start())
		require.NoError(t, j.Complete())
		r := newTestRoute(t, 0)

		decision, err := validator.Validate(j, placementOn(t, r, targetDate), r, 0)

		require.NoError(t, err, "a rejection is a business answer, not an error")
		assert.False(t, decision.IsValid)
		assert.Contains(t, decision.Message, "completed")
	})

	t.Run("rejects a move past the off-hire date", func(t *testing.T) {
		j := newTestJob(t)
		require.NoError(t, j.MarkOffHire(kernel.NewDate(2024, time.June, 3)))
		r := newTestRoute(t, 0)

		decision, err := validator.Validate(j, placementOn(t, r, kernel.NewDate(2024, time.June, 4)), r, 0)

		require.NoError(t, err)
		assert.False(t, decision.IsValid)
		assert.Contains(t, decision.Message, "off-hired")
	})

	t.Run("rejects an unknown route", func(t *testing.T) {
		j := newTestJob(t)
		r := newTestRoute(t, 0)

		decision, err := validator.Validate(j, placementOn(t, r, targetDate), nil, 0)

		require.NoError(t, err)
		assert.False(t, decision.IsValid)
		assert.Equal(t, "Route not found", decision.Message)
	})

	t.Run("rejects a full route", func(t *testing.T) {
		j := newTestJob(t)
		r := newTestRoute(t, 3)

		decision, err := validator.Validate(j, placementOn(t, r, targetDate), r, 3)

		require.NoError(t, err)
		assert.False(t, decision.IsValid)
		assert.Equal(t, "Route at capacity", decision.Message)
	})

	t.Run("treats zero capacity as unbounded", func(t *testing.T) {
		j := newTestJob(t)
		r := newTestRoute(t, 0)

		decision, err := validator.Validate(j, placementOn(t, r, targetDate), r, 50)

		require.NoError(t, err)
		assert.True(t, decision.IsValid)
	})

	t.Run("errors on mismatched route and target", func(t *testing.T) {
		j := newTestJob(t)
		target := placementOn(t, newTestRoute(t, 0), targetDate)
		otherRoute := newTestRoute(t, 0)

		_, err := validator.Validate(j, target, otherRoute, 0)

		require.Error(t, err)
	})

	t.Run("errors on unconstructed placement", func(t *testing.T) {
		j := newTestJob(t)
		var target job.Placement

		_, err := validator.Validate(j, target, nil, 0)

		require.Error(t, err)
	})
}
