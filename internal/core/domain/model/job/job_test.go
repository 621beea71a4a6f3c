package job_test

import (
	"testing"
	"time"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() job.Details {
	return job.Details{
		CustomerName:  "Acme Plant Hire",
		OrderNumber:   "ORD-1042",
		ScheduledTime: "09:30",
		Address:       "14 Quarry Lane",
		Notes:         "gate code 4417",
	}
}

func TestNewJob(t *testing.T) {
	validID := kernel.NewUUID()
	validDate := kernel.NewDate(2024, time.June, 1)

	t.Run("should create valid job with all valid parameters", func(t *testing.T) {
		j, err := job.NewJob(validID, job.Delivery, validDate, validDetails())

		require.NoError(t, err)
		require.NoError(t, j.Validate())
		assert.True(t, j.ID().IsEqual(validID))
		assert.Equal(t, job.Delivery, j.Type())
		assert.Equal(t, job.Scheduled, j.Status())
		assert.True(t, j.Date().IsEqual(validDate))
		assert.Nil(t, j.RouteID(), "new jobs start unassigned")
		assert.Nil(t, j.Driver())
		assert.Nil(t, j.OffHireDate())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		j, err := job.NewJob(invalidID, job.Delivery, validDate, validDetails())

		require.Error(t, err)
		assert.Nil(t, j)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid job type", func(t *testing.T) {
		j, err := job.NewJob(validID, job.UnknownType, validDate, validDetails())

		require.Error(t, err)
		assert.Nil(t, j)
		assert.Contains(t, err.Error(), "job type")
	})

	t.Run("should fail with zero date", func(t *testing.T) {
		var invalidDate kernel.Date

		j, err := job.NewJob(validID, job.Delivery, invalidDate, validDetails())

		require.Error(t, err)
		assert.Nil(t, j)
	})

	t.Run("should fail without customer name", func(t *testing.T) {
		details := validDetails()
		details.CustomerName = ""

		_, err := job.NewJob(validID, job.Delivery, validDate, details)

		require.ErrorIs(t, err, job.ErrCustomerNameIsRequired)
	})

	t.Run("should fail without order number", func(t *testing.T) {
		details := validDetails()
		details.OrderNumber = ""

		_, err := job.NewJob(validID, job.Delivery, validDate, details)

		require.ErrorIs(t, err, job.ErrOrderNumberIsRequired)
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidDate kernel.Date

		j, err := job.NewJob(invalidID, job.UnknownType, invalidDate, job.Details{})

		require.Error(t, err)
		assert.Nil(t, j)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "job type")
	})
}

func TestRestoreJob(t *testing.T) {
	jobID := kernel.NewUUID()
	routeID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	date := kernel.NewDate(2024, time.June, 1)
	offHire := kernel.NewDate(2024, time.June, 15)

	t.Run("should restore fully populated job", func(t *testing.T) {
		j, err := job.RestoreJob(jobID, &routeID, date, job.Collection, job.InProgress,
			validDetails(), &driverID, &offHire)

		require.NoError(t, err)
		require.NoError(t, j.Validate())
		require.NotNil(t, j.RouteID())
		assert.True(t, j.RouteID().IsEqual(routeID))
		assert.Equal(t, job.InProgress, j.Status())
		require.NotNil(t, j.Driver())
		assert.True(t, j.Driver().IsEqual(driverID))
		require.NotNil(t, j.OffHireDate())
		assert.True(t, j.OffHireDate().IsEqual(offHire))
	})

	t.Run("should restore unassigned job", func(t *testing.T) {
		j, err := job.RestoreJob(jobID, nil, date, job.Service, job.Scheduled,
			validDetails(), nil, nil)

		require.NoError(t, err)
		assert.Nil(t, j.RouteID())
		assert.True(t, j.Placement().IsUnassigned())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := job.RestoreJob(jobID, nil, date, job.Service, job.UnknownStatus,
			validDetails(), nil, nil)

		require.Error(t, err)
	})

	t.Run("should fail with zero route id", func(t *testing.T) {
		var zeroRoute kernel.UUID

		_, err := job.RestoreJob(jobID, &zeroRoute, date, job.Service, job.Scheduled,
			validDetails(), nil, nil)

		require.Error(t, err)
	})
}

func TestJob_Validate(t *testing.T) {
	t.Run("should fail validation for nil job", func(t *testing.T) {
		var j *job.Job

		err := j.Validate()

		require.Error(t, err)
		assert.Equal(t, job.ErrJobIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value job", func(t *testing.T) {
		j := &job.Job{}

		err := j.Validate()

		require.Error(t, err)
		assert.Equal(t, job.ErrJobIsNotConstructed, err)
	})
}

func TestJob_Reassign(t *testing.T) {
	date := kernel.NewDate(2024, time.June, 1)
	targetDate := kernel.NewDate(2024, time.June, 2)
	routeID := kernel.NewUUID()

	newJob := func(t *testing.T) *job.Job {
		t.Helper()
		j, err := job.NewJob(kernel.NewUUID(), job.Delivery, date, validDetails())
		require.NoError(t, err)
		return j
	}

	t.Run("should move job to a route and date atomically", func(t *testing.T) {
		j := newJob(t)
		target, err := job.NewPlacement(&routeID, targetDate)
		require.NoError(t, err)

		require.NoError(t, j.Reassign(target))

		require.NotNil(t, j.RouteID())
		assert.True(t, j.RouteID().IsEqual(routeID))
		assert.True(t, j.Date().IsEqual(targetDate))
		assert.True(t, j.Placement().IsEqual(target))
	})

	t.Run("should move job back to the unassigned bucket", func(t *testing.T) {
		j := newJob(t)
		assigned, err := job.NewPlacement(&routeID, targetDate)
		require.NoError(t, err)
		require.NoError(t, j.Reassign(assigned))

		unassigned, err := job.NewUnassignedPlacement(date)
		require.NoError(t, err)

		require.NoError(t, j.Reassign(unassigned))
		assert.Nil(t, j.RouteID())
		assert.True(t, j.Date().IsEqual(date))
	})

	t.Run("should allow reassigning an in-progress job", func(t *testing.T) {
		j := newJob(t)
		require.NoError(t, j.Start())

		target, err := job.NewPlacement(&routeID, targetDate)
		require.NoError(t, err)

		require.NoError(t, j.Reassign(target))
	})

	t.Run("should reject reassigning a completed job", func(t *testing.T) {
		j := newJob(t)
		require.NoError(t, j.Start())
		require.NoError(t, j.Complete())

		target, err := job.NewPlacement(&routeID, targetDate)
		require.NoError(t, err)

		err = j.Reassign(target)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "completed is not a valid status to reassign")
	})

	t.Run("should reject reassigning a cancelled job", func(t *testing.T) {
		j := newJob(t)
		require.NoError(t, j.Cancel())

		target, err := job.NewPlacement(&routeID, targetDate)
		require.NoError(t, err)

		require.Error(t, j.Reassign(target))
	})

	t.Run("should reject moving past the off-hire date", func(t *testing.T) {
		j := newJob(t)
		require.NoError(t, j.MarkOffHire(kernel.NewDate(2024, time.June, 3)))

		target, err := job.NewPlacement(&routeID, kernel.NewDate(2024, time.June, 4))
		require.NoError(t, err)

		err = j.Reassign(target)

		require.ErrorIs(t, err, job.ErrMoveAfterOffHire)
	})

	t.Run("should allow moving onto the off-hire date itself", func(t *testing.T) {
		j := newJob(t)
		require.NoError(t, j.MarkOffHire(kernel.NewDate(2024, time.June, 3)))

		target, err := job.NewPlacement(&routeID, kernel.NewDate(2024, time.June, 3))
		require.NoError(t, err)

		require.NoError(t, j.Reassign(target))
	})

	t.Run("should reject unconstructed placement", func(t *testing.T) {
		j := newJob(t)
		var target job.Placement

		require.Error(t, j.Reassign(target))
	})
}

func TestJob_AssignDriver(t *testing.T) {
	date := kernel.NewDate(2024, time.June, 1)

	t.Run("should assign driver to scheduled job", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Delivery, date, validDetails())
		require.NoError(t, err)
		driverID := kernel.NewUUID()

		require.NoError(t, j.AssignDriver(driverID))

		require.NotNil(t, j.Driver())
		assert.True(t, j.Driver().IsEqual(driverID))
	})

	t.Run("should replace a previously assigned driver", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Delivery, date, validDetails())
		require.NoError(t, err)
		require.NoError(t, j.AssignDriver(kernel.NewUUID()))
		replacement := kernel.NewUUID()

		require.NoError(t, j.AssignDriver(replacement))

		assert.True(t, j.Driver().IsEqual(replacement))
	})

	t.Run("should reject driver on cancelled job", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Delivery, date, validDetails())
		require.NoError(t, err)
		require.NoError(t, j.Cancel())

		require.Error(t, j.AssignDriver(kernel.NewUUID()))
	})

	t.Run("should reject zero driver id", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Delivery, date, validDetails())
		require.NoError(t, err)
		var zeroID kernel.UUID

		require.Error(t, j.AssignDriver(zeroID))
	})
}

func TestJob_MarkOffHire(t *testing.T) {
	date := kernel.NewDate(2024, time.June, 1)

	t.Run("should record off-hire date", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Collection, date, validDetails())
		require.NoError(t, err)
		offHire := kernel.NewDate(2024, time.June, 15)

		require.NoError(t, j.MarkOffHire(offHire))

		require.NotNil(t, j.OffHireDate())
		assert.True(t, j.OffHireDate().IsEqual(offHire))
	})

	t.Run("should reject off-hire before scheduled date", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Collection, date, validDetails())
		require.NoError(t, err)

		err = j.MarkOffHire(kernel.NewDate(2024, time.May, 30))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "before scheduled date")
	})

	t.Run("should reject off-hire on completed job", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Collection, date, validDetails())
		require.NoError(t, err)
		require.NoError(t, j.Start())
		require.NoError(t, j.Complete())

		require.Error(t, j.MarkOffHire(kernel.NewDate(2024, time.June, 15)))
	})
}

func TestJob_Lifecycle(t *testing.T) {
	date := kernel.NewDate(2024, time.June, 1)

	t.Run("should walk scheduled through completed", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Service, date, validDetails())
		require.NoError(t, err)

		require.NoError(t, j.Start())
		assert.Equal(t, job.InProgress, j.Status())

		require.NoError(t, j.Complete())
		assert.Equal(t, job.Completed, j.Status())
	})

	t.Run("should not complete a job that was never started", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Service, date, validDetails())
		require.NoError(t, err)

		require.Error(t, j.Complete())
	})

	t.Run("should cancel from scheduled and in-progress", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Service, date, validDetails())
		require.NoError(t, err)
		require.NoError(t, j.Cancel())
		assert.Equal(t, job.Cancelled, j.Status())

		j2, err := job.NewJob(kernel.NewUUID(), job.Service, date, validDetails())
		require.NoError(t, err)
		require.NoError(t, j2.Start())
		require.NoError(t, j2.Cancel())
	})

	t.Run("should not cancel twice", func(t *testing.T) {
		j, err := job.NewJob(kernel.NewUUID(), job.Service, date, validDetails())
		require.NoError(t, err)
		require.NoError(t, j.Cancel())

		require.Error(t, j.Cancel())
	})
}

func TestJob_IsEqual(t *testing.T) {
	date := kernel.NewDate(2024, time.June, 1)
	id := kernel.NewUUID()

	first, err := job.NewJob(id, job.Delivery, date, validDetails())
	require.NoError(t, err)
	same, err := job.NewJob(id, job.Collection, date, validDetails())
	require.NoError(t, err)
	other, err := job.NewJob(kernel.NewUUID(), job.Delivery, date, validDetails())
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same), "equality is by identifier")
	assert.False(t, first.IsEqual(other))
	assert.False(t, first.IsEqual(nil))
}
