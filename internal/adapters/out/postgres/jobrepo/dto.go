// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// This package implements the repository pattern for the job domain aggregate, handling
// the conversion between domain entities and database representations.
package jobrepo

import (
	"time"

	"hireboard/internal/core/domain/model/job"
	"hireboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Maps job domain entities to relational database tables with indexing for
// the board's dominant access path: all jobs inside a date range.
type JobDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RouteID       *uuid.UUID `gorm:"type:uuid;index"`
	Date          time.Time  `gorm:"type:date;index"`
	JobType       int
	Status        int `gorm:"index"`
	CustomerName  string
	OrderNumber   string
	ScheduledTime string
	Address       string
	Notes         string
	IsRecurring   bool
	DriverID      *uuid.UUID `gorm:"type:uuid"`
	OffHireDate   *time.Time `gorm:"type:date"`

	// CreatedAt gives jobs their stable fetch order on the board.
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	var routeID *uuid.UUID
	if id := aggregate.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var offHire *time.Time
	if d := aggregate.OffHireDate(); d != nil {
		raw := d.Time()
		offHire = &raw
	}

	details := aggregate.Details()
	return JobDTO{
		ID:            aggregate.ID().Bytes(),
		RouteID:       routeID,
		Date:          aggregate.Date().Time(),
		JobType:       int(aggregate.Type()),
		Status:        int(aggregate.Status()),
		CustomerName:  details.CustomerName,
		OrderNumber:   details.OrderNumber,
		ScheduledTime: details.ScheduledTime,
		Address:       details.Address,
		Notes:         details.Notes,
		IsRecurring:   details.IsRecurring,
		DriverID:      driverID,
		OffHireDate:   offHire,
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate including optional route, driver, and
// off-hire assignments using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, routeErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if routeErr != nil {
			return nil, routeErr
		}

		routeID = &rID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	var offHire *kernel.Date
	if dto.OffHireDate != nil {
		d := kernel.DateOf(*dto.OffHireDate)
		offHire = &d
	}

	return job.RestoreJob(
		id,
		routeID,
		kernel.DateOf(dto.Date),
		job.Type(dto.JobType),
		job.Status(dto.Status),
		job.Details{
			CustomerName:  dto.CustomerName,
			OrderNumber:   dto.OrderNumber,
			ScheduledTime: dto.ScheduledTime,
			Address:       dto.Address,
			Notes:         dto.Notes,
			IsRecurring:   dto.IsRecurring,
		},
		driverID,
		offHire,
	)
}
