package queries_test

import (
	"testing"
	"time"

	"hireboard/internal/core/application/usecases/queries"
	"hireboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetJobsForRangeQuery_Valid(t *testing.T) {
	rng, err := kernel.NewDateRange(
		kernel.NewDate(2024, time.June, 3),
		kernel.NewDate(2024, time.June, 9),
	)
	require.NoError(t, err)

	query, err := queries.NewGetJobsForRangeQuery(rng)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.DateRange().Start().IsEqual(rng.Start()))
	assert.True(t, query.DateRange().End().IsEqual(rng.End()))
}

func TestNewGetJobsForRangeQuery_ZeroRange(t *testing.T) {
	_, err := queries.NewGetJobsForRangeQuery(kernel.DateRange{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrDateRangeIsNotConstructed)
}

func TestGetJobsForRangeQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetJobsForRangeQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetJobsForRangeQueryIsNotConstructed)
}
