package queries_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetDistanceThresholdQuery_Valid(t *testing.T) {
	query := queries.NewGetDistanceThresholdQuery()

	err := query.Validate()

	require.NoError(t, err)
}

func TestGetDistanceThresholdQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDistanceThresholdQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDistanceThresholdQueryIsNotConstructed)
}
