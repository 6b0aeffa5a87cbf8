package queries_test

import (
	"testing"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByReceiverQuery_Valid(t *testing.T) {
	receiver, err := kernel.NewParty("receiver-account")
	require.NoError(t, err)

	query, err := queries.NewGetOrdersByReceiverQuery(receiver)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.Receiver().IsEqual(receiver))
}

func TestNewGetOrdersByReceiverQuery_EmptyReceiver(t *testing.T) {
	_, err := queries.NewGetOrdersByReceiverQuery(kernel.Party{})

	require.Error(t, err)
}

func TestGetOrdersByReceiverQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByReceiverQuery{}

	err := query.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByReceiverQueryIsNotConstructed)
}
