package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/request"
	"shiptrack/internal/pkg/errs"
)

func newTestRequest(t *testing.T, action request.Action) *request.PendingRequest {
	t.Helper()
	issuedBy, err := kernel.NewParty("caller")
	require.NoError(t, err)

	r, err := request.NewPendingRequest(kernel.NewUUID(), kernel.NewUUID(), action, issuedBy)
	require.NoError(t, err)
	return r
}

func TestNewPendingRequest(t *testing.T) {
	t.Run("starts in issued state", func(t *testing.T) {
		r := newTestRequest(t, request.DeliverOrder)

		assert.NoError(t, r.Validate())
		assert.Equal(t, request.Issued, r.Status())
		assert.Equal(t, request.DeliverOrder, r.Action())
		assert.Equal(t, "caller", r.IssuedBy().String())
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		issuedBy, err := kernel.NewParty("caller")
		require.NoError(t, err)

		_, err = request.NewPendingRequest(kernel.NewUUID(), kernel.NewUUID(), request.UnknownAction, issuedBy)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero identifiers are rejected", func(t *testing.T) {
		issuedBy, err := kernel.NewParty("caller")
		require.NoError(t, err)

		var zeroID kernel.UUID
		_, err = request.NewPendingRequest(zeroID, kernel.NewUUID(), request.None, issuedBy)
		require.Error(t, err)

		_, err = request.NewPendingRequest(kernel.NewUUID(), zeroID, request.None, issuedBy)
		require.Error(t, err)
	})

	t.Run("unconstructed party is rejected", func(t *testing.T) {
		var zero kernel.Party
		_, err := request.NewPendingRequest(kernel.NewUUID(), kernel.NewUUID(), request.None, zero)
		require.Error(t, err)
	})
}

func TestPendingRequest_Fulfill(t *testing.T) {
	t.Run("issued request fulfills once", func(t *testing.T) {
		r := newTestRequest(t, request.DeliverOrder)

		require.NoError(t, r.Fulfill())
		assert.Equal(t, request.Fulfilled, r.Status())
	})

	t.Run("second fulfillment is a state conflict", func(t *testing.T) {
		r := newTestRequest(t, request.DeliverOrder)
		require.NoError(t, r.Fulfill())

		err := r.Fulfill()
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, request.Fulfilled, r.Status())
	})

	t.Run("errored request cannot be fulfilled", func(t *testing.T) {
		r := newTestRequest(t, request.ConfirmOrderReceipt)
		require.NoError(t, r.MarkErrored())

		require.ErrorIs(t, r.Fulfill(), errs.ErrStateConflict)
		assert.Equal(t, request.Errored, r.Status())
	})
}

func TestPendingRequest_MarkErrored(t *testing.T) {
	t.Run("issued request errors once", func(t *testing.T) {
		r := newTestRequest(t, request.None)

		require.NoError(t, r.MarkErrored())
		assert.Equal(t, request.Errored, r.Status())
	})

	t.Run("fulfilled request cannot be errored", func(t *testing.T) {
		r := newTestRequest(t, request.None)
		require.NoError(t, r.Fulfill())

		require.ErrorIs(t, r.MarkErrored(), errs.ErrStateConflict)
	})
}

func TestRestorePendingRequest(t *testing.T) {
	issuedBy, err := kernel.NewParty("caller")
	require.NoError(t, err)

	t.Run("restores terminal status", func(t *testing.T) {
		r, restoreErr := request.RestorePendingRequest(
			kernel.NewUUID(), kernel.NewUUID(), request.DeliverOrder, issuedBy, request.Fulfilled)
		require.NoError(t, restoreErr)
		assert.Equal(t, request.Fulfilled, r.Status())
		assert.True(t, r.Status().IsTerminal())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, restoreErr := request.RestorePendingRequest(
			kernel.NewUUID(), kernel.NewUUID(), request.DeliverOrder, issuedBy, request.UnknownStatus)
		require.ErrorIs(t, restoreErr, errs.ErrValueIsInvalid)
	})
}

func TestAction_Strings(t *testing.T) {
	assert.Equal(t, "None", request.None.String())
	assert.Equal(t, "DeliverOrder", request.DeliverOrder.String())
	assert.Equal(t, "ConfirmOrderReceipt", request.ConfirmOrderReceipt.String())
	assert.Equal(t, "Unknown", request.UnknownAction.String())
	assert.Equal(t, "Unknown", request.Action(99).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, request.Issued.IsTerminal())
	assert.True(t, request.Fulfilled.IsTerminal())
	assert.True(t, request.Errored.IsTerminal())
	assert.False(t, request.UnknownStatus.IsTerminal())
}
