package dispute_test

import (
	"testing"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Strings(t *testing.T) {
	assert.Equal(t, "open", dispute.Open.String())
	assert.Equal(t, "investigating", dispute.Investigating.String())
	assert.Equal(t, "resolved_refund", dispute.ResolvedRefund.String())
	assert.Equal(t, "resolved_buyer", dispute.ResolvedBuyer.String())
	assert.Equal(t, "resolved_seller", dispute.ResolvedSeller.String())
	assert.Equal(t, "closed", dispute.Closed.String())
	assert.Equal(t, "unknown", dispute.Unknown.String())
	assert.Equal(t, "unknown", dispute.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range []dispute.Status{
		dispute.Open, dispute.Investigating, dispute.ResolvedRefund,
		dispute.ResolvedBuyer, dispute.ResolvedSeller, dispute.Closed,
	} {
		require.NoError(t, status.Validate(), "status %s", status)
	}

	require.ErrorIs(t, dispute.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, dispute.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatusFromString(t *testing.T) {
	status, err := dispute.StatusFromString("resolved_refund")
	require.NoError(t, err)
	assert.Equal(t, dispute.ResolvedRefund, status)

	_, err = dispute.StatusFromString("escalated")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_IsResolved(t *testing.T) {
	assert.True(t, dispute.ResolvedRefund.IsResolved())
	assert.True(t, dispute.ResolvedBuyer.IsResolved())
	assert.True(t, dispute.ResolvedSeller.IsResolved())

	assert.False(t, dispute.Open.IsResolved())
	assert.False(t, dispute.Investigating.IsResolved())
	assert.False(t, dispute.Closed.IsResolved())
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("full case flow", func(t *testing.T) {
		status, err := dispute.Open.StartInvestigation()
		require.NoError(t, err)
		assert.Equal(t, dispute.Investigating, status)

		status, err = status.Resolve(dispute.ResolvedSeller)
		require.NoError(t, err)
		assert.Equal(t, dispute.ResolvedSeller, status)

		status, err = status.Close()
		require.NoError(t, err)
		assert.Equal(t, dispute.Closed, status)
		assert.True(t, status.IsTerminal())
	})

	t.Run("cannot resolve straight from open", func(t *testing.T) {
		_, err := dispute.Open.Resolve(dispute.ResolvedRefund)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("resolution outcome must be a resolved status", func(t *testing.T) {
		_, err := dispute.Investigating.Resolve(dispute.Closed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("cannot close an unresolved case", func(t *testing.T) {
		_, err := dispute.Open.Close()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = dispute.Investigating.Close()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cannot reinvestigate a resolved case", func(t *testing.T) {
		_, err := dispute.ResolvedRefund.StartInvestigation()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
