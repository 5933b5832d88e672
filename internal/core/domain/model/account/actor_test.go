package account_test

import (
	"testing"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid actor", func(t *testing.T) {
		actor, err := account.NewActor(validID, "Awa Ndiaye", "771234567", "Dakar", account.Individual, false)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.ID().IsEqual(validID))
		assert.Equal(t, "Awa Ndiaye", actor.FullName())
		assert.Equal(t, "771234567", actor.Phone())
		assert.Equal(t, "Dakar", actor.City())
		assert.Equal(t, account.Individual, actor.AccountType())
		assert.False(t, actor.IsAdmin())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := account.NewActor(invalidID, "Awa Ndiaye", "771234567", "Dakar", account.Individual, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty full name", func(t *testing.T) {
		_, err := account.NewActor(validID, "", "771234567", "Dakar", account.Individual, false)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unknown account type", func(t *testing.T) {
		_, err := account.NewActor(validID, "Awa Ndiaye", "771234567", "Dakar", account.UnknownType, false)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var actor account.Actor
		require.ErrorIs(t, actor.Validate(), account.ErrActorIsNotConstructed)
	})
}

func TestActor_Is(t *testing.T) {
	id := kernel.NewUUID()
	actor, err := account.NewActor(id, "Moussa Fall", "781112233", "Thiès", account.Business, false)
	require.NoError(t, err)

	assert.True(t, actor.Is(id))
	assert.False(t, actor.Is(kernel.NewUUID()))
}

func TestType_CommissionRate(t *testing.T) {
	assert.InEpsilon(t, 0.08, account.Individual.CommissionRate(), 1e-9)
	assert.InEpsilon(t, 0.05, account.Business.CommissionRate(), 1e-9)
}

func TestTypeFromString(t *testing.T) {
	t.Run("parses wire names", func(t *testing.T) {
		typ, err := account.TypeFromString("individual")
		require.NoError(t, err)
		assert.Equal(t, account.Individual, typ)

		typ, err = account.TypeFromString("business")
		require.NoError(t, err)
		assert.Equal(t, account.Business, typ)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := account.TypeFromString("government")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
