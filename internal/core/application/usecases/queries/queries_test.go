package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T) account.Actor {
	t.Helper()
	actor, err := account.NewActor(
		kernel.NewUUID(), "Awa Diop", "+221770000001", "Dakar", account.Individual, false)
	require.NoError(t, err)
	return actor
}

func TestNewGetUserOrdersQuery(t *testing.T) {
	query, err := queries.NewGetUserOrdersQuery(testActor(t))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetUserOrdersQuery(account.Actor{})
	require.ErrorIs(t, err, errs.ErrAuthenticationRequired)
}

func TestGetUserOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUserOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUserOrdersQueryIsNotConstructed)
}

func TestNewGetPendingConfirmationOrdersQuery(t *testing.T) {
	query, err := queries.NewGetPendingConfirmationOrdersQuery(testActor(t))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetPendingConfirmationOrdersQuery(account.Actor{})
	require.ErrorIs(t, err, errs.ErrAuthenticationRequired)
}

func TestNewGetOrderByIDQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	actor := testActor(t)

	query, err := queries.NewGetOrderByIDQuery(orderID, actor)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
	assert.Equal(t, actor, query.Actor())

	_, err = queries.NewGetOrderByIDQuery(kernel.UUID{}, actor)
	require.Error(t, err)

	_, err = queries.NewGetOrderByIDQuery(orderID, account.Actor{})
	require.ErrorIs(t, err, errs.ErrAuthenticationRequired)
}

func TestNewGetOpenDisputesQuery(t *testing.T) {
	query, err := queries.NewGetOpenDisputesQuery(testActor(t))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	_, err = queries.NewGetOpenDisputesQuery(account.Actor{})
	require.ErrorIs(t, err, errs.ErrAuthenticationRequired)
}

func TestNewGetResolvedDisputesQuery(t *testing.T) {
	query, err := queries.NewGetResolvedDisputesQuery(testActor(t))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	var zero queries.GetResolvedDisputesQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetResolvedDisputesQueryIsNotConstructed)
}

func TestNewGetDisputeByIDQuery(t *testing.T) {
	disputeID := kernel.NewUUID()
	actor := testActor(t)

	query, err := queries.NewGetDisputeByIDQuery(disputeID, actor)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, disputeID, query.DisputeID())

	_, err = queries.NewGetDisputeByIDQuery(kernel.UUID{}, actor)
	require.Error(t, err)
}
