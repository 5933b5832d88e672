package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func disputedOrderWithCase(t *testing.T, buyer account.Actor) (*order.Order, *dispute.Dispute) {
	t.Helper()

	ord := testOrder(t, buyer)
	require.NoError(t, ord.MarkPaymentSent())
	require.NoError(t, ord.ConfirmPayment())
	require.NoError(t, ord.OpenDispute("not_received"))

	d, err := dispute.NewDispute(
		kernel.NewUUID(), ord, buyer, dispute.NotReceived, "Le colis n'est jamais arrivé", nil)
	require.NoError(t, err)
	require.NoError(t, d.StartInvestigation())

	return ord, d
}

func TestResolveDisputeCommandHandler_Handle_RefundSettlesOrder(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, true)
	buyer := testActor(t, false)
	ord, d := disputedOrderWithCase(t, buyer)

	cmd, err := commands.NewResolveDisputeCommand(
		d.ID(), admin, dispute.Refund, 5000, "Carrier lost the parcel")
	require.NoError(t, err)

	disputeRepo := new(MockDisputeRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCaseUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		disputeRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		disputeRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResolveDisputeCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, dispute.ResolvedRefund, d.Status())
	require.NotNil(t, d.Resolution())
	assert.Equal(t, 5000, d.Resolution().Amount())
	assert.Equal(t, admin.ID(), d.Resolution().DecidedBy())

	// The contested order settled in the same transaction.
	assert.Equal(t, order.Cancelled, ord.Status())
	assert.Equal(t, "Carrier lost the parcel", ord.CancellationReason())

	disputeRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestResolveDisputeCommandHandler_Handle_SellerFavorCompletesOrder(t *testing.T) {
	ctx := t.Context()
	admin := testActor(t, true)
	buyer := testActor(t, false)
	ord, d := disputedOrderWithCase(t, buyer)

	cmd, err := commands.NewResolveDisputeCommand(
		d.ID(), admin, dispute.SellerFavor, 0, "Tracking shows delivery")
	require.NoError(t, err)

	disputeRepo := new(MockDisputeRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCaseUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		disputeRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		disputeRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResolveDisputeCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, dispute.ResolvedSeller, d.Status())
	assert.Equal(t, order.Completed, ord.Status())
	require.NotNil(t, ord.CompletedAt())
}

func TestResolveDisputeCommandHandler_Handle_NotAdmin(t *testing.T) {
	ctx := t.Context()
	buyer := testActor(t, false)

	cmd, err := commands.NewResolveDisputeCommand(
		kernel.NewUUID(), buyer, dispute.SellerFavor, 0, "note")
	require.NoError(t, err)

	factory := new(MockCaseUoWFactory)
	h := commands.NewResolveDisputeCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestNewResolveDisputeCommand_AmountOnRefundOnly(t *testing.T) {
	admin := testActor(t, true)

	_, err := commands.NewResolveDisputeCommand(
		kernel.NewUUID(), admin, dispute.SellerFavor, 5000, "note")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewResolveDisputeCommand(
		kernel.NewUUID(), admin, dispute.Refund, 5000, "note")
	require.NoError(t, err)
}

func TestOpenDisputeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyer := testActor(t, false)
	ord := testOrder(t, buyer)
	require.NoError(t, ord.MarkPaymentSent())
	require.NoError(t, ord.ConfirmPayment())

	disputeID := kernel.NewUUID()
	cmd, err := commands.NewOpenDisputeCommand(
		disputeID, ord.ID(), buyer, dispute.NotReceived, "Le colis n'est jamais arrivé", nil)
	require.NoError(t, err)

	disputeRepo := new(MockDisputeRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCaseUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		disputeRepo.On("Add", mock.Anything, mock.AnythingOfType("*dispute.Dispute")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenDisputeCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Disputed, ord.Status())
	assert.Equal(t, "not_received", ord.DisputeReason())

	disputeRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestOpenDisputeCommandHandler_Handle_StrangerDenied(t *testing.T) {
	ctx := t.Context()
	buyer := testActor(t, false)
	stranger := testActor(t, false)
	ord := testOrder(t, buyer)

	cmd, err := commands.NewOpenDisputeCommand(
		kernel.NewUUID(), ord.ID(), stranger, dispute.Damaged, "broken", nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockCaseUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenDisputeCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	assert.Equal(t, order.PendingPayment, ord.Status())
}
