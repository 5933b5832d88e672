package cmd

import (
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkPaymentSentCommandHandler() commands.MarkPaymentSentCommandHandler {
	return commands.NewMarkPaymentSentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkAsShippedCommandHandler() commands.MarkAsShippedCommandHandler {
	return commands.NewMarkAsShippedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkAsDeliveredCommandHandler() commands.MarkAsDeliveredCommandHandler {
	return commands.NewMarkAsDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateOpenDisputeCommandHandler() commands.OpenDisputeCommandHandler {
	return commands.NewOpenDisputeCommandHandler(c.caseUoWFactory())
}

func (c *CompositionRoot) CreateStartDisputeInvestigationCommandHandler() commands.StartDisputeInvestigationCommandHandler {
	return commands.NewStartDisputeInvestigationCommandHandler(c.disputeUoWFactory())
}

func (c *CompositionRoot) CreateAddDisputeMessageCommandHandler() commands.AddDisputeMessageCommandHandler {
	return commands.NewAddDisputeMessageCommandHandler(c.disputeUoWFactory())
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	return commands.NewResolveDisputeCommandHandler(c.caseUoWFactory())
}

func (c *CompositionRoot) CreateCloseDisputeCommandHandler() commands.CloseDisputeCommandHandler {
	return commands.NewCloseDisputeCommandHandler(c.disputeUoWFactory())
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingConfirmationOrdersQueryHandler() queries.GetPendingConfirmationOrdersQueryHandler {
	return queries.NewGetPendingConfirmationOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenDisputesQueryHandler() queries.GetOpenDisputesQueryHandler {
	return queries.NewGetOpenDisputesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetResolvedDisputesQueryHandler() queries.GetResolvedDisputesQueryHandler {
	return queries.NewGetResolvedDisputesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDisputeByIDQueryHandler() queries.GetDisputeByIDQueryHandler {
	return queries.NewGetDisputeByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) disputeUoWFactory() commands.DisputeUoWFactory {
	return FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) caseUoWFactory() commands.CaseUoWFactory {
	return FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}

type FuncCaseUoWFactory func() commands.CaseUoW

func (f FuncCaseUoWFactory) Create() commands.CaseUoW {
	return f()
}
