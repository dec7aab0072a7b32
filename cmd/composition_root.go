package cmd

import (
	"handmade/internal/adapters/out/postgres"
	"handmade/internal/core/application/usecases/commands"
	"handmade/internal/core/application/usecases/queries"

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
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStatusChangeCommandHandler() commands.CreateStatusChangeCommandHandler {
	var f commands.StatusChangeUoWFactory = FuncStatusChangeUoWFactory(func() commands.StatusChangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStatusChangeCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateStatusChangeCommandHandler() commands.UpdateStatusChangeCommandHandler {
	var f commands.StatusChangeUoWFactory = FuncStatusChangeUoWFactory(func() commands.StatusChangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStatusChangeCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteStatusChangeCommandHandler() commands.DeleteStatusChangeCommandHandler {
	var f commands.StatusChangeUoWFactory = FuncStatusChangeUoWFactory(func() commands.StatusChangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteStatusChangeCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateExpirePaymentsCommandHandler() commands.ExpirePaymentsCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpirePaymentsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusChangesByPageQueryHandler() queries.GetStatusChangesByPageQueryHandler {
	return queries.NewGetStatusChangesByPageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusChangesByOrderQueryHandler() queries.GetStatusChangesByOrderQueryHandler {
	return queries.NewGetStatusChangesByOrderQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStatusChangeUoWFactory func() commands.StatusChangeUoW

func (f FuncStatusChangeUoWFactory) Create() commands.StatusChangeUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
