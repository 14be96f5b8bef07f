package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"pickpoint/internal/adapters/out/postgres"
	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/application/usecases/queries"
	"pickpoint/internal/core/domain/model/recharge"
	"pickpoint/internal/core/domain/services"
	"pickpoint/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultPendingTTL = 30 * time.Minute

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	plans       recharge.Plans
	deliveryFee decimal.Decimal
	pendingTTL  time.Duration
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	plans, err := recharge.NewPlans(defaultRechargePlans())
	if err != nil {
		panic(err)
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		plans:       plans,
		deliveryFee: parseDeliveryFee(config.DeliveryFee),
		pendingTTL:  parsePendingTTL(config.RechargePendingTTLMin),
		logger:      logger,
	}
}

// defaultRechargePlans is the top-up table: money in, credits out.
// The entry prices reward larger top-ups.
func defaultRechargePlans() []recharge.Plan {
	return []recharge.Plan{
		{Amount: decimal.NewFromFloat(10.00), Credits: 7},
		{Amount: decimal.NewFromFloat(20.00), Credits: 15},
		{Amount: decimal.NewFromFloat(50.00), Credits: 40},
	}
}

func parseDeliveryFee(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.NewFromFloat(2.00)
	}
	fee, err := decimal.NewFromString(raw)
	if err != nil || !fee.IsPositive() {
		return decimal.NewFromFloat(2.00)
	}
	return fee
}

func parsePendingTTL(raw string) time.Duration {
	if raw == "" {
		return defaultPendingTTL
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 1 {
		return defaultPendingTTL
	}
	return time.Duration(minutes) * time.Minute
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewCourierSelector(), c.deliveryFee)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderStatusUoWFactory = FuncOrderStatusUoWFactory(func() commands.OrderStatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRechargeCommandHandler() commands.CreateRechargeCommandHandler {
	var f commands.RechargeUoWFactory = FuncRechargeUoWFactory(func() commands.RechargeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRechargeCommandHandler(f, c.plans)
}

func (c *CompositionRoot) CreateConfirmRechargeCommandHandler() commands.ConfirmRechargeCommandHandler {
	var f commands.RechargeUoWFactory = FuncRechargeUoWFactory(func() commands.RechargeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmRechargeCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCouriersCommandHandler() commands.AssignCouriersCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCouriersCommandHandler(f, services.NewCourierSelector())
}

func (c *CompositionRoot) CreateExpireRechargesCommandHandler() commands.ExpireRechargesCommandHandler {
	var f commands.RechargeUoWFactory = FuncRechargeUoWFactory(func() commands.RechargeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireRechargesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserBalanceQueryHandler() queries.GetUserBalanceQueryHandler {
	return queries.NewGetUserBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHasUnpaidOrderQueryHandler() queries.HasUnpaidOrderQueryHandler {
	return queries.NewHasUnpaidOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAssignCouriersCommandHandler(),
		c.CreateExpireRechargesCommandHandler(),
		c.pendingTTL,
		c.logger,
	)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderStatusUoWFactory func() commands.OrderStatusUoW

func (f FuncOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	return f()
}

type FuncRechargeUoWFactory func() commands.RechargeUoW

func (f FuncRechargeUoWFactory) Create() commands.RechargeUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}
