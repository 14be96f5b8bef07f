package commands_test

import (
	"context"
	"time"

	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/domain/model/courier"
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/core/domain/model/recharge"
	"pickpoint/internal/core/domain/model/user"
	"pickpoint/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UserID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetForUpdate(ctx context.Context, id kernel.UserID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderNo(ctx context.Context, orderNo kernel.OrderNo) (*order.Order, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderNoForUpdate(ctx context.Context, orderNo kernel.OrderNo) (*order.Order, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllUnassignedInWaitingPickup(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRechargeRepository struct{ mock.Mock }

func (m *MockRechargeRepository) Add(ctx context.Context, r *recharge.RechargeRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRechargeRepository) Update(ctx context.Context, r *recharge.RechargeRecord) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRechargeRepository) Get(ctx context.Context, id kernel.UUID) (*recharge.RechargeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recharge.RechargeRecord), args.Error(1)
}

func (m *MockRechargeRepository) GetByExternalRef(ctx context.Context, externalRef string) (*recharge.RechargeRecord, error) {
	args := m.Called(ctx, externalRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recharge.RechargeRecord), args.Error(1)
}

func (m *MockRechargeRepository) GetLatestPending(
	ctx context.Context,
	userID kernel.UserID,
	amount decimal.Decimal,
) (*recharge.RechargeRecord, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recharge.RechargeRecord), args.Error(1)
}

func (m *MockRechargeRepository) GetAllPendingCreatedBefore(ctx context.Context, deadline time.Time) ([]*recharge.RechargeRecord, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recharge.RechargeRecord), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllAvailable(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockStationRepository struct{ mock.Mock }

func (m *MockStationRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockTimeSlotRepository struct{ mock.Mock }

func (m *MockTimeSlotRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every command-side unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RechargeRepository() ports.RechargeRepository {
	args := m.Called()
	return args.Get(0).(ports.RechargeRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) StationRepository() ports.StationRepository {
	args := m.Called()
	return args.Get(0).(ports.StationRepository)
}

func (m *MockUoW) TimeSlotRepository() ports.TimeSlotRepository {
	args := m.Called()
	return args.Get(0).(ports.TimeSlotRepository)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockOrderStatusUoWFactory struct{ mock.Mock }

func (m *MockOrderStatusUoWFactory) Create() commands.OrderStatusUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStatusUoW)
}

type MockRechargeUoWFactory struct{ mock.Mock }

func (m *MockRechargeUoWFactory) Create() commands.RechargeUoW {
	args := m.Called()
	return args.Get(0).(commands.RechargeUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}
