package commands_test

import (
	"testing"

	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/domain/model/courier"
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/user"
	"pickpoint/internal/core/domain/services"
	"pickpoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var deliveryFee = decimal.NewFromFloat(2.00)

func buildCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), mustUserID(t, "user-1"), kernel.NewUUID(), kernel.NewUUID(), "documents",
	)
	require.NoError(t, err)
	return cmd
}

func buildPayer(t *testing.T, balance int) *user.User {
	t.Helper()

	payer, err := user.RestoreUser(mustUserID(t, "user-1"), user.TypeNormal, balance)
	require.NoError(t, err)
	return payer
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := buildCreateOrderCommand(t)

	payer := buildPayer(t, 3)
	testCourier, err := courier.RestoreCourier(kernel.NewUUID(), "Ivan", "", true)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	stationRepo := new(MockStationRepository)
	timeSlotRepo := new(MockTimeSlotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StationRepository").Return(stationRepo).Once(),
		stationRepo.On("Exists", ctx, cmd.StationID()).Return(true, nil).Once(),
		uow.On("TimeSlotRepository").Return(timeSlotRepo).Once(),
		timeSlotRepo.On("Exists", ctx, cmd.TimeSlotID()).Return(true, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetForUpdate", ctx, cmd.UserID()).Return(payer, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{testCourier}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewCourierSelector(), deliveryFee)
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, 2, payer.CreditBalance())
	require.NotNil(t, placed.Courier())
	assert.True(t, placed.Courier().IsEqual(testCourier.ID()))
	assert.True(t, placed.Amount().Equal(deliveryFee))
	assert.Len(t, placed.PickupCode(), 6)

	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NoCourierAvailable(t *testing.T) {
	ctx := t.Context()
	cmd := buildCreateOrderCommand(t)
	payer := buildPayer(t, 1)

	userRepo := new(MockUserRepository)
	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	stationRepo := new(MockStationRepository)
	timeSlotRepo := new(MockTimeSlotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StationRepository").Return(stationRepo).Once(),
		stationRepo.On("Exists", ctx, cmd.StationID()).Return(true, nil).Once(),
		uow.On("TimeSlotRepository").Return(timeSlotRepo).Once(),
		timeSlotRepo.On("Exists", ctx, cmd.TimeSlotID()).Return(true, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetForUpdate", ctx, cmd.UserID()).Return(payer, nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewCourierSelector(), deliveryFee)
	placed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Nil(t, placed.Courier())
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsufficientCredit(t *testing.T) {
	ctx := t.Context()
	cmd := buildCreateOrderCommand(t)
	payer := buildPayer(t, 0)

	userRepo := new(MockUserRepository)
	stationRepo := new(MockStationRepository)
	timeSlotRepo := new(MockTimeSlotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StationRepository").Return(stationRepo).Once(),
		stationRepo.On("Exists", ctx, cmd.StationID()).Return(true, nil).Once(),
		uow.On("TimeSlotRepository").Return(timeSlotRepo).Once(),
		timeSlotRepo.On("Exists", ctx, cmd.TimeSlotID()).Return(true, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetForUpdate", ctx, cmd.UserID()).Return(payer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewCourierSelector(), deliveryFee)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, user.ErrInsufficientCredit)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_StationNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := buildCreateOrderCommand(t)

	stationRepo := new(MockStationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StationRepository").Return(stationRepo).Once(),
		stationRepo.On("Exists", ctx, cmd.StationID()).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, services.NewCourierSelector(), deliveryFee)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnOrderNoCollision(t *testing.T) {
	ctx := t.Context()
	cmd := buildCreateOrderCommand(t)

	conflict := errs.NewConflictError("order", "202501011200001234")

	newAttemptUoW := func(addErr error, committed bool) *MockUoW {
		payer := buildPayer(t, 3)

		userRepo := new(MockUserRepository)
		orderRepo := new(MockOrderRepository)
		courierRepo := new(MockCourierRepository)
		stationRepo := new(MockStationRepository)
		timeSlotRepo := new(MockTimeSlotRepository)
		uow := new(MockUoW)

		expectations := []*mock.Call{
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("StationRepository").Return(stationRepo).Once(),
			stationRepo.On("Exists", ctx, cmd.StationID()).Return(true, nil).Once(),
			uow.On("TimeSlotRepository").Return(timeSlotRepo).Once(),
			timeSlotRepo.On("Exists", ctx, cmd.TimeSlotID()).Return(true, nil).Once(),
			uow.On("UserRepository").Return(userRepo).Once(),
			userRepo.On("GetForUpdate", ctx, cmd.UserID()).Return(payer, nil).Once(),
			userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
			uow.On("CourierRepository").Return(courierRepo).Once(),
			courierRepo.On("GetAllAvailable", ctx).Return([]*courier.Courier{}, nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(addErr).Once(),
		}
		if committed {
			expectations = append(expectations, uow.On("Commit", ctx).Return(nil).Once())
		}
		expectations = append(expectations, uow.On("Rollback", ctx).Return(nil).Once())
		mock.InOrder(expectations...)

		return uow
	}

	t.Run("second attempt succeeds", func(t *testing.T) {
		first := newAttemptUoW(conflict, false)
		second := newAttemptUoW(nil, true)

		factory := new(MockCreateOrderUoWFactory)
		factory.On("Create").Return(first).Once()
		factory.On("Create").Return(second).Once()

		handler := commands.NewCreateOrderCommandHandler(factory, services.NewCourierSelector(), deliveryFee)
		placed, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, placed)
		first.AssertExpectations(t)
		second.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		factory := new(MockCreateOrderUoWFactory)
		for range 3 {
			factory.On("Create").Return(newAttemptUoW(conflict, false)).Once()
		}

		handler := commands.NewCreateOrderCommandHandler(factory, services.NewCourierSelector(), deliveryFee)
		_, err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrOrderNoExhausted)
		factory.AssertExpectations(t)
	})
}
