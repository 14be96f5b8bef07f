package commands_test

import (
	"testing"

	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/recharge"
	"pickpoint/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPlans(t *testing.T) recharge.Plans {
	t.Helper()

	plans, err := recharge.NewPlans([]recharge.Plan{
		{Amount: decimal.NewFromFloat(10.00), Credits: 7},
		{Amount: decimal.NewFromFloat(20.00), Credits: 15},
	})
	require.NoError(t, err)
	return plans
}

func TestNewCreateRechargeCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateRechargeCommand(
			kernel.NewUUID(), mustUserID(t, "user-1"), decimal.NewFromFloat(10.00),
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := commands.NewCreateRechargeCommand(
			kernel.NewUUID(), mustUserID(t, "user-1"), decimal.Zero,
		)
		require.ErrorIs(t, err, commands.ErrAmountIsInvalid)
	})

	t.Run("not constructed", func(t *testing.T) {
		var cmd commands.CreateRechargeCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateRechargeCommandIsNotConstructed)
	})
}

func TestCreateRechargeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRechargeCommand(
		kernel.NewUUID(), mustUserID(t, "user-1"), decimal.NewFromFloat(10.00),
	)
	require.NoError(t, err)

	account, err := user.RestoreUser(mustUserID(t, "user-1"), user.TypeNormal, 0)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	rechargeRepo := new(MockRechargeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, cmd.UserID()).Return(account, nil).Once(),
		uow.On("RechargeRepository").Return(rechargeRepo).Once(),
		rechargeRepo.On("Add", ctx, mock.AnythingOfType("*recharge.RechargeRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRechargeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRechargeCommandHandler(factory, testPlans(t))
	record, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, recharge.StatusPending, record.Status())
	assert.Equal(t, 7, record.CreditsGranted())
	rechargeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRechargeCommandHandler_Handle_UnknownAmount(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRechargeCommand(
		kernel.NewUUID(), mustUserID(t, "user-1"), decimal.NewFromFloat(9.99),
	)
	require.NoError(t, err)

	factory := new(MockRechargeUoWFactory)
	handler := commands.NewCreateRechargeCommandHandler(factory, testPlans(t))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, recharge.ErrNoPlanForAmount)
	factory.AssertNotCalled(t, "Create")
}
