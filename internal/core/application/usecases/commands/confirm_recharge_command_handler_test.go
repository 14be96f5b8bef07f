package commands_test

import (
	"testing"
	"time"

	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/recharge"
	"pickpoint/internal/core/domain/model/user"
	"pickpoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildPendingRecord(t *testing.T) *recharge.RechargeRecord {
	t.Helper()

	record, err := recharge.NewRecord(
		kernel.NewUUID(), mustUserID(t, "user-1"), decimal.NewFromFloat(10.00), 7, time.Now(),
	)
	require.NoError(t, err)
	return record
}

func buildConfirmCommand(t *testing.T) commands.ConfirmRechargeCommand {
	t.Helper()

	cmd, err := commands.NewConfirmRechargeCommand(
		mustUserID(t, "user-1"), decimal.NewFromFloat(10.00), "wx-tx-001",
	)
	require.NoError(t, err)
	return cmd
}

func TestNewConfirmRechargeCommand(t *testing.T) {
	t.Run("requires external ref", func(t *testing.T) {
		_, err := commands.NewConfirmRechargeCommand(
			mustUserID(t, "user-1"), decimal.NewFromFloat(10.00), "",
		)
		require.ErrorIs(t, err, commands.ErrExternalRefIsRequired)
	})

	t.Run("not constructed", func(t *testing.T) {
		var cmd commands.ConfirmRechargeCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrConfirmRechargeCommandIsNotConstructed)
	})
}

func TestConfirmRechargeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := buildConfirmCommand(t)

	record := buildPendingRecord(t)
	account, err := user.RestoreUser(mustUserID(t, "user-1"), user.TypeNormal, 1)
	require.NoError(t, err)

	rechargeRepo := new(MockRechargeRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RechargeRepository").Return(rechargeRepo).Once(),
		rechargeRepo.On("GetByExternalRef", ctx, "wx-tx-001").
			Return(nil, errs.NewObjectNotFoundError("recharge", "wx-tx-001")).Once(),
		rechargeRepo.On("GetLatestPending", ctx, cmd.UserID(), cmd.Amount()).Return(record, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetForUpdate", ctx, record.UserID()).Return(account, nil).Once(),
		rechargeRepo.On("Update", ctx, mock.AnythingOfType("*recharge.RechargeRecord")).Return(nil).Once(),
		userRepo.On("Update", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRechargeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmRechargeCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, recharge.StatusSuccess, record.Status())
	assert.Equal(t, 8, account.CreditBalance())
	require.NotNil(t, record.ExternalRef())
	assert.Equal(t, "wx-tx-001", *record.ExternalRef())
	rechargeRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmRechargeCommandHandler_Handle_ReplayedCallback(t *testing.T) {
	ctx := t.Context()
	cmd := buildConfirmCommand(t)

	confirmed := buildPendingRecord(t)
	require.NoError(t, confirmed.Confirm("wx-tx-001", time.Now()))

	rechargeRepo := new(MockRechargeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RechargeRepository").Return(rechargeRepo).Once(),
		rechargeRepo.On("GetByExternalRef", ctx, "wx-tx-001").Return(confirmed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRechargeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmRechargeCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, recharge.ErrAlreadyFinalized)
	uow.AssertNotCalled(t, "Commit", ctx)
	rechargeRepo.AssertNotCalled(t, "GetLatestPending", ctx, cmd.UserID(), cmd.Amount())
}

func TestConfirmRechargeCommandHandler_Handle_ConcurrentConfirmCreditsOnce(t *testing.T) {
	// Two callbacks for the same payment can both read the record while it is
	// still pending. The status write is a compare-and-swap on pending, so the
	// transaction that loses the race gets ErrAlreadyFinalized from the
	// repository and must roll back without touching the balance.
	ctx := t.Context()
	cmd := buildConfirmCommand(t)

	record := buildPendingRecord(t)
	account, err := user.RestoreUser(mustUserID(t, "user-1"), user.TypeNormal, 7)
	require.NoError(t, err)

	rechargeRepo := new(MockRechargeRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RechargeRepository").Return(rechargeRepo).Once(),
		rechargeRepo.On("GetByExternalRef", ctx, "wx-tx-001").
			Return(nil, errs.NewObjectNotFoundError("recharge", "wx-tx-001")).Once(),
		rechargeRepo.On("GetLatestPending", ctx, cmd.UserID(), cmd.Amount()).Return(record, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetForUpdate", ctx, record.UserID()).Return(account, nil).Once(),
		rechargeRepo.On("Update", ctx, mock.AnythingOfType("*recharge.RechargeRecord")).
			Return(recharge.ErrAlreadyFinalized).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRechargeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmRechargeCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, recharge.ErrAlreadyFinalized)
	userRepo.AssertNotCalled(t, "Update", ctx, mock.AnythingOfType("*user.User"))
	uow.AssertNotCalled(t, "Commit", ctx)
	rechargeRepo.AssertExpectations(t)
}

func TestConfirmRechargeCommandHandler_Handle_NoPendingRecord(t *testing.T) {
	ctx := t.Context()
	cmd := buildConfirmCommand(t)

	rechargeRepo := new(MockRechargeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RechargeRepository").Return(rechargeRepo).Once(),
		rechargeRepo.On("GetByExternalRef", ctx, "wx-tx-001").
			Return(nil, errs.NewObjectNotFoundError("recharge", "wx-tx-001")).Once(),
		rechargeRepo.On("GetLatestPending", ctx, cmd.UserID(), cmd.Amount()).
			Return(nil, errs.NewObjectNotFoundError("recharge", "user-1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRechargeUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmRechargeCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
