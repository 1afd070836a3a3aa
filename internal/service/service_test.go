package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/models"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/repository"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/service"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/testutil"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var startingBalance = decimal.NewFromInt(100)

// fixedFlipper всегда выдает заданную сторону.
type fixedFlipper struct {
	side models.Side
}

func (f fixedFlipper) Flip() models.Side { return f.side }

func TestService_Play_Win_Integration(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewGamePGRepository(pool, testLogger)
	svc := service.NewGameService(repo, fixedFlipper{side: models.SideHeads}, startingBalance, testLogger)

	player, err := svc.GetOrCreatePlayer(context.Background(), 101, "alice")
	assert.NoError(t, err)
	assert.True(t, player.Balance.Equal(startingBalance))

	updated, res, err := svc.Play(context.Background(), player.ID, decimal.NewFromInt(20), models.SideHeads)
	assert.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, models.SideHeads, res.ResultSide)
	assert.True(t, res.WinAmount.Equal(decimal.NewFromInt(40)))
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 1, updated.TotalGames)
	assert.Equal(t, 1, updated.Wins)
	assert.True(t, updated.TotalWinnings.Equal(decimal.NewFromInt(40)))
}

func TestService_Play_Loss_Integration(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewGamePGRepository(pool, testLogger)
	svc := service.NewGameService(repo, fixedFlipper{side: models.SideTails}, startingBalance, testLogger)

	player, err := svc.GetOrCreatePlayer(context.Background(), 102, "bob")
	assert.NoError(t, err)

	updated, res, err := svc.Play(context.Background(), player.ID, decimal.NewFromInt(20), models.SideHeads)
	assert.NoError(t, err)
	assert.False(t, res.Won)
	assert.Equal(t, models.SideTails, res.ResultSide)
	assert.True(t, res.WinAmount.Equal(decimal.Zero))
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 1, updated.TotalGames)
	assert.Equal(t, 0, updated.Wins)
}

func TestService_Play_InsufficientBalance(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewGamePGRepository(pool, testLogger)
	svc := service.NewGameService(repo, fixedFlipper{side: models.SideHeads}, startingBalance, testLogger)

	player, err := svc.GetOrCreatePlayer(context.Background(), 103, "carol")
	assert.NoError(t, err)

	_, _, err = svc.Play(context.Background(), player.ID, decimal.NewFromInt(1000), models.SideHeads)
	assert.ErrorIs(t, err, repository.ErrInsufficientBalance)

	unchanged, err := svc.GetOrCreatePlayer(context.Background(), 103, "carol")
	assert.NoError(t, err)
	assert.True(t, unchanged.Balance.Equal(startingBalance))
	assert.Equal(t, 0, unchanged.TotalGames)
}

func TestService_Play_InvalidInput(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewGamePGRepository(pool, testLogger)
	svc := service.NewGameService(repo, fixedFlipper{side: models.SideHeads}, startingBalance, testLogger)

	_, _, err := svc.Play(context.Background(), 1, decimal.Zero, models.SideHeads)
	assert.ErrorIs(t, err, repository.ErrInvalidAmount)

	_, _, err = svc.Play(context.Background(), 1, decimal.NewFromInt(-5), models.SideHeads)
	assert.ErrorIs(t, err, repository.ErrInvalidAmount)

	_, _, err = svc.Play(context.Background(), 1, decimal.NewFromInt(5), models.Side("edge"))
	assert.ErrorIs(t, err, repository.ErrInvalidSide)
}

func TestService_CreateDeposit_Memo(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewGamePGRepository(pool, testLogger)
	svc := service.NewGameService(repo, service.NewRandFlipper(), startingBalance, testLogger)

	player, err := svc.GetOrCreatePlayer(context.Background(), 104, "dave")
	assert.NoError(t, err)

	txID, memo, err := svc.CreateDeposit(context.Background(), player.ID, decimal.NewFromInt(10))
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("DEPOSIT_%d", txID), memo)
}

func TestService_CreateWithdrawal_Integration(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewGamePGRepository(pool, testLogger)
	svc := service.NewGameService(repo, service.NewRandFlipper(), startingBalance, testLogger)

	player, err := svc.GetOrCreatePlayer(context.Background(), 105, "eve")
	assert.NoError(t, err)

	txID, err := svc.CreateWithdrawal(context.Background(), player.ID, decimal.NewFromInt(60), "UQAddr")
	assert.NoError(t, err)
	assert.Greater(t, txID, int64(0))

	// Баланс уменьшается сразу, повторный вывод сверх остатка отклоняется
	_, err = svc.CreateWithdrawal(context.Background(), player.ID, decimal.NewFromInt(60), "UQAddr")
	assert.ErrorIs(t, err, repository.ErrInsufficientBalance)

	_, err = svc.CreateWithdrawal(context.Background(), player.ID, decimal.Zero, "UQAddr")
	assert.ErrorIs(t, err, repository.ErrInvalidAmount)
}

func TestService_SettleTransaction_InvalidStatus(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewGamePGRepository(pool, testLogger)
	svc := service.NewGameService(repo, service.NewRandFlipper(), startingBalance, testLogger)

	err := svc.SettleTransaction(context.Background(), 1, models.StatusPending)
	assert.Error(t, err)
}

func TestService_GetOrCreatePlayer_Idempotent(t *testing.T) {
	pool, teardown := testutil.SetupTestDB(t)
	defer teardown()
	repo := repository.NewGamePGRepository(pool, testLogger)
	svc := service.NewGameService(repo, service.NewRandFlipper(), startingBalance, testLogger)

	first, err := svc.GetOrCreatePlayer(context.Background(), 106, "frank")
	assert.NoError(t, err)
	second, err := svc.GetOrCreatePlayer(context.Background(), 106, "frank")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
