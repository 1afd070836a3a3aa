package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/models"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/repository"
)

//go:generate mockgen -source=service.go -destination=../../test/mock_game_repository.go -package=test GameRepository

type GameRepository interface {
	GetOrCreatePlayer(ctx context.Context, telegramID int64, username string, startingBalance decimal.Decimal) (*models.Player, error)
	GetPlayer(ctx context.Context, playerID int64) (*models.Player, error)
	ResolveBet(ctx context.Context, playerID int64, res models.BetResult) (*models.Player, error)
	CreateDeposit(ctx context.Context, playerID int64, amount decimal.Decimal) (int64, error)
	CreateWithdrawal(ctx context.Context, playerID int64, amount decimal.Decimal, tonAddress string) (int64, error)
	SettleTransaction(ctx context.Context, transactionID int64, status models.TransactionStatus) error
}

// Flipper — источник случайного исхода. Подменяется в тестах,
// чтобы проверять арифметику выплат детерминированно.
type Flipper interface {
	Flip() models.Side
}

type randFlipper struct{}

func (randFlipper) Flip() models.Side {
	if rand.IntN(2) == 0 {
		return models.SideHeads
	}
	return models.SideTails
}

// NewRandFlipper возвращает честную монету на math/rand/v2.
func NewRandFlipper() Flipper {
	return randFlipper{}
}

type GameService struct {
	repo            GameRepository
	flipper         Flipper
	logger          *slog.Logger
	startingBalance decimal.Decimal
	maxRetries      int
}

func NewGameService(repo GameRepository, flipper Flipper, startingBalance decimal.Decimal, logger *slog.Logger) *GameService {
	return &GameService{
		repo:            repo,
		flipper:         flipper,
		logger:          logger,
		startingBalance: startingBalance,
		maxRetries:      3,
	}
}

func (s *GameService) GetOrCreatePlayer(ctx context.Context, telegramID int64, username string) (*models.Player, error) {
	player, err := s.repo.GetOrCreatePlayer(ctx, telegramID, username, s.startingBalance)
	if err != nil {
		s.logger.Error("GetOrCreatePlayer failed",
			slog.Int64("telegram_id", telegramID),
			slog.Any("err", err),
		)
		return nil, err
	}
	return player, nil
}

// Play разыгрывает ставку: бросок монеты, расчет выплаты и атомарная
// фиксация в репозитории. При выигрыше возврат 2x от ставки
// (чистый выигрыш равен ставке), при проигрыше ставка списывается.
func (s *GameService) Play(
	ctx context.Context,
	playerID int64,
	betAmount decimal.Decimal,
	selectedSide models.Side,
) (*models.Player, *models.BetResult, error) {
	if betAmount.IsZero() || betAmount.IsNegative() {
		return nil, nil, repository.ErrInvalidAmount
	}
	if selectedSide != models.SideHeads && selectedSide != models.SideTails {
		return nil, nil, repository.ErrInvalidSide
	}

	resultSide := s.flipper.Flip()
	won := resultSide == selectedSide
	winAmount := decimal.Zero
	if won {
		winAmount = betAmount.Mul(decimal.NewFromInt(2))
	}
	res := models.BetResult{
		SelectedSide: selectedSide,
		ResultSide:   resultSide,
		Won:          won,
		BetAmount:    betAmount,
		WinAmount:    winAmount,
	}

	var lastErr error
	for i := 0; i < s.maxRetries; i++ {
		player, err := s.repo.ResolveBet(ctx, playerID, res)
		if err == nil {
			return player, &res, nil
		}
		if isRetryableError(err) {
			s.logger.Warn("Retrying bet resolution",
				slog.Int64("player_id", playerID),
				slog.Int("attempt", i+1),
				slog.Any("err", err),
			)
			time.Sleep(time.Duration(1<<i) * 10 * time.Microsecond)
			lastErr = err
			continue
		}

		if errors.Is(err, repository.ErrPlayerNotFound) {
			s.logger.Warn("Play failed: player not found",
				slog.Int64("player_id", playerID),
			)
			return nil, nil, err
		}
		if errors.Is(err, repository.ErrInsufficientBalance) {
			s.logger.Warn("Play failed: insufficient balance",
				slog.Int64("player_id", playerID),
				slog.Any("bet_amount", betAmount),
			)
			return nil, nil, err
		}
		s.logger.Error("Play failed: unknown error",
			slog.Int64("player_id", playerID),
			slog.Any("bet_amount", betAmount),
			slog.Any("err", err),
		)
		return nil, nil, err
	}
	s.logger.Error("Play failed after retries",
		slog.Int64("player_id", playerID),
		slog.Any("err", lastErr),
	)
	return nil, nil, lastErr
}

// CreateDeposit регистрирует pending-депозит и формирует memo для перевода.
// Баланс не меняется до подтверждения внешним кошельком.
func (s *GameService) CreateDeposit(
	ctx context.Context,
	playerID int64,
	amount decimal.Decimal,
) (int64, string, error) {
	if amount.IsZero() || amount.IsNegative() {
		return 0, "", repository.ErrInvalidAmount
	}

	txID, err := s.repo.CreateDeposit(ctx, playerID, amount)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			s.logger.Warn("CreateDeposit failed: player not found",
				slog.Int64("player_id", playerID),
			)
			return 0, "", err
		}
		s.logger.Error("CreateDeposit failed",
			slog.Int64("player_id", playerID),
			slog.Any("amount", amount),
			slog.Any("err", err),
		)
		return 0, "", err
	}
	return txID, fmt.Sprintf("DEPOSIT_%d", txID), nil
}

func (s *GameService) CreateWithdrawal(
	ctx context.Context,
	playerID int64,
	amount decimal.Decimal,
	tonAddress string,
) (int64, error) {
	if amount.IsZero() || amount.IsNegative() {
		return 0, repository.ErrInvalidAmount
	}

	var lastErr error
	for i := 0; i < s.maxRetries; i++ {
		txID, err := s.repo.CreateWithdrawal(ctx, playerID, amount, tonAddress)
		if err == nil {
			return txID, nil
		}
		if isRetryableError(err) {
			s.logger.Warn("Retrying withdrawal",
				slog.Int64("player_id", playerID),
				slog.Int("attempt", i+1),
				slog.Any("err", err),
			)
			time.Sleep(time.Duration(1<<i) * 10 * time.Microsecond)
			lastErr = err
			continue
		}

		if errors.Is(err, repository.ErrPlayerNotFound) {
			s.logger.Warn("CreateWithdrawal failed: player not found",
				slog.Int64("player_id", playerID),
			)
			return 0, err
		}
		if errors.Is(err, repository.ErrInsufficientBalance) {
			s.logger.Warn("CreateWithdrawal failed: insufficient balance",
				slog.Int64("player_id", playerID),
				slog.Any("amount", amount),
			)
			return 0, err
		}
		s.logger.Error("CreateWithdrawal failed: unknown error",
			slog.Int64("player_id", playerID),
			slog.Any("amount", amount),
			slog.Any("err", err),
		)
		return 0, err
	}
	s.logger.Error("CreateWithdrawal failed after retries",
		slog.Int64("player_id", playerID),
		slog.Any("err", lastErr),
	)
	return 0, lastErr
}

// SettleTransaction — точка интеграции для внешнего монитора кошелька:
// переводит pending-транзакцию в completed или failed.
func (s *GameService) SettleTransaction(
	ctx context.Context,
	transactionID int64,
	status models.TransactionStatus,
) error {
	if status != models.StatusCompleted && status != models.StatusFailed {
		return fmt.Errorf("invalid settlement status %q", status)
	}
	if err := s.repo.SettleTransaction(ctx, transactionID, status); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) || errors.Is(err, repository.ErrTransactionSettled) {
			s.logger.Warn("SettleTransaction rejected",
				slog.Int64("transaction_id", transactionID),
				slog.Any("err", err),
			)
			return err
		}
		s.logger.Error("SettleTransaction failed",
			slog.Int64("transaction_id", transactionID),
			slog.Any("err", err),
		)
		return err
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
