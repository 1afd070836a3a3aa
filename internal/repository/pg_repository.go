package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/models"
)

var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidSide         = errors.New("selected side must be heads or tails")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionSettled  = errors.New("transaction already settled")
)

type GamePGRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewGamePGRepository(pool *pgxpool.Pool, logger *slog.Logger) *GamePGRepository {
	return &GamePGRepository{
		pool:   pool,
		logger: logger,
	}
}

// GetOrCreatePlayer идемпотентен по telegram_id: вставка через
// ON CONFLICT DO NOTHING, дубликаты невозможны даже при гонке.
func (r *GamePGRepository) GetOrCreatePlayer(
	ctx context.Context,
	telegramID int64,
	username string,
	startingBalance decimal.Decimal,
) (*models.Player, error) {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO players (telegram_id, username, balance)
        VALUES ($1, $2, $3)
        ON CONFLICT (telegram_id) DO NOTHING`,
		telegramID, username, startingBalance)
	if err != nil {
		r.logger.Error("Failed to upsert player",
			slog.Int64("telegram_id", telegramID),
			slog.Any("err", err),
		)
		return nil, err
	}

	var p models.Player
	err = r.pool.QueryRow(ctx, `
        SELECT id, telegram_id, username, balance, total_games, wins, total_winnings
        FROM players WHERE telegram_id = $1`,
		telegramID,
	).Scan(&p.ID, &p.TelegramID, &p.Username, &p.Balance, &p.TotalGames, &p.Wins, &p.TotalWinnings)
	if err != nil {
		r.logger.Error("Failed to select player after upsert",
			slog.Int64("telegram_id", telegramID),
			slog.Any("err", err),
		)
		return nil, err
	}
	return &p, nil
}

func (r *GamePGRepository) GetPlayer(ctx context.Context, playerID int64) (*models.Player, error) {
	var p models.Player
	err := r.pool.QueryRow(ctx, `
        SELECT id, telegram_id, username, balance, total_games, wins, total_winnings
        FROM players WHERE id = $1`,
		playerID,
	).Scan(&p.ID, &p.TelegramID, &p.Username, &p.Balance, &p.TotalGames, &p.Wins, &p.TotalWinnings)
	if err == pgx.ErrNoRows {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get player",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return nil, err
	}
	return &p, nil
}

// ResolveBet применяет результат розыгрыша одной транзакцией: обновление
// баланса и счетчиков, запись в games и запись в transactions. Проверка
// достаточности баланса выполняется под блокировкой строки игрока.
func (r *GamePGRepository) ResolveBet(
	ctx context.Context,
	playerID int64,
	res models.BetResult,
) (*models.Player, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.logger.Error("Failed to begin transaction",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return nil, err
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			r.logger.Error("Failed to rollback transaction",
				slog.Int64("player_id", playerID),
				slog.Any("err", err),
			)
		}
	}()

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, "SELECT balance FROM players WHERE id = $1 FOR UPDATE", playerID).Scan(&balance)
	if err == pgx.ErrNoRows {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		r.logger.Error("Failed to select player for update",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return nil, err
	}

	if balance.LessThan(res.BetAmount) {
		return nil, ErrInsufficientBalance
	}

	newBalance := balance.Sub(res.BetAmount)
	winsDelta := 0
	if res.Won {
		newBalance = balance.Add(res.BetAmount)
		winsDelta = 1
	}

	var p models.Player
	err = tx.QueryRow(ctx, `
        UPDATE players
        SET balance = $1,
            total_games = total_games + 1,
            wins = wins + $2,
            total_winnings = total_winnings + $3
        WHERE id = $4
        RETURNING id, telegram_id, username, balance, total_games, wins, total_winnings`,
		newBalance, winsDelta, res.WinAmount, playerID,
	).Scan(&p.ID, &p.TelegramID, &p.Username, &p.Balance, &p.TotalGames, &p.Wins, &p.TotalWinnings)
	if err != nil {
		r.logger.Error("Failed to update player after bet",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return nil, err
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO games (player_id, bet_amount, selected_side, result_side, won, win_amount)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		playerID, res.BetAmount, res.SelectedSide, res.ResultSide, res.Won, res.WinAmount)
	if err != nil {
		r.logger.Error("Failed to insert game",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return nil, err
	}

	txType := models.TransactionLoss
	txAmount := res.BetAmount
	if res.Won {
		txType = models.TransactionWin
		txAmount = res.WinAmount
	}
	_, err = tx.Exec(ctx, `
        INSERT INTO transactions (player_id, type, amount, status)
        VALUES ($1, $2, $3, $4)`,
		playerID, txType, txAmount, models.StatusCompleted)
	if err != nil {
		r.logger.Error("Failed to insert ledger transaction",
			slog.Int64("player_id", playerID),
			slog.String("type", string(txType)),
			slog.Any("err", err),
		)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit transaction",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return nil, err
	}

	return &p, nil
}

// CreateDeposit создает pending-депозит. Баланс не трогаем: зачисление
// происходит при подтверждении через SettleTransaction.
func (r *GamePGRepository) CreateDeposit(
	ctx context.Context,
	playerID int64,
	amount decimal.Decimal,
) (int64, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM players WHERE id = $1)", playerID).Scan(&exists)
	if err != nil {
		r.logger.Error("Failed to check player existence",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return 0, err
	}
	if !exists {
		return 0, ErrPlayerNotFound
	}

	var txID int64
	err = r.pool.QueryRow(ctx, `
        INSERT INTO transactions (player_id, type, amount, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id`,
		playerID, models.TransactionDeposit, amount, models.StatusPending,
	).Scan(&txID)
	if err != nil {
		r.logger.Error("Failed to insert deposit",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return 0, err
	}
	return txID, nil
}

// CreateWithdrawal резервирует сумму сразу: списание и вставка
// pending-вывода в одной транзакции под блокировкой строки игрока.
func (r *GamePGRepository) CreateWithdrawal(
	ctx context.Context,
	playerID int64,
	amount decimal.Decimal,
	tonAddress string,
) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.logger.Error("Failed to begin transaction",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return 0, err
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			r.logger.Error("Failed to rollback transaction",
				slog.Int64("player_id", playerID),
				slog.Any("err", err),
			)
		}
	}()

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, "SELECT balance FROM players WHERE id = $1 FOR UPDATE", playerID).Scan(&balance)
	if err == pgx.ErrNoRows {
		return 0, ErrPlayerNotFound
	}
	if err != nil {
		r.logger.Error("Failed to select player for update",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return 0, err
	}

	if balance.LessThan(amount) {
		return 0, ErrInsufficientBalance
	}

	_, err = tx.Exec(ctx, "UPDATE players SET balance = balance - $1 WHERE id = $2", amount, playerID)
	if err != nil {
		r.logger.Error("Failed to debit balance",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return 0, err
	}

	var txID int64
	err = tx.QueryRow(ctx, `
        INSERT INTO transactions (player_id, type, amount, ton_address, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`,
		playerID, models.TransactionWithdrawal, amount, tonAddress, models.StatusPending,
	).Scan(&txID)
	if err != nil {
		r.logger.Error("Failed to insert withdrawal",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit transaction",
			slog.Int64("player_id", playerID),
			slog.Any("err", err),
		)
		return 0, err
	}
	return txID, nil
}

// SettleTransaction переводит pending-транзакцию в completed или failed.
// Подтвержденный депозит зачисляет сумму, неудавшийся вывод возвращает резерв.
// Повторное урегулирование запрещено.
func (r *GamePGRepository) SettleTransaction(
	ctx context.Context,
	transactionID int64,
	status models.TransactionStatus,
) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		r.logger.Error("Failed to begin transaction",
			slog.Int64("transaction_id", transactionID),
			slog.Any("err", err),
		)
		return err
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			r.logger.Error("Failed to rollback transaction",
				slog.Int64("transaction_id", transactionID),
				slog.Any("err", err),
			)
		}
	}()

	var (
		playerID      int64
		txType        models.TransactionType
		amount        decimal.Decimal
		currentStatus models.TransactionStatus
	)
	err = tx.QueryRow(ctx, `
        SELECT player_id, type, amount, status
        FROM transactions WHERE id = $1 FOR UPDATE`,
		transactionID,
	).Scan(&playerID, &txType, &amount, &currentStatus)
	if err == pgx.ErrNoRows {
		return ErrTransactionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to select transaction for update",
			slog.Int64("transaction_id", transactionID),
			slog.Any("err", err),
		)
		return err
	}

	if currentStatus != models.StatusPending {
		return ErrTransactionSettled
	}

	_, err = tx.Exec(ctx, "UPDATE transactions SET status = $1 WHERE id = $2", status, transactionID)
	if err != nil {
		r.logger.Error("Failed to update transaction status",
			slog.Int64("transaction_id", transactionID),
			slog.Any("err", err),
		)
		return err
	}

	credit := decimal.Zero
	switch {
	case txType == models.TransactionDeposit && status == models.StatusCompleted:
		credit = amount
	case txType == models.TransactionWithdrawal && status == models.StatusFailed:
		credit = amount
	}
	if !credit.IsZero() {
		_, err = tx.Exec(ctx, "UPDATE players SET balance = balance + $1 WHERE id = $2", credit, playerID)
		if err != nil {
			r.logger.Error("Failed to credit balance on settlement",
				slog.Int64("transaction_id", transactionID),
				slog.Int64("player_id", playerID),
				slog.Any("err", err),
			)
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("Failed to commit transaction",
			slog.Int64("transaction_id", transactionID),
			slog.Any("err", err),
		)
		return err
	}
	return nil
}

func (r *GamePGRepository) OverallStats(ctx context.Context) (*models.OverallStats, error) {
	var s models.OverallStats
	err := r.pool.QueryRow(ctx, `
        SELECT COUNT(*),
               COALESCE(SUM(balance), 0),
               COALESCE(SUM(total_games), 0),
               COALESCE(SUM(wins), 0)
        FROM players`,
	).Scan(&s.PlayerCount, &s.TotalBalance, &s.TotalGames, &s.TotalWins)
	if err != nil {
		r.logger.Error("Failed to get player stats", slog.Any("err", err))
		return nil, err
	}

	err = r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM games WHERE created_at > NOW() - INTERVAL '24 hours'",
	).Scan(&s.GamesLast24h)
	if err != nil {
		r.logger.Error("Failed to get 24h game count", slog.Any("err", err))
		return nil, err
	}

	err = r.pool.QueryRow(ctx, `
        SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'deposit'), 0),
               COALESCE(SUM(amount) FILTER (WHERE type = 'withdrawal'), 0)
        FROM transactions WHERE status = 'completed'`,
	).Scan(&s.TotalDeposits, &s.TotalWithdrawals)
	if err != nil {
		r.logger.Error("Failed to get transaction totals", slog.Any("err", err))
		return nil, err
	}
	return &s, nil
}

func (r *GamePGRepository) TopPlayers(ctx context.Context, limit int) ([]models.PlayerSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT username, balance, total_games, wins
        FROM players ORDER BY balance DESC LIMIT $1`,
		limit)
	if err != nil {
		r.logger.Error("Failed to list top players", slog.Any("err", err))
		return nil, err
	}
	defer rows.Close()

	var players []models.PlayerSummary
	for rows.Next() {
		var p models.PlayerSummary
		if err := rows.Scan(&p.Username, &p.Balance, &p.TotalGames, &p.Wins); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *GamePGRepository) RecentTransactions(ctx context.Context, limit int) ([]models.TransactionSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT t.type, t.amount, t.status, t.created_at, p.username
        FROM transactions t
        JOIN players p ON t.player_id = p.id
        ORDER BY t.created_at DESC
        LIMIT $1`,
		limit)
	if err != nil {
		r.logger.Error("Failed to list transactions", slog.Any("err", err))
		return nil, err
	}
	defer rows.Close()

	var txns []models.TransactionSummary
	for rows.Next() {
		var t models.TransactionSummary
		if err := rows.Scan(&t.Type, &t.Amount, &t.Status, &t.CreatedAt, &t.Username); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
