package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Side string

const (
	SideHeads Side = "heads"
	SideTails Side = "tails"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionWin        TransactionType = "win"
	TransactionLoss       TransactionType = "loss"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

type Player struct {
	ID            int64           `db:"id" json:"player_id"`
	TelegramID    int64           `db:"telegram_id" json:"telegram_id"`
	Username      string          `db:"username" json:"username"`
	Balance       decimal.Decimal `db:"balance" json:"balance"`
	TotalGames    int             `db:"total_games" json:"total_games"`
	Wins          int             `db:"wins" json:"wins"`
	TotalWinnings decimal.Decimal `db:"total_winnings" json:"total_winnings"`
}

type Game struct {
	ID           int64           `db:"id"`
	PlayerID     int64           `db:"player_id"`
	BetAmount    decimal.Decimal `db:"bet_amount"`
	SelectedSide Side            `db:"selected_side"`
	ResultSide   Side            `db:"result_side"`
	Won          bool            `db:"won"`
	WinAmount    decimal.Decimal `db:"win_amount"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Transaction struct {
	ID         int64             `db:"id"`
	PlayerID   int64             `db:"player_id"`
	Type       TransactionType   `db:"type"`
	Amount     decimal.Decimal   `db:"amount"`
	Status     TransactionStatus `db:"status"`
	TONAddress string            `db:"ton_address"`
	CreatedAt  time.Time         `db:"created_at"`
}

// BetResult — итог одного розыгрыша. Считается в сервисе,
// применяется репозиторием атомарно.
type BetResult struct {
	SelectedSide Side
	ResultSide   Side
	Won          bool
	BetAmount    decimal.Decimal
	WinAmount    decimal.Decimal
}

type OverallStats struct {
	PlayerCount      int64
	TotalBalance     decimal.Decimal
	TotalGames       int64
	TotalWins        int64
	GamesLast24h     int64
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
}

type PlayerSummary struct {
	Username   string
	Balance    decimal.Decimal
	TotalGames int
	Wins       int
}

type TransactionSummary struct {
	Type      TransactionType
	Amount    decimal.Decimal
	Status    TransactionStatus
	CreatedAt time.Time
	Username  string
}
