package models

import (
	"github.com/shopspring/decimal"
)

// GameRequest — единый запрос игрового API, диспетчеризация по полю action.
type GameRequest struct {
	Action string `json:"action" binding:"required,oneof=get_or_create_player play create_deposit create_withdrawal"`

	// get_or_create_player
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`

	// play / create_deposit / create_withdrawal
	PlayerID     int64           `json:"player_id"`
	BetAmount    decimal.Decimal `json:"bet_amount"`
	SelectedSide string          `json:"selected_side"`
	Amount       decimal.Decimal `json:"amount"`
	TONAddress   string          `json:"ton_address"`
}

type PlayerResponse struct {
	PlayerID      int64           `json:"player_id"`
	Balance       decimal.Decimal `json:"balance"`
	TotalGames    int             `json:"total_games"`
	Wins          int             `json:"wins"`
	TotalWinnings decimal.Decimal `json:"total_winnings"`
}

type PlayResponse struct {
	ResultSide    Side            `json:"result_side"`
	Won           bool            `json:"won"`
	WinAmount     decimal.Decimal `json:"win_amount"`
	Balance       decimal.Decimal `json:"balance"`
	TotalGames    int             `json:"total_games"`
	Wins          int             `json:"wins"`
	TotalWinnings decimal.Decimal `json:"total_winnings"`
}

type DepositResponse struct {
	TransactionID int64           `json:"transaction_id"`
	TONWallet     string          `json:"ton_wallet"`
	Amount        decimal.Decimal `json:"amount"`
	Memo          string          `json:"memo"`
}

type WithdrawalResponse struct {
	TransactionID int64             `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
}

// BotSetupRequest — запрос настройки бота (webhook и команды).
type BotSetupRequest struct {
	Action     string `json:"action" binding:"required,oneof=set_webhook get_info"`
	WebhookURL string `json:"webhook_url"`
}
