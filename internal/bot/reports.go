package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/models"
)

var typeEmoji = map[models.TransactionType]string{
	models.TransactionDeposit:    "⬇️",
	models.TransactionWithdrawal: "⬆️",
	models.TransactionWin:        "🎉",
	models.TransactionLoss:       "❌",
}

func (h *BotHandler) showStats(ctx context.Context, chatID int64) {
	stats, err := h.reports.OverallStats(ctx)
	if err != nil {
		h.logger.Error("Failed to build stats report", slog.Any("err", err))
		h.send(chatID, "Не удалось получить статистику")
		return
	}

	text := fmt.Sprintf(`<b>📊 Статистика CoinFlip</b>

👥 <b>Игроки:</b> %d
💰 <b>Общий баланс:</b> %.2f TON
🎮 <b>Всего игр:</b> %d
🏆 <b>Побед:</b> %d

📅 <b>Игр за 24ч:</b> %d

💵 <b>Депозиты:</b> %.2f TON
💸 <b>Выводы:</b> %.2f TON
`,
		stats.PlayerCount,
		stats.TotalBalance.InexactFloat64(),
		stats.TotalGames,
		stats.TotalWins,
		stats.GamesLast24h,
		stats.TotalDeposits.InexactFloat64(),
		stats.TotalWithdrawals.InexactFloat64(),
	)
	h.send(chatID, text)
}

func (h *BotHandler) showPlayers(ctx context.Context, chatID int64) {
	players, err := h.reports.TopPlayers(ctx, 10)
	if err != nil {
		h.logger.Error("Failed to build players report", slog.Any("err", err))
		h.send(chatID, "Не удалось получить список игроков")
		return
	}

	var b strings.Builder
	b.WriteString("<b>👥 Топ-10 игроков</b>\n\n")
	for i, p := range players {
		username := p.Username
		if username == "" {
			username = "Аноним"
		}
		winRate := 0.0
		if p.TotalGames > 0 {
			winRate = float64(p.Wins) / float64(p.TotalGames) * 100
		}
		fmt.Fprintf(&b, "%d. @%s\n", i+1, username)
		fmt.Fprintf(&b, "   💰 %.2f TON | 🎮 %d игр | 📈 %.1f%% побед\n\n",
			p.Balance.InexactFloat64(), p.TotalGames, winRate)
	}
	h.send(chatID, b.String())
}

func (h *BotHandler) showTransactions(ctx context.Context, chatID int64) {
	txns, err := h.reports.RecentTransactions(ctx, 15)
	if err != nil {
		h.logger.Error("Failed to build transactions report", slog.Any("err", err))
		h.send(chatID, "Не удалось получить транзакции")
		return
	}

	var b strings.Builder
	b.WriteString("<b>💰 Последние транзакции</b>\n\n")
	for _, t := range txns {
		emoji, ok := typeEmoji[t.Type]
		if !ok {
			emoji = "•"
		}
		username := t.Username
		if username == "" {
			username = "Аноним"
		}
		fmt.Fprintf(&b, "%s %s | %.2f TON\n", emoji, strings.ToUpper(string(t.Type)), t.Amount.InexactFloat64())
		fmt.Fprintf(&b, "   @%s | %s | %s\n\n", username, t.Status, t.CreatedAt.Format("02.01 15:04"))
	}
	h.send(chatID, b.String())
}
