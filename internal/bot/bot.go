package bot

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/models"
)

//go:generate mockgen -source=bot.go -destination=../../test/mock_bot_deps.go -package=test TelegramAPI,ReportRepository

// TelegramAPI — используемое подмножество *tgbotapi.BotAPI.
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetMe() (tgbotapi.User, error)
	GetWebhookInfo() (tgbotapi.WebhookInfo, error)
}

type ReportRepository interface {
	OverallStats(ctx context.Context) (*models.OverallStats, error)
	TopPlayers(ctx context.Context, limit int) ([]models.PlayerSummary, error)
	RecentTransactions(ctx context.Context, limit int) ([]models.TransactionSummary, error)
}

type BotHandler struct {
	api        TelegramAPI
	reports    ReportRepository
	isAdmin    func(telegramID int64) bool
	gameURL    string
	webhookURL string
	logger     *slog.Logger
}

func NewBotHandler(
	api TelegramAPI,
	reports ReportRepository,
	isAdmin func(telegramID int64) bool,
	gameURL string,
	webhookURL string,
	logger *slog.Logger,
) *BotHandler {
	return &BotHandler{
		api:        api,
		reports:    reports,
		isAdmin:    isAdmin,
		gameURL:    gameURL,
		webhookURL: webhookURL,
		logger:     logger,
	}
}

func (h *BotHandler) RegisterRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/bot/webhook", h.HandleWebhook)
		v1.POST("/bot/setup", h.HandleSetup)
		v1.GET("/bot/setup", h.HandleSetupInfo)
	}
}

// HandleWebhook принимает update от Telegram и маршрутизирует его.
func (h *BotHandler) HandleWebhook(c *gin.Context) {
	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	switch {
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := message.From.ID

	switch message.Text {
	case "/start":
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.InlineKeyboardButton{
					Text:   "🎮 Играть в CoinFlip",
					WebApp: &tgbotapi.WebAppInfo{URL: h.gameURL},
				},
			),
		)
		h.sendWithKeyboard(chatID, "Добро пожаловать в CoinFlip! Нажмите кнопку ниже, чтобы начать игру.", keyboard)

	case "/admin":
		if !h.isAdmin(userID) {
			h.send(chatID, "Используйте /start чтобы начать игру")
			return
		}
		h.showAdminMenu(chatID)

	case "/stats":
		if !h.isAdmin(userID) {
			h.send(chatID, "Используйте /start чтобы начать игру")
			return
		}
		h.showStats(ctx, chatID)

	default:
		h.send(chatID, "Используйте /start чтобы начать игру")
	}
}

func (h *BotHandler) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	userID := callback.From.ID

	if !h.isAdmin(userID) {
		h.answerCallback(callback.ID, "Доступ запрещён")
		return
	}

	chatID := callback.Message.Chat.ID
	switch callback.Data {
	case "admin_stats":
		h.showStats(ctx, chatID)
	case "admin_players":
		h.showPlayers(ctx, chatID)
	case "admin_transactions":
		h.showTransactions(ctx, chatID)
	}

	h.answerCallback(callback.ID, "")
}

func (h *BotHandler) showAdminMenu(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Общая статистика", "admin_stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Список игроков", "admin_players"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Транзакции", "admin_transactions"),
		),
	)
	h.sendWithKeyboard(chatID, "<b>🔧 Админ-панель</b>\n\nВыберите действие:", keyboard)
}

func (h *BotHandler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := h.api.Send(msg); err != nil {
		h.logger.Error("Failed to send message",
			slog.Int64("chat_id", chatID),
			slog.Any("err", err),
		)
	}
}

func (h *BotHandler) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard
	if _, err := h.api.Send(msg); err != nil {
		h.logger.Error("Failed to send message",
			slog.Int64("chat_id", chatID),
			slog.Any("err", err),
		)
	}
}

func (h *BotHandler) answerCallback(callbackID, text string) {
	if _, err := h.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Error("Failed to answer callback", slog.Any("err", err))
	}
}
