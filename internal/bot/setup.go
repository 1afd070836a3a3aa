package bot

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/models"
)

// HandleSetup настраивает webhook и список команд бота.
func (h *BotHandler) HandleSetup(c *gin.Context) {
	var req models.BotSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	switch req.Action {
	case "set_webhook":
		h.handleSetWebhook(c, req)
	case "get_info":
		h.handleGetInfo(c)
	}
}

// HandleSetupInfo — getMe без тела запроса.
func (h *BotHandler) HandleSetupInfo(c *gin.Context) {
	me, err := h.api.GetMe()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, me)
}

func (h *BotHandler) handleSetWebhook(c *gin.Context, req models.BotSetupRequest) {
	webhookURL := req.WebhookURL
	if webhookURL == "" {
		webhookURL = h.webhookURL
	}

	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook url", "details": err.Error()})
		return
	}
	webhookResult, err := h.api.Request(wh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Запустить игру"},
		tgbotapi.BotCommand{Command: "admin", Description: "Админ-панель"},
	)
	commandsResult, err := h.api.Request(commands)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"webhook":  webhookResult,
		"commands": commandsResult,
	})
}

func (h *BotHandler) handleGetInfo(c *gin.Context) {
	me, err := h.api.GetMe()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	info, err := h.api.GetWebhookInfo()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bot":     me,
		"webhook": info,
	})
}
