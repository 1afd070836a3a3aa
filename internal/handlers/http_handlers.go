package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/models"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/repository"
)

//go:generate mockgen -source=http_handlers.go -destination=../../test/mock_game_service.go -package=test GameService

type GameService interface {
	GetOrCreatePlayer(ctx context.Context, telegramID int64, username string) (*models.Player, error)
	Play(ctx context.Context, playerID int64, betAmount decimal.Decimal, selectedSide models.Side) (*models.Player, *models.BetResult, error)
	CreateDeposit(ctx context.Context, playerID int64, amount decimal.Decimal) (int64, string, error)
	CreateWithdrawal(ctx context.Context, playerID int64, amount decimal.Decimal, tonAddress string) (int64, error)
}

type GameHTTPHandler struct {
	service   GameService
	tonWallet string
}

func NewGameHTTPHandler(service GameService, tonWallet string) *GameHTTPHandler {
	return &GameHTTPHandler{service: service, tonWallet: tonWallet}
}

func (h *GameHTTPHandler) RegisterRoutes(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/game", h.HandleGameAction)
	}
}

func (h *GameHTTPHandler) HandleGameAction(c *gin.Context) {
	var req models.GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	switch req.Action {
	case "get_or_create_player":
		h.handleGetOrCreatePlayer(c, req)
	case "play":
		h.handlePlay(c, req)
	case "create_deposit":
		h.handleCreateDeposit(c, req)
	case "create_withdrawal":
		h.handleCreateWithdrawal(c, req)
	}
}

func (h *GameHTTPHandler) handleGetOrCreatePlayer(c *gin.Context, req models.GameRequest) {
	player, err := h.service.GetOrCreatePlayer(c.Request.Context(), req.TelegramID, req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.PlayerResponse{
		PlayerID:      player.ID,
		Balance:       player.Balance,
		TotalGames:    player.TotalGames,
		Wins:          player.Wins,
		TotalWinnings: player.TotalWinnings,
	})
}

func (h *GameHTTPHandler) handlePlay(c *gin.Context, req models.GameRequest) {
	player, res, err := h.service.Play(c.Request.Context(), req.PlayerID, req.BetAmount, models.Side(req.SelectedSide))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.PlayResponse{
		ResultSide:    res.ResultSide,
		Won:           res.Won,
		WinAmount:     res.WinAmount,
		Balance:       player.Balance,
		TotalGames:    player.TotalGames,
		Wins:          player.Wins,
		TotalWinnings: player.TotalWinnings,
	})
}

func (h *GameHTTPHandler) handleCreateDeposit(c *gin.Context, req models.GameRequest) {
	txID, memo, err := h.service.CreateDeposit(c.Request.Context(), req.PlayerID, req.Amount)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.DepositResponse{
		TransactionID: txID,
		TONWallet:     h.tonWallet,
		Amount:        req.Amount,
		Memo:          memo,
	})
}

func (h *GameHTTPHandler) handleCreateWithdrawal(c *gin.Context, req models.GameRequest) {
	txID, err := h.service.CreateWithdrawal(c.Request.Context(), req.PlayerID, req.Amount, req.TONAddress)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.WithdrawalResponse{
		TransactionID: txID,
		Status:        models.StatusPending,
	})
}

func statusForError(err error) int {
	switch err {
	case repository.ErrPlayerNotFound:
		return http.StatusNotFound
	case repository.ErrInsufficientBalance, repository.ErrInvalidAmount, repository.ErrInvalidSide:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
