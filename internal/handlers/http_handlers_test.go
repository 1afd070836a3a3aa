package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/models"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/repository"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/service"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/testutil"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixedFlipper struct {
	side models.Side
}

func (f fixedFlipper) Flip() models.Side { return f.side }

func setupIntegrationRouter(t *testing.T, flipper service.Flipper) (*gin.Engine, func()) {
	pool, teardown := testutil.SetupTestDB(t)
	repo := repository.NewGamePGRepository(pool, testLogger)
	svc := service.NewGameService(repo, flipper, decimal.NewFromInt(100), testLogger)
	handler := NewGameHTTPHandler(svc, "UQHouseWallet")
	r := gin.Default()
	r.Use(CORSMiddleware(), RequestIDMiddleware())
	handler.RegisterRoutes(r)
	return r, teardown
}

func doGameRequest(r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", "/api/v1/game", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIntegration_PlayerLifecycle(t *testing.T) {
	r, teardown := setupIntegrationRouter(t, fixedFlipper{side: models.SideHeads})
	defer teardown()

	// get_or_create_player
	w := doGameRequest(r, map[string]interface{}{
		"action":      "get_or_create_player",
		"telegram_id": 42,
		"username":    "alice",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var created models.PlayerResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Balance.Equal(decimal.NewFromInt(100)))

	// Повторный вызов возвращает того же игрока
	w = doGameRequest(r, map[string]interface{}{
		"action":      "get_or_create_player",
		"telegram_id": 42,
		"username":    "alice",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var again models.PlayerResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.Equal(t, created.PlayerID, again.PlayerID)

	// play (выигрыш: монета всегда heads)
	w = doGameRequest(r, map[string]interface{}{
		"action":        "play",
		"player_id":     created.PlayerID,
		"bet_amount":    "20",
		"selected_side": "heads",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var play models.PlayResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &play))
	assert.True(t, play.Won)
	assert.Equal(t, models.SideHeads, play.ResultSide)
	assert.True(t, play.WinAmount.Equal(decimal.NewFromInt(40)))
	assert.True(t, play.Balance.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, 1, play.TotalGames)
	assert.Equal(t, 1, play.Wins)

	// create_deposit: memo строго DEPOSIT_<id>
	w = doGameRequest(r, map[string]interface{}{
		"action":    "create_deposit",
		"player_id": created.PlayerID,
		"amount":    "10",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var dep models.DepositResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &dep))
	assert.Equal(t, "UQHouseWallet", dep.TONWallet)
	assert.Equal(t, fmt.Sprintf("DEPOSIT_%d", dep.TransactionID), dep.Memo)

	// create_withdrawal
	w = doGameRequest(r, map[string]interface{}{
		"action":      "create_withdrawal",
		"player_id":   created.PlayerID,
		"amount":      "50",
		"ton_address": "UQPlayerAddr",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var wd models.WithdrawalResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &wd))
	assert.Equal(t, models.StatusPending, wd.Status)
}

func TestIntegration_Play_Loss(t *testing.T) {
	r, teardown := setupIntegrationRouter(t, fixedFlipper{side: models.SideTails})
	defer teardown()

	w := doGameRequest(r, map[string]interface{}{
		"action":      "get_or_create_player",
		"telegram_id": 43,
		"username":    "bob",
	})
	var created models.PlayerResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doGameRequest(r, map[string]interface{}{
		"action":        "play",
		"player_id":     created.PlayerID,
		"bet_amount":    "20",
		"selected_side": "heads",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var play models.PlayResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &play))
	assert.False(t, play.Won)
	assert.True(t, play.WinAmount.Equal(decimal.Zero))
	assert.True(t, play.Balance.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, 0, play.Wins)
}

func TestIntegration_Play_InsufficientBalance(t *testing.T) {
	r, teardown := setupIntegrationRouter(t, fixedFlipper{side: models.SideHeads})
	defer teardown()

	w := doGameRequest(r, map[string]interface{}{
		"action":      "get_or_create_player",
		"telegram_id": 44,
		"username":    "carol",
	})
	var created models.PlayerResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doGameRequest(r, map[string]interface{}{
		"action":        "play",
		"player_id":     created.PlayerID,
		"bet_amount":    "1000",
		"selected_side": "heads",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient balance")
}

func TestIntegration_Play_UnknownPlayer(t *testing.T) {
	r, teardown := setupIntegrationRouter(t, fixedFlipper{side: models.SideHeads})
	defer teardown()

	w := doGameRequest(r, map[string]interface{}{
		"action":        "play",
		"player_id":     9999,
		"bet_amount":    "10",
		"selected_side": "heads",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "player not found")
}

func TestIntegration_UnknownAction(t *testing.T) {
	r, teardown := setupIntegrationRouter(t, fixedFlipper{side: models.SideHeads})
	defer teardown()

	w := doGameRequest(r, map[string]interface{}{"action": "hack_the_bank"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request")
}

func TestIntegration_OptionsPreflight(t *testing.T) {
	r, teardown := setupIntegrationRouter(t, fixedFlipper{side: models.SideHeads})
	defer teardown()

	req, _ := http.NewRequest("OPTIONS", "/api/v1/game", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Body.String())
}

func TestIntegration_MethodNotAllowed(t *testing.T) {
	r, teardown := setupIntegrationRouter(t, fixedFlipper{side: models.SideHeads})
	defer teardown()

	req, _ := http.NewRequest("PUT", "/api/v1/game", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
