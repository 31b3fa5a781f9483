package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"battleforge/internal/constants"
	"battleforge/internal/game"
	"battleforge/internal/logging"
	"battleforge/internal/service"
)

type CreateBattleRequest struct {
	Player1UUID string `json:"player1_uuid"`
	Player2UUID string `json:"player2_uuid"`
	MatchType   string `json:"match_type"`
	Stake       uint64 `json:"stake"`
	VsAI        bool   `json:"vs_ai"`
}

// CreateBattle opens a battle between two combatants.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var req CreateBattleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	b, err := service.CreateBattle(h.deps, req.Player1UUID, req.Player2UUID, game.MatchType(req.MatchType), req.Stake, req.VsAI)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBattle returns the full battle state by UUID.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	b, err := h.repo.GetBattleByUUID(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBattleLog returns just the battle's bounded text log.
func (h *BattleHandler) GetBattleLog(c *gin.Context) {
	b, err := h.repo.GetBattleByUUID(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uuid": b.UUID, "log": b.Log})
}

// StreamBattle upgrades the request to a websocket delivering the battle's
// live event feed to spectators.
func (h *BattleHandler) StreamBattle(c *gin.Context) {
	uuid := c.Param("uuid")
	if _, err := h.repo.GetBattleByUUID(uuid); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	if h.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{constants.JSONKeyError: constants.ErrStreamUpgradeFailed})
		return
	}
	if err := h.hub.Subscribe(uuid, c.Writer, c.Request); err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{constants.LogFieldBattleID: uuid})
	}
}
