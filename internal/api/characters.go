package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"battleforge/internal/constants"
	"battleforge/internal/game"
	"battleforge/internal/service"
)

type CreateCharacterRequest struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}

// CreateCharacter mints a new combatant.
func (h *BattleHandler) CreateCharacter(c *gin.Context) {
	var req CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	char, err := service.CreateCharacter(h.deps, req.Name, game.CharacterClass(req.Class))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, char)
}

// GetCharacter returns one combatant record by UUID.
func (h *BattleHandler) GetCharacter(c *gin.Context) {
	char, err := h.repo.GetCharacterByUUID(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		return
	}
	c.JSON(http.StatusOK, char)
}

// HealCharacter restores a combatant to full health outside of battle.
func (h *BattleHandler) HealCharacter(c *gin.Context) {
	char, err := service.HealCharacter(h.deps, c.Param("uuid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

// ListLeaderboard returns the top characters by MMR.
func (h *BattleHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	chars, err := h.repo.GetTopCharacters(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoard})
		return
	}
	c.JSON(http.StatusOK, chars)
}
