package api

import (
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"battleforge/internal/constants"
	"battleforge/internal/game"
	"battleforge/internal/service"
)

type CommitRequest struct {
	CharacterUUID string `json:"character_uuid"`
	// StanceHash is the hex-encoded commitment hash.
	StanceHash string `json:"stance_hash"`
}

// CommitStance stores the caller's hidden stance commitment.
func (h *BattleHandler) CommitStance(c *gin.Context) {
	var req CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	hash, err := hex.DecodeString(req.StanceHash)
	if err != nil || len(hash) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	b, err := service.CommitStance(h.deps, c.Param("uuid"), req.CharacterUUID, hash)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Stance committed.", "turn": b.TurnNumber})
}

type RevealRequest struct {
	CharacterUUID string `json:"character_uuid"`
	Stance        string `json:"stance"`
	Salt          uint64 `json:"salt"`
	UseSpecial    bool   `json:"use_special"`
}

// RevealTurn opens the commitment and executes (or suspends) the turn.
func (h *BattleHandler) RevealTurn(c *gin.Context) {
	var req RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	b, suspended, err := service.RevealTurn(h.deps, c.Param("uuid"), req.CharacterUUID, game.Stance(req.Stance), req.Salt, req.UseSpecial)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if suspended {
		c.JSON(http.StatusOK, gin.H{
			constants.JSONKeyMessage: "Wildcard triggered. Awaiting decisions.",
			"wildcard":               b.WildcardType,
			"deadline":               b.WildcardDeadline,
		})
		return
	}
	c.JSON(http.StatusOK, b)
}

type DecisionRequest struct {
	CharacterUUID string `json:"character_uuid"`
	Accept        bool   `json:"accept"`
}

// DecideWildcard records an accept/decline for the pending wildcard.
func (h *BattleHandler) DecideWildcard(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	b, resolved, err := service.DecideWildcard(h.deps, c.Param("uuid"), req.CharacterUUID, req.Accept)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !resolved {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Decision recorded. Waiting for opponent."})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ResolveWildcardTimeout applies default declines to a lapsed wildcard
// decision window and resumes the suspended turn.
func (h *BattleHandler) ResolveWildcardTimeout(c *gin.Context) {
	b, err := service.ResolveWildcardTimeout(h.deps, c.Param("uuid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CheckTimeout runs the maintenance forfeit check. It resolves a lapsed
// wildcard decision window first so a stalled wildcard cannot shadow an
// inactivity forfeit.
func (h *BattleHandler) CheckTimeout(c *gin.Context) {
	uuid := c.Param("uuid")

	if b, err := service.ResolveWildcardTimeout(h.deps, uuid); err == nil {
		c.JSON(http.StatusOK, b)
		return
	}
	b, forfeited, err := service.CheckTimeout(h.deps, uuid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !forfeited {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "No timeout."})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ExecuteAITurn plays the scripted opponent's turn.
func (h *BattleHandler) ExecuteAITurn(c *gin.Context) {
	b, err := service.ExecuteAITurn(h.deps, c.Param("uuid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// FinalizeBattle runs the progression resolver over a terminal battle.
func (h *BattleHandler) FinalizeBattle(c *gin.Context) {
	b, err := service.FinalizeBattle(h.deps, c.Param("uuid"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
