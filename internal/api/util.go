package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"battleforge/internal/constants"
	"battleforge/internal/service"
)

// respondServiceError maps service sentinels onto HTTP statuses. Unknown
// errors become a 500 without leaking internals.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := constants.ErrFailedUpdate

	switch {
	case errors.Is(err, service.ErrCharacterNotFound):
		status, message = http.StatusNotFound, constants.ErrCharacterNotFound
	case errors.Is(err, service.ErrBattleNotFound):
		status, message = http.StatusNotFound, constants.ErrBattleNotFound
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrNameTooLong),
		errors.Is(err, service.ErrInvalidClass),
		errors.Is(err, service.ErrInvalidMatchType),
		errors.Is(err, service.ErrSameCharacter):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotAParticipant):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrBattleFinished),
		errors.Is(err, service.ErrBattleExpired),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrAlreadyCommitted),
		errors.Is(err, service.ErrWildcardPending),
		errors.Is(err, service.ErrStanceNotCommitted),
		errors.Is(err, service.ErrSpecialOnCooldown),
		errors.Is(err, service.ErrCharacterDead),
		errors.Is(err, service.ErrNoActiveWildcard),
		errors.Is(err, service.ErrDecisionTimeout),
		errors.Is(err, service.ErrAlreadyDecided),
		errors.Is(err, service.ErrDecisionNotExpired),
		errors.Is(err, service.ErrNotAIBattle),
		errors.Is(err, service.ErrNotAITurn),
		errors.Is(err, service.ErrBattleNotFinished),
		errors.Is(err, service.ErrAlreadyFinalized),
		errors.Is(err, service.ErrAlreadyFullHealth):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrInvalidStanceReveal):
		status, message = http.StatusUnprocessableEntity, err.Error()
	}

	c.JSON(status, gin.H{constants.JSONKeyError: message})
}
