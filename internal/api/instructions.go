package api

import (
	"errors"
	"net/http"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/constants"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type InstructionEntry struct {
	PlayerID        uint                `json:"player_id"`
	ThrowAggression int                 `json:"throw_aggression"`
	CatchAggression int                 `json:"catch_aggression"`
	TargetPriority  game.TargetPriority `json:"target_priority"`
}

type SaveInstructionsRequest struct {
	ClubID       uint               `json:"club_id"`
	Instructions []InstructionEntry `json:"instructions"`
}

// SaveInstructions stores a club's player orders for a scheduled
// fixture, replacing any previously saved ones for the same players.
func (h *GameHandler) SaveInstructions(c *gin.Context) {
	f, ok := h.fixtureFromRef(c)
	if !ok {
		return
	}

	var req SaveInstructionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	instructions := make([]game.PlayerInstruction, 0, len(req.Instructions))
	for _, in := range req.Instructions {
		instructions = append(instructions, game.PlayerInstruction{
			PlayerID:        in.PlayerID,
			ThrowAggression: in.ThrowAggression,
			CatchAggression: in.CatchAggression,
			TargetPriority:  in.TargetPriority,
		})
	}

	if err := service.SaveInstructions(h.repo, f.ID, req.ClubID, instructions); err != nil {
		switch {
		case errors.Is(err, service.ErrFixtureNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFixtureNotFound})
		case errors.Is(err, service.ErrFixtureAlreadyPlayed):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrFixtureAlreadyPlayed})
		case errors.Is(err, service.ErrClubNotInFixture):
			c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: constants.ErrClubNotInFixture})
		case errors.Is(err, service.ErrInvalidAggression):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidAggression})
		case errors.Is(err, service.ErrUnknownPriority):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownPriority})
		case errors.Is(err, service.ErrPlayerNotInClub):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPlayerNotInClub})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveOrders})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMessage: "Instructions saved"})
}
