package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/constants"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/engine"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type PlayFixtureRequest struct {
	// Seed is optional; when zero the server picks one. The seed used is
	// stored on the fixture so the result stays reproducible.
	Seed int64 `json:"seed"`
}

// PlayFixture runs the full match simulation for a scheduled fixture and
// returns the updated fixture with its final score.
func (h *GameHandler) PlayFixture(c *gin.Context) {
	f, ok := h.fixtureFromRef(c)
	if !ok {
		return
	}

	var req PlayFixtureRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	played, err := service.PlayFixture(h.repo, f.ID, seed)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFixtureNotFound), errors.Is(err, service.ErrClubNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFixtureNotFound})
		case errors.Is(err, service.ErrFixtureAlreadyPlayed):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrFixtureAlreadyPlayed})
		case errors.Is(err, engine.ErrShortRoster):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrShortRoster})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedPlayFixture})
		}
		return
	}
	c.JSON(http.StatusOK, played)
}
