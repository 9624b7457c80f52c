package api

import (
	"encoding/json"
	"net/http"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/constants"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateFixtureRequest struct {
	HomeClubID uint `json:"home_club_id"`
	AwayClubID uint `json:"away_club_id"`
}

// CreateFixture schedules a new fixture between two clubs and returns
// it, including the public reference code used by all fixture routes.
func (h *GameHandler) CreateFixture(c *gin.Context) {
	var req CreateFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.HomeClubID == req.AwayClubID {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSameClubFixture})
		return
	}
	for _, id := range []uint{req.HomeClubID, req.AwayClubID} {
		club, err := h.repo.GetClubByID(id)
		if err != nil || club == nil {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrClubNotFound})
			return
		}
	}

	f := &game.Fixture{
		Ref:        uuid.NewString(),
		HomeClubID: req.HomeClubID,
		AwayClubID: req.AwayClubID,
		Status:     game.FixtureScheduled,
	}
	if err := h.repo.CreateFixture(f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateFixture})
		return
	}
	c.JSON(http.StatusCreated, f)
}

// ListFixtures returns every fixture, scheduled and played.
func (h *GameHandler) ListFixtures(c *gin.Context) {
	fixtures, err := h.repo.ListFixtures()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchFixtures})
		return
	}
	c.JSON(http.StatusOK, fixtures)
}

// GetFixture returns a fixture by reference. For a played fixture the
// response includes the stored simulation tree so clients can render the
// full play-by-play.
func (h *GameHandler) GetFixture(c *gin.Context) {
	f, ok := h.fixtureFromRef(c)
	if !ok {
		return
	}

	if f.Status != game.FixturePlayed || len(f.SimulationJSON) == 0 {
		c.JSON(http.StatusOK, f)
		return
	}
	var sim game.MatchSimulation
	if err := json.Unmarshal(f.SimulationJSON, &sim); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFixtureNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"fixture": f, "simulation": sim})
}

// fixtureFromRef resolves the fixture named by the :fixtureRef path
// parameter, writing the error response itself when resolution fails.
func (h *GameHandler) fixtureFromRef(c *gin.Context) (*game.Fixture, bool) {
	ref := normalizeFixtureRef(c.Param("fixtureRef"))
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidFixtureRef})
		return nil, false
	}
	f, err := h.repo.FindFixtureByRef(ref)
	if err != nil || f == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFixtureNotFound})
		return nil, false
	}
	return f, true
}
