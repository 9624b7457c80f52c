package api

import (
	"net/http"
	"strconv"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/constants"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

// GameHandler groups all league-related HTTP handlers.
type GameHandler struct {
	repo storage.Repository
}

// NewGameHandler creates a new GameHandler with the given repository.
func NewGameHandler(repo storage.Repository) *GameHandler {
	return &GameHandler{repo: repo}
}

// ListClubs returns every club in the league.
func (h *GameHandler) ListClubs(c *gin.Context) {
	clubs, err := h.repo.ListClubs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchClubs})
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// ListClubPlayers returns a club's squad.
func (h *GameHandler) ListClubPlayers(c *gin.Context) {
	clubID, err := strconv.ParseUint(c.Param("clubID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidClubID})
		return
	}
	club, err := h.repo.GetClubByID(uint(clubID))
	if err != nil || club == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrClubNotFound})
		return
	}
	players, err := h.repo.GetPlayersByClub(club.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchPlayers})
		return
	}
	c.JSON(http.StatusOK, players)
}

// GetStandings returns the league table, best team first.
func (h *GameHandler) GetStandings(c *gin.Context) {
	standings, err := h.repo.GetStandings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchTable})
		return
	}
	c.JSON(http.StatusOK, standings)
}
