package main

import (
	"net/http"
	"os"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/api"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/config"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/constants"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/logging"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load league configuration (required). Path may be provided via
	// DODGEBALL_CONFIG or defaults to ./dodgeball_config.json in the
	// current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./dodgeball_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid league configuration", err, logging.Fields{"config_path": configPath, "hint": "create a dodgeball_config.json with a 'club_list' array of clubs, each with a 'players' array (name plus throwing/catching/dodging/blocking/speed and secondary traits), and an optional server.address"})
	}

	// Allow the DB path to be configured via DODGEBALL_DB. Default to a
	// data/ directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/dodgeball.db"
	}
	db, err := storage.OpenAndMigrate(dbPath, cfg.Clubs)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	handler := api.NewGameHandler(repo)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteHealth, func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
		})
		apiRoutes.GET("/version", api.Version)

		apiRoutes.GET(constants.RouteClubs, handler.ListClubs)
		apiRoutes.GET(constants.RouteClubPlayers, handler.ListClubPlayers)
		apiRoutes.GET(constants.RouteStandings, handler.GetStandings)

		apiRoutes.GET(constants.RouteFixtures, handler.ListFixtures)
		apiRoutes.POST(constants.RouteFixtures, handler.CreateFixture)
		apiRoutes.GET(constants.RouteFixtureByRef, handler.GetFixture)
		apiRoutes.POST(constants.RouteFixturePlay, handler.PlayFixture)
		apiRoutes.POST(constants.RouteFixtureInstructions, handler.SaveInstructions)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
