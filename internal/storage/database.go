package storage

import (
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/constants"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database, keeps the schema updated via
// AutoMigrate and seeds the league from the configured clubs when the
// database is empty.
func OpenAndMigrate(dataSourceName string, clubsFromConfig []game.Club) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&game.Club{}, &game.Player{}, &game.PlayerInstruction{}, &game.Fixture{}, &game.Standing{})
	if err != nil {
		return nil, err
	}

	seedDefaultClubs(db, clubsFromConfig)
	return db, nil
}

// seedDefaultClubs inserts the configured clubs (with their squads) and
// an empty league-table row per club. It only runs against an empty
// database so restarts never duplicate the league.
func seedDefaultClubs(db *gorm.DB, clubsFromConfig []game.Club) {
	var count int64
	db.Model(&game.Club{}).Count(&count)
	if count > 0 {
		return
	}
	for i := range clubsFromConfig {
		club := clubsFromConfig[i]
		if err := db.Create(&club).Error; err != nil {
			logging.Error("failed to seed club", err, logging.Fields{"name": club.Name})
			continue
		}
		if err := db.Create(&game.Standing{ClubID: club.ID}).Error; err != nil {
			logging.Error("failed to seed league table row", err, logging.Fields{constants.LogFieldClubID: club.ID})
		}
	}
	logging.Info("seeded league clubs", logging.Fields{"clubs": len(clubsFromConfig)})
}
