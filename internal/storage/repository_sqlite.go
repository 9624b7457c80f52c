package storage

import (
	"errors"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) ListClubs() ([]game.Club, error) {
	var clubs []game.Club
	if err := r.db.Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *sqliteRepository) GetClubByID(id uint) (*game.Club, error) {
	var c game.Club
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) GetPlayersByClub(clubID uint) ([]game.Player, error) {
	var players []game.Player
	// id order matches creation order, so rosters keep their seeded order
	if err := r.db.Where("club_id = ?", clubID).Order("id").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *sqliteRepository) CreateFixture(f *game.Fixture) error {
	return r.db.Create(f).Error
}

func (r *sqliteRepository) GetFixtureByID(id uint) (*game.Fixture, error) {
	var f game.Fixture
	if err := r.db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *sqliteRepository) FindFixtureByRef(ref string) (*game.Fixture, error) {
	var f game.Fixture
	if err := r.db.Where("ref = ?", ref).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *sqliteRepository) ListFixtures() ([]game.Fixture, error) {
	var fixtures []game.Fixture
	if err := r.db.Order("id").Find(&fixtures).Error; err != nil {
		return nil, err
	}
	return fixtures, nil
}

func (r *sqliteRepository) UpdateFixture(f *game.Fixture) error {
	return r.db.Save(f).Error
}

func (r *sqliteRepository) GetInstructionsForFixture(fixtureID uint) ([]game.PlayerInstruction, error) {
	var ins []game.PlayerInstruction
	if err := r.db.Where("fixture_id = ?", fixtureID).Find(&ins).Error; err != nil {
		return nil, err
	}
	return ins, nil
}

func (r *sqliteRepository) UpsertInstruction(in *game.PlayerInstruction) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "fixture_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"throw_aggression", "catch_aggression", "target_priority", "updated_at",
		}),
	}).Create(in).Error
}

func (r *sqliteRepository) UpdateTableOnFixturePlayed(f *game.Fixture) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		apply := func(clubID uint, goalsFor, goalsAgainst int) error {
			var s game.Standing
			err := tx.Where("club_id = ?", clubID).First(&s).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s = game.Standing{ClubID: clubID}
			} else if err != nil {
				return err
			}
			s.Played++
			switch {
			case goalsFor > goalsAgainst:
				s.Wins++
				s.Points += 3
			case goalsFor < goalsAgainst:
				s.Losses++
			default:
				s.Draws++
				s.Points++
			}
			return tx.Save(&s).Error
		}
		if err := apply(f.HomeClubID, f.HomeScore, f.AwayScore); err != nil {
			return err
		}
		return apply(f.AwayClubID, f.AwayScore, f.HomeScore)
	})
}

func (r *sqliteRepository) GetStandings() ([]game.Standing, error) {
	var standings []game.Standing
	if err := r.db.Order("points DESC, wins DESC, club_id").Find(&standings).Error; err != nil {
		return nil, err
	}
	return standings, nil
}
