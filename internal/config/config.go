package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

type playerEntry struct {
	Name            string `json:"name"`
	Throwing        int    `json:"throwing"`
	Catching        int    `json:"catching"`
	Dodging         int    `json:"dodging"`
	Blocking        int    `json:"blocking"`
	Speed           int    `json:"speed"`
	PositionalSense int    `json:"positional_sense"`
	Teamwork        int    `json:"teamwork"`
	ClutchFactor    int    `json:"clutch_factor"`
	Tier            int    `json:"tier"`
}

type clubEntry struct {
	Name    string        `json:"name"`
	Players []playerEntry `json:"players"`
}

type rawConfig struct {
	ClubList []clubEntry `json:"club_list"`
	Server   *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains clubs to seed and the server address to bind to.
type LoadedConfig struct {
	Clubs         []game.Club
	ServerAddress string
}

// LoadConfig reads the configuration file at path and returns the seed
// clubs and server address. It requires the key `club_list` and each
// club must carry at least a full squad, since every fixture needs
// exactly game.PlayersPerTeam players per side.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.ClubList) == 0 {
		return nil, fmt.Errorf("config file %s: club_list is empty (provide a 'club_list' array)", path)
	}

	nameSet := make(map[string]struct{}, len(rc.ClubList))
	clubs := make([]game.Club, 0, len(rc.ClubList))
	for _, c := range rc.ClubList {
		if c.Name == "" {
			return nil, fmt.Errorf("config file %s: club entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(c.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate club name '%s'", path, c.Name)
		}
		nameSet[ln] = struct{}{}
		if len(c.Players) < game.PlayersPerTeam {
			return nil, fmt.Errorf("config file %s: club '%s' needs at least %d players, has %d", path, c.Name, game.PlayersPerTeam, len(c.Players))
		}

		club := game.Club{Name: c.Name, Players: make([]game.Player, 0, len(c.Players))}
		for _, p := range c.Players {
			if p.Name == "" {
				return nil, fmt.Errorf("config file %s: club '%s' has a player missing 'name'", path, c.Name)
			}
			club.Players = append(club.Players, game.Player{
				Name:            p.Name,
				Throwing:        p.Throwing,
				Catching:        p.Catching,
				Dodging:         p.Dodging,
				Blocking:        p.Blocking,
				Speed:           p.Speed,
				PositionalSense: p.PositionalSense,
				Teamwork:        p.Teamwork,
				ClutchFactor:    p.ClutchFactor,
				Tier:            p.Tier,
			})
		}
		clubs = append(clubs, club)
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{Clubs: clubs, ServerAddress: addr}, nil
}
