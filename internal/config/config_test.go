package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func squadJSON(names ...string) string {
	players := make([]string, 0, len(names))
	for _, n := range names {
		players = append(players, `{"name":"`+n+`","throwing":3,"catching":3,"dodging":2,"blocking":2,"speed":3,"positional_sense":3,"teamwork":2,"clutch_factor":1,"tier":2}`)
	}
	return "[" + strings.Join(players, ",") + "]"
}

func fullSquad() string {
	return squadJSON("a", "b", "c", "d", "e", "f")
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"club_list": [
			{"name": "Rubber Rockets", "players": `+fullSquad()+`},
			{"name": "Dodge City", "players": `+fullSquad()+`}
		],
		"server": {"address": ":9090"}
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Clubs) != 2 {
		t.Fatalf("expected 2 clubs, got %d", len(cfg.Clubs))
	}
	if cfg.Clubs[0].Name != "Rubber Rockets" || len(cfg.Clubs[0].Players) != 6 {
		t.Fatalf("club not loaded correctly: %+v", cfg.Clubs[0])
	}
	if cfg.Clubs[0].Players[0].Throwing != 3 || cfg.Clubs[0].Players[0].Tier != 2 {
		t.Fatalf("player stats not loaded: %+v", cfg.Clubs[0].Players[0])
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("expected configured address, got %s", cfg.ServerAddress)
	}
}

func TestLoadConfig_DefaultAddress(t *testing.T) {
	path := writeConfig(t, `{"club_list": [{"name": "Solo", "players": `+fullSquad()+`}]}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default address, got %s", cfg.ServerAddress)
	}
}

func TestLoadConfig_Rejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing file content", `{}`},
		{"empty club list", `{"club_list": []}`},
		{"club without name", `{"club_list": [{"players": ` + fullSquad() + `}]}`},
		{"duplicate club names", `{"club_list": [{"name": "Twins", "players": ` + fullSquad() + `}, {"name": " twins ", "players": ` + fullSquad() + `}]}`},
		{"short squad", `{"club_list": [{"name": "Tiny", "players": ` + squadJSON("a", "b") + `}]}`},
		{"player without name", `{"club_list": [{"name": "Ghosts", "players": ` + squadJSON("a", "b", "c", "d", "e", "") + `}]}`},
		{"malformed json", `{"club_list": [`},
	}
	for _, c := range cases {
		path := writeConfig(t, c.body)
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("%s: expected an error", c.name)
		}
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
