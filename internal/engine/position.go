package engine

import "github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"

// Court geometry. Slots 0..PlayersPerTeam-1 are the home side, the rest
// the away side.

// onSameSide reports whether both slots sit on the same half of court.
func onSameSide(a, b int) bool {
	return (a < game.PlayersPerTeam) == (b < game.PlayersPerTeam)
}

// slotDistance folds both sides onto one axis and returns the absolute
// per-side distance between two slots. It deliberately does NOT check
// sides: callers that must exclude cross-side comparisons combine it
// with onSameSide.
func slotDistance(a, b int) int {
	d := (a % game.PlayersPerTeam) - (b % game.PlayersPerTeam)
	if d < 0 {
		d = -d
	}
	return d
}

// distance is the nil-safe form of slotDistance: nil when either slot is
// unknown (off-court player, out-of-play ball).
func distance(a, b *int) *int {
	if a == nil || b == nil {
		return nil
	}
	return intPtr(slotDistance(*a, *b))
}
