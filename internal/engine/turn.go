package engine

import (
	"math/rand"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// simulateTurn runs one player's turn: decide, resolve, and fold every
// effect into a single sparse state patch on the returned turn record.
// The patch is applied by the round simulator, never here, so the live
// state stays untouched until the turn is complete.
func simulateTurn(s *game.GameState, p *game.PlayerState, rng *rand.Rand) game.Turn {
	d := decideAction(s, p, rng)
	turn := game.Turn{
		PlayerID: p.Player.ID,
		Action:   d.action,
		TargetID: d.targetID,
		BallID:   d.ballID,
	}

	holdingBall := p.BallID != nil
	switch d.action {
	case game.ActionThrow:
		resolveThrowTurn(s, p, d, &turn, rng)
		holdingBall = false
	case game.ActionPickUp:
		turn.StateUpdate.MergeBall(*d.ballID, game.BallStatePatch{
			Status:   statusPtr(game.BallHeld),
			Position: game.SetInt(*p.Position),
		})
		turn.StateUpdate.MergePlayer(p.Player.ID, game.PlayerStatePatch{BallID: game.SetInt(*d.ballID)})
		holdingBall = true
	}

	// Movement is evaluated every turn regardless of the action taken,
	// unless resolution took the actor off court: a thrower eliminated
	// by a catch must not move over their cleared position.
	actorOut := turn.EliminatedPlayerID != nil && *turn.EliminatedPlayerID == p.Player.ID
	if !actorOut {
		if dest := planMovement(s, p, holdingBall); dest != nil {
			turn.NewPosition = dest
			turn.StateUpdate.MergePlayer(p.Player.ID, game.PlayerStatePatch{Position: game.SetInt(*dest)})
			if holdingBall && p.BallID != nil {
				// a carried ball rides along with its holder
				turn.StateUpdate.MergeBall(*p.BallID, game.BallStatePatch{Position: game.SetInt(*dest)})
			}
		}
	}

	return turn
}

// resolveThrowTurn plays out a throw: pick the reaction, roll the
// outcome and record the fallout on the turn's patch. The thrower always
// releases the ball, whatever happens next.
func resolveThrowTurn(s *game.GameState, thrower *game.PlayerState, d decision, turn *game.Turn, rng *rand.Rand) {
	ballID := *d.ballID
	turn.StateUpdate.MergePlayer(thrower.Player.ID, game.PlayerStatePatch{BallID: game.ClearInt()})

	var target *game.PlayerState
	if d.targetID != nil {
		target = s.Players[*d.targetID]
	}
	if target == nil || target.Eliminated || target.Position == nil {
		// nothing to throw at: the ball ends up loose at the thrower's feet
		turn.StateUpdate.MergeBall(ballID, game.BallStatePatch{
			Status:   statusPtr(game.BallFree),
			Position: game.SetInt(*thrower.Position),
		})
		return
	}

	reaction := decideReaction(target, rng)
	turn.Reaction = reaction
	result := resolveThrow(thrower, target, reaction, rng)
	turn.ActionResult = result

	switch result {
	case game.ResultHit:
		eliminatePlayer(&turn.StateUpdate, target, true)
		turn.EliminatedPlayerID = uintPtr(target.Player.ID)
		turn.StateUpdate.MergeBall(ballID, game.BallStatePatch{
			Status:   statusPtr(game.BallFree),
			Position: game.SetInt(*target.Position),
		})
	case game.ResultCaught:
		// a caught ball sends the thrower off, not the target, and buys
		// one eliminated teammate of the catcher back onto court
		turn.StateUpdate.MergeBall(ballID, game.BallStatePatch{
			Status:   statusPtr(game.BallHeld),
			Position: game.SetInt(*target.Position),
		})
		turn.StateUpdate.MergePlayer(target.Player.ID, game.PlayerStatePatch{BallID: game.SetInt(ballID)})
		eliminatePlayer(&turn.StateUpdate, thrower, false)
		turn.EliminatedPlayerID = uintPtr(thrower.Player.ID)
		if revivedID, slot := reviveTeammate(s, target); revivedID != nil {
			turn.StateUpdate.MergePlayer(*revivedID, game.PlayerStatePatch{
				Eliminated: boolPtr(false),
				Position:   game.SetInt(slot),
			})
			turn.ReEnteredPlayerID = revivedID
		}
	default: // blocked or dodged: the ball drops free near the target
		turn.StateUpdate.MergeBall(ballID, game.BallStatePatch{
			Status:   statusPtr(game.BallFree),
			Position: game.SetInt(*target.Position),
		})
	}
}

// eliminatePlayer marks a player out: off court and empty-handed. When
// dropHeldBall is set, any ball they were still holding drops free where
// they stood. A thrower eliminated by a catch passes dropHeldBall=false
// because the thrown ball has already changed hands.
func eliminatePlayer(patch *game.GameStatePatch, ps *game.PlayerState, dropHeldBall bool) {
	if dropHeldBall && ps.BallID != nil && ps.Position != nil {
		patch.MergeBall(*ps.BallID, game.BallStatePatch{
			Status:   statusPtr(game.BallFree),
			Position: game.SetInt(*ps.Position),
		})
	}
	patch.MergePlayer(ps.Player.ID, game.PlayerStatePatch{
		Eliminated: boolPtr(true),
		Position:   game.ClearInt(),
		BallID:     game.ClearInt(),
	})
}

// reviveTeammate finds the first eliminated teammate of the catcher (by
// ascending id) and the first open slot on the catcher's side for them
// to re-enter on. Falls back to the side's first slot if every slot is
// somehow taken. Returns (nil, 0) when nobody is waiting to come back.
func reviveTeammate(s *game.GameState, catcher *game.PlayerState) (*uint, int) {
	var revived *uint
	for _, id := range sortedPlayerIDs(s) {
		ps := s.Players[id]
		if ps.Eliminated && ps.Player.IsHome == catcher.Player.IsHome {
			revived = uintPtr(id)
			break
		}
	}
	if revived == nil {
		return nil, 0
	}

	first := 0
	if !catcher.Player.IsHome {
		first = game.PlayersPerTeam
	}
	for slot := first; slot < first+game.PlayersPerTeam; slot++ {
		if !slotOccupied(s, slot, *revived) {
			return revived, slot
		}
	}
	return revived, first
}
