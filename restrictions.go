package porygon

import (
	"fmt"

	"github.com/samber/lo"
)

// BypassFlags lets certain move categories (Z-moves, Max moves) ignore
// Encore/Disable/Taunt/Torment/Imprison during selection.
type BypassFlags struct {
	IgnoreRestrictions bool
}

// STRUGGLE_SLOT is the canonical fallback returned when every real move is
// filtered out.
const STRUGGLE_SLOT = -1

// moves that can never be the target of Encore
var encoreDisallowed = map[string]bool{
	"transform":   true,
	"mimic":       true,
	"sketch":      true,
	"mirror-move": true,
	"encore":      true,
	"struggle":    true,
}

// gen 2 additionally refuses these
var encoreDisallowedGen2 = map[string]bool{
	"sleep-talk": true,
	"metronome":  true,
}

// LegalMoves filters a combatant's move slots down to what it may select
// this turn. An empty result never happens; Struggle fills in.
func LegalMoves(c *Combatant, opponent *Combatant, bypass BypassFlags) []int {
	restrictions := &c.Restrictions

	usable := make([]int, 0, len(c.Moves))
	for slot, move := range c.Moves {
		if move.PP > 0 {
			usable = append(usable, slot)
		}
	}

	// Encore forces the encored move while it still has uses, and simply
	// ends when it runs dry.
	if restrictions.EncoreSlot >= 0 {
		if c.Moves[restrictions.EncoreSlot].PP > 0 {
			usable = []int{restrictions.EncoreSlot}
		} else {
			restrictions.EncoreSlot = -1
			restrictions.EncoreTurns = 0
		}
	}

	legal := lo.Filter(usable, func(slot int, _ int) bool {
		move := c.Moves[slot].Info

		if bypass.IgnoreRestrictions || move.Flags.BypassesRestrictions {
			// Max Guard is the one non-damaging move Taunt still blocks
			return !(restrictions.TauntTurns > 0 && move.Flags.Protect == PROTECT_MAX_GUARD)
		}

		if slot == restrictions.DisableSlot {
			return false
		}

		if restrictions.TauntTurns > 0 && move.DamageClass == DAMAGE_STATUS {
			return false
		}

		if opponent != nil && opponent.Volatile.Imprisoning {
			shared := lo.ContainsBy(opponent.Moves, func(opMove BattleMove) bool {
				return opMove.Info.Name == move.Name
			})
			if shared {
				return false
			}
		}

		return true
	})

	// Torment never strands the combatant on its last usable move
	if restrictions.Tormented && restrictions.LastMoveSlot >= 0 && len(legal) > 1 {
		legal = lo.Filter(legal, func(slot int, _ int) bool {
			return slot != restrictions.LastMoveSlot
		})
	}

	if len(legal) > 0 {
		return legal
	}

	// Bypass selection falls back to the unrestricted set before Struggle
	if bypass.IgnoreRestrictions && len(usable) > 0 {
		return usable
	}

	return []int{STRUGGLE_SLOT}
}

// ApplyRestriction applies Encore, Disable, Taunt or Torment from the
// attacker's active combatant onto the defender's. Re-applying an active
// restriction is a rule failure, never a duration stack.
func ApplyRestriction(state *BattleState, kind RestrictionKind, attackerIndex int) RuleResult {
	_, defenderSide := getSidePair(state, attackerIndex)
	defender := defenderSide.GetActive()

	assertTargetable(defender, "ApplyRestriction")

	rules := state.Rules()
	rng := state.CreateRng()
	restrictions := &defender.Restrictions

	var result RuleResult

	switch kind {
	case RESTRICT_ENCORE:
		if restrictions.EncoreSlot >= 0 {
			return ruleFail(FAIL_ALREADY_RESTRICTED, "But it failed!")
		}
		if restrictions.LastMoveSlot < 0 {
			return ruleFail(FAIL_DISALLOWED_TARGET, "But it failed!")
		}

		lastMove := defender.Moves[restrictions.LastMoveSlot].Info
		if encoreDisallowed[lastMove.Name] || (rules.Gen == 2 && encoreDisallowedGen2[lastMove.Name]) {
			return ruleFail(FAIL_DISALLOWED_TARGET, "But it failed!")
		}
		if defender.Moves[restrictions.LastMoveSlot].PP == 0 {
			return ruleFail(FAIL_DISALLOWED_TARGET, "But it failed!")
		}

		restrictions.EncoreSlot = restrictions.LastMoveSlot
		restrictions.EncoreTurns = rules.EncoreTurns(rng)
		result = ruleOk(fmt.Sprintf("%s received an encore!", defender.Nickname))

	case RESTRICT_DISABLE:
		if restrictions.DisableSlot >= 0 {
			return ruleFail(FAIL_ALREADY_RESTRICTED, "But it failed!")
		}
		if restrictions.LastMoveSlot < 0 {
			return ruleFail(FAIL_DISALLOWED_TARGET, "But it failed!")
		}

		restrictions.DisableSlot = restrictions.LastMoveSlot
		restrictions.DisableTurns = rules.DisableTurns(rng)
		result = ruleOk(fmt.Sprintf("%s's %s was disabled!", defender.Nickname, defender.Moves[restrictions.DisableSlot].Info.Name))

	case RESTRICT_TAUNT:
		if restrictions.TauntTurns > 0 {
			return ruleFail(FAIL_ALREADY_RESTRICTED, "But it failed!")
		}

		restrictions.TauntTurns = 3
		result = ruleOk(fmt.Sprintf("%s fell for the taunt!", defender.Nickname))

	case RESTRICT_TORMENT:
		if restrictions.Tormented {
			return ruleFail(FAIL_ALREADY_RESTRICTED, "But it failed!")
		}

		restrictions.Tormented = true
		result = ruleOk(fmt.Sprintf("%s was subjected to torment!", defender.Nickname))

	default:
		panic(fmt.Errorf("unknown restriction kind %d", kind))
	}

	// A mental herb shrugs the restriction off the moment it lands
	if rules.HeldItems && rules.MentalHerbCuresRestrictions() && defender.Item.CuresMentalEffects {
		clearRestriction(restrictions, kind)
		defender.ConsumeItem()

		return RuleResult{
			Succeeded: false,
			Reason:    FAIL_ITEM_CURED,
			Narration: append(result.Narration, fmt.Sprintf("%s cured itself with its Mental Herb!", defender.Nickname)),
		}
	}

	return result
}

func clearRestriction(restrictions *RestrictionState, kind RestrictionKind) {
	switch kind {
	case RESTRICT_ENCORE:
		restrictions.EncoreSlot = -1
		restrictions.EncoreTurns = 0
	case RESTRICT_DISABLE:
		restrictions.DisableSlot = -1
		restrictions.DisableTurns = 0
	case RESTRICT_TAUNT:
		restrictions.TauntTurns = 0
	case RESTRICT_TORMENT:
		restrictions.Tormented = false
	}
}

// ApplyImprison marks the user's moves as sealed for the opponent.
func ApplyImprison(state *BattleState, playerIndex int) RuleResult {
	user := state.GetSide(playerIndex).GetActive()

	assertTargetable(user, "ApplyImprison")

	if user.Volatile.Imprisoning {
		return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
	}

	user.Volatile.Imprisoning = true

	return ruleOk(fmt.Sprintf("%s sealed the opponent's moves!", user.Nickname))
}
