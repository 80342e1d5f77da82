package porygon

import "fmt"

var chargeMessages = map[InvulnKind]string{
	INVULN_NONE:        "%s began charging power!",
	INVULN_AIR:         "%s flew up high!",
	INVULN_UNDERGROUND: "%s burrowed its way under the ground!",
	INVULN_UNDERWATER:  "%s hid underwater!",
	INVULN_PHANTOM:     "%s vanished instantly!",
	INVULN_SKY_DROP:    "%s took its target into the sky!",
}

// StartChargeMove begins a two-turn move for the active combatant. Returns
// whether the charge turn was skipped, in which case the caller executes the
// move immediately, plus narration for whichever path was taken.
func StartChargeMove(state *BattleState, playerIndex int, slot int) (bool, []string) {
	side, opposingSide := getSidePair(state, playerIndex)
	user := side.GetActive()
	move := user.Moves[slot].Info

	if !move.Flags.Charge {
		panic(fmt.Errorf("StartChargeMove called with non-charging move %s", move.Name))
	}

	rules := state.Rules()
	messages := []string{fmt.Sprintf(chargeMessages[move.Flags.SemiInvulnerable], user.Nickname)}

	if move.Flags.HasChargeBoost {
		if user.ApplyStage(move.Flags.ChargeBoostStat, 1) != 0 {
			messages = append(messages, fmt.Sprintf("%s's %s rose!", user.Nickname, statNames[move.Flags.ChargeBoostStat]))
		}
	}

	if move.Flags.ChargeSkipWeather != WEATHER_NONE && state.Field.Weather == move.Flags.ChargeSkipWeather {
		return true, messages
	}

	if rules.HeldItems && user.Item.SkipChargeTurn {
		user.ConsumeItem()
		messages = append(messages, fmt.Sprintf("%s became fully charged due to its Power Herb!", user.Nickname))
		return true, messages
	}

	user.Volatile.Charging = true
	user.Volatile.ChargingSlot = slot
	user.Volatile.Invulnerable = move.Flags.SemiInvulnerable

	if move.Flags.SemiInvulnerable == INVULN_SKY_DROP {
		opposingSide.GetActive().Volatile.SkyDropHeld = true
	}

	return false, messages
}

// FinishChargeMove releases a charging combatant on its execution turn and
// returns the stored move slot. Calling it on a combatant that is not
// charging is a caller bug.
func FinishChargeMove(state *BattleState, playerIndex int) int {
	side, opposingSide := getSidePair(state, playerIndex)
	user := side.GetActive()

	if !user.Volatile.Charging {
		panic(fmt.Errorf("FinishChargeMove called on %s which is not charging", user.Nickname))
	}

	slot := user.Volatile.ChargingSlot

	if user.Volatile.Invulnerable == INVULN_SKY_DROP {
		opposingSide.GetActive().Volatile.SkyDropHeld = false
	}

	user.Volatile.Charging = false
	user.Volatile.ChargingSlot = 0
	user.Volatile.Invulnerable = INVULN_NONE

	return slot
}

// SetRecharge marks the combatant as spending its next turn immobile. Only
// called when the recharging move actually connected.
func SetRecharge(c *Combatant) {
	c.Restrictions.MustRecharge = true
}

// StartRampage locks the combatant into repeating a move for 2-3 turns.
func StartRampage(state *BattleState, playerIndex int, slot int) {
	user := state.GetSide(playerIndex).GetActive()
	rng := state.CreateRng()

	user.Restrictions.RampageSlot = slot
	user.Restrictions.RampageTurns = 2 + rng.IntN(2)
	user.Restrictions.RampageDisrupted = false
	user.Restrictions.RampageDisruptedFinalTurn = false
	user.Restrictions.RampageDisruptReason = 0
}

// DisruptRampage records that something stopped the rampage mid-swing. The
// end-of-turn pass decides whether fatigue confusion still applies.
func DisruptRampage(c *Combatant, reason int) {
	if c.Restrictions.RampageSlot < 0 {
		return
	}

	c.Restrictions.RampageDisrupted = true
	c.Restrictions.RampageDisruptedFinalTurn = c.Restrictions.RampageTurns == 1
	c.Restrictions.RampageDisruptReason = reason
}

func clearRampage(restrictions *RestrictionState) {
	restrictions.RampageSlot = -1
	restrictions.RampageTurns = 0
	restrictions.RampageDisrupted = false
	restrictions.RampageDisruptedFinalTurn = false
	restrictions.RampageDisruptReason = 0
}

// TickRampage advances an active rampage at end of turn, applying fatigue
// confusion when it runs its course. Orchestrator-only.
func TickRampage(state *BattleState, playerIndex int) []string {
	mon := state.GetSide(playerIndex).GetActive()
	restrictions := &mon.Restrictions

	if restrictions.RampageSlot < 0 {
		return nil
	}

	rules := state.Rules()

	if restrictions.RampageDisrupted {
		confuse := rules.RampageConfusesOnFinalTurnDisrupt && restrictions.RampageDisruptedFinalTurn
		clearRampage(restrictions)

		if confuse {
			return rampageConfusion(state, mon)
		}

		return nil
	}

	restrictions.RampageTurns--
	if restrictions.RampageTurns > 0 {
		return nil
	}

	clearRampage(restrictions)

	return rampageConfusion(state, mon)
}

func rampageConfusion(state *BattleState, mon *Combatant) []string {
	if !mon.Alive() || mon.Status == STATUS_SLEEP || mon.Status == STATUS_FROZEN {
		return nil
	}
	if mon.Volatile.ConfusionTurns > 0 {
		return nil
	}
	if state.Rules().Abilities && mon.Ability.ConfusionImmune {
		return nil
	}

	rng := state.CreateRng()
	mon.Volatile.ConfusionTurns = rng.IntN(4) + 2
	mon.Volatile.ConfusionJustApplied = true

	return []string{fmt.Sprintf("%s became confused due to fatigue!", mon.Nickname)}
}
