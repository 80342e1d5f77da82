package porygon

import "fmt"

// abortCharge drops a charge in progress when its user is prevented from
// acting, releasing a held Sky Drop target with it.
func abortCharge(state *BattleState, playerIndex int) {
	side, opposingSide := getSidePair(state, playerIndex)
	user := side.GetActive()

	if !user.Volatile.Charging {
		return
	}

	if user.Volatile.Invulnerable == INVULN_SKY_DROP {
		opposingSide.GetActive().Volatile.SkyDropHeld = false
	}

	user.Volatile.Charging = false
	user.Volatile.ChargingSlot = 0
	user.Volatile.Invulnerable = INVULN_NONE
}

// CanAct runs the fixed pre-action gauntlet for the active combatant:
// recharge, flinch, confusion, then a passthrough for a charge mid-flight,
// then sleep, freeze, binding (gen 1) and paralysis, in that order.
// moveSlot is what the combatant is trying to use, which
// matters only for moves usable while asleep. Side effects of the gauntlet
// (confusion self-hits, waking up, thawing, rampage disruption) are applied
// directly; the returned bool says whether the chosen action still happens.
func CanAct(state *BattleState, playerIndex int, moveSlot int) (bool, []string) {
	mon := state.GetSide(playerIndex).GetActive()

	assertTargetable(mon, "CanAct")

	rules := state.Rules()
	volatile := &mon.Volatile
	messages := make([]string, 0)

	if mon.Restrictions.MustRecharge {
		mon.Restrictions.MustRecharge = false
		abortCharge(state, playerIndex)
		return false, []string{fmt.Sprintf("%s must recharge!", mon.Nickname)}
	}

	if volatile.Flinched {
		flinchImmune := volatile.Dynamaxed || (rules.Abilities && mon.Ability.FlinchImmune)
		if !flinchImmune {
			if rules.FlinchDisruptsRampage {
				DisruptRampage(mon, DISRUPT_FLINCH)
			}
			abortCharge(state, playerIndex)
			return false, []string{fmt.Sprintf("%s flinched and couldn't move!", mon.Nickname)}
		}
	}

	if volatile.ConfusionTurns > 0 {
		if !volatile.ConfusionJustApplied {
			volatile.ConfusionTurns--
		}

		if volatile.ConfusionTurns == 0 {
			messages = append(messages, fmt.Sprintf("%s snapped out of its confusion!", mon.Nickname))
		} else {
			messages = append(messages, fmt.Sprintf("%s is confused!", mon.Nickname))

			rng := state.CreateRng()
			if rng.Float64() < rules.ConfusionSelfHitChance {
				damage := max(1, mon.MaxHp/8)
				mon.Damage(damage)
				DisruptRampage(mon, DISRUPT_CONFUSION)
				abortCharge(state, playerIndex)

				messages = append(messages, fmt.Sprintf("%s hurt itself in its confusion! (-%d HP)", mon.Nickname, damage))
				if !mon.Alive() {
					messages = append(messages, fmt.Sprintf("%s fainted!", mon.Nickname))
				}

				return false, messages
			}
		}
	}

	// A combatant held by Sky Drop loses its turn outright. A charging one
	// passes straight through to execute.
	if volatile.SkyDropHeld {
		abortCharge(state, playerIndex)
		return false, append(messages, fmt.Sprintf("%s is being held in the sky!", mon.Nickname))
	}

	if volatile.Charging {
		return true, messages
	}

	if mon.Status == STATUS_SLEEP {
		if volatile.SleepJustApplied {
			abortCharge(state, playerIndex)
			return false, append(messages, fmt.Sprintf("%s is fast asleep.", mon.Nickname))
		}

		mon.SleepTurns--
		if mon.SleepTurns <= 0 {
			mon.Status = STATUS_NONE
			mon.SleepTurns = 0
			messages = append(messages, fmt.Sprintf("%s woke up!", mon.Nickname))

			// Gen 1 spends the waking turn doing nothing
			if rules.SleepExtraTurnAfterWake {
				abortCharge(state, playerIndex)
				return false, messages
			}
		} else {
			messages = append(messages, fmt.Sprintf("%s is fast asleep.", mon.Nickname))

			usableAsleep := moveSlot >= 0 && moveSlot < len(mon.Moves) && mon.Moves[moveSlot].Info.Flags.UsableAsleep
			if !usableAsleep {
				DisruptRampage(mon, DISRUPT_SLEEP)
				abortCharge(state, playerIndex)
				return false, messages
			}
		}
	}

	if mon.Status == STATUS_FROZEN {
		rng := state.CreateRng()
		if rng.Float64() < rules.ThawChance {
			mon.Status = STATUS_NONE
			messages = append(messages, fmt.Sprintf("%s thawed out!", mon.Nickname))
		} else {
			DisruptRampage(mon, DISRUPT_FREEZE)
			abortCharge(state, playerIndex)
			return false, append(messages, fmt.Sprintf("%s is frozen solid!", mon.Nickname))
		}
	}

	// Gen 1 binding locks the target out of acting entirely
	if rules.BindingPreventsAction && mon.Restrictions.PartialTrapTurns > 0 && !mon.Restrictions.TrapJustSet {
		abortCharge(state, playerIndex)
		return false, append(messages, fmt.Sprintf("%s can't move!", mon.Nickname))
	}

	if mon.Status == STATUS_PARA {
		rng := state.CreateRng()
		if rng.Float64() < rules.ParalysisFullChance {
			if rules.ParalysisDisruptsRampage {
				DisruptRampage(mon, DISRUPT_PARA)
			}
			abortCharge(state, playerIndex)
			return false, append(messages, fmt.Sprintf("%s is paralyzed! It can't move!", mon.Nickname))
		}
	}

	return true, messages
}
