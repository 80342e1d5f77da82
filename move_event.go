package porygon

import (
	"fmt"
	"strings"
)

func moveDisplayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

// MoveEvent resolves one combatant's chosen move: the pre-action gauntlet,
// forced-move substitution (charge releases, rampages), then dispatch on the
// move's capability flags.
type MoveEvent struct {
	PlayerIndex int
	MoveSlot    int
	Connected   bool
	Damage      int
	MovedLast   bool
}

func (event MoveEvent) Update(state *BattleState) ([]StateEvent, []string) {
	side, opposingSide := getSidePair(state, event.PlayerIndex)
	user := side.GetActive()
	target := opposingSide.GetActive()

	if !user.Alive() {
		internalLogger.V(1).Info("move skipped, user fainted", "combatant", user.Nickname)
		return nil, nil
	}

	if !user.CanActThisTurn {
		internalLogger.V(1).Info("move skipped, marked unable to act", "combatant", user.Nickname)
		return nil, nil
	}

	// Charge releases and rampages override whatever slot was chosen. The
	// gate has to run while the charge is still up so its passthrough (and
	// its aborts) can see it; the release happens only once the gate passes.
	slot := event.MoveSlot
	wasCharging := user.Volatile.Charging
	if wasCharging {
		slot = user.Volatile.ChargingSlot
	} else if user.Restrictions.RampageSlot >= 0 {
		slot = user.Restrictions.RampageSlot
	}

	canAct, messages := CanAct(state, event.PlayerIndex, slot)
	if !canAct {
		return nil, messages
	}

	if wasCharging {
		slot = FinishChargeMove(state, event.PlayerIndex)
	}

	if slot == STRUGGLE_SLOT {
		return nil, append(messages, event.resolveStruggle(state, user, target)...)
	}

	move := user.Moves[slot].Info
	messages = append(messages, fmt.Sprintf("%s used %s!", user.Nickname, moveDisplayName(move.Name)))

	if !wasCharging {
		user.Moves[slot].PP = max(0, user.Moves[slot].PP-1)
		user.Restrictions.LastMoveSlot = slot

		if move.Flags.Charge {
			skipped, chargeMessages := StartChargeMove(state, event.PlayerIndex, slot)
			messages = append(messages, chargeMessages...)
			if !skipped {
				return nil, messages
			}
		}
	}

	if move.Flags.Rampage && user.Restrictions.RampageSlot < 0 {
		StartRampage(state, event.PlayerIndex, slot)
	}

	switch {
	case move.Flags.Protect == PROTECT_ENDURE:
		result := AttemptEndure(state, event.PlayerIndex, event.MovedLast)
		return nil, append(messages, result.Narration...)

	case move.Flags.Protect == PROTECT_MAX_GUARD:
		result := AttemptMaxGuard(state, event.PlayerIndex)
		return nil, append(messages, result.Narration...)

	case move.Flags.Protect != PROTECT_NONE:
		result := AttemptProtect(state, event.PlayerIndex, move.Flags.Protect, event.MovedLast)
		return nil, append(messages, result.Narration...)

	case move.Flags.Restriction != 0:
		if blocked, blockMessages := targetUnreachable(target); blocked {
			return nil, append(messages, blockMessages...)
		}
		result := ApplyRestriction(state, move.Flags.Restriction, event.PlayerIndex)
		return nil, append(messages, result.Narration...)

	case move.Flags.Imprison:
		result := ApplyImprison(state, event.PlayerIndex)
		return nil, append(messages, result.Narration...)

	case move.Flags.HardTrap:
		if blocked, blockMessages := targetUnreachable(target); blocked {
			return nil, append(messages, blockMessages...)
		}
		result := ApplyHardTrap(state, event.PlayerIndex)
		return nil, append(messages, result.Narration...)

	case move.Flags.Hazard != 0:
		result := SetHazard(state, InvertPlayerIndex(event.PlayerIndex), move.Flags.Hazard)
		return nil, append(messages, result.Narration...)

	case move.Flags.FieldMove != 0:
		result := ApplyFieldMove(state, move.Flags.FieldMove, event.PlayerIndex)
		return nil, append(messages, result.Narration...)

	case move.Flags.Wish:
		result := ScheduleWish(state, event.PlayerIndex)
		return nil, append(messages, result.Narration...)

	case move.Flags.FutureAttack:
		result := ScheduleFutureAttack(state, event.PlayerIndex, event.Damage, moveDisplayName(move.Name))
		return nil, append(messages, result.Narration...)

	case move.Flags.MakesSubstitute:
		return nil, append(messages, makeSubstitute(user)...)

	case move.Flags.Drowsy:
		if blocked, blockMessages := targetUnreachable(target); blocked {
			return nil, append(messages, blockMessages...)
		}
		return nil, append(messages, applyDrowsy(state, target)...)
	}

	if move.Flags.Uproar && state.Field.UproarTurns == 0 {
		state.Field.UproarTurns = 3
		state.Field.UproarSource = user.Nickname
		messages = append(messages, fmt.Sprintf("%s caused an uproar!", user.Nickname))
	}

	connected := event.Connected

	if move.DamageClass != DAMAGE_STATUS {
		switch {
		case target.Volatile.Invulnerable != INVULN_NONE:
			connected = false
			messages = append(messages, fmt.Sprintf("%s avoided the attack!", target.Nickname))

		case !connected:
			messages = append(messages, fmt.Sprintf("%s's attack missed!", user.Nickname))

		case target.Volatile.ProtectedThisTurn:
			connected = false
			messages = append(messages, fmt.Sprintf("%s protected itself!", target.Nickname))

		case move.Flags.Sound && state.Rules().Abilities && target.Ability.Soundproof:
			connected = false
			messages = append(messages, fmt.Sprintf("It doesn't affect %s...", target.Nickname))

		default:
			_, damageMessages := DamageEvent{
				PlayerIndex: InvertPlayerIndex(event.PlayerIndex),
				Damage:      event.Damage,
			}.Update(state)
			messages = append(messages, damageMessages...)

			if move.Flags.Recharge {
				SetRecharge(user)
			}
		}
	}

	if move.Flags.Binding != BIND_NONE {
		result := ApplyBindingMove(state, move.Flags.Binding, event.PlayerIndex, connected)
		messages = append(messages, result.Narration...)
	}

	if move.Flags.ClearsHazards && (connected || move.DamageClass == DAMAGE_STATUS) {
		messages = append(messages, ClearHazards(side)...)
	}

	return nil, messages
}

// targetUnreachable covers targeted non-damaging moves: a protected or
// semi-invulnerable target is simply out of reach.
func targetUnreachable(target *Combatant) (bool, []string) {
	if !target.Alive() {
		return true, []string{"But it failed!"}
	}

	if target.Volatile.ProtectedThisTurn {
		return true, []string{fmt.Sprintf("%s protected itself!", target.Nickname)}
	}

	if target.Volatile.Invulnerable != INVULN_NONE {
		return true, []string{fmt.Sprintf("%s avoided the attack!", target.Nickname)}
	}

	return false, nil
}

func makeSubstitute(user *Combatant) []string {
	if user.Sub.Alive() {
		return []string{fmt.Sprintf("%s already has a substitute!", user.Nickname)}
	}

	cost := user.MaxHp / SUBSTITUTE_COST_DIVISOR
	if user.Hp <= cost {
		return []string{"It was too weak to make a substitute!"}
	}

	user.Damage(cost)
	user.Sub = &Substitute{Hp: cost, MaxHp: cost}

	return []string{fmt.Sprintf("%s put in a substitute!", user.Nickname)}
}

func applyDrowsy(state *BattleState, target *Combatant) []string {
	if target.Status != STATUS_NONE || target.Volatile.DrowsyTurns > 0 {
		return []string{"But it failed!"}
	}

	rules := state.Rules()
	if rules.Abilities && target.Ability.ImmuneToStatus(STATUS_SLEEP) {
		return []string{fmt.Sprintf("%s stayed awake!", target.Nickname)}
	}

	target.Volatile.DrowsyTurns = 2

	return []string{fmt.Sprintf("%s grew drowsy!", target.Nickname)}
}

func (event MoveEvent) resolveStruggle(state *BattleState, user *Combatant, target *Combatant) []string {
	messages := []string{
		fmt.Sprintf("%s has no moves left!", user.Nickname),
		fmt.Sprintf("%s used Struggle!", user.Nickname),
	}

	if target.Volatile.ProtectedThisTurn {
		return append(messages, fmt.Sprintf("%s protected itself!", target.Nickname))
	}

	if target.Volatile.Invulnerable != INVULN_NONE {
		return append(messages, fmt.Sprintf("%s avoided the attack!", target.Nickname))
	}

	_, damageMessages := DamageEvent{
		PlayerIndex: InvertPlayerIndex(event.PlayerIndex),
		Damage:      event.Damage,
	}.Update(state)
	messages = append(messages, damageMessages...)

	recoil := max(1, user.MaxHp/4)
	_, recoilMessages := DamageEvent{
		PlayerIndex:    event.PlayerIndex,
		Damage:         recoil,
		Direct:         true,
		SupressMessage: true,
	}.Update(state)

	messages = append(messages, fmt.Sprintf("%s is damaged by recoil!", user.Nickname))
	messages = append(messages, recoilMessages...)

	return messages
}
