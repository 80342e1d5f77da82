package porygon

import "fmt"

// DelayedEffect is a Wish heal or a Future Sight strike waiting to land.
// One slot of each kind per side; a slot in use rejects new schedules.
type DelayedEffect struct {
	TurnsLeft int
	Amount    int
	// UsesRecipientHp recomputes a Wish heal from whoever receives it,
	// rather than the stored amount.
	UsesRecipientHp bool
	SourceName      string
	MoveName        string
	JustScheduled   bool
}

// ScheduleWish books a heal that lands at the end of the turn after next on
// whatever combatant occupies the user's slot then.
func ScheduleWish(state *BattleState, playerIndex int) RuleResult {
	side := state.GetSide(playerIndex)
	user := side.GetActive()

	assertTargetable(user, "ScheduleWish")

	if side.Wish != nil {
		return ruleFail(FAIL_SLOT_OCCUPIED, "But it failed!")
	}

	wish := &DelayedEffect{
		TurnsLeft:     2,
		SourceName:    user.Nickname,
		JustScheduled: true,
	}

	if state.Rules().WishUsesRecipientHp {
		wish.UsesRecipientHp = true
	} else {
		wish.Amount = max(1, user.MaxHp/2)
	}

	side.Wish = wish

	return ruleOk(fmt.Sprintf("%s made a wish!", user.Nickname))
}

// ScheduleFutureAttack books a strike against the opposing slot two turns
// out. The damage amount comes precomputed from the damage pipeline.
func ScheduleFutureAttack(state *BattleState, attackerIndex int, damage int, moveName string) RuleResult {
	attackerSide, defenderSide := getSidePair(state, attackerIndex)
	attacker := attackerSide.GetActive()

	assertTargetable(attacker, "ScheduleFutureAttack")

	if defenderSide.FutureAttack != nil {
		return ruleFail(FAIL_SLOT_OCCUPIED, "But it failed!")
	}

	defenderSide.FutureAttack = &DelayedEffect{
		TurnsLeft:     2,
		Amount:        damage,
		SourceName:    attacker.Nickname,
		MoveName:      moveName,
		JustScheduled: true,
	}

	return ruleOk(fmt.Sprintf("%s foresaw an attack!", attacker.Nickname))
}

// TickDelayedEffects counts down one side's pending Wish and Future Sight
// and resolves whichever reach zero. Orchestrator-only; the turn an effect
// was scheduled on never counts.
func TickDelayedEffects(state *BattleState, playerIndex int) []string {
	side := state.GetSide(playerIndex)
	messages := make([]string, 0)

	if wish := side.Wish; wish != nil {
		if wish.JustScheduled {
			wish.JustScheduled = false
		} else {
			wish.TurnsLeft--
			if wish.TurnsLeft <= 0 {
				recipient := side.GetActive()
				if recipient.Alive() {
					amount := wish.Amount
					if wish.UsesRecipientHp {
						amount = max(1, recipient.MaxHp/2)
					}

					healed := recipient.Heal(amount)
					if healed > 0 {
						messages = append(messages, fmt.Sprintf("%s's wish came true!", wish.SourceName))
					}
				}

				side.Wish = nil
			}
		}
	}

	if attack := side.FutureAttack; attack != nil {
		if attack.JustScheduled {
			attack.JustScheduled = false
		} else {
			attack.TurnsLeft--
			if attack.TurnsLeft <= 0 {
				target := side.GetActive()
				if target.Alive() {
					target.Damage(attack.Amount)
					messages = append(messages, fmt.Sprintf("%s took the %s attack! (-%d HP)", target.Nickname, attack.MoveName, attack.Amount))

					if target.Hp <= 0 && target.Volatile.EndureActive {
						target.Hp = 1
						messages = append(messages, fmt.Sprintf("%s endured the hit!", target.Nickname))
					}

					if !target.Alive() {
						messages = append(messages, fmt.Sprintf("%s fainted!", target.Nickname))
					}
				}

				side.FutureAttack = nil
			}
		}
	}

	return messages
}
