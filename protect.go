package porygon

import "fmt"

var protectMessages = map[ProtectKind]string{
	PROTECT_PROTECT:         "%s protected itself!",
	PROTECT_DETECT:          "%s protected itself!",
	PROTECT_SPIKY_SHIELD:    "%s protected itself!",
	PROTECT_BANEFUL_BUNKER:  "%s protected itself!",
	PROTECT_OBSTRUCT:        "%s protected itself!",
	PROTECT_SILK_TRAP:       "%s protected itself!",
	PROTECT_BURNING_BULWARK: "%s protected itself!",
	PROTECT_KINGS_SHIELD:    "%s protected itself!",
	PROTECT_ENDURE:          "%s braced itself!",
	PROTECT_MAX_GUARD:       "%s protected itself!",
}

// AttemptProtect resolves a protecting move. movedLast reports whether the
// user acts after every other combatant this turn, which makes protection
// pointless and an automatic failure. Success and failure both go through
// the shared consecutive-use counter, so alternating Protect and Detect
// degrades the same ladder.
func AttemptProtect(state *BattleState, playerIndex int, kind ProtectKind, movedLast bool) RuleResult {
	user := state.GetSide(playerIndex).GetActive()

	assertTargetable(user, "AttemptProtect")

	rules := state.Rules()

	if rules.ProtectLadder == LADDER_NONE {
		return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
	}

	volatile := &user.Volatile

	if movedLast {
		volatile.ConsecutiveProtects = 0
		return ruleFail(FAIL_MOVED_LAST, "But it failed!")
	}

	// Gen 2 Detect cannot be used from behind a substitute
	if rules.Gen == 2 && kind == PROTECT_DETECT && user.Sub.Alive() {
		volatile.ConsecutiveProtects = 0
		return ruleFail(FAIL_HAS_SUBSTITUTE, "But it failed!")
	}

	chance := rules.ProtectChance(volatile.ConsecutiveProtects)
	if chance < 1.0 {
		rng := state.CreateRng()
		if rng.Float64() >= chance {
			volatile.ConsecutiveProtects = 0
			return ruleFail(FAIL_CHANCE, "But it failed!")
		}
	}

	volatile.ProtectedThisTurn = true
	volatile.ProtectionMove = kind
	volatile.ConsecutiveProtects++

	return ruleOk(fmt.Sprintf(protectMessages[kind], user.Nickname))
}

// AttemptEndure sets the survive-at-1-HP flag for the rest of the turn. It
// shares the protection ladder, and in gens 3 and 4 it additionally fails
// outright when the user moves last.
func AttemptEndure(state *BattleState, playerIndex int, movedLast bool) RuleResult {
	user := state.GetSide(playerIndex).GetActive()

	assertTargetable(user, "AttemptEndure")

	rules := state.Rules()

	if rules.ProtectLadder == LADDER_NONE {
		return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
	}

	volatile := &user.Volatile

	if movedLast && rules.ProtectLadder == LADDER_HALF_FLOOR_EIGHT {
		volatile.ConsecutiveProtects = 0
		return ruleFail(FAIL_MOVED_LAST, "But it failed!")
	}

	chance := rules.ProtectChance(volatile.ConsecutiveProtects)
	if chance < 1.0 {
		rng := state.CreateRng()
		if rng.Float64() >= chance {
			volatile.ConsecutiveProtects = 0
			return ruleFail(FAIL_CHANCE, "But it failed!")
		}
	}

	volatile.EndureActive = true
	volatile.ProtectionMove = PROTECT_ENDURE
	volatile.ConsecutiveProtects++

	return ruleOk(fmt.Sprintf(protectMessages[PROTECT_ENDURE], user.Nickname))
}

// AttemptMaxGuard never fails its roll but still advances the shared
// counter, degrading any regular protection used afterwards.
func AttemptMaxGuard(state *BattleState, playerIndex int) RuleResult {
	user := state.GetSide(playerIndex).GetActive()

	assertTargetable(user, "AttemptMaxGuard")

	if !state.Rules().Dynamax {
		return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
	}

	volatile := &user.Volatile
	volatile.ProtectedThisTurn = true
	volatile.MaxGuardActive = true
	volatile.ProtectionMove = PROTECT_MAX_GUARD
	volatile.ConsecutiveProtects++

	return ruleOk(fmt.Sprintf(protectMessages[PROTECT_MAX_GUARD], user.Nickname))
}
