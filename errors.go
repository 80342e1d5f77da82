package porygon

import "fmt"

// FailReason classifies why a legal-to-request action was disallowed by the
// current battle state. Rule failures are values, never errors or panics.
type FailReason int

const (
	FAIL_NONE FailReason = iota
	FAIL_CHANCE
	FAIL_MOVED_LAST
	FAIL_ALREADY_ACTIVE
	FAIL_ALREADY_TRAPPED
	FAIL_ALREADY_RESTRICTED
	FAIL_HAS_SUBSTITUTE
	FAIL_BLOCKED_BY_SUBSTITUTE
	FAIL_NOT_ENOUGH_HP
	FAIL_IMMUNE
	FAIL_MISSED
	FAIL_UNAVAILABLE
	FAIL_DISALLOWED_TARGET
	FAIL_SLOT_OCCUPIED
	FAIL_ITEM_CURED
	FAIL_MAX_LAYERS
)

// RuleResult is the outcome of attempting a rule-governed state change.
// Narration always carries the player-facing lines, success or not.
type RuleResult struct {
	Succeeded bool
	Reason    FailReason
	Narration []string
}

func ruleOk(messages ...string) RuleResult {
	return RuleResult{Succeeded: true, Narration: messages}
}

func ruleFail(reason FailReason, messages ...string) RuleResult {
	return RuleResult{Succeeded: false, Reason: reason, Narration: messages}
}

// assertTargetable guards apply-operations against fainted targets. Callers
// are required to check Alive() before mutating a combatant; getting here
// with a fainted one is a bug in the caller, not a rule failure.
func assertTargetable(c *Combatant, op string) {
	if c == nil {
		panic(fmt.Errorf("%s called with nil combatant", op))
	}

	if !c.Alive() {
		panic(fmt.Errorf("%s called on fainted combatant %s", op, c.Nickname))
	}
}
