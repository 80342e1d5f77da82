package porygon

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// BindingDisplayName renders a binding move identifier for narration,
// e.g. "fire-spin" -> "Fire Spin".
func BindingDisplayName(kind BindingKind) string {
	return titleCaser.String(strings.ReplaceAll(bindingNames[kind], "-", " "))
}

var bindingStartMessages = map[BindingKind]string{
	BIND_BIND:         "%s was squeezed by %s!",
	BIND_WRAP:         "%s was wrapped by %s!",
	BIND_FIRE_SPIN:    "%s became trapped in the fiery vortex!",
	BIND_CLAMP:        "%s was clamped by %s!",
	BIND_WHIRLPOOL:    "%s became trapped in the vortex!",
	BIND_MAGMA_STORM:  "%s became trapped by swirling magma!",
	BIND_SAND_TOMB:    "%s became trapped by the quicksand!",
	BIND_INFESTATION:  "%s has been afflicted with an infestation by %s!",
	BIND_SNAP_TRAP:    "%s got trapped by the Snap Trap!",
	BIND_THUNDER_CAGE: "%s was caught in the Thunder Cage!",
}

func bindingStartMessage(kind BindingKind, defender string, attacker string) string {
	template := bindingStartMessages[kind]

	if strings.Count(template, "%s") == 2 {
		return fmt.Sprintf(template, defender, attacker)
	}

	return fmt.Sprintf(template, defender)
}

// ApplyBindingMove traps the opposing active combatant in a damaging bind.
// connected reports whether the move's hit actually landed this turn; a
// binding move that missed or was blocked never traps.
func ApplyBindingMove(state *BattleState, kind BindingKind, attackerIndex int, connected bool) RuleResult {
	attackerSide, defenderSide := getSidePair(state, attackerIndex)
	attacker := attackerSide.GetActive()
	defender := defenderSide.GetActive()

	assertTargetable(defender, "ApplyBindingMove")

	rules := state.Rules()
	spec := rules.Binding(kind)

	if !spec.Available {
		return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
	}

	if spec.GhostImmune && defender.HasType(TYPE_GHOST) {
		return ruleFail(FAIL_IMMUNE, fmt.Sprintf("It doesn't affect %s...", defender.Nickname))
	}

	if !connected {
		return ruleFail(FAIL_MISSED)
	}

	// A substitute, even one this very hit just broke, blocks the trap
	if defender.Sub.Alive() || defender.Volatile.SubJustBroke {
		return ruleFail(FAIL_BLOCKED_BY_SUBSTITUTE)
	}

	// Re-applying a binding move to an already-trapped target refreshes
	// neither duration nor damage
	if defender.Restrictions.PartialTrapTurns > 0 {
		return ruleFail(FAIL_ALREADY_TRAPPED, fmt.Sprintf("%s is already trapped!", defender.Nickname))
	}

	turns := 0
	if rules.HeldItems && attacker.Item.ExtendsBindingMoves && rules.GripClawTurns > 0 {
		turns = rules.GripClawTurns
	} else {
		turns = spec.RollTurns(state.CreateRng())
	}

	fraction := rules.BindingFraction
	if rules.HeldItems && attacker.Item.BoostsBindingMoves {
		fraction = rules.BindingFractionBoosted
	}

	restrictions := &defender.Restrictions
	restrictions.PartialTrap = kind
	restrictions.PartialTrapTurns = turns
	restrictions.PartialTrapFraction = fraction
	restrictions.TrapJustSet = true
	restrictions.Trapped = true
	restrictions.TrapSource = attacker.Nickname

	internalLogger.V(1).Info("binding move trapped target",
		"move", bindingNames[kind],
		"target", defender.Nickname,
		"turns", turns,
		"fraction", fraction,
	)

	return ruleOk(bindingStartMessage(kind, defender.Nickname, attacker.Nickname))
}

// ApplyHardTrap sets a switch-preventing trap with no residual damage and no
// duration (Mean Look family). Cleared only by the trapped side fainting or
// a switch-freeing item.
func ApplyHardTrap(state *BattleState, attackerIndex int) RuleResult {
	attackerSide, defenderSide := getSidePair(state, attackerIndex)
	attacker := attackerSide.GetActive()
	defender := defenderSide.GetActive()

	assertTargetable(defender, "ApplyHardTrap")

	rules := state.Rules()

	if rules.GhostEscapesTraps() && defender.HasType(TYPE_GHOST) {
		return ruleFail(FAIL_IMMUNE, fmt.Sprintf("It doesn't affect %s...", defender.Nickname))
	}

	if defender.Restrictions.Trapped {
		return ruleFail(FAIL_ALREADY_TRAPPED, "But it failed!")
	}

	defender.Restrictions.Trapped = true
	defender.Restrictions.TrapSource = attacker.Nickname

	return ruleOk(fmt.Sprintf("%s can no longer escape!", defender.Nickname))
}

// TickBindingDamage applies one turn of binding damage and handles release.
// Only the end-of-turn orchestrator may call it, and only while a partial
// trap is actually active; ticking an unset trap is a caller bug.
func TickBindingDamage(state *BattleState, playerIndex int) []string {
	mon := state.GetSide(playerIndex).GetActive()
	restrictions := &mon.Restrictions

	if restrictions.PartialTrap == BIND_NONE {
		panic(fmt.Errorf("TickBindingDamage called on %s with no active binding", mon.Nickname))
	}

	// No damage on the turn the trap was set
	if restrictions.TrapJustSet {
		restrictions.TrapJustSet = false
		return nil
	}

	messages := make([]string, 0)

	restrictions.PartialTrapTurns--

	magicGuard := state.Rules().Abilities && mon.Ability.MagicGuard
	if !magicGuard && mon.Alive() {
		damage := max(1, int(float64(mon.MaxHp)*restrictions.PartialTrapFraction))
		mon.Damage(damage)
		messages = append(messages, fmt.Sprintf("%s is hurt by %s! (-%d HP)", mon.Nickname, BindingDisplayName(restrictions.PartialTrap), damage))
	}

	if restrictions.PartialTrapTurns <= 0 {
		kind := restrictions.PartialTrap
		restrictions.PartialTrap = BIND_NONE
		restrictions.PartialTrapTurns = 0
		restrictions.PartialTrapFraction = 0
		restrictions.Trapped = false
		restrictions.TrapSource = ""

		messages = append(messages, fmt.Sprintf("%s was freed from %s!", mon.Nickname, BindingDisplayName(kind)))
	}

	return messages
}
