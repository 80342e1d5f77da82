package porygon

import (
	"fmt"

	"github.com/samber/lo"
)

// HazardState tracks entry hazards on one side of the field.
type HazardState struct {
	StealthRock bool
	Spikes      int
	ToxicSpikes int
	StickyWeb   bool
	SteelSpikes bool
}

func (h *HazardState) Any() bool {
	return h.StealthRock || h.Spikes > 0 || h.ToxicSpikes > 0 || h.StickyWeb || h.SteelSpikes
}

// ClearAll removes every hazard (Rapid Spin, Defog, Court Change).
func (h *HazardState) ClearAll() {
	*h = HazardState{}
}

// rockEffectiveness and steelEffectiveness cover only the two attacking
// types hazards are made of. The full type chart belongs to the damage
// pipeline; hazard chip damage is engine behavior.
var rockEffectiveness = map[PokemonType]float64{
	TYPE_FIGHTING: 0.5,
	TYPE_GROUND:   0.5,
	TYPE_STEEL:    0.5,
	TYPE_FLYING:   2,
	TYPE_BUG:      2,
	TYPE_FIRE:     2,
	TYPE_ICE:      2,
}

var steelEffectiveness = map[PokemonType]float64{
	TYPE_STEEL:    0.5,
	TYPE_FIRE:     0.5,
	TYPE_WATER:    0.5,
	TYPE_ELECTRIC: 0.5,
	TYPE_ROCK:     2,
	TYPE_ICE:      2,
	TYPE_FAIRY:    2,
}

func typeMultiplier(chart map[PokemonType]float64, types [2]PokemonType) float64 {
	multiplier := 1.0
	for _, t := range types {
		if t == TYPE_NONE {
			continue
		}
		if effectiveness, ok := chart[t]; ok {
			multiplier *= effectiveness
		}
	}

	return multiplier
}

var spikesDamage = map[int]float64{1: 1.0 / 8.0, 2: 1.0 / 6.0, 3: 1.0 / 4.0}

// SetHazard lays a hazard on the given side. Fails when the hazard does not
// exist in the battle's generation or its layers are maxed out.
func SetHazard(state *BattleState, playerIndex int, kind HazardKind) RuleResult {
	hazards := &state.GetSide(playerIndex).Effects.Hazards
	rules := state.Rules()

	switch kind {
	case HAZARD_STEALTH_ROCK:
		if !rules.StealthRock {
			return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
		}
		if hazards.StealthRock {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		hazards.StealthRock = true
		return ruleOk("Sharp rocks scattered around the opposing team!")

	case HAZARD_SPIKES:
		if rules.SpikesMaxLayers == 0 {
			return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
		}
		if hazards.Spikes >= rules.SpikesMaxLayers {
			return ruleFail(FAIL_MAX_LAYERS, "But it failed!")
		}
		hazards.Spikes++
		return ruleOk("Spikes scattered around the opposing team!")

	case HAZARD_TOXIC_SPIKES:
		if !rules.ToxicSpikes {
			return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
		}
		if hazards.ToxicSpikes >= 2 {
			return ruleFail(FAIL_MAX_LAYERS, "But it failed!")
		}
		hazards.ToxicSpikes++
		return ruleOk("Toxic Spikes scattered around the opposing team!")

	case HAZARD_STICKY_WEB:
		if !rules.StickyWeb {
			return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
		}
		if hazards.StickyWeb {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		hazards.StickyWeb = true
		return ruleOk("A sticky web spread across the opposing team!")

	case HAZARD_STEEL_SPIKES:
		if !rules.SteelSpikes {
			return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
		}
		if hazards.SteelSpikes {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		hazards.SteelSpikes = true
		return ruleOk("Sharp steel spikes scattered around the opposing team!")
	}

	panic(fmt.Errorf("unknown hazard kind %d", kind))
}

func isGrounded(state *BattleState, c *Combatant) bool {
	if state.Field.Gravity {
		return true
	}

	if c.HasType(TYPE_FLYING) {
		return false
	}

	if state.Rules().Abilities && c.Ability.Levitate {
		return false
	}

	return true
}

// ApplyEntryHazards runs the full switch-in gauntlet against the side's
// hazards and returns the narration. Damage and status are applied directly.
func ApplyEntryHazards(state *BattleState, playerIndex int) []string {
	side := state.GetSide(playerIndex)
	mon := side.GetActive()
	hazards := &side.Effects.Hazards
	rules := state.Rules()

	if !hazards.Any() {
		return nil
	}

	messages := make([]string, 0)

	if rules.HeldItems && mon.Item.HazardImmunity {
		return []string{fmt.Sprintf("%s's boots protected it from hazards!", mon.Nickname)}
	}

	magicGuard := rules.Abilities && mon.Ability.MagicGuard
	grounded := isGrounded(state, mon)

	if hazards.StealthRock && !magicGuard {
		multiplier := typeMultiplier(rockEffectiveness, mon.Types)
		if multiplier > 0 {
			damage := max(1, int(float64(mon.MaxHp)*multiplier/8))
			mon.Damage(damage)
			messages = append(messages, fmt.Sprintf("Pointed stones dug into %s! (-%d HP)", mon.Nickname, damage))
		}
	}

	if hazards.Spikes > 0 && grounded && !magicGuard {
		fraction := spikesDamage[hazards.Spikes]
		if rules.SpikesMaxLayers == 1 {
			fraction = 1.0 / 8.0
		}
		damage := max(1, int(float64(mon.MaxHp)*fraction))
		mon.Damage(damage)
		messages = append(messages, fmt.Sprintf("%s was hurt by the spikes! (-%d HP)", mon.Nickname, damage))
	}

	if hazards.ToxicSpikes > 0 && grounded && mon.Alive() {
		switch {
		case mon.HasType(TYPE_POISON):
			hazards.ToxicSpikes = 0
			messages = append(messages, fmt.Sprintf("%s absorbed the Toxic Spikes!", mon.Nickname))
		case mon.HasType(TYPE_STEEL):
			// immune, no narration
		case rules.Abilities && (mon.Ability.ImmuneToStatus(STATUS_POISON) || mon.Ability.ImmuneToStatus(STATUS_TOXIC)):
			messages = append(messages, fmt.Sprintf("%s's ability prevented the poison!", mon.Nickname))
		case mon.Status == STATUS_NONE:
			if hazards.ToxicSpikes == 1 {
				mon.Status = STATUS_POISON
				messages = append(messages, fmt.Sprintf("%s was poisoned by the Toxic Spikes!", mon.Nickname))
			} else {
				mon.Status = STATUS_TOXIC
				mon.ToxicCount = 1
				messages = append(messages, fmt.Sprintf("%s was badly poisoned by the Toxic Spikes!", mon.Nickname))
			}
		}
	}

	if hazards.StickyWeb && grounded && mon.Alive() {
		if rules.Abilities && mon.Ability.StatDropImmune {
			messages = append(messages, fmt.Sprintf("%s's ability prevents stat reduction!", mon.Nickname))
		} else if mon.ApplyStage(STAT_SPEED, -1) != 0 {
			messages = append(messages, fmt.Sprintf("The sticky web lowered %s's Speed!", mon.Nickname))
		}
	}

	if hazards.SteelSpikes && !magicGuard && mon.Alive() {
		multiplier := typeMultiplier(steelEffectiveness, mon.Types)
		if multiplier > 0 {
			damage := max(1, int(float64(mon.MaxHp)*multiplier/8))
			mon.Damage(damage)
			messages = append(messages, fmt.Sprintf("Sharp steel bit into %s! (-%d HP)", mon.Nickname, damage))
		}
	}

	return messages
}

// ClearHazards removes every hazard on a side, returning what was swept.
func ClearHazards(side *Side) []string {
	hazards := &side.Effects.Hazards

	if !hazards.Any() {
		return nil
	}

	cleared := make([]string, 0)
	if hazards.StealthRock {
		cleared = append(cleared, "Stealth Rock")
	}
	if hazards.Spikes > 0 {
		cleared = append(cleared, fmt.Sprintf("Spikes (x%d)", hazards.Spikes))
	}
	if hazards.ToxicSpikes > 0 {
		cleared = append(cleared, fmt.Sprintf("Toxic Spikes (x%d)", hazards.ToxicSpikes))
	}
	if hazards.StickyWeb {
		cleared = append(cleared, "Sticky Web")
	}
	if hazards.SteelSpikes {
		cleared = append(cleared, "Steel Spikes")
	}

	hazards.ClearAll()

	return lo.Map(cleared, func(name string, _ int) string {
		return fmt.Sprintf("%s disappeared from around %s's team!", name, side.Name)
	})
}
