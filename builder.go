package porygon

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var builderLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "combatant-builder").Logger()
	return &logger
}

// CombatantBuilder assembles a Combatant with its ability, item and move
// capabilities resolved from a registry up front, so nothing is looked up by
// name once the battle is running.
type CombatantBuilder struct {
	combatant Combatant
	data      *Registry
}

func NewCombatantBuilder(nickname string, data *Registry) *CombatantBuilder {
	return &CombatantBuilder{
		combatant: Combatant{
			Nickname:     nickname,
			Level:        50,
			MaxHp:        200,
			Hp:           200,
			RawSpeed:     100,
			Restrictions: newRestrictionState(),
		},
		data: data,
	}
}

func (cb *CombatantBuilder) SetLevel(level int) *CombatantBuilder {
	cb.combatant.Level = level
	return cb
}

func (cb *CombatantBuilder) SetMaxHp(maxHp int) *CombatantBuilder {
	cb.combatant.MaxHp = maxHp
	cb.combatant.Hp = maxHp
	return cb
}

func (cb *CombatantBuilder) SetSpeed(speed int) *CombatantBuilder {
	cb.combatant.RawSpeed = speed
	return cb
}

func (cb *CombatantBuilder) SetTypes(primary PokemonType, secondary PokemonType) *CombatantBuilder {
	cb.combatant.Types = [2]PokemonType{primary, secondary}
	return cb
}

func (cb *CombatantBuilder) SetAbility(name string) *CombatantBuilder {
	cb.combatant.Ability = cb.data.GetAbilityEffect(name)

	builderLogger().Debug().Str("ability", name).Msg("Setting ability")

	return cb
}

func (cb *CombatantBuilder) SetItem(name string) *CombatantBuilder {
	cb.combatant.Item = cb.data.GetItemEffect(name)

	builderLogger().Debug().Str("item", name).Msg("Setting item")

	return cb
}

func (cb *CombatantBuilder) AddMoves(names ...string) *CombatantBuilder {
	moves := lo.Map(names, func(name string, _ int) BattleMove {
		info := cb.data.GetMove(name)
		return BattleMove{Info: info, PP: info.PPMax}
	})

	cb.combatant.Moves = append(cb.combatant.Moves, moves...)

	builderLogger().Debug().Strs("moves", names).Msg("Adding moves")

	return cb
}

func (cb *CombatantBuilder) SetStatus(status int) *CombatantBuilder {
	cb.combatant.Status = status
	return cb
}

func (cb *CombatantBuilder) Build() Combatant {
	builderLogger().Debug().Str("nickname", cb.combatant.Nickname).Msg("Building combatant")
	return cb.combatant
}
