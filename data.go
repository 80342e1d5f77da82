package porygon

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var dataLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "data-registry").Logger()
	return &logger
}

// MoveFlags are the engine-relevant capabilities of a move, resolved once at
// registration time. The engine dispatches on these, never on move names.
type MoveFlags struct {
	Charge            bool
	ChargeSkipWeather int
	HasChargeBoost    bool
	ChargeBoostStat   int
	SemiInvulnerable  InvulnKind
	Recharge          bool
	Rampage           bool
	Binding           BindingKind
	HardTrap          bool
	Protect           ProtectKind
	Restriction       RestrictionKind
	Imprison          bool
	FieldMove         FieldMoveKind
	Hazard            HazardKind
	ClearsHazards     bool
	Sound             bool
	UsableAsleep      bool
	// BypassesRestrictions marks move categories (Z-moves, Max moves) that
	// ignore Encore/Disable/Taunt/Torment/Imprison when selecting.
	BypassesRestrictions bool
	MakesSubstitute      bool
	Wish                 bool
	FutureAttack         bool
	Uproar               bool
	Drowsy               bool
}

type MoveData struct {
	Name        string
	Power       int
	Accuracy    int
	Priority    int
	PPMax       int
	DamageClass int
	Type        PokemonType
	Flags       MoveFlags

	// Unknown marks a lookup miss. The zero flags above double as the safe
	// defaults: no secondary effects of any kind.
	Unknown bool
}

type AbilityEffect struct {
	Name    string
	Unknown bool

	FlinchImmune    bool
	ConfusionImmune bool
	StatusImmunity  []int
	MagicGuard      bool
	Soundproof      bool
	Levitate        bool
	TrapsOpponents  bool
	StatDropImmune  bool
	IgnoresEvasion  bool
}

func (a AbilityEffect) ImmuneToStatus(status int) bool {
	return lo.Contains(a.StatusImmunity, status)
}

type ItemEffect struct {
	Name    string
	Unknown bool

	ExtendsBindingMoves     bool
	BoostsBindingMoves      bool
	CuresMentalEffects      bool
	SkipChargeTurn          bool
	AllowsSwitchWhenTrapped bool
	ExtendsScreens          bool
	HazardImmunity          bool
	Consumable              bool
}

// Registry is the lookup boundary between the engine and the external
// move/ability/item data tables. Misses come back as typed Unknown values
// with zeroed capabilities instead of errors; incomplete data should never
// crash a battle.
type Registry struct {
	moves     map[string]MoveData
	abilities map[string]AbilityEffect
	items     map[string]ItemEffect
}

func NewRegistry() *Registry {
	return &Registry{
		moves:     make(map[string]MoveData),
		abilities: make(map[string]AbilityEffect),
		items:     make(map[string]ItemEffect),
	}
}

func (r *Registry) RegisterMove(move MoveData) {
	r.moves[move.Name] = move
}

func (r *Registry) RegisterAbility(ability AbilityEffect) {
	r.abilities[ability.Name] = ability
}

func (r *Registry) RegisterItem(item ItemEffect) {
	r.items[item.Name] = item
}

func (r *Registry) GetMove(name string) MoveData {
	move, ok := r.moves[name]
	if !ok {
		dataLogger().Warn().Str("move", name).Msg("Unknown move requested, using safe defaults")
		return MoveData{Name: name, Accuracy: 100, PPMax: 5, DamageClass: DAMAGE_PHYSICAL, Unknown: true}
	}

	return move
}

func (r *Registry) GetAbilityEffect(name string) AbilityEffect {
	ability, ok := r.abilities[name]
	if !ok {
		if name != "" {
			dataLogger().Warn().Str("ability", name).Msg("Unknown ability requested, using safe defaults")
		}
		return AbilityEffect{Name: name, Unknown: true}
	}

	return ability
}

func (r *Registry) GetItemEffect(name string) ItemEffect {
	item, ok := r.items[name]
	if !ok {
		if name != "" {
			dataLogger().Warn().Str("item", name).Msg("Unknown item requested, using safe defaults")
		}
		return ItemEffect{Name: name, Unknown: true}
	}

	return item
}

var struggleMove = MoveData{
	Name:        "struggle",
	Power:       50,
	Accuracy:    0,
	PPMax:       1,
	DamageClass: DAMAGE_PHYSICAL,
	Type:        TYPE_NORMAL,
	Flags:       MoveFlags{BypassesRestrictions: true},
}

// DefaultRegistry returns a registry seeded with the moves, abilities and
// items the engine itself has behavior for. Real data loads replace or
// extend this; the engine only ever sees the capability flags.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	moves := []MoveData{
		{Name: "tackle", Power: 40, Accuracy: 100, PPMax: 35, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_NORMAL},
		{Name: "swords-dance", Accuracy: 0, PPMax: 20, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL},
		{Name: "hyper-voice", Power: 90, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_SPECIAL, Type: TYPE_NORMAL, Flags: MoveFlags{Sound: true}},
		struggleMove,

		// binding moves
		{Name: "bind", Power: 15, Accuracy: 85, PPMax: 20, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_NORMAL, Flags: MoveFlags{Binding: BIND_BIND}},
		{Name: "wrap", Power: 15, Accuracy: 90, PPMax: 20, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_NORMAL, Flags: MoveFlags{Binding: BIND_WRAP}},
		{Name: "fire-spin", Power: 35, Accuracy: 85, PPMax: 15, DamageClass: DAMAGE_SPECIAL, Type: TYPE_FIRE, Flags: MoveFlags{Binding: BIND_FIRE_SPIN}},
		{Name: "clamp", Power: 35, Accuracy: 85, PPMax: 15, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_WATER, Flags: MoveFlags{Binding: BIND_CLAMP}},
		{Name: "whirlpool", Power: 35, Accuracy: 85, PPMax: 15, DamageClass: DAMAGE_SPECIAL, Type: TYPE_WATER, Flags: MoveFlags{Binding: BIND_WHIRLPOOL}},
		{Name: "magma-storm", Power: 100, Accuracy: 75, PPMax: 5, DamageClass: DAMAGE_SPECIAL, Type: TYPE_FIRE, Flags: MoveFlags{Binding: BIND_MAGMA_STORM}},
		{Name: "sand-tomb", Power: 35, Accuracy: 85, PPMax: 15, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_GROUND, Flags: MoveFlags{Binding: BIND_SAND_TOMB}},
		{Name: "infestation", Power: 20, Accuracy: 100, PPMax: 20, DamageClass: DAMAGE_SPECIAL, Type: TYPE_BUG, Flags: MoveFlags{Binding: BIND_INFESTATION}},
		{Name: "snap-trap", Power: 35, Accuracy: 100, PPMax: 15, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_GRASS, Flags: MoveFlags{Binding: BIND_SNAP_TRAP}},
		{Name: "thunder-cage", Power: 80, Accuracy: 90, PPMax: 15, DamageClass: DAMAGE_SPECIAL, Type: TYPE_ELECTRIC, Flags: MoveFlags{Binding: BIND_THUNDER_CAGE}},

		// hard traps
		{Name: "mean-look", Accuracy: 0, PPMax: 5, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{HardTrap: true}},
		{Name: "block", Accuracy: 0, PPMax: 5, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{HardTrap: true}},
		{Name: "spider-web", Accuracy: 0, PPMax: 10, DamageClass: DAMAGE_STATUS, Type: TYPE_BUG, Flags: MoveFlags{HardTrap: true}},

		// protection family
		{Name: "protect", Accuracy: 0, PPMax: 10, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{Protect: PROTECT_PROTECT}},
		{Name: "detect", Accuracy: 0, PPMax: 5, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_FIGHTING, Flags: MoveFlags{Protect: PROTECT_DETECT}},
		{Name: "spiky-shield", Accuracy: 0, PPMax: 10, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_GRASS, Flags: MoveFlags{Protect: PROTECT_SPIKY_SHIELD}},
		{Name: "baneful-bunker", Accuracy: 0, PPMax: 10, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_POISON, Flags: MoveFlags{Protect: PROTECT_BANEFUL_BUNKER}},
		{Name: "kings-shield", Accuracy: 0, PPMax: 10, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_STEEL, Flags: MoveFlags{Protect: PROTECT_KINGS_SHIELD}},
		{Name: "obstruct", Accuracy: 0, PPMax: 10, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_DARK, Flags: MoveFlags{Protect: PROTECT_OBSTRUCT}},
		{Name: "silk-trap", Accuracy: 0, PPMax: 10, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_BUG, Flags: MoveFlags{Protect: PROTECT_SILK_TRAP}},
		{Name: "burning-bulwark", Accuracy: 0, PPMax: 10, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_FIRE, Flags: MoveFlags{Protect: PROTECT_BURNING_BULWARK}},
		{Name: "endure", Accuracy: 0, PPMax: 10, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{Protect: PROTECT_ENDURE}},
		{Name: "max-guard", Accuracy: 0, PPMax: 10, Priority: 4, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{Protect: PROTECT_MAX_GUARD, BypassesRestrictions: true}},

		// charge moves
		{Name: "solar-beam", Power: 120, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_SPECIAL, Type: TYPE_GRASS, Flags: MoveFlags{Charge: true, ChargeSkipWeather: WEATHER_SUN}},
		{Name: "solar-blade", Power: 125, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_GRASS, Flags: MoveFlags{Charge: true, ChargeSkipWeather: WEATHER_SUN}},
		{Name: "skull-bash", Power: 130, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_NORMAL, Flags: MoveFlags{Charge: true, HasChargeBoost: true, ChargeBoostStat: STAT_DEF}},
		{Name: "meteor-beam", Power: 120, Accuracy: 90, PPMax: 10, DamageClass: DAMAGE_SPECIAL, Type: TYPE_ROCK, Flags: MoveFlags{Charge: true, HasChargeBoost: true, ChargeBoostStat: STAT_SPATTACK}},
		{Name: "razor-wind", Power: 80, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_SPECIAL, Type: TYPE_NORMAL, Flags: MoveFlags{Charge: true}},
		{Name: "sky-attack", Power: 140, Accuracy: 90, PPMax: 5, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_FLYING, Flags: MoveFlags{Charge: true}},

		// semi-invulnerable moves
		{Name: "fly", Power: 90, Accuracy: 95, PPMax: 15, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_FLYING, Flags: MoveFlags{Charge: true, SemiInvulnerable: INVULN_AIR}},
		{Name: "bounce", Power: 85, Accuracy: 85, PPMax: 5, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_FLYING, Flags: MoveFlags{Charge: true, SemiInvulnerable: INVULN_AIR}},
		{Name: "dig", Power: 80, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_GROUND, Flags: MoveFlags{Charge: true, SemiInvulnerable: INVULN_UNDERGROUND}},
		{Name: "dive", Power: 80, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_WATER, Flags: MoveFlags{Charge: true, SemiInvulnerable: INVULN_UNDERWATER}},
		{Name: "phantom-force", Power: 90, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_GHOST, Flags: MoveFlags{Charge: true, SemiInvulnerable: INVULN_PHANTOM}},
		{Name: "shadow-force", Power: 120, Accuracy: 100, PPMax: 5, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_GHOST, Flags: MoveFlags{Charge: true, SemiInvulnerable: INVULN_PHANTOM}},
		{Name: "sky-drop", Power: 60, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_FLYING, Flags: MoveFlags{Charge: true, SemiInvulnerable: INVULN_SKY_DROP}},

		// recharge moves
		{Name: "hyper-beam", Power: 150, Accuracy: 90, PPMax: 5, DamageClass: DAMAGE_SPECIAL, Type: TYPE_NORMAL, Flags: MoveFlags{Recharge: true}},
		{Name: "giga-impact", Power: 150, Accuracy: 90, PPMax: 5, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_NORMAL, Flags: MoveFlags{Recharge: true}},

		// rampage moves
		{Name: "outrage", Power: 120, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_DRAGON, Flags: MoveFlags{Rampage: true}},
		{Name: "thrash", Power: 120, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_NORMAL, Flags: MoveFlags{Rampage: true}},
		{Name: "petal-dance", Power: 120, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_SPECIAL, Type: TYPE_GRASS, Flags: MoveFlags{Rampage: true}},

		// restriction moves
		{Name: "encore", Accuracy: 100, PPMax: 5, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{Restriction: RESTRICT_ENCORE}},
		{Name: "disable", Accuracy: 100, PPMax: 20, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{Restriction: RESTRICT_DISABLE}},
		{Name: "taunt", Accuracy: 100, PPMax: 20, DamageClass: DAMAGE_STATUS, Type: TYPE_DARK, Flags: MoveFlags{Restriction: RESTRICT_TAUNT}},
		{Name: "torment", Accuracy: 100, PPMax: 15, DamageClass: DAMAGE_STATUS, Type: TYPE_DARK, Flags: MoveFlags{Restriction: RESTRICT_TORMENT}},
		{Name: "imprison", Accuracy: 0, PPMax: 10, DamageClass: DAMAGE_STATUS, Type: TYPE_PSYCHIC, Flags: MoveFlags{Imprison: true}},

		// sleep exceptions
		{Name: "sleep-talk", Accuracy: 0, PPMax: 10, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{UsableAsleep: true}},
		{Name: "snore", Power: 50, Accuracy: 100, PPMax: 15, DamageClass: DAMAGE_SPECIAL, Type: TYPE_NORMAL, Flags: MoveFlags{UsableAsleep: true, Sound: true}},

		// sleep manipulation
		{Name: "uproar", Power: 90, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_SPECIAL, Type: TYPE_NORMAL, Flags: MoveFlags{Uproar: true, Sound: true}},
		{Name: "yawn", Accuracy: 0, PPMax: 10, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{Drowsy: true}},

		// delayed effects
		{Name: "wish", Accuracy: 0, PPMax: 10, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{Wish: true}},
		{Name: "future-sight", Power: 120, Accuracy: 100, PPMax: 10, DamageClass: DAMAGE_SPECIAL, Type: TYPE_PSYCHIC, Flags: MoveFlags{FutureAttack: true}},
		{Name: "doom-desire", Power: 140, Accuracy: 100, PPMax: 5, DamageClass: DAMAGE_SPECIAL, Type: TYPE_STEEL, Flags: MoveFlags{FutureAttack: true}},

		{Name: "substitute", Accuracy: 0, PPMax: 10, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{MakesSubstitute: true}},

		// hazards
		{Name: "stealth-rock", Accuracy: 0, PPMax: 20, DamageClass: DAMAGE_STATUS, Type: TYPE_ROCK, Flags: MoveFlags{Hazard: HAZARD_STEALTH_ROCK}},
		{Name: "spikes", Accuracy: 0, PPMax: 20, DamageClass: DAMAGE_STATUS, Type: TYPE_GROUND, Flags: MoveFlags{Hazard: HAZARD_SPIKES}},
		{Name: "toxic-spikes", Accuracy: 0, PPMax: 20, DamageClass: DAMAGE_STATUS, Type: TYPE_POISON, Flags: MoveFlags{Hazard: HAZARD_TOXIC_SPIKES}},
		{Name: "sticky-web", Accuracy: 0, PPMax: 20, DamageClass: DAMAGE_STATUS, Type: TYPE_BUG, Flags: MoveFlags{Hazard: HAZARD_STICKY_WEB}},
		{Name: "rapid-spin", Power: 50, Accuracy: 100, PPMax: 40, DamageClass: DAMAGE_PHYSICAL, Type: TYPE_NORMAL, Flags: MoveFlags{ClearsHazards: true}},
		{Name: "defog", Accuracy: 0, PPMax: 15, DamageClass: DAMAGE_STATUS, Type: TYPE_FLYING, Flags: MoveFlags{ClearsHazards: true}},

		// field and side effects
		{Name: "reflect", Accuracy: 0, PPMax: 20, DamageClass: DAMAGE_STATUS, Type: TYPE_PSYCHIC, Flags: MoveFlags{FieldMove: FIELD_MOVE_REFLECT}},
		{Name: "light-screen", Accuracy: 0, PPMax: 30, DamageClass: DAMAGE_STATUS, Type: TYPE_PSYCHIC, Flags: MoveFlags{FieldMove: FIELD_MOVE_LIGHT_SCREEN}},
		{Name: "aurora-veil", Accuracy: 0, PPMax: 20, DamageClass: DAMAGE_STATUS, Type: TYPE_ICE, Flags: MoveFlags{FieldMove: FIELD_MOVE_AURORA_VEIL}},
		{Name: "tailwind", Accuracy: 0, PPMax: 15, DamageClass: DAMAGE_STATUS, Type: TYPE_FLYING, Flags: MoveFlags{FieldMove: FIELD_MOVE_TAILWIND}},
		{Name: "safeguard", Accuracy: 0, PPMax: 25, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{FieldMove: FIELD_MOVE_SAFEGUARD}},
		{Name: "mist", Accuracy: 0, PPMax: 30, DamageClass: DAMAGE_STATUS, Type: TYPE_ICE, Flags: MoveFlags{FieldMove: FIELD_MOVE_MIST}},
		{Name: "lucky-chant", Accuracy: 0, PPMax: 30, DamageClass: DAMAGE_STATUS, Type: TYPE_NORMAL, Flags: MoveFlags{FieldMove: FIELD_MOVE_LUCKY_CHANT}},
		{Name: "trick-room", Accuracy: 0, PPMax: 5, Priority: -7, DamageClass: DAMAGE_STATUS, Type: TYPE_PSYCHIC, Flags: MoveFlags{FieldMove: FIELD_MOVE_TRICK_ROOM}},
		{Name: "magic-room", Accuracy: 0, PPMax: 10, DamageClass: DAMAGE_STATUS, Type: TYPE_PSYCHIC, Flags: MoveFlags{FieldMove: FIELD_MOVE_MAGIC_ROOM}},
		{Name: "wonder-room", Accuracy: 0, PPMax: 10, DamageClass: DAMAGE_STATUS, Type: TYPE_PSYCHIC, Flags: MoveFlags{FieldMove: FIELD_MOVE_WONDER_ROOM}},
		{Name: "gravity", Accuracy: 0, PPMax: 5, DamageClass: DAMAGE_STATUS, Type: TYPE_PSYCHIC, Flags: MoveFlags{FieldMove: FIELD_MOVE_GRAVITY}},
		{Name: "fairy-lock", Accuracy: 0, PPMax: 10, DamageClass: DAMAGE_STATUS, Type: TYPE_FAIRY, Flags: MoveFlags{FieldMove: FIELD_MOVE_FAIRY_LOCK}},
	}

	lo.ForEach(moves, func(move MoveData, _ int) {
		r.RegisterMove(move)
	})

	abilities := []AbilityEffect{
		{Name: "inner-focus", FlinchImmune: true},
		{Name: "own-tempo", ConfusionImmune: true},
		{Name: "insomnia", StatusImmunity: []int{STATUS_SLEEP}},
		{Name: "vital-spirit", StatusImmunity: []int{STATUS_SLEEP}},
		{Name: "limber", StatusImmunity: []int{STATUS_PARA}},
		{Name: "magma-armor", StatusImmunity: []int{STATUS_FROZEN}},
		{Name: "immunity", StatusImmunity: []int{STATUS_POISON, STATUS_TOXIC}},
		{Name: "water-veil", StatusImmunity: []int{STATUS_BURN}},
		{Name: "magic-guard", MagicGuard: true},
		{Name: "soundproof", Soundproof: true},
		{Name: "levitate", Levitate: true},
		{Name: "shadow-tag", TrapsOpponents: true},
		{Name: "arena-trap", TrapsOpponents: true},
		{Name: "clear-body", StatDropImmune: true},
		{Name: "white-smoke", StatDropImmune: true},
		{Name: "keen-eye", IgnoresEvasion: true},
	}

	lo.ForEach(abilities, func(ability AbilityEffect, _ int) {
		r.RegisterAbility(ability)
	})

	items := []ItemEffect{
		{Name: "grip-claw", ExtendsBindingMoves: true},
		{Name: "binding-band", BoostsBindingMoves: true},
		{Name: "mental-herb", CuresMentalEffects: true, Consumable: true},
		{Name: "power-herb", SkipChargeTurn: true, Consumable: true},
		{Name: "shed-shell", AllowsSwitchWhenTrapped: true},
		{Name: "light-clay", ExtendsScreens: true},
		{Name: "heavy-duty-boots", HazardImmunity: true},
	}

	lo.ForEach(items, func(item ItemEffect, _ int) {
		r.RegisterItem(item)
	})

	dataLogger().Debug().
		Int("moves", len(r.moves)).
		Int("abilities", len(r.abilities)).
		Int("items", len(r.items)).
		Msg("Built default registry")

	return r
}
