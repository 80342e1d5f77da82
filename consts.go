package porygon

// plus 1 because Go has made very stupid design decisions
const (
	HOST = iota + 1
	PEER
)

const (
	STATUS_NONE = iota
	STATUS_SLEEP
	STATUS_PARA
	STATUS_FROZEN
	STATUS_BURN
	STATUS_POISON
	STATUS_TOXIC
)

const (
	WEATHER_NONE = iota
	WEATHER_RAIN
	WEATHER_SUN
	WEATHER_SANDSTORM
	WEATHER_HAIL
	WEATHER_SNOW
)

// Special weathers set by primal abilities. They lock out normal weather
// until their owner leaves the field.
const (
	SPECIAL_WEATHER_NONE = iota
	SPECIAL_WEATHER_HEAVY_RAIN
	SPECIAL_WEATHER_HARSH_SUNLIGHT
	SPECIAL_WEATHER_STRONG_WINDS
)

const (
	TERRAIN_NONE = iota
	TERRAIN_ELECTRIC
	TERRAIN_GRASSY
	TERRAIN_MISTY
	TERRAIN_PSYCHIC
)

const (
	DAMAGE_PHYSICAL = iota + 1
	DAMAGE_SPECIAL
	DAMAGE_STATUS
)

const (
	STAT_ATTACK = iota
	STAT_DEF
	STAT_SPATTACK
	STAT_SPDEF
	STAT_SPEED
	STAT_ACCURACY
	STAT_EVASION

	STAT_COUNT
)

const (
	MIN_STAGE = -6
	MAX_STAGE = 6
)

type PokemonType int

const (
	TYPE_NONE PokemonType = iota
	TYPE_NORMAL
	TYPE_FIGHTING
	TYPE_FLYING
	TYPE_POISON
	TYPE_GROUND
	TYPE_ROCK
	TYPE_BUG
	TYPE_GHOST
	TYPE_STEEL
	TYPE_FIRE
	TYPE_WATER
	TYPE_GRASS
	TYPE_ELECTRIC
	TYPE_PSYCHIC
	TYPE_ICE
	TYPE_DRAGON
	TYPE_DARK
	TYPE_FAIRY
)

// BindingKind identifies a damaging trap move. Resolved from move data at
// load time so the engine never string-matches move names mid-turn.
type BindingKind int

const (
	BIND_NONE BindingKind = iota
	BIND_BIND
	BIND_WRAP
	BIND_FIRE_SPIN
	BIND_CLAMP
	BIND_WHIRLPOOL
	BIND_MAGMA_STORM
	BIND_SAND_TOMB
	BIND_INFESTATION
	BIND_SNAP_TRAP
	BIND_THUNDER_CAGE
)

var bindingNames = map[BindingKind]string{
	BIND_BIND:         "bind",
	BIND_WRAP:         "wrap",
	BIND_FIRE_SPIN:    "fire-spin",
	BIND_CLAMP:        "clamp",
	BIND_WHIRLPOOL:    "whirlpool",
	BIND_MAGMA_STORM:  "magma-storm",
	BIND_SAND_TOMB:    "sand-tomb",
	BIND_INFESTATION:  "infestation",
	BIND_SNAP_TRAP:    "snap-trap",
	BIND_THUNDER_CAGE: "thunder-cage",
}

type ProtectKind int

const (
	PROTECT_NONE ProtectKind = iota
	PROTECT_PROTECT
	PROTECT_DETECT
	PROTECT_SPIKY_SHIELD
	PROTECT_BANEFUL_BUNKER
	PROTECT_KINGS_SHIELD
	PROTECT_OBSTRUCT
	PROTECT_SILK_TRAP
	PROTECT_BURNING_BULWARK
	PROTECT_ENDURE
	PROTECT_MAX_GUARD
)

type RestrictionKind int

const (
	RESTRICT_ENCORE RestrictionKind = iota + 1
	RESTRICT_DISABLE
	RESTRICT_TAUNT
	RESTRICT_TORMENT
)

type HazardKind int

const (
	HAZARD_STEALTH_ROCK HazardKind = iota + 1
	HAZARD_SPIKES
	HAZARD_TOXIC_SPIKES
	HAZARD_STICKY_WEB
	HAZARD_STEEL_SPIKES
)

// FieldMoveKind identifies a field- or side-effect setting move.
type FieldMoveKind int

const (
	FIELD_MOVE_NONE FieldMoveKind = iota
	FIELD_MOVE_REFLECT
	FIELD_MOVE_LIGHT_SCREEN
	FIELD_MOVE_AURORA_VEIL
	FIELD_MOVE_TAILWIND
	FIELD_MOVE_SAFEGUARD
	FIELD_MOVE_MIST
	FIELD_MOVE_LUCKY_CHANT
	FIELD_MOVE_TRICK_ROOM
	FIELD_MOVE_MAGIC_ROOM
	FIELD_MOVE_WONDER_ROOM
	FIELD_MOVE_GRAVITY
	FIELD_MOVE_FAIRY_LOCK
)

// InvulnKind is where a semi-invulnerable move puts its user between turns.
type InvulnKind int

const (
	INVULN_NONE InvulnKind = iota
	INVULN_AIR
	INVULN_UNDERGROUND
	INVULN_UNDERWATER
	INVULN_PHANTOM
	INVULN_SKY_DROP
)

// Reasons a rampage can be cut short. The distinction matters for
// whether fatigue confusion still happens on gen 5+.
const (
	DISRUPT_FLINCH = iota + 1
	DISRUPT_CONFUSION
	DISRUPT_SLEEP
	DISRUPT_FREEZE
	DISRUPT_PARA
)

const (
	SUBSTITUTE_COST_DIVISOR = 4
	TAILWIND_TURNS          = 4
	ROOM_TURNS              = 5
	GRAVITY_TURNS           = 5
	DYNAMAX_TURNS           = 3
)
