package porygon

import "fmt"

// Substitute soaks damage in place of its owner. Immortal is an escape hatch
// for scripted encounters where the decoy should never break.
type Substitute struct {
	Hp       int
	MaxHp    int
	Immortal bool
}

func (s *Substitute) Alive() bool {
	return s != nil && (s.Immortal || s.Hp > 0)
}

// TakeDamage routes a hit into the substitute. Returns the damage actually
// absorbed and whether the substitute broke on this hit.
func (s *Substitute) TakeDamage(damage int) (int, bool) {
	if s.Immortal {
		return damage, false
	}

	absorbed := min(damage, s.Hp)
	s.Hp -= absorbed

	return absorbed, s.Hp <= 0
}

type BattleMove struct {
	Info MoveData
	PP   int
}

// VolatileState is the closed set of conditions cleared on switch-out. Every
// flag the engine can set is declared here; nothing is attached dynamically.
type VolatileState struct {
	ConfusionTurns       int
	ConfusionJustApplied bool
	Flinched             bool

	Charging     bool
	ChargingSlot int
	Invulnerable InvulnKind
	SkyDropHeld  bool

	SleepJustApplied bool

	ConsecutiveProtects int
	ProtectedThisTurn   bool
	ProtectionMove      ProtectKind
	EndureActive        bool
	MaxGuardActive      bool

	DrowsyTurns int

	Dynamaxed    bool
	DynamaxTurns int

	Imprisoning bool

	TookDamageThisTurn   bool
	StatsChangedThisTurn bool

	// SubJustBroke stays up for the rest of the turn the substitute breaks
	// on, so effects the broken hit carried still see it.
	SubJustBroke bool
}

// RestrictionState tracks move-restricting and trapping conditions. Slot
// fields index into the combatant's move list; -1 means not in effect.
type RestrictionState struct {
	EncoreSlot   int
	EncoreTurns  int
	DisableSlot  int
	DisableTurns int
	TauntTurns   int
	Tormented    bool
	LastMoveSlot int

	Trapped    bool
	TrapSource string

	PartialTrap         BindingKind
	PartialTrapTurns    int
	PartialTrapFraction float64
	TrapJustSet         bool

	MustRecharge bool

	RampageSlot               int
	RampageTurns              int
	RampageDisrupted          bool
	RampageDisruptedFinalTurn bool
	RampageDisruptReason      int
}

func newRestrictionState() RestrictionState {
	return RestrictionState{
		EncoreSlot:   -1,
		DisableSlot:  -1,
		LastMoveSlot: -1,
		RampageSlot:  -1,
	}
}

type Combatant struct {
	Nickname string
	Level    int
	Hp       int
	MaxHp    int
	// RawSpeed is the species-derived speed stat, computed by the external
	// stat pipeline.
	RawSpeed int
	Types    [2]PokemonType

	// Stat stages, indexed by the STAT_ constants, each clamped to -6..6.
	Stages [STAT_COUNT]int

	Status     int
	SleepTurns int
	ToxicCount int

	Ability AbilityEffect
	Item    ItemEffect

	Moves []BattleMove
	Sub   *Substitute

	Volatile     VolatileState
	Restrictions RestrictionState

	CanActThisTurn     bool
	SwitchedInThisTurn bool
}

func (c *Combatant) Alive() bool {
	return c.Hp > 0
}

func (c *Combatant) HasType(t PokemonType) bool {
	return c.Types[0] == t || c.Types[1] == t
}

// Damage applies direct damage to the combatant, bypassing any substitute.
func (c *Combatant) Damage(damage int) {
	c.Hp = max(0, c.Hp-damage)
	c.Volatile.TookDamageThisTurn = true
}

// DamageThroughSub routes damage into the substitute if one is up. Returns
// whether the substitute absorbed the hit and whether it broke doing so.
func (c *Combatant) DamageThroughSub(damage int) (bool, bool) {
	if c.Sub.Alive() {
		_, broke := c.Sub.TakeDamage(damage)
		if broke {
			c.Sub = nil
			c.Volatile.SubJustBroke = true
		}
		return true, broke
	}

	c.Damage(damage)
	return false, false
}

func (c *Combatant) Heal(amount int) int {
	oldHp := c.Hp
	c.Hp = min(c.MaxHp, c.Hp+amount)

	return c.Hp - oldHp
}

// ApplyStage shifts a stat stage, clamped to the legal range. Returns the
// actual change, which is zero when already at a bound.
func (c *Combatant) ApplyStage(stat int, delta int) int {
	if stat < 0 || stat >= STAT_COUNT {
		panic(fmt.Errorf("stat index %d out of range", stat))
	}

	old := c.Stages[stat]
	c.Stages[stat] = min(MAX_STAGE, max(MIN_STAGE, old+delta))

	change := c.Stages[stat] - old
	if change != 0 {
		c.Volatile.StatsChangedThisTurn = true
	}

	return change
}

func (c *Combatant) ClearStages() {
	for i := range c.Stages {
		c.Stages[i] = 0
	}
}

// ResetOnSwitch clears everything that does not survive leaving the field.
// Non-volatile status stays; stages, volatiles, restrictions and the
// substitute all go.
func (c *Combatant) ResetOnSwitch() {
	c.ClearStages()
	c.Volatile = VolatileState{}
	c.Restrictions = newRestrictionState()
	c.Sub = nil
}

// ConsumeItem removes the held item after it activates, but only when it is
// single-use. Lasting items survive their triggers.
func (c *Combatant) ConsumeItem() {
	if !c.Item.Consumable {
		return
	}

	c.Item = ItemEffect{}
}

// Speed is the effective speed used for turn ordering. Stage math only; the
// full stat formula belongs to the external stat pipeline, which sets
// RawSpeed.
func (c *Combatant) Speed() int {
	stage := c.Stages[STAT_SPEED]
	speed := c.RawSpeed

	if stage >= 0 {
		speed = speed * (2 + stage) / 2
	} else {
		speed = speed * 2 / (2 - stage)
	}

	if c.Status == STATUS_PARA {
		speed /= 2
	}

	return speed
}
