package porygon

import (
	_ "embed"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed gen_rules.yaml
var genRulesYaml []byte

var rulesLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "gen-rules").Logger()
	return &logger
}

const (
	LADDER_NONE             = "none"
	LADDER_HALVING_255      = "halving255"
	LADDER_HALF_FLOOR_EIGHT = "half_floor_eighth"
	LADDER_HALF             = "half"
	LADDER_THIRD            = "third"
)

type turnRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// GenRules holds every generation-dependent threshold the engine consults.
// One instance per generation, loaded once from the embedded table.
type GenRules struct {
	Gen int `yaml:"gen"`

	HeldItems bool `yaml:"held_items"`
	Abilities bool `yaml:"abilities"`

	ConfusionSelfHitChance float64 `yaml:"confusion_self_hit_chance"`
	ParalysisFullChance    float64 `yaml:"paralysis_full_chance"`
	ThawChance             float64 `yaml:"thaw_chance"`

	SleepRange              turnRange `yaml:"sleep_turns"`
	SleepExtraTurnAfterWake bool      `yaml:"sleep_extra_turn_after_wake"`

	BindingPreventsAction bool `yaml:"binding_prevents_action"`

	ParalysisDisruptsRampage          bool `yaml:"paralysis_disrupts_rampage"`
	FlinchDisruptsRampage             bool `yaml:"flinch_disrupts_rampage"`
	RampageConfusesOnFinalTurnDisrupt bool `yaml:"rampage_confuses_on_final_turn_disrupt"`

	ProtectLadder string `yaml:"protect_ladder"`

	EncoreRange  turnRange `yaml:"encore_turns"`
	DisableRange turnRange `yaml:"disable_turns"`

	BindingFraction        float64 `yaml:"binding_fraction"`
	BindingFractionBoosted float64 `yaml:"binding_fraction_boosted"`
	GripClawTurns          int     `yaml:"grip_claw_turns"`

	ScreenTurns         int `yaml:"screen_turns"`
	ScreenTurnsExtended int `yaml:"screen_turns_extended"`
	MistTurns           int `yaml:"mist_turns"`

	SpikesMaxLayers int  `yaml:"spikes_max_layers"`
	StealthRock     bool `yaml:"stealth_rock"`
	ToxicSpikes     bool `yaml:"toxic_spikes"`
	StickyWeb       bool `yaml:"sticky_web"`
	SteelSpikes     bool `yaml:"steel_spikes"`

	WishUsesRecipientHp bool `yaml:"wish_uses_recipient_hp"`
	Dynamax             bool `yaml:"dynamax"`
}

type bindingSpan struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Min  int `yaml:"min"`
	Max  int `yaml:"max"`
}

type bindingTable struct {
	Kind            string        `yaml:"kind"`
	AvailableFrom   int           `yaml:"available_from"`
	UnavailableFrom int           `yaml:"unavailable_from"`
	GhostImmuneFrom int           `yaml:"ghost_immune_from"`
	Durations       []bindingSpan `yaml:"durations"`
}

type rulesFile struct {
	Generations []GenRules     `yaml:"generations"`
	Binding     []bindingTable `yaml:"binding"`
}

var (
	genRules      [10]GenRules
	bindingTables map[BindingKind]bindingTable
)

func init() {
	var parsed rulesFile
	if err := yaml.Unmarshal(genRulesYaml, &parsed); err != nil {
		panic(fmt.Errorf("could not parse embedded generation rules: %w", err))
	}

	if len(parsed.Generations) != 9 {
		panic(fmt.Errorf("generation rule table has %d entries, expected 9", len(parsed.Generations)))
	}

	for _, rules := range parsed.Generations {
		if rules.Gen < 1 || rules.Gen > 9 {
			panic(fmt.Errorf("generation rule table contains invalid generation %d", rules.Gen))
		}
		genRules[rules.Gen] = rules
	}

	kindsByName := make(map[string]BindingKind, len(bindingNames))
	for kind, name := range bindingNames {
		kindsByName[name] = kind
	}

	bindingTables = make(map[BindingKind]bindingTable, len(parsed.Binding))
	for _, table := range parsed.Binding {
		kind, ok := kindsByName[table.Kind]
		if !ok {
			panic(fmt.Errorf("generation rule table names unknown binding move %q", table.Kind))
		}
		bindingTables[kind] = table
	}

	rulesLogger().Debug().
		Int("generations", len(parsed.Generations)).
		Int("bindingMoves", len(parsed.Binding)).
		Msg("Loaded generation rules")
}

// Rules returns the rule set for a generation. Asking for a generation
// outside 1..9 is a caller bug.
func Rules(gen int) GenRules {
	if gen < 1 || gen > 9 {
		panic(fmt.Errorf("no rules for generation %d", gen))
	}

	return genRules[gen]
}

// ProtectChance is the success chance of a protecting move after n prior
// consecutive uses. Exposed so callers can verify the ladder directly.
func (r GenRules) ProtectChance(consecutive int) float64 {
	if consecutive <= 0 {
		return 1.0
	}

	switch r.ProtectLadder {
	case LADDER_NONE:
		return 1.0
	case LADDER_HALVING_255:
		if consecutive >= 8 {
			return 0
		}
		return (255 / math.Pow(2, float64(consecutive))) / 255
	case LADDER_HALF_FLOOR_EIGHT:
		return math.Max(math.Pow(0.5, float64(consecutive)), 1.0/8.0)
	case LADDER_HALF:
		return math.Pow(0.5, float64(consecutive))
	case LADDER_THIRD:
		return math.Pow(1.0/3.0, float64(consecutive))
	default:
		panic(fmt.Errorf("unknown protect ladder %q for generation %d", r.ProtectLadder, r.Gen))
	}
}

func (r turnRange) roll(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}

	return r.Min + rng.IntN(r.Max-r.Min+1)
}

func (r GenRules) EncoreTurns(rng *rand.Rand) int {
	return r.EncoreRange.roll(rng)
}

func (r GenRules) DisableTurns(rng *rand.Rand) int {
	return r.DisableRange.roll(rng)
}

func (r GenRules) SleepTurns(rng *rand.Rand) int {
	return r.SleepRange.roll(rng)
}

// GhostEscapesTraps reports whether ghost types ignore trapping entirely,
// both hard traps and binding moves.
func (r GenRules) GhostEscapesTraps() bool {
	return r.Gen >= 6
}

// MentalHerbCuresRestrictions reports whether a mental herb cures Taunt,
// Encore, Disable and Torment. Before gen 5 it only cured infatuation.
func (r GenRules) MentalHerbCuresRestrictions() bool {
	return r.Gen >= 5
}

// BindingSpec is the resolved rule set for one binding move in one generation.
type BindingSpec struct {
	Kind        BindingKind
	Available   bool
	MinTurns    int
	MaxTurns    int
	GhostImmune bool
}

func (r GenRules) Binding(kind BindingKind) BindingSpec {
	table, ok := bindingTables[kind]
	if !ok {
		panic(fmt.Errorf("no binding table for kind %d", kind))
	}

	spec := BindingSpec{Kind: kind}

	if r.Gen < table.AvailableFrom {
		return spec
	}
	if table.UnavailableFrom != 0 && r.Gen >= table.UnavailableFrom {
		return spec
	}

	for _, span := range table.Durations {
		if r.Gen >= span.From && r.Gen <= span.To {
			spec.Available = true
			spec.MinTurns = span.Min
			spec.MaxTurns = span.Max
			break
		}
	}

	spec.GhostImmune = table.GhostImmuneFrom != 0 && r.Gen >= table.GhostImmuneFrom

	return spec
}

func (s BindingSpec) RollTurns(rng *rand.Rand) int {
	if s.MaxTurns <= s.MinTurns {
		return s.MinTurns
	}

	return s.MinTurns + rng.IntN(s.MaxTurns-s.MinTurns+1)
}
