package porygon

import "fmt"

// FieldEffects is battle-wide timed state. Turn counts of zero mean
// indefinite; the tick pass skips them.
type FieldEffects struct {
	Weather      int
	WeatherTurns int

	SpecialWeather      int
	SpecialWeatherOwner int

	// Gen 2 sandstorm deals damage on its own sub-counter
	SandstormCounter int

	Terrain      int
	TerrainTurns int

	TrickRoom       bool
	TrickRoomTurns  int
	MagicRoom       bool
	MagicRoomTurns  int
	WonderRoom      bool
	WonderRoomTurns int

	Gravity      bool
	GravityTurns int

	UproarTurns  int
	UproarSource string

	FairyLockPending bool
	FairyLockActive  bool
}

type SideEffects struct {
	Reflect          bool
	ReflectTurns     int
	LightScreen      bool
	LightScreenTurns int
	AuroraVeil       bool
	AuroraVeilTurns  int
	Tailwind         bool
	TailwindTurns    int
	Mist             bool
	MistTurns        int
	Safeguard        bool
	SafeguardTurns   int
	LuckyChant       bool
	LuckyChantTurns  int

	Hazards HazardState
}

var weatherStartMessages = map[int]string{
	WEATHER_RAIN:      "It started to rain!",
	WEATHER_SUN:       "The sunlight turned harsh!",
	WEATHER_SANDSTORM: "A sandstorm kicked up!",
	WEATHER_HAIL:      "It started to hail!",
	WEATHER_SNOW:      "It started to snow!",
}

var weatherEndMessages = map[int]string{
	WEATHER_RAIN:      "The rain stopped.",
	WEATHER_SUN:       "The harsh sunlight faded.",
	WEATHER_SANDSTORM: "The sandstorm subsided.",
	WEATHER_HAIL:      "The hail stopped.",
	WEATHER_SNOW:      "The snow stopped.",
}

// SetWeather activates a normal weather. Only one non-special weather can be
// active, and primal weather locks out all normal weather entirely.
func SetWeather(state *BattleState, weather int, turns int) RuleResult {
	if state.Field.SpecialWeather != SPECIAL_WEATHER_NONE {
		return ruleFail(FAIL_UNAVAILABLE, "The extreme weather won't let up!")
	}

	if state.Field.Weather == weather {
		return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
	}

	state.Field.Weather = weather
	state.Field.WeatherTurns = turns

	if weather == WEATHER_SANDSTORM && state.Generation == 2 {
		state.Field.SandstormCounter = turns
	}

	return ruleOk(weatherStartMessages[weather])
}

// SetSpecialWeather activates a primal weather owned by an ability holder.
// It displaces any normal weather and blocks new ones until cleared.
func SetSpecialWeather(state *BattleState, kind int, ownerIndex int) RuleResult {
	if state.Field.SpecialWeather == kind {
		return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
	}

	state.Field.Weather = WEATHER_NONE
	state.Field.WeatherTurns = 0
	state.Field.SpecialWeather = kind
	state.Field.SpecialWeatherOwner = ownerIndex

	return ruleOk("The weather became extreme!")
}

// ClearSpecialWeather removes the primal lock, called when its owner leaves
// the field.
func ClearSpecialWeather(state *BattleState) []string {
	if state.Field.SpecialWeather == SPECIAL_WEATHER_NONE {
		return nil
	}

	state.Field.SpecialWeather = SPECIAL_WEATHER_NONE
	state.Field.SpecialWeatherOwner = 0

	return []string{"The extreme weather disappeared!"}
}

func screenDuration(rules GenRules, user *Combatant) int {
	if rules.HeldItems && user != nil && user.Item.ExtendsScreens {
		return rules.ScreenTurnsExtended
	}

	return rules.ScreenTurns
}

// ApplyFieldMove activates a field- or side-effect move for the given
// player's side. Re-using an active room cancels it early instead of
// refreshing; everything else fails when already up.
func ApplyFieldMove(state *BattleState, kind FieldMoveKind, playerIndex int) RuleResult {
	side := state.GetSide(playerIndex)
	user := side.GetActive()
	rules := state.Rules()
	field := &state.Field
	effects := &side.Effects

	switch kind {
	case FIELD_MOVE_REFLECT:
		if effects.Reflect {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		effects.Reflect = true
		effects.ReflectTurns = screenDuration(rules, user)
		return ruleOk("Reflect raised physical defense!")

	case FIELD_MOVE_LIGHT_SCREEN:
		if effects.LightScreen {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		effects.LightScreen = true
		effects.LightScreenTurns = screenDuration(rules, user)
		return ruleOk("Light Screen raised special defense!")

	case FIELD_MOVE_AURORA_VEIL:
		if field.Weather != WEATHER_SNOW && field.Weather != WEATHER_HAIL {
			return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
		}
		if effects.AuroraVeil {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		effects.AuroraVeil = true
		effects.AuroraVeilTurns = screenDuration(rules, user)
		return ruleOk("Aurora Veil raised defenses!")

	case FIELD_MOVE_TAILWIND:
		if effects.Tailwind {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		effects.Tailwind = true
		effects.TailwindTurns = TAILWIND_TURNS
		return ruleOk("The tailwind blew from behind!")

	case FIELD_MOVE_SAFEGUARD:
		if effects.Safeguard {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		effects.Safeguard = true
		effects.SafeguardTurns = screenDuration(rules, user)
		return ruleOk("A mystical veil surrounds the team!")

	case FIELD_MOVE_MIST:
		if effects.Mist {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		effects.Mist = true
		effects.MistTurns = rules.MistTurns
		return ruleOk("Mist shrouded the team!")

	case FIELD_MOVE_LUCKY_CHANT:
		if effects.LuckyChant {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		effects.LuckyChant = true
		effects.LuckyChantTurns = 5
		return ruleOk("The Lucky Chant shielded the team from critical hits!")

	case FIELD_MOVE_TRICK_ROOM:
		if field.TrickRoom {
			field.TrickRoom = false
			field.TrickRoomTurns = 0
			return ruleOk("The twisted dimensions returned to normal!")
		}
		field.TrickRoom = true
		field.TrickRoomTurns = ROOM_TURNS
		return ruleOk("The dimensions were twisted!")

	case FIELD_MOVE_MAGIC_ROOM:
		if field.MagicRoom {
			field.MagicRoom = false
			field.MagicRoomTurns = 0
			return ruleOk("The area returned to normal!")
		}
		field.MagicRoom = true
		field.MagicRoomTurns = ROOM_TURNS
		return ruleOk("It created a bizarre area in which items can't be used!")

	case FIELD_MOVE_WONDER_ROOM:
		if field.WonderRoom {
			field.WonderRoom = false
			field.WonderRoomTurns = 0
			return ruleOk("The area returned to normal!")
		}
		field.WonderRoom = true
		field.WonderRoomTurns = ROOM_TURNS
		return ruleOk("It created a bizarre area in which Defense and Sp. Def stats are swapped!")

	case FIELD_MOVE_GRAVITY:
		if field.Gravity {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		field.Gravity = true
		field.GravityTurns = GRAVITY_TURNS
		return ruleOk("Gravity intensified!")

	case FIELD_MOVE_FAIRY_LOCK:
		if rules.Gen < 6 {
			return ruleFail(FAIL_UNAVAILABLE, "But it failed!")
		}
		if field.FairyLockPending || field.FairyLockActive {
			return ruleFail(FAIL_ALREADY_ACTIVE, "But it failed!")
		}
		field.FairyLockPending = true
		return ruleOk("No one will be able to run away during the next turn!")
	}

	panic(fmt.Errorf("unknown field move kind %d", kind))
}

// TickFieldEffects decrements every timed battle-wide effect once. Called by
// the orchestrator after both combatants have acted; nothing else may call
// it.
func TickFieldEffects(state *BattleState) []string {
	field := &state.Field
	messages := make([]string, 0)

	if field.Weather != WEATHER_NONE && field.WeatherTurns > 0 {
		field.WeatherTurns--
		if field.WeatherTurns == 0 {
			messages = append(messages, weatherEndMessages[field.Weather])
			field.Weather = WEATHER_NONE
			// weather expiry takes the primal lock and the gen 2 sandstorm
			// sub-counter with it
			field.SpecialWeather = SPECIAL_WEATHER_NONE
			field.SpecialWeatherOwner = 0
			field.SandstormCounter = 0
		}
	}

	if field.Terrain != TERRAIN_NONE && field.TerrainTurns > 0 {
		field.TerrainTurns--
		if field.TerrainTurns == 0 {
			field.Terrain = TERRAIN_NONE
			messages = append(messages, "The terrain returned to normal!")
		}
	}

	if field.TrickRoom {
		field.TrickRoomTurns--
		if field.TrickRoomTurns <= 0 {
			field.TrickRoom = false
			messages = append(messages, "The twisted dimensions returned to normal!")
		}
	}

	if field.MagicRoom {
		field.MagicRoomTurns--
		if field.MagicRoomTurns <= 0 {
			field.MagicRoom = false
			messages = append(messages, "The area returned to normal!")
		}
	}

	if field.WonderRoom {
		field.WonderRoomTurns--
		if field.WonderRoomTurns <= 0 {
			field.WonderRoom = false
			messages = append(messages, "The area returned to normal!")
		}
	}

	if field.Gravity {
		field.GravityTurns--
		if field.GravityTurns <= 0 {
			field.Gravity = false
			messages = append(messages, "Gravity returned to normal!")
		}
	}

	if field.UproarTurns > 0 {
		field.UproarTurns--
		if field.UproarTurns == 0 {
			field.UproarSource = ""
			messages = append(messages, "The uproar calmed down.")
		}
	}

	// Fairy Lock arms on the turn it is used and traps on the next
	if field.FairyLockActive {
		field.FairyLockActive = false
	}
	if field.FairyLockPending {
		field.FairyLockPending = false
		field.FairyLockActive = true
	}

	return messages
}

// TickSideEffects decrements one side's timed effects. Counters of zero are
// indefinite (gen 1 screens, gen 1-2 Mist) and never expire here.
func TickSideEffects(side *Side) []string {
	effects := &side.Effects
	messages := make([]string, 0)

	tick := func(active *bool, turns *int, message string) {
		if !*active || *turns == 0 {
			return
		}

		*turns--
		if *turns == 0 {
			*active = false
			messages = append(messages, message)
		}
	}

	tick(&effects.Reflect, &effects.ReflectTurns, fmt.Sprintf("%s's Reflect wore off!", side.Name))
	tick(&effects.LightScreen, &effects.LightScreenTurns, fmt.Sprintf("%s's Light Screen wore off!", side.Name))
	tick(&effects.AuroraVeil, &effects.AuroraVeilTurns, fmt.Sprintf("%s's Aurora Veil wore off!", side.Name))
	tick(&effects.Tailwind, &effects.TailwindTurns, fmt.Sprintf("%s's tailwind petered out!", side.Name))
	tick(&effects.Mist, &effects.MistTurns, fmt.Sprintf("%s is no longer protected by mist!", side.Name))
	tick(&effects.Safeguard, &effects.SafeguardTurns, fmt.Sprintf("%s is no longer protected by Safeguard!", side.Name))
	tick(&effects.LuckyChant, &effects.LuckyChantTurns, fmt.Sprintf("%s's Lucky Chant wore off!", side.Name))

	return messages
}
