package porygon

import "testing"

func TestScreensExpireAfterFiveTurns(t *testing.T) {
	state := dummyState(5)

	if result := ApplyFieldMove(&state, FIELD_MOVE_REFLECT, HOST); !result.Succeeded {
		t.Fatalf("reflect failed: %+v", result)
	}

	for i := 0; i < 4; i++ {
		TickSideEffects(&state.HostSide)
		if !state.HostSide.Effects.Reflect {
			t.Fatalf("reflect expired after %d ticks", i+1)
		}
	}

	TickSideEffects(&state.HostSide)
	if state.HostSide.Effects.Reflect {
		t.Fatal("reflect should expire on the fifth tick")
	}
}

func TestLightClayExtendsScreens(t *testing.T) {
	mon := NewCombatantBuilder("Potter", testData).
		SetTypes(TYPE_NORMAL, TYPE_NONE).
		SetItem("light-clay").
		AddMoves("reflect").
		Build()

	state := simpleState(5, mon, dummyCombatant("Clientmon"))

	if result := ApplyFieldMove(&state, FIELD_MOVE_REFLECT, HOST); !result.Succeeded {
		t.Fatalf("reflect failed: %+v", result)
	}

	if turns := state.HostSide.Effects.ReflectTurns; turns != 8 {
		t.Fatalf("light clay should extend screens to 8 turns: got %d", turns)
	}
}

func TestGen1ScreensNeverExpire(t *testing.T) {
	state := dummyState(1)

	if result := ApplyFieldMove(&state, FIELD_MOVE_LIGHT_SCREEN, HOST); !result.Succeeded {
		t.Fatalf("light screen failed: %+v", result)
	}
	if state.HostSide.Effects.LightScreenTurns != 0 {
		t.Fatalf("gen 1 screens should be indefinite: got %d turns", state.HostSide.Effects.LightScreenTurns)
	}

	for i := 0; i < 20; i++ {
		TickSideEffects(&state.HostSide)
	}
	if !state.HostSide.Effects.LightScreen {
		t.Fatal("gen 1 light screen should never tick away")
	}
}

func TestScreensDoNotStack(t *testing.T) {
	state := dummyState(5)

	if result := ApplyFieldMove(&state, FIELD_MOVE_REFLECT, HOST); !result.Succeeded {
		t.Fatalf("reflect failed: %+v", result)
	}

	result := ApplyFieldMove(&state, FIELD_MOVE_REFLECT, HOST)
	if result.Succeeded || result.Reason != FAIL_ALREADY_ACTIVE {
		t.Fatalf("second reflect should fail: got %+v", result)
	}
}

func TestAuroraVeilNeedsHailOrSnow(t *testing.T) {
	state := dummyState(7)

	result := ApplyFieldMove(&state, FIELD_MOVE_AURORA_VEIL, HOST)
	if result.Succeeded || result.Reason != FAIL_UNAVAILABLE {
		t.Fatalf("aurora veil without hail should fail: got %+v", result)
	}

	state.Field.Weather = WEATHER_HAIL
	if result := ApplyFieldMove(&state, FIELD_MOVE_AURORA_VEIL, HOST); !result.Succeeded {
		t.Fatalf("aurora veil in hail failed: %+v", result)
	}
}

func TestTrickRoomCancelsOnReuse(t *testing.T) {
	state := dummyState(5)

	if result := ApplyFieldMove(&state, FIELD_MOVE_TRICK_ROOM, HOST); !result.Succeeded {
		t.Fatalf("trick room failed: %+v", result)
	}
	if !state.Field.TrickRoom || state.Field.TrickRoomTurns != ROOM_TURNS {
		t.Fatalf("trick room not set up: %+v", state.Field)
	}

	// a second use tears it down instead of refreshing
	if result := ApplyFieldMove(&state, FIELD_MOVE_TRICK_ROOM, PEER); !result.Succeeded {
		t.Fatalf("trick room cancel failed: %+v", result)
	}
	if state.Field.TrickRoom {
		t.Fatal("trick room should have been cancelled")
	}
}

func TestRoomsExpire(t *testing.T) {
	state := dummyState(5)
	ApplyFieldMove(&state, FIELD_MOVE_TRICK_ROOM, HOST)

	for i := 0; i < ROOM_TURNS; i++ {
		TickFieldEffects(&state)
	}

	if state.Field.TrickRoom {
		t.Fatal("trick room should expire after its turns run out")
	}
}

func TestWeatherExpiryClearsSandstormCounter(t *testing.T) {
	state := dummyState(2)

	if result := SetWeather(&state, WEATHER_SANDSTORM, 2); !result.Succeeded {
		t.Fatalf("sandstorm failed: %+v", result)
	}
	if state.Field.SandstormCounter == 0 {
		t.Fatal("gen 2 sandstorm should carry its sub-counter")
	}

	TickFieldEffects(&state)
	TickFieldEffects(&state)

	if state.Field.Weather != WEATHER_NONE {
		t.Fatal("sandstorm should have blown over")
	}
	if state.Field.SandstormCounter != 0 {
		t.Fatal("sub-counter should clear with the weather")
	}
}

func TestSpecialWeatherLocksNormalWeather(t *testing.T) {
	state := dummyState(6)

	if result := SetSpecialWeather(&state, SPECIAL_WEATHER_HEAVY_RAIN, HOST); !result.Succeeded {
		t.Fatalf("heavy rain failed: %+v", result)
	}

	result := SetWeather(&state, WEATHER_SUN, 5)
	if result.Succeeded || result.Reason != FAIL_UNAVAILABLE {
		t.Fatalf("normal weather should fail under a primal lock: got %+v", result)
	}

	ClearSpecialWeather(&state)
	if result := SetWeather(&state, WEATHER_SUN, 5); !result.Succeeded {
		t.Fatalf("weather should work after the lock clears: %+v", result)
	}
}

func TestFairyLockArmsThenTraps(t *testing.T) {
	clientTeam := []Combatant{dummyCombatant("Clientmon"), dummyCombatant("Benchmon")}
	state := NewState(6, []Combatant{dummyCombatant("Hostmon")}, clientTeam, testData, testSeed())

	if result := ApplyFieldMove(&state, FIELD_MOVE_FAIRY_LOCK, HOST); !result.Succeeded {
		t.Fatalf("fairy lock failed: %+v", result)
	}
	if !state.Field.FairyLockPending {
		t.Fatal("fairy lock should be pending on the turn it is used")
	}

	TickFieldEffects(&state)
	if !state.Field.FairyLockActive {
		t.Fatal("fairy lock should arm at end of the turn it was used")
	}

	SwitchEvent{PlayerIndex: PEER, SwitchIndex: 1}.Update(&state)
	if state.ClientSide.ActiveIndex != 0 {
		t.Fatal("fairy lock should hold everyone in while active")
	}

	TickFieldEffects(&state)
	if state.Field.FairyLockActive {
		t.Fatal("fairy lock should last exactly one turn")
	}

	SwitchEvent{PlayerIndex: PEER, SwitchIndex: 1}.Update(&state)
	if state.ClientSide.ActiveIndex != 1 {
		t.Fatal("switching should work again once the lock fades")
	}
}

func TestFairyLockGhostsEscape(t *testing.T) {
	ghost := NewCombatantBuilder("Spirit", testData).
		SetTypes(TYPE_GHOST, TYPE_NONE).
		AddMoves("tackle").
		Build()

	clientTeam := []Combatant{ghost, dummyCombatant("Benchmon")}
	state := NewState(6, []Combatant{dummyCombatant("Hostmon")}, clientTeam, testData, testSeed())
	state.Field.FairyLockActive = true

	SwitchEvent{PlayerIndex: PEER, SwitchIndex: 1}.Update(&state)
	if state.ClientSide.ActiveIndex != 1 {
		t.Fatal("ghosts slip out of fairy lock")
	}
}

func TestFairyLockNeedsGen6(t *testing.T) {
	state := dummyState(5)

	result := ApplyFieldMove(&state, FIELD_MOVE_FAIRY_LOCK, HOST)
	if result.Succeeded || result.Reason != FAIL_UNAVAILABLE {
		t.Fatalf("fairy lock should not exist before gen 6: got %+v", result)
	}
}

func TestUproarBlocksSleep(t *testing.T) {
	state := dummyState(5)
	state.Field.UproarTurns = 2

	_, messages := ApplySleepEvent{PlayerIndex: HOST}.Update(&state)
	if state.HostSide.GetActive().Status == STATUS_SLEEP {
		t.Fatalf("sleep should not land during an uproar: %v", messages)
	}
}

func TestTailwindLastsFourTurns(t *testing.T) {
	state := dummyState(5)
	ApplyFieldMove(&state, FIELD_MOVE_TAILWIND, HOST)

	if turns := state.HostSide.Effects.TailwindTurns; turns != TAILWIND_TURNS {
		t.Fatalf("tailwind should last %d turns: got %d", TAILWIND_TURNS, turns)
	}
}
