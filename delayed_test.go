package porygon

import "testing"

func TestWishLandsTwoTurnsOut(t *testing.T) {
	state := dummyState(5)
	mon := state.HostSide.GetActive()
	mon.Hp = 50

	if result := ScheduleWish(&state, HOST); !result.Succeeded {
		t.Fatalf("wish failed: %+v", result)
	}

	// the turn it was scheduled never counts
	TickDelayedEffects(&state, HOST)
	if state.HostSide.Wish == nil {
		t.Fatal("wish resolved on the turn it was made")
	}
	if mon.Hp != 50 {
		t.Fatal("wish healed early")
	}

	TickDelayedEffects(&state, HOST)
	if state.HostSide.Wish == nil {
		t.Fatal("wish resolved a turn early")
	}

	TickDelayedEffects(&state, HOST)
	if state.HostSide.Wish != nil {
		t.Fatal("wish should have resolved")
	}
	if mon.Hp != 150 {
		t.Fatalf("gen 5 wish should heal half the wisher's max HP: got %d", mon.Hp)
	}
}

func TestWishSlotIsExclusive(t *testing.T) {
	state := dummyState(5)

	if result := ScheduleWish(&state, HOST); !result.Succeeded {
		t.Fatalf("wish failed: %+v", result)
	}

	result := ScheduleWish(&state, HOST)
	if result.Succeeded || result.Reason != FAIL_SLOT_OCCUPIED {
		t.Fatalf("a second wish should fail while one is pending: got %+v", result)
	}
}

func TestWishHealsRecipientHalfGen4(t *testing.T) {
	wisher := NewCombatantBuilder("Wisher", testData).
		SetMaxHp(100).
		SetTypes(TYPE_NORMAL, TYPE_NONE).
		AddMoves("wish").
		Build()
	receiver := NewCombatantBuilder("Receiver", testData).
		SetMaxHp(400).
		SetTypes(TYPE_NORMAL, TYPE_NONE).
		AddMoves("tackle").
		Build()

	state := NewState(4, []Combatant{wisher, receiver}, []Combatant{dummyCombatant("Clientmon")}, testData, testSeed())

	if result := ScheduleWish(&state, HOST); !result.Succeeded {
		t.Fatalf("wish failed: %+v", result)
	}

	// the wisher leaves and someone else collects
	state.HostSide.GetActive().ResetOnSwitch()
	state.HostSide.ActiveIndex = 1
	state.HostSide.GetActive().Hp = 100

	TickDelayedEffects(&state, HOST)
	TickDelayedEffects(&state, HOST)
	TickDelayedEffects(&state, HOST)

	if hp := state.HostSide.GetActive().Hp; hp != 300 {
		t.Fatalf("gen 4 wish should heal half the recipient's max HP: got %d", hp)
	}
}

func TestWishStoresUserAmountGen5(t *testing.T) {
	wisher := NewCombatantBuilder("Wisher", testData).
		SetMaxHp(100).
		SetTypes(TYPE_NORMAL, TYPE_NONE).
		AddMoves("wish").
		Build()
	receiver := NewCombatantBuilder("Receiver", testData).
		SetMaxHp(400).
		SetTypes(TYPE_NORMAL, TYPE_NONE).
		AddMoves("tackle").
		Build()

	state := NewState(5, []Combatant{wisher, receiver}, []Combatant{dummyCombatant("Clientmon")}, testData, testSeed())

	if result := ScheduleWish(&state, HOST); !result.Succeeded {
		t.Fatalf("wish failed: %+v", result)
	}

	state.HostSide.GetActive().ResetOnSwitch()
	state.HostSide.ActiveIndex = 1
	state.HostSide.GetActive().Hp = 100

	TickDelayedEffects(&state, HOST)
	TickDelayedEffects(&state, HOST)
	TickDelayedEffects(&state, HOST)

	if hp := state.HostSide.GetActive().Hp; hp != 150 {
		t.Fatalf("gen 5 wish should heal half the wisher's max HP: got %d", hp)
	}
}

func TestFutureSightLandsOnTheSlot(t *testing.T) {
	state := dummyState(5)
	target := state.ClientSide.GetActive()

	result := ScheduleFutureAttack(&state, HOST, 80, "Future Sight")
	if !result.Succeeded {
		t.Fatalf("future sight failed: %+v", result)
	}

	TickDelayedEffects(&state, PEER)
	TickDelayedEffects(&state, PEER)
	if target.Hp != target.MaxHp {
		t.Fatal("future sight landed early")
	}

	messages := TickDelayedEffects(&state, PEER)
	if target.Hp != target.MaxHp-80 {
		t.Fatalf("future sight should deal its stored damage: got %d/%d", target.Hp, target.MaxHp)
	}
	if state.ClientSide.FutureAttack != nil {
		t.Fatal("future attack slot should clear after landing")
	}
	if len(messages) == 0 || messages[0] != "Clientmon took the Future Sight attack! (-80 HP)" {
		t.Fatalf("wrong landing narration: got %v", messages)
	}
}

func TestFutureAttackSlotIsExclusive(t *testing.T) {
	state := dummyState(5)

	if result := ScheduleFutureAttack(&state, HOST, 80, "Future Sight"); !result.Succeeded {
		t.Fatalf("future sight failed: %+v", result)
	}

	result := ScheduleFutureAttack(&state, HOST, 140, "Doom Desire")
	if result.Succeeded || result.Reason != FAIL_SLOT_OCCUPIED {
		t.Fatalf("doom desire should fail while future sight is pending: got %+v", result)
	}
}

func TestFutureSightHitsWhoeverIsActive(t *testing.T) {
	clientTeam := []Combatant{dummyCombatant("Clientmon"), dummyCombatant("Benchmon")}
	state := NewState(5, []Combatant{dummyCombatant("Hostmon")}, clientTeam, testData, testSeed())

	if result := ScheduleFutureAttack(&state, HOST, 80, "Future Sight"); !result.Succeeded {
		t.Fatalf("future sight failed: %+v", result)
	}

	// the original target flees; the replacement takes the hit
	state.ClientSide.GetActive().ResetOnSwitch()
	state.ClientSide.ActiveIndex = 1

	TickDelayedEffects(&state, PEER)
	TickDelayedEffects(&state, PEER)
	TickDelayedEffects(&state, PEER)

	replacement := state.ClientSide.GetActive()
	if replacement.Hp != replacement.MaxHp-80 {
		t.Fatalf("the replacement should take the hit: got %d/%d", replacement.Hp, replacement.MaxHp)
	}
	if state.ClientSide.Team[0].Hp != state.ClientSide.Team[0].MaxHp {
		t.Fatal("the original target should be untouched")
	}
}
