package porygon

import "testing"

func TestBindingMoveTrapsTarget(t *testing.T) {
	state := dummyState(5)
	target := state.ClientSide.GetActive()

	result := ApplyBindingMove(&state, BIND_BIND, HOST, true)
	if !result.Succeeded {
		t.Fatalf("bind should trap a clean hit: got reason %d", result.Reason)
	}

	restrictions := target.Restrictions
	if !restrictions.Trapped || restrictions.PartialTrap != BIND_BIND {
		t.Fatalf("target not trapped: %+v", restrictions)
	}
	if restrictions.PartialTrapTurns < 4 || restrictions.PartialTrapTurns > 5 {
		t.Fatalf("gen 5 bind should last 4-5 turns: got %d", restrictions.PartialTrapTurns)
	}
	if restrictions.PartialTrapFraction != 0.0625 {
		t.Fatalf("gen 5 bind should chip 1/16: got %f", restrictions.PartialTrapFraction)
	}
	if !restrictions.TrapJustSet {
		t.Fatal("fresh trap should be marked just-set")
	}
	if restrictions.TrapSource != "Hostmon" {
		t.Fatalf("wrong trap source: got %q", restrictions.TrapSource)
	}
}

func TestBindingMoveNeedsToConnect(t *testing.T) {
	state := dummyState(5)

	result := ApplyBindingMove(&state, BIND_BIND, HOST, false)
	if result.Succeeded || result.Reason != FAIL_MISSED {
		t.Fatalf("a missed binding move should not trap: got %+v", result)
	}
	if state.ClientSide.GetActive().Restrictions.Trapped {
		t.Fatal("target trapped by a miss")
	}
}

func TestBindingMoveBlockedBySubstitute(t *testing.T) {
	state := dummyState(5)
	target := state.ClientSide.GetActive()
	target.Sub = &Substitute{Hp: 50, MaxHp: 50}

	result := ApplyBindingMove(&state, BIND_BIND, HOST, true)
	if result.Succeeded || result.Reason != FAIL_BLOCKED_BY_SUBSTITUTE {
		t.Fatalf("substitute should block the trap: got %+v", result)
	}

	// breaking the substitute with the same hit still blocks
	target.Sub = nil
	target.Volatile.SubJustBroke = true

	result = ApplyBindingMove(&state, BIND_BIND, HOST, true)
	if result.Succeeded || result.Reason != FAIL_BLOCKED_BY_SUBSTITUTE {
		t.Fatalf("a just-broken substitute should still block the trap: got %+v", result)
	}
}

func TestBindingMoveGhostImmunity(t *testing.T) {
	ghost := NewCombatantBuilder("Spooky", testData).
		SetTypes(TYPE_GHOST, TYPE_NONE).
		AddMoves("tackle").
		Build()

	state := simpleState(6, dummyCombatant("Hostmon"), ghost)
	result := ApplyBindingMove(&state, BIND_BIND, HOST, true)
	if result.Succeeded || result.Reason != FAIL_IMMUNE {
		t.Fatalf("gen 6 ghosts should be immune to bind: got %+v", result)
	}

	state5 := simpleState(5, dummyCombatant("Hostmon"), ghost)
	result = ApplyBindingMove(&state5, BIND_BIND, HOST, true)
	if !result.Succeeded {
		t.Fatalf("gen 5 ghosts should still be bindable: got reason %d", result.Reason)
	}

	// wrap learned the ghost exemption back in gen 2
	state2 := simpleState(2, dummyCombatant("Hostmon"), ghost)
	result = ApplyBindingMove(&state2, BIND_WRAP, HOST, true)
	if result.Succeeded || result.Reason != FAIL_IMMUNE {
		t.Fatalf("gen 2 wrap should not trap ghosts: got %+v", result)
	}
}

func TestBindingMoveDoesNotRefresh(t *testing.T) {
	state := dummyState(5)
	target := state.ClientSide.GetActive()

	if result := ApplyBindingMove(&state, BIND_BIND, HOST, true); !result.Succeeded {
		t.Fatalf("setup bind failed: %+v", result)
	}

	turnsBefore := target.Restrictions.PartialTrapTurns
	target.Restrictions.TrapJustSet = false

	result := ApplyBindingMove(&state, BIND_BIND, HOST, true)
	if result.Succeeded || result.Reason != FAIL_ALREADY_TRAPPED {
		t.Fatalf("re-applying a trap should be a no-op: got %+v", result)
	}
	if target.Restrictions.PartialTrapTurns != turnsBefore {
		t.Fatal("re-application refreshed the duration")
	}
	if target.Restrictions.TrapJustSet {
		t.Fatal("re-application reset the just-set flag")
	}
}

func TestGripClawFixesDuration(t *testing.T) {
	attacker := NewCombatantBuilder("Clawed", testData).
		SetTypes(TYPE_NORMAL, TYPE_NONE).
		SetItem("grip-claw").
		AddMoves("bind").
		Build()

	state := simpleState(5, attacker, dummyCombatant("Clientmon"))

	if result := ApplyBindingMove(&state, BIND_BIND, HOST, true); !result.Succeeded {
		t.Fatalf("bind failed: %+v", result)
	}

	if turns := state.ClientSide.GetActive().Restrictions.PartialTrapTurns; turns != 7 {
		t.Fatalf("grip claw should fix the gen 5 duration at 7: got %d", turns)
	}
}

func TestBindingBandBoostsFraction(t *testing.T) {
	attacker := NewCombatantBuilder("Banded", testData).
		SetTypes(TYPE_NORMAL, TYPE_NONE).
		SetItem("binding-band").
		AddMoves("bind").
		Build()

	state := simpleState(6, attacker, dummyCombatant("Clientmon"))

	if result := ApplyBindingMove(&state, BIND_BIND, HOST, true); !result.Succeeded {
		t.Fatalf("bind failed: %+v", result)
	}

	if fraction := state.ClientSide.GetActive().Restrictions.PartialTrapFraction; fraction != 0.16667 {
		t.Fatalf("binding band in gen 6 should chip 1/6: got %f", fraction)
	}
}

func TestTickBindingDamageSkipsSetTurn(t *testing.T) {
	state := dummyState(5)
	target := state.ClientSide.GetActive()

	if result := ApplyBindingMove(&state, BIND_BIND, HOST, true); !result.Succeeded {
		t.Fatalf("bind failed: %+v", result)
	}

	turnsBefore := target.Restrictions.PartialTrapTurns

	messages := TickBindingDamage(&state, PEER)
	if len(messages) != 0 {
		t.Fatalf("first tick after the trap was set should do nothing: got %v", messages)
	}
	if target.Hp != target.MaxHp {
		t.Fatal("target took damage on the set turn")
	}
	if target.Restrictions.PartialTrapTurns != turnsBefore {
		t.Fatal("duration ticked on the set turn")
	}

	TickBindingDamage(&state, PEER)
	expected := target.MaxHp - target.MaxHp/16
	if target.Hp != expected {
		t.Fatalf("second tick should chip 1/16: got %d expected %d", target.Hp, expected)
	}
	if target.Restrictions.PartialTrapTurns != turnsBefore-1 {
		t.Fatalf("duration did not tick: got %d", target.Restrictions.PartialTrapTurns)
	}
}

func TestTickBindingDamageReleases(t *testing.T) {
	state := dummyState(5)
	target := state.ClientSide.GetActive()

	if result := ApplyBindingMove(&state, BIND_FIRE_SPIN, HOST, true); !result.Succeeded {
		t.Fatalf("fire spin failed: %+v", result)
	}

	target.Restrictions.TrapJustSet = false
	target.Restrictions.PartialTrapTurns = 1

	messages := TickBindingDamage(&state, PEER)

	restrictions := target.Restrictions
	if restrictions.PartialTrap != BIND_NONE || restrictions.Trapped {
		t.Fatalf("trap should release at zero turns: %+v", restrictions)
	}

	found := false
	for _, message := range messages {
		if message == "Clientmon was freed from Fire Spin!" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing release narration: got %v", messages)
	}
}

func TestTickBindingDamagePanicsWithoutTrap(t *testing.T) {
	state := dummyState(5)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when ticking a trap that was never set")
		}
	}()

	TickBindingDamage(&state, PEER)
}

func TestHardTrapBlocksSwitch(t *testing.T) {
	hostTeam := []Combatant{dummyCombatant("Hostmon"), dummyCombatant("Benchmon")}
	state := NewState(5, hostTeam, []Combatant{dummyCombatant("Clientmon")}, testData, testSeed())

	if result := ApplyHardTrap(&state, PEER); !result.Succeeded {
		t.Fatalf("mean look failed: %+v", result)
	}

	_, messages := SwitchEvent{PlayerIndex: HOST, SwitchIndex: 1}.Update(&state)
	if state.HostSide.ActiveIndex != 0 {
		t.Fatalf("trapped combatant switched out anyway: %v", messages)
	}
}

func TestShedShellIgnoresTrap(t *testing.T) {
	trapped := NewCombatantBuilder("Slippery", testData).
		SetTypes(TYPE_NORMAL, TYPE_NONE).
		SetItem("shed-shell").
		AddMoves("tackle").
		Build()

	hostTeam := []Combatant{trapped, dummyCombatant("Benchmon")}
	state := NewState(5, hostTeam, []Combatant{dummyCombatant("Clientmon")}, testData, testSeed())

	if result := ApplyHardTrap(&state, PEER); !result.Succeeded {
		t.Fatalf("mean look failed: %+v", result)
	}

	SwitchEvent{PlayerIndex: HOST, SwitchIndex: 1}.Update(&state)
	if state.HostSide.ActiveIndex != 1 {
		t.Fatal("shed shell holder should switch out of a trap")
	}
}

func TestHardTrapGhostImmunityGen6(t *testing.T) {
	ghost := NewCombatantBuilder("Spooky", testData).
		SetTypes(TYPE_GHOST, TYPE_NONE).
		AddMoves("tackle").
		Build()

	state := simpleState(6, dummyCombatant("Hostmon"), ghost)
	result := ApplyHardTrap(&state, HOST)
	if result.Succeeded || result.Reason != FAIL_IMMUNE {
		t.Fatalf("gen 6 ghosts should ignore mean look: got %+v", result)
	}

	state5 := simpleState(5, dummyCombatant("Hostmon"), ghost)
	result = ApplyHardTrap(&state5, HOST)
	if !result.Succeeded {
		t.Fatalf("gen 5 ghosts should still be trappable: got reason %d", result.Reason)
	}
}
