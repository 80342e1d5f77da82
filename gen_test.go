package porygon

import (
	"math"
	"testing"
)

func TestRulesPanicsOutsideRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for generation 0")
		}
	}()

	Rules(0)
}

func TestEveryGenerationLoads(t *testing.T) {
	for gen := 1; gen <= 9; gen++ {
		rules := Rules(gen)
		if rules.Gen != gen {
			t.Fatalf("rules for generation %d report generation %d", gen, rules.Gen)
		}
	}
}

func TestProtectChanceGen2Ladder(t *testing.T) {
	rules := Rules(2)

	if chance := rules.ProtectChance(0); chance != 1.0 {
		t.Fatalf("first use should always succeed: got %f", chance)
	}
	if chance := rules.ProtectChance(1); chance != 0.5 {
		t.Fatalf("second consecutive use should be 1/2: got %f", chance)
	}
	if chance := rules.ProtectChance(8); chance != 0 {
		t.Fatalf("ninth consecutive use should be impossible: got %f", chance)
	}
}

func TestProtectChanceGen3Floor(t *testing.T) {
	rules := Rules(3)

	if chance := rules.ProtectChance(3); chance != 1.0/8.0 {
		t.Fatalf("expected floor of 1/8: got %f", chance)
	}
	if chance := rules.ProtectChance(10); chance != 1.0/8.0 {
		t.Fatalf("floor should hold no matter the streak: got %f", chance)
	}
}

func TestProtectChanceModernLadders(t *testing.T) {
	if chance := Rules(5).ProtectChance(2); chance != 0.25 {
		t.Fatalf("gen 5 should halve per use: got %f", chance)
	}

	expected := math.Pow(1.0/3.0, 2)
	if chance := Rules(7).ProtectChance(2); chance != expected {
		t.Fatalf("gen 7 should third per use: got %f expected %f", chance, expected)
	}
}

func TestProtectChanceNeverIncreases(t *testing.T) {
	for gen := 2; gen <= 9; gen++ {
		rules := Rules(gen)
		previous := rules.ProtectChance(0)

		for n := 1; n <= 12; n++ {
			chance := rules.ProtectChance(n)
			if chance > previous {
				t.Fatalf("gen %d ladder increased from %f to %f at streak %d", gen, previous, chance, n)
			}
			previous = chance
		}
	}
}

func TestEncoreAndDisableFixedDurations(t *testing.T) {
	state := dummyState(5)
	rng := state.CreateRng()

	for i := 0; i < 20; i++ {
		if turns := Rules(5).EncoreTurns(rng); turns != 3 {
			t.Fatalf("gen 5 encore should always last 3 turns: got %d", turns)
		}
		if turns := Rules(5).DisableTurns(rng); turns != 4 {
			t.Fatalf("gen 5 disable should always last 4 turns: got %d", turns)
		}
	}
}

func TestEncoreDurationRangeGen2(t *testing.T) {
	state := dummyState(2)
	rng := state.CreateRng()

	for i := 0; i < 50; i++ {
		turns := Rules(2).EncoreTurns(rng)
		if turns < 2 || turns > 6 {
			t.Fatalf("gen 2 encore duration out of range: got %d", turns)
		}
	}
}

func TestSleepTurnRanges(t *testing.T) {
	cases := []struct {
		gen int
		min int
		max int
	}{
		{1, 1, 7},
		{2, 1, 6},
		{3, 2, 5},
		{5, 1, 3},
		{9, 1, 3},
	}

	state := dummyState(1)
	rng := state.CreateRng()

	for _, c := range cases {
		for i := 0; i < 50; i++ {
			turns := Rules(c.gen).SleepTurns(rng)
			if turns < c.min || turns > c.max {
				t.Fatalf("gen %d sleep duration out of range: got %d expected %d-%d", c.gen, turns, c.min, c.max)
			}
		}
	}
}

func TestBindingAvailability(t *testing.T) {
	if Rules(1).Binding(BIND_WHIRLPOOL).Available {
		t.Fatal("whirlpool should not exist in gen 1")
	}
	if !Rules(2).Binding(BIND_WHIRLPOOL).Available {
		t.Fatal("whirlpool should exist in gen 2")
	}
	if Rules(8).Binding(BIND_CLAMP).Available {
		t.Fatal("clamp should be unusable from gen 8 on")
	}
	if !Rules(7).Binding(BIND_CLAMP).Available {
		t.Fatal("clamp should be usable in gen 7")
	}
	if Rules(7).Binding(BIND_SNAP_TRAP).Available {
		t.Fatal("snap trap should not exist before gen 8")
	}
	if !Rules(8).Binding(BIND_SNAP_TRAP).Available {
		t.Fatal("snap trap should exist in gen 8")
	}
}

func TestBindingGhostImmunity(t *testing.T) {
	if Rules(5).Binding(BIND_BIND).GhostImmune {
		t.Fatal("bind should still trap ghosts in gen 5")
	}
	if !Rules(6).Binding(BIND_BIND).GhostImmune {
		t.Fatal("bind should not trap ghosts from gen 6 on")
	}
	if !Rules(2).Binding(BIND_WRAP).GhostImmune {
		t.Fatal("wrap should not trap ghosts from gen 2 on")
	}
	if Rules(1).Binding(BIND_WRAP).GhostImmune {
		t.Fatal("gen 1 wrap should trap anything")
	}
}

func TestBindingDurations(t *testing.T) {
	spec := Rules(3).Binding(BIND_FIRE_SPIN)
	if spec.MinTurns != 2 || spec.MaxTurns != 5 {
		t.Fatalf("gen 3 fire spin should last 2-5 turns: got %d-%d", spec.MinTurns, spec.MaxTurns)
	}

	spec = Rules(6).Binding(BIND_FIRE_SPIN)
	if spec.MinTurns != 4 || spec.MaxTurns != 5 {
		t.Fatalf("gen 6 fire spin should last 4-5 turns: got %d-%d", spec.MinTurns, spec.MaxTurns)
	}

	state := dummyState(6)
	rng := state.CreateRng()
	for i := 0; i < 50; i++ {
		turns := spec.RollTurns(rng)
		if turns < 4 || turns > 5 {
			t.Fatalf("rolled duration out of spec: got %d", turns)
		}
	}
}

func TestBindingFractions(t *testing.T) {
	if fraction := Rules(5).BindingFraction; fraction != 0.0625 {
		t.Fatalf("gen 5 binding damage should be 1/16: got %f", fraction)
	}
	if fraction := Rules(6).BindingFraction; fraction != 0.125 {
		t.Fatalf("gen 6 binding damage should be 1/8: got %f", fraction)
	}
	if fraction := Rules(5).BindingFractionBoosted; fraction != 0.125 {
		t.Fatalf("gen 5 boosted binding damage should be 1/8: got %f", fraction)
	}
}
