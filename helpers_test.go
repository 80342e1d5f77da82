package porygon

import "math/rand/v2"

var testData = DefaultRegistry()

func testSeed() rand.PCG {
	return *rand.NewPCG(8675309, 42)
}

func dummyCombatant(nickname string) Combatant {
	return NewCombatantBuilder(nickname, testData).
		SetTypes(TYPE_NORMAL, TYPE_NONE).
		AddMoves("tackle", "protect", "bind", "swords-dance").
		Build()
}

func simpleState(generation int, hostMon Combatant, clientMon Combatant) BattleState {
	return NewState(generation, []Combatant{hostMon}, []Combatant{clientMon}, testData, testSeed())
}

func dummyState(generation int) BattleState {
	return simpleState(generation, dummyCombatant("Hostmon"), dummyCombatant("Clientmon"))
}

// moveSlot finds a combatant's slot for a move by name. Test setup only.
func moveSlot(c *Combatant, name string) int {
	for slot, move := range c.Moves {
		if move.Info.Name == name {
			return slot
		}
	}

	panic("test combatant does not know " + name)
}
