package porygon

import (
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
)

type Side struct {
	Name        string
	Team        []Combatant
	ActiveIndex int

	// Whether the side's active combatant was ko'ed this turn. This is
	// separate from GetActive().Alive() since it must persist across the
	// forced switch and be reset when the turn properly ends.
	ActiveKOed bool

	Effects SideEffects

	Wish         *DelayedEffect
	FutureAttack *DelayedEffect
}

func (s Side) GetActive() *Combatant {
	return s.GetCombatant(s.ActiveIndex)
}

// GetCombatant gets a side's combatant at some index
func (s Side) GetCombatant(index int) *Combatant {
	return &s.Team[index]
}

func (s Side) Lost() bool {
	for _, combatant := range s.Team {
		if combatant.Alive() {
			internalLogger.V(2).Info("Side hasn't lost yet", "side_name", s.Name, "alive_combatant", combatant.Nickname)
			return false
		}
	}

	return true
}

// BattleState is the complete, self-contained state of one battle. Battles
// never share state; running several in parallel just means owning several
// of these.
type BattleState struct {
	ID           uuid.UUID
	Generation   int
	HostSide     Side
	ClientSide   Side
	Turn         int
	Field        FieldEffects
	ForfeitedBy  int
	Data         *Registry
	// An RngSource is stored here directly instead of inside an instance of rand.Rand.
	// This keeps the state copyable and lets replays reproduce every roll.
	RngSource rand.PCG

	MessageHistory []string
}

func NewState(generation int, hostTeam []Combatant, clientTeam []Combatant, data *Registry, seed rand.PCG) BattleState {
	// validate the generation up front so a bad one cannot surface turns later
	Rules(generation)

	for i := range hostTeam {
		hostTeam[i].Restrictions = newRestrictionState()
	}
	for i := range clientTeam {
		clientTeam[i].Restrictions = newRestrictionState()
	}

	return BattleState{
		ID:         uuid.New(),
		Generation: generation,
		HostSide:   Side{Name: "Host", Team: hostTeam},
		ClientSide: Side{Name: "Client", Team: clientTeam},
		Field:      FieldEffects{},
		Data:       data,
		RngSource:  seed,
	}
}

func (g *BattleState) GetSide(index int) *Side {
	if index == HOST {
		return &g.HostSide
	} else {
		return &g.ClientSide
	}
}

func (g *BattleState) Rules() GenRules {
	return Rules(g.Generation)
}

// GameOver returns whether the battle should be over (all of a side's
// combatants fainted, or a forfeit between turns).
// Value will be -1 for no winner yet, or the winner HOST or PEER
func (g *BattleState) GameOver() int {
	if g.ForfeitedBy != 0 {
		return InvertPlayerIndex(g.ForfeitedBy)
	}

	if g.HostSide.Lost() {
		return PEER
	}

	if g.ClientSide.Lost() {
		return HOST
	}

	return -1
}

// Forfeit concedes the battle for a side. Only legal between turns; the
// orchestrator never checks it mid-resolution.
func (g *BattleState) Forfeit(playerIndex int) {
	g.ForfeitedBy = playerIndex
}

// Clone creates a copy of this state, handling new slice creation and allocation
func (g BattleState) Clone() BattleState {
	newState := g
	newState.HostSide.Team = slices.Clone(g.HostSide.Team)
	newState.ClientSide.Team = slices.Clone(g.ClientSide.Team)
	newState.MessageHistory = slices.Clone(g.MessageHistory)

	if g.HostSide.Wish != nil {
		wish := *g.HostSide.Wish
		newState.HostSide.Wish = &wish
	}
	if g.ClientSide.Wish != nil {
		wish := *g.ClientSide.Wish
		newState.ClientSide.Wish = &wish
	}
	if g.HostSide.FutureAttack != nil {
		attack := *g.HostSide.FutureAttack
		newState.HostSide.FutureAttack = &attack
	}
	if g.ClientSide.FutureAttack != nil {
		attack := *g.ClientSide.FutureAttack
		newState.ClientSide.FutureAttack = &attack
	}

	for i := range newState.HostSide.Team {
		newState.HostSide.Team[i].Moves = slices.Clone(g.HostSide.Team[i].Moves)
		if sub := g.HostSide.Team[i].Sub; sub != nil {
			subCopy := *sub
			newState.HostSide.Team[i].Sub = &subCopy
		}
	}
	for i := range newState.ClientSide.Team {
		newState.ClientSide.Team[i].Moves = slices.Clone(g.ClientSide.Team[i].Moves)
		if sub := g.ClientSide.Team[i].Sub; sub != nil {
			subCopy := *sub
			newState.ClientSide.Team[i].Sub = &subCopy
		}
	}

	return newState
}

func (g *BattleState) CreateRng() *rand.Rand {
	return rand.New(&g.RngSource)
}

func InvertPlayerIndex(index int) int {
	if index == HOST {
		return PEER
	}

	return HOST
}

// getSidePair returns both the side with the given index as the first value and the opposing side as the second value
func getSidePair(state *BattleState, activePlayerIndex int) (*Side, *Side) {
	side := state.GetSide(activePlayerIndex)
	opposingSide := state.GetSide(InvertPlayerIndex(activePlayerIndex))

	return side, opposingSide
}
