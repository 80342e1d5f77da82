package porygon

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/samber/lo"
)

const (
	RESULT_RESOLVED = iota + 1
	RESULT_GAMEOVER
	RESULT_FORCESWITCH
)

// TurnResult represents the result of a turn or part of a turn (in the case
// of a force switch). Unlike events, TurnResult is a single struct with a
// tag, Kind, that determines the result.
type TurnResult struct {
	Kind   int
	Events []StateEvent
	// Only used for RESULT_GAMEOVER and RESULT_FORCESWITCH
	ForThisPlayer bool
}

// ProcessTurn resolves one full turn from both players' submitted actions.
// The returned events have NOT been applied to state; callers feed them
// through ApplyEventsToState (or an EventIter of their own) so replays and
// remote mirrors see the same sequence.
func ProcessTurn(state *BattleState, actions []Action) TurnResult {
	host := &state.HostSide
	client := &state.ClientSide

	switches := make([]SwitchAction, 0)
	otherActions := make([]Action, 0)

	events := make([]StateEvent, 0)

	backFromForceSwitch := host.ActiveKOed || client.ActiveKOed

	for _, a := range actions {
		switch a := a.(type) {
		case SwitchAction:
			switches = append(switches, a)
		default:
			otherActions = append(otherActions, a)
		}
	}

	hostActive := host.GetActive()
	clientActive := client.GetActive()

	if !backFromForceSwitch {
		internalLogger.WithName("orchestrator").Info(fmt.Sprintf("\n\n======== TURN %d =========", state.Turn))

		hostActive.CanActThisTurn = true
		hostActive.SwitchedInThisTurn = false

		clientActive.CanActThisTurn = true
		clientActive.SwitchedInThisTurn = false
	}

	for _, action := range actions {
		internalLogger.V(1).Info("Player Action", "player_id", action.GetCtx().PlayerID, "action_name", reflect.TypeOf(action).Name())
	}

	events = append(events, switchEvents(state, switches)...)

	// Properly end turn after force switches are dealt with
	if backFromForceSwitch {
		internalLogger.V(1).Info("coming back from force switch")
		host.ActiveKOed = false
		client.ActiveKOed = false

		state.Turn++

		return TurnResult{
			Kind:   RESULT_RESOLVED,
			Events: events,
		}
	}

	events = append(events, actionEvents(state, otherActions)...)

	// play the events out on a copy before committing to a verdict
	clonedState := state.Clone()
	ApplyEventsToState(&clonedState, TurnResult{
		Kind:   RESULT_RESOLVED,
		Events: events,
	})

	if result, over := gameOverResult(&clonedState, events); over {
		return result
	}

	if !clonedState.HostSide.GetActive().Alive() {
		host.ActiveKOed = true
		internalLogger.V(1).Info("host's combatant was taken out. returning force switch")
		return TurnResult{
			Kind:          RESULT_FORCESWITCH,
			ForThisPlayer: true,
			Events:        events,
		}
	}

	if !clonedState.ClientSide.GetActive().Alive() {
		client.ActiveKOed = true
		internalLogger.V(1).Info("client's combatant was taken out. returning force switch")
		return TurnResult{
			Kind:          RESULT_FORCESWITCH,
			ForThisPlayer: false,
			Events:        events,
		}
	}

	events = append(events, EndOfTurnEvent{})

	// end-of-turn residuals can take a combatant out too
	clonedState = state.Clone()
	ApplyEventsToState(&clonedState, TurnResult{
		Kind:   RESULT_RESOLVED,
		Events: events,
	})

	if result, over := gameOverResult(&clonedState, events); over {
		return result
	}

	if !clonedState.HostSide.GetActive().Alive() {
		host.ActiveKOed = true
		return TurnResult{
			Kind:          RESULT_FORCESWITCH,
			ForThisPlayer: true,
			Events:        events,
		}
	}

	if !clonedState.ClientSide.GetActive().Alive() {
		client.ActiveKOed = true
		return TurnResult{
			Kind:          RESULT_FORCESWITCH,
			ForThisPlayer: false,
			Events:        events,
		}
	}

	state.Turn++

	return TurnResult{
		Kind:   RESULT_RESOLVED,
		Events: events,
	}
}

func gameOverResult(state *BattleState, events []StateEvent) (TurnResult, bool) {
	switch state.GameOver() {
	case HOST:
		return TurnResult{
			Kind:          RESULT_GAMEOVER,
			ForThisPlayer: true,
			Events:        events,
		}, true
	case PEER:
		return TurnResult{
			Kind:          RESULT_GAMEOVER,
			ForThisPlayer: false,
			Events:        events,
		}, true
	}

	return TurnResult{}, false
}

func ApplyEventsToState(state *BattleState, result TurnResult) {
	eventIter := NewEventIter()
	eventIter.AddEvents(result.Events)

	for {
		_, next := eventIter.Next(state)
		if !next {
			break
		}
	}
}

func switchEvents(state *BattleState, switches []SwitchAction) []StateEvent {
	events := make([]StateEvent, 0)

	// Switches always resolve before moves, ordered among themselves by speed
	slices.SortFunc(switches, func(a, b SwitchAction) int {
		return cmp.Compare(a.Combatant.Speed(), b.Combatant.Speed())
	})

	slices.Reverse(switches)

	lo.ForEach(switches, func(a SwitchAction, i int) {
		events = append(events, a.UpdateState(state)...)
	})

	return events
}

func actionPriority(state *BattleState, a Action) int {
	switch a := a.(type) {
	case MoveAction:
		active := state.GetSide(a.Ctx.PlayerID).GetActive()
		if a.MoveSlot < 0 || a.MoveSlot >= len(active.Moves) {
			return 0
		}
		return active.Moves[a.MoveSlot].Info.Priority
	case SkipAction, *SkipAction:
		return -100
	default:
		internalLogger.Error(fmt.Errorf("unaccounted for action while trying to sort action"), "")
		return 0
	}
}

func actionEvents(state *BattleState, actions []Action) []StateEvent {
	events := make([]StateEvent, 0)

	// Shuffle first so the stable sort breaks perfect ties randomly, then
	// order by priority bracket and speed within it. Trick Room inverts the
	// speed comparison, never the priority brackets.
	rng := state.CreateRng()
	rng.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
	})

	slices.SortStableFunc(actions, func(a, b Action) int {
		aSpeed := state.GetSide(a.GetCtx().PlayerID).GetActive().Speed()
		bSpeed := state.GetSide(b.GetCtx().PlayerID).GetActive().Speed()

		aPriority := actionPriority(state, a)
		bPriority := actionPriority(state, b)

		priorComp := cmp.Compare(aPriority, bPriority)
		speedComp := cmp.Compare(aSpeed, bSpeed)
		if state.Field.TrickRoom {
			speedComp = -speedComp
		}

		if priorComp == 0 {
			return speedComp
		}
		return priorComp
	})

	slices.Reverse(actions)

	// The action resolving last knows it; protection moves fail outright
	// for whoever moves last.
	if len(actions) > 1 {
		if moveAction, ok := actions[len(actions)-1].(MoveAction); ok {
			moveAction.MovedLast = true
			actions[len(actions)-1] = moveAction
		}
	}

	lo.ForEach(actions, func(a Action, i int) {
		events = append(events, a.UpdateState(state)...)
	})

	return events
}

// EndOfTurnEvent runs the whole between-turns pass in one fixed order:
// residual damage, restriction and trap countdowns, rampage fatigue,
// drowsiness, one-shot flag clears, side and field clocks, delayed effects
// and the Dynamax countdown.
type EndOfTurnEvent struct{}

func (event EndOfTurnEvent) Update(state *BattleState) ([]StateEvent, []string) {
	messages := make([]string, 0)

	for _, playerIndex := range []int{HOST, PEER} {
		messages = append(messages, endOfTurnForSide(state, playerIndex)...)
	}

	messages = append(messages, TickFieldEffects(state)...)

	return nil, messages
}

func endOfTurnForSide(state *BattleState, playerIndex int) []string {
	side := state.GetSide(playerIndex)
	mon := side.GetActive()
	rules := state.Rules()
	messages := make([]string, 0)

	// One-shot flags clear before anything else in the pass, so flags the
	// pass itself raises (binding chip damage, a yawn landing sleep) survive
	// into the next turn.
	volatile := &mon.Volatile

	// A turn without a successful protecting move resets the ladder
	if !volatile.ProtectedThisTurn && !volatile.EndureActive && !volatile.MaxGuardActive {
		volatile.ConsecutiveProtects = 0
	}

	volatile.Flinched = false
	volatile.ProtectedThisTurn = false
	volatile.ProtectionMove = PROTECT_NONE
	volatile.EndureActive = false
	volatile.MaxGuardActive = false
	volatile.SleepJustApplied = false
	volatile.ConfusionJustApplied = false
	volatile.SubJustBroke = false
	volatile.TookDamageThisTurn = false
	volatile.StatsChangedThisTurn = false

	magicGuard := rules.Abilities && mon.Ability.MagicGuard

	if mon.Alive() && !magicGuard {
		messages = append(messages, weatherResidual(state, mon)...)
	}

	if mon.Alive() && !magicGuard {
		messages = append(messages, statusResidual(mon)...)
	}

	restrictions := &mon.Restrictions

	if mon.Alive() {
		if restrictions.EncoreTurns > 0 {
			restrictions.EncoreTurns--
			if restrictions.EncoreTurns == 0 {
				restrictions.EncoreSlot = -1
				messages = append(messages, fmt.Sprintf("%s's encore ended!", mon.Nickname))
			}
		}

		if restrictions.DisableTurns > 0 {
			restrictions.DisableTurns--
			if restrictions.DisableTurns == 0 {
				restrictions.DisableSlot = -1
				messages = append(messages, fmt.Sprintf("%s is no longer disabled!", mon.Nickname))
			}
		}

		if restrictions.TauntTurns > 0 {
			restrictions.TauntTurns--
			if restrictions.TauntTurns == 0 {
				messages = append(messages, fmt.Sprintf("%s's taunt wore off!", mon.Nickname))
			}
		}

		if restrictions.PartialTrap != BIND_NONE {
			messages = append(messages, TickBindingDamage(state, playerIndex)...)
		}

		// Yawn resolves before the rampage tick; a sleep landing here
		// suppresses fatigue confusion
		if volatile.DrowsyTurns > 0 {
			volatile.DrowsyTurns--
			if volatile.DrowsyTurns == 0 {
				_, sleepMessages := ApplySleepEvent{PlayerIndex: playerIndex}.Update(state)
				messages = append(messages, sleepMessages...)
			}
		}

		messages = append(messages, TickRampage(state, playerIndex)...)
	}

	messages = append(messages, TickSideEffects(side)...)
	messages = append(messages, TickDelayedEffects(state, playerIndex)...)

	if mon.Alive() && volatile.Dynamaxed {
		volatile.DynamaxTurns--
		if volatile.DynamaxTurns <= 0 {
			volatile.Dynamaxed = false
			messages = append(messages, fmt.Sprintf("%s returned to normal!", mon.Nickname))
		}
	}

	return messages
}

func weatherResidual(state *BattleState, mon *Combatant) []string {
	switch state.Field.Weather {
	case WEATHER_SANDSTORM:
		if mon.HasType(TYPE_ROCK) || mon.HasType(TYPE_GROUND) || mon.HasType(TYPE_STEEL) {
			return nil
		}
		damage := max(1, mon.MaxHp/16)
		mon.Damage(damage)
		return faintCheck(mon, fmt.Sprintf("%s is buffeted by the sandstorm! (-%d HP)", mon.Nickname, damage))

	case WEATHER_HAIL:
		if mon.HasType(TYPE_ICE) {
			return nil
		}
		damage := max(1, mon.MaxHp/16)
		mon.Damage(damage)
		return faintCheck(mon, fmt.Sprintf("%s is pelted by the hail! (-%d HP)", mon.Nickname, damage))
	}

	return nil
}

func statusResidual(mon *Combatant) []string {
	switch mon.Status {
	case STATUS_BURN:
		damage := max(1, mon.MaxHp/16)
		mon.Damage(damage)
		return faintCheck(mon, fmt.Sprintf("%s is hurt by its burn! (-%d HP)", mon.Nickname, damage))

	case STATUS_POISON:
		damage := max(1, mon.MaxHp/8)
		mon.Damage(damage)
		return faintCheck(mon, fmt.Sprintf("%s is hurt by poison! (-%d HP)", mon.Nickname, damage))

	case STATUS_TOXIC:
		damage := max(1, mon.MaxHp*mon.ToxicCount/16)
		mon.ToxicCount++
		mon.Damage(damage)
		return faintCheck(mon, fmt.Sprintf("%s is hurt by poison! (-%d HP)", mon.Nickname, damage))
	}

	return nil
}

func faintCheck(mon *Combatant, message string) []string {
	if !mon.Alive() {
		return []string{message, fmt.Sprintf("%s fainted!", mon.Nickname)}
	}

	return []string{message}
}
