package porygon

import (
	"fmt"
	"reflect"
)

// StateEvent represents a "single" change in BattleState.
// Single here meaning a high-level of single, but multiple "things" happening
// in a single event should be strongly related.
//
// StateEvents are separate from Actions in that Events are the low level
// changes of state and Actions represent the higher level choices a player
// makes that are made of Events
type StateEvent interface {
	// Update will update BattleState in some way. Follow-up events caused by this update are returned
	// and should be handled DIRECTLY after this state event. The second value is a list of messages to be displayed for the event.
	Update(*BattleState) ([]StateEvent, []string)
}

type SwitchEvent struct {
	SwitchIndex int
	PlayerIndex int
}

func (event SwitchEvent) Update(state *BattleState) ([]StateEvent, []string) {
	side, opposingSide := getSidePair(state, event.PlayerIndex)
	current := side.GetActive()
	newActive := side.GetCombatant(event.SwitchIndex)

	if !newActive.Alive() {
		panic(fmt.Errorf("tried to switch %s in while fainted", newActive.Nickname))
	}

	rules := state.Rules()

	// Trapping only holds the combatant in while it is still standing.
	if current.Alive() && (current.Restrictions.Trapped || current.Restrictions.PartialTrapTurns > 0) {
		if !(rules.HeldItems && current.Item.AllowsSwitchWhenTrapped) {
			return nil, []string{fmt.Sprintf("%s could not switch out!", current.Nickname)}
		}
	}

	if current.Alive() && state.Field.FairyLockActive {
		ghostExempt := rules.GhostEscapesTraps() && current.HasType(TYPE_GHOST)
		itemExempt := rules.HeldItems && current.Item.AllowsSwitchWhenTrapped
		if !ghostExempt && !itemExempt {
			return nil, []string{fmt.Sprintf("%s could not switch out!", current.Nickname)}
		}
	}

	opposing := opposingSide.GetActive()
	if current.Alive() && rules.Abilities && opposing.Alive() && opposing.Ability.TrapsOpponents {
		return nil, []string{fmt.Sprintf("%s could not switch out!", current.Nickname)}
	}

	current.ResetOnSwitch()

	internalLogger.WithName("switch_event").Info("", "side_name", side.Name, "combatant", newActive.Nickname)

	side.ActiveIndex = event.SwitchIndex

	messages := make([]string, 0)

	// Toxic resets its ramp on switch-in
	if newActive.Status == STATUS_TOXIC {
		newActive.ToxicCount = 1
	}

	newActive.SwitchedInThisTurn = true
	newActive.CanActThisTurn = false

	if state.Turn == 0 || state.Turn == 1 {
		messages = append(messages, fmt.Sprintf("%s sent in %s!", side.Name, newActive.Nickname))
	} else {
		messages = append(messages, fmt.Sprintf("%s switched to %s!", side.Name, newActive.Nickname))
	}

	messages = append(messages, ApplyEntryHazards(state, event.PlayerIndex)...)

	return nil, messages
}

// DamageEvent applies a flat, already-computed amount of damage. Substitutes
// soak it unless Direct is set (confusion self-hits, residual damage).
type DamageEvent struct {
	PlayerIndex    int
	Damage         int
	Direct         bool
	SupressMessage bool
}

func (event DamageEvent) Update(state *BattleState) ([]StateEvent, []string) {
	target := state.GetSide(event.PlayerIndex).GetActive()

	if !target.Alive() {
		return nil, nil
	}

	messages := make([]string, 0)

	if !event.Direct {
		hitSub, broke := target.DamageThroughSub(event.Damage)
		if hitSub {
			if broke {
				messages = append(messages, fmt.Sprintf("%s's substitute broke!", target.Nickname))
			} else if !event.SupressMessage {
				messages = append(messages, fmt.Sprintf("The substitute took the hit for %s!", target.Nickname))
			}

			return nil, messages
		}
	} else {
		target.Damage(event.Damage)
	}

	if !event.SupressMessage {
		messages = append(messages, fmt.Sprintf("%s took %d damage!", target.Nickname, event.Damage))
	}

	// Endure leaves the combatant standing at 1 HP
	if target.Hp <= 0 && target.Volatile.EndureActive {
		target.Hp = 1
		messages = append(messages, fmt.Sprintf("%s endured the hit!", target.Nickname))
	}

	if !target.Alive() {
		messages = append(messages, fmt.Sprintf("%s fainted!", target.Nickname))
	}

	return nil, messages
}

type HealEvent struct {
	PlayerIndex int
	Amount      int
}

func (event HealEvent) Update(state *BattleState) ([]StateEvent, []string) {
	target := state.GetSide(event.PlayerIndex).GetActive()

	if !target.Alive() {
		return nil, nil
	}

	healed := target.Heal(event.Amount)
	if healed == 0 {
		return nil, []string{fmt.Sprintf("%s's HP is already full!", target.Nickname)}
	}

	return nil, []string{fmt.Sprintf("%s restored %d HP!", target.Nickname, healed)}
}

type StatChangeEvent struct {
	PlayerIndex int
	Stat        int
	Change      int
	// ByOpponent distinguishes drops that stat-protection abilities block.
	ByOpponent bool
}

var statNames = map[int]string{
	STAT_ATTACK:   "Attack",
	STAT_DEF:      "Defense",
	STAT_SPATTACK: "Sp. Attack",
	STAT_SPDEF:    "Sp. Defense",
	STAT_SPEED:    "Speed",
	STAT_ACCURACY: "accuracy",
	STAT_EVASION:  "evasiveness",
}

func (event StatChangeEvent) Update(state *BattleState) ([]StateEvent, []string) {
	target := state.GetSide(event.PlayerIndex).GetActive()

	if !target.Alive() {
		return nil, nil
	}

	rules := state.Rules()

	if event.Change < 0 && event.ByOpponent {
		if rules.Abilities && target.Ability.StatDropImmune {
			return nil, []string{fmt.Sprintf("%s's ability prevents stat loss!", target.Nickname)}
		}

		if target.Restrictions.TauntTurns == 0 && state.GetSide(event.PlayerIndex).Effects.Mist {
			return nil, []string{fmt.Sprintf("%s is protected by the mist!", target.Nickname)}
		}
	}

	change := target.ApplyStage(event.Stat, event.Change)

	statName := statNames[event.Stat]
	switch {
	case change >= 2:
		return nil, []string{fmt.Sprintf("%s's %s rose sharply!", target.Nickname, statName)}
	case change == 1:
		return nil, []string{fmt.Sprintf("%s's %s rose!", target.Nickname, statName)}
	case change == -1:
		return nil, []string{fmt.Sprintf("%s's %s fell!", target.Nickname, statName)}
	case change <= -2:
		return nil, []string{fmt.Sprintf("%s's %s fell harshly!", target.Nickname, statName)}
	}

	return nil, []string{fmt.Sprintf("%s's %s won't go any further!", target.Nickname, statName)}
}

// ApplyConfusionEvent inflicts confusion for 2-5 turns.
type ApplyConfusionEvent struct {
	PlayerIndex int
}

func (event ApplyConfusionEvent) Update(state *BattleState) ([]StateEvent, []string) {
	target := state.GetSide(event.PlayerIndex).GetActive()

	if !target.Alive() {
		return nil, nil
	}

	if state.Rules().Abilities && target.Ability.ConfusionImmune {
		return nil, []string{fmt.Sprintf("%s cannot be confused!", target.Nickname)}
	}

	if target.Volatile.ConfusionTurns > 0 {
		return nil, []string{fmt.Sprintf("%s is already confused!", target.Nickname)}
	}

	rng := state.CreateRng()
	target.Volatile.ConfusionTurns = rng.IntN(4) + 2
	target.Volatile.ConfusionJustApplied = true

	return nil, []string{fmt.Sprintf("%s became confused!", target.Nickname)}
}

// ApplySleepEvent inflicts sleep with a generation-rolled duration and marks
// it just-applied so the first decrement is deferred a turn.
type ApplySleepEvent struct {
	PlayerIndex int
}

func (event ApplySleepEvent) Update(state *BattleState) ([]StateEvent, []string) {
	target := state.GetSide(event.PlayerIndex).GetActive()

	if !target.Alive() {
		return nil, nil
	}

	rules := state.Rules()

	if rules.Abilities && target.Ability.ImmuneToStatus(STATUS_SLEEP) {
		return nil, []string{fmt.Sprintf("%s stayed awake!", target.Nickname)}
	}

	if target.Status != STATUS_NONE {
		return nil, []string{"But it failed!"}
	}

	if state.Field.UproarTurns > 0 {
		return nil, []string{fmt.Sprintf("But the uproar kept %s awake!", target.Nickname)}
	}

	if state.GetSide(event.PlayerIndex).Effects.Safeguard {
		return nil, []string{fmt.Sprintf("%s is protected by Safeguard!", target.Nickname)}
	}

	target.Status = STATUS_SLEEP
	target.SleepTurns = rules.SleepTurns(state.CreateRng())
	target.Volatile.SleepJustApplied = true

	return nil, []string{fmt.Sprintf("%s fell asleep!", target.Nickname)}
}

// MessageEvent is an event that only shows a message. No state updates occur.
type MessageEvent struct {
	Message string
}

func NewMessageEvent(message string) MessageEvent {
	return MessageEvent{Message: message}
}

func (event MessageEvent) Update(_ *BattleState) ([]StateEvent, []string) {
	return nil, []string{event.Message}
}

// FmtMessageEvent is an event that only shows a message fmt.Sprintf'ed with the given arguments. All rules with fmt.Sprintf apply here
type FmtMessageEvent struct {
	Message string
	Args    []any
}

func NewFmtMessageEvent(message string, a ...any) FmtMessageEvent {
	return FmtMessageEvent{Message: message, Args: a}
}

func (event FmtMessageEvent) Update(_ *BattleState) ([]StateEvent, []string) {
	return nil, []string{fmt.Sprintf(event.Message, event.Args...)}
}

type EventIter struct {
	events []StateEvent
}

func NewEventIter() EventIter {
	return EventIter{make([]StateEvent, 0)}
}

// Next updates state given the top event, adds any follow up events to the front of the queue,
// and returns the messages from that state to be shown to the user. The boolean value is true if
// there are any more events in the queue.
func (iter *EventIter) Next(state *BattleState) ([]string, bool) {
	if len(iter.events) == 0 {
		return nil, false
	}

	headEvent := iter.events[0]
	internalLogger.WithName("event_iter").V(1).Info("Updating state", "event_name", reflect.TypeOf(headEvent))
	followUpEvents, messages := headEvent.Update(state)

	// pop queue
	iter.events = iter.events[1:len(iter.events)]

	if len(followUpEvents) != 0 {
		// create new queue with follow_up_events prepended to the front
		newQueue := make([]StateEvent, 0, len(iter.events)+len(followUpEvents))
		newQueue = append(newQueue, followUpEvents...)
		newQueue = append(newQueue, iter.events...)

		iter.events = newQueue
	}

	state.MessageHistory = append(state.MessageHistory, messages...)

	return messages, true
}

func (iter *EventIter) AddEvents(events []StateEvent) {
	iter.events = append(iter.events, events...)
}

func (iter EventIter) Len() int {
	return len(iter.events)
}
