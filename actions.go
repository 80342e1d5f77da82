package porygon

type Action interface {
	UpdateState(*BattleState) []StateEvent

	GetCtx() ActionCtx
}

type ActionCtx struct {
	PlayerID int
}

func NewActionCtx(playerID int) ActionCtx {
	return ActionCtx{PlayerID: playerID}
}

type SwitchAction struct {
	Ctx ActionCtx

	SwitchIndex int
	Combatant   Combatant
}

func NewSwitchAction(state *BattleState, playerID int, switchIndex int) SwitchAction {
	return SwitchAction{
		Ctx:         NewActionCtx(playerID),
		SwitchIndex: switchIndex,

		Combatant: *state.GetSide(playerID).GetCombatant(switchIndex),
	}
}

func (a SwitchAction) UpdateState(state *BattleState) []StateEvent {
	return []StateEvent{SwitchEvent{PlayerIndex: a.Ctx.PlayerID, SwitchIndex: a.SwitchIndex}}
}

func (a SwitchAction) GetCtx() ActionCtx {
	return a.Ctx
}

// MoveAction is a player choosing a move slot for the turn. The hit outcome
// comes along with the choice: accuracy, type matchups and the damage
// formula live in the external damage pipeline, and the engine receives
// their verdict as Connected plus a flat Damage amount.
type MoveAction struct {
	Ctx ActionCtx

	MoveSlot  int
	Connected bool
	Damage    int
	// MovedLast reports whether this action resolves after every other
	// action this turn. Protection moves fail outright when it is set.
	MovedLast bool
}

func NewMoveAction(playerID int, moveSlot int, connected bool, damage int) MoveAction {
	return MoveAction{
		Ctx:       NewActionCtx(playerID),
		MoveSlot:  moveSlot,
		Connected: connected,
		Damage:    damage,
	}
}

func (a MoveAction) UpdateState(state *BattleState) []StateEvent {
	return []StateEvent{MoveEvent{
		PlayerIndex: a.Ctx.PlayerID,
		MoveSlot:    a.MoveSlot,
		Connected:   a.Connected,
		Damage:      a.Damage,
		MovedLast:   a.MovedLast,
	}}
}

func (a MoveAction) GetCtx() ActionCtx {
	return a.Ctx
}

type SkipAction struct {
	Ctx ActionCtx
}

func NewSkipAction(playerID int) SkipAction {
	return SkipAction{
		Ctx: NewActionCtx(playerID),
	}
}

func (a SkipAction) UpdateState(state *BattleState) []StateEvent {
	return []StateEvent{
		NewMessageEvent("skip turn"),
	}
}

func (a SkipAction) GetCtx() ActionCtx {
	return a.Ctx
}
