package ipc

import "github.com/nstehr/vimy/vimy-tactics/model"

// Command type constants, kept in sync with the bridge's command executor.
const (
	TypeMove       = "move"
	TypeAttack     = "attack"
	TypeAttackMove = "attack_move"
	TypeStop       = "stop"
)

type MoveCommand struct {
	UnitID int `json:"unit_id"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

type AttackCommand struct {
	UnitID   int `json:"unit_id"`
	TargetID int `json:"target_id"`
}

type AttackMoveCommand struct {
	UnitID int `json:"unit_id"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

type StopCommand struct {
	UnitID int `json:"unit_id"`
}

// Commands sends unit orders over a connection.
type Commands struct {
	Conn *Connection
}

func (c Commands) Move(unitID int, to model.Position) error {
	return c.Conn.Send(TypeMove, MoveCommand{UnitID: unitID, X: to.X, Y: to.Y})
}

func (c Commands) Attack(unitID, targetID int) error {
	return c.Conn.Send(TypeAttack, AttackCommand{UnitID: unitID, TargetID: targetID})
}

func (c Commands) AttackPosition(unitID int, at model.Position) error {
	return c.Conn.Send(TypeAttackMove, AttackMoveCommand{UnitID: unitID, X: at.X, Y: at.Y})
}

func (c Commands) Stop(unitID int) error {
	return c.Conn.Send(TypeStop, StopCommand{UnitID: unitID})
}
