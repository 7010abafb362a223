package rules

import "encoding/json"

// RobotActionKind enumerates the decoded robot action payload kinds.
type RobotActionKind string

const (
	ActionMove       RobotActionKind = "move"
	ActionMoveRandom RobotActionKind = "move_random"
	ActionRotate     RobotActionKind = "rotate"
	ActionDestroy    RobotActionKind = "destroy"
	ActionMemory     RobotActionKind = "memory"
	ActionIdle       RobotActionKind = "idle"
)

// RobotAction is a structured robot action payload: a kind plus an ordered
// list of direction tokens. Direction tokens are the rotation tokens
// x+90/x-90/y+90/y-90 and the forward-translation token z+90; the robot
// ignores any other token.
type RobotAction struct {
	Kind       RobotActionKind `json:"-"`
	Directions []string        `json:"-"`
}

// robotActionWire is the on-disk JSON shape: {"tipo": kind, "directions": [...]}.
type robotActionWire struct {
	Tipo       string   `json:"tipo"`
	Directions []string `json:"directions"`
}

// DefaultRobotAction is returned when no rule row matches a perception:
// advance along body-frame forward.
func DefaultRobotAction() RobotAction {
	return RobotAction{Kind: ActionMove, Directions: []string{"z+90"}}
}

// ParseRobotAction decodes the JSON action cell used by robot_rules.csv.
// Unknown kinds are reported to the caller rather than defaulted here, so
// the caller can log the offending payload before substituting idle.
func ParseRobotAction(raw string) (RobotAction, bool) {
	var wire robotActionWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return RobotAction{}, false
	}
	switch RobotActionKind(wire.Tipo) {
	case ActionMove, ActionMoveRandom, ActionRotate, ActionDestroy, ActionMemory, ActionIdle:
		return RobotAction{Kind: RobotActionKind(wire.Tipo), Directions: wire.Directions}, true
	default:
		return RobotAction{}, false
	}
}

// MonsterActionKind enumerates the monster action surface.
type MonsterActionKind string

const (
	MonsterWait            MonsterActionKind = "wait"
	MonsterMoveTo          MonsterActionKind = "move_to"
	MonsterMoveRandomAmong MonsterActionKind = "move_random_among"
)

// MonsterAction is the decoded monster action: wait, a deterministic move
// to one named direction, or a random choice among several.
type MonsterAction struct {
	Kind       MonsterActionKind
	Directions []string
}

// DefaultMonsterAction is returned when no rule row matches.
func DefaultMonsterAction() MonsterAction {
	return MonsterAction{Kind: MonsterWait}
}
