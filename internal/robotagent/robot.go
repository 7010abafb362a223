// Package robotagent implements the monster-killer robot: its eight-sensor
// perception, orientation algebra, bounded memory, rule-driven decision
// procedure, and action interpreter.
package robotagent

import (
	"math/rand"
	"strconv"

	"monsterhunt/internal/rules"
	"monsterhunt/internal/telemetry"
	"monsterhunt/internal/world"
)

// experience is one stored (perception, action) pair in a robot's memory.
type experience struct {
	perception rules.RobotPerception
	action     rules.RobotAction
}

// Robot is a single monster-killer robot.
type Robot struct {
	ID     int
	World  *world.World
	Rules  *rules.RuleBook
	rng    *rand.Rand

	Position         world.Vec3
	PreviousPosition world.Vec3
	hasPrevious      bool
	Orientation      world.Vec3
	Alive            bool

	vacuscopeMemory int
	memory          []experience
	memoryLimit     int

	MonstersDestroyed int
	RobotsCollided    int
}

// New creates a live robot at pos facing +z (the initial head reference)
// and registers it with w.
func New(id int, pos world.Vec3, w *world.World, rb *rules.RuleBook, memoryLimit int, rng *rand.Rand) *Robot {
	r := &Robot{
		ID:          id,
		World:       w,
		Rules:       rb,
		rng:         rng,
		Position:    pos,
		Orientation: world.PosZ,
		Alive:       true,
		memoryLimit: memoryLimit,
	}
	w.RegisterRobot(id, pos)
	return r
}

// Step runs one perceive->decide->act cycle and returns the operation
// record for the logger. It is a no-op returning a zero record if the
// robot is already dead.
func (r *Robot) Step(stepNumber int) telemetry.RobotRecord {
	if !r.Alive {
		return telemetry.RobotRecord{Step: stepNumber}
	}

	p := r.perceive()
	if p.VacuoscopioFront == -1 {
		r.vacuscopeMemory = 0
	}
	ruleIdx, action, usedMemory := r.decide(p)
	concreteAction := r.act(action)
	r.remember(p, concreteAction)

	usaMemoria, usaRegla := 0, 0
	switch {
	case usedMemory:
		usaMemoria = 1
		ruleIdx = 0
	case ruleIdx != 0:
		usaRegla = 1
	}

	return telemetry.RobotRecord{
		Step:             stepNumber,
		Pos:              vecString(r.Position),
		Orientation:      vecString(r.Orientation),
		Energometro:      p.Energometro,
		Lado1Top:         p.Lado1Top,
		Lado2Left:        p.Lado2Left,
		VacuoscopioFront: p.VacuoscopioFront,
		Lado0Front:       p.Lado0Front,
		RoboscannerFront: p.RoboscannerFront,
		Lado3Right:       p.Lado3Right,
		Lado4Down:        p.Lado4Down,
		Regla:            ruleIdx,
		NuevaAccion:      actionString(concreteAction),
		AccionMemoria:    actionString(action), // pre-resolution action, before move_random picks a concrete direction
		UsaMemoria:       usaMemoria,
		UsaRegla:         usaRegla,
	}
}

func (r *Robot) remember(p rules.RobotPerception, action rules.RobotAction) {
	r.memory = append(r.memory, experience{perception: p, action: action})
	if len(r.memory) > r.memoryLimit {
		r.memory = r.memory[len(r.memory)-r.memoryLimit:]
	}
}

func vecString(v world.Vec3) string {
	return "(" + strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y) + "," + strconv.Itoa(v.Z) + ")"
}

func actionString(a rules.RobotAction) string {
	s := string(a.Kind)
	for _, d := range a.Directions {
		s += " " + d
	}
	return s
}
