// Package monsteragent implements the monster: six-direction world-absolute
// perception, K/p cooldown-then-probability gating, and action dispatch.
package monsteragent

import (
	"math/rand"
	"strconv"

	"monsterhunt/internal/rules"
	"monsterhunt/internal/telemetry"
	"monsterhunt/internal/world"
)

// Monster is a single monster.
type Monster struct {
	ID    int
	World *world.World
	Rules *rules.RuleBook
	rng   *rand.Rand

	Position world.Vec3
	Alive    bool

	K                    int
	P                    float64
	StepsSinceLastAction int
}

// New creates a live monster at pos with cooldown K and move probability p,
// and registers it with w.
func New(id int, pos world.Vec3, w *world.World, rb *rules.RuleBook, k int, p float64, rng *rand.Rand) *Monster {
	m := &Monster{
		ID:       id,
		World:    w,
		Rules:    rb,
		rng:      rng,
		Position: pos,
		Alive:    true,
		K:        k,
		P:        p,
	}
	w.RegisterMonster(id, pos)
	return m
}

// Step runs one perceive->gate->act cycle and returns the operation
// record for the logger. It is a no-op returning a zero record if the
// monster is already dead.
func (m *Monster) Step(stepNumber int) telemetry.MonsterRecord {
	if !m.Alive {
		return telemetry.MonsterRecord{Step: stepNumber, Alive: false}
	}

	p := m.perceive()
	m.StepsSinceLastAction++

	record := telemetry.MonsterRecord{
		Step:   stepNumber,
		Top:    p.Top,
		Left:   p.Left,
		Front:  p.Front,
		Right:  p.Right,
		Down:   p.Down,
		Behind: p.Behind,
		NFree:  countFree(p),
		P:      m.P,
		K:      m.K,
		Alive:  true,
	}

	if m.StepsSinceLastAction < m.K {
		record.Accion = string(rules.MonsterWait)
		record.StepsRemaining = m.K - m.StepsSinceLastAction
		record.Pos = vecString(m.Position)
		return record
	}

	if m.rng.Float64() > m.P {
		m.StepsSinceLastAction = 0
		record.Accion = string(rules.MonsterWait)
		record.StepsRemaining = m.K
		record.Pos = vecString(m.Position)
		return record
	}

	idx, action := m.Rules.MonsterLookup(p)
	m.StepsSinceLastAction = 0
	m.act(action)

	record.Regla = idx
	record.Accion = actionString(action)
	record.StepsRemaining = m.K
	record.Pos = vecString(m.Position)
	return record
}

func vecString(v world.Vec3) string {
	return "(" + strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y) + "," + strconv.Itoa(v.Z) + ")"
}

func countFree(p rules.MonsterPerception) int {
	n := 0
	for _, v := range []int{p.Top, p.Left, p.Front, p.Right, p.Down, p.Behind} {
		if v == 0 {
			n++
		}
	}
	return n
}
