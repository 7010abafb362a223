// Package sim implements the step scheduler: it drives robots and monsters
// through perceive/decide/act in id order, resolves same-cell collisions,
// and checks termination.
package sim

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"monsterhunt/internal/config"
	"monsterhunt/internal/monsteragent"
	"monsterhunt/internal/robotagent"
	"monsterhunt/internal/rules"
	"monsterhunt/internal/telemetry"
	"monsterhunt/internal/world"
)

// Scheduler owns the world, the rule book, every agent, the logger, and the
// single seeded PRNG shared by world construction, monster gating, and
// move_random selection.
type Scheduler struct {
	Cfg     *config.Config
	World   *world.World
	Rules   *rules.RuleBook
	Logger  *telemetry.Logger
	Robots  []*robotagent.Robot
	Monster []*monsteragent.Monster

	rng  *rand.Rand
	step int
}

// New builds a fully-populated Scheduler: loads the rule tables, carves the
// world, and places every robot and monster per the configured position
// mode.
func New(cfg *config.Config) (*Scheduler, error) {
	rb, err := rules.Load(cfg.RobotRulesPath, cfg.MonsterRulesPath)
	if err != nil {
		return nil, fmt.Errorf("loading rule tables: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	w := world.New(cfg.WorldSize, cfg.PercentageEmpty, cfg.InternalEmptyRatio, rng)

	s := &Scheduler{
		Cfg:    cfg,
		World:  w,
		Rules:  rb,
		Logger: telemetry.NewLogger(),
		rng:    rng,
	}

	for i := 1; i <= cfg.NumRobots; i++ {
		pos, err := s.pickPosition(cfg.RobotPositionMode, cfg.RobotFixedPosition)
		if err != nil {
			return nil, fmt.Errorf("placing robot %d: %w", i, err)
		}
		s.Robots = append(s.Robots, robotagent.New(i, pos, w, rb, cfg.RobotMemoryLimit, rng))
	}

	for i := 1; i <= cfg.NumMonsters; i++ {
		pos, err := s.pickPosition(cfg.MonsterPositionMode, cfg.MonsterFixedPosition)
		if err != nil {
			return nil, fmt.Errorf("placing monster %d: %w", i, err)
		}
		s.Monster = append(s.Monster, monsteragent.New(i, pos, w, rb, cfg.MonsterFrequency, cfg.MonsterProbability, rng))
	}

	return s, nil
}

func (s *Scheduler) pickPosition(mode config.PositionMode, fixed string) (world.Vec3, error) {
	if mode == config.PositionFixed {
		return parseVec3(fixed)
	}
	return s.World.RandomInternalFreeCell()
}

func parseVec3(s string) (world.Vec3, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return world.Vec3{}, fmt.Errorf("expected 3 comma-separated coordinates, got %q", s)
	}
	coords := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return world.Vec3{}, fmt.Errorf("invalid coordinate %q: %w", p, err)
		}
		coords[i] = n
	}
	return world.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// StepOnce runs exactly one simulation step and returns whether the
// simulation should continue (false once either population is extinct or
// the step cap was reached by this call).
func (s *Scheduler) StepOnce() bool {
	s.step++

	for _, r := range s.liveRobotsByID() {
		rec := r.Step(s.step)
		s.Logger.LogRobotOp(r.ID, rec)
	}
	s.sweepRobotCollisions()

	for _, m := range s.liveMonstersByID() {
		rec := m.Step(s.step)
		s.Logger.LogMonsterOp(m.ID, rec)
	}
	s.sweepMonsterCollisions()

	if s.step >= s.Cfg.SimulationSteps {
		return false
	}
	if s.countLiveRobots() == 0 || s.countLiveMonsters() == 0 {
		return false
	}
	return true
}

// Run drives StepOnce to completion and returns the step count executed.
func (s *Scheduler) Run() int {
	for s.StepOnce() {
	}
	return s.step
}

func (s *Scheduler) liveRobotsByID() []*robotagent.Robot {
	live := make([]*robotagent.Robot, 0, len(s.Robots))
	for _, r := range s.Robots {
		if r.Alive {
			live = append(live, r)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].ID < live[j].ID })
	return live
}

func (s *Scheduler) liveMonstersByID() []*monsteragent.Monster {
	live := make([]*monsteragent.Monster, 0, len(s.Monster))
	for _, m := range s.Monster {
		if m.Alive {
			live = append(live, m)
		}
	}
	sort.Slice(live, func(i, j int) bool { return live[i].ID < live[j].ID })
	return live
}

func (s *Scheduler) countLiveRobots() int {
	n := 0
	for _, r := range s.Robots {
		if r.Alive {
			n++
		}
	}
	return n
}

func (s *Scheduler) countLiveMonsters() int {
	n := 0
	for _, m := range s.Monster {
		if m.Alive {
			n++
		}
	}
	return n
}

// sweepRobotCollisions arbitrates every pair of live robots sharing a cell:
// the smaller id survives and has its collision counter incremented, the
// other is killed and unregistered.
func (s *Scheduler) sweepRobotCollisions() {
	live := s.liveRobotsByID()
	for i := 0; i < len(live); i++ {
		a := live[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < len(live); j++ {
			b := live[j]
			if !b.Alive || b.Position != a.Position {
				continue
			}
			a.RobotsCollided++
			b.Alive = false
			s.World.UnregisterRobot(b.ID)
			log.Info().Int("survivor", a.ID).Int("casualty", b.ID).Msg("robot collision")
		}
	}
}

// sweepMonsterCollisions applies the same smaller-id-survives rule among
// live monsters sharing a cell.
func (s *Scheduler) sweepMonsterCollisions() {
	live := s.liveMonstersByID()
	for i := 0; i < len(live); i++ {
		a := live[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < len(live); j++ {
			b := live[j]
			if !b.Alive || b.Position != a.Position {
				continue
			}
			b.Alive = false
			s.World.UnregisterMonster(b.ID)
			log.Info().Int("survivor", a.ID).Int("casualty", b.ID).Msg("monster collision")
		}
	}
}

// StepsExecuted reports how many steps have run so far.
func (s *Scheduler) StepsExecuted() int { return s.step }

func vecString(v world.Vec3) string {
	return "(" + strconv.Itoa(v.X) + "," + strconv.Itoa(v.Y) + "," + strconv.Itoa(v.Z) + ")"
}
