package sim

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"monsterhunt/internal/telemetry"
)

// RunResult is the outcome of a full simulation run.
type RunResult struct {
	OutputDir     string
	StepsExecuted int
}

// RunToCompletion drives the scheduler to termination, then finalizes the
// operation logs and summary into a freshly timestamped output directory
// under s.Cfg.OutputDir.
func (s *Scheduler) RunToCompletion() (RunResult, error) {
	start := time.Now()
	s.Run()
	elapsed := time.Since(start)

	stamp := start.Format("02012006_150405")
	outDir := filepath.Join(s.Cfg.OutputDir, "simulacion_"+stamp)

	summary := s.buildSummary(stamp, uuid.New().String(), elapsed)
	if err := s.Logger.Finalize(outDir, summary); err != nil {
		return RunResult{}, fmt.Errorf("finalizing output: %w", err)
	}

	return RunResult{OutputDir: outDir, StepsExecuted: s.step}, nil
}

func (s *Scheduler) buildSummary(simID, runToken string, elapsed time.Duration) telemetry.Summary {
	robotsAlive, monstersAlive := 0, 0

	robotSummaries := make([]telemetry.RobotSummary, 0, len(s.Robots))
	for _, r := range s.Robots {
		if r.Alive {
			robotsAlive++
		}
		ops := s.Logger.RobotOps(r.ID)
		robotSummaries = append(robotSummaries, telemetry.BuildRobotSummary(
			r.ID, r.Alive, vecString(r.Position), vecString(r.Orientation),
			r.MonstersDestroyed, r.RobotsCollided, ops,
		))
	}

	monsterSummaries := make([]telemetry.MonsterSummary, 0, len(s.Monster))
	for _, m := range s.Monster {
		if m.Alive {
			monstersAlive++
		}
		ops := s.Logger.MonsterOps(m.ID)
		monsterSummaries = append(monsterSummaries, telemetry.BuildMonsterSummary(
			m.ID, m.Alive, vecString(m.Position), m.K, m.P, ops,
		))
	}

	return telemetry.Summary{
		SimulationID:   simID,
		RunToken:       runToken,
		DurationMillis: elapsed.Milliseconds(),
		StepsExecuted:  s.step,
		RobotsAlive:    robotsAlive,
		MonstersAlive:  monstersAlive,
		Robots:         robotSummaries,
		Monsters:       monsterSummaries,
	}
}
