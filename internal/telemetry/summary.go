package telemetry

import (
	"encoding/json"
	"os"
	"sort"
)

// RobotSummary is one robot's aggregate entry in the finalization summary.
type RobotSummary struct {
	ID                int         `json:"id"`
	Alive             bool        `json:"alive"`
	FinalPosition     string      `json:"final_position"`
	FinalOrientation  string      `json:"final_orientation"`
	MonstersDestroyed int         `json:"monsters_destroyed"`
	RobotsCollided    int         `json:"robots_collided"`
	TopRules          []RuleUsage `json:"top_rules"`
	MemoryVsRuleRatio float64     `json:"memory_vs_rule_ratio"`
}

// MonsterSummary is one monster's aggregate entry in the finalization summary.
type MonsterSummary struct {
	ID            int         `json:"id"`
	Alive         bool        `json:"alive"`
	FinalPosition string      `json:"final_position"`
	K             int         `json:"k"`
	P             float64     `json:"p"`
	WaitRatio     float64     `json:"wait_ratio"`
	TopRules      []RuleUsage `json:"top_rules"`
}

// RuleUsage is one entry of a top-5 most-used-rule breakdown.
type RuleUsage struct {
	Rule  int `json:"rule"`
	Count int `json:"count"`
}

// Summary is the full finalization document written as
// estadisticas_finales.json.
type Summary struct {
	SimulationID   string           `json:"simulation_id"`
	RunToken       string           `json:"run_token"`
	DurationMillis int64            `json:"duration_ms"`
	StepsExecuted  int              `json:"steps_executed"`
	RobotsAlive    int              `json:"robots_alive"`
	MonstersAlive  int              `json:"monsters_alive"`
	Robots         []RobotSummary   `json:"robots"`
	Monsters       []MonsterSummary `json:"monsters"`
}

// BuildRobotSummary aggregates one robot's operation log into a RobotSummary.
func BuildRobotSummary(id int, alive bool, finalPos, finalOrientation string, monstersDestroyed, robotsCollided int, ops []RobotRecord) RobotSummary {
	ruleCounts := map[int]int{}
	memoryCount, ruleCount := 0, 0
	for _, op := range ops {
		if op.UsaMemoria == 1 {
			memoryCount++
		}
		if op.UsaRegla == 1 {
			ruleCount++
			ruleCounts[op.Regla]++
		}
	}

	ratio := 0.0
	if ruleCount > 0 {
		ratio = float64(memoryCount) / float64(ruleCount)
	}

	return RobotSummary{
		ID:                id,
		Alive:             alive,
		FinalPosition:     finalPos,
		FinalOrientation:  finalOrientation,
		MonstersDestroyed: monstersDestroyed,
		RobotsCollided:    robotsCollided,
		TopRules:          topRules(ruleCounts),
		MemoryVsRuleRatio: ratio,
	}
}

// BuildMonsterSummary aggregates one monster's operation log into a
// MonsterSummary.
func BuildMonsterSummary(id int, alive bool, finalPos string, k int, p float64, ops []MonsterRecord) MonsterSummary {
	ruleCounts := map[int]int{}
	waits := 0
	for _, op := range ops {
		if op.Accion == "wait" {
			waits++
		} else if op.Regla > 0 {
			ruleCounts[op.Regla]++
		}
	}

	waitRatio := 0.0
	if len(ops) > 0 {
		waitRatio = float64(waits) / float64(len(ops))
	}

	return MonsterSummary{
		ID:            id,
		Alive:         alive,
		FinalPosition: finalPos,
		K:             k,
		P:             p,
		WaitRatio:     waitRatio,
		TopRules:      topRules(ruleCounts),
	}
}

func topRules(counts map[int]int) []RuleUsage {
	usage := make([]RuleUsage, 0, len(counts))
	for rule, count := range counts {
		usage = append(usage, RuleUsage{Rule: rule, Count: count})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Count != usage[j].Count {
			return usage[i].Count > usage[j].Count
		}
		return usage[i].Rule < usage[j].Rule
	})
	if len(usage) > 5 {
		usage = usage[:5]
	}
	return usage
}

func writeSummary(path string, summary Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
