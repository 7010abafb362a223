package telemetry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFinalizeWritesPerAgentCSVAndSummary(t *testing.T) {
	logger := NewLogger()
	logger.LogRobotOp(1, RobotRecord{Step: 1, Pos: "(1,1,1)", NuevaAccion: "move z+90", UsaRegla: 1, Regla: 3})
	logger.LogMonsterOp(1, MonsterRecord{Step: 1, Pos: "(2,2,2)", Accion: "wait", Alive: true})

	dir := t.TempDir()
	summary := Summary{SimulationID: "test", StepsExecuted: 1}
	if err := logger.Finalize(dir, summary); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	robotCSV, err := os.ReadFile(filepath.Join(dir, "R1.csv"))
	if err != nil {
		t.Fatalf("reading R1.csv: %v", err)
	}
	if !strings.Contains(string(robotCSV), "move z+90") {
		t.Fatalf("expected robot csv to contain the logged action, got: %s", robotCSV)
	}

	monsterCSV, err := os.ReadFile(filepath.Join(dir, "M1.csv"))
	if err != nil {
		t.Fatalf("reading M1.csv: %v", err)
	}
	if !strings.Contains(string(monsterCSV), "wait") {
		t.Fatalf("expected monster csv to contain wait, got: %s", monsterCSV)
	}

	summaryData, err := os.ReadFile(filepath.Join(dir, "estadisticas_finales.json"))
	if err != nil {
		t.Fatalf("reading summary: %v", err)
	}
	var got Summary
	if err := json.Unmarshal(summaryData, &got); err != nil {
		t.Fatalf("unmarshaling summary: %v", err)
	}
	if got.SimulationID != "test" {
		t.Fatalf("expected simulation id 'test', got %q", got.SimulationID)
	}
}

func TestBuildRobotSummaryRatiosAndTopRules(t *testing.T) {
	ops := []RobotRecord{
		{Regla: 1, UsaRegla: 1},
		{Regla: 1, UsaRegla: 1},
		{Regla: 2, UsaRegla: 1},
		{UsaMemoria: 1},
	}
	s := BuildRobotSummary(1, true, "(0,0,0)", "(0,0,1)", 0, 0, ops)
	if s.MemoryVsRuleRatio == 0 {
		t.Fatal("expected nonzero memory-vs-rule ratio")
	}
	if len(s.TopRules) == 0 || s.TopRules[0].Rule != 1 {
		t.Fatalf("expected rule 1 to be the most used, got %+v", s.TopRules)
	}
}

func TestBuildMonsterSummaryWaitRatio(t *testing.T) {
	ops := []MonsterRecord{
		{Accion: "wait"},
		{Accion: "wait"},
		{Accion: "move_to Front", Regla: 1},
	}
	s := BuildMonsterSummary(1, true, "(0,0,0)", 3, 0.5, ops)
	if s.WaitRatio < 0.6 || s.WaitRatio > 0.7 {
		t.Fatalf("expected wait ratio ~0.667, got %f", s.WaitRatio)
	}
}
