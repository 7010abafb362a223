package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"WORLD_SIZE", "PERCENTAGE_EMPTY", "INTERNAL_EMPTY_RATIO", "NUM_ROBOTS",
		"NUM_MONSTERS", "ROBOT_POSITION_MODE", "ROBOT_FIXED_POSITION",
		"MONSTER_POSITION_MODE", "MONSTER_FIXED_POSITION", "SIMULATION_STEPS",
		"MONSTER_FREQUENCY", "MONSTER_PROBABILITY", "ROBOT_MEMORY_LIMIT",
		"RANDOM_SEED",
	}
	for _, k := range keys {
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorldSize != 20 {
		t.Fatalf("expected default WorldSize=20, got %d", cfg.WorldSize)
	}
	if cfg.RobotPositionMode != PositionRandom {
		t.Fatalf("expected default random position mode, got %q", cfg.RobotPositionMode)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	os.Setenv("WORLD_SIZE", "12")
	os.Setenv("MONSTER_PROBABILITY", "0.25")
	defer clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorldSize != 12 {
		t.Fatalf("expected WorldSize=12, got %d", cfg.WorldSize)
	}
	if cfg.MonsterProbability != 0.25 {
		t.Fatalf("expected MonsterProbability=0.25, got %f", cfg.MonsterProbability)
	}
}

func TestValidateRejectsBadProbability(t *testing.T) {
	clearEnv(t)
	os.Setenv("MONSTER_PROBABILITY", "1.5")
	defer clearEnv(t)

	if _, err := Load(""); err == nil {
		t.Fatal("expected validation error for MONSTER_PROBABILITY > 1")
	}
}

func TestOverlayTakesPrecedenceOverEnv(t *testing.T) {
	clearEnv(t)
	os.Setenv("WORLD_SIZE", "12")
	defer clearEnv(t)

	dir := t.TempDir()
	overlay := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(overlay, []byte("world_size: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(overlay)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WorldSize != 30 {
		t.Fatalf("expected overlay to win with WorldSize=30, got %d", cfg.WorldSize)
	}
}

func TestMissingOverlayIsNotAnError(t *testing.T) {
	clearEnv(t)
	if _, err := Load("/nonexistent/config.yaml"); err != nil {
		t.Fatalf("a missing overlay file should be tolerated, got %v", err)
	}
}
