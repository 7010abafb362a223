// Package config loads the process-wide simulation configuration from
// environment variables, with an optional YAML file overlay.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// PositionMode selects how a population's starting positions are chosen.
type PositionMode string

const (
	PositionRandom PositionMode = "random"
	PositionFixed  PositionMode = "fixed"
)

// Config is the full set of process-wide simulation parameters.
type Config struct {
	WorldSize          int     `yaml:"world_size"`
	PercentageEmpty    float64 `yaml:"percentage_empty"`
	InternalEmptyRatio float64 `yaml:"internal_empty_ratio"`

	NumRobots   int `yaml:"num_robots"`
	NumMonsters int `yaml:"num_monsters"`

	RobotPositionMode    PositionMode `yaml:"robot_position_mode"`
	RobotFixedPosition   string       `yaml:"robot_fixed_position"`
	MonsterPositionMode  PositionMode `yaml:"monster_position_mode"`
	MonsterFixedPosition string       `yaml:"monster_fixed_position"`

	SimulationSteps int `yaml:"simulation_steps"`

	MonsterFrequency   int     `yaml:"monster_frequency"`
	MonsterProbability float64 `yaml:"monster_probability"`

	RobotMemoryLimit int `yaml:"robot_memory_limit"`

	RandomSeed int64 `yaml:"random_seed"`

	RobotRulesPath   string `yaml:"robot_rules_path"`
	MonsterRulesPath string `yaml:"monster_rules_path"`
	OutputDir        string `yaml:"output_dir"`
}

// Load builds a Config from environment variables, then merges a YAML file
// at overlayPath on top if overlayPath is non-empty and exists.
func Load(overlayPath string) (*Config, error) {
	cfg := &Config{
		WorldSize:            getEnvInt("WORLD_SIZE", 20),
		PercentageEmpty:      getEnvFloat("PERCENTAGE_EMPTY", 0.1),
		InternalEmptyRatio:   getEnvFloat("INTERNAL_EMPTY_RATIO", 1.0),
		NumRobots:            getEnvInt("NUM_ROBOTS", 5),
		NumMonsters:          getEnvInt("NUM_MONSTERS", 10),
		RobotPositionMode:    PositionMode(getEnv("ROBOT_POSITION_MODE", string(PositionRandom))),
		RobotFixedPosition:   getEnv("ROBOT_FIXED_POSITION", ""),
		MonsterPositionMode:  PositionMode(getEnv("MONSTER_POSITION_MODE", string(PositionRandom))),
		MonsterFixedPosition: getEnv("MONSTER_FIXED_POSITION", ""),
		SimulationSteps:      getEnvInt("SIMULATION_STEPS", 500),
		MonsterFrequency:     getEnvInt("MONSTER_FREQUENCY", 3),
		MonsterProbability:   getEnvFloat("MONSTER_PROBABILITY", 0.5),
		RobotMemoryLimit:     getEnvInt("ROBOT_MEMORY_LIMIT", 1000),
		RandomSeed:           int64(getEnvInt("RANDOM_SEED", 1)),
		RobotRulesPath:       getEnv("ROBOT_RULES_PATH", "data/robot_rules.csv"),
		MonsterRulesPath:     getEnv("MONSTER_RULES_PATH", "data/monster_rules.csv"),
		OutputDir:            getEnv("OUTPUT_DIR", "output"),
	}

	if overlayPath != "" {
		if err := cfg.applyOverlay(overlayPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyOverlay(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config overlay %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config overlay %s: %w", path, err)
	}
	return nil
}

// Validate enforces the bounds every component assumes holds once
// configuration is loaded: an under-sized world, an out-of-range
// probability, or a non-positive cooldown would violate invariants deep
// inside world, monsteragent, and robotagent.
func (c *Config) Validate() error {
	if c.WorldSize < 3 {
		return fmt.Errorf("WORLD_SIZE must be >= 3, got %d", c.WorldSize)
	}
	if c.MonsterProbability < 0 || c.MonsterProbability > 1 {
		return fmt.Errorf("MONSTER_PROBABILITY must be in [0,1], got %f", c.MonsterProbability)
	}
	if c.MonsterFrequency < 1 {
		return fmt.Errorf("MONSTER_FREQUENCY must be >= 1, got %d", c.MonsterFrequency)
	}
	if c.RobotMemoryLimit < 0 {
		return fmt.Errorf("ROBOT_MEMORY_LIMIT must be >= 0, got %d", c.RobotMemoryLimit)
	}
	if c.NumRobots < 0 || c.NumMonsters < 0 {
		return fmt.Errorf("NUM_ROBOTS and NUM_MONSTERS must be >= 0")
	}
	if c.RobotPositionMode != PositionRandom && c.RobotPositionMode != PositionFixed {
		return fmt.Errorf("ROBOT_POSITION_MODE must be random or fixed, got %q", c.RobotPositionMode)
	}
	if c.MonsterPositionMode != PositionRandom && c.MonsterPositionMode != PositionFixed {
		return fmt.Errorf("MONSTER_POSITION_MODE must be random or fixed, got %q", c.MonsterPositionMode)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
