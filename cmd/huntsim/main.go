// Command huntsim runs the monster-hunt simulation headless: it loads
// configuration and rule tables, steps the scheduler to completion, and
// finalizes the per-agent operation logs and summary.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"monsterhunt/internal/config"
	"monsterhunt/internal/rules"
	"monsterhunt/internal/sim"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "huntsim",
	Short: "Deterministic 3D monster-hunt simulation core",
	Long: `huntsim runs a turn-based, three-dimensional simulation of
monster-killer robots hunting monsters inside a closed cubic lattice,
driven entirely by externally-loaded rule tables.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation to completion and write the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		scheduler, err := sim.New(cfg)
		if err != nil {
			return fmt.Errorf("building scheduler: %w", err)
		}

		log.Info().
			Int("world_size", cfg.WorldSize).
			Int("robots", cfg.NumRobots).
			Int("monsters", cfg.NumMonsters).
			Int64("seed", cfg.RandomSeed).
			Msg("starting simulation")

		result, err := scheduler.RunToCompletion()
		if err != nil {
			return fmt.Errorf("running simulation: %w", err)
		}

		log.Info().
			Int("steps", result.StepsExecuted).
			Str("output_dir", result.OutputDir).
			Msg("simulation finished")
		return nil
	},
}

var validateRulesCmd = &cobra.Command{
	Use:   "validate-rules",
	Short: "Load the configured rule tables and report row counts without running a simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		rb, err := rules.Load(cfg.RobotRulesPath, cfg.MonsterRulesPath)
		if err != nil {
			return fmt.Errorf("loading rule tables: %w", err)
		}

		fmt.Printf("robot rules: %d rows\n", rb.RobotRuleCount())
		fmt.Printf("monster rules: %d rows\n", rb.MonsterRuleCount())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to an optional YAML configuration overlay")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateRulesCmd)
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("huntsim failed")
	}
}
