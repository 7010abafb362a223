package telemetry

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// Logger accumulates per-agent operation records in memory for the
// duration of a run. It is write-only from the simulation core's
// perspective; nothing reads these buffers back mid-run.
type Logger struct {
	robotOps   map[int][]RobotRecord
	monsterOps map[int][]MonsterRecord
}

// NewLogger returns an empty Logger.
func NewLogger() *Logger {
	return &Logger{
		robotOps:   make(map[int][]RobotRecord),
		monsterOps: make(map[int][]MonsterRecord),
	}
}

// LogRobotOp appends rec to robot id's buffer.
func (l *Logger) LogRobotOp(id int, rec RobotRecord) {
	l.robotOps[id] = append(l.robotOps[id], rec)
}

// LogMonsterOp appends rec to monster id's buffer.
func (l *Logger) LogMonsterOp(id int, rec MonsterRecord) {
	l.monsterOps[id] = append(l.monsterOps[id], rec)
}

// Finalize flushes one CSV file per agent (R<id>.csv, M<id>.csv) and the
// JSON summary into dir. A write failure for one agent is reported and
// does not block the others; it never aborts the run since finalization
// happens after the simulation already completed.
func (l *Logger) Finalize(dir string, summary Summary) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for id, rows := range l.robotOps {
		path := filepath.Join(dir, "R"+strconv.Itoa(id)+".csv")
		if err := writeCSV(path, rows); err != nil {
			log.Error().Err(err).Int("robot", id).Msg("failed to write robot operation log")
		}
	}
	for id, rows := range l.monsterOps {
		path := filepath.Join(dir, "M"+strconv.Itoa(id)+".csv")
		if err := writeCSV(path, rows); err != nil {
			log.Error().Err(err).Int("monster", id).Msg("failed to write monster operation log")
		}
	}

	if err := writeSummary(filepath.Join(dir, "estadisticas_finales.json"), summary); err != nil {
		log.Error().Err(err).Msg("failed to write simulation summary")
		return err
	}
	return nil
}

func writeCSV[T any](path string, rows []T) error {
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0o644)
}

// RobotOps exposes the accumulated per-step records for robot id, for
// summary aggregation.
func (l *Logger) RobotOps(id int) []RobotRecord { return l.robotOps[id] }

// MonsterOps exposes the accumulated per-step records for monster id, for
// summary aggregation.
func (l *Logger) MonsterOps(id int) []MonsterRecord { return l.monsterOps[id] }

// RobotIDs returns every robot id that has logged at least one operation.
func (l *Logger) RobotIDs() []int {
	ids := make([]int, 0, len(l.robotOps))
	for id := range l.robotOps {
		ids = append(ids, id)
	}
	return ids
}

// MonsterIDs returns every monster id that has logged at least one operation.
func (l *Logger) MonsterIDs() []int {
	ids := make([]int, 0, len(l.monsterOps))
	for id := range l.monsterOps {
		ids = append(ids, id)
	}
	return ids
}
