// Package rules implements the decision tables that drive both agent kinds:
// loading the two CSV rule tables, matching a perception against them with
// first-match-wins semantics (including the Energometer short-circuit for
// robots), and decoding the action payload of the winning row.
package rules

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// RobotPerception is the eight-sensor snapshot a robot's rule row is matched
// against. Field order matches the CSV column order.
type RobotPerception struct {
	Energometro      int
	Lado1Top         int
	Lado2Left        int
	VacuoscopioFront int
	Lado0Front       int
	RoboscannerFront int
	Lado3Right       int
	Lado4Down        int
}

// MonsterPerception is the six-direction snapshot a monster's rule row is
// matched against.
type MonsterPerception struct {
	Top, Left, Front, Right, Down, Behind int
}

// robotRuleRow is one row of robot_rules.csv.
type robotRuleRow struct {
	Energometro      int    `csv:"Energometro"`
	Lado1Top         int    `csv:"Lado1_Top"`
	Lado2Left        int    `csv:"Lado2_Left"`
	VacuoscopioFront int    `csv:"Vacuoscopio_Front"`
	Lado0Front       int    `csv:"Lado0_Front"`
	RoboscannerFront int    `csv:"Roboscanner_Front"`
	Lado3Right       int    `csv:"Lado3_Right"`
	Lado4Down        int    `csv:"Lado4_Down"`
	Regla            int    `csv:"Regla"`
	Accion           string `csv:"Accion"`
}

// monsterRuleRow is one row of monster_rules.csv.
type monsterRuleRow struct {
	Top    int    `csv:"Top"`
	Left   int    `csv:"Left"`
	Front  int    `csv:"Front"`
	Right  int    `csv:"Right"`
	Down   int    `csv:"Down"`
	Behind int    `csv:"Behind"`
	Regla  int    `csv:"Regla"`
	Accion string `csv:"Accion"`
}

// RuleBook holds the two immutable, ordered rule tables.
type RuleBook struct {
	robotRows      []robotRuleRow
	robotActions   []RobotAction
	monsterRows    []monsterRuleRow
	monsterActions []MonsterAction
}

// Load parses the robot and monster rule CSV files named by robotPath and
// monsterPath. A missing file, an unreadable file, or a table with no
// rows is a fatal configuration error.
func Load(robotPath, monsterPath string) (*RuleBook, error) {
	robotRows, err := loadRobotRows(robotPath)
	if err != nil {
		return nil, fmt.Errorf("loading robot rules from %s: %w", robotPath, err)
	}
	monsterRows, err := loadMonsterRows(monsterPath)
	if err != nil {
		return nil, fmt.Errorf("loading monster rules from %s: %w", monsterPath, err)
	}

	rb := &RuleBook{
		robotRows:   robotRows,
		monsterRows: monsterRows,
	}

	rb.robotActions = make([]RobotAction, len(robotRows))
	for i, row := range robotRows {
		action, ok := ParseRobotAction(row.Accion)
		if !ok {
			log.Warn().Int("row", i+1).Str("accion", row.Accion).
				Msg("robot rule has malformed action payload; treating as idle")
			action = RobotAction{Kind: ActionIdle}
		}
		rb.robotActions[i] = action
	}

	rb.monsterActions = make([]MonsterAction, len(monsterRows))
	for i, row := range monsterRows {
		action, ok := ParseMonsterAction(row.Accion)
		if !ok {
			log.Warn().Int("row", i+1).Str("accion", row.Accion).
				Msg("monster rule has malformed action payload; treating as wait")
			action = MonsterAction{Kind: MonsterWait}
		}
		rb.monsterActions[i] = action
	}

	if err := rb.validate(); err != nil {
		return nil, err
	}
	return rb, nil
}

func loadRobotRows(path string) ([]robotRuleRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []robotRuleRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func loadMonsterRows(path string) ([]monsterRuleRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []monsterRuleRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// validate checks both tables are non-empty. Column names are not checked:
// a table without an Accion column loads, and every row's action is then
// treated as malformed (idle for robots, wait for monsters).
func (rb *RuleBook) validate() error {
	if len(rb.robotRows) == 0 {
		return ErrEmptyRobotTable
	}
	if len(rb.monsterRows) == 0 {
		return ErrEmptyMonsterTable
	}
	return nil
}

// RobotLookup returns the 1-based index of the first robot rule row matching
// p, and its decoded action. If no row matches, it returns (0, DefaultRobotAction()).
func (rb *RuleBook) RobotLookup(p RobotPerception) (int, RobotAction) {
	for i, row := range rb.robotRows {
		if matchesRobotRow(row, p) {
			return i + 1, rb.robotActions[i]
		}
	}
	return 0, DefaultRobotAction()
}

// matchesRobotRow implements the Energometer short-circuit: a row with
// Energometro=1 matches iff the perception's Energometro=1, ignoring every
// other sensor in that row.
func matchesRobotRow(row robotRuleRow, p RobotPerception) bool {
	if row.Energometro == 1 {
		return p.Energometro == 1
	}
	return row.Energometro == p.Energometro &&
		row.Lado1Top == p.Lado1Top &&
		row.Lado2Left == p.Lado2Left &&
		row.VacuoscopioFront == p.VacuoscopioFront &&
		row.Lado0Front == p.Lado0Front &&
		row.RoboscannerFront == p.RoboscannerFront &&
		row.Lado3Right == p.Lado3Right &&
		row.Lado4Down == p.Lado4Down
}

// MonsterLookup returns the 1-based index of the first monster rule row
// matching p, and its decoded action. If no row matches, it returns
// (0, DefaultMonsterAction()).
func (rb *RuleBook) MonsterLookup(p MonsterPerception) (int, MonsterAction) {
	for i, row := range rb.monsterRows {
		if matchesMonsterRow(row, p) {
			return i + 1, rb.monsterActions[i]
		}
	}
	return 0, DefaultMonsterAction()
}

func matchesMonsterRow(row monsterRuleRow, p MonsterPerception) bool {
	return row.Top == p.Top &&
		row.Left == p.Left &&
		row.Front == p.Front &&
		row.Right == p.Right &&
		row.Down == p.Down &&
		row.Behind == p.Behind
}

// RobotRuleCount reports how many rows the loaded robot table has.
func (rb *RuleBook) RobotRuleCount() int { return len(rb.robotRows) }

// MonsterRuleCount reports how many rows the loaded monster table has.
func (rb *RuleBook) MonsterRuleCount() int { return len(rb.monsterRows) }
