package rules

import "errors"

var (
	// ErrEmptyRobotTable is returned when a loaded robot rule table has no rows.
	ErrEmptyRobotTable = errors.New("robot rule table has no rows")
	// ErrEmptyMonsterTable is returned when a loaded monster rule table has no rows.
	ErrEmptyMonsterTable = errors.New("monster rule table has no rows")
)
