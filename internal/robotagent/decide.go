package robotagent

import "monsterhunt/internal/rules"

// decide resolves a perception to an action, reporting the winning rule
// index (0 for default) and whether the action was sourced from memory.
//
// Vacuoscopio_Front=-1 always bypasses memory: an empty-cell block must
// never be papered over by a stale replayed action. Otherwise the most
// recent matching memory entry wins over a fresh rule lookup.
func (r *Robot) decide(p rules.RobotPerception) (int, rules.RobotAction, bool) {
	if p.VacuoscopioFront == -1 {
		idx, action := r.Rules.RobotLookup(p)
		return idx, action, false
	}

	for i := len(r.memory) - 1; i >= 0; i-- {
		if r.memory[i].perception == p {
			return 0, r.memory[i].action, true
		}
	}

	idx, action := r.Rules.RobotLookup(p)
	return idx, action, false
}
