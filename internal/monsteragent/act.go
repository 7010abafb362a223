package monsteragent

import (
	"monsterhunt/internal/rules"
)

// act executes the resolved action. move_to is a deterministic move into a
// free named neighbor, silently remaining otherwise; move_random_among
// picks uniformly among the listed directions and then applies move_to.
func (m *Monster) act(action rules.MonsterAction) {
	switch action.Kind {
	case rules.MonsterWait:
		return

	case rules.MonsterMoveTo:
		if len(action.Directions) == 0 {
			return
		}
		m.moveTo(action.Directions[0])

	case rules.MonsterMoveRandomAmong:
		if len(action.Directions) == 0 {
			return
		}
		dir := action.Directions[m.rng.Intn(len(action.Directions))]
		m.moveTo(dir)
	}
}

func (m *Monster) moveTo(dir string) {
	vec, ok := directionVectors[dir]
	if !ok {
		return
	}
	target := m.Position.Add(vec)
	if !m.World.IsFree(target) {
		return
	}
	m.Position = target
	m.World.UpdateMonsterPosition(m.ID, m.Position)
}

func actionString(a rules.MonsterAction) string {
	s := string(a.Kind)
	for _, d := range a.Directions {
		s += " " + d
	}
	return s
}
