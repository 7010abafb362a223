package monsteragent

import (
	"monsterhunt/internal/rules"
	"monsterhunt/internal/world"
)

// directionVectors maps each named monster direction to its world-absolute
// offset: Top/Down follow +z/-z, Front/Behind follow +y/-y, Right/Left
// follow +x/-x. Monsters have no body frame, so these never depend on
// orientation.
var directionVectors = map[string]world.Vec3{
	"Top":    world.PosZ,
	"Down":   world.NegZ,
	"Front":  world.PosY,
	"Behind": world.NegY,
	"Right":  world.PosX,
	"Left":   world.NegX,
}

func (m *Monster) perceive() rules.MonsterPerception {
	return rules.MonsterPerception{
		Top:    m.sense("Top"),
		Left:   m.sense("Left"),
		Front:  m.sense("Front"),
		Right:  m.sense("Right"),
		Down:   m.sense("Down"),
		Behind: m.sense("Behind"),
	}
}

// sense reads a single named neighbor: 0 if free, -1 if empty or out of
// bounds.
func (m *Monster) sense(dir string) int {
	target := m.Position.Add(directionVectors[dir])
	if m.World.IsFree(target) {
		return 0
	}
	return -1
}
