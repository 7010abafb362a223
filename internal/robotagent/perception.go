package robotagent

import (
	"monsterhunt/internal/rules"
	"monsterhunt/internal/world"
)

// perceive reads the eight sensors fresh from the world. A robot detected
// in the forward cell triggers an immediate y+90 turn as a side effect of
// perception itself, before the snapshot is returned.
func (r *Robot) perceive() rules.RobotPerception {
	p := rules.RobotPerception{
		VacuoscopioFront: r.vacuscopeMemory,
	}

	if _, ok := r.World.MonsterAt(r.Position); ok {
		p.Energometro = 1
	}

	front := r.Position.Add(r.Orientation)
	if _, ok := r.World.MonsterAt(front); ok {
		p.Lado0Front = 1
	}

	top := r.Position.Add(world.PosZ)
	if _, ok := r.World.MonsterAt(top); ok {
		p.Lado1Top = 1
	}
	down := r.Position.Add(world.NegZ)
	if _, ok := r.World.MonsterAt(down); ok {
		p.Lado4Down = 1
	}

	left := r.Position.Add(bodyLeft(r.Orientation))
	if _, ok := r.World.MonsterAt(left); ok {
		p.Lado2Left = 1
	}
	right := r.Position.Add(bodyRight(r.Orientation))
	if _, ok := r.World.MonsterAt(right); ok {
		p.Lado3Right = 1
	}

	if _, ok := r.World.RobotAt(front, r.ID); ok {
		p.RoboscannerFront = 2
		r.Orientation = applyRotation(r.Orientation, "y+90")
	}

	return p
}
