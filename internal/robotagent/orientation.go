package robotagent

import "monsterhunt/internal/world"

// rotationTable resolves (current heading, rotation token) to the new
// heading. Rotations are defined relative to the robot's initial head
// reference rather than its current heading: y+90 is always "turn left",
// y-90 "turn right", x+90 "look up", x-90 "look down", regardless of which
// way the robot is currently facing. z+90 is a pure forward-translation
// token and never appears in this table.
var rotationTable = map[string]map[world.Vec3]world.Vec3{
	"y+90": {
		world.PosY: world.NegX,
		world.NegY: world.PosX,
		world.PosX: world.PosY,
		world.NegX: world.NegY,
		world.PosZ: world.NegX,
		world.NegZ: world.PosX,
	},
	"y-90": {
		world.PosY: world.PosX,
		world.NegY: world.NegX,
		world.PosX: world.NegY,
		world.NegX: world.PosY,
		world.PosZ: world.PosX,
		world.NegZ: world.NegX,
	},
	"x+90": {
		world.PosY: world.PosZ,
		world.NegY: world.NegZ,
		world.PosX: world.PosY,
		world.NegX: world.NegY,
		world.PosZ: world.NegY,
		world.NegZ: world.PosY,
	},
	"x-90": {
		world.PosY: world.NegZ,
		world.NegY: world.PosZ,
		world.PosX: world.NegY,
		world.NegX: world.PosY,
		world.PosZ: world.PosY,
		world.NegZ: world.NegY,
	},
}

// isRotationToken reports whether tok names an entry in rotationTable.
func isRotationToken(tok string) bool {
	_, ok := rotationTable[tok]
	return ok
}

// applyRotation returns the heading reached by applying tok to current.
// It is a no-op (returns current unchanged) for tokens outside the table,
// including the translation token z+90.
func applyRotation(current world.Vec3, tok string) world.Vec3 {
	byHeading, ok := rotationTable[tok]
	if !ok {
		return current
	}
	next, ok := byHeading[current]
	if !ok {
		return current
	}
	return next
}

// bodyLeft and bodyRight derive the body-frame left/right neighbors from
// the current heading: left = (-oy, ox, oz), right = (oy, -ox, oz).
func bodyLeft(o world.Vec3) world.Vec3 {
	return world.Vec3{X: -o.Y, Y: o.X, Z: o.Z}
}

func bodyRight(o world.Vec3) world.Vec3 {
	return world.Vec3{X: o.Y, Y: -o.X, Z: o.Z}
}
