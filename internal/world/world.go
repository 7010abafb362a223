// Package world implements the cubic lattice the simulation runs on: cell
// states, agent-position registries, and the validity/occupancy queries and
// mutations every agent and the scheduler rely on.
package world

import (
	"errors"
	"math/rand"
)

// ErrNoFreeInteriorCell is returned by RandomInternalFreeCell when every
// strict-interior cell is carved empty.
var ErrNoFreeInteriorCell = errors.New("no free interior cell available")

// CellState is the state of a single lattice cell.
type CellState uint8

const (
	// Free cells admit agents.
	Free CellState = iota
	// Empty cells are boundary or randomly-carved voids; no agent may stand on one.
	Empty
)

// Vec3 is an integer lattice coordinate or direction vector.
type Vec3 struct {
	X, Y, Z int
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Neg returns the component-wise negation of v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Orientation axis vectors used as the robot's initial heading and rotation targets.
var (
	PosX = Vec3{1, 0, 0}
	NegX = Vec3{-1, 0, 0}
	PosY = Vec3{0, 1, 0}
	NegY = Vec3{0, -1, 0}
	PosZ = Vec3{0, 0, 1}
	NegZ = Vec3{0, 0, -1}
)

// World is the N^3 lattice plus the id-indexed robot and monster registries.
// It holds no back-pointers to agent objects: agents hold a handle to the
// World, never the other way around.
type World struct {
	N        int
	cells    [][][]CellState
	robots   map[int]Vec3
	monsters map[int]Vec3
	rng      *rand.Rand
}

// New builds a World of side N, carving interior empty cells with the given
// density: an interior cell becomes Empty with probability
// pEmpty*internalEmptyRatio*0.5. The outer shell (any coordinate 0 or N-1)
// is always Empty. rng must be non-nil and is the single seeded PRNG
// threaded through construction.
func New(n int, pEmpty, internalEmptyRatio float64, rng *rand.Rand) *World {
	w := &World{
		N:        n,
		cells:    make([][][]CellState, n),
		robots:   make(map[int]Vec3),
		monsters: make(map[int]Vec3),
		rng:      rng,
	}
	for x := 0; x < n; x++ {
		w.cells[x] = make([][]CellState, n)
		for y := 0; y < n; y++ {
			w.cells[x][y] = make([]CellState, n)
		}
	}

	emptyProb := pEmpty * internalEmptyRatio * 0.5

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if isBoundary(n, x, y, z) {
					w.cells[x][y][z] = Empty
					continue
				}
				if w.rng.Float64() < emptyProb {
					w.cells[x][y][z] = Empty
				} else {
					w.cells[x][y][z] = Free
				}
			}
		}
	}
	return w
}

func isBoundary(n, x, y, z int) bool {
	return x == 0 || y == 0 || z == 0 || x == n-1 || y == n-1 || z == n-1
}

// InBounds reports whether p addresses a lattice cell.
func (w *World) InBounds(p Vec3) bool {
	return p.X >= 0 && p.X < w.N && p.Y >= 0 && p.Y < w.N && p.Z >= 0 && p.Z < w.N
}

// IsFree reports whether p is in-bounds and its cell is Free.
func (w *World) IsFree(p Vec3) bool {
	if !w.InBounds(p) {
		return false
	}
	return w.cells[p.X][p.Y][p.Z] == Free
}

// IsEmpty reports whether p is out-of-bounds or its cell is Empty. Sensors
// rely on out-of-bounds counting as empty so they degrade gracefully at the
// boundary.
func (w *World) IsEmpty(p Vec3) bool {
	if !w.InBounds(p) {
		return true
	}
	return w.cells[p.X][p.Y][p.Z] == Empty
}

// MonsterAt returns the id of the live monster at p, or (0, false).
func (w *World) MonsterAt(p Vec3) (int, bool) {
	for id, pos := range w.monsters {
		if pos == p {
			return id, true
		}
	}
	return 0, false
}

// RobotAt returns the id of a live robot at p, excluding excludeID (pass 0
// for no exclusion since robot ids start at 1), or (0, false).
func (w *World) RobotAt(p Vec3, excludeID int) (int, bool) {
	for id, pos := range w.robots {
		if id == excludeID {
			continue
		}
		if pos == p {
			return id, true
		}
	}
	return 0, false
}

// RobotPosition returns the current position of robot id.
func (w *World) RobotPosition(id int) (Vec3, bool) {
	p, ok := w.robots[id]
	return p, ok
}

// MonsterPosition returns the current position of monster id.
func (w *World) MonsterPosition(id int) (Vec3, bool) {
	p, ok := w.monsters[id]
	return p, ok
}

// RobotIDs returns the ids of all currently-registered (live) robots.
func (w *World) RobotIDs() []int {
	ids := make([]int, 0, len(w.robots))
	for id := range w.robots {
		ids = append(ids, id)
	}
	return ids
}

// MonsterIDs returns the ids of all currently-registered (live) monsters.
func (w *World) MonsterIDs() []int {
	ids := make([]int, 0, len(w.monsters))
	for id := range w.monsters {
		ids = append(ids, id)
	}
	return ids
}

// RegisterRobot adds a robot to the registry. A no-op guard against
// overwriting is not needed: callers only register once, at creation.
func (w *World) RegisterRobot(id int, p Vec3) {
	w.robots[id] = p
}

// RegisterMonster adds a monster to the registry.
func (w *World) RegisterMonster(id int, p Vec3) {
	w.monsters[id] = p
}

// UnregisterRobot removes a robot from the registry. Absent ids are a
// silent no-op.
func (w *World) UnregisterRobot(id int) {
	delete(w.robots, id)
}

// UnregisterMonster removes a monster from the registry.
func (w *World) UnregisterMonster(id int) {
	delete(w.monsters, id)
}

// UpdateRobotPosition moves robot id to p. Absent ids are a silent no-op.
func (w *World) UpdateRobotPosition(id int, p Vec3) {
	if _, ok := w.robots[id]; !ok {
		return
	}
	w.robots[id] = p
}

// UpdateMonsterPosition moves monster id to p. Absent ids are a silent no-op.
func (w *World) UpdateMonsterPosition(id int, p Vec3) {
	if _, ok := w.monsters[id]; !ok {
		return
	}
	w.monsters[id] = p
}

// CreateEmpty marks p as Empty.
func (w *World) CreateEmpty(p Vec3) {
	if !w.InBounds(p) {
		return
	}
	w.cells[p.X][p.Y][p.Z] = Empty
}

// DestroyMonsterAt removes the monster registered at p (if any) and marks
// the cell Empty. Returns the destroyed monster's id, or (0, false) if no
// monster was present.
func (w *World) DestroyMonsterAt(p Vec3) (int, bool) {
	id, ok := w.MonsterAt(p)
	if !ok {
		return 0, false
	}
	w.UnregisterMonster(id)
	w.CreateEmpty(p)
	return id, true
}

// RandomInternalFreeCell draws a uniformly random Free cell among the
// strict-interior cells (1 <= x,y,z <= N-2), used for random agent
// placement that must never land on the always-Empty boundary shell. Only
// the cell state is checked: a cell already holding an agent can be drawn.
func (w *World) RandomInternalFreeCell() (Vec3, error) {
	var candidates []Vec3
	for x := 1; x < w.N-1; x++ {
		for y := 1; y < w.N-1; y++ {
			for z := 1; z < w.N-1; z++ {
				p := Vec3{x, y, z}
				if w.IsFree(p) {
					candidates = append(candidates, p)
				}
			}
		}
	}
	if len(candidates) == 0 {
		return Vec3{}, ErrNoFreeInteriorCell
	}
	return candidates[w.rng.Intn(len(candidates))], nil
}
