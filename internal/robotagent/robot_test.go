package robotagent

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"monsterhunt/internal/rules"
	"monsterhunt/internal/world"
)

func loadTestRules(t *testing.T) *rules.RuleBook {
	t.Helper()
	dir := t.TempDir()

	robotCSV := `Energometro,Lado1_Top,Lado2_Left,Vacuoscopio_Front,Lado0_Front,Roboscanner_Front,Lado3_Right,Lado4_Down,Regla,Accion
1,0,0,0,0,0,0,0,1,"{""tipo"": ""destroy""}"
0,0,0,-1,0,0,0,0,2,"{""tipo"": ""move"", ""directions"": [""y+90""]}"
0,0,0,0,0,0,0,0,3,"{""tipo"": ""move"", ""directions"": [""z+90""]}"
`
	monsterCSV := `Top,Left,Front,Right,Down,Behind,Regla,Accion
0,0,0,0,0,0,1,"Mover hacia [Front]"
`
	robotPath := filepath.Join(dir, "robot_rules.csv")
	monsterPath := filepath.Join(dir, "monster_rules.csv")
	if err := os.WriteFile(robotPath, []byte(robotCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(monsterPath, []byte(monsterCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	rb, err := rules.Load(robotPath, monsterPath)
	if err != nil {
		t.Fatalf("loading rules: %v", err)
	}
	return rb
}

// S1 - Boundary bounce: a robot repeatedly moving forward stops just short
// of the boundary and records the block in vacuscope_memory. Uses a side-6
// lattice (boundary at coordinates 0 and 5) so two forward steps from z=2
// land on free interior cells before the third hits the empty shell.
func TestBoundaryBounce(t *testing.T) {
	rb := loadTestRules(t)
	w := world.New(6, 0.0, 0.0, rand.New(rand.NewSource(1)))
	r := New(1, world.Vec3{2, 2, 2}, w, rb, 10, rand.New(rand.NewSource(1)))

	r.Step(1)
	if r.Position != (world.Vec3{2, 2, 3}) {
		t.Fatalf("step 1: expected (2,2,3), got %v", r.Position)
	}
	r.Step(2)
	if r.Position != (world.Vec3{2, 2, 4}) {
		t.Fatalf("step 2: expected (2,2,4), got %v", r.Position)
	}
	rec3 := r.Step(3)
	if r.Position != (world.Vec3{2, 2, 4}) {
		t.Fatalf("step 3: expected to stay at (2,2,4), got %v", r.Position)
	}
	if rec3.VacuoscopioFront != 0 {
		t.Fatalf("step 3 perception should have read the pre-block value 0, got %d", rec3.VacuoscopioFront)
	}

	rec4 := r.Step(4)
	if rec4.VacuoscopioFront != -1 {
		t.Fatalf("step 4 perception should read the block as -1, got %d", rec4.VacuoscopioFront)
	}
}

// S2 - Mutual sacrifice: a robot sharing a cell with a monster destroys it
// and dies itself.
func TestMutualSacrifice(t *testing.T) {
	rb := loadTestRules(t)
	w := world.New(5, 0.0, 0.0, rand.New(rand.NewSource(1)))
	w.RegisterMonster(99, world.Vec3{2, 2, 2})
	r := New(1, world.Vec3{2, 2, 2}, w, rb, 10, rand.New(rand.NewSource(1)))

	r.Step(1)

	if r.Alive {
		t.Fatal("robot should be dead after mutual sacrifice")
	}
	if r.MonstersDestroyed != 1 {
		t.Fatalf("expected monsters_destroyed=1, got %d", r.MonstersDestroyed)
	}
	if !w.IsEmpty(world.Vec3{2, 2, 2}) {
		t.Fatal("victim cell should be empty")
	}
	if _, ok := w.MonsterAt(world.Vec3{2, 2, 2}); ok {
		t.Fatal("monster should be gone")
	}
}

// S5 - Memory replay: a stored (perception, action) pair is replayed
// verbatim when the same perception recurs without a -1 override.
func TestMemoryReplay(t *testing.T) {
	rb := loadTestRules(t)
	w := world.New(7, 0.0, 0.0, rand.New(rand.NewSource(1)))
	r := New(1, world.Vec3{3, 3, 3}, w, rb, 10, rand.New(rand.NewSource(1)))

	first := r.Step(1)
	if first.UsaRegla != 1 {
		t.Fatalf("first encounter should be rule-sourced, got record %+v", first)
	}

	// Replace the robot's position so the identical empty-perception
	// vector recurs without actually having hit the boundary.
	r.Position = world.Vec3{3, 3, 3}
	r.World.UpdateRobotPosition(r.ID, r.Position)

	second := r.Step(2)
	if second.UsaMemoria != 1 {
		t.Fatalf("recurring perception should be memory-sourced, got record %+v", second)
	}
	if second.Regla != 0 {
		t.Fatalf("memory-sourced record should report Regla=0, got %d", second.Regla)
	}
}

// S6 - Empty-override: even with a matching memory entry, a perception
// carrying Vacuoscopio_Front=-1 must be resolved via the rule book.
func TestEmptyOverrideBypassesMemory(t *testing.T) {
	rb := loadTestRules(t)
	w := world.New(5, 0.0, 0.0, rand.New(rand.NewSource(1)))
	r := New(1, world.Vec3{2, 2, 2}, w, rb, 10, rand.New(rand.NewSource(1)))

	seeded := rules.RobotPerception{VacuoscopioFront: -1}
	r.memory = append(r.memory, experience{
		perception: seeded,
		action:     rules.RobotAction{Kind: rules.ActionMove, Directions: []string{"z+90"}},
	})

	r.vacuscopeMemory = -1
	rec := r.Step(1)
	if rec.UsaRegla != 1 || rec.UsaMemoria != 0 {
		t.Fatalf("expected rule-sourced action despite memory hit, got %+v", rec)
	}
}

func TestMemoryFIFOEviction(t *testing.T) {
	rb := loadTestRules(t)
	w := world.New(9, 0.0, 0.0, rand.New(rand.NewSource(1)))
	r := New(1, world.Vec3{4, 4, 4}, w, rb, 2, rand.New(rand.NewSource(1)))

	for i := 0; i < 5; i++ {
		r.Step(i + 1)
	}
	if len(r.memory) > 2 {
		t.Fatalf("expected memory capped at 2, got %d", len(r.memory))
	}
}
