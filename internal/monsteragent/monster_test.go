package monsteragent

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

// S4 - Monster gating: with p=0 a monster never acts, only ever waits, and
// never moves regardless of K.
func TestMonsterGatingNeverActsWhenProbabilityZero(t *testing.T) {
	rb := loadTestRules(t)
	w := world.New(7, 0.0, 0.0, rand.New(rand.NewSource(1)))
	m := New(1, world.Vec3{3, 3, 3}, w, rb, 3, 0.0, rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		rec := m.Step(i + 1)
		if rec.Accion != string(rules.MonsterWait) {
			t.Fatalf("step %d: expected wait, got %q", i+1, rec.Accion)
		}
	}
	if m.Position != (world.Vec3{3, 3, 3}) {
		t.Fatalf("expected position unchanged, got %v", m.Position)
	}
}

func TestMonsterWaitsDuringCooldown(t *testing.T) {
	rb := loadTestRules(t)
	w := world.New(7, 0.0, 0.0, rand.New(rand.NewSource(1)))
	m := New(1, world.Vec3{3, 3, 3}, w, rb, 5, 1.0, rand.New(rand.NewSource(1)))

	for i := 0; i < 4; i++ {
		rec := m.Step(i + 1)
		if rec.Accion != string(rules.MonsterWait) {
			t.Fatalf("step %d: expected wait during cooldown, got %q", i+1, rec.Accion)
		}
	}
}

func TestMonsterActsOnceEligibleWithCertainty(t *testing.T) {
	rb := loadTestRules(t)
	w := world.New(7, 0.0, 0.0, rand.New(rand.NewSource(1)))
	m := New(1, world.Vec3{3, 3, 3}, w, rb, 1, 1.0, rand.New(rand.NewSource(1)))

	rec := m.Step(1)
	if rec.Accion == string(rules.MonsterWait) {
		t.Fatalf("expected a move on the first eligible step, got wait")
	}
	if m.Position != (world.Vec3{3, 4, 3}) {
		t.Fatalf("expected to move Front (+y), got %v", m.Position)
	}
}

func TestDeadMonsterIsNoOp(t *testing.T) {
	rb := loadTestRules(t)
	w := world.New(7, 0.0, 0.0, rand.New(rand.NewSource(1)))
	m := New(1, world.Vec3{3, 3, 3}, w, rb, 1, 1.0, rand.New(rand.NewSource(1)))
	m.Alive = false

	rec := m.Step(1)
	if rec.Alive {
		t.Fatal("dead monster record should not report alive")
	}
	if m.Position != (world.Vec3{3, 3, 3}) {
		t.Fatal("dead monster should not move")
	}
}
