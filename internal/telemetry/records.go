// Package telemetry implements the per-agent operation log and the
// finalization summary: agents push append-only records during the run,
// and Finalize flushes per-agent CSV files plus a JSON summary.
package telemetry

// RobotRecord is one row of a robot's per-step operation log (R<id>.csv).
// One row is appended per Step call, including no-op/idle steps.
type RobotRecord struct {
	Step             int    `csv:"#"`
	Pos              string `csv:"Pos"`
	Orientation      string `csv:"Orientacion"`
	Energometro      int    `csv:"Energometro"`
	Lado1Top         int    `csv:"Lado1_Top"`
	Lado2Left        int    `csv:"Lado2_Left"`
	VacuoscopioFront int    `csv:"Vacuoscopio_Front"`
	Lado0Front       int    `csv:"Lado0_Front"`
	RoboscannerFront int    `csv:"Roboscanner_Front"`
	Lado3Right       int    `csv:"Lado3_Right"`
	Lado4Down        int    `csv:"Lado4_Down"`
	Regla            int    `csv:"Regla"`
	NuevaAccion      string `csv:"Nueva_Accion"`
	AccionMemoria    string `csv:"Accion_Memoria"`
	UsaMemoria       int    `csv:"Usa_Memoria?"`
	UsaRegla         int    `csv:"Usa_Regla?"`
}

// MonsterRecord is one row of a monster's per-step operation log (M<id>.csv).
type MonsterRecord struct {
	Step           int     `csv:"#"`
	Pos            string  `csv:"Pos"`
	Top            int     `csv:"Top"`
	Left           int     `csv:"Left"`
	Front          int     `csv:"Front"`
	Right          int     `csv:"Right"`
	Down           int     `csv:"Down"`
	Behind         int     `csv:"Behind"`
	NFree          int     `csv:"n_free"`
	P              float64 `csv:"p"`
	Regla          int     `csv:"Regla"`
	Accion         string  `csv:"Accion"`
	StepsRemaining int     `csv:"Steps_Remaining"`
	K              int     `csv:"K"`
	Alive          bool    `csv:"Alive"`
}
