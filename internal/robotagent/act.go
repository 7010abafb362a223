package robotagent

import "monsterhunt/internal/rules"

// act executes action and returns the concrete action actually applied.
// For move_random this is the move that was actually taken, which is what
// gets stored in memory and logged, not the original random payload.
func (r *Robot) act(action rules.RobotAction) rules.RobotAction {
	switch action.Kind {
	case rules.ActionDestroy:
		r.destroy()
		return action

	case rules.ActionMemory:
		r.stepBack()
		return action

	case rules.ActionIdle:
		return action

	case rules.ActionMove, rules.ActionRotate:
		if len(action.Directions) == 0 {
			return action
		}
		r.applyDirection(action.Directions[0])
		return action

	case rules.ActionMoveRandom:
		dir := r.pickEffectiveDirection(action.Directions)
		r.applyDirection(dir)
		return rules.RobotAction{Kind: rules.ActionMove, Directions: []string{dir}}

	default:
		return action
	}
}

func (r *Robot) destroy() {
	if _, ok := r.World.DestroyMonsterAt(r.Position); ok {
		r.MonstersDestroyed++
		r.Alive = false
		r.World.UnregisterRobot(r.ID)
	}
}

func (r *Robot) stepBack() {
	if !r.hasPrevious {
		return
	}
	r.Position = r.PreviousPosition
	r.World.UpdateRobotPosition(r.ID, r.Position)
}

// applyDirection executes a single direction token: a rotation updates
// orientation in place, the translation token z+90 attempts to move
// forward and sets vacuscope_memory on failure.
func (r *Robot) applyDirection(dir string) {
	if isRotationToken(dir) {
		r.Orientation = applyRotation(r.Orientation, dir)
		return
	}
	if dir != "z+90" {
		return
	}

	target := r.Position.Add(r.Orientation)
	if !r.World.IsFree(target) {
		r.vacuscopeMemory = -1
		return
	}
	if _, ok := r.World.RobotAt(target, r.ID); ok {
		r.vacuscopeMemory = -1
		return
	}

	r.PreviousPosition = r.Position
	r.hasPrevious = true
	r.Position = target
	r.World.UpdateRobotPosition(r.ID, r.Position)
}

// pickEffectiveDirection filters out rotation tokens that would leave the
// current orientation unchanged, then chooses uniformly among the rest,
// falling back to the first listed direction if none remain effective.
func (r *Robot) pickEffectiveDirection(dirs []string) string {
	if len(dirs) == 0 {
		return "z+90"
	}

	effective := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if d == "z+90" {
			effective = append(effective, d)
			continue
		}
		if isRotationToken(d) && applyRotation(r.Orientation, d) != r.Orientation {
			effective = append(effective, d)
		}
	}
	if len(effective) == 0 {
		return dirs[0]
	}
	return effective[r.rng.Intn(len(effective))]
}
