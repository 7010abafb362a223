package rules

import "strings"

const (
	monsterMoveToPrefix     = "Mover hacia"
	monsterMoveRandomPrefix = "Mover aleatorio entre"
)

// ParseMonsterAction decodes the short natural-language action surface used
// by monster_rules.csv: "wait", "Mover hacia [Dir]", or
// "Mover aleatorio entre [Dir1, Dir2, ...]". ok is false for anything else,
// so the caller can log and fall back to wait.
func ParseMonsterAction(raw string) (MonsterAction, bool) {
	trimmed := strings.TrimSpace(raw)

	if strings.EqualFold(trimmed, "wait") {
		return MonsterAction{Kind: MonsterWait}, true
	}

	if dirs, ok := extractBracketed(trimmed, monsterMoveRandomPrefix); ok {
		if len(dirs) == 0 {
			return MonsterAction{}, false
		}
		return MonsterAction{Kind: MonsterMoveRandomAmong, Directions: dirs}, true
	}

	if dirs, ok := extractBracketed(trimmed, monsterMoveToPrefix); ok {
		if len(dirs) != 1 {
			return MonsterAction{}, false
		}
		return MonsterAction{Kind: MonsterMoveTo, Directions: dirs}, true
	}

	return MonsterAction{}, false
}

// extractBracketed matches "<prefix> [a, b, c]" and returns the trimmed,
// comma-separated tokens inside the brackets.
func extractBracketed(s, prefix string) ([]string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return nil, false
	}
	rest := strings.TrimSpace(s[len(prefix):])
	start := strings.Index(rest, "[")
	end := strings.Index(rest, "]")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}
	inner := rest[start+1 : end]
	if strings.TrimSpace(inner) == "" {
		return nil, false
	}
	parts := strings.Split(inner, ",")
	dirs := make([]string, 0, len(parts))
	for _, p := range parts {
		dirs = append(dirs, strings.TrimSpace(p))
	}
	return dirs, true
}
