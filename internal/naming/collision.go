package naming

// Move is one planned rename between base names in the same folder.
type Move struct {
	From string
	To   string
}

// Collision is a planned move whose target is occupied at the moment the
// move runs, so the rename would replace whatever is there.
type Collision struct {
	Move
	// Pending is true when the occupant is itself a source that has not been
	// moved yet, i.e. its content is lost before it gets renamed.
	Pending bool
}

// FindCollisions replays moves in order against the entries currently in the
// folder and returns every move that would land on an occupied name. A move
// onto its own name is a no-op and never collides.
//
// Only detection: the renamer itself overwrites, this exists so diagnostics
// can warn before a run.
func FindCollisions(entries []string, moves []Move) []Collision {
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e] = true
	}
	pending := make(map[string]int, len(moves)) // source name → moves not yet replayed
	for _, m := range moves {
		pending[m.From]++
	}

	var out []Collision
	for _, m := range moves {
		pending[m.From]--
		if m.From == m.To {
			continue
		}
		if present[m.To] {
			out = append(out, Collision{Move: m, Pending: pending[m.To] > 0})
		}
		delete(present, m.From)
		present[m.To] = true
	}
	return out
}
