package adjacency

// SlotOf returns the edge slot (0, 1, or 2) of r whose canonical edge
// equals CanonicalEdge(a, b), and true if such a slot exists. Every
// Record has exactly one slot per distinct edge, so this lookup is
// unambiguous (ignoring the degenerate case, which Build already
// rejects).
func (r *Record) SlotOf(a, b uint16) (int, bool) {
	want := CanonicalEdge(a, b)
	for slot, e := range r.Edges {
		if e == want {
			return slot, true
		}
	}
	return 0, false
}

// OppositeVertex returns the vertex of r not on the edge {a, b} — the
// unique element of r.Vertices \ {a, b}. The second return value is
// false if {a, b} is not an edge of r.
func (r *Record) OppositeVertex(a, b uint16) (uint16, bool) {
	var seenA, seenB bool
	var rest uint16
	restSeen := false
	for _, v := range r.Vertices {
		switch {
		case v == a && !seenA:
			seenA = true
		case v == b && !seenB:
			seenB = true
		default:
			rest = v
			restSeen = true
		}
	}
	if seenA && seenB && restSeen {
		return rest, true
	}
	return 0, false
}
