package chess

// LegalMoves lists the edges nobody has drawn yet, in the order of Edges.
func LegalMoves(s State) (moves []Edge) {
	allEdges := Edges(s.Size)
	moves = make([]Edge, 0, len(allEdges)-s.Len())
	for _, e := range allEdges {
		if !s.Contains(e) {
			moves = append(moves, e)
		}
	}
	return
}

// CompletionsFor counts the boxes that drawing move would close. The move
// itself is not drawn.
func CompletionsFor(s State, move Edge) (completions int) {
	x, y := move.X, move.Y

	if x%2 == 1 {
		if s.Contains(NewEdge(x-1, y-1)) && s.Contains(NewEdge(x+1, y-1)) && s.Contains(NewEdge(x, y-2)) {
			completions++
		}
		if s.Contains(NewEdge(x-1, y+1)) && s.Contains(NewEdge(x+1, y+1)) && s.Contains(NewEdge(x, y+2)) {
			completions++
		}
		return
	}

	if s.Contains(NewEdge(x+1, y-1)) && s.Contains(NewEdge(x+1, y+1)) && s.Contains(NewEdge(x+2, y)) {
		completions++
	}
	if s.Contains(NewEdge(x-1, y-1)) && s.Contains(NewEdge(x-1, y+1)) && s.Contains(NewEdge(x-2, y)) {
		completions++
	}
	return
}

// ObtainsBoxes returns the boxes that drawing e would close.
func ObtainsBoxes(s State, e Edge) (obtainsBoxes []Box) {
	if s.Contains(e) {
		return
	}

	for _, box := range e.NearBoxes(s.Size) {
		if s.EdgesCountInBox(box) == 3 {
			obtainsBoxes = append(obtainsBoxes, box)
		}
	}
	return
}
