package assess

import (
	"math/rand"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
)

// BetterEdges narrows the legal moves to the ones a greedy player would
// consider: double completions, then single completions, then moves that
// leave no box with three sides drawn, then anything.
func BetterEdges(s chess.State) []chess.Edge {
	scoreCount := make(map[int][]chess.Edge)
	for _, e := range chess.LegalMoves(s) {
		score := chess.CompletionsFor(s, e)
		scoreCount[score] = append(scoreCount[score], e)
	}

	if len(scoreCount[2]) > 0 {
		return scoreCount[2]
	}

	if len(scoreCount[1]) > 0 {
		return scoreCount[1]
	}

	var safeEdges []chess.Edge
	for _, e := range scoreCount[0] {
		after := s.Append(e)
		safe := true
		for _, box := range e.NearBoxes(s.Size) {
			if after.EdgesCountInBox(box) == 3 {
				safe = false
				break
			}
		}
		if safe {
			safeEdges = append(safeEdges, e)
		}
	}

	if len(safeEdges) > 0 {
		return safeEdges
	}

	return scoreCount[0]
}

// Greedy plays a random move out of BetterEdges.
type Greedy struct {
	r *rand.Rand
}

func NewGreedy(seed int64) *Greedy {
	return &Greedy{r: rand.New(rand.NewSource(seed))}
}

func (g *Greedy) NextMove(s chess.State) (chess.Edge, error) {
	edges := BetterEdges(s)
	if len(edges) == 0 {
		return chess.Edge{}, player.ErrNoMoves
	}
	return edges[g.r.Intn(len(edges))], nil
}
