package assess

import (
	"testing"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateOf(t *testing.T, w, h int, edges ...chess.Edge) chess.State {
	t.Helper()
	s := chess.NewState(chess.NewBoardSize(w, h))
	for _, e := range edges {
		var err error
		s, err = s.Place(chess.Player1, e)
		require.NoError(t, err)
	}
	return s
}

func agents(computerScore, humanScore int) (*player.Agent, *player.Agent) {
	computer := player.NewComputer(chess.Player2)
	computer.Score = computerScore
	human := player.NewHuman(chess.Player1, "")
	human.Score = humanScore
	return computer, human
}

func TestApplyMaxRule(t *testing.T) {
	s := stateOf(t, 1, 1, chess.NewEdge(0, 1), chess.NewEdge(1, 0), chess.NewEdge(1, 2))

	tr := Apply(s, chess.NewEdge(2, 1), player.Computer, Scores{Computer: 2, Human: 1}, Scores{Computer: 2, Human: 1})
	assert.Equal(t, 1, tr.Completions)
	assert.Equal(t, Scores{Computer: 3, Human: 1}, tr.Scores)
	assert.True(t, tr.State.Full())
	assert.Equal(t, 3, s.Len())

	tr = Apply(s, chess.NewEdge(2, 1), player.Human, Scores{Computer: 2, Human: 1}, Scores{Computer: 2, Human: 5})
	assert.Equal(t, Scores{Computer: 2, Human: 5}, tr.Scores)
}

func TestApplyMove(t *testing.T) {
	s := stateOf(t, 2, 1,
		chess.NewEdge(1, 0), chess.NewEdge(1, 2), chess.NewEdge(0, 1),
		chess.NewEdge(3, 0), chess.NewEdge(3, 2), chess.NewEdge(4, 1),
	)

	computer, _ := agents(2, 0)
	next, completions := ApplyMove(s, chess.NewEdge(2, 1), computer, 2, 0)
	assert.Equal(t, 2, completions)
	assert.Equal(t, 4, computer.Score)
	assert.True(t, next.Full())

	_, human := agents(0, 5)
	_, completions = ApplyMove(s, chess.NewEdge(2, 1), human, 0, 1)
	assert.Equal(t, 2, completions)
	assert.Equal(t, 5, human.Score)
}

func TestChooseMoveEmptyUnitBoard(t *testing.T) {
	computer, human := agents(0, 0)
	d := ChooseMove(stateOf(t, 1, 1), computer, human, DefaultDepth)

	assert.True(t, d.Found)
	assert.Equal(t, chess.NewEdge(0, 1), d.Move)
	assert.Equal(t, 1, d.Value)
}

func TestChooseMoveBaselineScoresShiftValue(t *testing.T) {
	computer, human := agents(2, 3)
	d := ChooseMove(stateOf(t, 1, 1), computer, human, DefaultDepth)
	assert.Equal(t, chess.NewEdge(0, 1), d.Move)
	assert.Equal(t, 0, d.Value)
}

func TestChooseMoveTerminal(t *testing.T) {
	s := stateOf(t, 1, 1, chess.Edges(chess.NewBoardSize(1, 1))...)
	computer, human := agents(1, 0)

	d := ChooseMove(s, computer, human, DefaultDepth)
	assert.False(t, d.Found)
	assert.Equal(t, chess.Edge{}, d.Move)
	assert.Equal(t, 1, d.Value)
}

func TestChooseMoveForcedCapture(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		drawn []chess.Edge
		depth int
		move  chess.Edge
		value int
	}{
		{
			name: "last edge depth 4",
			w:    1, h: 1,
			drawn: []chess.Edge{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}},
			depth: 4,
			move:  chess.NewEdge(2, 1),
			value: 5,
		},
		{
			name: "last edge depth 1",
			w:    1, h: 1,
			drawn: []chess.Edge{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}},
			depth: 1,
			move:  chess.NewEdge(2, 1),
			value: 2,
		},
		{
			name: "open box on 2x1",
			w:    2, h: 1,
			drawn: []chess.Edge{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}},
			depth: 2,
			move:  chess.NewEdge(2, 1),
			value: 4,
		},
		{
			name: "open corner on 3x3",
			w:    3, h: 3,
			drawn: []chess.Edge{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 5, Y: 4}, {X: 6, Y: 5}, {X: 5, Y: 6}},
			depth: 2,
			move:  chess.NewEdge(1, 2),
			value: 4,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			computer, human := agents(0, 0)
			d := ChooseMove(stateOf(t, test.w, test.h, test.drawn...), computer, human, test.depth)
			assert.True(t, d.Found)
			assert.Equal(t, test.move, d.Move)
			assert.Equal(t, test.value, d.Value)
		})
	}
}

func TestChainCreditsFromRootScores(t *testing.T) {
	// (2, 1) closes the left box and leaves (4, 1) closing the right one.
	s := stateOf(t, 2, 1,
		chess.NewEdge(0, 1), chess.NewEdge(1, 0), chess.NewEdge(1, 2),
		chess.NewEdge(3, 0), chess.NewEdge(3, 2),
	)

	tests := []struct {
		name            string
		computer, human int
		depth           int
		value           int
	}{
		{name: "one ply", depth: 1, value: 2},
		{name: "whole chain", depth: 2, value: 4},
		{name: "past the end", depth: 3, value: 6},
		{name: "default depth", depth: DefaultDepth, value: 8},
		{name: "carried scores", computer: 1, human: 2, depth: 2, value: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			computer, human := agents(test.computer, test.human)
			d := ChooseMove(s, computer, human, test.depth)
			assert.True(t, d.Found)
			assert.Equal(t, chess.NewEdge(2, 1), d.Move)
			assert.Equal(t, test.value, d.Value)
		})
	}
}

func TestSearchKeepsRootBaseline(t *testing.T) {
	s := stateOf(t, 2, 1,
		chess.NewEdge(0, 1), chess.NewEdge(1, 0), chess.NewEdge(1, 2),
		chess.NewEdge(3, 0), chess.NewEdge(3, 2), chess.NewEdge(2, 1),
	)
	root := Scores{Computer: 1}
	sr := &searcher{depth: 1}

	_, value, found := sr.minimax(s, 1, Scores{}, root, true, -INF, INF)
	assert.True(t, found)
	assert.Equal(t, 2, value)

	_, value, _ = sr.minimax(s, 1, root, root, true, -INF, INF)
	assert.Equal(t, 3, value)
}

func TestChooseMoveDeterministic(t *testing.T) {
	s := stateOf(t, 3, 3, chess.NewEdge(1, 0), chess.NewEdge(0, 1), chess.NewEdge(2, 1))
	computer, human := agents(0, 0)

	first := ChooseMove(s, computer, human, 3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, ChooseMove(s, computer, human, 3))
	}
}

func TestChooseMoveLeavesAgentsUntouched(t *testing.T) {
	s := stateOf(t, 2, 2, chess.NewEdge(1, 0), chess.NewEdge(0, 1), chess.NewEdge(2, 1))
	computer, human := agents(1, 2)
	computer.Lines = []chess.Edge{{X: 1, Y: 0}}

	ChooseMove(s, computer, human, 4)
	assert.Equal(t, 1, computer.Score)
	assert.Equal(t, 2, human.Score)
	assert.Equal(t, []chess.Edge{{X: 1, Y: 0}}, computer.Lines)
	assert.Equal(t, 3, s.Len())
}

func TestDepthBonus(t *testing.T) {
	s := stateOf(t, 2, 1, chess.NewEdge(1, 0), chess.NewEdge(0, 1), chess.NewEdge(1, 2), chess.NewEdge(3, 0))
	computer, human := agents(0, 0)

	var values []int
	for depth := 1; depth <= 5; depth++ {
		d := ChooseMove(s, computer, human, depth)
		assert.Equal(t, chess.NewEdge(2, 1), d.Move, "depth %d", depth)
		values = append(values, d.Value)
	}
	assert.Equal(t, []int{2, 4, 4, 5, 6}, values)
}

func TestEngineOptions(t *testing.T) {
	assert.Equal(t, DefaultDepth, NewEngine().Depth())
	assert.Equal(t, DefaultDepth, NewEngine(WithDepth(0)).Depth())
	assert.Equal(t, DefaultDepth, NewEngine(WithDepth(-3)).Depth())
	assert.Equal(t, 6, NewEngine(WithDepth(6)).Depth())
}

func TestEngineProgress(t *testing.T) {
	var reports [][2]int
	e := NewEngine(WithProgress(func(done, total int) {
		reports = append(reports, [2]int{done, total})
	}))

	computer, human := agents(0, 0)
	e.ChooseMove(stateOf(t, 1, 1), computer, human)
	assert.Equal(t, [][2]int{{1, 4}, {2, 4}, {3, 4}, {4, 4}}, reports)
}

type mapCache struct {
	decisions map[string]Decision
	misses    int
}

func (m *mapCache) Take(key string, search func() Decision) Decision {
	if d, ok := m.decisions[key]; ok {
		return d
	}
	m.misses++
	d := search()
	m.decisions[key] = d
	return d
}

func TestEngineCache(t *testing.T) {
	c := &mapCache{decisions: make(map[string]Decision)}
	cached := NewEngine(WithDepth(3), WithCache(c))
	plain := NewEngine(WithDepth(3))

	s := stateOf(t, 2, 2, chess.NewEdge(1, 0), chess.NewEdge(0, 1), chess.NewEdge(2, 1))
	computer, human := agents(0, 0)

	want := plain.ChooseMove(s, computer, human)
	assert.Equal(t, want, cached.ChooseMove(s, computer, human))
	assert.Equal(t, want, cached.ChooseMove(s, computer, human))
	assert.Equal(t, 1, c.misses)

	computer.Score = 1
	cached.ChooseMove(s, computer, human)
	assert.Equal(t, 2, c.misses)
}
