package assess

import (
	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
)

// Scores is the pair of running totals the search threads by value.
type Scores struct {
	Computer int
	Human    int
}

func (s Scores) Of(r player.Role) int {
	if r == player.Computer {
		return s.Computer
	}
	return s.Human
}

// Credit sets r's score to candidate unless it already holds more.
func (s Scores) Credit(r player.Role, candidate int) Scores {
	if r == player.Computer {
		s.Computer = max(s.Computer, candidate)
	} else {
		s.Human = max(s.Human, candidate)
	}
	return s
}

func (s Scores) Differential() int {
	return s.Computer - s.Human
}

type Transition struct {
	State       chess.State
	Completions int
	Scores      Scores
}

// Apply draws move for the side to move in state. The acting role's score
// becomes max(before + completions, current).
func Apply(state chess.State, move chess.Edge, role player.Role, before, current Scores) Transition {
	completions := chess.CompletionsFor(state, move)
	return Transition{
		State:       state.Append(move),
		Completions: completions,
		Scores:      current.Credit(role, before.Of(role)+completions),
	}
}

// ApplyMove is Apply for a live agent: the agent's score is credited in
// place and the new state and completion count are returned.
func ApplyMove(state chess.State, move chess.Edge, acting *player.Agent, aiBefore, humanBefore int) (chess.State, int) {
	before := Scores{Computer: aiBefore, Human: humanBefore}
	current := before
	if acting.Role == player.Computer {
		current.Computer = acting.Score
	} else {
		current.Human = acting.Score
	}

	t := Apply(state, move, acting.Role, before, current)
	acting.Score = t.Scores.Of(acting.Role)
	return t.State, t.Completions
}
