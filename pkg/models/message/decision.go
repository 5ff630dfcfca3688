package message

import (
	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// DecisionKey names a root search: the drawn edges, how deep the search
// went and the scores it started from.
type DecisionKey struct {
	Board         string
	Depth         int
	ComputerScore int
	HumanScore    int
}

func NewDecisionKey(s chess.State, depth, computerScore, humanScore int) DecisionKey {
	return DecisionKey{
		Board:         s.Fingerprint(),
		Depth:         depth,
		ComputerScore: computerScore,
		HumanScore:    humanScore,
	}
}

func (d DecisionKey) String() string {
	str, _ := sonic.MarshalString(d)
	return str
}

type DecisionValue struct {
	Edge  chess.Edge
	Value int
	Found bool
}

func NewDecisionValue(s string) (newDecisionValue DecisionValue, err error) {
	err = sonic.UnmarshalString(s, &newDecisionValue)
	return
}

func (d DecisionValue) String() string {
	str, _ := sonic.MarshalString(d)
	return str
}
