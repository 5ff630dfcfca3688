package player

import "github.com/HuXin0817/dab-engine/pkg/models/chess"

type Role int8

const (
	Computer Role = iota
	Human
)

func (r Role) String() string {
	switch r {
	case Computer:
		return "AI"
	case Human:
		return "Human"
	}
	return ""
}

// Agent is one side of a game. Score only ever grows.
type Agent struct {
	Role   Role
	Number chess.Player
	Name   string
	Score  int
	Lines  []chess.Edge
}

func NewComputer(number chess.Player) *Agent {
	return &Agent{
		Role:   Computer,
		Number: number,
		Name:   Computer.String(),
	}
}

func NewHuman(number chess.Player, name string) *Agent {
	if name == "" {
		name = Human.String()
	}
	return &Agent{
		Role:   Human,
		Number: number,
		Name:   name,
	}
}

// Credit raises the score to candidate unless it is already higher.
func (a *Agent) Credit(candidate int) {
	a.Score = max(a.Score, candidate)
}

func (a *Agent) Place(e chess.Edge) {
	a.Lines = append(a.Lines, e)
}
