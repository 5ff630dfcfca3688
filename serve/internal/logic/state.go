package logic

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/serve/types"
)

var (
	ErrBoardSizeOutOfRange = errors.New("board size out of range")
	ErrDepthOutOfRange     = errors.New("depth out of range")
	ErrInvalidComputer     = errors.New("computer must be player 1 or 2")
)

// buildState turns a request into a State, rejecting anything the engine
// must never see.
func buildState(in types.StateRequest, maxBoardSize int) (chess.State, error) {
	if in.Width < 1 || in.Height < 1 || in.Width > maxBoardSize || in.Height > maxBoardSize {
		return chess.State{}, fmt.Errorf("%w: %dx%d, at most %d", ErrBoardSizeOutOfRange, in.Width, in.Height, maxBoardSize)
	}

	s := chess.NewState(chess.NewBoardSize(in.Width, in.Height))
	for i, edges := range [...][][2]int{in.P1, in.P2} {
		p := chess.Player(i + 1)
		for _, e := range edges {
			var err error
			if s, err = s.Place(p, chess.NewEdge(e[0], e[1])); err != nil {
				return chess.State{}, fmt.Errorf("%v: %w", p, err)
			}
		}
	}

	if len(in.P1) != len(in.P2) {
		s.ToMove = chess.Player2
	}

	return s, nil
}
