package assess

import (
	"math"
	"time"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/message"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	DefaultDepth = 4
	INF          = math.MaxInt32
)

// Decision is the result of a search. Found is false when the board is full
// and there is nothing to play.
type Decision struct {
	Move  chess.Edge
	Value int
	Found bool
}

// Engine runs a depth-limited minimax search with alpha-beta pruning for
// the computer side. It keeps no state between calls and is safe for
// concurrent use.
type Engine struct {
	depth    int
	cache    Cache
	progress func(done, total int)
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{depth: DefaultDepth}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Depth() int {
	return e.depth
}

// ChooseMove picks the computer's move in state. The agents are read for
// their current scores only and are never modified.
func (e *Engine) ChooseMove(state chess.State, computer, opponent *player.Agent) Decision {
	scores := Scores{Computer: computer.Score, Human: opponent.Score}
	if e.cache == nil {
		return e.search(state, scores)
	}

	key := message.NewDecisionKey(state, e.depth, scores.Computer, scores.Human)
	return e.cache.Take(key.String(), func() Decision {
		return e.search(state, scores)
	})
}

// ChooseMove searches with a one-off engine of the given depth.
func ChooseMove(state chess.State, computer, opponent *player.Agent, depth int) Decision {
	return NewEngine(WithDepth(depth)).ChooseMove(state, computer, opponent)
}

func (e *Engine) search(state chess.State, scores Scores) Decision {
	start := time.Now()
	s := &searcher{depth: e.depth, progress: e.progress}
	move, value, found := s.minimax(state, e.depth, scores, scores, true, -INF, INF)

	logx.WithDuration(time.Since(start)).Infow("search finished",
		logx.Field("board", state.Size.String()),
		logx.Field("depth", e.depth),
		logx.Field("move", move.String()),
		logx.Field("found", found),
		logx.Field("value", value),
		logx.Field("nodes", s.nodes),
	)

	return Decision{Move: move, Value: value, Found: found}
}

type searcher struct {
	depth    int
	nodes    int
	progress func(done, total int)
}

// continues reports whether the next layer maximizes: a side that closes a
// box moves again, otherwise the turn passes.
func continues(acting player.Role, completions int) bool {
	return (acting == player.Computer) == (completions > 0)
}

// minimax credits every capture against base, the scores at the root of the
// search, so a chain of captures on one path never adds up past a single move.
func (s *searcher) minimax(state chess.State, depth int, base, scores Scores, maximize bool, alpha, beta int) (move chess.Edge, value int, found bool) {
	s.nodes++

	moves := chess.LegalMoves(state)
	if len(moves) == 0 || depth <= 0 {
		return chess.Edge{}, scores.Differential(), false
	}

	role, value := player.Human, INF
	if maximize {
		role, value = player.Computer, -INF
	}
	move = moves[0]

	for i, m := range moves {
		t := Apply(state, m, role, base, scores)
		_, eval, _ := s.minimax(t.State, depth-1, base, t.Scores, continues(role, t.Completions), alpha, beta)

		if maximize {
			if eval > value {
				value, move = eval, m
			}
			alpha = max(alpha, value)
		} else {
			if eval < value {
				value, move = eval, m
			}
			beta = min(beta, value)
		}

		if depth == s.depth && s.progress != nil {
			s.progress(i+1, len(moves))
		}

		if alpha > beta {
			break
		}
	}

	// Sooner outcomes weigh more than the same outcome further down the tree.
	if maximize {
		return move, value + depth, true
	}
	return move, value - depth, true
}
