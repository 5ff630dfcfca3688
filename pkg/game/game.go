package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/HuXin0817/dab-engine/pkg/assess"
	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/message"
	"github.com/HuXin0817/dab-engine/pkg/models/message/moverecord"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
	"github.com/HuXin0817/dab-engine/pkg/models/ui"
	"github.com/HuXin0817/dab-engine/pkg/record"
	"github.com/zeromicro/go-zero/core/logx"
)

var ErrInvalidSides = errors.New("sides must be player 1 and player 2")

// Side is one player of a game. A computer side may leave Mover nil to
// take its moves from the game's engine.
type Side struct {
	Agent *player.Agent
	Mover player.Mover
}

type Result struct {
	GameUid      message.GameUid
	State        chess.State
	Steps        int
	Player1Score int
	Player2Score int
	Winner       string
}

type Game struct {
	uid      message.GameUid
	state    chess.State
	sides    [2]Side
	engine   *assess.Engine
	recorder record.Recorder
	board    *ui.Board
	out      io.Writer
}

func New(size chess.BoardSize, a, b Side, options ...Option) (*Game, error) {
	if a.Agent.Number == b.Agent.Number || !a.Agent.Number.Valid() || !b.Agent.Number.Valid() {
		return nil, ErrInvalidSides
	}

	g := &Game{
		uid:      message.NewGameUid(),
		state:    chess.NewState(size),
		engine:   assess.NewEngine(),
		recorder: record.Nop{},
		board:    ui.NewBoard(false),
		out:      io.Discard,
	}

	for _, side := range [...]Side{a, b} {
		g.sides[side.Agent.Number-1] = side
	}

	for _, option := range options {
		option(g)
	}

	for i := range g.sides {
		if g.sides[i].Mover == nil {
			g.sides[i].Mover = &engineMover{
				engine:   g.engine,
				self:     g.sides[i].Agent,
				opponent: g.sides[1-i].Agent,
			}
		}
	}

	return g, nil
}

func (g *Game) Uid() message.GameUid {
	return g.uid
}

func (g *Game) State() chess.State {
	return g.state
}

// Play runs the game to the end. Player 1 moves first and a side that closes
// a box moves again.
func (g *Game) Play(ctx context.Context) (Result, error) {
	p1, p2 := g.sides[0].Agent, g.sides[1].Agent
	g.recorder.GameStart(record.NewGameStart(g.uid, g.state.Size, p1.Name, p2.Name, g.engine.Depth()))

	g.printf("%s", g.board.Render(g.state))

	current, other := &g.sides[0], &g.sides[1]
	steps := 0
	for len(chess.LegalMoves(g.state)) > 0 {
		if err := ctx.Err(); err != nil {
			return g.result(steps), err
		}

		move, err := current.Mover.NextMove(g.state)
		if err != nil {
			return g.result(steps), fmt.Errorf("%v %s: %w", current.Agent.Number, current.Agent.Name, err)
		}
		g.printf("%s made a line at %v\n", current.Agent.Name, move)

		completions := g.apply(current.Agent, move)
		steps++

		logx.Infof("Step: %d, Turn %s, Edge: %s, Player1 Score: %d, Player2 Score: %d",
			steps, current.Agent.Number, move, p1.Score, p2.Score)
		g.recorder.Move(moverecord.MoveRecode{
			GameUid:      g.uid,
			StepCount:    steps,
			Player1Score: p1.Score,
			Player2Score: p2.Score,
			NowPlayer:    current.Agent.Number.String(),
			MoveEdge:     move.String(),
			Completions:  completions,
		})

		if completions > 0 {
			g.printf("-->A completion was made!\n")
		} else {
			current, other = other, current
			g.state = g.state.Pass()
		}

		g.printf("%s\n\n", g.board.Score(p1.Name, p1.Score, p2.Name, p2.Score))
		g.printf("%s", g.board.Render(g.state))
	}

	res := g.result(steps)
	g.recorder.GameEnd(moverecord.GameEndRecode{
		GameUid:      g.uid,
		Player1Score: res.Player1Score,
		Player2Score: res.Player2Score,
		Winner:       res.Winner,
		FinishedAt:   message.NewTimeStamp(time.Now()),
	})

	g.printf("\n\nFinal Scores:\n\n%s\n", g.board.Score(p1.Name, p1.Score, p2.Name, p2.Score))
	if res.Winner == "Draw" {
		g.printf("Draw!\n")
	} else {
		g.printf("%s Win!\n", res.Winner)
	}

	return res, nil
}

// apply draws move for acting. Acting gets its score before the move plus
// the boxes it closed, the other side keeps what it had.
func (g *Game) apply(acting *player.Agent, move chess.Edge) int {
	before := assess.Scores{}.Credit(acting.Role, acting.Score)
	t := assess.Apply(g.state, move, acting.Role, before, before)
	g.state = t.State

	acting.Score = t.Scores.Of(acting.Role)
	acting.Place(move)

	return t.Completions
}

func (g *Game) result(steps int) Result {
	p1, p2 := g.sides[0].Agent.Score, g.sides[1].Agent.Score
	return Result{
		GameUid:      g.uid,
		State:        g.state,
		Steps:        steps,
		Player1Score: p1,
		Player2Score: p2,
		Winner:       record.Winner(p1, p2),
	}
}

func (g *Game) printf(format string, a ...any) {
	fmt.Fprintf(g.out, format, a...)
}

type engineMover struct {
	engine   *assess.Engine
	self     *player.Agent
	opponent *player.Agent
}

func (m *engineMover) NextMove(s chess.State) (chess.Edge, error) {
	d := m.engine.ChooseMove(s, m.self, m.opponent)
	if !d.Found {
		return chess.Edge{}, player.ErrNoMoves
	}
	return d.Move, nil
}
