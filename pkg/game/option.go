package game

import (
	"io"

	"github.com/HuXin0817/dab-engine/pkg/assess"
	"github.com/HuXin0817/dab-engine/pkg/models/ui"
	"github.com/HuXin0817/dab-engine/pkg/record"
)

type Option func(*Game)

func WithOutput(w io.Writer) Option {
	return func(g *Game) {
		g.out = w
	}
}

func WithEngine(e *assess.Engine) Option {
	return func(g *Game) {
		g.engine = e
	}
}

func WithRecorder(r record.Recorder) Option {
	return func(g *Game) {
		g.recorder = r
	}
}

func WithBoard(b *ui.Board) Option {
	return func(g *Game) {
		g.board = b
	}
}
