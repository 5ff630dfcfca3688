package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/HuXin0817/dab-engine/pkg/game"
	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/model"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
	"github.com/HuXin0817/dab-engine/pkg/models/ui"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ServerConf    = flag.String("server", "http://127.0.0.1:8000", "dab-serve address")
	AI1Conf       = flag.String("AI1", "Off", "AI1")
	AI2Conf       = flag.String("AI2", "On", "AI2")
	BoardSizeConf = flag.Int("BoardSize", 3, "BoardSize")
	DepthConf     = flag.Int("Depth", 0, "search depth, 0 uses the server default")
	ColorConf     = flag.String("Color", "On", "Color")
	TimeoutConf   = flag.Duration("Timeout", time.Minute, "time allowed for one remote move")
)

func side(number chess.Player, ai model.Config) game.Side {
	if ai {
		return game.Side{Agent: player.NewComputer(number)}
	}
	return game.Side{
		Agent: player.NewHuman(number, ""),
		Mover: player.NewPrompt(os.Stdin, os.Stdout),
	}
}

func main() {
	flag.Parse()
	logx.DisableStat()

	p1 := side(chess.Player1, model.NewConfig(*AI1Conf))
	p2 := side(chess.Player2, model.NewConfig(*AI2Conf))
	if p1.Mover == nil {
		p1.Mover = NewRemote(*ServerConf, *DepthConf, *TimeoutConf, p1.Agent, p2.Agent)
	}
	if p2.Mover == nil {
		p2.Mover = NewRemote(*ServerConf, *DepthConf, *TimeoutConf, p2.Agent, p1.Agent)
	}

	g, err := game.New(chess.NewBoardSize(*BoardSizeConf, *BoardSizeConf), p1, p2,
		game.WithOutput(os.Stdout),
		game.WithBoard(ui.NewBoard(bool(model.NewConfig(*ColorConf)))),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(-1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := g.Play(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(-1)
	}
}
