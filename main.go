package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/HuXin0817/dab-engine/pkg/assess"
	"github.com/HuXin0817/dab-engine/pkg/cache"
	"github.com/HuXin0817/dab-engine/pkg/game"
	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/file"
	"github.com/HuXin0817/dab-engine/pkg/models/model"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
	"github.com/HuXin0817/dab-engine/pkg/models/ui"
	"github.com/HuXin0817/dab-engine/pkg/pprof"
	"github.com/HuXin0817/dab-engine/pkg/record"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	if err := run(os.Args[0], os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
		}
		os.Exit(-1)
	}
}

func run(name string, arguments []string, in io.Reader, out io.Writer) error {
	c, args, err := loadConfig(name, arguments)
	if err != nil {
		return err
	}

	logx.MustSetup(c.Log)
	logx.DisableStat()

	if args.Pprof != "" {
		addr, err := pprof.Start(args.Pprof)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "pprof listening on %s\n", addr)
	}

	options := []assess.Option{assess.WithDepth(c.Depth)}
	decisions, err := cache.New(c.Cache)
	if err != nil {
		return err
	}
	if decisions != nil {
		options = append(options, assess.WithCache(decisions))
	}
	if args.Bar {
		options = append(options, assess.WithProgress(model.NewSearchProgress("AI thinking", out).Report))
	}

	recorder := record.New(c.Mongo)
	defer func() {
		if err := recorder.Close(); err != nil {
			logx.Error(err)
		}
	}()

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	humanNumber := args.HumanNumber
	human := game.Side{Agent: player.NewHuman(humanNumber, "")}
	switch c.Opponent {
	case "random":
		human.Agent.Name = "Random"
		human.Mover = player.NewRandom(seed)
	case "greedy":
		human.Agent.Name = "Greedy"
		human.Mover = assess.NewGreedy(seed)
	default:
		human.Mover = player.NewPrompt(in, out)
	}
	computer := game.Side{Agent: player.NewComputer(humanNumber.Other())}

	size := chess.NewBoardSize(args.BoardSize, args.BoardSize)
	g, err := game.New(size, human, computer,
		game.WithOutput(out),
		game.WithEngine(assess.NewEngine(options...)),
		game.WithRecorder(recorder),
		game.WithBoard(ui.NewBoard(bool(args.Colors))),
	)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Game Created...")
	fmt.Fprintf(out, "Board Size: %d\n", args.BoardSize)
	fmt.Fprintf(out, "P_NUM: %d\n", humanNumber)
	fmt.Fprintf(out, "AI_NUM: %d\n", humanNumber.Other())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := g.Play(ctx)
	if args.Save != "" {
		if saveErr := file.Save(args.Save, res.State); saveErr != nil {
			logx.Errorf("save %s: %v", args.Save, saveErr)
		}
	}

	return err
}
