package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/HuXin0817/dab-engine/pkg/assess"
	"github.com/HuXin0817/dab-engine/pkg/cache"
	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/file"
	"github.com/HuXin0817/dab-engine/pkg/models/model"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
	"github.com/HuXin0817/dab-engine/pkg/models/ui"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

type Config struct {
	Log   logx.LogConf
	Depth int `json:",default=4,range=[1:8]"`
	Cache cache.Conf
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(-1)
	}
}

func run(arguments []string, out io.Writer) error {
	set := flag.NewFlagSet("engine", flag.ContinueOnError)
	configFile := set.String("f", "", "the config file")
	aiNumber := set.Int("ai", 2, "the player number the AI plays as")
	depth := set.Int("depth", 0, "search depth, overrides the config file")
	aiScore := set.Int("ai-score", 0, "boxes the AI already holds")
	humanScore := set.Int("human-score", 0, "boxes the opponent already holds")
	colors := set.String("color", "On", "colour the board")
	if err := set.Parse(arguments); err != nil {
		return err
	}

	if set.NArg() != 1 {
		return fmt.Errorf("usage: engine [flags] <state file>")
	}
	if *aiNumber != 1 && *aiNumber != 2 {
		return fmt.Errorf("ai player number must be either 1 or 2")
	}

	var c Config
	if *configFile != "" {
		if err := conf.Load(*configFile, &c, conf.UseEnv()); err != nil {
			return err
		}
	} else if err := conf.LoadFromYamlBytes([]byte("Log:\n  Mode: console\n  Level: error\n"), &c); err != nil {
		return err
	}
	if *depth != 0 {
		c.Depth = *depth
	}

	logx.MustSetup(c.Log)
	logx.DisableStat()

	state, err := file.Load(set.Arg(0))
	if err != nil {
		return err
	}

	options := []assess.Option{assess.WithDepth(c.Depth)}
	decisions, err := cache.New(c.Cache)
	if err != nil {
		return err
	}
	if decisions != nil {
		options = append(options, assess.WithCache(decisions))
	}

	ai := player.NewComputer(chess.Player(*aiNumber))
	ai.Score = *aiScore
	opponent := player.NewHuman(ai.Number.Other(), "")
	opponent.Score = *humanScore

	board := ui.NewBoard(bool(model.NewConfig(*colors)))
	if err := board.Print(out, state); err != nil {
		return err
	}

	d := assess.NewEngine(options...).ChooseMove(state, ai, opponent)
	if !d.Found {
		fmt.Fprintln(out, "No legal moves left")
		return nil
	}

	fmt.Fprintf(out, "AI would choose move %v (value %d)\n", d.Move, d.Value)
	return nil
}
