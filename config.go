package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/HuXin0817/dab-engine/pkg/cache"
	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/model"
	"github.com/HuXin0817/dab-engine/pkg/record"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 6
)

var (
	ErrUsage               = errors.New("usage: dab-engine [flags] <player num> <board size>")
	ErrPlayerNumber        = errors.New("player number must be either 1 or 2")
	ErrBoardSizeOutOfRange = fmt.Errorf("board size must be between %d-%d inclusive", MinBoardSize, MaxBoardSize)
)

const defaultConfig = `
Log:
  Mode: console
  Encoding: plain
  Level: error
`

type Config struct {
	Log      logx.LogConf
	Depth    int    `json:",default=4,range=[1:8]"`
	Opponent string `json:",default=human,options=human|random|greedy"`
	Seed     int64  `json:",optional"`
	Cache    cache.Conf
	Mongo    record.MongoConf
}

// Args is what the command line asked for on top of the config file.
type Args struct {
	HumanNumber chess.Player
	BoardSize   int
	Colors      model.Config
	Bar         model.Config
	Pprof       string
	Save        string
}

type flags struct {
	set        *flag.FlagSet
	configFile *string
	depth      *int
	opponent   *string
	colors     *string
	bar        *string
	pprof      *string
	save       *string
}

func newFlags(name string) *flags {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	return &flags{
		set:        set,
		configFile: set.String("f", "", "the config file"),
		depth:      set.Int("depth", 0, "search depth, overrides the config file"),
		opponent:   set.String("opponent", "", "who plays against the AI: human, random or greedy"),
		colors:     set.String("color", "On", "colour the board"),
		bar:        set.String("bar", "On", "show search progress"),
		pprof:      set.String("pprof", "", "serve pprof on this address"),
		save:       set.String("save", "", "write the final state to this file"),
	}
}

func loadConfig(name string, arguments []string) (Config, Args, error) {
	f := newFlags(name)
	if err := f.set.Parse(arguments); err != nil {
		return Config{}, Args{}, err
	}

	var c Config
	if *f.configFile != "" {
		if err := conf.Load(*f.configFile, &c, conf.UseEnv()); err != nil {
			return Config{}, Args{}, err
		}
	} else if err := conf.LoadFromYamlBytes([]byte(defaultConfig), &c); err != nil {
		return Config{}, Args{}, err
	}

	if *f.depth != 0 {
		c.Depth = *f.depth
	}
	if *f.opponent != "" {
		c.Opponent = *f.opponent
	}

	args, err := parseArgs(f.set.Args())
	if err != nil {
		return Config{}, Args{}, err
	}
	args.Colors = model.NewConfig(*f.colors)
	args.Bar = model.NewConfig(*f.bar)
	args.Pprof = *f.pprof
	args.Save = *f.save

	return c, args, nil
}

func parseArgs(positional []string) (Args, error) {
	if len(positional) != 2 {
		return Args{}, ErrUsage
	}

	number, err := strconv.Atoi(positional[0])
	if err != nil || (number != 1 && number != 2) {
		return Args{}, ErrPlayerNumber
	}

	size, err := strconv.Atoi(positional[1])
	if err != nil || size < MinBoardSize || size > MaxBoardSize {
		return Args{}, ErrBoardSizeOutOfRange
	}

	return Args{
		HumanNumber: chess.Player(number),
		BoardSize:   size,
	}, nil
}
