package logic

import (
	"context"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
	"github.com/HuXin0817/dab-engine/serve/internal/svc"
	"github.com/HuXin0817/dab-engine/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type MoveLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMoveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MoveLogic {
	return &MoveLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *MoveLogic) Move(in *types.MoveRequest) (*types.MoveResponse, error) {
	depth := in.Depth
	if depth == 0 {
		depth = l.svcCtx.Config.Depth
	}
	if depth < 1 || depth > l.svcCtx.Config.MaxDepth {
		return nil, ErrDepthOutOfRange
	}

	if in.Computer != 1 && in.Computer != 2 {
		return nil, ErrInvalidComputer
	}

	state, err := buildState(in.StateRequest, l.svcCtx.Config.MaxBoardSize)
	if err != nil {
		return nil, err
	}

	computer := player.NewComputer(chess.Player(in.Computer))
	computer.Score = in.ComputerScore
	human := player.NewHuman(computer.Number.Other(), "")
	human.Score = in.HumanScore

	d := l.svcCtx.Engine(depth).ChooseMove(state, computer, human)
	l.Infof("board %v with %d edges, depth %d: move %v value %d", state.Size, state.Len(), depth, d.Move, d.Value)

	return &types.MoveResponse{
		Found: d.Found,
		Move:  [2]int{d.Move.X, d.Move.Y},
		Value: d.Value,
		Depth: depth,
	}, nil
}
