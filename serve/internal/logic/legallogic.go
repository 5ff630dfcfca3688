package logic

import (
	"context"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/serve/internal/svc"
	"github.com/HuXin0817/dab-engine/serve/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type LegalLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewLegalLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LegalLogic {
	return &LegalLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *LegalLogic) Legal(in *types.StateRequest) (*types.LegalResponse, error) {
	state, err := buildState(*in, l.svcCtx.Config.MaxBoardSize)
	if err != nil {
		return nil, err
	}

	resp := &types.LegalResponse{
		ToMove: int(state.ToMove),
		Moves:  []types.LegalMove{},
	}
	for _, e := range chess.LegalMoves(state) {
		resp.Moves = append(resp.Moves, types.LegalMove{
			Move:        [2]int{e.X, e.Y},
			Completions: chess.CompletionsFor(state, e),
		})
	}

	return resp, nil
}
