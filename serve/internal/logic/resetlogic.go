package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

type ResetLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewResetLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResetLogic {
	return &ResetLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ResetLogic) Reset(req *types.GameReq) (*types.GameResp, error) {
	room, err := findRoom(l.svcCtx, req.Uid)
	if err != nil {
		return nil, err
	}

	view, err := room.Do(func(g *game.Game) error {
		g.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return gameResp(view), nil
}
