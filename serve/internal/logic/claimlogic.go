package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

type ClaimLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewClaimLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ClaimLogic {
	return &ClaimLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *ClaimLogic) Claim(req *types.ClaimReq) (*types.GameResp, error) {
	id, err := chess.ParseEdgeID(req.EdgeId)
	if err != nil {
		return nil, err
	}

	room, err := findRoom(l.svcCtx, req.Uid)
	if err != nil {
		return nil, err
	}

	view, err := room.Do(func(g *game.Game) error {
		_, err := g.Claim(id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return gameResp(view), nil
}
