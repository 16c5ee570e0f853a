package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

type NewBoardLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewNewBoardLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NewBoardLogic {
	return &NewBoardLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// NewBoard replaces the board of a game. A missing point count falls back to
// the configured default.
func (l *NewBoardLogic) NewBoard(req *types.BoardReq) (*types.GameResp, error) {
	room, err := findRoom(l.svcCtx, req.Uid)
	if err != nil {
		return nil, err
	}

	pointCount := req.PointCount
	if pointCount == 0 {
		pointCount = l.svcCtx.Config.Game.DefaultPoints
	}

	view, err := room.Do(func(g *game.Game) error {
		return g.NewBoard(pointCount)
	})
	if err != nil {
		return nil, err
	}

	l.Infof("game %s: board with %d points, %d edges", room.Uid, pointCount, len(view.Snapshot.Edges))
	return gameResp(view), nil
}
