package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

type NewGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewNewGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NewGameLogic {
	return &NewGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// NewGame opens a game and, when asked for points, generates its first board.
func (l *NewGameLogic) NewGame(req *types.NewGameReq) (*types.GameResp, error) {
	room, err := l.svcCtx.Hub.CreateGame()
	if err != nil {
		return nil, err
	}
	l.Infof("new game %s", room.Uid)

	view := room.SetTimer(req.Timer)
	if req.PointCount == 0 {
		return gameResp(view), nil
	}

	view, err = room.Do(func(g *game.Game) error {
		return g.NewBoard(req.PointCount)
	})
	if err != nil {
		l.svcCtx.Hub.RemoveGame(room.Uid)
		return nil, err
	}

	return gameResp(view), nil
}
