package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

type TimerLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewTimerLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TimerLogic {
	return &TimerLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *TimerLogic) Timer(req *types.TimerReq) (*types.GameResp, error) {
	room, err := findRoom(l.svcCtx, req.Uid)
	if err != nil {
		return nil, err
	}

	return gameResp(room.SetTimer(req.Enabled)), nil
}
