package logic

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
	"github.com/HuXin0817/voronoi-edges/serve/internal/hub"
	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

type SnapshotLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSnapshotLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SnapshotLogic {
	return &SnapshotLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Snapshot serves the live game, or the stored snapshot of a game that was
// already dropped from the hub.
func (l *SnapshotLogic) Snapshot(req *types.GameReq) (*types.GameResp, error) {
	room, err := findRoom(l.svcCtx, req.Uid)
	if err == nil {
		return gameResp(room.Read(func(*game.Game) {})), nil
	}

	if !errors.Is(err, hub.ErrGameNotFound) {
		return nil, err
	}

	stored, ok, loadErr := l.svcCtx.Snapshots.Load(l.ctx, message.GameUid(req.Uid))
	if loadErr != nil {
		l.Errorf("load snapshot %s: %v", req.Uid, loadErr)
		return nil, err
	}
	if !ok {
		return nil, err
	}

	return &types.GameResp{
		View: hub.View{
			Uid:      stored.GameUid,
			Snapshot: stored.Snapshot,
		},
		Stored: true,
	}, nil
}
