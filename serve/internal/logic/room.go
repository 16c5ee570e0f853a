package logic

import (
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
	"github.com/HuXin0817/voronoi-edges/serve/internal/hub"
	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

func findRoom(svcCtx *svc.ServiceContext, uid string) (*hub.Room, error) {
	gameUid, err := message.ParseGameUid(uid)
	if err != nil {
		return nil, err
	}
	return svcCtx.Hub.GetGame(gameUid)
}

func gameResp(view hub.View) *types.GameResp {
	return &types.GameResp{View: view}
}
