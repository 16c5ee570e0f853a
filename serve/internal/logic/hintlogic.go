package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/assess"
	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

type HintLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewHintLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HintLogic {
	return &HintLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Hint lists the free edges worth the most to the player on turn.
func (l *HintLogic) Hint(req *types.GameReq) (*types.HintResp, error) {
	room, err := findRoom(l.svcCtx, req.Uid)
	if err != nil {
		return nil, err
	}

	resp := &types.HintResp{Uid: req.Uid, Edges: []string{}}
	var phaseErr error
	room.Read(func(g *game.Game) {
		if g.Phase() != game.Active {
			phaseErr = game.ErrInactiveGame
			return
		}

		player := g.CurrentPlayer()
		resp.Player = int(player)
		edges := assess.BetterEdges(g.Board(), player)
		for _, e := range edges {
			resp.Edges = append(resp.Edges, e.String())
		}

		if len(edges) > 0 {
			resp.Gain = assess.Move{Board: g.Board(), Player: player, Edge: edges[0]}.Score()
		}
	})

	if phaseErr != nil {
		return nil, phaseErr
	}

	return resp, nil
}
