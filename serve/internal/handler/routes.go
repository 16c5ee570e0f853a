package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(Routes(serverCtx))
}

func Routes(serverCtx *svc.ServiceContext) []rest.Route {
	return []rest.Route{
		{
			Method:  http.MethodPost,
			Path:    "/games",
			Handler: NewGameHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/games/:uid",
			Handler: SnapshotHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/games/:uid/board",
			Handler: NewBoardHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/games/:uid/claims",
			Handler: ClaimHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/games/:uid/timer",
			Handler: TimerHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/games/:uid/reset",
			Handler: ResetHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/games/:uid/hint",
			Handler: HintHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/games/:uid/ws",
			Handler: StreamHandler(serverCtx),
		},
	}
}
