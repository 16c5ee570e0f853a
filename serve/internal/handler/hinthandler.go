package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/HuXin0817/voronoi-edges/serve/internal/logic"
	"github.com/HuXin0817/voronoi-edges/serve/internal/svc"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

func HintHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GameReq
		if err := parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewHintLogic(r.Context(), svcCtx)
		resp, err := l.Hint(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
