package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
	"github.com/HuXin0817/voronoi-edges/serve/internal/hub"
	"github.com/HuXin0817/voronoi-edges/serve/internal/types"
)

// ErrBadRequest marks requests httpx could not parse.
var ErrBadRequest = errors.New("bad request")

func parse(r *http.Request, v any) error {
	if err := httpx.Parse(r, v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return nil
}

// ErrorHandler maps game errors to status codes; it is installed with
// httpx.SetErrorHandlerCtx.
func ErrorHandler(_ context.Context, err error) (int, any) {
	code := StatusOf(err)
	return code, types.ErrorResp{Code: code, Message: err.Error()}
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, hub.ErrGameNotFound), errors.Is(err, chess.ErrUnknownEdge):
		return http.StatusNotFound
	case errors.Is(err, chess.ErrAlreadyClaimed), errors.Is(err, game.ErrInactiveGame):
		return http.StatusConflict
	case errors.Is(err, hub.ErrHubFull):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, message.ErrInvalidGameUid),
		errors.Is(err, chess.ErrInvalidEdgeID),
		errors.Is(err, game.ErrInvalidPointCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
