package types

import "github.com/HuXin0817/voronoi-edges/serve/internal/hub"

type NewGameReq struct {
	PointCount int  `json:"pointCount,optional"`
	Timer      bool `json:"timer,optional"`
}

type GameReq struct {
	Uid string `path:"uid"`
}

type BoardReq struct {
	Uid        string `path:"uid"`
	PointCount int    `json:"pointCount,optional"`
}

type ClaimReq struct {
	Uid    string `path:"uid"`
	EdgeId string `json:"edgeId"`
}

type TimerReq struct {
	Uid     string `path:"uid"`
	Enabled bool   `json:"enabled"`
}

type GameResp struct {
	hub.View
	Stored bool `json:"stored,omitempty"`
}

type HintResp struct {
	Uid    string   `json:"uid"`
	Player int      `json:"player"`
	Gain   int      `json:"gain"`
	Edges  []string `json:"edges"`
}

type ErrorResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Frame is one websocket message.
type Frame struct {
	Type  string `json:"type"`
	Event any    `json:"event,omitempty"`
	View  any    `json:"view,omitempty"`
}
