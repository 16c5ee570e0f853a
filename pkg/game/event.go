package game

import "github.com/HuXin0817/voronoi-edges/pkg/models/chess"

type EventKind string

const (
	EventBoard EventKind = "board"
	EventClaim EventKind = "claim"
	EventTurn  EventKind = "turn"
	EventEnd   EventKind = "end"
	EventReset EventKind = "reset"
)

const (
	ReasonClaim   = "claim"
	ReasonTimeout = "timeout"
)

type Scores struct {
	Player1 int `json:"1"`
	Player2 int `json:"2"`
}

func (s Scores) Of(t chess.Turn) int {
	switch t {
	case chess.Player1:
		return s.Player1
	case chess.Player2:
		return s.Player2
	}
	return 0
}

// Event is what the game reports to its listeners after every state change.
// Winner is only meaningful for EventEnd, where NoPlayer means a draw.
type Event struct {
	Kind          EventKind  `json:"kind"`
	Step          int        `json:"step"`
	EdgeID        string     `json:"edgeId,omitempty"`
	Owner         chess.Turn `json:"owner,omitempty"`
	CurrentPlayer chess.Turn `json:"currentPlayer"`
	Scores        Scores     `json:"scores"`
	Polygons      Scores     `json:"polygons"`
	Phase         Phase      `json:"phase"`
	Winner        chess.Turn `json:"winner"`
	Reason        string     `json:"reason,omitempty"`
	Message       string     `json:"message,omitempty"`
	PointCount    int        `json:"pointCount,omitempty"`
	EdgesCount    int        `json:"edgesCount,omitempty"`
}

type Listener func(Event)
