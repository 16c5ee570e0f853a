// Package game runs one board from generation to the final score.
//
// A Game is driven by four inputs: NewBoard, Claim, TimerExpired and Reset.
// Every operation runs to completion before returning and all derived state
// (scores, loops) is recomputed from the board, so a reset is safe at any
// point. A Game is not safe for concurrent use.
package game

import (
	"fmt"
	"math/rand"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/assess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/geom"
)

type Game struct {
	provider  geom.Provider
	bounds    geom.Rect
	margin    float64
	rng       *rand.Rand
	listeners []Listener

	board    *chess.Board
	phase    Phase
	current  chess.Turn
	scores   Scores
	polygons Scores
	step     int
}

func New(options ...Option) *Game {
	g := defaultGame()
	for _, option := range options {
		option(g)
	}
	g.clear()
	return g
}

func (g *Game) clear() {
	g.board = nil
	g.phase = Setup
	g.current = chess.Player1
	g.scores = Scores{}
	g.polygons = Scores{}
	g.step = 0
}

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) CurrentPlayer() chess.Turn { return g.current }

func (g *Game) Scores() Scores { return g.scores }

func (g *Game) Step() int { return g.step }

// Board is nil outside a generated board.
func (g *Game) Board() *chess.Board { return g.board }

// NewBoard discards the current board and starts a new one with pointCount
// random seeds. Filtered boundary data is logged, not returned.
func (g *Game) NewBoard(pointCount int) error {
	if pointCount < MinPointCount {
		return fmt.Errorf("%w: got %d", ErrInvalidPointCount, pointCount)
	}

	g.clear()

	points := geom.RandomPoints(pointCount, g.bounds, g.margin, g.rng)
	cells, err := g.provider.Partition(points, g.bounds)
	if err != nil {
		return fmt.Errorf("game: partition %d points: %w", pointCount, err)
	}

	return g.Start(chess.NewBoard(points, cells...))
}

// Start activates a prepared board. NewBoard uses it after generating one;
// callers with their own partition may use it directly.
func (g *Game) Start(board *chess.Board) error {
	if board == nil {
		return fmt.Errorf("game: nil board")
	}

	g.clear()
	if err := board.Err(); err != nil {
		logx.Infof("game: %v", err)
	}

	g.board = board
	g.phase = Active
	g.recompute()

	g.emit(Event{
		Kind:       EventBoard,
		PointCount: len(board.Points),
		EdgesCount: board.EdgesCount(),
		Message:    "Game started! Click on edges to claim them.",
	})

	if board.Full() {
		g.finish()
	}
	return nil
}

// Claim gives the edge to the current player, rescores both players and
// passes the turn. The game ends once every edge is claimed.
func (g *Game) Claim(id chess.EdgeID) (Event, error) {
	if g.phase != Active {
		return Event{}, fmt.Errorf("%w: phase %s", ErrInactiveGame, g.phase)
	}

	player := g.current
	if err := g.board.Claim(id, player); err != nil {
		return Event{}, err
	}

	g.step++
	g.recompute()
	g.current = g.current.Next()

	ended := g.board.Full()
	if ended {
		g.phase = Ended
	}

	ev := g.event(Event{
		Kind:   EventClaim,
		EdgeID: id.String(),
		Owner:  player,
		Reason: ReasonClaim,
	})
	g.notify(ev)

	if ended {
		g.finish()
	}
	return ev, nil
}

// TimerExpired passes the turn without a claim.
func (g *Game) TimerExpired() error {
	if g.phase != Active {
		return fmt.Errorf("%w: phase %s", ErrInactiveGame, g.phase)
	}

	g.current = g.current.Next()
	g.emit(Event{
		Kind:    EventTurn,
		Reason:  ReasonTimeout,
		Message: fmt.Sprintf("Time's up! Player %d's turn.", g.current),
	})
	return nil
}

// Reset drops the board and returns to Setup.
func (g *Game) Reset() {
	g.clear()
	g.emit(Event{
		Kind:    EventReset,
		Message: "Game reset. Generate a new Voronoi diagram to start playing.",
	})
}

// Result reports the winner once the game has ended; NoPlayer is a draw.
func (g *Game) Result() (winner chess.Turn, message string, ok bool) {
	if g.phase != Ended {
		return chess.NoPlayer, "", false
	}

	switch {
	case g.scores.Player1 > g.scores.Player2:
		winner = chess.Player1
	case g.scores.Player2 > g.scores.Player1:
		winner = chess.Player2
	default:
		return chess.NoPlayer, "It's a draw! Both players have the same score.", true
	}

	return winner, fmt.Sprintf("Player %d wins! Final Score - P1: %d, P2: %d",
		winner, g.scores.Player1, g.scores.Player2), true
}

func (g *Game) finish() {
	g.phase = Ended
	winner, message, _ := g.Result()
	g.emit(Event{
		Kind:    EventEnd,
		Winner:  winner,
		Message: message,
	})
}

func (g *Game) recompute() {
	r1 := assess.Assess(g.board, chess.Player1)
	r2 := assess.Assess(g.board, chess.Player2)
	g.scores = Scores{Player1: r1.Score, Player2: r2.Score}
	g.polygons = Scores{Player1: r1.Polygons(), Player2: r2.Polygons()}
}

// event fills the common fields of ev from the current state.
func (g *Game) event(ev Event) Event {
	ev.Step = g.step
	ev.CurrentPlayer = g.current
	ev.Scores = g.scores
	ev.Polygons = g.polygons
	ev.Phase = g.phase
	return ev
}

func (g *Game) emit(ev Event) {
	g.notify(g.event(ev))
}

func (g *Game) notify(ev Event) {
	for _, l := range g.listeners {
		l(ev)
	}
}
