package game

import (
	"errors"

	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
)

var (
	// ErrInvalidPointCount indicates a board request with fewer than MinPointCount points.
	ErrInvalidPointCount = errors.New("game: at least 3 points are required")
	// ErrInactiveGame indicates an action outside the Active phase.
	ErrInactiveGame = errors.New("game: game is not active")

	ErrAlreadyClaimed    = chess.ErrAlreadyClaimed
	ErrUnknownEdge       = chess.ErrUnknownEdge
	ErrMalformedBoundary = chess.ErrMalformedBoundary
)
