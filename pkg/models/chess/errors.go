package chess

import "errors"

var (
	// ErrAlreadyClaimed indicates the edge already has an owner.
	ErrAlreadyClaimed = errors.New("chess: edge already claimed")
	// ErrUnknownEdge indicates the edge id is not part of the board.
	ErrUnknownEdge = errors.New("chess: edge not on board")
	// ErrInvalidEdgeID indicates edge id text that cannot be parsed.
	ErrInvalidEdgeID = errors.New("chess: invalid edge id")
	// ErrMalformedBoundary indicates boundary segments that were filtered out.
	ErrMalformedBoundary = errors.New("chess: malformed boundary segments")
	// ErrInvalidPlayer indicates a claim on behalf of neither player.
	ErrInvalidPlayer = errors.New("chess: invalid player")
)
