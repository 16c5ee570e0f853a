package hub

import "errors"

var (
	ErrGameNotFound = errors.New("hub: game not found")
	ErrHubFull      = errors.New("hub: too many games")
)
