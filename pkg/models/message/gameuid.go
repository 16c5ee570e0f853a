package message

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidGameUid indicates game uid text that is not a uuid.
var ErrInvalidGameUid = errors.New("message: invalid game uid")

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func ParseGameUid(s string) (GameUid, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidGameUid, s, err)
	}
	return GameUid(u.String()), nil
}
