package chess

type Turn int8

const (
	NoPlayer Turn = 0
	Player1  Turn = 1
	Player2  Turn = 2
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

func (t Turn) Valid() bool {
	return t == Player1 || t == Player2
}

// Next returns the opponent of t.
func (t Turn) Next() Turn {
	if t == Player1 {
		return Player2
	}
	return Player1
}
