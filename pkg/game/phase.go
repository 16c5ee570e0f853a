package game

import "fmt"

type Phase int8

const (
	Setup Phase = iota
	Active
	Ended
)

var phaseNames = map[Phase]string{
	Setup:  "setup",
	Active: "active",
	Ended:  "ended",
}

func (p Phase) String() string {
	if name, c := phaseNames[p]; c {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int8(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for phase, name := range phaseNames {
		if name == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("game: unknown phase %q", text)
}
