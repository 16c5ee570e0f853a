package message

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
)

// EventMessage carries one game event through a redis partition.
type EventMessage struct {
	TimeStamp `json:"timeStamp"`
	GameUid   `json:"gameUid"`
	game.Event
}

func NewEventMessage(str string) (newEventMessage EventMessage, err error) {
	if err = sonic.UnmarshalString(str, &newEventMessage); err != nil {
		return newEventMessage, fmt.Errorf("message: decode event: %w", err)
	}
	return
}

func (m EventMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
