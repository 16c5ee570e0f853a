package message

import (
	"github.com/bytedance/sonic"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
)

type SnapshotKey struct {
	GameUid
}

func (k SnapshotKey) String() string {
	return "voronoi:snapshot:" + string(k.GameUid)
}

type SnapshotMessage struct {
	TimeStamp     `json:"timeStamp"`
	GameUid       `json:"gameUid"`
	game.Snapshot `json:"snapshot"`
}

func NewSnapshotMessage(str string) (newSnapshotMessage SnapshotMessage, err error) {
	err = sonic.UnmarshalString(str, &newSnapshotMessage)
	return
}

func (m SnapshotMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
