package message_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
)

// TestEventMessage_Decode keeps the flattened event fields readable by the
// worker.
func TestEventMessage_Decode(t *testing.T) {
	uid := message.NewGameUid()
	m := message.EventMessage{
		TimeStamp: message.NewTimeStamp(time.Now()),
		GameUid:   uid,
		Event: game.Event{
			Kind:          game.EventClaim,
			Step:          3,
			EdgeID:        "1,2-3,4",
			Owner:         chess.Player2,
			CurrentPlayer: chess.Player1,
			Scores:        game.Scores{Player1: 2, Player2: 5},
			Phase:         game.Active,
		},
	}

	str := m.String()
	assert.Contains(t, str, `"phase":"active"`)
	assert.Contains(t, str, `"scores":{"1":2,"2":5}`)

	back, err := message.NewEventMessage(str)
	require.NoError(t, err)
	assert.Equal(t, m, back)

	_, err = message.NewEventMessage("{not json")
	assert.Error(t, err)
}

func TestPartitionOf(t *testing.T) {
	require.Len(t, message.RedisPartitions, 5)
	for range 50 {
		uid := message.NewGameUid()
		p := message.PartitionOf(uid)
		assert.Equal(t, p, message.PartitionOf(uid))
		assert.Contains(t, message.RedisPartitions, p)
	}
	assert.NotEqual(t, message.RedisPartition(1).ListKey(), message.RedisPartition(2).ListKey())
}

func TestParseGameUid(t *testing.T) {
	uid := message.NewGameUid()
	parsed, err := message.ParseGameUid(string(uid))
	require.NoError(t, err)
	assert.Equal(t, uid, parsed)

	_, err = message.ParseGameUid("game-1")
	assert.ErrorIs(t, err, message.ErrInvalidGameUid)
}

func TestTimeStamp(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 15, 250e6, time.Local)
	assert.True(t, now.Equal(message.NewTimeStamp(now).Time()))
}
