package main

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
)

type memoryRecorder struct {
	mu       sync.Mutex
	messages []message.EventMessage
}

func (r *memoryRecorder) Record(_ context.Context, messages ...message.EventMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, messages...)
	return nil
}

func (r *memoryRecorder) steps() (steps []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		steps = append(steps, m.Step)
	}
	return
}

func newTestEngine(t *testing.T) (*Engine, *memoryRecorder, *miniredis.Miniredis) {
	t.Helper()
	logx.Disable()

	mr := miniredis.RunT(t)
	rds := redis.MustNewRedis(redis.RedisConf{Host: mr.Addr(), Type: redis.NodeType})
	rec := &memoryRecorder{}
	e := NewEngine(rds, rec, time.Hour)
	e.Idle = 10 * time.Millisecond
	return e, rec, mr
}

// publish pushes the way the service does: newest at the head of the list.
func publish(t *testing.T, rds *redis.Redis, uid message.GameUid, steps ...int) message.RedisPartition {
	t.Helper()

	partition := message.PartitionOf(uid)
	for _, step := range steps {
		m := message.EventMessage{
			TimeStamp: message.NewTimeStamp(time.Now()),
			GameUid:   uid,
			Event:     game.Event{Kind: game.EventClaim, Step: step, Phase: game.Active},
		}
		_, err := rds.Lpush(partition.ListKey(), m.String())
		require.NoError(t, err)
	}
	return partition
}

func TestEngine_OnceIntervalWorking(t *testing.T) {
	e, rec, mr := newTestEngine(t)
	uid := message.NewGameUid()
	partition := publish(t, e.RedisClient, uid, 1, 2)
	_, err := e.RedisClient.Lpush(partition.ListKey(), "{broken")
	require.NoError(t, err)
	publish(t, e.RedisClient, uid, 3)

	ctx := context.Background()
	got, err := e.GetFreeTopic(ctx)
	require.NoError(t, err)
	assert.Equal(t, partition, got)
	assert.True(t, mr.Exists(partition.OwnerKey()))

	require.NoError(t, e.OnceIntervalWorking(ctx, partition))
	assert.False(t, mr.Exists(partition.OwnerKey()), "ownership is released")
	assert.False(t, mr.Exists(partition.ListKey()))

	require.NoError(t, e.Pusher.PushAll())
	assert.Equal(t, []int{1, 2, 3}, rec.steps())
}

func TestEngine_GetFreeTopicSkipsOwned(t *testing.T) {
	e, _, _ := newTestEngine(t)
	partition := publish(t, e.RedisClient, message.NewGameUid(), 1)

	ok, err := e.RedisClient.SetnxEx(partition.OwnerKey(), "other", SetExpireTime)
	require.NoError(t, err)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = e.GetFreeTopic(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEngine_Run(t *testing.T) {
	e, rec, _ := newTestEngine(t)
	uid := message.NewGameUid()
	publish(t, e.RedisClient, uid, 1, 2, 3, 4)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	assert.Eventually(t, func() bool { return e.Pusher.Len() == 4 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("engine did not stop")
	}
	assert.Equal(t, []int{1, 2, 3, 4}, rec.steps(), "stopping flushes popped messages")
}
