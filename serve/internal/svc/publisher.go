package svc

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
	"github.com/HuXin0817/voronoi-edges/pkg/models/model"
	"github.com/HuXin0817/voronoi-edges/pkg/models/pusher"
)

const (
	listExpireSeconds = 120
	pushTimeout       = 10 * time.Second
)

// Publisher forwards game events to the worker queue.
type Publisher interface {
	Publish(messages ...message.EventMessage)
	Stop()
}

// PartitionPublisher batches event messages per redis partition and pushes
// each batch under the partition lock.
type PartitionPublisher struct {
	PartitionPusher map[message.RedisPartition]*pusher.Pusher[string]
}

func NewPartitionPublisher(rds *redis.Redis) *PartitionPublisher {
	p := &PartitionPublisher{
		PartitionPusher: make(map[message.RedisPartition]*pusher.Pusher[string]),
	}

	for _, redisPartition := range message.RedisPartitions {
		lock := model.NewLock(rds, redisPartition.LockName())

		p.PartitionPusher[redisPartition] = pusher.NewPusher(pusher.WithPushLogic(func(pushMessages ...string) error {
			ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
			defer cancel()

			return lock.Do(ctx, func() error {
				return pushToList(ctx, rds, redisPartition, pushMessages)
			})
		}))

		p.PartitionPusher[redisPartition].Start()
	}

	return p
}

func pushToList(ctx context.Context, rds *redis.Redis, partition message.RedisPartition, pushMessages []string) error {
	messages := make([]any, 0, len(pushMessages))
	for _, m := range pushMessages {
		messages = append(messages, m)
	}

	if _, err := rds.LpushCtx(ctx, partition.ListKey(), messages...); err != nil {
		return err
	}

	length, err := rds.LlenCtx(ctx, partition.ListKey())
	if err != nil {
		return err
	}

	return rds.ExpireCtx(ctx, partition.ListKey(), listExpireSeconds*max(length, 1))
}

func (p *PartitionPublisher) Publish(messages ...message.EventMessage) {
	for _, m := range messages {
		p.PartitionPusher[message.PartitionOf(m.GameUid)].AddMessages(m.String())
	}
}

func (p *PartitionPublisher) Stop() {
	for _, ps := range p.PartitionPusher {
		ps.Stop()
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(...message.EventMessage) {}

func (nopPublisher) Stop() {}
