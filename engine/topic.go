package main

import (
	"context"
	"time"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
)

// GetFreeTopic blocks until some partition has messages and no owner, and
// takes ownership of it.
func (e *Engine) GetFreeTopic(ctx context.Context) (topic message.RedisPartition, err error) {
	for {
		for _, t := range message.RedisPartitions {
			length, err := e.RedisClient.LlenCtx(ctx, t.ListKey())
			if err != nil {
				return -1, err
			}

			if length == 0 {
				continue
			}

			owned, err := e.RedisClient.SetnxExCtx(ctx, t.OwnerKey(), string(message.NewTimeStamp(time.Now())), SetExpireTime)
			if err != nil {
				return -1, err
			}

			if owned {
				return t, nil
			}
		}

		select {
		case <-ctx.Done():
			return -1, ctx.Err()
		case <-time.After(e.Idle):
		}
	}
}
