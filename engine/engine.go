package main

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
	"github.com/HuXin0817/voronoi-edges/pkg/models/pusher"
)

const (
	OnceWorkingTime = 180                 // second
	SetExpireTime   = OnceWorkingTime * 3 // second
)

// Recorder stores a batch of event messages.
type Recorder interface {
	Record(ctx context.Context, messages ...message.EventMessage) error
}

// Engine drains event partitions into the recorder. Several engines may run
// at once; each partition is worked by one of them at a time.
type Engine struct {
	RedisClient *redis.Redis
	Pusher      *pusher.Pusher[message.EventMessage]
	Idle        time.Duration
}

func NewEngine(rds *redis.Redis, recorder Recorder, pushInterval time.Duration) *Engine {
	return &Engine{
		RedisClient: rds,
		Pusher: pusher.NewPusher(
			pusher.WithPushInterval[message.EventMessage](pushInterval),
			pusher.WithPushLogic(func(messages ...message.EventMessage) error {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				return recorder.Record(ctx, messages...)
			}),
		),
		Idle: time.Second,
	}
}

// Run works free partitions until ctx is done, then flushes what it has
// already popped.
func (e *Engine) Run(ctx context.Context) error {
	e.Pusher.Start()
	defer e.Pusher.Stop()

	for {
		topic, err := e.GetFreeTopic(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if err = e.OnceIntervalWorking(ctx, topic); err != nil && ctx.Err() == nil {
			return err
		}
	}
}
