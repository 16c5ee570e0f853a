package svc

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/geom"
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
	"github.com/HuXin0817/voronoi-edges/serve/internal/config"
	"github.com/HuXin0817/voronoi-edges/serve/internal/hub"
)

type ServiceContext struct {
	Config    config.Config
	Hub       *hub.Hub
	Snapshots SnapshotStore
	Publisher Publisher
}

// NewServiceContext wires redis when it is configured; without it events
// only reach websocket subscribers.
func NewServiceContext(c config.Config) *ServiceContext {
	var (
		snapshots SnapshotStore = nopSnapshots{}
		publisher Publisher     = nopPublisher{}
	)

	if c.Redis.Host != "" {
		rds := redis.MustNewRedis(c.Redis)
		snapshots = &RedisSnapshots{RedisClient: rds, Seconds: c.SnapshotSeconds}
		publisher = NewPartitionPublisher(rds)
	}

	return NewServiceContextWith(c, snapshots, publisher)
}

func NewServiceContextWith(c config.Config, snapshots SnapshotStore, publisher Publisher) *ServiceContext {
	svcCtx := &ServiceContext{
		Config:    c,
		Snapshots: snapshots,
		Publisher: publisher,
	}

	svcCtx.Hub = hub.NewHub(
		hub.WithMaxGames(c.Game.MaxGames),
		hub.WithTurnDuration(time.Duration(c.Game.TurnSeconds)*time.Second),
		hub.WithIdleTimeout(time.Duration(c.Game.IdleSeconds)*time.Second),
		hub.WithDispatcher(svcCtx.Dispatch),
		hub.WithGameOptions(
			game.WithBounds(geom.NewRect(c.Game.Width, c.Game.Height)),
			game.WithMargin(c.Game.Margin),
		),
	)

	return svcCtx
}

// Dispatch queues the events for the worker and refreshes the stored
// snapshot.
func (s *ServiceContext) Dispatch(uid message.GameUid, events []game.Event, snapshot game.Snapshot) {
	now := message.NewTimeStamp(time.Now())

	messages := make([]message.EventMessage, 0, len(events))
	for _, ev := range events {
		messages = append(messages, message.EventMessage{
			TimeStamp: now,
			GameUid:   uid,
			Event:     ev,
		})
	}
	s.Publisher.Publish(messages...)

	err := s.Snapshots.Save(context.Background(), message.SnapshotMessage{
		TimeStamp: now,
		GameUid:   uid,
		Snapshot:  snapshot,
	})
	if err != nil {
		logx.Errorf("game %s: save snapshot: %v", uid, err)
	}
}

func (s *ServiceContext) Stop() {
	s.Hub.Stop()
	s.Publisher.Stop()
}
