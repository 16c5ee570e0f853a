package svc

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
)

// SnapshotStore keeps the last snapshot of each game for a while after its
// latest change.
type SnapshotStore interface {
	Save(ctx context.Context, m message.SnapshotMessage) error
	Load(ctx context.Context, uid message.GameUid) (message.SnapshotMessage, bool, error)
}

type RedisSnapshots struct {
	RedisClient *redis.Redis
	Seconds     int
}

func (s *RedisSnapshots) Save(ctx context.Context, m message.SnapshotMessage) error {
	key := message.SnapshotKey{GameUid: m.GameUid}
	return s.RedisClient.SetexCtx(ctx, key.String(), m.String(), s.Seconds)
}

func (s *RedisSnapshots) Load(ctx context.Context, uid message.GameUid) (message.SnapshotMessage, bool, error) {
	key := message.SnapshotKey{GameUid: uid}
	str, err := s.RedisClient.GetCtx(ctx, key.String())
	if err != nil || str == "" {
		return message.SnapshotMessage{}, false, err
	}

	m, err := message.NewSnapshotMessage(str)
	if err != nil {
		return message.SnapshotMessage{}, false, err
	}
	return m, true, nil
}

type nopSnapshots struct{}

func (nopSnapshots) Save(context.Context, message.SnapshotMessage) error { return nil }

func (nopSnapshots) Load(context.Context, message.GameUid) (message.SnapshotMessage, bool, error) {
	return message.SnapshotMessage{}, false, nil
}
