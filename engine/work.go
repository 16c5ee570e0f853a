package main

import (
	"context"
	"errors"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
)

// OnceIntervalWorking pops the partition oldest first until it is empty, then
// gives up its ownership. Messages that cannot be decoded are skipped.
func (e *Engine) OnceIntervalWorking(ctx context.Context, NowTopic message.RedisPartition) error {
	logx.Infof("start working at partition: %d", NowTopic)

	defer func() {
		if _, err := e.RedisClient.DelCtx(context.Background(), NowTopic.OwnerKey()); err != nil {
			logx.Errorf("release partition %d: %v", NowTopic, err)
		}
	}()

	for popped := 0; ctx.Err() == nil; popped++ {
		if err := e.RedisClient.ExpireCtx(ctx, NowTopic.OwnerKey(), OnceWorkingTime); err != nil {
			return err
		}

		l, err := e.RedisClient.LlenCtx(ctx, NowTopic.ListKey())
		if err != nil {
			return err
		}

		m := ""
		if l > 0 {
			m, err = e.RedisClient.RpopCtx(ctx, NowTopic.ListKey())
			if err != nil && !errors.Is(err, redis.Nil) {
				return err
			}
		}

		if m == "" {
			logx.Infof("partition %d drained after %d messages", NowTopic, popped)
			return nil
		}

		mess, err := message.NewEventMessage(m)
		if err != nil {
			logx.Errorf("partition %d: skip %q: %v", NowTopic, m, err)
			continue
		}

		logx.Debugf("=> %s %s step %d", mess.GameUid, mess.Kind, mess.Step)
		e.Pusher.AddMessages(mess)
	}

	return nil
}
