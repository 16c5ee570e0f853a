package pusher_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/voronoi-edges/pkg/models/pusher"
)

type sink struct {
	mu      sync.Mutex
	batches [][]string
}

func (s *sink) push(messages ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, append([]string(nil), messages...))
	return nil
}

func (s *sink) all() (out []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return
}

func TestPusher_PushAll(t *testing.T) {
	s := &sink{}
	p := pusher.NewPusher(pusher.WithPushLogic(s.push), pusher.WithElements("a"))
	p.AddMessages("b", "c")
	assert.Equal(t, 3, p.Len())

	require.NoError(t, p.PushAll())
	assert.Equal(t, []string{"a", "b", "c"}, s.all())
	assert.Zero(t, p.Len())

	require.NoError(t, p.PushAll())
	assert.Len(t, s.batches, 1, "empty buffer is not pushed")
}

func TestPusher_KeepsFailedBatch(t *testing.T) {
	fail := errors.New("redis down")
	p := pusher.NewPusher(pusher.WithPushLogic(func(...string) error { return fail }))
	p.AddMessages("a")

	assert.ErrorIs(t, p.PushAll(), fail)
	assert.Equal(t, 1, p.Len())
}

func TestPusher_StopFlushes(t *testing.T) {
	s := &sink{}
	p := pusher.NewPusher(
		pusher.WithPushLogic(s.push),
		pusher.WithPushInterval[string](time.Hour),
	)
	p.Start()
	p.AddMessages("x", "y")
	p.Stop()
	p.Stop()

	assert.Equal(t, []string{"x", "y"}, s.all())
}

func TestPusher_Interval(t *testing.T) {
	s := &sink{}
	var mu sync.Mutex
	var errs []error
	p := pusher.NewPusher(
		pusher.WithPushLogic(s.push),
		pusher.WithPushInterval[string](10*time.Millisecond),
		pusher.WithErrorHandler[string](func(err error) {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}),
	)
	p.Start()
	defer p.Stop()

	p.AddMessages("tick")
	assert.Eventually(t, func() bool { return len(s.all()) == 1 }, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Empty(t, errs)
	mu.Unlock()
}
