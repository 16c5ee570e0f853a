package hub

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
)

// Hub holds the live games of the service keyed by uid.
type Hub struct {
	rooms    map[message.GameUid]*Room
	mu       sync.RWMutex
	maxGames int
	turn     time.Duration
	idle     time.Duration
	dispatch Dispatcher
	options  []game.Option
	stopChan chan struct{}
	stopOnce sync.Once
}

type Option func(*Hub)

// WithMaxGames caps the number of live games; zero means no cap.
func WithMaxGames(maxGames int) Option {
	return func(h *Hub) {
		h.maxGames = maxGames
	}
}

func WithTurnDuration(turn time.Duration) Option {
	return func(h *Hub) {
		h.turn = turn
	}
}

// WithIdleTimeout drops games untouched for longer than idle.
func WithIdleTimeout(idle time.Duration) Option {
	return func(h *Hub) {
		h.idle = idle
	}
}

func WithDispatcher(dispatch Dispatcher) Option {
	return func(h *Hub) {
		h.dispatch = dispatch
	}
}

// WithGameOptions configures every game the hub creates.
func WithGameOptions(options ...game.Option) Option {
	return func(h *Hub) {
		h.options = append(h.options, options...)
	}
}

func NewHub(options ...Option) *Hub {
	h := &Hub{
		rooms:    make(map[message.GameUid]*Room),
		turn:     60 * time.Second,
		idle:     30 * time.Minute,
		stopChan: make(chan struct{}),
	}

	for _, option := range options {
		option(h)
	}

	return h
}

func (h *Hub) CreateGame() (*Room, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxGames > 0 && len(h.rooms) >= h.maxGames {
		return nil, ErrHubFull
	}

	uid := message.NewGameUid()
	r := newRoom(uid, h.turn, h.dispatch, h.options...)
	h.rooms[uid] = r
	return r, nil
}

func (h *Hub) GetGame(uid message.GameUid) (*Room, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	r, ok := h.rooms[uid]
	if !ok {
		return nil, ErrGameNotFound
	}
	return r, nil
}

func (h *Hub) RemoveGame(uid message.GameUid) {
	h.mu.Lock()
	r, ok := h.rooms[uid]
	delete(h.rooms, uid)
	h.mu.Unlock()

	if ok {
		r.close()
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms)
}

// MaintainGames sweeps idle games every interval until Stop.
func (h *Hub) MaintainGames(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if n := h.CleanupExpiredGames(now); n > 0 {
				logx.Infof("hub: dropped %d idle games, %d left", n, h.Len())
			}
		case <-h.stopChan:
			return
		}
	}
}

func (h *Hub) CleanupExpiredGames(now time.Time) int {
	var expired []*Room

	h.mu.Lock()
	for uid, r := range h.rooms {
		if r.idleSince(now) > h.idle {
			delete(h.rooms, uid)
			expired = append(expired, r)
		}
	}
	h.mu.Unlock()

	for _, r := range expired {
		r.close()
	}

	return len(expired)
}

func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopChan)
	})

	h.mu.Lock()
	rooms := h.rooms
	h.rooms = make(map[message.GameUid]*Room)
	h.mu.Unlock()

	for _, r := range rooms {
		r.close()
	}
}
