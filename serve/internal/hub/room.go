package hub

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
)

const subscriberBuffer = 64

// Dispatcher receives the events of one operation, in order, together with
// the snapshot taken right after it.
type Dispatcher func(uid message.GameUid, events []game.Event, snapshot game.Snapshot)

// View is a room's state as served to clients.
type View struct {
	Uid              message.GameUid `json:"uid"`
	TimerEnabled     bool            `json:"timerEnabled"`
	RemainingSeconds float64         `json:"remainingSeconds"`
	Snapshot         game.Snapshot   `json:"snapshot"`
}

// Room serializes access to one game and runs its turn clock.
type Room struct {
	Uid message.GameUid

	mu       sync.Mutex
	game     *game.Game
	pending  []game.Event
	clock    clock
	lastSeen time.Time
	closed   bool

	order    sync.Mutex
	dispatch Dispatcher

	subMu sync.Mutex
	subs  map[chan game.Event]struct{}
}

func newRoom(uid message.GameUid, turn time.Duration, dispatch Dispatcher, options ...game.Option) *Room {
	r := &Room{
		Uid:      uid,
		clock:    clock{turn: turn},
		lastSeen: time.Now(),
		dispatch: dispatch,
		subs:     make(map[chan game.Event]struct{}),
	}

	options = append(append([]game.Option(nil), options...), game.WithListener(r.collect))
	r.game = game.New(options...)
	return r
}

// collect runs inside game operations, with r.mu held.
func (r *Room) collect(ev game.Event) {
	r.pending = append(r.pending, ev)
}

// Do runs f against the game, then broadcasts and dispatches the events f
// produced. Events of consecutive calls are delivered in call order.
func (r *Room) Do(f func(g *game.Game) error) (View, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return View{}, ErrGameNotFound
	}

	err := f(r.game)
	return r.release(err), err
}

// Read runs f against the game without producing events.
func (r *Room) Read(f func(g *game.Game)) View {
	r.mu.Lock()
	defer r.mu.Unlock()

	f(r.game)
	return r.view(time.Now())
}

// SetTimer turns the per-turn countdown on or off.
func (r *Room) SetTimer(enabled bool) View {
	r.mu.Lock()
	r.clock.enabled = enabled
	if enabled && r.game.Phase() == game.Active {
		r.clock.restart(r.expire)
	} else {
		r.clock.stop()
	}
	return r.release(nil)
}

// release must be called with r.mu held and unlocks it.
func (r *Room) release(err error) View {
	events := r.pending
	r.pending = nil

	now := time.Now()
	r.lastSeen = now
	r.syncClock(events)
	view := r.view(now)

	r.order.Lock()
	r.mu.Unlock()
	defer r.order.Unlock()

	if err != nil {
		logx.Debugf("game %s: %v", r.Uid, err)
	}

	if len(events) == 0 {
		return view
	}

	r.broadcast(events)
	if r.dispatch != nil {
		r.dispatch(r.Uid, events, view.Snapshot)
	}

	return view
}

func (r *Room) syncClock(events []game.Event) {
	if r.game.Phase() != game.Active {
		r.clock.stop()
		return
	}

	for _, ev := range events {
		switch ev.Kind {
		case game.EventBoard, game.EventClaim, game.EventTurn:
			r.clock.restart(r.expire)
			return
		}
	}
}

func (r *Room) expire(gen uint64) {
	r.mu.Lock()
	if r.closed || gen != r.clock.gen {
		r.mu.Unlock()
		return
	}

	err := r.game.TimerExpired()
	r.release(err)
}

func (r *Room) view(now time.Time) View {
	return View{
		Uid:              r.Uid,
		TimerEnabled:     r.clock.enabled,
		RemainingSeconds: r.clock.remaining(now).Seconds(),
		Snapshot:         r.game.Snapshot(),
	}
}

// Subscribe streams the room's events until cancel is called, the room is
// closed, or the subscriber falls subscriberBuffer events behind.
func (r *Room) Subscribe() (events <-chan game.Event, cancel func()) {
	ch := make(chan game.Event, subscriberBuffer)

	r.subMu.Lock()
	r.subs[ch] = struct{}{}
	r.subMu.Unlock()

	return ch, func() { r.unsubscribe(ch) }
}

func (r *Room) unsubscribe(ch chan game.Event) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	if _, ok := r.subs[ch]; ok {
		delete(r.subs, ch)
		close(ch)
	}
}

func (r *Room) Subscribers() int {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	return len(r.subs)
}

func (r *Room) broadcast(events []game.Event) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	for ch := range r.subs {
		for _, ev := range events {
			select {
			case ch <- ev:
			default:
				logx.Infof("game %s: dropping slow subscriber", r.Uid)
				delete(r.subs, ch)
				close(ch)
			}
			if _, ok := r.subs[ch]; !ok {
				break
			}
		}
	}
}

func (r *Room) idleSince(now time.Time) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	return now.Sub(r.lastSeen)
}

func (r *Room) close() {
	r.mu.Lock()
	r.closed = true
	r.clock.stop()
	r.mu.Unlock()

	r.subMu.Lock()
	defer r.subMu.Unlock()

	for ch := range r.subs {
		delete(r.subs, ch)
		close(ch)
	}
}
