package moverecord

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"
)

// keyed keeps one document per key, like an upsert on that key.
type keyed map[string]struct{}

func (k keyed) put(key bson.D) { k[fmt.Sprint(key)] = struct{}{} }

type fakeStarts struct {
	GameStartRecodeModel
	got   []*GameStartRecode
	store keyed
}

func (f *fakeStarts) UpsertBatch(_ context.Context, data []*GameStartRecode) error {
	for _, d := range data {
		if f.store != nil {
			f.store.put(d.Key())
		}
	}
	f.got = append(f.got, data...)
	return nil
}

type fakeClaims struct {
	ClaimRecodeModel
	got   []*ClaimRecode
	store keyed
	err   error
	fails int
}

func (f *fakeClaims) UpsertBatch(_ context.Context, data []*ClaimRecode) error {
	if f.err != nil && f.fails != 0 {
		f.fails--
		return f.err
	}
	for _, d := range data {
		if f.store != nil {
			f.store.put(d.Key())
		}
	}
	f.got = append(f.got, data...)
	return nil
}

type fakeEnds struct {
	GameEndRecodeModel
	got   []*GameEndRecode
	store keyed
}

func (f *fakeEnds) UpsertBatch(_ context.Context, data []*GameEndRecode) error {
	for _, d := range data {
		if f.store != nil {
			f.store.put(d.Key())
		}
	}
	f.got = append(f.got, data...)
	return nil
}

func events(uid message.GameUid, at time.Time) []message.EventMessage {
	ts := message.NewTimeStamp(at)
	return []message.EventMessage{
		{TimeStamp: ts, GameUid: uid, Event: game.Event{Kind: game.EventBoard, PointCount: 4, EdgesCount: 9, Phase: game.Active, CurrentPlayer: chess.Player1}},
		{TimeStamp: ts, GameUid: uid, Event: game.Event{Kind: game.EventClaim, Step: 1, EdgeID: "0,0-1,0", Owner: chess.Player1, CurrentPlayer: chess.Player2, Scores: game.Scores{Player1: 1}, Phase: game.Active}},
		{TimeStamp: ts, GameUid: uid, Event: game.Event{Kind: game.EventTurn, Step: 1, CurrentPlayer: chess.Player1, Scores: game.Scores{Player1: 1}, Phase: game.Active, Reason: game.ReasonTimeout}},
		{TimeStamp: ts, GameUid: uid, Event: game.Event{Kind: game.EventEnd, Step: 9, Scores: game.Scores{Player1: 4, Player2: 4}, Phase: game.Ended}},
	}
}

func TestBatch(t *testing.T) {
	uid := message.NewGameUid()
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)

	b := NewBatch(events(uid, at)...)
	require.Equal(t, 4, b.Len())
	require.Len(t, b.Starts, 1)
	require.Len(t, b.Claims, 2)
	require.Len(t, b.Ends, 1)

	assert.Equal(t, 9, b.Starts[0].EdgesCount)
	assert.True(t, at.Equal(b.Starts[0].StartedAt))

	claim := b.Claims[0]
	assert.Equal(t, "claim", claim.Kind)
	assert.Equal(t, "0,0-1,0", claim.MoveEdge)
	assert.Equal(t, "Player1", claim.Owner)
	assert.Equal(t, "Player2", claim.NowPlayer)
	assert.Equal(t, "active", claim.Phase)

	pass := b.Claims[1]
	assert.Equal(t, "turn", pass.Kind)
	assert.Empty(t, pass.MoveEdge)
	assert.Empty(t, pass.Owner)

	assert.Equal(t, Draw, b.Ends[0].Winner)
	assert.Equal(t, uid, b.Ends[0].GameUid)
}

func TestRecorder_Record(t *testing.T) {
	starts, claims, ends := &fakeStarts{}, &fakeClaims{}, &fakeEnds{}
	r := &Recorder{Start: starts, Claim: claims, End: ends}

	require.NoError(t, r.Record(context.Background(), events(message.NewGameUid(), time.Now())...))
	assert.Len(t, starts.got, 1)
	assert.Len(t, claims.got, 2)
	assert.Len(t, ends.got, 1)

	claims.err, claims.fails = errors.New("mongo down"), -1
	err := r.Record(context.Background(), events(message.NewGameUid(), time.Now())...)
	assert.ErrorIs(t, err, claims.err)
	assert.Len(t, ends.got, 1)
}

// TestRecorder_RetryAfterFailure replays a batch whose claim write failed
// and checks that the start written by the first attempt is not stored twice.
func TestRecorder_RetryAfterFailure(t *testing.T) {
	starts := &fakeStarts{store: keyed{}}
	claims := &fakeClaims{store: keyed{}, err: errors.New("mongo down"), fails: 1}
	ends := &fakeEnds{store: keyed{}}
	r := &Recorder{Start: starts, Claim: claims, End: ends}

	batch := events(message.NewGameUid(), time.Now())
	require.Error(t, r.Record(context.Background(), batch...))
	require.NoError(t, r.Record(context.Background(), batch...))

	assert.Len(t, starts.got, 2)
	assert.Len(t, starts.store, 1)
	assert.Len(t, claims.store, 2)
	assert.Len(t, ends.store, 1)
}

// TestRecodeKeys rebuilds a batch and expects the same keys, while distinct
// turns at one step keep distinct keys.
func TestRecodeKeys(t *testing.T) {
	batch := events(message.NewGameUid(), time.Now())
	first, again := NewBatch(batch...), NewBatch(batch...)

	assert.Equal(t, first.Starts[0].Key(), again.Starts[0].Key())
	assert.Equal(t, first.Ends[0].Key(), again.Ends[0].Key())
	assert.Equal(t, first.Claims[0].Key(), again.Claims[0].Key())
	assert.NotEqual(t, first.Claims[0].Key(), first.Claims[1].Key())

	other := NewBatch(events(message.NewGameUid(), time.Now())...)
	assert.NotEqual(t, first.Starts[0].Key(), other.Starts[0].Key())
}

func TestWinnerName(t *testing.T) {
	assert.Equal(t, "Player2", winnerName(chess.Player2))
	assert.Equal(t, Draw, winnerName(chess.NoPlayer))
}
