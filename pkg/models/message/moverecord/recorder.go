package moverecord

import (
	"context"
	"fmt"
	"time"

	"github.com/HuXin0817/voronoi-edges/pkg/game"
	"github.com/HuXin0817/voronoi-edges/pkg/models/chess"
	"github.com/HuXin0817/voronoi-edges/pkg/models/message"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Batch sorts event messages into the collection each one belongs to.
type Batch struct {
	Starts []*GameStartRecode
	Claims []*ClaimRecode
	Ends   []*GameEndRecode
}

func NewBatch(messages ...message.EventMessage) *Batch {
	b := &Batch{}
	for _, m := range messages {
		b.Add(m)
	}
	return b
}

func (b *Batch) Add(m message.EventMessage) {
	at := m.TimeStamp.Time()

	switch m.Kind {
	case game.EventBoard:
		b.Starts = append(b.Starts, &GameStartRecode{
			GameUid:    m.GameUid,
			StartedAt:  at,
			PointCount: m.PointCount,
			EdgesCount: m.EdgesCount,
		})
	case game.EventClaim, game.EventTurn, game.EventReset:
		b.Claims = append(b.Claims, &ClaimRecode{
			GameUid:      m.GameUid,
			MovedAt:      at,
			Kind:         string(m.Kind),
			StepCount:    m.Step,
			MoveEdge:     m.EdgeID,
			Owner:        m.Owner.String(),
			NowPlayer:    m.CurrentPlayer.String(),
			Player1Score: m.Scores.Player1,
			Player2Score: m.Scores.Player2,
			Phase:        m.Phase.String(),
		})
	case game.EventEnd:
		b.Ends = append(b.Ends, &GameEndRecode{
			GameUid:      m.GameUid,
			EndedAt:      at,
			Winner:       winnerName(m.Winner),
			StepCount:    m.Step,
			Player1Score: m.Scores.Player1,
			Player2Score: m.Scores.Player2,
		})
	}
}

func (b *Batch) Len() int {
	return len(b.Starts) + len(b.Claims) + len(b.Ends)
}

func winnerName(t chess.Turn) string {
	if t.Valid() {
		return t.String()
	}
	return Draw
}

// Recorder writes game events to the audit collections. Every record is
// upserted by its key, so replaying a batch after a partial failure adds no
// duplicates.
type Recorder struct {
	Start GameStartRecodeModel
	Claim ClaimRecodeModel
	End   GameEndRecodeModel
}

func NewRecorder(url, db string) *Recorder {
	return &Recorder{
		Start: NewGameStartRecodeModel(url, db),
		Claim: NewClaimRecodeModel(url, db),
		End:   NewGameEndRecodeModel(url, db),
	}
}

func (r *Recorder) Record(ctx context.Context, messages ...message.EventMessage) error {
	b := NewBatch(messages...)

	if err := r.Start.UpsertBatch(ctx, b.Starts); err != nil {
		return fmt.Errorf("moverecord: upsert %d starts: %w", len(b.Starts), err)
	}

	if err := r.Claim.UpsertBatch(ctx, b.Claims); err != nil {
		return fmt.Errorf("moverecord: upsert %d claims: %w", len(b.Claims), err)
	}

	if err := r.End.UpsertBatch(ctx, b.Ends); err != nil {
		return fmt.Errorf("moverecord: upsert %d ends: %w", len(b.Ends), err)
	}

	return nil
}

func stamp(createAt, updateAt *time.Time) {
	now := time.Now()
	if createAt.IsZero() {
		*createAt = now
	}
	*updateAt = now
}

// upsertModel inserts doc unless a document matching key exists.
func upsertModel(key bson.D, doc any) mongo.WriteModel {
	return mongo.NewUpdateOneModel().
		SetFilter(key).
		SetUpdate(bson.M{"$setOnInsert": doc}).
		SetUpsert(true)
}
