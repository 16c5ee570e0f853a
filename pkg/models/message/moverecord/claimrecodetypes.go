package moverecord

import (
	"time"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClaimRecode is one turn of a game: a claim, a timeout pass or a reset.
type ClaimRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid      message.GameUid `bson:"gameUid" json:"gameUid"`
	MovedAt      time.Time       `bson:"movedAt" json:"movedAt"`
	Kind         string          `bson:"kind" json:"kind"`
	StepCount    int             `bson:"stepCount" json:"stepCount"`
	MoveEdge     string          `bson:"moveEdge,omitempty" json:"moveEdge,omitempty"`
	Owner        string          `bson:"owner,omitempty" json:"owner,omitempty"`
	NowPlayer    string          `bson:"nowPlayer" json:"nowPlayer"`
	Player1Score int             `bson:"player1Score" json:"player1Score"`
	Player2Score int             `bson:"player2Score" json:"player2Score"`
	Phase        string          `bson:"phase" json:"phase"`
}

// Key identifies one turn: the same step can appear as a claim, a pass and
// after a reset, so kind and time are part of it.
func (d *ClaimRecode) Key() bson.D {
	return bson.D{
		{Key: "gameUid", Value: d.GameUid},
		{Key: "kind", Value: d.Kind},
		{Key: "stepCount", Value: d.StepCount},
		{Key: "movedAt", Value: d.MovedAt},
	}
}
