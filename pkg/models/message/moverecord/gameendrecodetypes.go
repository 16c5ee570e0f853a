package moverecord

import (
	"time"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const Draw = "Draw"

type GameEndRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid      message.GameUid `bson:"gameUid" json:"gameUid"`
	EndedAt      time.Time       `bson:"endedAt" json:"endedAt"`
	Winner       string          `bson:"winner" json:"winner"`
	StepCount    int             `bson:"stepCount" json:"stepCount"`
	Player1Score int             `bson:"player1Score" json:"player1Score"`
	Player2Score int             `bson:"player2Score" json:"player2Score"`
}

func (d *GameEndRecode) Key() bson.D {
	return bson.D{{Key: "gameUid", Value: d.GameUid}, {Key: "endedAt", Value: d.EndedAt}}
}
