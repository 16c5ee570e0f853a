package moverecord

import (
	"time"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid    message.GameUid `bson:"gameUid" json:"gameUid"`
	StartedAt  time.Time       `bson:"startedAt" json:"startedAt"`
	PointCount int             `bson:"pointCount" json:"pointCount"`
	EdgesCount int             `bson:"edgesCount" json:"edgesCount"`
}

// Key identifies one board generation of a game.
func (d *GameStartRecode) Key() bson.D {
	return bson.D{{Key: "gameUid", Value: d.GameUid}, {Key: "startedAt", Value: d.StartedAt}}
}
