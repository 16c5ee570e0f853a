package moverecord

import (
	"context"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const GameEndRecodeCollectionName = "game_end_recode"

var _ GameEndRecodeModel = (*customGameEndRecodeModel)(nil)

type (
	// GameEndRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameEndRecodeModel.
	GameEndRecodeModel interface {
		gameEndRecodeModel
		UpsertBatch(ctx context.Context, data []*GameEndRecode) error
		FindByGame(ctx context.Context, gameUid message.GameUid) ([]*GameEndRecode, error)
	}

	customGameEndRecodeModel struct {
		*defaultGameEndRecodeModel
	}
)

// NewGameEndRecodeModel returns a model for the mongo.
func NewGameEndRecodeModel(url, db string) GameEndRecodeModel {
	conn := mon.MustNewModel(url, db, GameEndRecodeCollectionName)
	return &customGameEndRecodeModel{
		defaultGameEndRecodeModel: newDefaultGameEndRecodeModel(conn),
	}
}

// UpsertBatch stores data, skipping records already stored under the same
// key, so a retried batch writes nothing twice.
func (m *customGameEndRecodeModel) UpsertBatch(ctx context.Context, data []*GameEndRecode) error {
	if len(data) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(data))
	for _, d := range data {
		stamp(&d.CreateAt, &d.UpdateAt)
		models = append(models, upsertModel(d.Key(), d))
	}

	_, err := m.conn.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

func (m *customGameEndRecodeModel) FindByGame(ctx context.Context, gameUid message.GameUid) ([]*GameEndRecode, error) {
	var data []*GameEndRecode

	err := m.conn.Find(ctx, &data, bson.M{"gameUid": gameUid}, options.Find().SetSort(bson.D{{Key: "createAt", Value: 1}}))
	if err != nil {
		return nil, err
	}

	return data, nil
}
