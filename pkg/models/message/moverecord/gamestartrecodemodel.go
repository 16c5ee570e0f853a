package moverecord

import (
	"context"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const GameStartRecodeCollectionName = "game_start_recode"

var _ GameStartRecodeModel = (*customGameStartRecodeModel)(nil)

type (
	// GameStartRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameStartRecodeModel.
	GameStartRecodeModel interface {
		gameStartRecodeModel
		UpsertBatch(ctx context.Context, data []*GameStartRecode) error
		FindByGame(ctx context.Context, gameUid message.GameUid) ([]*GameStartRecode, error)
	}

	customGameStartRecodeModel struct {
		*defaultGameStartRecodeModel
	}
)

// NewGameStartRecodeModel returns a model for the mongo.
func NewGameStartRecodeModel(url, db string) GameStartRecodeModel {
	conn := mon.MustNewModel(url, db, GameStartRecodeCollectionName)
	return &customGameStartRecodeModel{
		defaultGameStartRecodeModel: newDefaultGameStartRecodeModel(conn),
	}
}

// UpsertBatch stores data, skipping records already stored under the same
// key, so a retried batch writes nothing twice.
func (m *customGameStartRecodeModel) UpsertBatch(ctx context.Context, data []*GameStartRecode) error {
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

func (m *customGameStartRecodeModel) FindByGame(ctx context.Context, gameUid message.GameUid) ([]*GameStartRecode, error) {
	var data []*GameStartRecode

	err := m.conn.Find(ctx, &data, bson.M{"gameUid": gameUid}, options.Find().SetSort(bson.D{{Key: "createAt", Value: 1}}))
	if err != nil {
		return nil, err
	}

	return data, nil
}
