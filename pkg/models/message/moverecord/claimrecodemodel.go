package moverecord

import (
	"context"

	"github.com/HuXin0817/voronoi-edges/pkg/models/message"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ClaimRecodeCollectionName = "claim_recode"

var _ ClaimRecodeModel = (*customClaimRecodeModel)(nil)

type (
	// ClaimRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customClaimRecodeModel.
	ClaimRecodeModel interface {
		claimRecodeModel
		UpsertBatch(ctx context.Context, data []*ClaimRecode) error
		FindByGame(ctx context.Context, gameUid message.GameUid) ([]*ClaimRecode, error)
	}

	customClaimRecodeModel struct {
		*defaultClaimRecodeModel
	}
)

// NewClaimRecodeModel returns a model for the mongo.
func NewClaimRecodeModel(url, db string) ClaimRecodeModel {
	conn := mon.MustNewModel(url, db, ClaimRecodeCollectionName)
	return &customClaimRecodeModel{
		defaultClaimRecodeModel: newDefaultClaimRecodeModel(conn),
	}
}

// UpsertBatch stores data, skipping records already stored under the same
// key, so a retried batch writes nothing twice.
func (m *customClaimRecodeModel) UpsertBatch(ctx context.Context, data []*ClaimRecode) error {
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

func (m *customClaimRecodeModel) FindByGame(ctx context.Context, gameUid message.GameUid) ([]*ClaimRecode, error) {
	var data []*ClaimRecode

	err := m.conn.Find(ctx, &data, bson.M{"gameUid": gameUid}, options.Find().SetSort(bson.D{{Key: "stepCount", Value: 1}}))
	if err != nil {
		return nil, err
	}

	return data, nil
}
