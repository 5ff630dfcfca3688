package moverecord

import (
	"context"
	"time"

	"github.com/HuXin0817/dab-engine/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ MoveRecodeModel = (*customMoveRecodeModel)(nil)

type (
	// MoveRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customMoveRecodeModel.
	MoveRecodeModel interface {
		moveRecodeModel
		InsertMany(ctx context.Context, data []*MoveRecode) error
		FindByGame(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error)
	}

	customMoveRecodeModel struct {
		*defaultMoveRecodeModel
	}
)

// NewMoveRecodeModel returns a model for the mongo.
func NewMoveRecodeModel(url, db, collection string) MoveRecodeModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customMoveRecodeModel{
		defaultMoveRecodeModel: newDefaultMoveRecodeModel(conn),
	}
}

func (m *customMoveRecodeModel) InsertMany(ctx context.Context, data []*MoveRecode) error {
	if len(data) == 0 {
		return nil
	}

	now := time.Now()
	documents := make([]any, len(data))
	for i, d := range data {
		if d.ID.IsZero() {
			d.ID = primitive.NewObjectID()
			d.CreateAt = now
			d.UpdateAt = now
		}
		documents[i] = d
	}

	_, err := m.conn.InsertMany(ctx, documents)
	return err
}

// FindByGame returns the moves of one game in play order.
func (m *customMoveRecodeModel) FindByGame(ctx context.Context, uid message.GameUid) ([]*MoveRecode, error) {
	var data []*MoveRecode
	err := m.conn.Find(ctx, &data, bson.M{"gameUid": uid}, options.Find().SetSort(bson.M{"stepCount": 1}))
	return data, err
}
