package moverecord

import "github.com/zeromicro/go-zero/core/stores/mon"

var _ GameStartRecodeModel = (*customGameStartRecodeModel)(nil)

type (
	// GameStartRecodeModel is an interface to be customized, add more methods here,
	// and implement the added methods in customGameStartRecodeModel.
	GameStartRecodeModel interface {
		gameStartRecodeModel
	}

	customGameStartRecodeModel struct {
		*defaultGameStartRecodeModel
	}
)

// NewGameStartRecodeModel returns a model for the mongo.
func NewGameStartRecodeModel(url, db, collection string) GameStartRecodeModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customGameStartRecodeModel{
		defaultGameStartRecodeModel: newDefaultGameStartRecodeModel(conn),
	}
}
