package moverecord

import (
	"time"

	"github.com/HuXin0817/dab-engine/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid   message.GameUid   `bson:"gameUid" json:"gameUid"`
	Width     int               `bson:"width" json:"width"`
	Height    int               `bson:"height" json:"height"`
	Player1   string            `bson:"player1" json:"player1"`
	Player2   string            `bson:"player2" json:"player2"`
	Depth     int               `bson:"depth" json:"depth"`
	StartedAt message.TimeStamp `bson:"startedAt" json:"startedAt"`
}
