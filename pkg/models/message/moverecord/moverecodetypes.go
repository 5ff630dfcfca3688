package moverecord

import (
	"time"

	"github.com/HuXin0817/dab-engine/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoveRecode struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid      message.GameUid `bson:"gameUid" json:"gameUid"`
	StepCount    int             `bson:"stepCount" json:"stepCount"`
	Player1Score int             `bson:"player1Score" json:"player1Score"`
	Player2Score int             `bson:"player2Score" json:"player2Score"`
	NowPlayer    string          `bson:"nowPlayer" json:"nowPlayer"`
	MoveEdge     string          `bson:"moveEdge" json:"moveEdge"`
	Completions  int             `bson:"completions" json:"completions"`
}
