package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/HuXin0817/dab-engine/pkg/env"
	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/message"
	"github.com/HuXin0817/dab-engine/pkg/models/message/moverecord"
	"github.com/HuXin0817/dab-engine/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
)

// Recorder receives the life cycle of one or more games.
type Recorder interface {
	GameStart(start moverecord.GameStartRecode)
	Move(move moverecord.MoveRecode)
	GameEnd(end moverecord.GameEndRecode)
	Close() error
}

type MongoConf struct {
	Url          string `json:",optional"`
	DataBaseName string `json:",default=dots_and_boxes"`
	PassWord     string `json:",optional"`
}

// Enabled reports whether a mongo url is configured.
func (c MongoConf) Enabled() bool {
	return c.Url != ""
}

// URL fills a %s placeholder in Url with the password, taken from the
// environment when PassWord is empty.
func (c MongoConf) URL() string {
	if !strings.Contains(c.Url, "%s") {
		return c.Url
	}
	return fmt.Sprintf(c.Url, env.Or(c.PassWord, env.MongoPassWord))
}

type Nop struct{}

func (Nop) GameStart(moverecord.GameStartRecode) {}
func (Nop) Move(moverecord.MoveRecode)           {}
func (Nop) GameEnd(moverecord.GameEndRecode)     {}
func (Nop) Close() error                         { return nil }

// Models are the collections a Mongo recorder writes to.
type Models struct {
	GameStart moverecord.GameStartRecodeModel
	Move      moverecord.MoveRecodeModel
	GameEnd   moverecord.GameEndRecodeModel
}

func NewModels(c MongoConf) Models {
	url := c.URL()
	return Models{
		GameStart: moverecord.NewGameStartRecodeModel(url, c.DataBaseName, moverecord.GameStartRecodeCollectionName),
		Move:      moverecord.NewMoveRecodeModel(url, c.DataBaseName, moverecord.MoveRecodeCollectionName),
		GameEnd:   moverecord.NewGameEndRecodeModel(url, c.DataBaseName, moverecord.GameEndRecodeCollectionName),
	}
}

// Mongo writes game starts and ends straight away and batches moves
// through a pusher.
type Mongo struct {
	models  Models
	moves   *pusher.Pusher[*moverecord.MoveRecode]
	timeout time.Duration
}

func NewMongo(models Models, interval time.Duration) *Mongo {
	m := &Mongo{
		models:  models,
		timeout: 5 * time.Second,
	}

	m.moves = pusher.NewPusher(
		pusher.WithPushInterval[*moverecord.MoveRecode](interval),
		pusher.WithPushLogic(func(moves ...*moverecord.MoveRecode) error {
			ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
			defer cancel()
			return m.models.Move.InsertMany(ctx, moves)
		}),
	)
	m.moves.Start()

	return m
}

func (m *Mongo) GameStart(start moverecord.GameStartRecode) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	if err := m.models.GameStart.Insert(ctx, &start); err != nil {
		logx.Errorf("record game start %s: %v", start.GameUid, err)
	}
}

func (m *Mongo) Move(move moverecord.MoveRecode) {
	m.moves.AddMessages(&move)
}

func (m *Mongo) GameEnd(end moverecord.GameEndRecode) {
	if err := m.moves.PushAll(); err != nil {
		logx.Errorf("record moves %s: %v", end.GameUid, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	if err := m.models.GameEnd.Insert(ctx, &end); err != nil {
		logx.Errorf("record game end %s: %v", end.GameUid, err)
	}
}

func (m *Mongo) Close() error {
	return m.moves.Stop()
}

// New returns a Mongo recorder when c names a database, Nop otherwise.
func New(c MongoConf) Recorder {
	if !c.Enabled() {
		return Nop{}
	}
	return NewMongo(NewModels(c), time.Second)
}

// Winner names the player with more boxes, or "Draw".
func Winner(player1Score, player2Score int) string {
	switch {
	case player1Score > player2Score:
		return chess.Player1.String()
	case player1Score < player2Score:
		return chess.Player2.String()
	}
	return "Draw"
}

// NewGameStart fills the start record of a fresh game.
func NewGameStart(uid message.GameUid, size chess.BoardSize, player1, player2 string, depth int) moverecord.GameStartRecode {
	return moverecord.GameStartRecode{
		GameUid:   uid,
		Width:     size.W,
		Height:    size.H,
		Player1:   player1,
		Player2:   player2,
		Depth:     depth,
		StartedAt: message.NewTimeStamp(time.Now()),
	}
}
