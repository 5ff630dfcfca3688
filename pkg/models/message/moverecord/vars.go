package moverecord

import (
	"errors"

	"github.com/zeromicro/go-zero/core/stores/mon"
)

var (
	ErrNotFound        = mon.ErrNotFound
	ErrInvalidObjectId = errors.New("invalid objectId")
)

const (
	GameStartRecodeCollectionName = "game_start_recode"
	MoveRecodeCollectionName      = "move_recode"
	GameEndRecodeCollectionName   = "game_end_recode"
)
