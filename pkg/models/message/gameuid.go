package message

import "github.com/google/uuid"

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

func (g GameUid) Valid() bool {
	_, err := uuid.Parse(string(g))
	return err == nil
}
