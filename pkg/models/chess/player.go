package chess

type Player int8

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}
