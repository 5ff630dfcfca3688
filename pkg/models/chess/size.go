package chess

import "fmt"

// BoardSize is the number of boxes across (W) and down (H).
type BoardSize struct {
	W int
	H int
}

func NewBoardSize(w, h int) BoardSize {
	return BoardSize{W: w, H: h}
}

func (s BoardSize) GridWidth() int {
	return 2*s.W + 1
}

func (s BoardSize) GridHeight() int {
	return 2*s.H + 1
}

func (s BoardSize) EdgesCount() int {
	return s.W*(s.H+1) + s.H*(s.W+1)
}

func (s BoardSize) BoxesCount() int {
	return s.W * s.H
}

func (s BoardSize) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}
