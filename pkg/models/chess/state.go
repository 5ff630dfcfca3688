package chess

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrInvalidEdge = errors.New("invalid edge")
	ErrEdgeTaken   = errors.New("edge already taken")
)

// State is a value type: every method that adds an edge returns a new State
// and leaves the receiver untouched.
type State struct {
	Size   BoardSize
	ToMove Player
	lines  [2][]Edge
	taken  []uint64
}

func NewState(size BoardSize) State {
	cells := size.GridWidth() * size.GridHeight()
	return State{
		Size:   size,
		ToMove: Player1,
		taken:  make([]uint64, (cells+63)/64),
	}
}

func (s State) index(e Edge) (int, bool) {
	if e.X < 0 || e.Y < 0 || e.X >= s.Size.GridWidth() || e.Y >= s.Size.GridHeight() {
		return 0, false
	}
	return e.Y*s.Size.GridWidth() + e.X, true
}

// Contains reports whether either player has drawn e. Off-board
// coordinates are never contained.
func (s State) Contains(e Edge) bool {
	i, ok := s.index(e)
	if !ok {
		return false
	}
	return s.taken[i/64]&(1<<(i%64)) != 0
}

// Owner returns the player who drew e.
func (s State) Owner(e Edge) (Player, bool) {
	if !s.Contains(e) {
		return 0, false
	}
	for _, p := range [...]Player{Player1, Player2} {
		if slices.Contains(s.lines[p-1], e) {
			return p, true
		}
	}
	return 0, false
}

// Lines returns the edges drawn by p in the order they were drawn.
func (s State) Lines(p Player) []Edge {
	if !p.Valid() {
		return nil
	}
	return slices.Clone(s.lines[p-1])
}

func (s State) Len() int {
	return len(s.lines[0]) + len(s.lines[1])
}

func (s State) Full() bool {
	return s.Len() == s.Size.EdgesCount()
}

func (s State) FreeEdgesCount() int {
	return s.Size.EdgesCount() - s.Len()
}

func (s State) add(p Player, e Edge) State {
	i, _ := s.index(e)

	taken := slices.Clone(s.taken)
	taken[i/64] |= 1 << (i % 64)
	s.taken = taken

	lines := s.lines
	lines[p-1] = append(slices.Clone(s.lines[p-1]), e)
	s.lines = lines
	return s
}

// Append draws e for the player to move. The caller guarantees e is a legal
// move; use Place at input boundaries.
func (s State) Append(e Edge) State {
	return s.add(s.ToMove, e)
}

// Place draws e for p after checking that e is a free, valid edge.
func (s State) Place(p Player, e Edge) (State, error) {
	if !p.Valid() {
		return s, fmt.Errorf("%w: unknown player %d", ErrInvalidEdge, p)
	}
	if !e.Valid(s.Size) {
		return s, fmt.Errorf("%w: %v on a %v board", ErrInvalidEdge, e, s.Size)
	}
	if s.Contains(e) {
		return s, fmt.Errorf("%w: %v", ErrEdgeTaken, e)
	}
	return s.add(p, e), nil
}

// Pass hands the turn to the other player.
func (s State) Pass() State {
	s.ToMove = s.ToMove.Other()
	return s
}

func (s State) EdgesCountInBox(box Box) (count int) {
	for _, e := range box.Edges() {
		if s.Contains(e) {
			count++
		}
	}
	return
}

func (s State) CompletedBoxes() (count int) {
	for _, b := range Boxes(s.Size) {
		if s.EdgesCountInBox(b) == 4 {
			count++
		}
	}
	return
}

// Fingerprint identifies the set of drawn edges regardless of who drew them
// or in which order.
func (s State) Fingerprint() string {
	var builder strings.Builder
	builder.WriteString(s.Size.String())
	for _, word := range s.taken {
		builder.WriteByte(':')
		builder.WriteString(strconv.FormatUint(word, 16))
	}
	return builder.String()
}
