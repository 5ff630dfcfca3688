package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/logrusorgru/aurora"
)

const (
	dotCell        = "  *"
	horizontalCell = "---"
	verticalCell   = "  |"
	emptyCell      = "   "
)

// Board renders a State as text: a column label row, then one line per grid
// row with dots, drawn edges coloured by their owner and blank gaps.
type Board struct {
	au aurora.Aurora
}

func NewBoard(colors bool) *Board {
	return &Board{au: aurora.NewAurora(colors)}
}

func (b *Board) colorize(p chess.Player, s string) string {
	switch p {
	case chess.Player1:
		return b.au.Blue(s).String()
	case chess.Player2:
		return b.au.Red(s).String()
	}
	return s
}

func (b *Board) Render(s chess.State) string {
	var builder strings.Builder

	builder.WriteString("    ")
	for x := 0; x < s.Size.GridWidth(); x++ {
		fmt.Fprintf(&builder, "%3d", x)
	}
	builder.WriteString("\n\n")

	for y := 0; y < s.Size.GridHeight(); y++ {
		fmt.Fprintf(&builder, "%-4d", y)
		for x := 0; x < s.Size.GridWidth(); x++ {
			builder.WriteString(b.cell(s, chess.NewEdge(x, y)))
		}
		builder.WriteString("\n\n")
	}

	return builder.String()
}

func (b *Board) cell(s chess.State, e chess.Edge) string {
	switch {
	case e.X%2 == 0 && e.Y%2 == 0:
		return dotCell
	case e.X%2 == 1 && e.Y%2 == 1:
		return emptyCell
	}

	owner, ok := s.Owner(e)
	if !ok {
		return emptyCell
	}

	if e.Horizontal() {
		return b.colorize(owner, horizontalCell)
	}
	return b.colorize(owner, verticalCell)
}

func (b *Board) Print(w io.Writer, s chess.State) error {
	_, err := io.WriteString(w, b.Render(s))
	return err
}

// Score formats a score line such as "Player1 AI: 2 | Player2 Human: 1".
func (b *Board) Score(p1Name string, p1Score int, p2Name string, p2Score int) string {
	return fmt.Sprintf("%s %s: %d | %s %s: %d",
		b.colorize(chess.Player1, chess.Player1.String()), p1Name, p1Score,
		b.colorize(chess.Player2, chess.Player2.String()), p2Name, p2Score,
	)
}
