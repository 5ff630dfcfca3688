package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
)

var ErrNoMoves = errors.New("no legal moves left")

// Mover picks the next edge for one side of the game.
type Mover interface {
	NextMove(s chess.State) (chess.Edge, error)
}

// Prompt asks a person for moves until a legal one is entered.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *Prompt) NextMove(s chess.State) (chess.Edge, error) {
	moves := chess.LegalMoves(s)
	if len(moves) == 0 {
		return chess.Edge{}, ErrNoMoves
	}

	limit := max(s.Size.GridWidth(), s.Size.GridHeight())
	for {
		fmt.Fprint(p.out, "Make a move - x y (e.g. 2 5):\t")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return chess.Edge{}, err
			}
			return chess.Edge{}, io.ErrUnexpectedEOF
		}

		fields := strings.Fields(p.in.Text())
		if len(fields) != 2 {
			fmt.Fprintln(p.out, "Incorrect number of inputs. Please enter 2 integer values separated by a space.")
			continue
		}

		var coords [2]int
		inRange := true
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v >= limit {
				inRange = false
				break
			}
			coords[i] = v
		}
		if !inRange {
			fmt.Fprintln(p.out, "Please only enter integer values in the proper range of the board.")
			continue
		}

		move := chess.NewEdge(coords[0], coords[1])
		if !slices.Contains(moves, move) {
			fmt.Fprintf(p.out, "%v is not a valid move. Please enter a new move.\n", move)
			continue
		}
		return move, nil
	}
}

// Random plays a uniformly random legal move.
type Random struct {
	r *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

func (r *Random) NextMove(s chess.State) (chess.Edge, error) {
	moves := chess.LegalMoves(s)
	if len(moves) == 0 {
		return chess.Edge{}, ErrNoMoves
	}
	return moves[r.r.Intn(len(moves))], nil
}
