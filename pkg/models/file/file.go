package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
)

var (
	ErrMissingBoardSize = errors.New("missing board size line")
	ErrMalformedLine    = errors.New("malformed line")
)

var (
	boardSizePattern = regexp.MustCompile(`^B\s*=\s*(\d+)\s*x\s*(\d+)$`)
	edgePattern      = regexp.MustCompile(`\(\s*(-?\d+)\s*,\s*(-?\d+)\s*\)`)
	edgeListPattern  = regexp.MustCompile(`^(\s*\(\s*-?\d+\s*,\s*-?\d+\s*\)\s*)*$`)
)

// Parse reads a state description:
//
//	B=3x3
//	p1: (1,0) (0,1)
//	p2: (2,1)
//
// Player 1 is to move when both players have drawn the same number of
// edges, player 2 otherwise.
func Parse(r io.Reader) (chess.State, error) {
	var (
		size    chess.BoardSize
		hasSize bool
		lines   [2][]chess.Edge
	)

	scanner := bufio.NewScanner(r)
	for number := 1; scanner.Scan(); number++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "B"):
			m := boardSizePattern.FindStringSubmatch(line)
			if m == nil {
				return chess.State{}, fmt.Errorf("%w %d: %q", ErrMalformedLine, number, line)
			}
			w, _ := strconv.Atoi(m[1])
			h, _ := strconv.Atoi(m[2])
			if w < 1 || h < 1 {
				return chess.State{}, fmt.Errorf("%w %d: board must be at least 1x1", ErrMalformedLine, number)
			}
			size, hasSize = chess.NewBoardSize(w, h), true
		case strings.HasPrefix(line, "p1:"), strings.HasPrefix(line, "p2:"):
			edges, err := parseEdges(line[3:])
			if err != nil {
				return chess.State{}, fmt.Errorf("%w %d: %v", ErrMalformedLine, number, err)
			}
			p := line[1] - '1'
			lines[p] = append(lines[p], edges...)
		default:
			return chess.State{}, fmt.Errorf("%w %d: %q", ErrMalformedLine, number, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return chess.State{}, err
	}

	if !hasSize {
		return chess.State{}, ErrMissingBoardSize
	}

	s := chess.NewState(size)
	for i, p := range [...]chess.Player{chess.Player1, chess.Player2} {
		for _, e := range lines[i] {
			var err error
			if s, err = s.Place(p, e); err != nil {
				return chess.State{}, fmt.Errorf("%v: %w", p, err)
			}
		}
	}

	if len(lines[0]) != len(lines[1]) {
		s.ToMove = chess.Player2
	}

	return s, nil
}

func parseEdges(s string) ([]chess.Edge, error) {
	if !edgeListPattern.MatchString(s) {
		return nil, fmt.Errorf("edge list %q", strings.TrimSpace(s))
	}

	var edges []chess.Edge
	for _, m := range edgePattern.FindAllStringSubmatch(s, -1) {
		x, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, err
		}
		y, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, err
		}
		edges = append(edges, chess.NewEdge(x, y))
	}
	return edges, nil
}

func Load(path string) (chess.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return chess.State{}, err
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return chess.State{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write emits s in the format Parse reads.
func Write(w io.Writer, s chess.State) error {
	var builder strings.Builder
	fmt.Fprintf(&builder, "B=%dx%d\n", s.Size.W, s.Size.H)
	for _, p := range [...]chess.Player{chess.Player1, chess.Player2} {
		fmt.Fprintf(&builder, "p%d:", p)
		for _, e := range s.Lines(p) {
			fmt.Fprintf(&builder, " (%d,%d)", e.X, e.Y)
		}
		builder.WriteByte('\n')
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

func Save(path string, s chess.State) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
