package player

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentCreditNeverLowersScore(t *testing.T) {
	a := NewComputer(chess.Player2)
	a.Credit(3)
	a.Credit(1)
	assert.Equal(t, 3, a.Score)
	a.Credit(4)
	assert.Equal(t, 4, a.Score)
}

func TestNewAgents(t *testing.T) {
	ai := NewComputer(chess.Player1)
	assert.Equal(t, Computer, ai.Role)
	assert.Equal(t, "AI", ai.Name)

	human := NewHuman(chess.Player2, "")
	assert.Equal(t, Human, human.Role)
	assert.Equal(t, "Human", human.Name)
	assert.Equal(t, "Ada", NewHuman(chess.Player2, "Ada").Name)
}

func TestPromptRepromptsUntilLegal(t *testing.T) {
	s := chess.NewState(chess.NewBoardSize(3, 3)).Append(chess.NewEdge(1, 0))
	input := strings.Join([]string{
		"1",
		"a b",
		"1 99",
		"1 1",
		"1 0",
		"0 1",
	}, "\n")

	var out bytes.Buffer
	move, err := NewPrompt(strings.NewReader(input), &out).NextMove(s)
	require.NoError(t, err)
	assert.Equal(t, chess.NewEdge(0, 1), move)

	text := out.String()
	assert.Contains(t, text, "Incorrect number of inputs.")
	assert.Equal(t, 2, strings.Count(text, "Please only enter integer values in the proper range of the board."))
	assert.Contains(t, text, "(1, 1) is not a valid move.")
	assert.Contains(t, text, "(1, 0) is not a valid move.")
}

func TestPromptEndOfInput(t *testing.T) {
	s := chess.NewState(chess.NewBoardSize(3, 3))
	_, err := NewPrompt(strings.NewReader("2"), io.Discard).NextMove(s)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRandomPlaysLegalMoves(t *testing.T) {
	s := chess.NewState(chess.NewBoardSize(3, 3))
	r := NewRandom(7)

	for !s.Full() {
		move, err := r.NextMove(s)
		require.NoError(t, err)
		require.Contains(t, chess.LegalMoves(s), move)
		s = s.Append(move)
	}

	_, err := r.NextMove(s)
	assert.ErrorIs(t, err, ErrNoMoves)
}
