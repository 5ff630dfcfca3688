package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/HuXin0817/dab-engine/pkg/models/chess"
	"github.com/HuXin0817/dab-engine/pkg/models/player"
	"github.com/HuXin0817/dab-engine/serve/types"
	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/rest/httpc"
)

// Remote asks a dab-serve instance for the computer's moves.
type Remote struct {
	server   string
	depth    int
	timeout  time.Duration
	self     *player.Agent
	opponent *player.Agent
}

func NewRemote(server string, depth int, timeout time.Duration, self, opponent *player.Agent) *Remote {
	return &Remote{
		server:   server,
		depth:    depth,
		timeout:  timeout,
		self:     self,
		opponent: opponent,
	}
}

func NewMoveRequest(s chess.State, self, opponent *player.Agent, depth int) types.MoveRequest {
	req := types.MoveRequest{
		StateRequest: types.StateRequest{
			Width:  s.Size.W,
			Height: s.Size.H,
			P1:     [][2]int{},
			P2:     [][2]int{},
		},
		Computer:      int(self.Number),
		ComputerScore: self.Score,
		HumanScore:    opponent.Score,
		Depth:         depth,
	}

	for _, e := range s.Lines(chess.Player1) {
		req.P1 = append(req.P1, [2]int{e.X, e.Y})
	}
	for _, e := range s.Lines(chess.Player2) {
		req.P2 = append(req.P2, [2]int{e.X, e.Y})
	}

	return req
}

func (r *Remote) NextMove(s chess.State) (chess.Edge, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	body, err := sonic.Marshal(NewMoveRequest(s, r.self, r.opponent, r.depth))
	if err != nil {
		return chess.Edge{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.server+"/v1/move", bytes.NewReader(body))
	if err != nil {
		return chess.Edge{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.DoRequest(req)
	if err != nil {
		return chess.Edge{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return chess.Edge{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return chess.Edge{}, fmt.Errorf("%s: %s %s", r.server, resp.Status, reason(data))
	}

	var move types.MoveResponse
	if err := sonic.Unmarshal(data, &move); err != nil {
		return chess.Edge{}, err
	}

	if !move.Found {
		return chess.Edge{}, player.ErrNoMoves
	}
	return chess.NewEdge(move.Move[0], move.Move[1]), nil
}

// reason extracts the error message of a failed call, falling back to the
// raw body when it is not an ErrorResponse.
func reason(data []byte) string {
	var e types.ErrorResponse
	if err := sonic.Unmarshal(data, &e); err != nil || e.Error == "" {
		return strings.TrimSpace(string(data))
	}
	return e.Error
}
