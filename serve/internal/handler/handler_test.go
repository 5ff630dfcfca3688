package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HuXin0817/dab-engine/pkg/cache"
	"github.com/HuXin0817/dab-engine/serve/internal/config"
	"github.com/HuXin0817/dab-engine/serve/internal/svc"
	"github.com/HuXin0817/dab-engine/serve/types"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"
)

func newRouter(t *testing.T, yaml string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var c config.Config
	require.NoError(t, conf.LoadFromYamlBytes([]byte(yaml), &c))

	svcCtx, err := svc.NewServiceContext(c)
	require.NoError(t, err)
	return NewRouter(svcCtx)
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestConfigDefaults(t *testing.T) {
	var c config.Config
	require.NoError(t, conf.LoadFromYamlBytes([]byte("Name: test\n"), &c))
	assert.Equal(t, "0.0.0.0", c.Host)
	assert.Equal(t, 8000, c.Port)
	assert.Equal(t, 4, c.Depth)
	assert.Equal(t, 6, c.MaxDepth)
	assert.Equal(t, 6, c.MaxBoardSize)
	assert.False(t, c.Pprof)
	assert.Equal(t, cache.ModeMemory, c.Cache.Mode)
}

func TestPing(t *testing.T) {
	w := do(newRouter(t, "Name: test\n"), http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestMove(t *testing.T) {
	router := newRouter(t, "Name: test\n")

	w := do(router, http.MethodPost, "/v1/move",
		`{"width":1,"height":1,"p1":[[0,1],[1,2]],"p2":[[1,0]],"computer":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.MoveResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, [2]int{2, 1}, resp.Move)
	assert.Equal(t, 5, resp.Value)
	assert.Equal(t, 4, resp.Depth)

	w = do(router, http.MethodPost, "/v1/move",
		`{"width":1,"height":1,"p1":[[0,1],[1,2]],"p2":[[1,0],[2,1]],"computer":1,"computerScore":1,"depth":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
	assert.Equal(t, 1, resp.Value)
	assert.Equal(t, 2, resp.Depth)
}

func TestMoveRejectsBadInput(t *testing.T) {
	router := newRouter(t, "Name: test\nMaxBoardSize: 4\n")

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "board too large", body: `{"width":5,"height":3,"computer":2}`},
		{name: "empty board size", body: `{"computer":2}`},
		{name: "depth too deep", body: `{"width":3,"height":3,"computer":2,"depth":7}`},
		{name: "bad computer", body: `{"width":3,"height":3,"computer":3}`},
		{name: "dot coordinate", body: `{"width":3,"height":3,"p1":[[0,0]],"computer":2}`},
		{name: "duplicate edge", body: `{"width":3,"height":3,"p1":[[1,0]],"p2":[[1,0]],"computer":2}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := do(router, http.MethodPost, "/v1/move", test.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp types.ErrorResponse
			require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestLegal(t *testing.T) {
	router := newRouter(t, "Name: test\n")

	w := do(router, http.MethodPost, "/v1/legal", `{"width":1,"height":1,"p1":[[0,1],[1,2]],"p2":[[1,0]]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.LegalResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ToMove)
	assert.Equal(t, []types.LegalMove{{Move: [2]int{2, 1}, Completions: 1}}, resp.Moves)

	w = do(router, http.MethodPost, "/v1/legal", `{"width":9,"height":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPprofRoutes(t *testing.T) {
	w := do(newRouter(t, "Name: test\n"), http.MethodGet, "/debug/pprof/cmdline", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(newRouter(t, "Name: test\nPprof: true\n"), http.MethodGet, "/debug/pprof/cmdline", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
