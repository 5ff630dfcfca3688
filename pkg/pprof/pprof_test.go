package pprof

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart(t *testing.T) {
	addr, err := Start("127.0.0.1:0")
	require.NoError(t, err)

	resp, err := http.Get(fmt.Sprintf("http://%s/debug/pprof/cmdline", addr))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
