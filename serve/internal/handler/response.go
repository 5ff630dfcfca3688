package handler

import (
	"net/http"

	"github.com/HuXin0817/dab-engine/serve/types"
	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

func parse(c *gin.Context, v any) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	return sonic.Unmarshal(body, v)
}

func write(c *gin.Context, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

func fail(c *gin.Context, status int, err error) {
	write(c, status, types.ErrorResponse{Error: err.Error()})
}
