package handler

import (
	"net/http"

	"github.com/HuXin0817/dab-engine/serve/internal/logic"
	"github.com/HuXin0817/dab-engine/serve/internal/svc"
	"github.com/HuXin0817/dab-engine/serve/types"
	"github.com/gin-gonic/gin"
)

func MoveHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.MoveRequest
		if err := parse(c, &req); err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		resp, err := logic.NewMoveLogic(c.Request.Context(), svcCtx).Move(&req)
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		write(c, http.StatusOK, resp)
	}
}

func LegalHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.StateRequest
		if err := parse(c, &req); err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		resp, err := logic.NewLegalLogic(c.Request.Context(), svcCtx).Legal(&req)
		if err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		write(c, http.StatusOK, resp)
	}
}
