package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/search/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	svc    service.SearchService
	logger *elog.Component
}

func NewHandler(svc service.SearchService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/search/list", ginx.B[SearchReq](h.List))
}

func (h *Handler) List(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}
	if req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	data, err := h.svc.Search(ctx, req.Offset, req.Limit, req.Expr)
	if errors.Is(err, service.ErrInvalidExpr) {
		return invalidExprErrResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: NewSearchResult(data),
	}, nil
}
