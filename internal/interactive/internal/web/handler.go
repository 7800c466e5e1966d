// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.InteractiveService
}

func NewHandler(svc service.InteractiveService) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// PrivateRoutes 这边我们直接让前端来控制 biz 和 biz_id，简化实现
// 这算是一种反范式的设计和实现方式
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/intr")
	g.POST("/collect/toggle", ginx.BS[CollectReq](h.CollectToggle))
	g.POST("/collection/list", ginx.BS[CollectionListReq](h.CollectionList))
	// 统一用 POST 请求，懒得去处理不同的
	g.POST("/cnt", ginx.BS[GetCntReq](h.GetCnt))
}

func (h *Handler) CollectToggle(ctx *ginx.Context, req CollectReq, sess session.Session) (ginx.Result, error) {
	if !domain.ValidBiz(req.Biz) {
		return invalidBizErrResult, nil
	}
	collected, err := h.svc.CollectToggle(ctx, req.Biz, req.BizId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CollectResp{
			Collected: collected,
		},
	}, nil
}

func (h *Handler) CollectionList(ctx *ginx.Context, req CollectionListReq, sess session.Session) (ginx.Result, error) {
	if !domain.ValidBiz(req.Biz) {
		return invalidBizErrResult, nil
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	ids, err := h.svc.CollectionIds(ctx, sess.Claims().Uid, req.Biz, req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CollectionListResp{
			BizIds: ids,
		},
	}, nil
}

func (h *Handler) GetCnt(ctx *ginx.Context, req GetCntReq, sess session.Session) (ginx.Result, error) {
	if !domain.ValidBiz(req.Biz) {
		return invalidBizErrResult, nil
	}
	intr, err := h.svc.Get(ctx, req.Biz, req.BizId, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: GetCntResp{
			ViewCnt:    intr.ViewCnt,
			CollectCnt: intr.CollectCnt,
			Collected:  intr.Collected,
		},
	}, nil
}
