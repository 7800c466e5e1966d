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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 学习路线和学习项的全部操作，只对登录用户开放
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	// 选定目标方向：分析 + 生成路线 + 回写档案一步完成
	server.POST("/career/target/select", ginx.BS[Rid](h.SelectTarget))
	server.POST("/roadmap/generate", ginx.BS[Rid](h.Generate))
	server.POST("/roadmap/list", ginx.BS[Page](h.List))
	server.POST("/roadmap/detail", ginx.BS[IDReq](h.Detail))
	server.GET("/roadmap/active", ginx.S(h.Active))
	server.POST("/roadmap/activate", ginx.BS[IDReq](h.Activate))
	server.POST("/roadmap/archive", ginx.BS[IDReq](h.Archive))
	server.POST("/roadmap/item/start", ginx.BS[IDReq](h.StartItem))
	server.POST("/roadmap/item/complete", ginx.BS[CompleteItemReq](h.CompleteItem))
	server.POST("/roadmap/item/reset", ginx.BS[IDReq](h.ResetItem))
	server.GET("/roadmap/next", ginx.S(h.Next))
}

func (h *Handler) SelectTarget(ctx *ginx.Context, req Rid, sess session.Session) (ginx.Result, error) {
	analysis, rm, err := h.svc.SelectTarget(ctx, sess.Claims().Uid, req.Rid)
	switch {
	case errors.Is(err, career.ErrRoleNotFound):
		return roleNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: SelectTargetResp{
				Analysis: newAnalysis(analysis),
				Roadmap:  newRoadmap(rm),
			},
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Generate(ctx *ginx.Context, req Rid, sess session.Session) (ginx.Result, error) {
	rm, err := h.svc.Generate(ctx, sess.Claims().Uid, req.Rid)
	switch {
	case errors.Is(err, career.ErrRoleNotFound):
		return roleNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: newRoadmap(rm),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	roadmaps, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RoadmapList{
			Total: total,
			Roadmaps: slice.Map(roadmaps, func(idx int, src domain.Roadmap) Roadmap {
				return newRoadmap(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	rm, err := h.svc.Detail(ctx, sess.Claims().Uid, req.Id)
	switch {
	case errors.Is(err, service.ErrRoadmapNotFound):
		return roadmapNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: newRoadmap(rm),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Active(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rm, err := h.svc.Active(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrRoadmapNotFound):
		return roadmapNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: newRoadmap(rm),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Activate(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.handleTransition(h.svc.Activate(ctx, sess.Claims().Uid, req.Id), roadmapNotFoundErrResult)
}

func (h *Handler) Archive(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.handleTransition(h.svc.Archive(ctx, sess.Claims().Uid, req.Id), roadmapNotFoundErrResult)
}

func (h *Handler) StartItem(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.handleTransition(h.svc.StartItem(ctx, sess.Claims().Uid, req.Id), itemNotFoundErrResult)
}

func (h *Handler) CompleteItem(ctx *ginx.Context, req CompleteItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CompleteItem(ctx, sess.Claims().Uid, req.Id, req.ActualWeeks)
	if errors.Is(err, service.ErrInvalidDuration) {
		return invalidDurationErrResult, nil
	}
	return h.handleTransition(err, itemNotFoundErrResult)
}

func (h *Handler) ResetItem(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	return h.handleTransition(h.svc.ResetItem(ctx, sess.Claims().Uid, req.Id), itemNotFoundErrResult)
}

func (h *Handler) Next(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	next, err := h.svc.Next(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrRoadmapNotFound):
		return roadmapNotFoundErrResult, nil
	case err == nil:
		resp := NextResp{Done: next.Done}
		if !next.Done {
			item := newItem(next.Item)
			resp.Item = &item
		}
		return ginx.Result{
			Data: resp,
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) handleTransition(err error, notFound ginx.Result) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidState):
		return invalidStateErrResult, nil
	case errors.Is(err, service.ErrItemNotFound):
		return itemNotFoundErrResult, nil
	case errors.Is(err, service.ErrRoadmapNotFound):
		return notFound, nil
	case err == nil:
		return ginx.Result{
			Msg: "OK",
		}, nil
	default:
		return systemErrorResult, err
	}
}
