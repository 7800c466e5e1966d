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
	"github.com/ecodeclub/skillbridge/internal/job/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/job/internal/service"
	"github.com/gin-gonic/gin"
)

// 列表页参数兜底
const (
	defaultLimit = 10
	maxLimit     = 50

	defaultFreshDays = 7
	maxFreshDays     = 30
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/job/list", ginx.B[ListReq](h.List))
	server.POST("/job/detail", ginx.B[IDReq](h.Detail))
	server.POST("/job/fresh", ginx.B[FreshReq](h.Fresh))
	server.GET("/job/categories", ginx.W(h.Categories))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/job/recommend", ginx.BS[LimitReq](h.Recommend))
	server.POST("/job/match", ginx.BS[Jid](h.Match))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	jobs, total, err := h.svc.PubList(ctx, req.Offset, limitOf(req.Limit), req.Category, req.RemoteOnly)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: JobList{
			Total: total,
			Jobs: slice.Map(jobs, func(idx int, src domain.Job) Job {
				return newJob(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	j, err := h.svc.Detail(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: newJob(j),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Fresh(ctx *ginx.Context, req FreshReq) (ginx.Result, error) {
	days := req.Days
	if days <= 0 || days > maxFreshDays {
		days = defaultFreshDays
	}
	jobs, err := h.svc.Fresh(ctx, days, limitOf(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(jobs, func(idx int, src domain.Job) Job {
			return newJob(src)
		}),
	}, nil
}

func (h *Handler) Categories(ctx *ginx.Context) (ginx.Result, error) {
	cnts, err := h.svc.Categories(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(cnts, func(idx int, src domain.CategoryCount) CategoryCount {
			return CategoryCount{
				Category: src.Category,
				Count:    src.Count,
			}
		}),
	}, nil
}

func (h *Handler) Recommend(ctx *ginx.Context, req LimitReq, sess session.Session) (ginx.Result, error) {
	recs, err := h.svc.Recommend(ctx, sess.Claims().Uid, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(recs, func(idx int, src domain.Recommendation) Recommendation {
			return Recommendation{
				Job:             newJob(src.Job),
				Score:           src.Score,
				MatchPercentage: src.MatchPercentage,
				Reasons:         src.Reasons,
			}
		}),
	}, nil
}

func (h *Handler) Match(ctx *ginx.Context, req Jid, sess session.Session) (ginx.Result, error) {
	m, err := h.svc.Match(ctx, sess.Claims().Uid, req.Jid)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: newMatch(m),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func limitOf(limit int) int {
	if limit <= 0 || limit > maxLimit {
		return defaultLimit
	}
	return limit
}
