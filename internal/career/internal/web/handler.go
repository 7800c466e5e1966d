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
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler C 端的方向目录、差距分析、推荐和职业探索测评
type Handler struct {
	roleSvc     service.RoleService
	analysisSvc service.AnalysisService
	quizSvc     service.DiscoveryService
}

func NewHandler(roleSvc service.RoleService,
	analysisSvc service.AnalysisService,
	quizSvc service.DiscoveryService) *Handler {
	return &Handler{
		roleSvc:     roleSvc,
		analysisSvc: analysisSvc,
		quizSvc:     quizSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/career/list", ginx.B[ListReq](h.List))
	server.POST("/career/detail", ginx.B[Rid](h.Detail))
	server.POST("/career/popular", ginx.B[LimitReq](h.Popular))
	server.POST("/career/high-growth", ginx.B[LimitReq](h.HighGrowth))
	server.GET("/career/categories", ginx.W(h.Categories))
	server.GET("/career/discovery/questions", ginx.W(h.Questions))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/career/analysis/analyze", ginx.BS[Rid](h.Analyze))
	server.POST("/career/analysis/list", ginx.BS[Page](h.AnalysisList))
	server.POST("/career/analysis/detail", ginx.BS[Aid](h.AnalysisDetail))
	server.POST("/career/recommend", ginx.BS[LimitReq](h.Recommend))
	server.POST("/career/discovery/submit", ginx.BS[SubmitReq](h.Submit))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	category := domain.Category(req.Category)
	if req.Category != "" && !category.Valid() {
		return invalidCategoryErrResult, nil
	}
	roles, total, err := h.roleSvc.List(ctx, req.Offset, req.Limit, category)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RoleList{
			Total: total,
			Roles: slice.Map(roles, func(idx int, src domain.Role) Role {
				return newRole(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req Rid) (ginx.Result, error) {
	role, err := h.roleSvc.Detail(ctx, req.Rid)
	switch {
	case errors.Is(err, service.ErrRoleNotFound):
		return roleNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: newRole(role),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Popular(ctx *ginx.Context, req LimitReq) (ginx.Result, error) {
	roles, err := h.roleSvc.Popular(ctx, h.limitOf(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(roles, func(idx int, src domain.Role) Role {
			return newRole(src)
		}),
	}, nil
}

func (h *Handler) HighGrowth(ctx *ginx.Context, req LimitReq) (ginx.Result, error) {
	roles, err := h.roleSvc.HighGrowth(ctx, h.limitOf(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(roles, func(idx int, src domain.Role) Role {
			return newRole(src)
		}),
	}, nil
}

func (h *Handler) Categories(ctx *ginx.Context) (ginx.Result, error) {
	counts, err := h.roleSvc.Categories(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(counts, func(idx int, src domain.CategoryCount) CategoryCount {
			return CategoryCount{
				Category: src.Category.String(),
				Count:    src.Count,
			}
		}),
	}, nil
}

func (h *Handler) Analyze(ctx *ginx.Context, req Rid, sess session.Session) (ginx.Result, error) {
	analysis, err := h.analysisSvc.Analyze(ctx, sess.Claims().Uid, req.Rid)
	switch {
	case errors.Is(err, service.ErrRoleNotFound):
		return roleNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: newAnalysis(analysis),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) AnalysisList(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	analyses, total, err := h.analysisSvc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AnalysisList{
			Total: total,
			Analyses: slice.Map(analyses, func(idx int, src domain.Analysis) Analysis {
				res := newAnalysis(src)
				// 列表不铺缺口明细
				res.Gaps = nil
				return res
			}),
		},
	}, nil
}

func (h *Handler) AnalysisDetail(ctx *ginx.Context, req Aid, sess session.Session) (ginx.Result, error) {
	analysis, err := h.analysisSvc.Detail(ctx, sess.Claims().Uid, req.Aid)
	switch {
	case errors.Is(err, service.ErrAnalysisNotFound):
		return analysisNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: newAnalysis(analysis),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Recommend(ctx *ginx.Context, req LimitReq, sess session.Session) (ginx.Result, error) {
	recs, err := h.analysisSvc.Recommend(ctx, sess.Claims().Uid, h.limitOf(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(recs, func(idx int, src domain.Recommendation) Recommendation {
			return newRecommendation(src)
		}),
	}, nil
}

func (h *Handler) Questions(ctx *ginx.Context) (ginx.Result, error) {
	qs, err := h.quizSvc.Questions(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(qs, func(idx int, src domain.Question) Question {
			return newQuestion(src, false)
		}),
	}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	res, err := h.quizSvc.Submit(ctx, sess.Claims().Uid, req.Options)
	switch {
	case errors.Is(err, service.ErrInvalidAnswer):
		return invalidAnswerErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: DiscoveryResult{
				Categories: slice.Map(res.Categories, func(idx int, src domain.Category) string {
					return src.String()
				}),
				Scores: res.Scores,
				Roles: slice.Map(res.Roles, func(idx int, src domain.Role) Role {
					return newRole(src)
				}),
			},
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) limitOf(limit int) int {
	if limit <= 0 || limit > 50 {
		return 10
	}
	return limit
}
