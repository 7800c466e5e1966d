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
	"github.com/ecodeclub/skillbridge/internal/job/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/job/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端维护岗位和技能要求
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/job/save", ginx.B[SaveReq](h.Save))
	server.POST("/job/close", ginx.B[IDReq](h.Close))
	server.POST("/job/delete", ginx.B[IDReq](h.Delete))
	server.POST("/job/admin/list", ginx.B[Page](h.List))
	server.POST("/job/skill/save", ginx.B[SaveSkillReq](h.SaveSkill))
	server.POST("/job/skill/delete", ginx.B[IDReq](h.DeleteSkill))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	j := req.Job.toDomain()
	if !domain.ValidCategory(j.Category) {
		return invalidCategoryErrResult, nil
	}
	if j.Title == "" || !j.Level.Valid() {
		return invalidJobErrResult, nil
	}
	id, err := h.svc.Save(ctx, j)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Close(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Close(ctx, req.Id)
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Msg: "OK",
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	jobs, total, err := h.svc.AdminList(ctx, req.Offset, limitOf(req.Limit))
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

func (h *AdminHandler) SaveSkill(ctx *ginx.Context, req SaveSkillReq) (ginx.Result, error) {
	id, err := h.svc.SaveSkill(ctx, req.Skill.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidSkill):
		return invalidSkillErrResult, nil
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: id,
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) DeleteSkill(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.DeleteSkill(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
