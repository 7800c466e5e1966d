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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/errs"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端维护技能目录和等级字典
type AdminHandler struct {
	svc service.SkillService
}

func NewAdminHandler(svc service.SkillService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/skill/save", ginx.B[SaveReq](h.Save))
	server.POST("/skill/level/save", ginx.B[SaveLevelReq](h.SaveLevel))
	server.POST("/skill/admin/list", ginx.B[Page](h.List))
	server.POST("/skill/delete", ginx.B[Sid](h.Delete))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	skill := req.Skill.toDomain()
	if !skill.Category.Valid() {
		return ginx.Result{
			Code: errs.InvalidCategory.Code,
			Msg:  errs.InvalidCategory.Msg,
		}, nil
	}
	if skill.Difficulty < 1 || skill.Difficulty > 4 {
		return ginx.Result{
			Code: errs.InvalidLevel.Code,
			Msg:  errs.InvalidLevel.Msg,
		}, nil
	}
	id, err := h.svc.Save(ctx, skill)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) SaveLevel(ctx *ginx.Context, req SaveLevelReq) (ginx.Result, error) {
	level := req.Level.toDomain()
	if level.Rank < 1 || level.Rank > 4 {
		return ginx.Result{
			Code: errs.InvalidLevel.Code,
			Msg:  errs.InvalidLevel.Msg,
		}, nil
	}
	id, err := h.svc.SaveLevel(ctx, level)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	skills, total, err := h.svc.List(ctx, req.Offset, req.Limit, "", 0)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SkillList{
			Total: total,
			Skills: slice.Map(skills, func(idx int, src domain.Skill) Skill {
				return newSkill(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req Sid) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Sid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
