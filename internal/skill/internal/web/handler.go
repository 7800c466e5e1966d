package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/errs"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler C 端技能目录和技能档案
type Handler struct {
	svc    service.SkillService
	logger *elog.Component
}

func NewHandler(svc service.SkillService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/skill/list", ginx.B[ListReq](h.List))
	server.POST("/skill/detail", ginx.B[Sid](h.Detail))
	server.POST("/skill/popular", ginx.B[PopularReq](h.Popular))
	server.GET("/skill/levels", ginx.W(h.Levels))
	server.GET("/skill/categories", ginx.W(h.Categories))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/skill/user/add", ginx.BS[AddUserSkillReq](h.AddUserSkill))
	server.POST("/skill/user/update", ginx.BS[AddUserSkillReq](h.UpdateUserSkill))
	server.POST("/skill/user/delete", ginx.BS[RemoveUserSkillReq](h.RemoveUserSkill))
	server.GET("/skill/user/list", ginx.S(h.UserSkills))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	category := domain.Category(req.Category)
	if req.Category != "" && !category.Valid() {
		return ginx.Result{
			Code: errs.InvalidCategory.Code,
			Msg:  errs.InvalidCategory.Msg,
		}, nil
	}
	skills, total, err := h.svc.List(ctx, req.Offset, req.Limit, category, req.Difficulty)
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

func (h *Handler) Detail(ctx *ginx.Context, req Sid) (ginx.Result, error) {
	skill, err := h.svc.Detail(ctx, req.Sid)
	switch {
	case errors.Is(err, service.ErrSkillNotFound):
		return skillNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: newSkill(skill),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Popular(ctx *ginx.Context, req PopularReq) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	skills, err := h.svc.Popular(ctx, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(skills, func(idx int, src domain.Skill) Skill {
			return newSkill(src)
		}),
	}, nil
}

func (h *Handler) Levels(ctx *ginx.Context) (ginx.Result, error) {
	levels, err := h.svc.Levels(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(levels, func(idx int, src domain.SkillLevel) SkillLevel {
			return newSkillLevel(src)
		}),
	}, nil
}

func (h *Handler) Categories(ctx *ginx.Context) (ginx.Result, error) {
	counts, err := h.svc.Categories(ctx)
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

func (h *Handler) AddUserSkill(ctx *ginx.Context, req AddUserSkillReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.AddUserSkill(ctx, domain.UserSkill{
		Uid:    sess.Claims().Uid,
		Skill:  domain.Skill{ID: req.Sid},
		Level:  domain.SkillLevel{ID: req.Slid},
		Status: domain.UserSkillStatus(req.Status),
	})
	switch {
	case errors.Is(err, service.ErrUserSkillDuplicate):
		return userSkillDuplicateErrResult, nil
	case errors.Is(err, service.ErrSkillNotFound):
		return skillNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: id,
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) UpdateUserSkill(ctx *ginx.Context, req AddUserSkillReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateUserSkill(ctx, domain.UserSkill{
		Uid:    sess.Claims().Uid,
		Skill:  domain.Skill{ID: req.Sid},
		Level:  domain.SkillLevel{ID: req.Slid},
		Status: domain.UserSkillStatus(req.Status),
	})
	switch {
	case errors.Is(err, service.ErrSkillNotFound):
		return userSkillNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Msg: "OK",
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) RemoveUserSkill(ctx *ginx.Context, req RemoveUserSkillReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemoveUserSkill(ctx, sess.Claims().Uid, req.Sid)
	switch {
	case errors.Is(err, service.ErrSkillNotFound):
		return userSkillNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Msg: "OK",
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) UserSkills(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uss, err := h.svc.UserSkills(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(uss, func(idx int, src domain.UserSkill) UserSkill {
			return newUserSkill(src)
		}),
	}, nil
}
