package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理端维护方向、技能要求和测评题库
type AdminHandler struct {
	roleSvc service.RoleService
	quizSvc service.DiscoveryService
}

func NewAdminHandler(roleSvc service.RoleService,
	quizSvc service.DiscoveryService) *AdminHandler {
	return &AdminHandler{
		roleSvc: roleSvc,
		quizSvc: quizSvc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/career/save", ginx.B[SaveReq](h.Save))
	server.POST("/career/admin/list", ginx.B[Page](h.List))
	server.POST("/career/requirement/save", ginx.B[SaveRequirementReq](h.SaveRequirement))
	server.POST("/career/requirement/delete", ginx.B[IDReq](h.DeleteRequirement))
	server.POST("/career/question/save", ginx.B[SaveQuestionReq](h.SaveQuestion))
	server.POST("/career/question/delete", ginx.B[IDReq](h.DeleteQuestion))
	server.GET("/career/question/list", ginx.W(h.Questions))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	role := req.Role.toDomain()
	if !role.Category.Valid() {
		return invalidCategoryErrResult, nil
	}
	id, err := h.roleSvc.Save(ctx, role)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	roles, total, err := h.roleSvc.AdminList(ctx, req.Offset, req.Limit)
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

func (h *AdminHandler) SaveRequirement(ctx *ginx.Context, req SaveRequirementReq) (ginx.Result, error) {
	id, err := h.roleSvc.SaveRequirement(ctx, req.Requirement.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidRequirement):
		return invalidRequirementErrResult, nil
	case errors.Is(err, service.ErrRoleNotFound):
		return roleNotFoundErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: id,
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) DeleteRequirement(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.roleSvc.DeleteRequirement(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *AdminHandler) SaveQuestion(ctx *ginx.Context, req SaveQuestionReq) (ginx.Result, error) {
	id, err := h.quizSvc.SaveQuestion(ctx, req.Question.toDomain())
	switch {
	case errors.Is(err, service.ErrInvalidQuestion):
		return invalidAnswerErrResult, nil
	case err == nil:
		return ginx.Result{
			Data: id,
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) DeleteQuestion(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.quizSvc.DeleteQuestion(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *AdminHandler) Questions(ctx *ginx.Context) (ginx.Result, error) {
	qs, err := h.quizSvc.AdminQuestions(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(qs, func(idx int, src domain.Question) Question {
			return newQuestion(src, true)
		}),
	}, nil
}
