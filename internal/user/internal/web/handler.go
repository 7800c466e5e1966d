package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/user/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/user")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/interests", ginx.BS[InterestsReq](h.UpdateInterests))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:              uid,
		Nickname:        req.Nickname,
		Avatar:          req.Avatar,
		Bio:             req.Bio,
		CurrentTitle:    req.CurrentTitle,
		ExperienceYears: req.ExperienceYears,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) UpdateInterests(ctx *ginx.Context, req InterestsReq, sess session.Session) (ginx.Result, error) {
	for _, it := range req.Interests {
		if !domain.Interest(it).Valid() {
			return invalidInterestErrResult, nil
		}
	}
	err := h.userSvc.UpdateInterests(ctx, sess.Claims().Uid, req.Interests)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
