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
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/notification")
	g.POST("/list", ginx.BS[Page](h.List))
	g.POST("/read", ginx.BS[ReadReq](h.Read))
	g.POST("/read-all", ginx.S(h.ReadAll))
}

func (h *Handler) List(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	ns, total, unread, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: NotificationList{
			Total:  total,
			Unread: unread,
			Notifications: slice.Map(ns, func(idx int, src domain.Notification) Notification {
				return newNotification(src)
			}),
		},
	}, nil
}

func (h *Handler) Read(ctx *ginx.Context, req ReadReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Read(ctx, sess.Claims().Uid, req.Ids)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ReadAll(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.ReadAll(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
