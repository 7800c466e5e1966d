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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/repository/dao"
)

type NotificationRepo interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	Total(ctx context.Context, uid int64) (int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, uid int64, ids []int64) error
	MarkAllRead(ctx context.Context, uid int64) error
}

type notificationRepo struct {
	dao dao.NotificationDAO
}

func NewNotificationRepo(d dao.NotificationDAO) NotificationRepo {
	return &notificationRepo{
		dao: d,
	}
}

func (n *notificationRepo) Create(ctx context.Context, notification domain.Notification) (int64, error) {
	return n.dao.Create(ctx, n.toEntity(notification))
}

func (n *notificationRepo) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := n.dao.List(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(idx int, src dao.Notification) domain.Notification {
		return n.toDomain(src)
	}), nil
}

func (n *notificationRepo) Total(ctx context.Context, uid int64) (int64, error) {
	return n.dao.Total(ctx, uid)
}

func (n *notificationRepo) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return n.dao.UnreadCount(ctx, uid)
}

func (n *notificationRepo) MarkRead(ctx context.Context, uid int64, ids []int64) error {
	_, err := n.dao.MarkRead(ctx, uid, ids)
	return err
}

func (n *notificationRepo) MarkAllRead(ctx context.Context, uid int64) error {
	_, err := n.dao.MarkAllRead(ctx, uid)
	return err
}

func (n *notificationRepo) toEntity(notification domain.Notification) dao.Notification {
	return dao.Notification{
		Id:      notification.Id,
		Uid:     notification.Uid,
		Biz:     notification.Biz,
		BizId:   notification.BizId,
		Title:   notification.Title,
		Content: notification.Content,
		HasRead: notification.Read,
	}
}

func (n *notificationRepo) toDomain(notification dao.Notification) domain.Notification {
	return domain.Notification{
		Id:      notification.Id,
		Uid:     notification.Uid,
		Biz:     notification.Biz,
		BizId:   notification.BizId,
		Title:   notification.Title,
		Content: notification.Content,
		Read:    notification.HasRead,
		Ctime:   time.UnixMilli(notification.Ctime),
	}
}
