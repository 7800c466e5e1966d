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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type NotificationDAO interface {
	Create(ctx context.Context, n Notification) (int64, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
	Total(ctx context.Context, uid int64) (int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	// MarkRead 只会改当前用户自己的未读消息，返回实际标记的条数
	MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error)
	MarkAllRead(ctx context.Context, uid int64) (int64, error)
}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewNotificationDAO(db *egorm.Component) *GORMNotificationDAO {
	return &GORMNotificationDAO{
		db: db,
	}
}

func (g *GORMNotificationDAO) Create(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime = now
	n.Utime = now
	err := g.db.WithContext(ctx).Create(&n).Error
	return n.Id, err
}

func (g *GORMNotificationDAO) List(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMNotificationDAO) Total(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).
		Model(&Notification{}).
		Where("uid = ?", uid).
		Count(&res).Error
	return res, err
}

func (g *GORMNotificationDAO) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).
		Model(&Notification{}).
		Where("uid = ? AND has_read = ?", uid, false).
		Count(&res).Error
	return res, err
}

func (g *GORMNotificationDAO) MarkRead(ctx context.Context, uid int64, ids []int64) (int64, error) {
	res := g.db.WithContext(ctx).
		Model(&Notification{}).
		Where("uid = ? AND id IN ? AND has_read = ?", uid, ids, false).
		Updates(map[string]any{
			"has_read": true,
			"utime":    time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *GORMNotificationDAO) MarkAllRead(ctx context.Context, uid int64) (int64, error) {
	res := g.db.WithContext(ctx).
		Model(&Notification{}).
		Where("uid = ? AND has_read = ?", uid, false).
		Updates(map[string]any{
			"has_read": true,
			"utime":    time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}
