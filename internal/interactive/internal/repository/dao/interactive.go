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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type InteractiveDAO interface {
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	// CollectToggle 收藏或者取消收藏，返回执行之后是否处于收藏状态
	CollectToggle(ctx context.Context, cb UserCollectionBiz) (bool, error)
	GetCollectInfo(ctx context.Context,
		biz string, id int64, uid int64) (UserCollectionBiz, error)
	Get(ctx context.Context, biz string, id int64) (Interactive, error)
	GetByIds(ctx context.Context, biz string, ids []int64) ([]Interactive, error)
	GetUserCollects(ctx context.Context, uid int64, biz string, ids []int64) ([]UserCollectionBiz, error)
	// CollectionList 用户在某个 biz 下的收藏明细，按收藏时间倒序
	CollectionList(ctx context.Context, uid int64, biz string, offset, limit int) ([]UserCollectionBiz, error)
	// ViewCnts 某个 biz 下全部资源的浏览计数，供热度类定时任务使用
	ViewCnts(ctx context.Context, biz string) ([]Interactive, error)
}

type GORMInteractiveDAO struct {
	db *egorm.Component
}

func NewInteractiveDAO(db *egorm.Component) *GORMInteractiveDAO {
	return &GORMInteractiveDAO{
		db: db,
	}
}

func (g *GORMInteractiveDAO) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"view_cnt": gorm.Expr("`view_cnt` + 1"),
			"utime":    now,
		}),
	}).Create(&Interactive{
		Biz:     biz,
		BizId:   bizId,
		ViewCnt: 1,
		Ctime:   now,
		Utime:   now,
	}).Error
}

func (g *GORMInteractiveDAO) CollectToggle(ctx context.Context, cb UserCollectionBiz) (bool, error) {
	var collected bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("biz = ? AND biz_id = ? AND uid = ?", cb.Biz, cb.BizId, cb.Uid).
			First(&UserCollectionBiz{}).Error
		switch {
		case err == nil:
			collected = false
			return g.deleteCollectionInfo(tx, cb.Biz, cb.BizId, cb.Uid)
		case errors.Is(err, gorm.ErrRecordNotFound):
			collected = true
			return g.insertCollectionBiz(tx, cb)
		default:
			return err
		}
	})
	return collected, err
}

func (g *GORMInteractiveDAO) deleteCollectionInfo(tx *gorm.DB, biz string, id int64, uid int64) error {
	now := time.Now().UnixMilli()
	res := tx.Model(&UserCollectionBiz{}).
		Where("uid=? AND biz_id = ? AND biz=?", uid, id, biz).
		Delete(&UserCollectionBiz{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return nil
	}
	return tx.Model(&Interactive{}).
		Where("biz =? AND biz_id=? AND collect_cnt > 0", biz, id).
		Updates(map[string]any{
			"collect_cnt": gorm.Expr("`collect_cnt` - 1"),
			"utime":       now,
		}).Error
}

func (g *GORMInteractiveDAO) insertCollectionBiz(tx *gorm.DB, cb UserCollectionBiz) error {
	now := time.Now().UnixMilli()
	cb.Ctime = now
	cb.Utime = now
	err := tx.Create(&cb).Error
	if err != nil {
		return err
	}
	return tx.Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			"collect_cnt": gorm.Expr("`collect_cnt` + 1"),
			"utime":       now,
		}),
	}).Create(&Interactive{
		Biz:        cb.Biz,
		BizId:      cb.BizId,
		CollectCnt: 1,
		Ctime:      now,
		Utime:      now,
	}).Error
}

func (g *GORMInteractiveDAO) GetCollectInfo(ctx context.Context, biz string, id int64, uid int64) (UserCollectionBiz, error) {
	var res UserCollectionBiz
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ? AND uid = ?", biz, id, uid).
		First(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) Get(ctx context.Context, biz string, id int64) (Interactive, error) {
	var res Interactive
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id = ?", biz, id).
		First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Interactive{}, ErrRecordNotFound
	}
	return res, err
}

func (g *GORMInteractiveDAO) GetByIds(ctx context.Context, biz string, ids []int64) ([]Interactive, error) {
	var res []Interactive
	err := g.db.WithContext(ctx).
		Where("biz = ? AND biz_id IN ?", biz, ids).
		Order("biz_id desc").
		Find(&res).Error
	return res, err
}

func (g *GORMInteractiveDAO) GetUserCollects(ctx context.Context, uid int64, biz string, ids []int64) ([]UserCollectionBiz, error) {
	var collects []UserCollectionBiz
	err := g.db.WithContext(ctx).
		Model(&UserCollectionBiz{}).
		Where("biz = ? AND biz_id in ? and uid = ?", biz, ids, uid).Scan(&collects).Error
	return collects, err
}

func (g *GORMInteractiveDAO) CollectionList(ctx context.Context, uid int64, biz string, offset, limit int) ([]UserCollectionBiz, error) {
	records := make([]UserCollectionBiz, 0, 32)
	err := g.db.WithContext(ctx).
		Model(&UserCollectionBiz{}).
		Where("uid = ? AND biz = ?", uid, biz).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (g *GORMInteractiveDAO) ViewCnts(ctx context.Context, biz string) ([]Interactive, error) {
	var res []Interactive
	err := g.db.WithContext(ctx).
		Where("biz = ? AND view_cnt > 0", biz).
		Find(&res).Error
	return res, err
}
