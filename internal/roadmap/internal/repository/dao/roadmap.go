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
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrInvalidState 状态机不允许的流转，比如 start 一个不是 pending 的项
	ErrInvalidState = errors.New("当前状态不允许这个操作")
)

const (
	StatusNormal   uint8 = 1
	StatusArchived uint8 = 2

	ItemStatusPending    uint8 = 1
	ItemStatusInProgress uint8 = 2
	ItemStatusCompleted  uint8 = 3
)

type RoadmapDAO interface {
	// Save 整条路线连同学习项一个事务落库，并激活它：
	// 同一个 (uid, rid) 重复生成会原地替换学习项，SN 和 id 保持不变；
	// 同一事务里取消该用户其他路线的激活，任何时刻至多一条激活。
	Save(ctx context.Context, rm Roadmap, items []RoadmapItem) (int64, error)
	GetByID(ctx context.Context, id int64) (Roadmap, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Roadmap, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	ActiveByUid(ctx context.Context, uid int64) (Roadmap, error)
	// Activate 事务内先清掉其他路线的激活位再设置目标，重复激活是幂等的
	Activate(ctx context.Context, uid, id int64) error
	// Archive 归档并取消激活
	Archive(ctx context.Context, uid, id int64) error
	// Count 全站路线总数，统计用
	Count(ctx context.Context) (int64, error)

	ItemsByRmid(ctx context.Context, rmid int64) ([]RoadmapItem, error)
	GetItem(ctx context.Context, id int64) (RoadmapItem, error)
	// StartItem pending -> in_progress，状态不对返回 ErrInvalidState
	StartItem(ctx context.Context, id int64) error
	// CompleteItem in_progress -> completed，completed 是终态
	CompleteItem(ctx context.Context, id int64, actualWeeks int) error
	// ResetItem in_progress -> pending，已完成的项不允许重置
	ResetItem(ctx context.Context, id int64) error
	// FirstPendingItem 激活路线上序号最小的待学项
	FirstPendingItem(ctx context.Context, rmid int64) (RoadmapItem, error)
	// CountItems 按状态统计一条路线的学习项
	CountItems(ctx context.Context, rmid int64) (completed int64, total int64, err error)
	// CountAllItems 全站学习项的完成情况
	CountAllItems(ctx context.Context) (completed int64, total int64, err error)
}

type GORMRoadmapDAO struct {
	db *egorm.Component
}

func NewRoadmapDAO(db *egorm.Component) RoadmapDAO {
	return &GORMRoadmapDAO{db: db}
}

func (g *GORMRoadmapDAO) Save(ctx context.Context, rm Roadmap, items []RoadmapItem) (int64, error) {
	now := time.Now().UnixMilli()
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Roadmap
		err := tx.Where("uid = ? AND rid = ?", rm.Uid, rm.Rid).First(&existing).Error
		switch {
		case err == nil:
			// 重复生成：行身份不变，学习项整组替换
			id = existing.Id
			err = tx.Model(&Roadmap{}).Where("id = ?", id).
				Updates(map[string]any{
					"role_title":  rm.RoleTitle,
					"status":      StatusNormal,
					"total_weeks": rm.TotalWeeks,
					"utime":       now,
				}).Error
			if err != nil {
				return err
			}
			err = tx.Where("rmid = ?", id).Delete(&RoadmapItem{}).Error
			if err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rm.Ctime = now
			rm.Utime = now
			if err = tx.Create(&rm).Error; err != nil {
				return err
			}
			id = rm.Id
		default:
			return err
		}
		for i := range items {
			items[i].Id = 0
			items[i].Rmid = id
			items[i].Status = ItemStatusPending
			items[i].Ctime = now
			items[i].Utime = now
		}
		if len(items) > 0 {
			if err = tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return g.activate(tx, rm.Uid, id, now)
	})
	return id, err
}

// activate 在一个已开启的事务里切换激活位，中间不会出现零条或多条激活
func (g *GORMRoadmapDAO) activate(tx *gorm.DB, uid, id int64, now int64) error {
	err := tx.Model(&Roadmap{}).
		Where("uid = ? AND id != ? AND active = ?", uid, id, true).
		Updates(map[string]any{"active": false, "utime": now}).Error
	if err != nil {
		return err
	}
	return tx.Model(&Roadmap{}).Where("id = ?", id).
		Updates(map[string]any{"active": true, "utime": now}).Error
}

func (g *GORMRoadmapDAO) GetByID(ctx context.Context, id int64) (Roadmap, error) {
	var rm Roadmap
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&rm).Error
	return rm, err
}

func (g *GORMRoadmapDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Roadmap, error) {
	var res []Roadmap
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Offset(offset).Limit(limit).
		Order("active DESC, utime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMRoadmapDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Roadmap{}).
		Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *GORMRoadmapDAO) ActiveByUid(ctx context.Context, uid int64) (Roadmap, error) {
	var rm Roadmap
	err := g.db.WithContext(ctx).
		Where("uid = ? AND active = ?", uid, true).
		First(&rm).Error
	return rm, err
}

func (g *GORMRoadmapDAO) Activate(ctx context.Context, uid, id int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rm Roadmap
		err := tx.Where("id = ? AND uid = ?", id, uid).First(&rm).Error
		if err != nil {
			return err
		}
		if rm.Status != StatusNormal {
			return ErrInvalidState
		}
		return g.activate(tx, uid, id, now)
	})
}

func (g *GORMRoadmapDAO) Archive(ctx context.Context, uid, id int64) error {
	res := g.db.WithContext(ctx).Model(&Roadmap{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"status": StatusArchived,
			"active": false,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMRoadmapDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Roadmap{}).Count(&count).Error
	return count, err
}

func (g *GORMRoadmapDAO) ItemsByRmid(ctx context.Context, rmid int64) ([]RoadmapItem, error) {
	var res []RoadmapItem
	err := g.db.WithContext(ctx).
		Where("rmid = ?", rmid).
		Order("sequence ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMRoadmapDAO) GetItem(ctx context.Context, id int64) (RoadmapItem, error) {
	var item RoadmapItem
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	return item, err
}

func (g *GORMRoadmapDAO) StartItem(ctx context.Context, id int64) error {
	now := time.Now().UnixMilli()
	return g.transitItem(ctx, id, ItemStatusPending, map[string]any{
		"status":     ItemStatusInProgress,
		"start_time": now,
		"utime":      now,
	})
}

func (g *GORMRoadmapDAO) CompleteItem(ctx context.Context, id int64, actualWeeks int) error {
	now := time.Now().UnixMilli()
	return g.transitItem(ctx, id, ItemStatusInProgress, map[string]any{
		"status":       ItemStatusCompleted,
		"actual_weeks": actualWeeks,
		"end_time":     now,
		"utime":        now,
	})
}

func (g *GORMRoadmapDAO) ResetItem(ctx context.Context, id int64) error {
	// completed 是终态不能回退，pending 重置等于没重置，也放过去
	res := g.db.WithContext(ctx).Model(&RoadmapItem{}).
		Where("id = ? AND status IN ?", id,
			[]uint8{ItemStatusPending, ItemStatusInProgress}).
		Updates(map[string]any{
			"status":     ItemStatusPending,
			"start_time": 0,
			"utime":      time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidState
	}
	return nil
}

// transitItem 状态作为条件带进 UPDATE，并发时也只会有一个成功
func (g *GORMRoadmapDAO) transitItem(ctx context.Context, id int64, from uint8, updates map[string]any) error {
	res := g.db.WithContext(ctx).Model(&RoadmapItem{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidState
	}
	return nil
}

func (g *GORMRoadmapDAO) FirstPendingItem(ctx context.Context, rmid int64) (RoadmapItem, error) {
	var item RoadmapItem
	err := g.db.WithContext(ctx).
		Where("rmid = ? AND status = ?", rmid, ItemStatusPending).
		Order("sequence ASC").
		First(&item).Error
	return item, err
}

func (g *GORMRoadmapDAO) CountItems(ctx context.Context, rmid int64) (int64, int64, error) {
	return g.countItems(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("rmid = ?", rmid)
	})
}

func (g *GORMRoadmapDAO) CountAllItems(ctx context.Context) (int64, int64, error) {
	return g.countItems(ctx, func(db *gorm.DB) *gorm.DB {
		return db
	})
}

func (g *GORMRoadmapDAO) countItems(ctx context.Context, cond func(db *gorm.DB) *gorm.DB) (int64, int64, error) {
	var rows []struct {
		Status uint8
		Cnt    int64
	}
	err := cond(g.db.WithContext(ctx).Model(&RoadmapItem{})).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return 0, 0, err
	}
	var completed, total int64
	for _, row := range rows {
		total += row.Cnt
		if row.Status == ItemStatusCompleted {
			completed += row.Cnt
		}
	}
	return completed, total, nil
}
