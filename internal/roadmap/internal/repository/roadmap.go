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
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/repository/dao"
)

var (
	ErrRoadmapNotFound = dao.ErrRecordNotFound
	ErrInvalidState    = dao.ErrInvalidState
)

type RoadmapRepo interface {
	// Save 落库并激活，重复生成原地替换学习项，返回路线 id
	Save(ctx context.Context, rm domain.Roadmap) (int64, error)
	// GetByID 学习项已按 sequence 排好
	GetByID(ctx context.Context, id int64) (domain.Roadmap, error)
	// ListByUid 列表不带学习项
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Roadmap, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	ActiveByUid(ctx context.Context, uid int64) (domain.Roadmap, error)
	Activate(ctx context.Context, uid, id int64) error
	Archive(ctx context.Context, uid, id int64) error
	Total(ctx context.Context) (int64, error)

	GetItem(ctx context.Context, id int64) (domain.Item, error)
	StartItem(ctx context.Context, id int64) error
	CompleteItem(ctx context.Context, id int64, actualWeeks int) error
	ResetItem(ctx context.Context, id int64) error
	FirstPendingItem(ctx context.Context, rmid int64) (domain.Item, error)
	// ItemProgress 一条路线的 (已完成, 总数)
	ItemProgress(ctx context.Context, rmid int64) (int64, int64, error)
	// AllItemProgress 全站学习项的 (已完成, 总数)，统计用
	AllItemProgress(ctx context.Context) (int64, int64, error)
}

type roadmapRepo struct {
	roadmapDao dao.RoadmapDAO
}

func NewRoadmapRepo(roadmapDao dao.RoadmapDAO) RoadmapRepo {
	return &roadmapRepo{roadmapDao: roadmapDao}
}

func (r *roadmapRepo) Save(ctx context.Context, rm domain.Roadmap) (int64, error) {
	items := slice.Map(rm.Items, func(idx int, src domain.Item) dao.RoadmapItem {
		return r.itemToEntity(src)
	})
	return r.roadmapDao.Save(ctx, dao.Roadmap{
		Id:         rm.ID,
		SN:         rm.SN,
		Uid:        rm.Uid,
		Rid:        rm.Rid,
		RoleTitle:  rm.RoleTitle,
		Status:     rm.Status.ToUint8(),
		Active:     rm.Active,
		TotalWeeks: rm.TotalWeeks,
	}, items)
}

func (r *roadmapRepo) GetByID(ctx context.Context, id int64) (domain.Roadmap, error) {
	entity, err := r.roadmapDao.GetByID(ctx, id)
	if err != nil {
		return domain.Roadmap{}, err
	}
	items, err := r.roadmapDao.ItemsByRmid(ctx, id)
	if err != nil {
		return domain.Roadmap{}, err
	}
	res := r.toDomain(entity)
	res.Items = slice.Map(items, func(idx int, src dao.RoadmapItem) domain.Item {
		return r.itemToDomain(src)
	})
	return res, nil
}

func (r *roadmapRepo) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Roadmap, error) {
	res, err := r.roadmapDao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Roadmap) domain.Roadmap {
		return r.toDomain(src)
	}), nil
}

func (r *roadmapRepo) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.roadmapDao.CountByUid(ctx, uid)
}

func (r *roadmapRepo) ActiveByUid(ctx context.Context, uid int64) (domain.Roadmap, error) {
	entity, err := r.roadmapDao.ActiveByUid(ctx, uid)
	if err != nil {
		return domain.Roadmap{}, err
	}
	return r.toDomain(entity), nil
}

func (r *roadmapRepo) Activate(ctx context.Context, uid, id int64) error {
	return r.roadmapDao.Activate(ctx, uid, id)
}

func (r *roadmapRepo) Archive(ctx context.Context, uid, id int64) error {
	return r.roadmapDao.Archive(ctx, uid, id)
}

func (r *roadmapRepo) Total(ctx context.Context) (int64, error) {
	return r.roadmapDao.Count(ctx)
}

func (r *roadmapRepo) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	item, err := r.roadmapDao.GetItem(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	return r.itemToDomain(item), nil
}

func (r *roadmapRepo) StartItem(ctx context.Context, id int64) error {
	return r.roadmapDao.StartItem(ctx, id)
}

func (r *roadmapRepo) CompleteItem(ctx context.Context, id int64, actualWeeks int) error {
	return r.roadmapDao.CompleteItem(ctx, id, actualWeeks)
}

func (r *roadmapRepo) ResetItem(ctx context.Context, id int64) error {
	return r.roadmapDao.ResetItem(ctx, id)
}

func (r *roadmapRepo) FirstPendingItem(ctx context.Context, rmid int64) (domain.Item, error) {
	item, err := r.roadmapDao.FirstPendingItem(ctx, rmid)
	if err != nil {
		return domain.Item{}, err
	}
	return r.itemToDomain(item), nil
}

func (r *roadmapRepo) ItemProgress(ctx context.Context, rmid int64) (int64, int64, error) {
	return r.roadmapDao.CountItems(ctx, rmid)
}

func (r *roadmapRepo) AllItemProgress(ctx context.Context) (int64, int64, error) {
	return r.roadmapDao.CountAllItems(ctx)
}

func (r *roadmapRepo) toDomain(rm dao.Roadmap) domain.Roadmap {
	return domain.Roadmap{
		ID:         rm.Id,
		SN:         rm.SN,
		Uid:        rm.Uid,
		Rid:        rm.Rid,
		RoleTitle:  rm.RoleTitle,
		Status:     domain.Status(rm.Status),
		Active:     rm.Active,
		TotalWeeks: rm.TotalWeeks,
		Ctime:      time.UnixMilli(rm.Ctime),
		Utime:      time.UnixMilli(rm.Utime),
	}
}

func (r *roadmapRepo) itemToEntity(item domain.Item) dao.RoadmapItem {
	return dao.RoadmapItem{
		Id:             item.ID,
		Rmid:           item.Rmid,
		Sequence:       item.Sequence,
		Sid:            item.Sid,
		Name:           item.Name,
		Category:       item.Category,
		TargetRank:     item.TargetLevel.ToUint8(),
		Status:         item.Status.ToUint8(),
		Priority:       item.Priority.ToUint8(),
		EstimatedWeeks: item.EstimatedWeeks,
		ActualWeeks:    item.ActualWeeks,
	}
}

func (r *roadmapRepo) itemToDomain(item dao.RoadmapItem) domain.Item {
	res := domain.Item{
		ID:             item.Id,
		Rmid:           item.Rmid,
		Sequence:       item.Sequence,
		Sid:            item.Sid,
		Name:           item.Name,
		Category:       item.Category,
		TargetLevel:    matching.Level(item.TargetRank),
		Status:         domain.ItemStatus(item.Status),
		Priority:       matching.Priority(item.Priority),
		EstimatedWeeks: item.EstimatedWeeks,
		ActualWeeks:    item.ActualWeeks,
	}
	if item.StartTime > 0 {
		res.StartTime = time.UnixMilli(item.StartTime)
	}
	if item.EndTime > 0 {
		res.EndTime = time.UnixMilli(item.EndTime)
	}
	return res
}
