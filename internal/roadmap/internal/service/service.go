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

package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrRoadmapNotFound = repository.ErrRoadmapNotFound
	ErrItemNotFound    = errors.New("学习项不存在")
	// ErrInvalidState 状态机不允许的流转
	ErrInvalidState = repository.ErrInvalidState
	// ErrInvalidDuration 完成必须带上合法的实际周数
	ErrInvalidDuration = errors.New("实际学习周数不合法")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/roadmap.mock.go -package=roadmapmocks -typed Service
type Service interface {
	// SelectTarget 选定目标方向：做一次差距分析、生成并激活学习路线、
	// 回写用户档案。路线和学习项的落库是一个事务
	SelectTarget(ctx context.Context, uid, rid int64) (career.Analysis, domain.Roadmap, error)
	// Generate 重新生成某个方向的路线。(uid, rid) 已存在时原地替换学习项
	Generate(ctx context.Context, uid, rid int64) (domain.Roadmap, error)

	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Roadmap, int64, error)
	// Detail 带学习项、进度和预计完成时间，只能看自己的
	Detail(ctx context.Context, uid, id int64) (domain.Roadmap, error)
	// Active 当前激活的路线，没有返回 ErrRoadmapNotFound
	Active(ctx context.Context, uid int64) (domain.Roadmap, error)
	Activate(ctx context.Context, uid, id int64) error
	// Archive 归档后的路线不再接受学习项操作
	Archive(ctx context.Context, uid, id int64) error

	// StartItem pending -> in_progress
	StartItem(ctx context.Context, uid, id int64) error
	// CompleteItem in_progress -> completed，回写技能档案，
	// 全部完成的时候发完成通知
	CompleteItem(ctx context.Context, uid, id int64, actualWeeks int) error
	// ResetItem in_progress -> pending，completed 是终态不允许重置
	ResetItem(ctx context.Context, uid, id int64) error
	// Next 激活路线上序号最小的待学项
	Next(ctx context.Context, uid int64) (domain.NextItem, error)

	// Stats 全站路线进度，统计用
	Stats(ctx context.Context) (domain.Stats, error)
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Roadmap, int64, error) {
	roadmaps, err := s.repo.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUid(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	for i := range roadmaps {
		if err = s.fillProgress(ctx, &roadmaps[i]); err != nil {
			return nil, 0, err
		}
	}
	return roadmaps, total, nil
}

func (s *service) Detail(ctx context.Context, uid, id int64) (domain.Roadmap, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Roadmap{}, err
	}
	if rm.Uid != uid {
		return domain.Roadmap{}, ErrRoadmapNotFound
	}
	var completed, remainingWeeks int
	for _, item := range rm.Items {
		if item.Status == domain.ItemStatusCompleted {
			completed++
			continue
		}
		remainingWeeks += item.EstimatedWeeks
	}
	if len(rm.Items) > 0 {
		rm.Progress = math.Round(1000*float64(completed)/float64(len(rm.Items))) / 10
	}
	rm.EstimatedDone = time.Now().Add(time.Duration(remainingWeeks) * 7 * 24 * time.Hour)
	return rm, nil
}

func (s *service) Active(ctx context.Context, uid int64) (domain.Roadmap, error) {
	rm, err := s.repo.ActiveByUid(ctx, uid)
	if err != nil {
		return domain.Roadmap{}, err
	}
	return s.Detail(ctx, uid, rm.ID)
}

func (s *service) Activate(ctx context.Context, uid, id int64) error {
	return s.repo.Activate(ctx, uid, id)
}

func (s *service) Archive(ctx context.Context, uid, id int64) error {
	return s.repo.Archive(ctx, uid, id)
}

func (s *service) StartItem(ctx context.Context, uid, id int64) error {
	_, _, err := s.ownedItem(ctx, uid, id)
	if err != nil {
		return err
	}
	return s.repo.StartItem(ctx, id)
}

func (s *service) CompleteItem(ctx context.Context, uid, id int64, actualWeeks int) error {
	if actualWeeks <= 0 {
		return ErrInvalidDuration
	}
	item, rm, err := s.ownedItem(ctx, uid, id)
	if err != nil {
		return err
	}
	if err = s.repo.CompleteItem(ctx, id, actualWeeks); err != nil {
		return err
	}
	// 学完回写技能档案，等级只升不降。
	// 学习项已经完成，档案回写失败只记日志
	if err = s.skillSvc.SaveAcquired(ctx, uid, item.Sid, item.TargetLevel.ToUint8()); err != nil {
		s.logger.Error("回写技能档案失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.Int64("sid", item.Sid),
		)
	}
	s.notifyIfCompleted(ctx, rm)
	return nil
}

func (s *service) ResetItem(ctx context.Context, uid, id int64) error {
	item, _, err := s.ownedItem(ctx, uid, id)
	if err != nil {
		return err
	}
	// 终态单独报出来，和"不是 in_progress"区分在 DAO 做不到
	if item.Status == domain.ItemStatusCompleted {
		return ErrInvalidState
	}
	return s.repo.ResetItem(ctx, id)
}

func (s *service) Next(ctx context.Context, uid int64) (domain.NextItem, error) {
	rm, err := s.repo.ActiveByUid(ctx, uid)
	if err != nil {
		return domain.NextItem{}, err
	}
	item, err := s.repo.FirstPendingItem(ctx, rm.ID)
	switch {
	case errors.Is(err, repository.ErrRoadmapNotFound):
		// 没有待学的项了，这是正常结果不是错误
		return domain.NextItem{Done: true}, nil
	case err != nil:
		return domain.NextItem{}, err
	default:
		return domain.NextItem{Item: item}, nil
	}
}

func (s *service) Stats(ctx context.Context) (domain.Stats, error) {
	total, err := s.repo.Total(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	completed, items, err := s.repo.AllItemProgress(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		Roadmaps:       total,
		ItemsCompleted: completed,
		ItemsTotal:     items,
	}, nil
}

// ownedItem 取学习项并校验归属和路线状态
func (s *service) ownedItem(ctx context.Context, uid, id int64) (domain.Item, domain.Roadmap, error) {
	item, err := s.repo.GetItem(ctx, id)
	if errors.Is(err, repository.ErrRoadmapNotFound) {
		return domain.Item{}, domain.Roadmap{}, ErrItemNotFound
	}
	if err != nil {
		return domain.Item{}, domain.Roadmap{}, err
	}
	rm, err := s.repo.GetByID(ctx, item.Rmid)
	if err != nil {
		return domain.Item{}, domain.Roadmap{}, err
	}
	if rm.Uid != uid {
		return domain.Item{}, domain.Roadmap{}, ErrItemNotFound
	}
	if rm.Status == domain.StatusArchived {
		return domain.Item{}, domain.Roadmap{}, ErrInvalidState
	}
	return item, rm, nil
}

func (s *service) fillProgress(ctx context.Context, rm *domain.Roadmap) error {
	completed, total, err := s.repo.ItemProgress(ctx, rm.ID)
	if err != nil {
		return err
	}
	if total > 0 {
		rm.Progress = math.Round(1000*float64(completed)/float64(total)) / 10
	}
	return nil
}
