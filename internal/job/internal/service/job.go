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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/job/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/job/internal/event"
	"github.com/ecodeclub/skillbridge/internal/job/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound  = repository.ErrJobNotFound
	ErrInvalidSkill = errors.New("无效的技能要求")
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks -typed Service
type Service interface {
	// Save 管理端保存岗位，上架和改动都会同步到搜索
	Save(ctx context.Context, j domain.Job) (int64, error)
	// Close 手动关闭，等同过期
	Close(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	AdminList(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	SaveSkill(ctx context.Context, sk domain.JobSkill) (int64, error)
	DeleteSkill(ctx context.Context, id int64) error

	PubList(ctx context.Context, offset, limit int, category string, remoteOnly bool) ([]domain.Job, int64, error)
	// Detail 草稿对外不可见，技能要求已填充
	Detail(ctx context.Context, id int64) (domain.Job, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Job, error)
	// Fresh 最近 days 天发布的在招岗位
	Fresh(ctx context.Context, days, limit int) ([]domain.Job, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)

	// Recommend 对全部在招岗位按匹配度排序，
	// 低于推荐阈值的滤掉，最多返回 limit 条
	Recommend(ctx context.Context, uid int64, limit int) ([]domain.Recommendation, error)
	// Match 用户和单个岗位的完整匹配结果，含缺口明细
	Match(ctx context.Context, uid, jid int64) (domain.Match, error)

	// CountActiveByRole 各方向的在招岗位数，方向热度任务用
	CountActiveByRole(ctx context.Context) (map[int64]int64, error)
	// CountSkillUsage 技能被多少个岗位要求，技能热度任务用
	CountSkillUsage(ctx context.Context) (map[int64]int64, error)
}

type service struct {
	repo        repository.JobRepo
	skillSvc    skill.Service
	userSvc     user.UserService
	engine      matching.Service
	params      matching.Params
	producer    event.SyncEventProducer
	logger      *elog.Component
	syncTimeout time.Duration
}

func NewService(repo repository.JobRepo,
	skillSvc skill.Service,
	userSvc user.UserService,
	engine matching.Service,
	params matching.Params,
	producer event.SyncEventProducer) Service {
	return &service{
		repo:        repo,
		skillSvc:    skillSvc,
		userSvc:     userSvc,
		engine:      engine,
		params:      params,
		producer:    producer,
		logger:      elog.DefaultLogger,
		syncTimeout: 10 * time.Second,
	}
}

func (s *service) Save(ctx context.Context, j domain.Job) (int64, error) {
	if j.PostedAt.IsZero() {
		j.PostedAt = time.Now()
	}
	id, err := s.repo.Save(ctx, j)
	if err == nil {
		go func() {
			s.syncJob(id)
		}()
	}
	return id, err
}

func (s *service) Close(ctx context.Context, id int64) error {
	err := s.repo.Close(ctx, id)
	if err == nil {
		go func() {
			s.syncJob(id)
		}()
	}
	return err
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) AdminList(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	var (
		total int64
		jobs  []domain.Job
		eg    errgroup.Group
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (s *service) SaveSkill(ctx context.Context, sk domain.JobSkill) (int64, error) {
	if !sk.Importance.Valid() || !sk.MinLevel.Valid() {
		return 0, ErrInvalidSkill
	}
	_, err := s.repo.GetByID(ctx, sk.Jid)
	if err != nil {
		return 0, err
	}
	_, err = s.skillSvc.Detail(ctx, sk.Sid)
	if err != nil {
		if errors.Is(err, skill.ErrSkillNotFound) {
			return 0, ErrInvalidSkill
		}
		return 0, err
	}
	return s.repo.SaveSkill(ctx, sk)
}

func (s *service) DeleteSkill(ctx context.Context, id int64) error {
	return s.repo.DeleteSkill(ctx, id)
}

func (s *service) PubList(ctx context.Context, offset, limit int, category string, remoteOnly bool) ([]domain.Job, int64, error) {
	var (
		total int64
		jobs  []domain.Job
		eg    errgroup.Group
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.PubList(ctx, offset, limit, category, remoteOnly)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.PubTotal(ctx, category, remoteOnly)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Job, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if j.Status == domain.JobStatusDraft {
		return domain.Job{}, ErrJobNotFound
	}
	j.Skills, err = s.hydratedSkills(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	return j, nil
}

func (s *service) GetByIDs(ctx context.Context, ids []int64) ([]domain.Job, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) Fresh(ctx context.Context, days, limit int) ([]domain.Job, error) {
	since := time.Now().AddDate(0, 0, -days)
	return s.repo.Fresh(ctx, since, limit)
}

func (s *service) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	return s.repo.Categories(ctx)
}

func (s *service) CountActiveByRole(ctx context.Context) (map[int64]int64, error) {
	return s.repo.CountActiveByRole(ctx)
}

func (s *service) CountSkillUsage(ctx context.Context) (map[int64]int64, error) {
	return s.repo.CountSkillUsage(ctx)
}

func (s *service) hydratedSkills(ctx context.Context, jid int64) ([]domain.JobSkill, error) {
	sks, err := s.repo.SkillsByJid(ctx, jid)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, sks)
}

// hydrate 把技能目录里的名字、类别、难度、热度填充到技能要求上
func (s *service) hydrate(ctx context.Context, sks []domain.JobSkill) ([]domain.JobSkill, error) {
	if len(sks) == 0 {
		return sks, nil
	}
	sids := make([]int64, 0, len(sks))
	seen := make(map[int64]struct{}, len(sks))
	for _, sk := range sks {
		if _, ok := seen[sk.Sid]; ok {
			continue
		}
		seen[sk.Sid] = struct{}{}
		sids = append(sids, sk.Sid)
	}
	skills, err := s.skillSvc.GetByIDs(ctx, sids)
	if err != nil {
		return nil, err
	}
	sm := slice.ToMap(skills, func(sk skill.Skill) int64 {
		return sk.ID
	})
	for i := range sks {
		sk, ok := sm[sks[i].Sid]
		if !ok {
			continue
		}
		sks[i].SkillName = sk.Name
		sks[i].SkillCategory = sk.Category.String()
		sks[i].Difficulty = sk.Difficulty
		sks[i].Popularity = sk.Popularity
	}
	return sks, nil
}

func (s *service) syncJob(id int64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.syncTimeout)
	defer cancel()
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查找岗位详情失败",
			elog.FieldErr(err),
		)
		return
	}
	evt := event.NewJobEvent(j)
	err = s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("发送岗位数据到搜索失败",
			elog.FieldErr(err),
			elog.Any("event", evt),
		)
	}
}
