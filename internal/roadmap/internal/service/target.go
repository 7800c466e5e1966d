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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/pkg/sequencenumber"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/event"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

type service struct {
	repo        repository.RoadmapRepo
	analysisSvc career.AnalysisService
	userSvc     user.UserService
	skillSvc    skill.Service
	engine      matching.Service
	snGen       *sequencenumber.Generator
	producer    event.NotificationEventProducer
	logger      *elog.Component
}

func NewService(repo repository.RoadmapRepo,
	analysisSvc career.AnalysisService,
	userSvc user.UserService,
	skillSvc skill.Service,
	engine matching.Service,
	snGen *sequencenumber.Generator,
	producer event.NotificationEventProducer) Service {
	return &service{
		repo:        repo,
		analysisSvc: analysisSvc,
		userSvc:     userSvc,
		skillSvc:    skillSvc,
		engine:      engine,
		snGen:       snGen,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) SelectTarget(ctx context.Context, uid, rid int64) (career.Analysis, domain.Roadmap, error) {
	analysis, err := s.analysisSvc.Analyze(ctx, uid, rid)
	if err != nil {
		return career.Analysis{}, domain.Roadmap{}, err
	}
	rm, err := s.generate(ctx, uid, analysis)
	if err != nil {
		return career.Analysis{}, domain.Roadmap{}, err
	}
	err = s.userSvc.UpdateTargetRole(ctx, uid, rid, analysis.RoleTitle)
	if err != nil {
		return career.Analysis{}, domain.Roadmap{}, err
	}
	evt := event.NotificationEvent{
		Uid:     uid,
		Biz:     "roadmap",
		BizID:   rm.ID,
		Title:   "学习路线已生成",
		Content: fmt.Sprintf("已为你生成通往「%s」的学习路线，共 %d 项", analysis.RoleTitle, len(rm.Items)),
	}
	if e := s.producer.Produce(ctx, evt); e != nil {
		s.logger.Error("发送路线生成通知失败",
			elog.FieldErr(e),
			elog.Any("event", evt),
		)
	}
	return analysis, rm, nil
}

func (s *service) Generate(ctx context.Context, uid, rid int64) (domain.Roadmap, error) {
	analysis, err := s.analysisSvc.Analyze(ctx, uid, rid)
	if err != nil {
		return domain.Roadmap{}, err
	}
	return s.generate(ctx, uid, analysis)
}

// generate 缺口排成学习顺序后整条路线一个事务落库并激活
func (s *service) generate(ctx context.Context, uid int64, analysis career.Analysis) (domain.Roadmap, error) {
	gaps := s.engine.Plan(analysis.Gaps)
	sn, err := s.snGen.Generate(uid)
	if err != nil {
		return domain.Roadmap{}, err
	}
	rm := domain.Roadmap{
		SN:         sn,
		Uid:        uid,
		Rid:        analysis.Rid,
		RoleTitle:  analysis.RoleTitle,
		Status:     domain.StatusNormal,
		Active:     true,
		TotalWeeks: analysis.EstimatedWeeks,
		Items: slice.Map(gaps, func(idx int, gap matching.SkillGap) domain.Item {
			return domain.Item{
				Sid:            gap.SkillID,
				Name:           gap.Name,
				Category:       gap.Category,
				TargetLevel:    gap.TargetLevel,
				Sequence:       idx,
				Status:         domain.ItemStatusPending,
				Priority:       gap.Priority,
				EstimatedWeeks: gap.EstimatedWeeks,
			}
		}),
	}
	id, err := s.repo.Save(ctx, rm)
	if err != nil {
		return domain.Roadmap{}, err
	}
	return s.Detail(ctx, uid, id)
}

func (s *service) notifyIfCompleted(ctx context.Context, rm domain.Roadmap) {
	completed, total, err := s.repo.ItemProgress(ctx, rm.ID)
	if err != nil {
		s.logger.Error("统计路线进度失败",
			elog.FieldErr(err),
			elog.Int64("rmid", rm.ID),
		)
		return
	}
	if total == 0 || completed != total {
		return
	}
	evt := event.NotificationEvent{
		Uid:     rm.Uid,
		Biz:     "roadmap",
		BizID:   rm.ID,
		Title:   "学习路线完成",
		Content: fmt.Sprintf("恭喜你完成了「%s」的全部学习项", rm.RoleTitle),
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送路线完成通知失败",
			elog.FieldErr(err),
			elog.Any("event", evt),
		)
	}
}
