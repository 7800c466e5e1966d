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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/job/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"golang.org/x/sync/errgroup"
)

// 一次最多推荐这么多条
const recommendMax = 20

func (s *service) Recommend(ctx context.Context, uid int64, limit int) ([]domain.Recommendation, error) {
	if limit <= 0 || limit > recommendMax {
		limit = recommendMax
	}
	var (
		eg        errgroup.Group
		possessed []matching.PossessedSkill
		interests []string
		jobs      []domain.Job
	)
	eg.Go(func() error {
		var err error
		possessed, err = s.possessed(ctx, uid)
		return err
	})
	eg.Go(func() error {
		profile, err := s.userSvc.Profile(ctx, uid)
		if err != nil {
			return err
		}
		interests = profile.Interests
		return nil
	})
	eg.Go(func() error {
		var err error
		jobs, err = s.activeWithSkills(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	jm := slice.ToMap(jobs, func(j domain.Job) int64 {
		return j.ID
	})
	candidates := slice.Map(jobs, func(idx int, j domain.Job) matching.Candidate {
		return matching.Candidate{
			Biz:      "job",
			ID:       j.ID,
			Title:    j.Title,
			Category: j.Category,
			// 没有独立的岗位热度，用新鲜度顶上：越新的岗位分越高
			DemandScore: float64(j.PostedAt.UnixMilli()) / 1e13,
			Skills:      toRequired(j.Skills),
		}
	})
	ranked := s.engine.Rank(possessed, candidates, interests)
	res := make([]domain.Recommendation, 0, limit)
	for _, r := range ranked {
		if r.MatchPercentage < s.params.RecommendCutoff {
			continue
		}
		res = append(res, domain.Recommendation{
			Job:             jm[r.ID],
			Score:           r.Score,
			MatchPercentage: r.MatchPercentage,
			Reasons:         r.Reasons,
		})
		if len(res) >= limit {
			break
		}
	}
	return res, nil
}

func (s *service) Match(ctx context.Context, uid, jid int64) (domain.Match, error) {
	j, err := s.Detail(ctx, jid)
	if err != nil {
		return domain.Match{}, err
	}
	possessed, err := s.possessed(ctx, uid)
	if err != nil {
		return domain.Match{}, err
	}
	required := make([]matching.RequiredSkill, 0, len(j.Skills))
	for _, sk := range toRequired(j.Skills) {
		if sk.Required {
			required = append(required, sk)
		}
	}
	mr := s.engine.Match(possessed, required)
	return domain.Match{
		Job:            j,
		Result:         mr,
		EstimatedWeeks: s.engine.AggregateWeeks(mr.Gaps),
		Readiness:      s.engine.Readiness(mr.Percentage),
	}, nil
}

// activeWithSkills 全部在招岗位，带填充好的技能要求
func (s *service) activeWithSkills(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.repo.ActiveJobs(ctx)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return jobs, nil
	}
	jids := slice.Map(jobs, func(idx int, j domain.Job) int64 {
		return j.ID
	})
	skm, err := s.repo.SkillsByJids(ctx, jids)
	if err != nil {
		return nil, err
	}
	all := make([]domain.JobSkill, 0, len(jids))
	for _, jid := range jids {
		all = append(all, skm[jid]...)
	}
	all, err = s.hydrate(ctx, all)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]domain.JobSkill, len(jids))
	for _, sk := range all {
		grouped[sk.Jid] = append(grouped[sk.Jid], sk)
	}
	for i := range jobs {
		jobs[i].Skills = grouped[jobs[i].ID]
	}
	return jobs, nil
}

func (s *service) possessed(ctx context.Context, uid int64) ([]matching.PossessedSkill, error) {
	uss, err := s.skillSvc.UserSkills(ctx, uid)
	if err != nil {
		return nil, err
	}
	// 在学的不算数，只有已掌握的才参与匹配
	return slice.FilterMap(uss, func(idx int, us skill.UserSkill) (matching.PossessedSkill, bool) {
		return matching.PossessedSkill{
			SkillID: us.Skill.ID,
			Level:   matching.Level(us.Level.Rank),
		}, us.Status == skill.UserSkillStatusAcquired
	}), nil
}

func toRequired(sks []domain.JobSkill) []matching.RequiredSkill {
	return slice.Map(sks, func(idx int, sk domain.JobSkill) matching.RequiredSkill {
		return matching.RequiredSkill{
			SkillID:    sk.Sid,
			Name:       sk.SkillName,
			Category:   sk.SkillCategory,
			Difficulty: sk.Difficulty,
			Importance: sk.Importance,
			Required:   sk.Required,
			MinLevel:   sk.MinLevel,
			Popularity: sk.Popularity,
		}
	})
}
