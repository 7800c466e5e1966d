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
	"math"
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/matching/internal/domain"
)

// Service 匹配引擎。全部方法都是纯计算，不做任何 IO，
// 入参由调用方解析完整之后传入，方法不会修改入参。
type Service interface {
	// Match 计算已具备技能对必备要求的加权匹配度，
	// 并给出每一条未达标要求的缺口信息
	Match(possessed []domain.PossessedSkill, required []domain.RequiredSkill) domain.MatchResult
	// AggregateWeeks 估算补齐全部缺口的总周数，同类缺口聚堆时打折
	AggregateWeeks(gaps []domain.SkillGap) int
	// Plan 把缺口排成学习顺序：优先级降序、周数升序、难度升序、技能 ID 升序
	Plan(gaps []domain.SkillGap) []domain.SkillGap
	// Readiness 由匹配度给出求职准备程度
	Readiness(percentage float64) domain.Readiness
	// Rank 对候选对象按匹配度加上加分项覆盖加成排序
	Rank(possessed []domain.PossessedSkill, candidates []domain.Candidate, interests []string) []domain.Ranked
}

type service struct {
	params domain.Params
}

func NewService(params domain.Params) Service {
	return &service{params: params}
}

func (s *service) Match(possessed []domain.PossessedSkill, required []domain.RequiredSkill) domain.MatchResult {
	owned := slice.ToMap(possessed, func(ps domain.PossessedSkill) int64 {
		return ps.SkillID
	})
	return s.matchOwned(owned, required)
}

func (s *service) matchOwned(owned map[int64]domain.PossessedSkill, required []domain.RequiredSkill) domain.MatchResult {
	var totalWeight, matchedWeight float64
	res := domain.MatchResult{}
	for _, req := range required {
		if !req.Required {
			continue
		}
		res.TotalRequired++
		weight := s.params.ImportanceWeight(req.Importance)
		totalWeight += weight
		cur, ok := owned[req.SkillID]
		if ok && cur.Level >= req.MinLevel {
			res.MatchedCount++
			matchedWeight += weight
			res.Matched = append(res.Matched, req)
			continue
		}
		gap := s.newGap(req, cur.Level, ok)
		if gap.Insufficient {
			res.InsufficientCount++
		} else {
			res.MissingCount++
		}
		res.Gaps = append(res.Gaps, gap)
	}
	if res.TotalRequired == 0 {
		// 没有任何必备要求视为完全匹配
		res.Percentage = 100.0
		return res
	}
	res.Percentage = round1(100 * matchedWeight / totalWeight)
	return res
}

// newGap 的 cur 在 owned 为 false 时是零值，表示完全缺失
func (s *service) newGap(req domain.RequiredSkill, cur domain.Level, owned bool) domain.SkillGap {
	weeks := s.params.BaseWeeks(req.MinLevel)
	if owned {
		// 已经摸过这门技能，补到目标等级比从零学要快
		weeks = int(math.Ceil(float64(weeks) * s.params.InsufficientFactor))
	}
	return domain.SkillGap{
		SkillID:        req.SkillID,
		Name:           req.Name,
		Category:       req.Category,
		Difficulty:     req.Difficulty,
		Importance:     req.Importance,
		CurrentLevel:   cur,
		TargetLevel:    req.MinLevel,
		Insufficient:   owned,
		Priority:       s.priorityOf(req),
		EstimatedWeeks: weeks,
	}
}

func (s *service) priorityOf(req domain.RequiredSkill) domain.Priority {
	if req.Importance == domain.ImportanceHigh ||
		req.Popularity >= s.params.PopularThreshold {
		return domain.PriorityHigh
	}
	if req.Importance == domain.ImportanceMedium {
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}

func (s *service) AggregateWeeks(gaps []domain.SkillGap) int {
	weeks := make(map[string]float64, len(gaps))
	cnt := make(map[string]int, len(gaps))
	for _, gap := range gaps {
		weeks[gap.Category] += float64(gap.EstimatedWeeks)
		cnt[gap.Category]++
	}
	var total float64
	for category, sum := range weeks {
		if cnt[category] > 1 {
			// 同类技能一起学有重叠，按折扣计
			sum *= s.params.CategoryDiscount
		}
		total += sum
	}
	return int(math.Round(total))
}

func (s *service) Plan(gaps []domain.SkillGap) []domain.SkillGap {
	res := append([]domain.SkillGap(nil), gaps...)
	sort.Slice(res, func(i, j int) bool {
		if res[i].Priority != res[j].Priority {
			return res[i].Priority > res[j].Priority
		}
		if res[i].EstimatedWeeks != res[j].EstimatedWeeks {
			return res[i].EstimatedWeeks < res[j].EstimatedWeeks
		}
		if res[i].Difficulty != res[j].Difficulty {
			return res[i].Difficulty < res[j].Difficulty
		}
		return res[i].SkillID < res[j].SkillID
	})
	return res
}

func (s *service) Readiness(percentage float64) domain.Readiness {
	return s.params.Readiness(percentage)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
