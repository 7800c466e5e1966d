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
	"fmt"
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/matching/internal/domain"
)

func (s *service) Rank(possessed []domain.PossessedSkill,
	candidates []domain.Candidate, interests []string) []domain.Ranked {
	owned := slice.ToMap(possessed, func(ps domain.PossessedSkill) int64 {
		return ps.SkillID
	})
	interested := slice.ToMap(interests, func(c string) string {
		return c
	})
	res := make([]domain.Ranked, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, s.rankOne(owned, interested, c))
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Score != res[j].Score {
			return res[i].Score > res[j].Score
		}
		if res[i].DemandScore != res[j].DemandScore {
			return res[i].DemandScore > res[j].DemandScore
		}
		return res[i].ID < res[j].ID
	})
	return res
}

func (s *service) rankOne(owned map[int64]domain.PossessedSkill,
	interested map[string]string, c domain.Candidate) domain.Ranked {
	required := make([]domain.RequiredSkill, 0, len(c.Skills))
	var optTotal, optMatched int
	var reasons []string
	for _, sk := range c.Skills {
		if sk.Required {
			required = append(required, sk)
			continue
		}
		optTotal++
		if cur, ok := owned[sk.SkillID]; ok && cur.Level >= sk.MinLevel {
			optMatched++
		}
	}
	mr := s.matchOwned(owned, required)
	for _, m := range mr.Matched {
		if m.Importance == domain.ImportanceHigh {
			reasons = append(reasons, fmt.Sprintf("已掌握核心技能 %s", m.Name))
		}
	}
	if _, ok := interested[c.Category]; ok && c.Category != "" {
		reasons = append(reasons, fmt.Sprintf("和你感兴趣的 %s 方向一致", c.Category))
	}
	score := mr.Percentage
	if optTotal > 0 {
		// 加分项覆盖率带来的加成，封顶 OptionalBonusCap
		score += s.params.OptionalBonusCap * float64(optMatched) / float64(optTotal)
	}
	if score > 100 {
		score = 100
	}
	return domain.Ranked{
		Candidate:       c,
		MatchPercentage: mr.Percentage,
		Score:           round1(score),
		Reasons:         reasons,
	}
}
