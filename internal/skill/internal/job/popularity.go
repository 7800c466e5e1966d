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

package job

import (
	"context"
	"fmt"
	"math"

	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository"
	"github.com/gotomicro/ego/task/ecron"
)

// UsageCount 返回技能 id 到引用次数的映射，由依赖技能目录的业务方提供
type UsageCount func(ctx context.Context) (map[int64]int64, error)

var _ ecron.NamedJob = (*SkillPopularityJob)(nil)

// SkillPopularityJob 重算技能热度。
// 用户档案里的引用算一票，岗位要求和职位要求算两票，
// 按最大票数归一化到 0-100。
type SkillPopularityJob struct {
	repo     repository.SkillRepo
	counters []UsageCount
	limit    int
}

func NewSkillPopularityJob(repo repository.SkillRepo, counters []UsageCount, limit int) *SkillPopularityJob {
	return &SkillPopularityJob{
		repo:     repo,
		counters: counters,
		limit:    limit,
	}
}

func (p *SkillPopularityJob) Name() string {
	return "SkillPopularityJob"
}

func (p *SkillPopularityJob) Run(ctx context.Context) error {
	weighted, err := p.repo.CountUserSkillBySkill(ctx)
	if err != nil {
		return fmt.Errorf("统计用户技能引用失败: %w", err)
	}
	for _, counter := range p.counters {
		usage, err := counter(ctx)
		if err != nil {
			return fmt.Errorf("统计业务方技能引用失败: %w", err)
		}
		for sid, cnt := range usage {
			weighted[sid] += 2 * cnt
		}
	}
	var peak int64
	for _, cnt := range weighted {
		if cnt > peak {
			peak = cnt
		}
	}

	offset := 0
	for {
		skills, err := p.repo.List(ctx, offset, p.limit, "", 0)
		if err != nil {
			return fmt.Errorf("获取技能列表失败: %w", err)
		}
		for _, sk := range skills {
			popularity := p.popularityOf(weighted[sk.ID], peak)
			if popularity == sk.Popularity {
				continue
			}
			if err := p.repo.UpdatePopularity(ctx, sk.ID, popularity); err != nil {
				return fmt.Errorf("更新技能热度失败 id=%d: %w", sk.ID, err)
			}
		}
		if len(skills) < p.limit {
			break
		}
		offset += p.limit
	}
	return nil
}

func (p *SkillPopularityJob) popularityOf(cnt, peak int64) int {
	if peak == 0 || cnt <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(cnt) / float64(peak)))
}
