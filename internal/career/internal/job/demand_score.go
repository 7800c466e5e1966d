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

	"github.com/ecodeclub/skillbridge/internal/career/internal/repository"
	"github.com/gotomicro/ego/task/ecron"
)

// RoleSignal 返回方向 id 到信号量的映射，由岗位、互动这些业务方提供
type RoleSignal func(ctx context.Context) (map[int64]int64, error)

var _ ecron.NamedJob = (*DemandScoreJob)(nil)

// DemandScoreJob 重算方向的需求热度。
// 一次差距分析算一票，在招岗位数和浏览数这类外部信号算两票，
// 按最大票数归一化到 0-100。
type DemandScoreJob struct {
	roleRepo     repository.RoleRepo
	analysisRepo repository.AnalysisRepo
	signals      []RoleSignal
	limit        int
}

func NewDemandScoreJob(roleRepo repository.RoleRepo,
	analysisRepo repository.AnalysisRepo,
	signals []RoleSignal, limit int) *DemandScoreJob {
	return &DemandScoreJob{
		roleRepo:     roleRepo,
		analysisRepo: analysisRepo,
		signals:      signals,
		limit:        limit,
	}
}

func (d *DemandScoreJob) Name() string {
	return "DemandScoreJob"
}

func (d *DemandScoreJob) Run(ctx context.Context) error {
	weighted, err := d.analysisRepo.CountByRole(ctx)
	if err != nil {
		return fmt.Errorf("统计差距分析次数失败: %w", err)
	}
	for _, signal := range d.signals {
		cnts, err := signal(ctx)
		if err != nil {
			return fmt.Errorf("统计业务方需求信号失败: %w", err)
		}
		for rid, cnt := range cnts {
			weighted[rid] += 2 * cnt
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
		roles, err := d.roleRepo.List(ctx, offset, d.limit)
		if err != nil {
			return fmt.Errorf("获取方向列表失败: %w", err)
		}
		for _, role := range roles {
			score := d.scoreOf(weighted[role.ID], peak)
			if score == role.DemandScore {
				continue
			}
			if err := d.roleRepo.UpdateDemandScore(ctx, role.ID, score); err != nil {
				return fmt.Errorf("更新需求热度失败 id=%d: %w", role.ID, err)
			}
		}
		if len(roles) < d.limit {
			break
		}
		offset += d.limit
	}
	return nil
}

func (d *DemandScoreJob) scoreOf(cnt, peak int64) int {
	if peak == 0 || cnt <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(cnt) / float64(peak)))
}
