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
	"testing"

	"github.com/ecodeclub/skillbridge/internal/matching/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testSvc() Service {
	return NewService(domain.DefaultParams())
}

func TestService_Match(t *testing.T) {
	testCases := []struct {
		name      string
		possessed []domain.PossessedSkill
		required  []domain.RequiredSkill

		wantPercentage   float64
		wantMatched      int
		wantMissing      int
		wantInsufficient int
	}{
		{
			name:      "没有任何必备要求视为完全匹配",
			possessed: []domain.PossessedSkill{},
			required:  []domain.RequiredSkill{},

			wantPercentage: 100.0,
		},
		{
			name: "只有加分项也视为完全匹配",
			possessed: []domain.PossessedSkill{
				{SkillID: 1, Level: domain.LevelBeginner},
			},
			required: []domain.RequiredSkill{
				{SkillID: 2, Importance: domain.ImportanceHigh, Required: false, MinLevel: domain.LevelIntermediate},
			},

			wantPercentage: 100.0,
		},
		{
			name: "按重要程度加权计算",
			possessed: []domain.PossessedSkill{
				{SkillID: 1, Level: domain.LevelIntermediate},
			},
			required: []domain.RequiredSkill{
				{SkillID: 1, Name: "Python", Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
				{SkillID: 2, Name: "Django", Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
				{SkillID: 3, Name: "PostgreSQL", Importance: domain.ImportanceMedium, Required: true, MinLevel: domain.LevelBeginner},
			},

			wantPercentage: 37.5,
			wantMatched:    1,
			wantMissing:    2,
		},
		{
			name:      "一无所有",
			possessed: []domain.PossessedSkill{},
			required: []domain.RequiredSkill{
				{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelBeginner},
				{SkillID: 2, Importance: domain.ImportanceLow, Required: true, MinLevel: domain.LevelBeginner},
			},

			wantPercentage: 0,
			wantMissing:    2,
		},
		{
			name: "等级不足和完全缺失分开统计",
			possessed: []domain.PossessedSkill{
				{SkillID: 1, Level: domain.LevelBeginner},
			},
			required: []domain.RequiredSkill{
				{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelAdvanced},
				{SkillID: 2, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelBeginner},
			},

			wantPercentage:   0,
			wantMissing:      1,
			wantInsufficient: 1,
		},
		{
			name: "等级达标才算匹配",
			possessed: []domain.PossessedSkill{
				{SkillID: 1, Level: domain.LevelExpert},
				{SkillID: 2, Level: domain.LevelIntermediate},
			},
			required: []domain.RequiredSkill{
				{SkillID: 1, Importance: domain.ImportanceMedium, Required: true, MinLevel: domain.LevelExpert},
				{SkillID: 2, Importance: domain.ImportanceMedium, Required: true, MinLevel: domain.LevelIntermediate},
			},

			wantPercentage: 100.0,
			wantMatched:    2,
		},
		{
			name: "加分项不参与分母",
			possessed: []domain.PossessedSkill{
				{SkillID: 1, Level: domain.LevelIntermediate},
			},
			required: []domain.RequiredSkill{
				{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
				{SkillID: 2, Importance: domain.ImportanceHigh, Required: false, MinLevel: domain.LevelIntermediate},
				{SkillID: 3, Importance: domain.ImportanceHigh, Required: false, MinLevel: domain.LevelIntermediate},
			},

			wantPercentage: 100.0,
			wantMatched:    1,
		},
	}

	svc := testSvc()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := svc.Match(tc.possessed, tc.required)
			assert.Equal(t, tc.wantPercentage, res.Percentage)
			assert.Equal(t, tc.wantMatched, res.MatchedCount)
			assert.Equal(t, tc.wantMissing, res.MissingCount)
			assert.Equal(t, tc.wantInsufficient, res.InsufficientCount)
			assert.Equal(t, res.TotalRequired, res.MatchedCount+len(res.Gaps))
		})
	}
}

func TestService_Match_单调性(t *testing.T) {
	svc := testSvc()
	required := []domain.RequiredSkill{
		{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
		{SkillID: 2, Importance: domain.ImportanceMedium, Required: true, MinLevel: domain.LevelBeginner},
		{SkillID: 3, Importance: domain.ImportanceLow, Required: true, MinLevel: domain.LevelAdvanced},
	}
	possessed := make([]domain.PossessedSkill, 0, len(required))
	last := svc.Match(possessed, required).Percentage
	// 每补齐一项匹配度都不应该下降
	for _, req := range required {
		possessed = append(possessed, domain.PossessedSkill{SkillID: req.SkillID, Level: req.MinLevel})
		cur := svc.Match(possessed, required).Percentage
		assert.GreaterOrEqual(t, cur, last)
		last = cur
	}
	assert.Equal(t, 100.0, last)
}

func TestService_Match_缺口明细(t *testing.T) {
	svc := testSvc()
	res := svc.Match([]domain.PossessedSkill{
		{SkillID: 1, Level: domain.LevelBeginner},
	}, []domain.RequiredSkill{
		// 已具备但未达标，周数折半
		{SkillID: 1, Name: "Go", Category: "programming_language", Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
		// 完全缺失的框架，目标中级
		{SkillID: 2, Name: "Gin", Category: "framework", Importance: domain.ImportanceMedium, Required: true, MinLevel: domain.LevelIntermediate},
		// 完全缺失但热度很高
		{SkillID: 3, Name: "Docker", Category: "devops", Importance: domain.ImportanceLow, Required: true, MinLevel: domain.LevelBeginner, Popularity: 85},
	})
	assert.Equal(t, []domain.SkillGap{
		{
			SkillID: 1, Name: "Go", Category: "programming_language",
			Importance:   domain.ImportanceHigh,
			CurrentLevel: domain.LevelBeginner,
			TargetLevel:  domain.LevelIntermediate,
			Insufficient: true,
			Priority:     domain.PriorityHigh,
			// 4 周折半
			EstimatedWeeks: 2,
		},
		{
			SkillID: 2, Name: "Gin", Category: "framework",
			Importance:     domain.ImportanceMedium,
			TargetLevel:    domain.LevelIntermediate,
			Priority:       domain.PriorityMedium,
			EstimatedWeeks: 4,
		},
		{
			SkillID: 3, Name: "Docker", Category: "devops",
			Importance:  domain.ImportanceLow,
			TargetLevel: domain.LevelBeginner,
			// 热度超过阈值，低重要性也提为高优先级
			Priority:       domain.PriorityHigh,
			EstimatedWeeks: 2,
		},
	}, res.Gaps)
}

func TestService_AggregateWeeks(t *testing.T) {
	testCases := []struct {
		name string
		gaps []domain.SkillGap
		want int
	}{
		{
			name: "没有缺口",
			gaps: []domain.SkillGap{},
			want: 0,
		},
		{
			name: "单个缺口不打折",
			gaps: []domain.SkillGap{
				{Category: "framework", EstimatedWeeks: 4},
			},
			want: 4,
		},
		{
			name: "同类缺口聚堆打八折",
			gaps: []domain.SkillGap{
				{Category: "framework", EstimatedWeeks: 4},
				{Category: "framework", EstimatedWeeks: 4},
			},
			// (4+4)*0.8
			want: 6,
		},
		{
			name: "不同类别互不影响",
			gaps: []domain.SkillGap{
				{Category: "framework", EstimatedWeeks: 4},
				{Category: "framework", EstimatedWeeks: 4},
				{Category: "database", EstimatedWeeks: 2},
			},
			want: 8,
		},
	}

	svc := testSvc()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.AggregateWeeks(tc.gaps))
		})
	}
}

func TestService_Plan(t *testing.T) {
	testCases := []struct {
		name string
		gaps []domain.SkillGap
		want []int64
	}{
		{
			name: "优先级相同按周数升序",
			gaps: []domain.SkillGap{
				{SkillID: 2, Priority: domain.PriorityHigh, EstimatedWeeks: 4},
				{SkillID: 1, Priority: domain.PriorityHigh, EstimatedWeeks: 2},
				{SkillID: 3, Priority: domain.PriorityMedium, EstimatedWeeks: 1},
			},
			want: []int64{1, 2, 3},
		},
		{
			name: "周数相同按难度升序",
			gaps: []domain.SkillGap{
				{SkillID: 1, Priority: domain.PriorityHigh, EstimatedWeeks: 4, Difficulty: 3},
				{SkillID: 2, Priority: domain.PriorityHigh, EstimatedWeeks: 4, Difficulty: 1},
			},
			want: []int64{2, 1},
		},
		{
			name: "全部相同按技能 ID 升序兜底",
			gaps: []domain.SkillGap{
				{SkillID: 9, Priority: domain.PriorityLow, EstimatedWeeks: 2, Difficulty: 2},
				{SkillID: 3, Priority: domain.PriorityLow, EstimatedWeeks: 2, Difficulty: 2},
				{SkillID: 5, Priority: domain.PriorityLow, EstimatedWeeks: 2, Difficulty: 2},
			},
			want: []int64{3, 5, 9},
		},
	}

	svc := testSvc()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := svc.Plan(tc.gaps)
			ids := make([]int64, 0, len(res))
			for _, gap := range res {
				ids = append(ids, gap.SkillID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestService_Plan_不修改入参(t *testing.T) {
	svc := testSvc()
	gaps := []domain.SkillGap{
		{SkillID: 2, Priority: domain.PriorityLow},
		{SkillID: 1, Priority: domain.PriorityHigh},
	}
	_ = svc.Plan(gaps)
	assert.Equal(t, int64(2), gaps[0].SkillID)
	assert.Equal(t, int64(1), gaps[1].SkillID)
}

func TestService_Readiness(t *testing.T) {
	testCases := []struct {
		name       string
		percentage float64
		want       domain.Readiness
	}{
		{name: "达到 80 就绪", percentage: 80, want: domain.ReadinessJobReady},
		{name: "达到 50 部分就绪", percentage: 62.5, want: domain.ReadinessPartiallyReady},
		{name: "不足 50 未就绪", percentage: 49.9, want: domain.ReadinessNotReady},
		{name: "零", percentage: 0, want: domain.ReadinessNotReady},
	}

	svc := testSvc()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, svc.Readiness(tc.percentage))
		})
	}
}
