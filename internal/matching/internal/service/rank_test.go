package service

import (
	"testing"

	"github.com/ecodeclub/skillbridge/internal/matching/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestService_Rank(t *testing.T) {
	possessed := []domain.PossessedSkill{
		{SkillID: 1, Level: domain.LevelAdvanced},
		{SkillID: 2, Level: domain.LevelIntermediate},
	}
	testCases := []struct {
		name       string
		candidates []domain.Candidate
		interests  []string

		wantIDs    []int64
		wantScores []float64
	}{
		{
			name: "按加成后的分数降序",
			candidates: []domain.Candidate{
				{
					ID: 101,
					Skills: []domain.RequiredSkill{
						{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
						{SkillID: 9, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
					},
				},
				{
					ID: 102,
					Skills: []domain.RequiredSkill{
						{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
						{SkillID: 2, Importance: domain.ImportanceMedium, Required: true, MinLevel: domain.LevelIntermediate},
					},
				},
			},
			wantIDs:    []int64{102, 101},
			wantScores: []float64{100.0, 50.0},
		},
		{
			name: "加分项覆盖率的加成封顶",
			candidates: []domain.Candidate{
				{
					ID: 101,
					Skills: []domain.RequiredSkill{
						{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
						// 两个加分项全中，加满 10 分
						{SkillID: 2, Importance: domain.ImportanceLow, Required: false, MinLevel: domain.LevelBeginner},
						{SkillID: 1, Importance: domain.ImportanceLow, Required: false, MinLevel: domain.LevelBeginner},
					},
				},
			},
			wantIDs: []int64{101},
			// 100 + 10 之后封顶在 100
			wantScores: []float64{100.0},
		},
		{
			name: "加分项只中一半",
			candidates: []domain.Candidate{
				{
					ID: 101,
					Skills: []domain.RequiredSkill{
						{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
						{SkillID: 9, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
						{SkillID: 2, Importance: domain.ImportanceLow, Required: false, MinLevel: domain.LevelBeginner},
						{SkillID: 8, Importance: domain.ImportanceLow, Required: false, MinLevel: domain.LevelBeginner},
					},
				},
			},
			wantIDs: []int64{101},
			// 50 + 10*1/2
			wantScores: []float64{55.0},
		},
		{
			name: "分数相同按需求热度降序",
			candidates: []domain.Candidate{
				{
					ID:          101,
					DemandScore: 40,
					Skills: []domain.RequiredSkill{
						{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
					},
				},
				{
					ID:          102,
					DemandScore: 90,
					Skills: []domain.RequiredSkill{
						{SkillID: 2, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
					},
				},
			},
			wantIDs:    []int64{102, 101},
			wantScores: []float64{100.0, 100.0},
		},
		{
			name: "热度也相同按 ID 升序",
			candidates: []domain.Candidate{
				{ID: 202, DemandScore: 50},
				{ID: 201, DemandScore: 50},
			},
			wantIDs: []int64{201, 202},
			// 没有任何要求视为完全匹配
			wantScores: []float64{100.0, 100.0},
		},
	}

	svc := testSvc()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := svc.Rank(possessed, tc.candidates, tc.interests)
			ids := make([]int64, 0, len(res))
			scores := make([]float64, 0, len(res))
			for _, r := range res {
				ids = append(ids, r.ID)
				scores = append(scores, r.Score)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.wantScores, scores)
		})
	}
}

func TestService_Rank_推荐理由(t *testing.T) {
	svc := testSvc()
	res := svc.Rank([]domain.PossessedSkill{
		{SkillID: 1, Level: domain.LevelAdvanced},
	}, []domain.Candidate{
		{
			ID:       101,
			Category: "backend",
			Skills: []domain.RequiredSkill{
				{SkillID: 1, Name: "Go", Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelIntermediate},
				{SkillID: 2, Name: "Kafka", Importance: domain.ImportanceMedium, Required: true, MinLevel: domain.LevelBeginner},
			},
		},
	}, []string{"backend", "devops"})
	assert.Len(t, res, 1)
	assert.Equal(t, []string{
		"已掌握核心技能 Go",
		"和你感兴趣的 backend 方向一致",
	}, res[0].Reasons)
	// 中等重要性的匹配不产生理由，兴趣之外的方向也不产生
	res = svc.Rank([]domain.PossessedSkill{
		{SkillID: 2, Level: domain.LevelAdvanced},
	}, []domain.Candidate{
		{
			ID:       101,
			Category: "data",
			Skills: []domain.RequiredSkill{
				{SkillID: 2, Name: "Kafka", Importance: domain.ImportanceMedium, Required: true, MinLevel: domain.LevelBeginner},
			},
		},
	}, []string{"backend"})
	assert.Empty(t, res[0].Reasons)
}

func TestService_Rank_幂等(t *testing.T) {
	svc := testSvc()
	possessed := []domain.PossessedSkill{
		{SkillID: 1, Level: domain.LevelIntermediate},
	}
	candidates := []domain.Candidate{
		{
			ID:          101,
			DemandScore: 70,
			Skills: []domain.RequiredSkill{
				{SkillID: 1, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelBeginner},
				{SkillID: 2, Importance: domain.ImportanceLow, Required: true, MinLevel: domain.LevelBeginner},
			},
		},
		{
			ID:          102,
			DemandScore: 30,
			Skills: []domain.RequiredSkill{
				{SkillID: 3, Importance: domain.ImportanceHigh, Required: true, MinLevel: domain.LevelExpert},
			},
		},
	}
	first := svc.Rank(possessed, candidates, nil)
	second := svc.Rank(possessed, candidates, nil)
	assert.Equal(t, first, second)
	// 入参顺序保持原样
	assert.Equal(t, int64(101), candidates[0].ID)
	assert.Equal(t, int64(102), candidates[1].ID)
}
