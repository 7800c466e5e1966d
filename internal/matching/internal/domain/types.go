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

package domain

// Level 技能水平等级，按 Rank 全序排列
type Level uint8

const (
	LevelUnknown      Level = 0
	LevelBeginner     Level = 1
	LevelIntermediate Level = 2
	LevelAdvanced     Level = 3
	LevelExpert       Level = 4
)

func (l Level) ToUint8() uint8 {
	return uint8(l)
}

func (l Level) Valid() bool {
	return l >= LevelBeginner && l <= LevelExpert
}

func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "beginner"
	case LevelIntermediate:
		return "intermediate"
	case LevelAdvanced:
		return "advanced"
	case LevelExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// Importance 要求的重要程度，数值越大越重要
type Importance uint8

const (
	ImportanceUnknown Importance = 0
	ImportanceLow     Importance = 1
	ImportanceMedium  Importance = 2
	ImportanceHigh    Importance = 3
)

func (i Importance) ToUint8() uint8 {
	return uint8(i)
}

func (i Importance) Valid() bool {
	return i >= ImportanceLow && i <= ImportanceHigh
}

func (i Importance) String() string {
	switch i {
	case ImportanceLow:
		return "low"
	case ImportanceMedium:
		return "medium"
	case ImportanceHigh:
		return "high"
	default:
		return "unknown"
	}
}

func ParseImportance(s string) Importance {
	switch s {
	case "low":
		return ImportanceLow
	case "medium":
		return ImportanceMedium
	case "high":
		return ImportanceHigh
	default:
		return ImportanceUnknown
	}
}

// Priority 学习优先级，由重要程度和热度共同推导
type Priority uint8

const (
	PriorityUnknown Priority = 0
	PriorityLow     Priority = 1
	PriorityMedium  Priority = 2
	PriorityHigh    Priority = 3
)

func (p Priority) ToUint8() uint8 {
	return uint8(p)
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Readiness 按匹配度划分的求职准备程度
type Readiness string

const (
	ReadinessJobReady       Readiness = "job_ready"
	ReadinessPartiallyReady Readiness = "partially_ready"
	ReadinessNotReady       Readiness = "not_ready"
)

// PossessedSkill 用户已具备的技能
type PossessedSkill struct {
	SkillID int64
	Level   Level
}

// RequiredSkill 目标（职业方向或岗位）的一条技能要求
type RequiredSkill struct {
	SkillID    int64
	Name       string
	Category   string
	Difficulty uint8
	Importance Importance
	// Required 为 false 时是加分项，不参与匹配度分母
	Required   bool
	MinLevel   Level
	Popularity int
}

// SkillGap 一条未达标的必备技能
type SkillGap struct {
	SkillID    int64
	Name       string
	Category   string
	Difficulty uint8
	Importance Importance
	// CurrentLevel 为 LevelUnknown 表示完全缺失
	CurrentLevel Level
	TargetLevel  Level
	// Insufficient 已具备但水平未达标，和完全缺失区分开
	Insufficient   bool
	Priority       Priority
	EstimatedWeeks int
}

// MatchResult 一次匹配计算的完整结果。
// MatchedCount + len(Gaps) == TotalRequired 恒成立。
type MatchResult struct {
	// Percentage 保留一位小数，0 到 100
	Percentage        float64
	TotalRequired     int
	MatchedCount      int
	MissingCount      int
	InsufficientCount int
	Matched           []RequiredSkill
	Gaps              []SkillGap
}

// Candidate 参与推荐排序的候选对象，职业方向和岗位都可以充当
type Candidate struct {
	Biz         string
	ID          int64
	Title       string
	Category    string
	DemandScore float64
	Skills      []RequiredSkill
}

// Ranked 排序后的推荐结果
type Ranked struct {
	Candidate
	// MatchPercentage 仅由必备要求算出
	MatchPercentage float64
	// Score 在匹配度上叠加加分项覆盖率的加成，上限 100
	Score   float64
	Reasons []string
}
