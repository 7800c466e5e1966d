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

package matching

import (
	"github.com/ecodeclub/skillbridge/internal/matching/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/matching/internal/service"
)

// Service 暴露给 career 和 job 两个模块使用
type Service = service.Service

type (
	Params         = domain.Params
	Level          = domain.Level
	Importance     = domain.Importance
	Priority       = domain.Priority
	Readiness      = domain.Readiness
	PossessedSkill = domain.PossessedSkill
	RequiredSkill  = domain.RequiredSkill
	SkillGap       = domain.SkillGap
	MatchResult    = domain.MatchResult
	Candidate      = domain.Candidate
	Ranked         = domain.Ranked
)

const (
	LevelUnknown      = domain.LevelUnknown
	LevelBeginner     = domain.LevelBeginner
	LevelIntermediate = domain.LevelIntermediate
	LevelAdvanced     = domain.LevelAdvanced
	LevelExpert       = domain.LevelExpert

	ImportanceUnknown = domain.ImportanceUnknown
	ImportanceLow     = domain.ImportanceLow
	ImportanceMedium  = domain.ImportanceMedium
	ImportanceHigh    = domain.ImportanceHigh

	PriorityLow    = domain.PriorityLow
	PriorityMedium = domain.PriorityMedium
	PriorityHigh   = domain.PriorityHigh

	ReadinessJobReady       = domain.ReadinessJobReady
	ReadinessPartiallyReady = domain.ReadinessPartiallyReady
	ReadinessNotReady       = domain.ReadinessNotReady
)

type Module struct {
	Svc Service
	// Params 引擎生效中的参数，岗位推荐要用里面的推荐阈值
	Params Params
}

func ParseImportance(s string) Importance {
	return domain.ParseImportance(s)
}
