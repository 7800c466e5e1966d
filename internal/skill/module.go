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

package skill

import (
	"github.com/ecodeclub/skillbridge/internal/skill/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/job"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/service"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/web"
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.SkillService

	Skill         = domain.Skill
	SkillLevel    = domain.SkillLevel
	UserSkill     = domain.UserSkill
	Category      = domain.Category
	CategoryCount = domain.CategoryCount

	SkillPopularityJob = job.SkillPopularityJob
	// UsageCount 业务方给热度任务提供的技能引用计数
	UsageCount = job.UsageCount
)

const (
	UserSkillStatusLearning = domain.UserSkillStatusLearning
	UserSkillStatusAcquired = domain.UserSkillStatusAcquired
)

var (
	ErrSkillNotFound      = service.ErrSkillNotFound
	ErrUserSkillDuplicate = service.ErrUserSkillDuplicate
)
