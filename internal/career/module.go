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

package career

import (
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/job"
	"github.com/ecodeclub/skillbridge/internal/career/internal/service"
	"github.com/ecodeclub/skillbridge/internal/career/internal/web"
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	// RoleSvc 方向目录，岗位模块关联方向、BFF 都在用
	RoleSvc RoleService
	// AnalysisSvc 差距分析，路线模块生成学习路线时要用
	AnalysisSvc AnalysisService
}

type (
	Handler          = web.Handler
	AdminHandler     = web.AdminHandler
	RoleService      = service.RoleService
	AnalysisService  = service.AnalysisService
	DiscoveryService = service.DiscoveryService

	Role           = domain.Role
	Requirement    = domain.Requirement
	Category       = domain.Category
	Analysis       = domain.Analysis
	Recommendation = domain.Recommendation

	DemandScoreJob = job.DemandScoreJob
	// RoleSignal 业务方给需求热度任务提供的方向信号量
	RoleSignal = job.RoleSignal
)

var (
	ErrRoleNotFound     = service.ErrRoleNotFound
	ErrAnalysisNotFound = service.ErrAnalysisNotFound
)

func Categories() []Category {
	return domain.Categories()
}
