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

//go:build wireinject

package career

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/skillbridge/internal/career/internal/event"
	"github.com/ecodeclub/skillbridge/internal/career/internal/job"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository/cache"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/career/internal/service"
	"github.com/ecodeclub/skillbridge/internal/career/internal/web"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitRoleDAO,
	dao.NewAnalysisDAO,
	dao.NewQuizDAO,
	cache.NewRoleCache,
	repository.NewRoleRepo,
	repository.NewAnalysisRepo,
	repository.NewQuizRepo,
	event.NewSyncEventProducer,
	service.NewRoleService,
	service.NewAnalysisService,
	service.NewDiscoveryService,
	web.NewHandler,
	web.NewAdminHandler,
	wire.Struct(new(Module), "*"),
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	idGen snowflake.AppIDGenerator,
	sm *skill.Module,
	um *user.Module,
	mm *matching.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*skill.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*matching.Module), "Svc"),
	)
	return new(Module), nil
}

// InitDemandScoreJob signals 由岗位、互动这些业务方提供，在 ioc 里组装
func InitDemandScoreJob(db *egorm.Component, ec ecache.Cache, signals []job.RoleSignal) *job.DemandScoreJob {
	wire.Build(
		InitRoleDAO,
		dao.NewAnalysisDAO,
		cache.NewRoleCache,
		repository.NewRoleRepo,
		repository.NewAnalysisRepo,
		newDemandScoreJob,
	)
	return new(job.DemandScoreJob)
}

func newDemandScoreJob(roleRepo repository.RoleRepo,
	analysisRepo repository.AnalysisRepo,
	signals []job.RoleSignal) *job.DemandScoreJob {
	return job.NewDemandScoreJob(roleRepo, analysisRepo, signals, 100)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitRoleDAO(db *egorm.Component) dao.RoleDAO {
	InitTableOnce(db)
	return dao.NewRoleDAO(db)
}
