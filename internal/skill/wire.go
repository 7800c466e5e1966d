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

package skill

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/event"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/job"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository/cache"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/service"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

var ModuleSet = wire.NewSet(
	InitSkillDAO,
	cache.NewSkillCache,
	repository.NewSkillRepo,
	event.NewSyncEventProducer,
	service.NewService,
	web.NewHandler,
	web.NewAdminHandler,
	wire.Struct(new(Module), "*"),
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(ModuleSet)
	return new(Module), nil
}

// InitPopularityJob counters 由依赖技能目录的业务方提供，在 ioc 里组装
func InitPopularityJob(db *egorm.Component, ec ecache.Cache, counters []job.UsageCount) *job.SkillPopularityJob {
	wire.Build(
		InitSkillDAO,
		cache.NewSkillCache,
		repository.NewSkillRepo,
		newPopularityJob,
	)
	return new(job.SkillPopularityJob)
}

func newPopularityJob(repo repository.SkillRepo, counters []job.UsageCount) *job.SkillPopularityJob {
	return job.NewSkillPopularityJob(repo, counters, 100)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitSkillDAO(db *egorm.Component) dao.SkillDAO {
	InitTableOnce(db)
	return dao.NewSkillDAO(db)
}
