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

package roadmap

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/pkg/sequencenumber"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/event"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/service"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/web"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitRoadmapDAO,
	repository.NewRoadmapRepo,
	event.NewNotificationEventProducer,
	sequencenumber.NewGenerator,
	service.NewService,
	web.NewHandler,
	wire.Struct(new(Module), "*"),
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	cm *career.Module,
	um *user.Module,
	sm *skill.Module,
	mm *matching.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*career.Module), "AnalysisSvc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*skill.Module), "Svc"),
		wire.FieldsOf(new(*matching.Module), "Svc"),
	)
	return new(Module), nil
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

func InitRoadmapDAO(db *egorm.Component) dao.RoadmapDAO {
	InitTableOnce(db)
	return dao.NewRoadmapDAO(db)
}
