//go:build wireinject

package startup

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/event"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository/cache"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/service"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/web"
	testioc "github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(p event.SyncEventProducer) (*skill.Module, error) {
	wire.Build(testioc.BaseSet, initModule)
	return new(skill.Module), nil
}

func initModule(db *egorm.Component, ec ecache.Cache, p event.SyncEventProducer) (*skill.Module, error) {
	wire.Build(
		skill.InitSkillDAO,
		cache.NewSkillCache,
		repository.NewSkillRepo,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(skill.Module), "*"),
	)
	return new(skill.Module), nil
}
