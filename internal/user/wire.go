//go:build wireinject

package user

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/skillbridge/internal/user/internal/event"
	"github.com/ecodeclub/skillbridge/internal/user/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/user/internal/repository/cache"
	"github.com/ecodeclub/skillbridge/internal/user/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/user/internal/service"
	"github.com/ecodeclub/skillbridge/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

var ModuleSet = wire.NewSet(
	InitUserDAO,
	cache.NewUserECache,
	repository.NewCachedUserRepository,
	event.NewRegistrationEventProducer,
	service.NewUserService,
	web.NewHandler,
	wire.Struct(new(Module), "*"),
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(ModuleSet)
	return new(Module), nil
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

func InitUserDAO(db *egorm.Component) dao.UserDAO {
	InitTableOnce(db)
	return dao.NewGORMUserDAO(db)
}
