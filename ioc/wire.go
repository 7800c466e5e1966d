//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/skillbridge/internal/bff"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/job"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/notification"
	"github.com/ecodeclub/skillbridge/internal/roadmap"
	"github.com/ecodeclub/skillbridge/internal/search"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		initIDGenerator,
		matching.InitModule,
		user.InitModule,
		skill.InitModule,
		career.InitModule,
		roadmap.InitModule,
		job.InitModule,
		interactive.InitModule,
		notification.InitModule,
		search.InitModule,
		bff.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*skill.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*career.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*roadmap.Module), "Hdl"),
		wire.FieldsOf(new(*job.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*interactive.Module), "Hdl"),
		wire.FieldsOf(new(*notification.Module), "Hdl"),
		wire.FieldsOf(new(*search.Module), "Hdl"),
		wire.FieldsOf(new(*bff.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}
