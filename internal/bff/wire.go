//go:build wireinject

package bff

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/skillbridge/internal/bff/internal/web"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/job"
	"github.com/ecodeclub/skillbridge/internal/notification"
	"github.com/ecodeclub/skillbridge/internal/roadmap"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/google/wire"
)

func InitModule(ec ecache.Cache,
	userModule *user.Module,
	skillModule *skill.Module,
	careerModule *career.Module,
	roadmapModule *roadmap.Module,
	jobModule *job.Module,
	intrModule *interactive.Module,
	notificationModule *notification.Module) (*Module, error) {
	wire.Build(
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*skill.Module), "Svc"),
		wire.FieldsOf(new(*career.Module), "RoleSvc", "AnalysisSvc"),
		wire.FieldsOf(new(*roadmap.Module), "Svc"),
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*interactive.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type Module struct {
	Hdl *Handler
}

type Handler = web.Handler
