//go:build wireinject

package startup

import (
	"github.com/ecodeclub/skillbridge/internal/bff"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/job"
	"github.com/ecodeclub/skillbridge/internal/notification"
	"github.com/ecodeclub/skillbridge/internal/roadmap"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	testioc "github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule(um *user.Module,
	sm *skill.Module,
	cm *career.Module,
	rm *roadmap.Module,
	jm *job.Module,
	im *interactive.Module,
	nm *notification.Module) (*bff.Module, error) {
	wire.Build(testioc.InitCache, bff.InitModule)
	return new(bff.Module), nil
}
