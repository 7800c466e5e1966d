//go:build wireinject

package startup

import (
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/roadmap"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/google/wire"
)

func InitModule(cm *career.Module,
	um *user.Module,
	sm *skill.Module,
	mm *matching.Module) (*roadmap.Module, error) {
	wire.Build(testioc.BaseSet, roadmap.InitModule)
	return new(roadmap.Module), nil
}
