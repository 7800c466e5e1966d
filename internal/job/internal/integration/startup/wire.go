//go:build wireinject

package startup

import (
	"github.com/ecodeclub/skillbridge/internal/job"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/google/wire"
)

func InitModule(sm *skill.Module,
	um *user.Module,
	mm *matching.Module) (*job.Module, error) {
	wire.Build(testioc.BaseSet, job.InitModule)
	return new(job.Module), nil
}
