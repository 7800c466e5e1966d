//go:build wireinject

package startup

import (
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/google/wire"
)

func InitModule(idGen snowflake.AppIDGenerator,
	sm *skill.Module,
	um *user.Module,
	mm *matching.Module) (*career.Module, error) {
	wire.Build(testioc.BaseSet, career.InitModule)
	return new(career.Module), nil
}
