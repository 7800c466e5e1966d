//go:build wireinject

package startup

import (
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*interactive.Module, error) {
	wire.Build(testioc.BaseSet, interactive.InitModule)
	return new(interactive.Module), nil
}
