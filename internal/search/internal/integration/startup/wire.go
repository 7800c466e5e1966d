//go:build wireinject

package startup

import (
	"github.com/ecodeclub/skillbridge/internal/search"
	testioc "github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*search.Module, error) {
	wire.Build(testioc.BaseSet, search.InitModule)
	return new(search.Module), nil
}
