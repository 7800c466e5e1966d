//go:build wireinject

package startup

import (
	testioc "github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/google/wire"
)

func InitModule() (*user.Module, error) {
	wire.Build(testioc.BaseSet, user.InitModule)
	return new(user.Module), nil
}
