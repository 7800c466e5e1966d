//go:build wireinject

package startup

import (
	"github.com/ecodeclub/skillbridge/internal/notification"
	"github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*notification.Module, error) {
	wire.Build(testioc.BaseSet, notification.InitModule)
	return new(notification.Module), nil
}
