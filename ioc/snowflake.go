package ioc

import (
	"github.com/ecodeclub/skillbridge/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
)

func initIDGenerator() (snowflake.AppIDGenerator, error) {
	type Config struct {
		Node uint `yaml:"node"`
		Apps uint `yaml:"apps"`
	}
	var cfg Config
	err := econf.UnmarshalKey("snowflake", &cfg)
	if err != nil {
		return nil, err
	}
	return snowflake.NewAppIDGenerator(cfg.Node, cfg.Apps)
}
