package ioc

import (
	"github.com/ecodeclub/skillbridge/internal/search/internal/repository/dao"
	"github.com/olivere/elastic/v7"
)

const (
	roleTitleBoost    = 30
	roleCategoryBoost = 10
	roleOverviewBoost = 2
)

func InitRoleDAO(client *elastic.Client) dao.RoleDAO {
	cols := map[string]dao.Col{
		"title": {
			Name:  "title",
			Boost: roleTitleBoost,
		},
		"category": {
			Name:  "category",
			Boost: roleCategoryBoost,
		},
		"overview": {
			Name:  "overview",
			Boost: roleOverviewBoost,
		},
	}
	return dao.NewRoleDAO(client, cols)
}
