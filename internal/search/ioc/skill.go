package ioc

import (
	"github.com/ecodeclub/skillbridge/internal/search/internal/repository/dao"
	"github.com/olivere/elastic/v7"
)

const (
	skillNameBoost     = 40
	skillCategoryBoost = 6
	skillDescBoost     = 2
)

func InitSkillDAO(client *elastic.Client) dao.SkillDAO {
	cols := map[string]dao.Col{
		"name": {
			Name:  "name",
			Boost: skillNameBoost,
		},
		"category": {
			Name:  "category",
			Boost: skillCategoryBoost,
		},
		"desc": {
			Name:  "desc",
			Boost: skillDescBoost,
		},
	}
	return dao.NewSkillDAO(client, cols)
}
