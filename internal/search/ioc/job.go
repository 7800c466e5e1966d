package ioc

import (
	"github.com/ecodeclub/skillbridge/internal/search/internal/repository/dao"
	"github.com/olivere/elastic/v7"
)

const (
	jobTitleBoost    = 30
	jobCompanyBoost  = 20
	jobLocationBoost = 5
	jobLevelBoost    = 3
	jobSummaryBoost  = 2
)

func InitJobDAO(client *elastic.Client) dao.JobDAO {
	cols := map[string]dao.Col{
		"title": {
			Name:  "title",
			Boost: jobTitleBoost,
		},
		"company": {
			Name:  "company",
			Boost: jobCompanyBoost,
		},
		"location": {
			Name:  "location",
			Boost: jobLocationBoost,
		},
		"level": {
			Name:  "level",
			Boost: jobLevelBoost,
		},
		"summary": {
			Name:  "summary",
			Boost: jobSummaryBoost,
		},
	}
	return dao.NewJobDAO(client, cols)
}
