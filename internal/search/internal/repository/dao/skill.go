// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/skillbridge/internal/search/internal/domain"

	"github.com/olivere/elastic/v7"
)

const (
	SkillIndexName = "skill_index"
)

type Skill struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Difficulty uint8  `json:"difficulty"`
	Desc       string `json:"desc"`
	Popularity int    `json:"popularity"`
	Ctime      int64  `json:"ctime"`
	Utime      int64  `json:"utime"`
}

type skillElasticDAO struct {
	client *elastic.Client
	cols   map[string]Col
}

func NewSkillDAO(client *elastic.Client, cols map[string]Col) SkillDAO {
	return &skillElasticDAO{
		client: client,
		cols:   cols,
	}
}

func (s *skillElasticDAO) SearchSkill(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]Skill, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewBoolQuery().Should(buildCols(s.cols, queryMetas)...))
	resp, err := s.client.Search(SkillIndexName).
		From(offset).
		Size(limit).
		Query(query).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Skill, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Skill
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		res = append(res, ele)
	}
	return res, nil
}
