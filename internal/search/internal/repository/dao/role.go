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
	RoleIndexName = "role_index"
	// 对外可见的都是已发布状态
	publishedStatus = 2
)

type Role struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	Category    string  `json:"category"`
	SalaryMin   int64   `json:"salaryMin"`
	SalaryMax   int64   `json:"salaryMax"`
	DemandScore int     `json:"demandScore"`
	Growth      float64 `json:"growth"`
	Status      uint8   `json:"status"`
	Ctime       int64   `json:"ctime"`
	Utime       int64   `json:"utime"`
}

type roleElasticDAO struct {
	client *elastic.Client
	cols   map[string]Col
}

func NewRoleDAO(client *elastic.Client, cols map[string]Col) RoleDAO {
	return &roleElasticDAO{
		client: client,
		cols:   cols,
	}
}

func (r *roleElasticDAO) SearchRole(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]Role, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewBoolQuery().Should(buildCols(r.cols, queryMetas)...),
		elastic.NewTermQuery("status", publishedStatus))
	resp, err := r.client.Search(RoleIndexName).
		From(offset).
		Size(limit).
		Query(query).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Role, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Role
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		res = append(res, ele)
	}
	return res, nil
}
