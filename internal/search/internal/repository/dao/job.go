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
	JobIndexName = "job_index"
	// 在招岗位
	activeStatus = 2
)

type Job struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	Remote    bool   `json:"remote"`
	Category  string `json:"category"`
	Rid       int64  `json:"rid"`
	SalaryMin int64  `json:"salaryMin"`
	SalaryMax int64  `json:"salaryMax"`
	Level     string `json:"level"`
	Status    uint8  `json:"status"`
	Source    string `json:"source"`
	URL       string `json:"url"`
	Summary   string `json:"summary"`
	PostedAt  int64  `json:"postedAt"`
	ExpiresAt int64  `json:"expiresAt"`
	Ctime     int64  `json:"ctime"`
	Utime     int64  `json:"utime"`
}

type jobElasticDAO struct {
	client *elastic.Client
	cols   map[string]Col
}

func NewJobDAO(client *elastic.Client, cols map[string]Col) JobDAO {
	return &jobElasticDAO{
		client: client,
		cols:   cols,
	}
}

func (j *jobElasticDAO) SearchJob(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]Job, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewBoolQuery().Should(buildCols(j.cols, queryMetas)...),
		elastic.NewTermQuery("status", activeStatus))
	resp, err := j.client.Search(JobIndexName).
		From(offset).
		Size(limit).
		Query(query).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Job, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Job
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, err
		}
		res = append(res, ele)
	}
	return res, nil
}
