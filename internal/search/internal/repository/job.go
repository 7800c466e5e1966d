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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/search/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/search/internal/repository/dao"
)

type jobRepo struct {
	jobDao dao.JobDAO
}

func NewJobRepo(jobDao dao.JobDAO) JobRepo {
	return &jobRepo{
		jobDao: jobDao,
	}
}

func (j *jobRepo) SearchJob(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]domain.Job, error) {
	jobs, err := j.jobDao.SearchJob(ctx, offset, limit, queryMetas)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return j.toDomain(src)
	}), nil
}

func (j *jobRepo) toDomain(job dao.Job) domain.Job {
	res := domain.Job{
		ID:        job.ID,
		Title:     job.Title,
		Company:   job.Company,
		Location:  job.Location,
		Remote:    job.Remote,
		Category:  job.Category,
		Rid:       job.Rid,
		SalaryMin: job.SalaryMin,
		SalaryMax: job.SalaryMax,
		Level:     job.Level,
		Status:    job.Status,
		Source:    job.Source,
		URL:       job.URL,
		Summary:   job.Summary,
		PostedAt:  time.UnixMilli(job.PostedAt),
		Ctime:     time.UnixMilli(job.Ctime),
		Utime:     time.UnixMilli(job.Utime),
	}
	if job.ExpiresAt > 0 {
		res.ExpiresAt = time.UnixMilli(job.ExpiresAt)
	}
	return res
}
