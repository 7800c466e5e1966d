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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/skillbridge/internal/job/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*ExpireJob)(nil)

// ExpireJob 把截止日期已过的在招岗位批量置为过期
type ExpireJob struct {
	repo   repository.JobRepo
	logger *elog.Component
}

func NewExpireJob(repo repository.JobRepo) *ExpireJob {
	return &ExpireJob{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (e *ExpireJob) Name() string {
	return "JobExpireJob"
}

func (e *ExpireJob) Run(ctx context.Context) error {
	cnt, err := e.repo.ExpireDue(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("岗位过期清理失败: %w", err)
	}
	if cnt > 0 {
		e.logger.Info("岗位过期清理完成", elog.Int64("count", cnt))
	}
	return nil
}
