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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/job"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

func initCronJobs(db *egorm.Component, ec ecache.Cache,
	cm *career.Module, jm *job.Module, im *interactive.Module) []ecron.Ecron {
	// 技能热度：被多少个方向要求 + 被多少个在招岗位要求
	popularity := skill.InitPopularityJob(db, ec, []skill.UsageCount{
		cm.RoleSvc.CountRequirementsBySkill,
		jm.Svc.CountSkillUsage,
	})
	// 方向需求热度的外部信号：在招岗位数和浏览量
	demand := career.InitDemandScoreJob(db, ec, []career.RoleSignal{
		jm.Svc.CountActiveByRole,
		func(ctx context.Context) (map[int64]int64, error) {
			return im.Svc.ViewCnts(ctx, interactive.BizRole)
		},
	})
	expire := job.InitExpireJob(db)
	return []ecron.Ecron{
		ecron.Load("cron.popularity").Build(ecron.WithJob(funcJobWrapper(popularity))),
		ecron.Load("cron.demand").Build(ecron.WithJob(funcJobWrapper(demand))),
		ecron.Load("cron.expire").Build(ecron.WithJob(funcJobWrapper(expire))),
	}
}

func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run(ctx)
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		duration := time.Since(start)
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldKey("运行时间"),
			elog.FieldCost(duration))
		return nil
	}
}
