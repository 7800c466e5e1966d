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

package domain

import (
	"time"

	"github.com/ecodeclub/skillbridge/internal/matching"
)

type JobStatus uint8

const (
	JobStatusUnknown JobStatus = 0
	// JobStatusDraft 管理端能看到，对外不可见
	JobStatusDraft  JobStatus = 1
	JobStatusActive JobStatus = 2
	// JobStatusExpired 过了截止日期或者被手动关闭
	JobStatusExpired JobStatus = 3
)

func (s JobStatus) ToUint8() uint8 {
	return uint8(s)
}

// Seniority 岗位的资历要求，闭集
type Seniority string

const (
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
	SeniorityLead   Seniority = "lead"
)

func (s Seniority) Valid() bool {
	switch s {
	case SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityLead:
		return true
	default:
		return false
	}
}

func (s Seniority) String() string {
	return string(s)
}

// ValidCategory 类别闭集，和职业方向、用户兴趣用同一套取值
func ValidCategory(c string) bool {
	switch c {
	case "backend", "frontend", "mobile", "data",
		"ai", "devops", "security", "product":
		return true
	default:
		return false
	}
}

// Job 一条在招岗位，方向类别和职业方向用同一套取值
type Job struct {
	ID       int64
	Title    string
	Company  string
	Location string
	Remote   bool
	Category string
	// Rid 关联的职业方向，0 表示没有关联
	Rid       int64
	SalaryMin int64
	SalaryMax int64
	Level     Seniority
	Status    JobStatus
	// Source URL 岗位的来源站点和原始链接
	Source  string
	URL     string
	Summary string
	// Skills 技能要求，详情接口才会带上
	Skills    []JobSkill
	PostedAt  time.Time
	ExpiresAt time.Time
	Ctime     time.Time
	Utime     time.Time
}

// Expired 截止日期是否已过，没填截止日期永不过期
func (j Job) Expired(now time.Time) bool {
	return !j.ExpiresAt.IsZero() && j.ExpiresAt.Before(now)
}

// JobSkill 岗位的一条技能要求
type JobSkill struct {
	ID  int64
	Jid int64
	Sid int64
	// 以下是技能目录的冗余，读路径上填充
	SkillName     string
	SkillCategory string
	Difficulty    uint8
	Popularity    int

	Importance matching.Importance
	// Required 为 false 是加分项
	Required bool
	MinLevel matching.Level
}

// Recommendation 推荐给用户的岗位及其匹配信息
type Recommendation struct {
	Job             Job
	Score           float64
	MatchPercentage float64
	Reasons         []string
}

// Match 用户和单个岗位的完整匹配结果
type Match struct {
	Job    Job
	Result matching.MatchResult
	// EstimatedWeeks 补齐全部缺口的估算周数
	EstimatedWeeks int
	Readiness      matching.Readiness
}

// CategoryCount 类别及其在招岗位数
type CategoryCount struct {
	Category string
	Count    int64
}
