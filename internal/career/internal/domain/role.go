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

// Category 职业方向的类别，闭集，和用户兴趣用同一套取值
type Category string

const (
	CategoryBackend  Category = "backend"
	CategoryFrontend Category = "frontend"
	CategoryMobile   Category = "mobile"
	CategoryData     Category = "data"
	CategoryAI       Category = "ai"
	CategoryDevOps   Category = "devops"
	CategorySecurity Category = "security"
	CategoryProduct  Category = "product"
)

func Categories() []Category {
	return []Category{
		CategoryBackend,
		CategoryFrontend,
		CategoryMobile,
		CategoryData,
		CategoryAI,
		CategoryDevOps,
		CategorySecurity,
		CategoryProduct,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryBackend, CategoryFrontend, CategoryMobile,
		CategoryData, CategoryAI, CategoryDevOps,
		CategorySecurity, CategoryProduct:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

type RoleStatus uint8

const (
	RoleStatusUnknown RoleStatus = 0
	// RoleStatusDraft 管理端能看到，对外不可见
	RoleStatusDraft  RoleStatus = 1
	RoleStatusActive RoleStatus = 2
	// RoleStatusRetired 下架的方向，历史分析照常能看
	RoleStatusRetired RoleStatus = 3
)

func (s RoleStatus) ToUint8() uint8 {
	return uint8(s)
}

// Role 职业方向
type Role struct {
	ID       int64
	Title    string
	Overview string
	Category Category
	// SalaryMin SalaryMax 月薪范围，单位元
	SalaryMin int64
	SalaryMax int64
	// DemandScore 市场需求热度 0 到 100，由定时任务重算
	DemandScore int
	// Growth 年增长率，百分比
	Growth float64
	Status RoleStatus
	// Requirements 技能要求，详情接口才会带上
	Requirements []Requirement
	Ctime        time.Time
	Utime        time.Time
}

// Requirement 职业方向的一条技能要求
type Requirement struct {
	ID  int64
	Rid int64
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

// CategoryCount 类别及其收录的方向数
type CategoryCount struct {
	Category Category
	Count    int64
}
