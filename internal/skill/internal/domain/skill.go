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

import "time"

// Category 技能类别，闭集，入口处校验
type Category string

const (
	CategoryLanguage  Category = "programming_language"
	CategoryFramework Category = "framework"
	CategoryDatabase  Category = "database"
	CategoryDevOps    Category = "devops"
	CategoryCloud     Category = "cloud"
	CategoryTool      Category = "tool"
	CategorySoftSkill Category = "soft_skill"
	CategoryOther     Category = "other"
)

func Categories() []Category {
	return []Category{
		CategoryLanguage,
		CategoryFramework,
		CategoryDatabase,
		CategoryDevOps,
		CategoryCloud,
		CategoryTool,
		CategorySoftSkill,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryLanguage, CategoryFramework, CategoryDatabase,
		CategoryDevOps, CategoryCloud, CategoryTool,
		CategorySoftSkill, CategoryOther:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

type Skill struct {
	ID       int64
	Name     string
	Category Category
	// Difficulty 难度档位，1 到 4，和技能等级同刻度
	Difficulty uint8
	Desc       string
	// Popularity 热度 0 到 100，由定时任务重算
	Popularity int
	Ctime      time.Time
	Utime      time.Time
}

// SkillLevel 技能水平等级，Rank 全局唯一，1 到 4
type SkillLevel struct {
	ID   int64
	Name string
	Rank uint8
	Desc string
}

type UserSkillStatus uint8

const (
	UserSkillStatusUnknown UserSkillStatus = 0
	// UserSkillStatusLearning 在学
	UserSkillStatusLearning UserSkillStatus = 1
	// UserSkillStatusAcquired 已掌握
	UserSkillStatusAcquired UserSkillStatus = 2
)

func (s UserSkillStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s UserSkillStatus) Valid() bool {
	return s == UserSkillStatusLearning || s == UserSkillStatusAcquired
}

// UserSkill 用户已具备的一项技能，(Uid, Skill.ID) 唯一
type UserSkill struct {
	ID     int64
	Uid    int64
	Skill  Skill
	Level  SkillLevel
	Status UserSkillStatus
	Ctime  time.Time
	Utime  time.Time
}

// CategoryCount 类别及其收录的技能数
type CategoryCount struct {
	Category Category
	Count    int64
}
