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

type Status uint8

const (
	StatusUnknown Status = 0
	StatusNormal  Status = 1
	// StatusArchived 归档的路线不再接受学习项操作
	StatusArchived Status = 2
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

type ItemStatus uint8

const (
	ItemStatusUnknown    ItemStatus = 0
	ItemStatusPending    ItemStatus = 1
	ItemStatusInProgress ItemStatus = 2
	// ItemStatusCompleted 终态，不接受任何状态变更
	ItemStatusCompleted ItemStatus = 3
)

func (s ItemStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s ItemStatus) String() string {
	switch s {
	case ItemStatusPending:
		return "pending"
	case ItemStatusInProgress:
		return "in_progress"
	case ItemStatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Roadmap 一个用户对一个方向的学习路线，(uid, rid) 唯一。
// 一个用户同一时刻至多一条 Active 的路线，激活走事务切换。
type Roadmap struct {
	ID  int64
	SN  string
	Uid int64
	Rid int64
	// RoleTitle 生成时方向名字的冗余
	RoleTitle string
	Status    Status
	Active    bool
	// TotalWeeks 生成时的总周数估算，含同类折扣
	TotalWeeks int
	// Progress 已完成学习项的占比，0 到 100，读路径上计算
	Progress float64
	// EstimatedDone 按未完成项的预估周数推算的完成时间
	EstimatedDone time.Time
	Items         []Item
	Ctime         time.Time
	Utime         time.Time
}

// Item 一个技能习得步骤。
// Sequence 从 0 开始连续编号，是推荐学习顺序，不是硬性门槛。
type Item struct {
	ID       int64
	Rmid     int64
	Sid      int64
	Name     string
	Category string
	// TargetLevel 学到哪一档
	TargetLevel matching.Level
	Sequence    int
	Status      ItemStatus
	Priority    matching.Priority
	// EstimatedWeeks 单项预估周数，不含同类折扣
	EstimatedWeeks int
	// ActualWeeks 完成时自报的实际周数
	ActualWeeks int
	StartTime   time.Time
	EndTime     time.Time
}

// NextItem "下一项"的查询结果。
// Done 为 true 表示路线上已经没有待学的项了。
type NextItem struct {
	Done bool
	Item Item
}

// Stats 全站学习路线的规模和完成情况
type Stats struct {
	Roadmaps       int64
	ItemsCompleted int64
	ItemsTotal     int64
}
