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

const (
	BizSkill = "skill"
	BizRole  = "role"
	BizJob   = "job"
)

// ValidBiz 目前只有技能、岗位角色和职位三类资源支持浏览和收藏
func ValidBiz(biz string) bool {
	switch biz {
	case BizSkill, BizRole, BizJob:
		return true
	default:
		return false
	}
}

type Interactive struct {
	Biz        string
	BizId      int64
	ViewCnt    int
	CollectCnt int
	// 当前用户是否收藏过
	Collected bool
}
