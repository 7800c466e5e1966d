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

type Notification struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"index:idx_uid_read,priority:1"`
	// 业务类型和业务 id，前端用来跳转
	Biz     string `gorm:"type:varchar(128)"`
	BizId   int64
	Title   string `gorm:"type:varchar(512)"`
	Content string
	// read 是 MySQL 关键字，列名用 has_read
	HasRead bool  `gorm:"column:has_read;index:idx_uid_read,priority:2"`
	Ctime   int64
	Utime   int64 `gorm:"index"`
}

func (Notification) TableName() string {
	return "notification"
}
