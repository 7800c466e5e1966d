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

package web

import (
	"time"

	"github.com/ecodeclub/skillbridge/internal/notification/internal/domain"
)

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ReadReq struct {
	Ids []int64 `json:"ids"`
}

type Notification struct {
	Id      int64  `json:"id"`
	Biz     string `json:"biz"`
	BizId   int64  `json:"bizId"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Read    bool   `json:"read"`
	Ctime   string `json:"ctime"`
}

type NotificationList struct {
	Total         int64          `json:"total"`
	Unread        int64          `json:"unread"`
	Notifications []Notification `json:"notifications"`
}

func newNotification(n domain.Notification) Notification {
	return Notification{
		Id:      n.Id,
		Biz:     n.Biz,
		BizId:   n.BizId,
		Title:   n.Title,
		Content: n.Content,
		Read:    n.Read,
		Ctime:   n.Ctime.Format(time.DateTime),
	}
}
