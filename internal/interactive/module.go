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

package interactive

import (
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/events"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/service"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/web"
)

type Module struct {
	Hdl *Handler
	// Svc 给 BFF 拿收藏列表和计数，也给热度类定时任务提供浏览量
	Svc InteractiveSvc
	// C 互动事件消费者，随模块初始化一起启动
	C *events.Consumer
}

type (
	Handler        = web.Handler
	InteractiveSvc = service.InteractiveService
	Interactive    = domain.Interactive
)

const (
	BizSkill = domain.BizSkill
	BizRole  = domain.BizRole
	BizJob   = domain.BizJob
)
