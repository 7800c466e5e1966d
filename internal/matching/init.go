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

package matching

import (
	"github.com/ecodeclub/skillbridge/internal/matching/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/matching/internal/service"
	"github.com/gotomicro/ego/core/econf"
)

// InitModule 纯计算模块，没有外部依赖，不走 wire
func InitModule() *Module {
	params := domain.DefaultParams()
	if econf.Get("matching") != nil {
		err := econf.UnmarshalKey("matching", &params)
		if err != nil {
			panic(err)
		}
	}
	return &Module{
		Svc:    service.NewService(params),
		Params: params,
	}
}
