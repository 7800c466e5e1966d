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

type CollectReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type CollectResp struct {
	// 切换之后是否处于收藏状态
	Collected bool `json:"collected"`
}

type GetCntReq struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"bizId"`
}

type GetCntResp struct {
	ViewCnt    int  `json:"viewCnt"`
	CollectCnt int  `json:"collectCnt"`
	Collected  bool `json:"collected"`
}

type CollectionListReq struct {
	Biz    string `json:"biz"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type CollectionListResp struct {
	BizIds []int64 `json:"bizIds"`
}
