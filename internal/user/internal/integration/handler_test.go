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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/test"
	testioc "github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/ecodeclub/skillbridge/internal/user/internal/errs"
	"github.com/ecodeclub/skillbridge/internal/user/internal/integration/startup"
	"github.com/ecodeclub/skillbridge/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2071)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    user.UserService
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.svc = module.Svc
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `user`").Error
	require.NoError(s.T(), err)
	// 档案有缓存，清库的同时要清掉
	_, err = testioc.InitCache().Delete(context.Background(),
		fmt.Sprintf("user:info:%d", uid))
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) profile(t *testing.T) web.Profile {
	req, err := http.NewRequest(http.MethodGet, "/user/profile", iox.NewJSONReader(nil))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) TestProfile() {
	t := s.T()
	// 第一次访问就建好档案
	p := s.profile(t)
	assert.Equal(t, uid, p.Id)
	assert.NotEmpty(t, p.SN)
	assert.Equal(t, p.SN[:4], p.Nickname)
	// 再访问拿到的是同一份
	again := s.profile(t)
	assert.Equal(t, p.SN, again.SN)
}

func (s *HandlerTestSuite) TestEdit() {
	t := s.T()
	sn := s.profile(t).SN
	req, err := http.NewRequest(http.MethodPost,
		"/user/profile", iox.NewJSONReader(web.EditReq{
			Nickname:        "阿桥",
			Avatar:          "https://example.com/avatar.png",
			Bio:             "三年 CRUD，想转基础架构",
			CurrentTitle:    "初级后端工程师",
			ExperienceYears: 3,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	p := s.profile(t)
	assert.Equal(t, "阿桥", p.Nickname)
	assert.Equal(t, "https://example.com/avatar.png", p.Avatar)
	assert.Equal(t, "三年 CRUD，想转基础架构", p.Bio)
	assert.Equal(t, "初级后端工程师", p.CurrentTitle)
	assert.Equal(t, uint8(3), p.ExperienceYears)
	// 序列号不会被编辑覆盖
	assert.Equal(t, sn, p.SN)
}

func (s *HandlerTestSuite) TestUpdateInterests() {
	testCases := []struct {
		name      string
		req       web.InterestsReq
		wantCode  int
		wantRes   int
		interests []string
	}{
		{
			name: "合法兴趣",
			req: web.InterestsReq{
				Interests: []string{"backend", "devops"},
			},
			wantCode:  200,
			interests: []string{"backend", "devops"},
		},
		{
			name: "非法兴趣",
			req: web.InterestsReq{
				Interests: []string{"backend", "metaverse"},
			},
			wantCode: 200,
			wantRes:  errs.InvalidInterest.Code,
			// 整个请求被拒绝，前一个用例的数据原样保留
			interests: []string{"backend", "devops"},
		},
	}
	t := s.T()
	// 先把档案建出来
	s.profile(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/user/interests", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res, err := recorder.Scan()
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res.Code)
			assert.Equal(t, tc.interests, s.profile(t).Interests)
		})
	}
}

func (s *HandlerTestSuite) TestUpdateTargetRole() {
	t := s.T()
	s.profile(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := s.svc.UpdateTargetRole(ctx, uid, 12, "后端工程师")
	require.NoError(t, err)
	p := s.profile(t)
	assert.Equal(t, int64(12), p.TargetRid)
	assert.Equal(t, "后端工程师", p.TargetRole)
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
