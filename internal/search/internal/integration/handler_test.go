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
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/skillbridge/internal/search"
	"github.com/ecodeclub/skillbridge/internal/search/internal/event"
	"github.com/ecodeclub/skillbridge/internal/search/internal/integration/startup"
	"github.com/ecodeclub/skillbridge/internal/search/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/search/internal/web"
	"github.com/ecodeclub/skillbridge/internal/test"
	testioc "github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// 测试数据的 id 都落在这个区间里，清理的时候按区间删
const (
	testIDGt = 5000
	testIDLt = 9000
)

type HandlerTestSuite struct {
	suite.Suite
	server   *egin.Component
	es       *elastic.Client
	syncSvc  search.SyncService
	producer mq.Producer
}

func (s *HandlerTestSuite) SetupSuite() {
	s.es = testioc.InitES()
	// 先用测试映射建好索引，模块初始化时发现索引已存在就不会再建
	require.NoError(s.T(), dao.InitEsTest(s.es))
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.syncSvc = m.SyncSvc
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	s.server = server

	q := testioc.InitMQ()
	s.producer, err = q.Producer(event.SyncTopic)
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	query := elastic.NewRangeQuery("id").Gt(testIDGt).Lt(testIDLt)
	for _, index := range []string{dao.SkillIndexName, dao.RoleIndexName, dao.JobIndexName} {
		_, err := s.es.DeleteByQuery(index).Query(query).Refresh("true").Do(ctx)
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) input(index string, id int64, doc any) {
	t := s.T()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	require.NoError(t, s.syncSvc.Input(ctx, index, strconv.FormatInt(id, 10), string(data)))
}

// search 轮询搜索接口直到结果满足预期。
// ES 的写入要等 refresh 之后才可见，所以不能写完立刻断言。
func (s *HandlerTestSuite) search(t *testing.T, req web.SearchReq,
	ok func(res web.SearchResult) bool) web.SearchResult {
	var res web.SearchResult
	require.Eventually(t, func() bool {
		httpReq, err := http.NewRequest(http.MethodPost,
			"/search/list", iox.NewJSONReader(req))
		require.NoError(t, err)
		httpReq.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.SearchResult]()
		s.server.ServeHTTP(recorder, httpReq)
		if recorder.Code != 200 {
			return false
		}
		res = recorder.MustScan().Data
		return ok(res)
	}, time.Second*10, time.Millisecond*100)
	return res
}

func (s *HandlerTestSuite) TestSearchSkill() {
	t := s.T()
	now := time.Now().UnixMilli()
	s.input(dao.SkillIndexName, 5001, dao.Skill{
		ID:         5001,
		Name:       "kubernetes",
		Category:   "devops",
		Difficulty: 3,
		Desc:       "容器编排",
		Popularity: 100,
		Ctime:      now,
		Utime:      now,
	})
	s.input(dao.SkillIndexName, 5002, dao.Skill{
		ID:         5002,
		Name:       "mysql",
		Category:   "database",
		Difficulty: 2,
		Desc:       "关系型数据库",
		Popularity: 200,
		Ctime:      now,
		Utime:      now,
	})
	res := s.search(t, web.SearchReq{Expr: "biz:skill:kubernetes"}, func(res web.SearchResult) bool {
		return len(res.Skills) == 1
	})
	skill := res.Skills[0]
	require.Equal(t, int64(5001), skill.Id)
	require.Equal(t, "kubernetes", skill.Name)
	require.Equal(t, "devops", skill.Category)
	require.Equal(t, 100, skill.Popularity)
	require.Empty(t, res.Roles)
	require.Empty(t, res.Jobs)
}

func (s *HandlerTestSuite) TestSearchRoleStatus() {
	t := s.T()
	now := time.Now().UnixMilli()
	// 已发布
	s.input(dao.RoleIndexName, 5101, dao.Role{
		ID:          5101,
		Title:       "后端工程师",
		Overview:    "负责服务端开发",
		Category:    "engineering",
		SalaryMin:   2000000,
		SalaryMax:   5000000,
		DemandScore: 80,
		Growth:      0.15,
		Status:      2,
		Ctime:       now,
		Utime:       now,
	})
	// 未发布，搜不出来
	s.input(dao.RoleIndexName, 5102, dao.Role{
		ID:       5102,
		Title:    "后端架构师",
		Overview: "未发布的岗位方向",
		Category: "engineering",
		Status:   1,
		Ctime:    now,
		Utime:    now,
	})
	res := s.search(t, web.SearchReq{Expr: "biz:role:后端"}, func(res web.SearchResult) bool {
		return len(res.Roles) == 1
	})
	role := res.Roles[0]
	require.Equal(t, int64(5101), role.Id)
	require.Equal(t, "后端工程师", role.Title)
	require.Equal(t, 80, role.DemandScore)
}

func (s *HandlerTestSuite) TestSearchJobWithCol() {
	t := s.T()
	now := time.Now().UnixMilli()
	s.input(dao.JobIndexName, 5201, dao.Job{
		ID:        5201,
		Title:     "golang developer",
		Company:   "acme",
		Location:  "beijing",
		Remote:    true,
		Category:  "engineering",
		Rid:       1,
		SalaryMin: 3000000,
		SalaryMax: 6000000,
		Level:     "senior",
		Status:    2,
		Source:    "manual",
		URL:       "https://example.com/job/5201",
		Summary:   "主力语言 golang",
		PostedAt:  now,
		Ctime:     now,
		Utime:     now,
	})
	s.input(dao.JobIndexName, 5202, dao.Job{
		ID:       5202,
		Title:    "rust developer",
		Company:  "golang-labs",
		Location: "shanghai",
		Status:   2,
		PostedAt: now,
		Ctime:    now,
		Utime:    now,
	})
	// 限定只搜 title 列，golang-labs 这种公司名不应该被匹配上
	res := s.search(t, web.SearchReq{Expr: "biz:job:title:golang"}, func(res web.SearchResult) bool {
		return len(res.Jobs) == 1
	})
	job := res.Jobs[0]
	require.Equal(t, int64(5201), job.Id)
	require.Equal(t, "acme", job.Company)
	require.True(t, job.Remote)
	require.Equal(t, "senior", job.Level)
}

func (s *HandlerTestSuite) TestSearchAll() {
	t := s.T()
	now := time.Now().UnixMilli()
	s.input(dao.SkillIndexName, 5301, dao.Skill{
		ID:    5301,
		Name:  "distributed-systems",
		Desc:  "distributed 基础",
		Ctime: now,
		Utime: now,
	})
	s.input(dao.RoleIndexName, 5302, dao.Role{
		ID:       5302,
		Title:    "distributed systems engineer",
		Overview: "分布式系统方向",
		Status:   2,
		Ctime:    now,
		Utime:    now,
	})
	s.input(dao.JobIndexName, 5303, dao.Job{
		ID:       5303,
		Title:    "distributed storage engineer",
		Company:  "acme",
		Status:   2,
		PostedAt: now,
		Ctime:    now,
		Utime:    now,
	})
	res := s.search(t, web.SearchReq{Expr: "biz:all:distributed"}, func(res web.SearchResult) bool {
		return len(res.Skills) >= 1 && len(res.Roles) >= 1 && len(res.Jobs) >= 1
	})
	skillIds := slice.Map(res.Skills, func(idx int, src web.Skill) int64 {
		return src.Id
	})
	require.Contains(t, skillIds, int64(5301))
	roleIds := slice.Map(res.Roles, func(idx int, src web.Role) int64 {
		return src.Id
	})
	require.Contains(t, roleIds, int64(5302))
	jobIds := slice.Map(res.Jobs, func(idx int, src web.Job) int64 {
		return src.Id
	})
	require.Contains(t, jobIds, int64(5303))
}

func (s *HandlerTestSuite) TestSearchInvalidExpr() {
	t := s.T()
	testCases := []struct {
		name string
		expr string
	}{
		{
			name: "没有 biz 前缀",
			expr: "skill:kubernetes",
		},
		{
			name: "未知的 biz",
			expr: "biz:order:kubernetes",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/search/list", iox.NewJSONReader(web.SearchReq{Expr: tc.expr}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.SearchResult]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 500, recorder.Code)
			require.Equal(t, 508002, recorder.MustScan().Code)
		})
	}
}

func (s *HandlerTestSuite) TestConsumeSyncEvents() {
	t := s.T()
	now := time.Now().UnixMilli()
	doc, err := json.Marshal(dao.Skill{
		ID:    5401,
		Name:  "terraform",
		Desc:  "基础设施即代码",
		Ctime: now,
		Utime: now,
	})
	require.NoError(t, err)
	evt, err := json.Marshal(event.SyncEvent{
		Biz:   "skill",
		BizID: 5401,
		Data:  string(doc),
	})
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	_, err = s.producer.Produce(ctx, &mq.Message{Value: evt})
	require.NoError(t, err)

	res := s.search(t, web.SearchReq{Expr: "biz:skill:terraform"}, func(res web.SearchResult) bool {
		return len(res.Skills) == 1
	})
	require.Equal(t, int64(5401), res.Skills[0].Id)
	require.Equal(t, "terraform", res.Skills[0].Name)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
