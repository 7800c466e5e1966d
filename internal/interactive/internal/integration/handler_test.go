//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/integration/startup"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/web"
	"github.com/ecodeclub/skillbridge/internal/test"
	testioc "github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2063)

type HandlerTestSuite struct {
	suite.Suite
	server   *egin.Component
	db       *egorm.Component
	svc      interactive.InteractiveSvc
	producer mq.Producer
	dao      dao.InteractiveDAO
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
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.svc = module.Svc
	s.db = testioc.InitDB()
	testmq := testioc.InitMQ()
	s.producer, err = testmq.Producer("interaction_events")
	require.NoError(s.T(), err)
	s.dao = dao.NewInteractiveDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"interactives", "user_collection_bizs",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestCollectToggle() {
	t := s.T()
	// 第一次收藏
	req, err := http.NewRequest(http.MethodPost, "/intr/collect/toggle",
		iox.NewJSONReader(web.CollectReq{Biz: "job", BizId: 1}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CollectResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.True(t, recorder.MustScan().Data.Collected)

	ctx := context.Background()
	cb, err := s.dao.GetCollectInfo(ctx, "job", 1, uid)
	require.NoError(t, err)
	assert.Equal(t, uid, cb.Uid)
	intr, err := s.dao.Get(ctx, "job", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, intr.CollectCnt)

	// 再点一次就是取消收藏
	req, err = http.NewRequest(http.MethodPost, "/intr/collect/toggle",
		iox.NewJSONReader(web.CollectReq{Biz: "job", BizId: 1}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.CollectResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.False(t, recorder.MustScan().Data.Collected)

	_, err = s.dao.GetCollectInfo(ctx, "job", 1, uid)
	assert.ErrorIs(t, err, dao.ErrRecordNotFound)
	intr, err = s.dao.Get(ctx, "job", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, intr.CollectCnt)

	// 不认识的业务类型
	req, err = http.NewRequest(http.MethodPost, "/intr/collect/toggle",
		iox.NewJSONReader(web.CollectReq{Biz: "order", BizId: 1}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder2 := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder2, req)
	require.Equal(t, 200, recorder2.Code)
	assert.Equal(t, 506002, recorder2.MustScan().Code)
}

func (s *HandlerTestSuite) TestGetCnt() {
	t := s.T()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.svc.IncrViewCnt(ctx, "skill", 7))
	}
	collected, err := s.svc.CollectToggle(ctx, "skill", 7, uid)
	require.NoError(t, err)
	require.True(t, collected)
	// 别人的收藏不影响我的 collected 标记
	_, err = s.svc.CollectToggle(ctx, "skill", 7, uid+1)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/intr/cnt",
		iox.NewJSONReader(web.GetCntReq{Biz: "skill", BizId: 7}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.GetCntResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, 3, resp.ViewCnt)
	assert.Equal(t, 2, resp.CollectCnt)
	assert.True(t, resp.Collected)

	// 没有任何互动数据的资源返回零值
	req, err = http.NewRequest(http.MethodPost, "/intr/cnt",
		iox.NewJSONReader(web.GetCntReq{Biz: "skill", BizId: 999}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.GetCntResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan().Data
	assert.Equal(t, 0, resp.ViewCnt)
	assert.False(t, resp.Collected)
}

func (s *HandlerTestSuite) TestCollectionList() {
	t := s.T()
	ctx := context.Background()
	for _, id := range []int64{1, 2, 3} {
		collected, err := s.svc.CollectToggle(ctx, "job", id, uid)
		require.NoError(t, err)
		require.True(t, collected)
	}
	// 其它 biz 的收藏不会混进来
	_, err := s.svc.CollectToggle(ctx, "skill", 9, uid)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/intr/collection/list",
		iox.NewJSONReader(web.CollectionListReq{Biz: "job", Offset: 0, Limit: 2}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CollectionListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	// 按收藏时间倒序
	assert.Equal(t, []int64{3, 2}, recorder.MustScan().Data.BizIds)

	req, err = http.NewRequest(http.MethodPost, "/intr/collection/list",
		iox.NewJSONReader(web.CollectionListReq{Biz: "job", Offset: 2, Limit: 2}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.CollectionListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, []int64{1}, recorder.MustScan().Data.BizIds)
}

func (s *HandlerTestSuite) TestConsumeInteractionEvents() {
	t := s.T()
	ctx := context.Background()
	evts := []map[string]any{
		{"biz": "job", "biz_id": 11, "action": "view"},
		{"biz": "job", "biz_id": 11, "action": "view"},
		{"biz": "role", "biz_id": 5, "action": "view"},
		{"biz": "role", "biz_id": 5, "action": "collect", "uid": uid},
	}
	for _, evt := range evts {
		data, err := json.Marshal(evt)
		require.NoError(t, err)
		_, err = s.producer.Produce(ctx, &mq.Message{Value: data})
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		intr, err := s.dao.Get(ctx, "job", 11)
		if err != nil {
			return false
		}
		role, err := s.dao.Get(ctx, "role", 5)
		if err != nil {
			return false
		}
		return intr.ViewCnt == 2 && role.ViewCnt == 1 && role.CollectCnt == 1
	}, 10*time.Second, 100*time.Millisecond)

	cnts, err := s.svc.ViewCnts(ctx, "job")
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{11: 2}, cnts)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
