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
	"github.com/ecodeclub/skillbridge/internal/notification"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/integration/startup"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/web"
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
	svc      notification.Service
	producer mq.Producer
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
	s.producer, err = testmq.Producer("notification_events")
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `notification`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) seed(t *testing.T, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		id, err := s.svc.Create(context.Background(), domain.Notification{
			Uid:     uid,
			Biz:     "roadmap",
			BizId:   int64(i + 1),
			Title:   "学习路线有更新",
			Content: "你的学习路线已经生成",
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func (s *HandlerTestSuite) list(t *testing.T, page web.Page) web.NotificationList {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/notification/list", iox.NewJSONReader(page))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.NotificationList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	ids := s.seed(t, 5)
	// 别人的通知不可见
	_, err := s.svc.Create(context.Background(), domain.Notification{
		Uid:   uid + 1,
		Biz:   "career",
		BizId: 1,
		Title: "目标方向已更新",
	})
	require.NoError(t, err)

	data := s.list(t, web.Page{Offset: 0, Limit: 3})
	assert.Equal(t, int64(5), data.Total)
	assert.Equal(t, int64(5), data.Unread)
	require.Len(t, data.Notifications, 3)
	// 新的在前
	assert.Equal(t, ids[4], data.Notifications[0].Id)
	assert.Equal(t, "学习路线有更新", data.Notifications[0].Title)
	assert.False(t, data.Notifications[0].Read)

	data = s.list(t, web.Page{Offset: 3, Limit: 3})
	require.Len(t, data.Notifications, 2)
	assert.Equal(t, ids[0], data.Notifications[1].Id)
}

func (s *HandlerTestSuite) TestRead() {
	t := s.T()
	ids := s.seed(t, 3)
	// 其中一条是别人的，不能被我标记
	otherId, err := s.svc.Create(context.Background(), domain.Notification{
		Uid:   uid + 1,
		Biz:   "career",
		BizId: 1,
		Title: "目标方向已更新",
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/notification/read",
		iox.NewJSONReader(web.ReadReq{Ids: []int64{ids[0], ids[1], otherId}}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	data := s.list(t, web.Page{Offset: 0, Limit: 10})
	assert.Equal(t, int64(3), data.Total)
	assert.Equal(t, int64(1), data.Unread)

	var other dao.Notification
	err = s.db.Where("id = ?", otherId).First(&other).Error
	require.NoError(t, err)
	assert.False(t, other.HasRead)
}

func (s *HandlerTestSuite) TestReadAll() {
	t := s.T()
	s.seed(t, 4)
	req, err := http.NewRequest(http.MethodPost, "/notification/read-all",
		iox.NewJSONReader(struct{}{}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	data := s.list(t, web.Page{Offset: 0, Limit: 10})
	assert.Equal(t, int64(4), data.Total)
	assert.Equal(t, int64(0), data.Unread)
	for _, n := range data.Notifications {
		assert.True(t, n.Read)
	}
}

func (s *HandlerTestSuite) TestConsumeNotificationEvents() {
	t := s.T()
	evt := map[string]any{
		"uid":     uid,
		"biz":     "roadmap",
		"bizID":   7,
		"title":   "学习路线已完成",
		"content": "恭喜你完成了全部学习项",
	}
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = s.producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var n dao.Notification
		err := s.db.Where("uid = ? AND biz = ? AND biz_id = ?", uid, "roadmap", 7).First(&n).Error
		return err == nil && n.Title == "学习路线已完成"
	}, 10*time.Second, 100*time.Millisecond)

	data2 := s.list(t, web.Page{Offset: 0, Limit: 10})
	assert.Equal(t, int64(1), data2.Unread)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
