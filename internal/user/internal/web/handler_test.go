package web

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/test"
	"github.com/ecodeclub/skillbridge/internal/user/internal/domain"
	svcmocks "github.com/ecodeclub/skillbridge/internal/user/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = int64(2063)

func newTestServer(hdl *Handler) *gin.Engine {
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	hdl.PrivateRoutes(server)
	return server
}

func TestHandlerProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmocks.NewMockUserService(ctrl)
	svc.EXPECT().Profile(gomock.Any(), uid).Return(domain.User{
		Id:         uid,
		SN:         "sn-2063",
		Nickname:   "打工人",
		Interests:  []string{"backend"},
		TargetRid:  12,
		TargetRole: "Python 后端工程师",
	}, nil)
	server := newTestServer(NewHandler(svc))

	req, err := http.NewRequest(http.MethodGet, "/user/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[Profile]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	p := recorder.MustScan().Data
	assert.Equal(t, uid, p.Id)
	assert.Equal(t, "sn-2063", p.SN)
	assert.Equal(t, []string{"backend"}, p.Interests)
	assert.Equal(t, int64(12), p.TargetRid)
	assert.Equal(t, "Python 后端工程师", p.TargetRole)
}

func TestHandlerUpdateInterests(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmocks.NewMockUserService(ctrl)
	server := newTestServer(NewHandler(svc))

	// 不在字典里的兴趣直接拒绝，不会打到 service
	req, err := http.NewRequest(http.MethodPost, "/user/interests",
		iox.NewJSONReader(InterestsReq{Interests: []string{"cooking"}}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 505003, recorder.MustScan().Code)

	svc.EXPECT().UpdateInterests(gomock.Any(), uid, []string{"backend", "data"}).Return(nil)
	req, err = http.NewRequest(http.MethodPost, "/user/interests",
		iox.NewJSONReader(InterestsReq{Interests: []string{"backend", "data"}}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)
}
