//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/event"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/integration/startup"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/web"
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

const uid = int64(2061)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.SkillDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	producer, err := event.NewSyncEventProducer(testioc.InitMQ())
	require.NoError(s.T(), err)
	module, err := startup.InitModule(producer)
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
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.dao = dao.NewSkillDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `skill`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `skill_level`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `user_skill`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSave() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		after    func(t *testing.T)
		req      web.SaveReq
		wantCode int
		wantResp test.Result[int64]
	}{
		{
			name:   "新建技能",
			before: func(t *testing.T) {},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				sk, err := s.dao.GetByID(ctx, 1)
				require.NoError(t, err)
				s.assertSkill(t, dao.Skill{
					Name:       "Go",
					Category:   "programming_language",
					Difficulty: 2,
					Desc:       "并发友好的编译型语言",
				}, sk)
			},
			req: web.SaveReq{
				Skill: web.Skill{
					Name:       "Go",
					Category:   "programming_language",
					Difficulty: 2,
					Desc:       "并发友好的编译型语言",
				},
			},
			wantCode: 200,
			wantResp: test.Result[int64]{
				Data: 1,
			},
		},
		{
			name: "更新技能",
			before: func(t *testing.T) {
				err := s.db.Create(&dao.Skill{
					Id:         2,
					Name:       "Docker",
					Category:   "tool",
					Difficulty: 1,
					Desc:       "旧描述",
					Base: dao.Base{
						Ctime: 123,
						Utime: 123,
					},
				}).Error
				require.NoError(t, err)
			},
			after: func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				sk, err := s.dao.GetByID(ctx, 2)
				require.NoError(t, err)
				assert.True(t, sk.Utime > 123)
				sk.Utime = 0
				sk.Ctime = 0
				assert.Equal(t, dao.Skill{
					Id:         2,
					Name:       "Docker",
					Category:   "devops",
					Difficulty: 2,
					Desc:       "容器化",
				}, sk)
			},
			req: web.SaveReq{
				Skill: web.Skill{
					ID:         2,
					Name:       "Docker",
					Category:   "devops",
					Difficulty: 2,
					Desc:       "容器化",
				},
			},
			wantCode: 200,
			wantResp: test.Result[int64]{
				Data: 2,
			},
		},
		{
			name:   "非法分类",
			before: func(t *testing.T) {},
			after:  func(t *testing.T) {},
			req: web.SaveReq{
				Skill: web.Skill{
					Name:       "玄学",
					Category:   "magic",
					Difficulty: 2,
				},
			},
			wantCode: 200,
			wantResp: test.Result[int64]{
				Code: 501003,
				Msg:  "非法技能分类",
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/skill/save", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			tc.after(t)
			err = s.db.Exec("TRUNCATE TABLE `skill`").Error
			require.NoError(t, err)
		})
	}
}

func (s *HandlerTestSuite) TestList() {
	// 准备一批技能
	skills := []dao.Skill{
		{Id: 1, Name: "Go", Category: "programming_language", Difficulty: 2, Popularity: 90},
		{Id: 2, Name: "Kubernetes", Category: "devops", Difficulty: 4, Popularity: 70},
		{Id: 3, Name: "MySQL", Category: "database", Difficulty: 2, Popularity: 85},
		{Id: 4, Name: "Python", Category: "programming_language", Difficulty: 1, Popularity: 95},
	}
	for _, sk := range skills {
		sk.Ctime = 123
		sk.Utime = 123
		require.NoError(s.T(), s.db.Create(&sk).Error)
	}

	testCases := []struct {
		name     string
		req      web.ListReq
		wantCode int
		wantLen  int
		wantTot  int64
	}{
		{
			name: "全量分页",
			req: web.ListReq{
				Page: web.Page{Offset: 0, Limit: 10},
			},
			wantCode: 200,
			wantLen:  4,
			wantTot:  4,
		},
		{
			name: "按分类筛选",
			req: web.ListReq{
				Page:     web.Page{Offset: 0, Limit: 10},
				Category: "programming_language",
			},
			wantCode: 200,
			wantLen:  2,
			wantTot:  2,
		},
		{
			name: "按难度筛选",
			req: web.ListReq{
				Page:       web.Page{Offset: 0, Limit: 10},
				Difficulty: 4,
			},
			wantCode: 200,
			wantLen:  1,
			wantTot:  1,
		},
		{
			name: "分页截断",
			req: web.ListReq{
				Page: web.Page{Offset: 0, Limit: 2},
			},
			wantCode: 200,
			wantLen:  2,
			wantTot:  4,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/skill/list", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.SkillList]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			data := recorder.MustScan().Data
			assert.Equal(t, tc.wantTot, data.Total)
			assert.Equal(t, tc.wantLen, len(data.Skills))
		})
	}
}

func (s *HandlerTestSuite) TestUserSkill() {
	// 技能和等级字典
	require.NoError(s.T(), s.db.Create(&dao.Skill{
		Id: 1, Name: "Go", Category: "programming_language", Difficulty: 2,
		Base: dao.Base{Ctime: 123, Utime: 123},
	}).Error)
	require.NoError(s.T(), s.db.Create(&dao.SkillLevel{
		Id: 1, Name: "beginner", Rank: 1,
		Base: dao.Base{Ctime: 123, Utime: 123},
	}).Error)
	require.NoError(s.T(), s.db.Create(&dao.SkillLevel{
		Id: 2, Name: "intermediate", Rank: 2,
		Base: dao.Base{Ctime: 123, Utime: 123},
	}).Error)

	// 第一次添加成功
	req, err := http.NewRequest(http.MethodPost,
		"/skill/user/add", iox.NewJSONReader(web.AddUserSkillReq{
			Sid:    1,
			Slid:   1,
			Status: domain.UserSkillStatusAcquired.ToUint8(),
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), int64(1), recorder.MustScan().Data)

	// 重复添加返回业务错误码
	req, err = http.NewRequest(http.MethodPost,
		"/skill/user/add", iox.NewJSONReader(web.AddUserSkillReq{
			Sid:  1,
			Slid: 2,
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	require.Equal(s.T(), 501203, recorder.MustScan().Code)

	// 更新等级
	req, err = http.NewRequest(http.MethodPost,
		"/skill/user/update", iox.NewJSONReader(web.AddUserSkillReq{
			Sid:    1,
			Slid:   2,
			Status: domain.UserSkillStatusLearning.ToUint8(),
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	// 列表能看到更新后的等级
	req, err = http.NewRequest(http.MethodGet, "/skill/user/list", nil)
	require.NoError(s.T(), err)
	listRecorder := test.NewJSONResponseRecorder[[]web.UserSkill]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(s.T(), 200, listRecorder.Code)
	uss := listRecorder.MustScan().Data
	require.Equal(s.T(), 1, len(uss))
	assert.Equal(s.T(), "Go", uss[0].Skill.Name)
	assert.Equal(s.T(), uint8(2), uss[0].Level.Rank)
	assert.Equal(s.T(), domain.UserSkillStatusLearning.ToUint8(), uss[0].Status)

	// 移除之后列表为空
	req, err = http.NewRequest(http.MethodPost,
		"/skill/user/delete", iox.NewJSONReader(web.RemoveUserSkillReq{Sid: 1}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)

	req, err = http.NewRequest(http.MethodGet, "/skill/user/list", nil)
	require.NoError(s.T(), err)
	listRecorder = test.NewJSONResponseRecorder[[]web.UserSkill]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(s.T(), 200, listRecorder.Code)
	assert.Equal(s.T(), 0, len(listRecorder.MustScan().Data))
}

func (s *HandlerTestSuite) TestSaveAcquiredMonotonic() {
	require.NoError(s.T(), s.db.Create(&dao.Skill{
		Id: 1, Name: "Go", Category: "programming_language", Difficulty: 2,
		Base: dao.Base{Ctime: 123, Utime: 123},
	}).Error)
	levels := []dao.SkillLevel{
		{Id: 1, Name: "beginner", Rank: 1, Base: dao.Base{Ctime: 123, Utime: 123}},
		{Id: 3, Name: "advanced", Rank: 3, Base: dao.Base{Ctime: 123, Utime: 123}},
	}
	for _, level := range levels {
		require.NoError(s.T(), s.db.Create(&level).Error)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	// 先写入高等级
	err := s.dao.UpsertAcquired(ctx, dao.UserSkill{
		Uid: uid, Sid: 1, Slid: 3, LevelRank: 3,
		Status: domain.UserSkillStatusAcquired.ToUint8(),
	})
	require.NoError(s.T(), err)
	// 低等级回写不会把档案降级
	err = s.dao.UpsertAcquired(ctx, dao.UserSkill{
		Uid: uid, Sid: 1, Slid: 1, LevelRank: 1,
		Status: domain.UserSkillStatusAcquired.ToUint8(),
	})
	require.NoError(s.T(), err)

	uss, err := s.dao.UserSkills(ctx, uid)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, len(uss))
	assert.Equal(s.T(), uint8(3), uss[0].LevelRank)
	assert.Equal(s.T(), int64(3), uss[0].Slid)
}

func (s *HandlerTestSuite) TestPopularAndCategories() {
	skills := []dao.Skill{
		{Id: 1, Name: "Go", Category: "programming_language", Difficulty: 2, Popularity: 90},
		{Id: 2, Name: "Kubernetes", Category: "devops", Difficulty: 4, Popularity: 70},
		{Id: 3, Name: "MySQL", Category: "database", Difficulty: 2, Popularity: 85},
	}
	for _, sk := range skills {
		sk.Ctime = 123
		sk.Utime = 123
		require.NoError(s.T(), s.db.Create(&sk).Error)
	}

	req, err := http.NewRequest(http.MethodPost,
		"/skill/popular", iox.NewJSONReader(web.PopularReq{Limit: 2}))
	req.Header.Set("content-type", "application/json")
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[[]web.Skill]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	popular := recorder.MustScan().Data
	require.Equal(s.T(), 2, len(popular))
	assert.Equal(s.T(), "Go", popular[0].Name)
	assert.Equal(s.T(), "MySQL", popular[1].Name)

	req, err = http.NewRequest(http.MethodGet, "/skill/categories", nil)
	require.NoError(s.T(), err)
	catRecorder := test.NewJSONResponseRecorder[[]web.CategoryCount]()
	s.server.ServeHTTP(catRecorder, req)
	require.Equal(s.T(), 200, catRecorder.Code)
	counts := catRecorder.MustScan().Data
	assert.Equal(s.T(), 3, len(counts))
}

// assertSkill 不比较 id 和时间
func (s *HandlerTestSuite) assertSkill(t *testing.T, expect dao.Skill, actual dao.Skill) {
	assert.True(t, actual.Id > 0)
	assert.True(t, actual.Ctime > 0)
	assert.True(t, actual.Utime > 0)
	actual.Id = 0
	actual.Ctime = 0
	actual.Utime = 0
	assert.Equal(t, expect, actual)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
