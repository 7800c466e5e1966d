//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/integration/startup"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/roadmap/internal/web"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/test"
	testioc "github.com/ecodeclub/skillbridge/internal/test/ioc"
	"github.com/ecodeclub/skillbridge/internal/user"
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
	dao      dao.RoadmapDAO
	skillSvc skill.Service
	roleSvc  career.RoleService
	userSvc  user.UserService

	pythonID       int64
	djangoID       int64
	pgID           int64
	intermediateID int64
}

func (s *HandlerTestSuite) SetupSuite() {
	db := testioc.InitDB()
	ec := testioc.InitCache()
	q := testioc.InitMQ()
	sm, err := skill.InitModule(db, ec, q)
	require.NoError(s.T(), err)
	um, err := user.InitModule(db, ec, q)
	require.NoError(s.T(), err)
	mm := matching.InitModule()
	idGen, err := snowflake.NewAppIDGenerator(1, 1)
	require.NoError(s.T(), err)
	cm, err := career.InitModule(db, ec, q, idGen, sm, um, mm)
	require.NoError(s.T(), err)
	module, err := startup.InitModule(cm, um, sm, mm)
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
	s.db = db
	s.dao = dao.NewRoadmapDAO(db)
	s.skillSvc = sm.Svc
	s.roleSvc = cm.RoleSvc
	s.userSvc = um.Svc
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"roadmap", "roadmap_item",
		"career_role", "career_requirement", "career_analysis",
		"skill", "skill_level", "user_skill", "user",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

// seedRole 方向和要求走职业模块的公开接口种
func (s *HandlerTestSuite) seedRole(t *testing.T, title string, category career.Category, reqs []career.Requirement) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	rid, err := s.roleSvc.Save(ctx, career.Role{
		Title:    title,
		Category: category,
		Status:   2,
	})
	require.NoError(t, err)
	for _, req := range reqs {
		req.Rid = rid
		_, err = s.roleSvc.SaveRequirement(ctx, req)
		require.NoError(t, err)
	}
	return rid
}

// seedCatalog 已具备 Python 中级，方向要求 Python 中级(high)、
// Django 中级(high)、PostgreSQL 初级(medium)，缺口是后两个
func (s *HandlerTestSuite) seedCatalog(t *testing.T) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	var err error
	s.pythonID, err = s.skillSvc.Save(ctx, skill.Skill{
		Name: "Python", Category: "programming_language", Difficulty: 2,
	})
	require.NoError(t, err)
	s.djangoID, err = s.skillSvc.Save(ctx, skill.Skill{
		Name: "Django", Category: "framework", Difficulty: 2,
	})
	require.NoError(t, err)
	s.pgID, err = s.skillSvc.Save(ctx, skill.Skill{
		Name: "PostgreSQL", Category: "database", Difficulty: 2,
	})
	require.NoError(t, err)
	_, err = s.skillSvc.SaveLevel(ctx, skill.SkillLevel{Name: "beginner", Rank: 1})
	require.NoError(t, err)
	s.intermediateID, err = s.skillSvc.SaveLevel(ctx, skill.SkillLevel{Name: "intermediate", Rank: 2})
	require.NoError(t, err)
	_, err = s.skillSvc.AddUserSkill(ctx, skill.UserSkill{
		Uid:    uid,
		Skill:  skill.Skill{ID: s.pythonID},
		Level:  skill.SkillLevel{ID: s.intermediateID},
		Status: skill.UserSkillStatusAcquired,
	})
	require.NoError(t, err)

	return s.seedRole(t, "Python 后端工程师", "backend", []career.Requirement{
		{Sid: s.pythonID, Importance: matching.ImportanceHigh, Required: true, MinLevel: matching.LevelIntermediate},
		{Sid: s.djangoID, Importance: matching.ImportanceHigh, Required: true, MinLevel: matching.LevelIntermediate},
		{Sid: s.pgID, Importance: matching.ImportanceMedium, Required: true, MinLevel: matching.LevelBeginner},
	})
}

func (s *HandlerTestSuite) selectTarget(t *testing.T, rid int64) web.SelectTargetResp {
	req, err := http.NewRequest(http.MethodPost,
		"/career/target/select", iox.NewJSONReader(web.Rid{Rid: rid}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SelectTargetResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) post(t *testing.T, path string, body any) test.Result[any] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestSelectTarget() {
	t := s.T()
	rid := s.seedCatalog(t)

	resp := s.selectTarget(t, rid)
	assert.Equal(t, 37.5, resp.Analysis.MatchPercentage)
	assert.Equal(t, "not_ready", resp.Analysis.Readiness)
	assert.Equal(t, 6, resp.Analysis.EstimatedWeeks)

	rm := resp.Roadmap
	assert.True(t, rm.ID > 0)
	assert.NotEmpty(t, rm.SN)
	assert.True(t, rm.Active)
	assert.Equal(t, 6, rm.TotalWeeks)
	assert.Equal(t, float64(0), rm.Progress)
	// 高优先级的 Django 排在前面，序号连续
	require.Len(t, rm.Items, 2)
	assert.Equal(t, "Django", rm.Items[0].Name)
	assert.Equal(t, 0, rm.Items[0].Sequence)
	assert.Equal(t, "high", rm.Items[0].Priority)
	assert.Equal(t, "PostgreSQL", rm.Items[1].Name)
	assert.Equal(t, 1, rm.Items[1].Sequence)
	for _, item := range rm.Items {
		assert.Equal(t, "pending", item.Status)
	}

	// 用户档案回写了目标方向
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	u, err := s.userSvc.Profile(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, rid, u.TargetRid)
	assert.Equal(t, "Python 后端工程师", u.TargetRole)
}

func (s *HandlerTestSuite) TestRegenerateReplacesItems() {
	t := s.T()
	rid := s.seedCatalog(t)

	first := s.selectTarget(t, rid)
	// 学完 Django 之后重新生成，(uid, rid) 的路线原地替换
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	_, err := s.skillSvc.AddUserSkill(ctx, skill.UserSkill{
		Uid:    uid,
		Skill:  skill.Skill{ID: s.djangoID},
		Level:  skill.SkillLevel{ID: s.intermediateID},
		Status: skill.UserSkillStatusAcquired,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/roadmap/generate", iox.NewJSONReader(web.Rid{Rid: rid}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Roadmap]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	second := recorder.MustScan().Data

	assert.Equal(t, first.Roadmap.ID, second.ID)
	assert.Equal(t, first.Roadmap.SN, second.SN)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "PostgreSQL", second.Items[0].Name)
	assert.Equal(t, 2, second.TotalWeeks)

	var cnt int64
	require.NoError(t, s.db.Model(&dao.RoadmapItem{}).
		Where("rmid = ?", second.ID).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func (s *HandlerTestSuite) TestGenerateRoleNotFound() {
	t := s.T()
	s.seedCatalog(t)
	res := s.post(t, "/roadmap/generate", web.Rid{Rid: 999})
	assert.Equal(t, 503006, res.Code)
}

func (s *HandlerTestSuite) TestItemStateMachine() {
	t := s.T()
	rid := s.seedCatalog(t)
	rm := s.selectTarget(t, rid).Roadmap
	first, second := rm.Items[0], rm.Items[1]

	// pending 不能直接完成
	res := s.post(t, "/roadmap/item/complete", web.CompleteItemReq{Id: first.ID, ActualWeeks: 3})
	assert.Equal(t, 503004, res.Code)

	res = s.post(t, "/roadmap/item/start", web.IDReq{Id: first.ID})
	assert.Equal(t, 0, res.Code)
	// 重复开始
	res = s.post(t, "/roadmap/item/start", web.IDReq{Id: first.ID})
	assert.Equal(t, 503004, res.Code)

	// 实际周数必填且为正
	res = s.post(t, "/roadmap/item/complete", web.CompleteItemReq{Id: first.ID})
	assert.Equal(t, 503005, res.Code)

	res = s.post(t, "/roadmap/item/complete", web.CompleteItemReq{Id: first.ID, ActualWeeks: 3})
	assert.Equal(t, 0, res.Code)
	// completed 是终态
	res = s.post(t, "/roadmap/item/reset", web.IDReq{Id: first.ID})
	assert.Equal(t, 503004, res.Code)

	// pending 重置是幂等的
	res = s.post(t, "/roadmap/item/reset", web.IDReq{Id: second.ID})
	assert.Equal(t, 0, res.Code)

	// in_progress 可以重置回 pending
	res = s.post(t, "/roadmap/item/start", web.IDReq{Id: second.ID})
	assert.Equal(t, 0, res.Code)
	res = s.post(t, "/roadmap/item/reset", web.IDReq{Id: second.ID})
	assert.Equal(t, 0, res.Code)
	item, err := s.dao.GetItem(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), item.Status)

	// 完成 Django 之后技能档案多了一条中级记录
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	uss, err := s.skillSvc.UserSkills(ctx, uid)
	require.NoError(t, err)
	var got skill.UserSkill
	for _, us := range uss {
		if us.Skill.ID == first.Sid {
			got = us
		}
	}
	assert.Equal(t, uint8(2), got.Level.Rank)

	// 进度按已完成占比取一位小数
	req, err := http.NewRequest(http.MethodPost,
		"/roadmap/detail", iox.NewJSONReader(web.IDReq{Id: rm.ID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Roadmap]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	detail := recorder.MustScan().Data
	assert.Equal(t, 50.0, detail.Progress)
	assert.Equal(t, 3, detail.Items[0].ActualWeeks)
	assert.NotEmpty(t, detail.Items[0].StartTime)
	assert.NotEmpty(t, detail.Items[0].EndTime)
}

func (s *HandlerTestSuite) TestSingleActive() {
	t := s.T()
	rid := s.seedCatalog(t)
	rid2 := s.seedRole(t, "数据工程师", "data", []career.Requirement{
		{Sid: s.pgID, Importance: matching.ImportanceHigh, Required: true, MinLevel: matching.LevelIntermediate},
	})

	first := s.selectTarget(t, rid).Roadmap
	second := s.selectTarget(t, rid2).Roadmap
	assert.NotEqual(t, first.ID, second.ID)

	// 后生成的自动激活，先前那条被挤下去
	var rows []dao.Roadmap
	require.NoError(t, s.db.Where("uid = ?", uid).Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.False(t, rows[0].Active)
	assert.True(t, rows[1].Active)

	// 手动切回第一条
	res := s.post(t, "/roadmap/activate", web.IDReq{Id: first.ID})
	assert.Equal(t, 0, res.Code)
	req, err := http.NewRequest(http.MethodGet, "/roadmap/active", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Roadmap]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, first.ID, recorder.MustScan().Data.ID)

	// 归档后不能再激活，学习项操作也被拒绝
	res = s.post(t, "/roadmap/archive", web.IDReq{Id: second.ID})
	assert.Equal(t, 0, res.Code)
	res = s.post(t, "/roadmap/activate", web.IDReq{Id: second.ID})
	assert.Equal(t, 503004, res.Code)
	res = s.post(t, "/roadmap/item/start", web.IDReq{Id: second.Items[0].ID})
	assert.Equal(t, 503004, res.Code)
}

func (s *HandlerTestSuite) TestNext() {
	t := s.T()
	rid := s.seedCatalog(t)
	rm := s.selectTarget(t, rid).Roadmap

	req, err := http.NewRequest(http.MethodGet, "/roadmap/next", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.NextResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	next := recorder.MustScan().Data
	assert.False(t, next.Done)
	require.NotNil(t, next.Item)
	assert.Equal(t, rm.Items[0].ID, next.Item.ID)

	for _, item := range rm.Items {
		res := s.post(t, "/roadmap/item/start", web.IDReq{Id: item.ID})
		require.Equal(t, 0, res.Code)
		res = s.post(t, "/roadmap/item/complete", web.CompleteItemReq{Id: item.ID, ActualWeeks: 1})
		require.Equal(t, 0, res.Code)
	}

	recorder = test.NewJSONResponseRecorder[web.NextResp]()
	req, err = http.NewRequest(http.MethodGet, "/roadmap/next", nil)
	require.NoError(t, err)
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	next = recorder.MustScan().Data
	assert.True(t, next.Done)
	assert.Nil(t, next.Item)
}

func (s *HandlerTestSuite) TestOwnership() {
	t := s.T()
	rid := s.seedCatalog(t)
	rm := s.selectTarget(t, rid).Roadmap

	// 换了归属之后就查不到了
	require.NoError(t, s.db.Model(&dao.Roadmap{}).
		Where("id = ?", rm.ID).Update("uid", uid+1).Error)
	res := s.post(t, "/roadmap/detail", web.IDReq{Id: rm.ID})
	assert.Equal(t, 503002, res.Code)
	res = s.post(t, "/roadmap/item/start", web.IDReq{Id: rm.Items[0].ID})
	assert.Equal(t, 503003, res.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
