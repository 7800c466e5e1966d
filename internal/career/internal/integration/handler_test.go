//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/integration/startup"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/career/internal/web"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/pkg/snowflake"
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
	server         *egin.Component
	db             *egorm.Component
	dao            dao.AnalysisDAO
	skillSvc       skill.Service
	pythonID       int64
	djangoID       int64
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
	module, err := startup.InitModule(idGen, sm, um, mm)
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
	s.db = db
	s.dao = dao.NewAnalysisDAO(db)
	s.skillSvc = sm.Svc
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"career_role", "career_requirement", "career_analysis",
		"career_question", "career_question_option",
		"skill", "skill_level", "user_skill", "user",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

// seedSkill 技能目录归技能模块管，种数据走它的公开接口
func (s *HandlerTestSuite) seedSkill(t *testing.T, name string, category skill.Category, difficulty uint8) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	id, err := s.skillSvc.Save(ctx, skill.Skill{
		Name: name, Category: category, Difficulty: difficulty,
	})
	require.NoError(t, err)
	return id
}

func (s *HandlerTestSuite) seedLevel(t *testing.T, name string, rank uint8) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	id, err := s.skillSvc.SaveLevel(ctx, skill.SkillLevel{Name: name, Rank: rank})
	require.NoError(t, err)
	return id
}

func (s *HandlerTestSuite) acquireSkill(t *testing.T, sid, slid int64) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	_, err := s.skillSvc.AddUserSkill(ctx, skill.UserSkill{
		Uid:    uid,
		Skill:  skill.Skill{ID: sid},
		Level:  skill.SkillLevel{ID: slid},
		Status: skill.UserSkillStatusAcquired,
	})
	require.NoError(t, err)
}

// seedCatalog 造出经典场景：
// 已具备 Python 中级，方向要求 Python 中级(high)、Django 中级(high)、PostgreSQL 初级(medium)
func (s *HandlerTestSuite) seedCatalog(t *testing.T) int64 {
	python := s.seedSkill(t, "Python", "programming_language", 2)
	django := s.seedSkill(t, "Django", "framework", 2)
	pg := s.seedSkill(t, "PostgreSQL", "database", 2)
	s.seedLevel(t, "beginner", 1)
	intermediate := s.seedLevel(t, "intermediate", 2)
	s.acquireSkill(t, python, intermediate)
	s.pythonID = python
	s.djangoID = django
	s.intermediateID = intermediate

	role := dao.Role{
		Id:       1,
		Title:    "Python 后端工程师",
		Category: "backend",
		Status:   domain.RoleStatusActive.ToUint8(),
	}
	require.NoError(t, s.db.Create(&role).Error)
	reqs := []dao.Requirement{
		{Rid: 1, Sid: python, Importance: 3, Required: true, MinRank: 2},
		{Rid: 1, Sid: django, Importance: 3, Required: true, MinRank: 2},
		{Rid: 1, Sid: pg, Importance: 2, Required: true, MinRank: 1},
	}
	for i := range reqs {
		require.NoError(t, s.db.Create(&reqs[i]).Error)
	}
	return role.Id
}

func (s *HandlerTestSuite) TestAnalyze() {
	t := s.T()
	rid := s.seedCatalog(t)

	req, err := http.NewRequest(http.MethodPost,
		"/career/analysis/analyze", iox.NewJSONReader(web.Rid{Rid: rid}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Analysis]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	analysis := recorder.MustScan().Data
	assert.Equal(t, 37.5, analysis.MatchPercentage)
	assert.Equal(t, 3, analysis.TotalRequired)
	assert.Equal(t, 1, analysis.MatchedCount)
	assert.Equal(t, 2, analysis.MissingCount)
	assert.Equal(t, 0, analysis.InsufficientCount)
	assert.Equal(t, "not_ready", analysis.Readiness)
	// Django 4 周 + PostgreSQL 2 周，不同类别不打折
	assert.Equal(t, 6, analysis.EstimatedWeeks)
	// 匹配数加缺口数等于必备总数
	assert.Equal(t, analysis.TotalRequired, analysis.MatchedCount+len(analysis.Gaps))
	// 学习顺序：都是高优先级？Django high，PostgreSQL medium => Django 在前
	require.Len(t, analysis.Gaps, 2)
	assert.Equal(t, "Django", analysis.Gaps[0].Name)
	assert.Equal(t, "high", analysis.Gaps[0].Priority)
	assert.Equal(t, "PostgreSQL", analysis.Gaps[1].Name)
	assert.False(t, analysis.Gaps[0].Insufficient)

	// 快照落库且不可变字段齐全
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	saved, err := s.dao.LatestByUidRid(ctx, uid, rid)
	require.NoError(t, err)
	assert.Equal(t, 37.5, saved.MatchPercentage)
	assert.Equal(t, "Python 后端工程师", saved.RoleTitle)
	require.True(t, saved.Gaps.Valid)
	assert.Len(t, saved.Gaps.Val, 2)
}

func (s *HandlerTestSuite) TestAnalyzeInsufficientLevel() {
	t := s.T()
	k8s := s.seedSkill(t, "Kubernetes", "devops", 3)
	beginner := s.seedLevel(t, "beginner", 1)
	// 已经入门，要求高级：缺口是"等级不足"，周数按基准折半向上取整
	s.acquireSkill(t, k8s, beginner)
	require.NoError(t, s.db.Create(&dao.Role{
		Id: 1, Title: "SRE", Category: "devops",
		Status: domain.RoleStatusActive.ToUint8(),
	}).Error)
	require.NoError(t, s.db.Create(&dao.Requirement{
		Rid: 1, Sid: k8s, Importance: 3, Required: true, MinRank: 3,
	}).Error)

	req, err := http.NewRequest(http.MethodPost,
		"/career/analysis/analyze", iox.NewJSONReader(web.Rid{Rid: 1}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Analysis]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	analysis := recorder.MustScan().Data
	assert.Equal(t, 0.0, analysis.MatchPercentage)
	assert.Equal(t, 1, analysis.InsufficientCount)
	assert.Equal(t, 0, analysis.MissingCount)
	require.Len(t, analysis.Gaps, 1)
	assert.True(t, analysis.Gaps[0].Insufficient)
	assert.Equal(t, uint8(1), analysis.Gaps[0].CurrentLevel)
	assert.Equal(t, uint8(3), analysis.Gaps[0].TargetLevel)
	// 高级基准 8 周，折半成 4 周
	assert.Equal(t, 4, analysis.Gaps[0].EstimatedWeeks)
}

func (s *HandlerTestSuite) TestAnalyzeLearningNotCounted() {
	t := s.T()
	rid := s.seedCatalog(t)
	// Django 等级达标但还在学，不能算进匹配
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	_, err := s.skillSvc.AddUserSkill(ctx, skill.UserSkill{
		Uid:    uid,
		Skill:  skill.Skill{ID: s.djangoID},
		Level:  skill.SkillLevel{ID: s.intermediateID},
		Status: skill.UserSkillStatusLearning,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/career/analysis/analyze", iox.NewJSONReader(web.Rid{Rid: rid}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Analysis]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	analysis := recorder.MustScan().Data
	assert.Equal(t, 37.5, analysis.MatchPercentage)
	assert.Equal(t, 1, analysis.MatchedCount)
	assert.Equal(t, 2, analysis.MissingCount)
	require.Len(t, analysis.Gaps, 2)
	assert.Equal(t, "Django", analysis.Gaps[0].Name)
}

func (s *HandlerTestSuite) TestAnalyzeRoleNotFound() {
	t := s.T()
	// 草稿方向对 C 端等同于不存在
	require.NoError(t, s.db.Create(&dao.Role{
		Id: 7, Title: "草稿方向", Category: "backend",
		Status: domain.RoleStatusDraft.ToUint8(),
	}).Error)
	for _, rid := range []int64{7, 404} {
		req, err := http.NewRequest(http.MethodPost,
			"/career/analysis/analyze", iox.NewJSONReader(web.Rid{Rid: rid}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.Analysis]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
		assert.Equal(t, 502002, recorder.MustScan().Code)
	}
}

func (s *HandlerTestSuite) TestRecommend() {
	t := s.T()
	s.seedCatalog(t)
	// 第二个方向：只要求 Python 中级，必然 100% 匹配，应当排第一
	require.NoError(t, s.db.Create(&dao.Role{
		Id: 2, Title: "数据工程师", Category: "data",
		DemandScore: 50,
		Status:      domain.RoleStatusActive.ToUint8(),
	}).Error)
	require.NoError(t, s.db.Create(&dao.Requirement{
		Rid: 2, Sid: s.pythonID, Importance: 3, Required: true, MinRank: 2,
	}).Error)

	do := func() []web.Recommendation {
		req, err := http.NewRequest(http.MethodPost,
			"/career/recommend", iox.NewJSONReader(web.LimitReq{Limit: 10}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[[]web.Recommendation]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
		return recorder.MustScan().Data
	}

	recs := do()
	require.Len(t, recs, 2)
	assert.Equal(t, int64(2), recs[0].Role.ID)
	assert.Equal(t, 100.0, recs[0].MatchPercentage)
	assert.Equal(t, int64(1), recs[1].Role.ID)
	assert.Equal(t, 37.5, recs[1].MatchPercentage)
	// 纯必备要求没有加分项，分数就是匹配度
	assert.Equal(t, recs[0].MatchPercentage, recs[0].Score)

	// 输入不变，重复调用的排序结果也不变
	assert.Equal(t, recs, do())
}

func (s *HandlerTestSuite) TestDiscovery() {
	t := s.T()
	s.seedCatalog(t)
	sreq := web.SaveQuestionReq{
		Question: web.Question{
			Content:  "你更喜欢哪类工作",
			Sequence: 1,
			Status:   domain.QuestionStatusActive.ToUint8(),
			Options: []web.Option{
				{Content: "写服务端", Points: map[string]int{"backend": 3, "data": 1}},
				{Content: "调模型", Points: map[string]int{"ai": 3}},
			},
		},
	}
	req, err := http.NewRequest(http.MethodPost,
		"/career/question/save", iox.NewJSONReader(sreq))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	var opts []dao.QuestionOption
	require.NoError(t, s.db.Order("id ASC").Find(&opts).Error)
	require.Len(t, opts, 2)

	subReq, err := http.NewRequest(http.MethodPost,
		"/career/discovery/submit", iox.NewJSONReader(web.SubmitReq{
			Options: []int64{opts[0].Id},
		}))
	require.NoError(t, err)
	subReq.Header.Set("content-type", "application/json")
	subRecorder := test.NewJSONResponseRecorder[web.DiscoveryResult]()
	s.server.ServeHTTP(subRecorder, subReq)
	require.Equal(t, 200, subRecorder.Code)
	res := subRecorder.MustScan().Data
	assert.Equal(t, []string{"backend", "data"}, res.Categories)
	// backend 类别下的上架方向被带回来
	require.NotEmpty(t, res.Roles)
	assert.Equal(t, "Python 后端工程师", res.Roles[0].Title)
}

func (s *HandlerTestSuite) TestAnalysisOwnership() {
	t := s.T()
	rid := s.seedCatalog(t)
	req, err := http.NewRequest(http.MethodPost,
		"/career/analysis/analyze", iox.NewJSONReader(web.Rid{Rid: rid}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Analysis]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	aid := recorder.MustScan().Data.ID

	// 把快照改挂到别人名下，当前用户就看不到了
	require.NoError(t, s.db.Model(&dao.Analysis{}).
		Where("id = ?", aid).Update("uid", uid+1).Error)
	dreq, err := http.NewRequest(http.MethodPost,
		"/career/analysis/detail", iox.NewJSONReader(web.Aid{Aid: aid}))
	require.NoError(t, err)
	dreq.Header.Set("content-type", "application/json")
	drecorder := test.NewJSONResponseRecorder[web.Analysis]()
	s.server.ServeHTTP(drecorder, dreq)
	require.Equal(t, 200, drecorder.Code)
	assert.Equal(t, 502003, drecorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestCategories() {
	t := s.T()
	s.seedCatalog(t)
	req, err := http.NewRequest(http.MethodGet, "/career/categories", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[[]web.CategoryCount]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	counts := recorder.MustScan().Data
	require.Len(t, counts, 1)
	assert.Equal(t, web.CategoryCount{Category: "backend", Count: 1}, counts[0])
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
