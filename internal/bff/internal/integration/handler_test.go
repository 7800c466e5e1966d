//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/bff/internal/integration/startup"
	"github.com/ecodeclub/skillbridge/internal/bff/internal/web"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/job"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/notification"
	"github.com/ecodeclub/skillbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/skillbridge/internal/roadmap"
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
	server *egin.Component
	db     *egorm.Component
	ec     ecache.Cache

	userSvc    user.UserService
	skillSvc   skill.Service
	roleSvc    career.RoleService
	roadmapSvc roadmap.Service
	jobSvc     job.Service
	intrSvc    interactive.InteractiveSvc
	notifySvc  notification.Service
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
	rm, err := roadmap.InitModule(db, q, cm, um, sm, mm)
	require.NoError(s.T(), err)
	jm, err := job.InitModule(db, q, sm, um, mm)
	require.NoError(s.T(), err)
	im, err := interactive.InitModule(db, q)
	require.NoError(s.T(), err)
	nm, err := notification.InitModule(db, q)
	require.NoError(s.T(), err)
	module, err := startup.InitModule(um, sm, cm, rm, jm, im, nm)
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
	s.db = db
	s.ec = ec
	s.userSvc = um.Svc
	s.skillSvc = sm.Svc
	s.roleSvc = cm.RoleSvc
	s.roadmapSvc = rm.Svc
	s.jobSvc = jm.Svc
	s.intrSvc = im.Svc
	s.notifySvc = nm.Svc
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{
		"skill", "skill_level", "user_skill", "user",
		"career_role", "career_requirement", "career_analysis",
		"roadmap", "roadmap_item",
		"job_posting", "job_skill",
		"interactives", "user_collection_bizs",
		"notification",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
	// 统计结果有缓存，不删会串到下一个用例
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := s.ec.Delete(ctx, "bff:statistics")
	require.NoError(s.T(), err)
}

// seedCatalog 造出经典场景：已具备 Python 中级，
// 方向要求 Python 中级(high)、Django 中级(high)、PostgreSQL 初级(medium)
func (s *HandlerTestSuite) seedCatalog(t *testing.T) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	pythonID, err := s.skillSvc.Save(ctx, skill.Skill{
		Name: "Python", Category: "programming_language", Difficulty: 2,
	})
	require.NoError(t, err)
	djangoID, err := s.skillSvc.Save(ctx, skill.Skill{
		Name: "Django", Category: "framework", Difficulty: 2,
	})
	require.NoError(t, err)
	pgID, err := s.skillSvc.Save(ctx, skill.Skill{
		Name: "PostgreSQL", Category: "database", Difficulty: 2,
	})
	require.NoError(t, err)
	_, err = s.skillSvc.SaveLevel(ctx, skill.SkillLevel{Name: "beginner", Rank: 1})
	require.NoError(t, err)
	intermediateID, err := s.skillSvc.SaveLevel(ctx, skill.SkillLevel{Name: "intermediate", Rank: 2})
	require.NoError(t, err)
	_, err = s.skillSvc.AddUserSkill(ctx, skill.UserSkill{
		Uid:    uid,
		Skill:  skill.Skill{ID: pythonID},
		Level:  skill.SkillLevel{ID: intermediateID},
		Status: skill.UserSkillStatusAcquired,
	})
	require.NoError(t, err)

	rid, err := s.roleSvc.Save(ctx, career.Role{
		Title:    "Python 后端工程师",
		Category: "backend",
		Status:   2,
	})
	require.NoError(t, err)
	reqs := []career.Requirement{
		{Rid: rid, Sid: pythonID, Importance: matching.ImportanceHigh, Required: true, MinLevel: matching.LevelIntermediate},
		{Rid: rid, Sid: djangoID, Importance: matching.ImportanceHigh, Required: true, MinLevel: matching.LevelIntermediate},
		{Rid: rid, Sid: pgID, Importance: matching.ImportanceMedium, Required: true, MinLevel: matching.LevelBeginner},
	}
	for _, req := range reqs {
		_, err = s.roleSvc.SaveRequirement(ctx, req)
		require.NoError(t, err)
	}
	return rid
}

func (s *HandlerTestSuite) seedJob(t *testing.T, title, company string, active bool) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	j := job.Job{
		Title:     title,
		Company:   company,
		Location:  "beijing",
		Category:  "backend",
		SalaryMin: 20000,
		SalaryMax: 40000,
		Level:     "mid",
		Status:    1,
	}
	if active {
		j.Status = 2
	}
	id, err := s.jobSvc.Save(ctx, j)
	require.NoError(t, err)
	return id
}

func (s *HandlerTestSuite) TestDashboard() {
	t := s.T()
	rid := s.seedCatalog(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	_, _, err := s.roadmapSvc.SelectTarget(ctx, uid, rid)
	require.NoError(t, err)
	for _, title := range []string{"第一条", "第二条"} {
		_, err = s.notifySvc.Create(ctx, notification.Notification{
			Uid: uid, Biz: "career", BizId: rid, Title: title, Content: "内容",
		})
		require.NoError(t, err)
	}

	// 选定方向会发一条"路线已生成"的通知，消费是异步的，等它落库
	var res web.Dashboard
	require.Eventually(t, func() bool {
		req, err1 := http.NewRequest(http.MethodPost, "/bff/dashboard", nil)
		require.NoError(t, err1)
		recorder := test.NewJSONResponseRecorder[web.Dashboard]()
		s.server.ServeHTTP(recorder, req)
		if recorder.Code != 200 {
			return false
		}
		res = recorder.MustScan().Data
		return res.UnreadCnt == 3
	}, time.Second*10, time.Millisecond*100)

	assert.Equal(t, rid, res.Profile.TargetRid)
	assert.Equal(t, "Python 后端工程师", res.Profile.TargetRole)
	assert.Equal(t, 1, res.Skills.Acquired)
	assert.Equal(t, 0, res.Skills.Learning)

	require.NotNil(t, res.Roadmap)
	assert.Equal(t, "Python 后端工程师", res.Roadmap.RoleTitle)
	assert.Equal(t, float64(0), res.Roadmap.Progress)
	// Django 4 周 + PostgreSQL 2 周
	assert.Equal(t, 6, res.Roadmap.TotalWeeks)
	assert.False(t, res.Roadmap.Done)
	require.NotNil(t, res.Roadmap.Next)
	assert.Equal(t, "Django", res.Roadmap.Next.Name)
	assert.Equal(t, 0, res.Roadmap.Next.Sequence)

	require.NotNil(t, res.Analysis)
	assert.Equal(t, 37.5, res.Analysis.MatchPercentage)
	assert.Equal(t, "not_ready", res.Analysis.Readiness)
	assert.Equal(t, 6, res.Analysis.EstimatedWeeks)

	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, rid, res.Recommendations[0].Rid)
	assert.Equal(t, "Python 后端工程师", res.Recommendations[0].Title)
}

func (s *HandlerTestSuite) TestCollectedJobs() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	first := s.seedJob(t, "Python 开发", "甲公司", true)
	second := s.seedJob(t, "Go 开发", "乙公司", true)
	third := s.seedJob(t, "Java 开发", "丙公司", true)
	// 收藏第一个和第三个，顺手收藏一个技能确认不会串业务
	for _, id := range []int64{first, third} {
		collected, err := s.intrSvc.CollectToggle(ctx, interactive.BizJob, id, uid)
		require.NoError(t, err)
		require.True(t, collected)
	}
	_, err := s.intrSvc.CollectToggle(ctx, interactive.BizSkill, second, uid)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/bff/jobs/collected", iox.NewJSONReader(web.CollectedJobsReq{Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CollectedJobList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	jobs := recorder.MustScan().Data.Jobs
	// 按收藏时间倒序
	require.Equal(t, []int64{third, first}, slice.Map(jobs, func(idx int, src web.CollectedJob) int64 {
		return src.ID
	}))
	assert.Equal(t, "Java 开发", jobs[0].Title)
	assert.Equal(t, "丙公司", jobs[0].Company)
	assert.Equal(t, "mid", jobs[0].Level)
	assert.Equal(t, "甲公司", jobs[1].Company)
}

func (s *HandlerTestSuite) TestStatistics() {
	t := s.T()
	rid := s.seedCatalog(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	_, _, err := s.roadmapSvc.SelectTarget(ctx, uid, rid)
	require.NoError(t, err)
	s.seedJob(t, "Python 开发", "甲公司", true)
	s.seedJob(t, "Go 开发", "乙公司", true)
	// 草稿不算在招
	s.seedJob(t, "Java 开发", "丙公司", false)

	res := s.statistics(t)
	assert.Equal(t, int64(1), res.SkillCategories["programming_language"])
	assert.Equal(t, int64(1), res.SkillCategories["framework"])
	assert.Equal(t, int64(1), res.SkillCategories["database"])
	assert.Equal(t, int64(1), res.ActiveRoles)
	assert.Equal(t, int64(2), res.ActiveJobs)
	assert.Equal(t, int64(1), res.Roadmaps)
	assert.Equal(t, float64(0), res.CompletionRate)

	// 第二次走缓存，新增的岗位看不到
	s.seedJob(t, "Rust 开发", "丁公司", true)
	res = s.statistics(t)
	assert.Equal(t, int64(2), res.ActiveJobs)

	// 缓存失效之后能看到
	_, err = s.ec.Delete(ctx, "bff:statistics")
	require.NoError(t, err)
	res = s.statistics(t)
	assert.Equal(t, int64(3), res.ActiveJobs)
}

func (s *HandlerTestSuite) statistics(t *testing.T) web.Statistics {
	req, err := http.NewRequest(http.MethodGet, "/bff/statistics", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Statistics]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
