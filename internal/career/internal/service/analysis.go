package service

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/ecodeclub/skillbridge/internal/pkg/snowflake"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	"golang.org/x/sync/errgroup"
)

var ErrAnalysisNotFound = repository.ErrAnalysisNotFound

// analysisApp 分析快照在雪花 ID 里的应用编号
const analysisApp uint = 0

//go:generate mockgen -source=./analysis.go -destination=../../mocks/analysis.mock.go -package=careermocks -typed AnalysisService
type AnalysisService interface {
	// Analyze 对启用中的方向做一次差距分析，生成不可变快照。
	// 方向不存在或者没启用都返回 ErrRoleNotFound，绝不落半截结果
	Analyze(ctx context.Context, uid, rid int64) (domain.Analysis, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Analysis, int64, error)
	// Detail 只能看自己的快照，别人的一律 ErrAnalysisNotFound
	Detail(ctx context.Context, uid, id int64) (domain.Analysis, error)
	// Latest 最近一次快照，工作台用
	Latest(ctx context.Context, uid int64) (domain.Analysis, error)
	// Recommend 对全部启用中的方向排序，返回前 limit 条
	Recommend(ctx context.Context, uid int64, limit int) ([]domain.Recommendation, error)
}

type analysisService struct {
	repo     repository.AnalysisRepo
	roleSvc  RoleService
	skillSvc skill.Service
	userSvc  user.UserService
	engine   matching.Service
	idGen    snowflake.AppIDGenerator
}

func NewAnalysisService(repo repository.AnalysisRepo,
	roleSvc RoleService,
	skillSvc skill.Service,
	userSvc user.UserService,
	engine matching.Service,
	idGen snowflake.AppIDGenerator) AnalysisService {
	return &analysisService{
		repo:     repo,
		roleSvc:  roleSvc,
		skillSvc: skillSvc,
		userSvc:  userSvc,
		engine:   engine,
		idGen:    idGen,
	}
}

func (s *analysisService) Analyze(ctx context.Context, uid, rid int64) (domain.Analysis, error) {
	role, err := s.roleSvc.Detail(ctx, rid)
	if err != nil {
		return domain.Analysis{}, err
	}
	if role.Status != domain.RoleStatusActive {
		return domain.Analysis{}, ErrRoleNotFound
	}
	possessed, err := s.possessed(ctx, uid)
	if err != nil {
		return domain.Analysis{}, err
	}
	res := s.engine.Match(possessed, toRequired(role.Requirements))
	id, err := s.idGen.Generate(analysisApp)
	if err != nil {
		return domain.Analysis{}, err
	}
	analysis := domain.Analysis{
		ID:                id.Int64(),
		Uid:               uid,
		Rid:               rid,
		RoleTitle:         role.Title,
		MatchPercentage:   res.Percentage,
		TotalRequired:     res.TotalRequired,
		MatchedCount:      res.MatchedCount,
		MissingCount:      res.MissingCount,
		InsufficientCount: res.InsufficientCount,
		Readiness:         s.engine.Readiness(res.Percentage),
		EstimatedWeeks:    s.engine.AggregateWeeks(res.Gaps),
		// 快照里直接存学习顺序，展示和生成路线都不用再排
		Gaps:  s.engine.Plan(res.Gaps),
		Ctime: time.Now(),
	}
	_, err = s.repo.Create(ctx, analysis)
	if err != nil {
		return domain.Analysis{}, err
	}
	return analysis, nil
}

func (s *analysisService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Analysis, int64, error) {
	var (
		total    int64
		analyses []domain.Analysis
		eg       errgroup.Group
	)
	eg.Go(func() error {
		var err error
		analyses, err = s.repo.ListByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return analyses, total, nil
}

func (s *analysisService) Detail(ctx context.Context, uid, id int64) (domain.Analysis, error) {
	analysis, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Analysis{}, err
	}
	if analysis.Uid != uid {
		return domain.Analysis{}, ErrAnalysisNotFound
	}
	return analysis, nil
}

func (s *analysisService) Latest(ctx context.Context, uid int64) (domain.Analysis, error) {
	return s.repo.LatestByUid(ctx, uid)
}

func (s *analysisService) Recommend(ctx context.Context, uid int64, limit int) ([]domain.Recommendation, error) {
	var (
		eg        errgroup.Group
		possessed []matching.PossessedSkill
		interests []string
		roles     []domain.Role
	)
	eg.Go(func() error {
		var err error
		possessed, err = s.possessed(ctx, uid)
		return err
	})
	eg.Go(func() error {
		profile, err := s.userSvc.Profile(ctx, uid)
		if err != nil {
			return err
		}
		interests = profile.Interests
		return nil
	})
	eg.Go(func() error {
		var err error
		roles, err = s.roleSvc.ActiveWithRequirements(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	rm := slice.ToMap(roles, func(r domain.Role) int64 {
		return r.ID
	})
	candidates := slice.Map(roles, func(idx int, r domain.Role) matching.Candidate {
		return matching.Candidate{
			Biz:         "role",
			ID:          r.ID,
			Title:       r.Title,
			Category:    r.Category.String(),
			DemandScore: float64(r.DemandScore),
			Skills:      toRequired(r.Requirements),
		}
	})
	ranked := s.engine.Rank(possessed, candidates, interests)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return slice.Map(ranked, func(idx int, r matching.Ranked) domain.Recommendation {
		return domain.Recommendation{
			Role:            rm[r.ID],
			Score:           r.Score,
			MatchPercentage: r.MatchPercentage,
			Reasons:         r.Reasons,
		}
	}), nil
}

func (s *analysisService) possessed(ctx context.Context, uid int64) ([]matching.PossessedSkill, error) {
	uss, err := s.skillSvc.UserSkills(ctx, uid)
	if err != nil {
		return nil, err
	}
	// 在学的不算数，只有已掌握的才参与匹配
	return slice.FilterMap(uss, func(idx int, us skill.UserSkill) (matching.PossessedSkill, bool) {
		return matching.PossessedSkill{
			SkillID: us.Skill.ID,
			Level:   matching.Level(us.Level.Rank),
		}, us.Status == skill.UserSkillStatusAcquired
	}), nil
}

func toRequired(reqs []domain.Requirement) []matching.RequiredSkill {
	return slice.Map(reqs, func(idx int, req domain.Requirement) matching.RequiredSkill {
		return matching.RequiredSkill{
			SkillID:    req.Sid,
			Name:       req.SkillName,
			Category:   req.SkillCategory,
			Difficulty: req.Difficulty,
			Importance: req.Importance,
			Required:   req.Required,
			MinLevel:   req.MinLevel,
			Popularity: req.Popularity,
		}
	})
}
