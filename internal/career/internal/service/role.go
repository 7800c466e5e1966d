package service

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/event"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRoleNotFound = repository.ErrRoleNotFound
	// ErrInvalidRequirement 技能不存在，或者重要性、最低等级不合法
	ErrInvalidRequirement = errors.New("无效的技能要求")
)

const (
	// popularMinScore 热门方向的需求热度下限
	popularMinScore = 70
	// highGrowthMinRate 高增长方向的年增长率下限，单位百分比
	highGrowthMinRate = 20.0
)

//go:generate mockgen -source=./role.go -destination=../../mocks/role.mock.go -package=careermocks -typed RoleService
type RoleService interface {
	// Save 管理端保存方向，返回方向 id。热度分不在这里更新
	Save(ctx context.Context, role domain.Role) (int64, error)
	// SaveRequirement 管理端维护技能要求，技能必须在技能目录里
	SaveRequirement(ctx context.Context, req domain.Requirement) (int64, error)
	DeleteRequirement(ctx context.Context, id int64) error
	AdminList(ctx context.Context, offset, limit int) ([]domain.Role, int64, error)

	List(ctx context.Context, offset, limit int, category domain.Category) ([]domain.Role, int64, error)
	// Detail 对草稿返回 ErrRoleNotFound，技能要求已填充
	Detail(ctx context.Context, id int64) (domain.Role, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Role, error)
	Popular(ctx context.Context, limit int) ([]domain.Role, error)
	HighGrowth(ctx context.Context, limit int) ([]domain.Role, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)

	// Requirements 单个方向的技能要求，管理端和分析都在用
	Requirements(ctx context.Context, rid int64) ([]domain.Requirement, error)
	// ActiveWithRequirements 全部启用中的方向，带填充好的技能要求，推荐用
	ActiveWithRequirements(ctx context.Context) ([]domain.Role, error)
	// CountRequirementsBySkill 技能被多少个方向要求，技能热度任务用
	CountRequirementsBySkill(ctx context.Context) (map[int64]int64, error)
}

type roleService struct {
	repo        repository.RoleRepo
	skillSvc    skill.Service
	producer    event.SyncEventProducer
	logger      *elog.Component
	syncTimeout time.Duration
}

func NewRoleService(repo repository.RoleRepo,
	skillSvc skill.Service,
	producer event.SyncEventProducer) RoleService {
	return &roleService{
		repo:        repo,
		skillSvc:    skillSvc,
		producer:    producer,
		logger:      elog.DefaultLogger,
		syncTimeout: 10 * time.Second,
	}
}

func (s *roleService) Save(ctx context.Context, role domain.Role) (int64, error) {
	id, err := s.repo.Save(ctx, role)
	if err == nil {
		go func() {
			s.syncRole(id)
		}()
	}
	return id, err
}

func (s *roleService) SaveRequirement(ctx context.Context, req domain.Requirement) (int64, error) {
	if !req.Importance.Valid() || !req.MinLevel.Valid() {
		return 0, ErrInvalidRequirement
	}
	_, err := s.repo.GetByID(ctx, req.Rid)
	if err != nil {
		return 0, err
	}
	_, err = s.skillSvc.Detail(ctx, req.Sid)
	if err != nil {
		if errors.Is(err, skill.ErrSkillNotFound) {
			return 0, ErrInvalidRequirement
		}
		return 0, err
	}
	return s.repo.SaveRequirement(ctx, req)
}

func (s *roleService) DeleteRequirement(ctx context.Context, id int64) error {
	return s.repo.DeleteRequirement(ctx, id)
}

func (s *roleService) AdminList(ctx context.Context, offset, limit int) ([]domain.Role, int64, error) {
	var (
		total int64
		roles []domain.Role
		eg    errgroup.Group
	)
	eg.Go(func() error {
		var err error
		roles, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

func (s *roleService) List(ctx context.Context, offset, limit int, category domain.Category) ([]domain.Role, int64, error) {
	var (
		total int64
		roles []domain.Role
		eg    errgroup.Group
	)
	eg.Go(func() error {
		var err error
		roles, err = s.repo.PubList(ctx, offset, limit, category)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.PubTotal(ctx, category)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

func (s *roleService) Detail(ctx context.Context, id int64) (domain.Role, error) {
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Role{}, err
	}
	if role.Status == domain.RoleStatusDraft {
		return domain.Role{}, ErrRoleNotFound
	}
	role.Requirements, err = s.Requirements(ctx, id)
	if err != nil {
		return domain.Role{}, err
	}
	return role, nil
}

func (s *roleService) GetByIDs(ctx context.Context, ids []int64) ([]domain.Role, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *roleService) Popular(ctx context.Context, limit int) ([]domain.Role, error) {
	return s.repo.Popular(ctx, popularMinScore, limit)
}

func (s *roleService) HighGrowth(ctx context.Context, limit int) ([]domain.Role, error) {
	return s.repo.HighGrowth(ctx, highGrowthMinRate, limit)
}

func (s *roleService) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	return s.repo.Categories(ctx)
}

func (s *roleService) Requirements(ctx context.Context, rid int64) ([]domain.Requirement, error) {
	reqs, err := s.repo.RequirementsByRid(ctx, rid)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, reqs)
}

func (s *roleService) ActiveWithRequirements(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.repo.ActiveRoles(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return roles, nil
	}
	rids := slice.Map(roles, func(idx int, r domain.Role) int64 {
		return r.ID
	})
	reqm, err := s.repo.RequirementsByRids(ctx, rids)
	if err != nil {
		return nil, err
	}
	all := make([]domain.Requirement, 0, len(rids))
	for _, rid := range rids {
		all = append(all, reqm[rid]...)
	}
	all, err = s.hydrate(ctx, all)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]domain.Requirement, len(rids))
	for _, req := range all {
		grouped[req.Rid] = append(grouped[req.Rid], req)
	}
	for i := range roles {
		roles[i].Requirements = grouped[roles[i].ID]
	}
	return roles, nil
}

func (s *roleService) CountRequirementsBySkill(ctx context.Context) (map[int64]int64, error) {
	return s.repo.CountRequirementBySkill(ctx)
}

// hydrate 把技能目录里的名字、类别、难度、热度填充到技能要求上
func (s *roleService) hydrate(ctx context.Context, reqs []domain.Requirement) ([]domain.Requirement, error) {
	if len(reqs) == 0 {
		return reqs, nil
	}
	sids := make([]int64, 0, len(reqs))
	seen := make(map[int64]struct{}, len(reqs))
	for _, req := range reqs {
		if _, ok := seen[req.Sid]; ok {
			continue
		}
		seen[req.Sid] = struct{}{}
		sids = append(sids, req.Sid)
	}
	skills, err := s.skillSvc.GetByIDs(ctx, sids)
	if err != nil {
		return nil, err
	}
	sm := slice.ToMap(skills, func(sk skill.Skill) int64 {
		return sk.ID
	})
	for i := range reqs {
		sk, ok := sm[reqs[i].Sid]
		if !ok {
			// 技能被删了，要求还挂着，名字只能空着
			continue
		}
		reqs[i].SkillName = sk.Name
		reqs[i].SkillCategory = sk.Category.String()
		reqs[i].Difficulty = sk.Difficulty
		reqs[i].Popularity = sk.Popularity
	}
	return reqs, nil
}

func (s *roleService) syncRole(id int64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.syncTimeout)
	defer cancel()
	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查找方向详情失败",
			elog.FieldErr(err),
		)
		return
	}
	evt := event.NewRoleEvent(role)
	err = s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("发送方向数据到搜索失败",
			elog.FieldErr(err),
			elog.Any("event", evt),
		)
	}
}
