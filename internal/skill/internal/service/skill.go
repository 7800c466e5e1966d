package service

import (
	"context"
	"time"

	"github.com/ecodeclub/skillbridge/internal/skill/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/event"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSkillNotFound      = repository.ErrSkillNotFound
	ErrUserSkillDuplicate = repository.ErrUserSkillDuplicate
)

//go:generate mockgen -source=./skill.go -destination=../../mocks/skill.mock.go -package=skillmocks -typed SkillService
type SkillService interface {
	// Save 管理端保存技能，返回技能 id
	Save(ctx context.Context, skill domain.Skill) (int64, error)
	// SaveLevel 管理端维护等级字典
	SaveLevel(ctx context.Context, level domain.SkillLevel) (int64, error)
	// Delete 管理端下架技能，连用户档案里的引用一起删
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, offset, limit int, category domain.Category, difficulty uint8) ([]domain.Skill, int64, error)
	Detail(ctx context.Context, id int64) (domain.Skill, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Skill, error)
	Popular(ctx context.Context, limit int) ([]domain.Skill, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	Levels(ctx context.Context) ([]domain.SkillLevel, error)

	// AddUserSkill 往技能档案里添加一项，重复添加返回 ErrUserSkillDuplicate
	AddUserSkill(ctx context.Context, us domain.UserSkill) (int64, error)
	UpdateUserSkill(ctx context.Context, us domain.UserSkill) error
	RemoveUserSkill(ctx context.Context, uid, sid int64) error
	UserSkills(ctx context.Context, uid int64) ([]domain.UserSkill, error)
	// SaveAcquired 学完学习项之后回写档案，等级只升不降，可以重复调用
	SaveAcquired(ctx context.Context, uid, sid int64, rank uint8) error
}

type service struct {
	repo        repository.SkillRepo
	producer    event.SyncEventProducer
	logger      *elog.Component
	syncTimeout time.Duration
}

func NewService(repo repository.SkillRepo, producer event.SyncEventProducer) SkillService {
	return &service{
		repo:        repo,
		producer:    producer,
		logger:      elog.DefaultLogger,
		syncTimeout: 10 * time.Second,
	}
}

func (s *service) Save(ctx context.Context, skill domain.Skill) (int64, error) {
	id, err := s.repo.Save(ctx, skill)
	if err == nil {
		go func() {
			s.syncSkill(id)
		}()
	}
	return id, err
}

func (s *service) SaveLevel(ctx context.Context, level domain.SkillLevel) (int64, error) {
	return s.repo.SaveLevel(ctx, level)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int, category domain.Category, difficulty uint8) ([]domain.Skill, int64, error) {
	var (
		total  int64
		skills []domain.Skill
		eg     errgroup.Group
	)
	eg.Go(func() error {
		var err error
		skills, err = s.repo.List(ctx, offset, limit, category, difficulty)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, category, difficulty)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Skill, error) {
	return s.repo.Info(ctx, id)
}

func (s *service) GetByIDs(ctx context.Context, ids []int64) ([]domain.Skill, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) Popular(ctx context.Context, limit int) ([]domain.Skill, error) {
	return s.repo.Popular(ctx, limit)
}

func (s *service) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	return s.repo.Categories(ctx)
}

func (s *service) Levels(ctx context.Context) ([]domain.SkillLevel, error) {
	return s.repo.Levels(ctx)
}

func (s *service) AddUserSkill(ctx context.Context, us domain.UserSkill) (int64, error) {
	sk, err := s.repo.Info(ctx, us.Skill.ID)
	if err != nil {
		return 0, err
	}
	level, err := s.repo.LevelByID(ctx, us.Level.ID)
	if err != nil {
		return 0, err
	}
	us.Skill = sk
	us.Level = level
	if !us.Status.Valid() {
		us.Status = domain.UserSkillStatusLearning
	}
	return s.repo.AddUserSkill(ctx, us)
}

func (s *service) UpdateUserSkill(ctx context.Context, us domain.UserSkill) error {
	level, err := s.repo.LevelByID(ctx, us.Level.ID)
	if err != nil {
		return err
	}
	us.Level = level
	if !us.Status.Valid() {
		us.Status = domain.UserSkillStatusLearning
	}
	return s.repo.UpdateUserSkill(ctx, us)
}

func (s *service) RemoveUserSkill(ctx context.Context, uid, sid int64) error {
	return s.repo.RemoveUserSkill(ctx, uid, sid)
}

func (s *service) UserSkills(ctx context.Context, uid int64) ([]domain.UserSkill, error) {
	return s.repo.UserSkills(ctx, uid)
}

func (s *service) SaveAcquired(ctx context.Context, uid, sid int64, rank uint8) error {
	level, err := s.repo.LevelByRank(ctx, rank)
	if err != nil {
		return err
	}
	return s.repo.SaveAcquired(ctx, uid, sid, level)
}

func (s *service) syncSkill(id int64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.syncTimeout)
	defer cancel()
	sk, err := s.repo.Info(ctx, id)
	if err != nil {
		s.logger.Error("查找技能详情失败",
			elog.FieldErr(err),
		)
		return
	}
	evt := event.NewSkillEvent(sk)
	err = s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("发送技能数据到搜索失败",
			elog.FieldErr(err),
			elog.Any("event", evt),
		)
	}
}
