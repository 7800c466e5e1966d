package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository/cache"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrSkillNotFound      = dao.ErrRecordNotFound
	ErrUserSkillDuplicate = dao.ErrUserSkillDuplicate
)

type SkillRepo interface {
	// 管理端接口
	Save(ctx context.Context, skill domain.Skill) (int64, error)
	SaveLevel(ctx context.Context, level domain.SkillLevel) (int64, error)
	UpdatePopularity(ctx context.Context, id int64, popularity int) error
	Delete(ctx context.Context, id int64) error

	// C 端目录
	List(ctx context.Context, offset, limit int, category domain.Category, difficulty uint8) ([]domain.Skill, error)
	Total(ctx context.Context, category domain.Category, difficulty uint8) (int64, error)
	Info(ctx context.Context, id int64) (domain.Skill, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Skill, error)
	Popular(ctx context.Context, limit int) ([]domain.Skill, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	Levels(ctx context.Context) ([]domain.SkillLevel, error)
	LevelByID(ctx context.Context, id int64) (domain.SkillLevel, error)
	LevelByRank(ctx context.Context, rank uint8) (domain.SkillLevel, error)

	// 用户技能档案
	AddUserSkill(ctx context.Context, us domain.UserSkill) (int64, error)
	UpdateUserSkill(ctx context.Context, us domain.UserSkill) error
	RemoveUserSkill(ctx context.Context, uid, sid int64) error
	UserSkills(ctx context.Context, uid int64) ([]domain.UserSkill, error)
	SaveAcquired(ctx context.Context, uid int64, sid int64, level domain.SkillLevel) error
	CountUserSkillBySkill(ctx context.Context) (map[int64]int64, error)
}

type skillRepo struct {
	skillDao   dao.SkillDAO
	skillCache cache.SkillCache
	logger     *elog.Component
}

func NewSkillRepo(skillDao dao.SkillDAO, skillCache cache.SkillCache) SkillRepo {
	return &skillRepo{
		skillCache: skillCache,
		skillDao:   skillDao,
		logger:     elog.DefaultLogger,
	}
}

func (s *skillRepo) Save(ctx context.Context, skill domain.Skill) (int64, error) {
	id, err := s.skillDao.Save(ctx, s.skillToEntity(skill))
	if err != nil {
		return 0, err
	}
	// 目录变了，热门榜可能跟着变
	if er := s.skillCache.DelPopular(ctx); er != nil {
		s.logger.Error("删除热门技能缓存失败", elog.FieldErr(er))
	}
	return id, nil
}

func (s *skillRepo) SaveLevel(ctx context.Context, level domain.SkillLevel) (int64, error) {
	return s.skillDao.SaveLevel(ctx, dao.SkillLevel{
		Id:   level.ID,
		Name: level.Name,
		Rank: level.Rank,
		Desc: level.Desc,
	})
}

func (s *skillRepo) UpdatePopularity(ctx context.Context, id int64, popularity int) error {
	return s.skillDao.UpdatePopularity(ctx, id, popularity)
}

func (s *skillRepo) Delete(ctx context.Context, id int64) error {
	if err := s.skillDao.Delete(ctx, id); err != nil {
		return err
	}
	if er := s.skillCache.DelPopular(ctx); er != nil {
		s.logger.Error("删除热门技能缓存失败", elog.FieldErr(er))
	}
	return nil
}

func (s *skillRepo) List(ctx context.Context, offset, limit int, category domain.Category, difficulty uint8) ([]domain.Skill, error) {
	skills, err := s.skillDao.List(ctx, offset, limit, category.String(), difficulty)
	if err != nil {
		return nil, err
	}
	return slice.Map(skills, func(idx int, src dao.Skill) domain.Skill {
		return s.skillToDomain(src)
	}), nil
}

func (s *skillRepo) Total(ctx context.Context, category domain.Category, difficulty uint8) (int64, error) {
	// 带筛选条件的计数不走缓存
	if category != "" || difficulty > 0 {
		return s.skillDao.Count(ctx, category.String(), difficulty)
	}
	total, err := s.skillCache.GetTotal(ctx)
	if err == nil {
		return total, nil
	}
	total, err = s.skillDao.Count(ctx, "", 0)
	if err != nil {
		return 0, err
	}
	if er := s.skillCache.SetTotal(ctx, total); er != nil {
		s.logger.Error("缓存技能总数失败", elog.FieldErr(er))
	}
	return total, nil
}

func (s *skillRepo) Info(ctx context.Context, id int64) (domain.Skill, error) {
	sk, err := s.skillDao.GetByID(ctx, id)
	if err != nil {
		return domain.Skill{}, err
	}
	return s.skillToDomain(sk), nil
}

func (s *skillRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Skill, error) {
	skills, err := s.skillDao.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(skills, func(idx int, src dao.Skill) domain.Skill {
		return s.skillToDomain(src)
	}), nil
}

func (s *skillRepo) Popular(ctx context.Context, limit int) ([]domain.Skill, error) {
	res, err := s.skillCache.GetPopular(ctx)
	if err == nil && len(res) >= limit {
		return res[:limit], nil
	}
	skills, err := s.skillDao.Popular(ctx, limit)
	if err != nil {
		return nil, err
	}
	res = slice.Map(skills, func(idx int, src dao.Skill) domain.Skill {
		return s.skillToDomain(src)
	})
	if er := s.skillCache.SetPopular(ctx, res); er != nil {
		s.logger.Error("缓存热门技能失败", elog.FieldErr(er))
	}
	return res, nil
}

func (s *skillRepo) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	counts, err := s.skillDao.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(counts, func(idx int, src dao.CategoryCount) domain.CategoryCount {
		return domain.CategoryCount{
			Category: domain.Category(src.Category),
			Count:    src.Cnt,
		}
	}), nil
}

func (s *skillRepo) Levels(ctx context.Context) ([]domain.SkillLevel, error) {
	levels, err := s.skillDao.Levels(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(levels, func(idx int, src dao.SkillLevel) domain.SkillLevel {
		return s.levelToDomain(src)
	}), nil
}

func (s *skillRepo) LevelByID(ctx context.Context, id int64) (domain.SkillLevel, error) {
	level, err := s.skillDao.LevelByID(ctx, id)
	if err != nil {
		return domain.SkillLevel{}, err
	}
	return s.levelToDomain(level), nil
}

func (s *skillRepo) LevelByRank(ctx context.Context, rank uint8) (domain.SkillLevel, error) {
	level, err := s.skillDao.LevelByRank(ctx, rank)
	if err != nil {
		return domain.SkillLevel{}, err
	}
	return s.levelToDomain(level), nil
}

func (s *skillRepo) AddUserSkill(ctx context.Context, us domain.UserSkill) (int64, error) {
	return s.skillDao.CreateUserSkill(ctx, s.userSkillToEntity(us))
}

func (s *skillRepo) UpdateUserSkill(ctx context.Context, us domain.UserSkill) error {
	return s.skillDao.UpdateUserSkill(ctx, s.userSkillToEntity(us))
}

func (s *skillRepo) RemoveUserSkill(ctx context.Context, uid, sid int64) error {
	return s.skillDao.DeleteUserSkill(ctx, uid, sid)
}

func (s *skillRepo) UserSkills(ctx context.Context, uid int64) ([]domain.UserSkill, error) {
	uss, err := s.skillDao.UserSkills(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(uss) == 0 {
		return []domain.UserSkill{}, nil
	}
	sids := slice.Map(uss, func(idx int, src dao.UserSkill) int64 {
		return src.Sid
	})
	skills, err := s.skillDao.GetByIDs(ctx, sids)
	if err != nil {
		return nil, err
	}
	levels, err := s.skillDao.Levels(ctx)
	if err != nil {
		return nil, err
	}
	skillMap := slice.ToMap(skills, func(ele dao.Skill) int64 {
		return ele.Id
	})
	levelMap := slice.ToMap(levels, func(ele dao.SkillLevel) int64 {
		return ele.Id
	})
	return slice.Map(uss, func(idx int, src dao.UserSkill) domain.UserSkill {
		return domain.UserSkill{
			ID:     src.Id,
			Uid:    src.Uid,
			Skill:  s.skillToDomain(skillMap[src.Sid]),
			Level:  s.levelToDomain(levelMap[src.Slid]),
			Status: domain.UserSkillStatus(src.Status),
			Ctime:  time.UnixMilli(src.Ctime),
			Utime:  time.UnixMilli(src.Utime),
		}
	}), nil
}

func (s *skillRepo) SaveAcquired(ctx context.Context, uid int64, sid int64, level domain.SkillLevel) error {
	return s.skillDao.UpsertAcquired(ctx, dao.UserSkill{
		Uid:       uid,
		Sid:       sid,
		Slid:      level.ID,
		LevelRank: level.Rank,
		Status:    domain.UserSkillStatusAcquired.ToUint8(),
	})
}

func (s *skillRepo) CountUserSkillBySkill(ctx context.Context) (map[int64]int64, error) {
	usages, err := s.skillDao.CountUserSkillBySkill(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(usages))
	for _, usage := range usages {
		res[usage.Sid] = usage.Cnt
	}
	return res, nil
}

func (s *skillRepo) skillToEntity(skill domain.Skill) dao.Skill {
	return dao.Skill{
		Id:         skill.ID,
		Name:       skill.Name,
		Category:   skill.Category.String(),
		Difficulty: skill.Difficulty,
		Desc:       skill.Desc,
		Popularity: skill.Popularity,
	}
}

func (s *skillRepo) skillToDomain(skill dao.Skill) domain.Skill {
	return domain.Skill{
		ID:         skill.Id,
		Name:       skill.Name,
		Category:   domain.Category(skill.Category),
		Difficulty: skill.Difficulty,
		Desc:       skill.Desc,
		Popularity: skill.Popularity,
		Ctime:      time.UnixMilli(skill.Ctime),
		Utime:      time.UnixMilli(skill.Utime),
	}
}

func (s *skillRepo) levelToDomain(level dao.SkillLevel) domain.SkillLevel {
	return domain.SkillLevel{
		ID:   level.Id,
		Name: level.Name,
		Rank: level.Rank,
		Desc: level.Desc,
	}
}

func (s *skillRepo) userSkillToEntity(us domain.UserSkill) dao.UserSkill {
	return dao.UserSkill{
		Id:        us.ID,
		Uid:       us.Uid,
		Sid:       us.Skill.ID,
		Slid:      us.Level.ID,
		LevelRank: us.Level.Rank,
		Status:    us.Status.ToUint8(),
	}
}
