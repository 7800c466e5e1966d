package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/search/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/search/internal/repository/dao"
)

type skillRepo struct {
	skillDao dao.SkillDAO
}

func NewSkillRepo(skillDao dao.SkillDAO) SkillRepo {
	return &skillRepo{
		skillDao: skillDao,
	}
}

func (s *skillRepo) SearchSkill(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]domain.Skill, error) {
	skills, err := s.skillDao.SearchSkill(ctx, offset, limit, queryMetas)
	if err != nil {
		return nil, err
	}
	return slice.Map(skills, func(idx int, src dao.Skill) domain.Skill {
		return s.toDomain(src)
	}), nil
}

func (s *skillRepo) toDomain(sk dao.Skill) domain.Skill {
	return domain.Skill{
		ID:         sk.ID,
		Name:       sk.Name,
		Category:   sk.Category,
		Difficulty: sk.Difficulty,
		Desc:       sk.Desc,
		Popularity: sk.Popularity,
		Ctime:      time.UnixMilli(sk.Ctime),
		Utime:      time.UnixMilli(sk.Utime),
	}
}
