package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/skillbridge/internal/skill/internal/domain"
	"github.com/pkg/errors"
)

var (
	// ErrPopularNotFound 热门技能没有缓存
	ErrPopularNotFound = errors.New("热门技能没有缓存")
)

const (
	expiration = 30 * time.Minute
)

type SkillCache interface {
	// 缓存总数，只缓存不带筛选条件的
	GetTotal(ctx context.Context) (int64, error)
	SetTotal(ctx context.Context, total int64) error
	GetPopular(ctx context.Context) ([]domain.Skill, error)
	SetPopular(ctx context.Context, skills []domain.Skill) error
	DelPopular(ctx context.Context) error
}

type skillCache struct {
	ec ecache.Cache
}

func NewSkillCache(ec ecache.Cache) SkillCache {
	return &skillCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "skill:",
		},
	}
}

func (s *skillCache) GetTotal(ctx context.Context) (int64, error) {
	return s.ec.Get(ctx, s.totalKey()).AsInt64()
}

func (s *skillCache) SetTotal(ctx context.Context, total int64) error {
	return s.ec.Set(ctx, s.totalKey(), total, expiration)
}

func (s *skillCache) GetPopular(ctx context.Context) ([]domain.Skill, error) {
	val := s.ec.Get(ctx, s.popularKey())
	if val.KeyNotFound() {
		return nil, ErrPopularNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var skills []domain.Skill
	str, err := val.String()
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal([]byte(str), &skills)
	return skills, err
}

func (s *skillCache) SetPopular(ctx context.Context, skills []domain.Skill) error {
	data, err := json.Marshal(skills)
	if err != nil {
		return errors.Wrap(err, "序列化热门技能失败")
	}
	return s.ec.Set(ctx, s.popularKey(), string(data), expiration)
}

func (s *skillCache) DelPopular(ctx context.Context) error {
	_, err := s.ec.Delete(ctx, s.popularKey())
	return err
}

func (s *skillCache) totalKey() string {
	return "total"
}

func (s *skillCache) popularKey() string {
	return "popular"
}
