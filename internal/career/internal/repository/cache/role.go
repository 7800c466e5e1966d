package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/pkg/errors"
)

var (
	// ErrPopularNotFound 热门方向没有缓存
	ErrPopularNotFound = errors.New("热门方向没有缓存")
)

const (
	expiration = 30 * time.Minute
)

type RoleCache interface {
	GetPopular(ctx context.Context) ([]domain.Role, error)
	SetPopular(ctx context.Context, roles []domain.Role) error
	DelPopular(ctx context.Context) error
}

type roleCache struct {
	ec ecache.Cache
}

func NewRoleCache(ec ecache.Cache) RoleCache {
	return &roleCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "career:",
		},
	}
}

func (r *roleCache) GetPopular(ctx context.Context) ([]domain.Role, error) {
	val := r.ec.Get(ctx, r.popularKey())
	if val.KeyNotFound() {
		return nil, ErrPopularNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	var roles []domain.Role
	str, err := val.String()
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal([]byte(str), &roles)
	return roles, err
}

func (r *roleCache) SetPopular(ctx context.Context, roles []domain.Role) error {
	data, err := json.Marshal(roles)
	if err != nil {
		return errors.Wrap(err, "序列化热门方向失败")
	}
	return r.ec.Set(ctx, r.popularKey(), string(data), expiration)
}

func (r *roleCache) DelPopular(ctx context.Context) error {
	_, err := r.ec.Delete(ctx, r.popularKey())
	return err
}

func (r *roleCache) popularKey() string {
	return "popular"
}
