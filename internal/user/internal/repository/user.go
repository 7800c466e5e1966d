package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/user/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/user/internal/repository/cache"
	"github.com/ecodeclub/skillbridge/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	UpdateInterests(ctx context.Context, uid int64, interests []string) error
	UpdateTargetRole(ctx context.Context, uid, rid int64, role string) error
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) UpdateInterests(ctx context.Context, uid int64, interests []string) error {
	err := ur.dao.UpdateInterests(ctx, uid, interests)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, uid)
}

func (ur *CachedUserRepository) UpdateTargetRole(ctx context.Context, uid, rid int64, role string) error {
	err := ur.dao.UpdateTargetRole(ctx, uid, rid, role)
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, uid)
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:              u.Id,
		SN:              u.SN,
		Nickname:        u.Nickname,
		Avatar:          u.Avatar,
		Bio:             u.Bio,
		CurrentTitle:    u.CurrentTitle,
		ExperienceYears: u.ExperienceYears,
		TargetRid:       u.TargetRid,
		TargetRole:      u.TargetRole,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:              ue.Id,
		SN:              ue.SN,
		Nickname:        ue.Nickname,
		Avatar:          ue.Avatar,
		Bio:             ue.Bio,
		CurrentTitle:    ue.CurrentTitle,
		ExperienceYears: ue.ExperienceYears,
		Interests:       ue.Interests.Val,
		TargetRid:       ue.TargetRid,
		TargetRole:      ue.TargetRole,
		Ctime:           time.UnixMilli(ue.Ctime),
		Utime:           time.UnixMilli(ue.Utime),
	}
}
