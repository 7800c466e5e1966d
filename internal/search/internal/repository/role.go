package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/search/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/search/internal/repository/dao"
)

type roleRepo struct {
	roleDao dao.RoleDAO
}

func NewRoleRepo(roleDao dao.RoleDAO) RoleRepo {
	return &roleRepo{
		roleDao: roleDao,
	}
}

func (r *roleRepo) SearchRole(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]domain.Role, error) {
	roles, err := r.roleDao.SearchRole(ctx, offset, limit, queryMetas)
	if err != nil {
		return nil, err
	}
	return slice.Map(roles, func(idx int, src dao.Role) domain.Role {
		return r.toDomain(src)
	}), nil
}

func (r *roleRepo) toDomain(role dao.Role) domain.Role {
	return domain.Role{
		ID:          role.ID,
		Title:       role.Title,
		Overview:    role.Overview,
		Category:    role.Category,
		SalaryMin:   role.SalaryMin,
		SalaryMax:   role.SalaryMax,
		DemandScore: role.DemandScore,
		Growth:      role.Growth,
		Status:      role.Status,
		Ctime:       time.UnixMilli(role.Ctime),
		Utime:       time.UnixMilli(role.Utime),
	}
}
