// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository/cache"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/matching"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrRoleNotFound         = dao.ErrRecordNotFound
	ErrRequirementDuplicate = dao.ErrRequirementDuplicate
)

type RoleRepo interface {
	Save(ctx context.Context, r domain.Role) (int64, error)
	UpdateDemandScore(ctx context.Context, id int64, score int) error

	List(ctx context.Context, offset, limit int) ([]domain.Role, error)
	Total(ctx context.Context) (int64, error)
	PubList(ctx context.Context, offset, limit int, category domain.Category) ([]domain.Role, error)
	PubTotal(ctx context.Context, category domain.Category) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Role, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Role, error)
	Popular(ctx context.Context, minScore, limit int) ([]domain.Role, error)
	HighGrowth(ctx context.Context, minGrowth float64, limit int) ([]domain.Role, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	ActiveRoles(ctx context.Context) ([]domain.Role, error)

	SaveRequirement(ctx context.Context, req domain.Requirement) (int64, error)
	DeleteRequirement(ctx context.Context, id int64) error
	RequirementsByRid(ctx context.Context, rid int64) ([]domain.Requirement, error)
	RequirementsByRids(ctx context.Context, rids []int64) (map[int64][]domain.Requirement, error)
	CountRequirementBySkill(ctx context.Context) (map[int64]int64, error)
}

type roleRepo struct {
	roleDao   dao.RoleDAO
	roleCache cache.RoleCache
	logger    *elog.Component
}

func NewRoleRepo(roleDao dao.RoleDAO, roleCache cache.RoleCache) RoleRepo {
	return &roleRepo{
		roleDao:   roleDao,
		roleCache: roleCache,
		logger:    elog.DefaultLogger,
	}
}

func (r *roleRepo) Save(ctx context.Context, role domain.Role) (int64, error) {
	id, err := r.roleDao.Save(ctx, r.roleToEntity(role))
	if err != nil {
		return 0, err
	}
	// 上下架和薪资变了，热门列表就过期了
	if er := r.roleCache.DelPopular(ctx); er != nil {
		r.logger.Error("删除热门方向缓存失败", elog.FieldErr(er))
	}
	return id, nil
}

func (r *roleRepo) UpdateDemandScore(ctx context.Context, id int64, score int) error {
	err := r.roleDao.UpdateDemandScore(ctx, id, score)
	if err != nil {
		return err
	}
	if er := r.roleCache.DelPopular(ctx); er != nil {
		r.logger.Error("删除热门方向缓存失败", elog.FieldErr(er))
	}
	return nil
}

func (r *roleRepo) List(ctx context.Context, offset, limit int) ([]domain.Role, error) {
	res, err := r.roleDao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Role) domain.Role {
		return r.roleToDomain(src)
	}), nil
}

func (r *roleRepo) Total(ctx context.Context) (int64, error) {
	return r.roleDao.Total(ctx)
}

func (r *roleRepo) PubList(ctx context.Context, offset, limit int, category domain.Category) ([]domain.Role, error) {
	res, err := r.roleDao.PubList(ctx, offset, limit, category.String())
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Role) domain.Role {
		return r.roleToDomain(src)
	}), nil
}

func (r *roleRepo) PubTotal(ctx context.Context, category domain.Category) (int64, error) {
	return r.roleDao.PubTotal(ctx, category.String())
}

func (r *roleRepo) GetByID(ctx context.Context, id int64) (domain.Role, error) {
	res, err := r.roleDao.GetByID(ctx, id)
	if err != nil {
		return domain.Role{}, err
	}
	return r.roleToDomain(res), nil
}

func (r *roleRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Role, error) {
	res, err := r.roleDao.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Role) domain.Role {
		return r.roleToDomain(src)
	}), nil
}

func (r *roleRepo) Popular(ctx context.Context, minScore, limit int) ([]domain.Role, error) {
	res, err := r.roleCache.GetPopular(ctx)
	if err == nil && len(res) >= limit {
		return res[:limit], nil
	}
	roles, err := r.roleDao.Popular(ctx, minScore, limit)
	if err != nil {
		return nil, err
	}
	res = slice.Map(roles, func(idx int, src dao.Role) domain.Role {
		return r.roleToDomain(src)
	})
	if er := r.roleCache.SetPopular(ctx, res); er != nil {
		r.logger.Error("缓存热门方向失败", elog.FieldErr(er))
	}
	return res, nil
}

func (r *roleRepo) HighGrowth(ctx context.Context, minGrowth float64, limit int) ([]domain.Role, error) {
	res, err := r.roleDao.HighGrowth(ctx, minGrowth, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Role) domain.Role {
		return r.roleToDomain(src)
	}), nil
}

func (r *roleRepo) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	res, err := r.roleDao.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.CategoryCount) domain.CategoryCount {
		return domain.CategoryCount{
			Category: domain.Category(src.Category),
			Count:    src.Cnt,
		}
	}), nil
}

func (r *roleRepo) ActiveRoles(ctx context.Context) ([]domain.Role, error) {
	res, err := r.roleDao.ActiveRoles(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Role) domain.Role {
		return r.roleToDomain(src)
	}), nil
}

func (r *roleRepo) SaveRequirement(ctx context.Context, req domain.Requirement) (int64, error) {
	return r.roleDao.SaveRequirement(ctx, dao.Requirement{
		Id:         req.ID,
		Rid:        req.Rid,
		Sid:        req.Sid,
		Importance: req.Importance.ToUint8(),
		Required:   req.Required,
		MinRank:    req.MinLevel.ToUint8(),
	})
}

func (r *roleRepo) DeleteRequirement(ctx context.Context, id int64) error {
	return r.roleDao.DeleteRequirement(ctx, id)
}

func (r *roleRepo) RequirementsByRid(ctx context.Context, rid int64) ([]domain.Requirement, error) {
	res, err := r.roleDao.RequirementsByRid(ctx, rid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Requirement) domain.Requirement {
		return r.reqToDomain(src)
	}), nil
}

func (r *roleRepo) RequirementsByRids(ctx context.Context, rids []int64) (map[int64][]domain.Requirement, error) {
	rows, err := r.roleDao.RequirementsByRids(ctx, rids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64][]domain.Requirement, len(rids))
	for _, row := range rows {
		res[row.Rid] = append(res[row.Rid], r.reqToDomain(row))
	}
	return res, nil
}

func (r *roleRepo) CountRequirementBySkill(ctx context.Context) (map[int64]int64, error) {
	return r.roleDao.CountRequirementBySkill(ctx)
}

func (r *roleRepo) roleToEntity(role domain.Role) dao.Role {
	return dao.Role{
		Id:          role.ID,
		Title:       role.Title,
		Overview:    role.Overview,
		Category:    role.Category.String(),
		SalaryMin:   role.SalaryMin,
		SalaryMax:   role.SalaryMax,
		DemandScore: role.DemandScore,
		Growth:      role.Growth,
		Status:      role.Status.ToUint8(),
	}
}

func (r *roleRepo) roleToDomain(role dao.Role) domain.Role {
	return domain.Role{
		ID:          role.Id,
		Title:       role.Title,
		Overview:    role.Overview,
		Category:    domain.Category(role.Category),
		SalaryMin:   role.SalaryMin,
		SalaryMax:   role.SalaryMax,
		DemandScore: role.DemandScore,
		Growth:      role.Growth,
		Status:      domain.RoleStatus(role.Status),
		Ctime:       time.UnixMilli(role.Ctime),
		Utime:       time.UnixMilli(role.Utime),
	}
}

func (r *roleRepo) reqToDomain(req dao.Requirement) domain.Requirement {
	return domain.Requirement{
		ID:         req.Id,
		Rid:        req.Rid,
		Sid:        req.Sid,
		Importance: matching.Importance(req.Importance),
		Required:   req.Required,
		MinLevel:   matching.Level(req.MinRank),
	}
}
