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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound       = gorm.ErrRecordNotFound
	ErrRequirementDuplicate = errors.New("技能要求已经存在")
)

// 和 domain 里的取值保持一致
const (
	RoleStatusActive     uint8 = 2
	QuestionStatusActive uint8 = 2
)

type RoleDAO interface {
	Save(ctx context.Context, r Role) (int64, error)
	UpdateDemandScore(ctx context.Context, id int64, score int) error

	List(ctx context.Context, offset, limit int) ([]Role, error)
	Total(ctx context.Context) (int64, error)
	PubList(ctx context.Context, offset, limit int, category string) ([]Role, error)
	PubTotal(ctx context.Context, category string) (int64, error)
	GetByID(ctx context.Context, id int64) (Role, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Role, error)
	Popular(ctx context.Context, minScore, limit int) ([]Role, error)
	HighGrowth(ctx context.Context, minGrowth float64, limit int) ([]Role, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
	ActiveRoles(ctx context.Context) ([]Role, error)

	SaveRequirement(ctx context.Context, req Requirement) (int64, error)
	DeleteRequirement(ctx context.Context, id int64) error
	RequirementsByRid(ctx context.Context, rid int64) ([]Requirement, error)
	RequirementsByRids(ctx context.Context, rids []int64) ([]Requirement, error)
	CountRequirementBySkill(ctx context.Context) (map[int64]int64, error)
}

type CategoryCount struct {
	Category string
	Cnt      int64
}

type GORMRoleDAO struct {
	db *egorm.Component
}

func NewRoleDAO(db *egorm.Component) RoleDAO {
	return &GORMRoleDAO{db: db}
}

func (g *GORMRoleDAO) Save(ctx context.Context, r Role) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "overview", "category",
			"salary_min", "salary_max", "growth", "status", "utime"}),
	}).Create(&r).Error
	return r.Id, err
}

func (g *GORMRoleDAO) UpdateDemandScore(ctx context.Context, id int64, score int) error {
	return g.db.WithContext(ctx).Model(&Role{}).Where("id = ?", id).
		Updates(map[string]any{
			"demand_score": score,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (g *GORMRoleDAO) List(ctx context.Context, offset, limit int) ([]Role, error) {
	var res []Role
	err := g.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMRoleDAO) Total(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Role{}).Count(&count).Error
	return count, err
}

func (g *GORMRoleDAO) PubList(ctx context.Context, offset, limit int, category string) ([]Role, error) {
	var res []Role
	db := g.db.WithContext(ctx).Where("status = ?", RoleStatusActive)
	if category != "" {
		db = db.Where("category = ?", category)
	}
	err := db.Offset(offset).Limit(limit).
		Order("demand_score DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMRoleDAO) PubTotal(ctx context.Context, category string) (int64, error) {
	var count int64
	db := g.db.WithContext(ctx).Model(&Role{}).Where("status = ?", RoleStatusActive)
	if category != "" {
		db = db.Where("category = ?", category)
	}
	err := db.Count(&count).Error
	return count, err
}

func (g *GORMRoleDAO) GetByID(ctx context.Context, id int64) (Role, error) {
	var r Role
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (g *GORMRoleDAO) GetByIDs(ctx context.Context, ids []int64) ([]Role, error) {
	var res []Role
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMRoleDAO) Popular(ctx context.Context, minScore, limit int) ([]Role, error) {
	var res []Role
	err := g.db.WithContext(ctx).
		Where("status = ? AND demand_score >= ?", RoleStatusActive, minScore).
		Order("demand_score DESC, id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMRoleDAO) HighGrowth(ctx context.Context, minGrowth float64, limit int) ([]Role, error) {
	var res []Role
	err := g.db.WithContext(ctx).
		Where("status = ? AND growth >= ?", RoleStatusActive, minGrowth).
		Order("growth DESC, id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMRoleDAO) Categories(ctx context.Context) ([]CategoryCount, error) {
	var res []CategoryCount
	err := g.db.WithContext(ctx).Model(&Role{}).
		Select("category, COUNT(*) AS cnt").
		Where("status = ?", RoleStatusActive).
		Group("category").
		Find(&res).Error
	return res, err
}

func (g *GORMRoleDAO) ActiveRoles(ctx context.Context) ([]Role, error) {
	var res []Role
	err := g.db.WithContext(ctx).
		Where("status = ?", RoleStatusActive).
		Find(&res).Error
	return res, err
}

func (g *GORMRoleDAO) SaveRequirement(ctx context.Context, req Requirement) (int64, error) {
	now := time.Now().UnixMilli()
	req.Ctime = now
	req.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "rid"}, {Name: "sid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"importance", "required", "min_rank", "utime"}),
	}).Create(&req).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrRequirementDuplicate
		}
	}
	return req.Id, err
}

func (g *GORMRoleDAO) DeleteRequirement(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Requirement{}).Error
}

func (g *GORMRoleDAO) RequirementsByRid(ctx context.Context, rid int64) ([]Requirement, error) {
	var res []Requirement
	err := g.db.WithContext(ctx).
		Where("rid = ?", rid).
		Order("importance DESC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMRoleDAO) RequirementsByRids(ctx context.Context, rids []int64) ([]Requirement, error) {
	var res []Requirement
	err := g.db.WithContext(ctx).Where("rid IN ?", rids).Find(&res).Error
	return res, err
}

func (g *GORMRoleDAO) CountRequirementBySkill(ctx context.Context) (map[int64]int64, error) {
	var rows []struct {
		Sid int64
		Cnt int64
	}
	err := g.db.WithContext(ctx).Model(&Requirement{}).
		Select("sid, COUNT(*) AS cnt").
		Group("sid").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(rows))
	for _, row := range rows {
		res[row.Sid] = row.Cnt
	}
	return res, nil
}
