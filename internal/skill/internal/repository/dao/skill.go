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
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrUserSkillDuplicate 重复添加同一项技能
	ErrUserSkillDuplicate = errors.New("已经添加过这项技能")
)

type SkillDAO interface {
	// 管理端
	Save(ctx context.Context, sk Skill) (int64, error)
	SaveLevel(ctx context.Context, level SkillLevel) (int64, error)
	UpdatePopularity(ctx context.Context, id int64, popularity int) error
	Delete(ctx context.Context, id int64) error

	// C 端目录
	List(ctx context.Context, offset, limit int, category string, difficulty uint8) ([]Skill, error)
	Count(ctx context.Context, category string, difficulty uint8) (int64, error)
	GetByID(ctx context.Context, id int64) (Skill, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Skill, error)
	Popular(ctx context.Context, limit int) ([]Skill, error)
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
	Levels(ctx context.Context) ([]SkillLevel, error)
	LevelByID(ctx context.Context, id int64) (SkillLevel, error)
	LevelByRank(ctx context.Context, rank uint8) (SkillLevel, error)

	// 用户技能
	CreateUserSkill(ctx context.Context, us UserSkill) (int64, error)
	UpdateUserSkill(ctx context.Context, us UserSkill) error
	DeleteUserSkill(ctx context.Context, uid, sid int64) error
	UserSkills(ctx context.Context, uid int64) ([]UserSkill, error)
	UpsertAcquired(ctx context.Context, us UserSkill) error
	CountUserSkillBySkill(ctx context.Context) ([]SkillUsage, error)
}

// SkillUsage 按技能统计的使用人数
type SkillUsage struct {
	Sid int64
	Cnt int64
}

type CategoryCount struct {
	Category string
	Cnt      int64
}

type skillDAO struct {
	db *egorm.Component
}

func NewSkillDAO(db *egorm.Component) SkillDAO {
	return &skillDAO{
		db: db,
	}
}

func (s *skillDAO) Save(ctx context.Context, sk Skill) (int64, error) {
	now := time.Now().UnixMilli()
	sk.Utime = now
	if sk.Id == 0 {
		sk.Ctime = now
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"category", "difficulty", "desc", "utime",
			}),
		}).Create(&sk).Error
		return sk.Id, err
	}
	err := s.db.WithContext(ctx).Model(&Skill{}).
		Where("id = ?", sk.Id).Updates(map[string]any{
		"name":       sk.Name,
		"category":   sk.Category,
		"difficulty": sk.Difficulty,
		"desc":       sk.Desc,
		"utime":      now,
	}).Error
	return sk.Id, err
}

func (s *skillDAO) SaveLevel(ctx context.Context, level SkillLevel) (int64, error) {
	now := time.Now().UnixMilli()
	level.Ctime = now
	level.Utime = now
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "rank"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "desc", "utime",
		}),
	}).Create(&level).Error
	return level.Id, err
}

func (s *skillDAO) UpdatePopularity(ctx context.Context, id int64, popularity int) error {
	return s.db.WithContext(ctx).Model(&Skill{}).
		Where("id = ?", id).Updates(map[string]any{
		"popularity": popularity,
		"utime":      time.Now().UnixMilli(),
	}).Error
}

func (s *skillDAO) Delete(ctx context.Context, id int64) error {
	// 连带清掉引用这个技能的用户档案
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sid = ?", id).Delete(&UserSkill{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Skill{}).Error
	})
}

func (s *skillDAO) List(ctx context.Context, offset, limit int, category string, difficulty uint8) ([]Skill, error) {
	var skills []Skill
	err := s.listConds(ctx, category, difficulty).
		Order("id desc").
		Offset(offset).Limit(limit).Find(&skills).Error
	return skills, err
}

func (s *skillDAO) Count(ctx context.Context, category string, difficulty uint8) (int64, error) {
	var count int64
	err := s.listConds(ctx, category, difficulty).Count(&count).Error
	return count, err
}

func (s *skillDAO) listConds(ctx context.Context, category string, difficulty uint8) *gorm.DB {
	db := s.db.WithContext(ctx).Model(&Skill{})
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if difficulty > 0 {
		db = db.Where("difficulty = ?", difficulty)
	}
	return db
}

func (s *skillDAO) GetByID(ctx context.Context, id int64) (Skill, error) {
	var sk Skill
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&sk).Error
	return sk, err
}

func (s *skillDAO) GetByIDs(ctx context.Context, ids []int64) ([]Skill, error) {
	var skills []Skill
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}

func (s *skillDAO) Popular(ctx context.Context, limit int) ([]Skill, error) {
	var skills []Skill
	err := s.db.WithContext(ctx).Model(&Skill{}).
		Order("popularity DESC, id ASC").
		Limit(limit).Find(&skills).Error
	return skills, err
}

func (s *skillDAO) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	var res []CategoryCount
	err := s.db.WithContext(ctx).Model(&Skill{}).
		Select("category, COUNT(*) AS cnt").
		Group("category").Scan(&res).Error
	return res, err
}

func (s *skillDAO) Levels(ctx context.Context) ([]SkillLevel, error) {
	var levels []SkillLevel
	err := s.db.WithContext(ctx).Model(&SkillLevel{}).
		Order("`rank` ASC").Find(&levels).Error
	return levels, err
}

func (s *skillDAO) LevelByID(ctx context.Context, id int64) (SkillLevel, error) {
	var level SkillLevel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&level).Error
	return level, err
}

func (s *skillDAO) LevelByRank(ctx context.Context, rank uint8) (SkillLevel, error) {
	var level SkillLevel
	err := s.db.WithContext(ctx).Where("`rank` = ?", rank).First(&level).Error
	return level, err
}

func (s *skillDAO) CreateUserSkill(ctx context.Context, us UserSkill) (int64, error) {
	now := time.Now().UnixMilli()
	us.Ctime = now
	us.Utime = now
	err := s.db.WithContext(ctx).Create(&us).Error
	if e, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if e.Number == uniqueIndexErrNo {
			// 唯一索引冲突，重复添加不允许覆盖
			return 0, ErrUserSkillDuplicate
		}
	}
	return us.Id, err
}

func (s *skillDAO) UpdateUserSkill(ctx context.Context, us UserSkill) error {
	res := s.db.WithContext(ctx).Model(&UserSkill{}).
		Where("uid = ? AND sid = ?", us.Uid, us.Sid).
		Updates(map[string]any{
			"slid":       us.Slid,
			"level_rank": us.LevelRank,
			"status":     us.Status,
			"utime":      time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *skillDAO) DeleteUserSkill(ctx context.Context, uid, sid int64) error {
	res := s.db.WithContext(ctx).
		Where("uid = ? AND sid = ?", uid, sid).Delete(&UserSkill{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *skillDAO) UserSkills(ctx context.Context, uid int64) ([]UserSkill, error) {
	var res []UserSkill
	err := s.db.WithContext(ctx).
		Where("uid = ?", uid).Order("id DESC").Find(&res).Error
	return res, err
}

// UpsertAcquired 学习路线完成之后回写，等级只升不降
func (s *skillDAO) UpsertAcquired(ctx context.Context, us UserSkill) error {
	now := time.Now().UnixMilli()
	us.Ctime = now
	us.Utime = now
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}, {Name: "sid"}},
		DoUpdates: clause.Assignments(map[string]any{
			"slid":       gorm.Expr("IF(VALUES(level_rank) >= level_rank, VALUES(slid), slid)"),
			"level_rank": gorm.Expr("GREATEST(level_rank, VALUES(level_rank))"),
			"status":     us.Status,
			"utime":      now,
		}),
	}).Create(&us).Error
}

func (s *skillDAO) CountUserSkillBySkill(ctx context.Context) ([]SkillUsage, error) {
	var res []SkillUsage
	err := s.db.WithContext(ctx).Model(&UserSkill{}).
		Select("sid, COUNT(*) AS cnt").
		Group("sid").Scan(&res).Error
	return res, err
}
