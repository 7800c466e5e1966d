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
	ErrRecordNotFound    = gorm.ErrRecordNotFound
	ErrJobSkillDuplicate = errors.New("技能要求已经存在")
)

// 和 domain 里的取值保持一致
const (
	JobStatusActive  uint8 = 2
	JobStatusExpired uint8 = 3
)

type JobDAO interface {
	Save(ctx context.Context, j Job) (int64, error)
	Close(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, offset, limit int) ([]Job, error)
	Total(ctx context.Context) (int64, error)
	PubList(ctx context.Context, offset, limit int, category string, remoteOnly bool) ([]Job, error)
	PubTotal(ctx context.Context, category string, remoteOnly bool) (int64, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Job, error)
	Fresh(ctx context.Context, postedAfter int64, limit int) ([]Job, error)
	Categories(ctx context.Context) ([]CategoryCount, error)
	ActiveJobs(ctx context.Context) ([]Job, error)
	// ExpireDue 把截止日期已过的在招岗位批量置为过期，返回条数
	ExpireDue(ctx context.Context, now int64) (int64, error)

	SaveSkill(ctx context.Context, sk JobSkill) (int64, error)
	DeleteSkill(ctx context.Context, id int64) error
	SkillsByJid(ctx context.Context, jid int64) ([]JobSkill, error)
	SkillsByJids(ctx context.Context, jids []int64) ([]JobSkill, error)
	CountActiveByRole(ctx context.Context) (map[int64]int64, error)
	CountSkillUsage(ctx context.Context) (map[int64]int64, error)
}

type CategoryCount struct {
	Category string
	Cnt      int64
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (g *GORMJobDAO) Save(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "company", "location", "remote", "category", "rid",
			"salary_min", "salary_max", "level", "status",
			"source", "url", "summary", "posted_at", "expires_at", "utime"}),
	}).Create(&j).Error
	return j.Id, err
}

func (g *GORMJobDAO) Close(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).
		Updates(map[string]any{
			"status": JobStatusExpired,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMJobDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("jid = ?", id).Delete(&JobSkill{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Job{}).Error
	})
}

func (g *GORMJobDAO) List(ctx context.Context, offset, limit int) ([]Job, error) {
	var res []Job
	err := g.db.WithContext(ctx).
		Offset(offset).Limit(limit).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) Total(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Job{}).Count(&count).Error
	return count, err
}

func (g *GORMJobDAO) PubList(ctx context.Context, offset, limit int, category string, remoteOnly bool) ([]Job, error) {
	var res []Job
	err := g.pubCond(ctx, category, remoteOnly).
		Offset(offset).Limit(limit).
		Order("posted_at DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) PubTotal(ctx context.Context, category string, remoteOnly bool) (int64, error) {
	var count int64
	err := g.pubCond(ctx, category, remoteOnly).Model(&Job{}).Count(&count).Error
	return count, err
}

func (g *GORMJobDAO) pubCond(ctx context.Context, category string, remoteOnly bool) *gorm.DB {
	db := g.db.WithContext(ctx).Where("status = ?", JobStatusActive)
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if remoteOnly {
		db = db.Where("remote = ?", true)
	}
	return db
}

func (g *GORMJobDAO) GetByID(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

func (g *GORMJobDAO) GetByIDs(ctx context.Context, ids []int64) ([]Job, error) {
	var res []Job
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) Fresh(ctx context.Context, postedAfter int64, limit int) ([]Job, error) {
	var res []Job
	err := g.db.WithContext(ctx).
		Where("status = ? AND posted_at >= ?", JobStatusActive, postedAfter).
		Order("posted_at DESC, id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) Categories(ctx context.Context) ([]CategoryCount, error) {
	var res []CategoryCount
	err := g.db.WithContext(ctx).Model(&Job{}).
		Select("category AS category, COUNT(*) AS cnt").
		Where("status = ?", JobStatusActive).
		Group("category").
		Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) ActiveJobs(ctx context.Context) ([]Job, error) {
	var res []Job
	err := g.db.WithContext(ctx).
		Where("status = ?", JobStatusActive).
		Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) ExpireDue(ctx context.Context, now int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Job{}).
		Where("status = ? AND expires_at > 0 AND expires_at < ?", JobStatusActive, now).
		Updates(map[string]any{
			"status": JobStatusExpired,
			"utime":  now,
		})
	return res.RowsAffected, res.Error
}

func (g *GORMJobDAO) SaveSkill(ctx context.Context, sk JobSkill) (int64, error) {
	now := time.Now().UnixMilli()
	sk.Ctime = now
	sk.Utime = now
	err := g.db.WithContext(ctx).Create(&sk).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrJobSkillDuplicate
		}
	}
	return sk.Id, err
}

func (g *GORMJobDAO) DeleteSkill(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&JobSkill{}).Error
}

func (g *GORMJobDAO) SkillsByJid(ctx context.Context, jid int64) ([]JobSkill, error) {
	var res []JobSkill
	err := g.db.WithContext(ctx).Where("jid = ?", jid).Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) SkillsByJids(ctx context.Context, jids []int64) ([]JobSkill, error) {
	var res []JobSkill
	err := g.db.WithContext(ctx).Where("jid IN ?", jids).Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) CountActiveByRole(ctx context.Context) (map[int64]int64, error) {
	var rows []struct {
		Rid int64
		Cnt int64
	}
	err := g.db.WithContext(ctx).Model(&Job{}).
		Select("rid, COUNT(*) AS cnt").
		Where("status = ? AND rid > 0", JobStatusActive).
		Group("rid").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(rows))
	for _, row := range rows {
		res[row.Rid] = row.Cnt
	}
	return res, nil
}

func (g *GORMJobDAO) CountSkillUsage(ctx context.Context) (map[int64]int64, error) {
	var rows []struct {
		Sid int64
		Cnt int64
	}
	err := g.db.WithContext(ctx).Model(&JobSkill{}).
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
