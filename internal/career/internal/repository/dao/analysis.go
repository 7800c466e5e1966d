package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type AnalysisDAO interface {
	// Insert id 由上层生成，只插入不更新
	Insert(ctx context.Context, a Analysis) (int64, error)
	GetByID(ctx context.Context, id int64) (Analysis, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Analysis, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	// LatestByUid 最近一次分析
	LatestByUid(ctx context.Context, uid int64) (Analysis, error)
	// LatestByUidRid 对某个方向的最近一次分析
	LatestByUidRid(ctx context.Context, uid, rid int64) (Analysis, error)
	// CountByRole 每个方向被分析的次数，需求热度要用
	CountByRole(ctx context.Context) (map[int64]int64, error)
}

type GORMAnalysisDAO struct {
	db *egorm.Component
}

func NewAnalysisDAO(db *egorm.Component) AnalysisDAO {
	return &GORMAnalysisDAO{db: db}
}

func (g *GORMAnalysisDAO) Insert(ctx context.Context, a Analysis) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := g.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (g *GORMAnalysisDAO) GetByID(ctx context.Context, id int64) (Analysis, error) {
	var a Analysis
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (g *GORMAnalysisDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Analysis, error) {
	var res []Analysis
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Offset(offset).Limit(limit).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMAnalysisDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Analysis{}).
		Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *GORMAnalysisDAO) LatestByUid(ctx context.Context, uid int64) (Analysis, error) {
	var a Analysis
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		First(&a).Error
	return a, err
}

func (g *GORMAnalysisDAO) LatestByUidRid(ctx context.Context, uid, rid int64) (Analysis, error) {
	var a Analysis
	err := g.db.WithContext(ctx).
		Where("uid = ? AND rid = ?", uid, rid).
		Order("ctime DESC, id DESC").
		First(&a).Error
	return a, err
}

func (g *GORMAnalysisDAO) CountByRole(ctx context.Context) (map[int64]int64, error) {
	var rows []struct {
		Rid int64
		Cnt int64
	}
	err := g.db.WithContext(ctx).Model(&Analysis{}).
		Select("rid, COUNT(*) AS cnt").
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
