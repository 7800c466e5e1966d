package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/matching"
)

var ErrAnalysisNotFound = dao.ErrRecordNotFound

type AnalysisRepo interface {
	Create(ctx context.Context, a domain.Analysis) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Analysis, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Analysis, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	LatestByUid(ctx context.Context, uid int64) (domain.Analysis, error)
	LatestByUidRid(ctx context.Context, uid, rid int64) (domain.Analysis, error)
	CountByRole(ctx context.Context) (map[int64]int64, error)
}

type analysisRepo struct {
	analysisDao dao.AnalysisDAO
}

func NewAnalysisRepo(analysisDao dao.AnalysisDAO) AnalysisRepo {
	return &analysisRepo{analysisDao: analysisDao}
}

func (a *analysisRepo) Create(ctx context.Context, an domain.Analysis) (int64, error) {
	return a.analysisDao.Insert(ctx, a.toEntity(an))
}

func (a *analysisRepo) GetByID(ctx context.Context, id int64) (domain.Analysis, error) {
	res, err := a.analysisDao.GetByID(ctx, id)
	if err != nil {
		return domain.Analysis{}, err
	}
	return a.toDomain(res), nil
}

func (a *analysisRepo) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Analysis, error) {
	res, err := a.analysisDao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Analysis) domain.Analysis {
		return a.toDomain(src)
	}), nil
}

func (a *analysisRepo) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return a.analysisDao.CountByUid(ctx, uid)
}

func (a *analysisRepo) LatestByUid(ctx context.Context, uid int64) (domain.Analysis, error) {
	res, err := a.analysisDao.LatestByUid(ctx, uid)
	if err != nil {
		return domain.Analysis{}, err
	}
	return a.toDomain(res), nil
}

func (a *analysisRepo) LatestByUidRid(ctx context.Context, uid, rid int64) (domain.Analysis, error) {
	res, err := a.analysisDao.LatestByUidRid(ctx, uid, rid)
	if err != nil {
		return domain.Analysis{}, err
	}
	return a.toDomain(res), nil
}

func (a *analysisRepo) CountByRole(ctx context.Context) (map[int64]int64, error) {
	return a.analysisDao.CountByRole(ctx)
}

func (a *analysisRepo) toEntity(an domain.Analysis) dao.Analysis {
	gaps := slice.Map(an.Gaps, func(idx int, src matching.SkillGap) dao.AnalysisGap {
		return dao.AnalysisGap{
			Sid:            src.SkillID,
			Name:           src.Name,
			Category:       src.Category,
			Difficulty:     src.Difficulty,
			Importance:     src.Importance.ToUint8(),
			CurrentRank:    src.CurrentLevel.ToUint8(),
			TargetRank:     src.TargetLevel.ToUint8(),
			Insufficient:   src.Insufficient,
			Priority:       src.Priority.ToUint8(),
			EstimatedWeeks: src.EstimatedWeeks,
		}
	})
	return dao.Analysis{
		Id:                an.ID,
		Uid:               an.Uid,
		Rid:               an.Rid,
		RoleTitle:         an.RoleTitle,
		MatchPercentage:   an.MatchPercentage,
		TotalRequired:     an.TotalRequired,
		MatchedCount:      an.MatchedCount,
		MissingCount:      an.MissingCount,
		InsufficientCount: an.InsufficientCount,
		Readiness:         string(an.Readiness),
		EstimatedWeeks:    an.EstimatedWeeks,
		Gaps:              sqlx.JsonColumn[[]dao.AnalysisGap]{Val: gaps, Valid: true},
	}
}

func (a *analysisRepo) toDomain(an dao.Analysis) domain.Analysis {
	gaps := slice.Map(an.Gaps.Val, func(idx int, src dao.AnalysisGap) matching.SkillGap {
		return matching.SkillGap{
			SkillID:        src.Sid,
			Name:           src.Name,
			Category:       src.Category,
			Difficulty:     src.Difficulty,
			Importance:     matching.Importance(src.Importance),
			CurrentLevel:   matching.Level(src.CurrentRank),
			TargetLevel:    matching.Level(src.TargetRank),
			Insufficient:   src.Insufficient,
			Priority:       matching.Priority(src.Priority),
			EstimatedWeeks: src.EstimatedWeeks,
		}
	})
	return domain.Analysis{
		ID:                an.Id,
		Uid:               an.Uid,
		Rid:               an.Rid,
		RoleTitle:         an.RoleTitle,
		MatchPercentage:   an.MatchPercentage,
		TotalRequired:     an.TotalRequired,
		MatchedCount:      an.MatchedCount,
		MissingCount:      an.MissingCount,
		InsufficientCount: an.InsufficientCount,
		Readiness:         matching.Readiness(an.Readiness),
		EstimatedWeeks:    an.EstimatedWeeks,
		Gaps:              gaps,
		Ctime:             time.UnixMilli(an.Ctime),
	}
}
