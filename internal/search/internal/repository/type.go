package repository

import (
	"context"

	"github.com/ecodeclub/skillbridge/internal/search/internal/domain"
)

type SkillRepo interface {
	SearchSkill(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]domain.Skill, error)
}

type RoleRepo interface {
	SearchRole(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]domain.Role, error)
}

type JobRepo interface {
	SearchJob(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]domain.Job, error)
}

type AnyRepo interface {
	Input(ctx context.Context, index string, docID string, data string) error
}
