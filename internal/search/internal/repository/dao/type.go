package dao

import (
	"context"

	"github.com/ecodeclub/skillbridge/internal/search/internal/domain"
)

type SkillDAO interface {
	SearchSkill(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]Skill, error)
}

type RoleDAO interface {
	SearchRole(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]Role, error)
}

type JobDAO interface {
	SearchJob(ctx context.Context, offset, limit int, queryMetas []domain.QueryMeta) ([]Job, error)
}

type AnyDAO interface {
	Input(ctx context.Context, index string, docID string, data string) error
}
