package service

import (
	"context"

	"github.com/ecodeclub/skillbridge/internal/search/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/search/internal/repository"
)

type SearchHandler interface {
	// 各自写各自的字段，不需要加锁 res
	search(ctx context.Context, queryMetas []domain.QueryMeta, offset, limit int, res *domain.SearchResult) error
}

type skillHandler struct {
	skillRepo repository.SkillRepo
}

func NewSkillHandler(skillRepo repository.SkillRepo) SearchHandler {
	return &skillHandler{
		skillRepo: skillRepo,
	}
}

func (s *skillHandler) search(ctx context.Context, queryMetas []domain.QueryMeta, offset, limit int, res *domain.SearchResult) error {
	skills, err := s.skillRepo.SearchSkill(ctx, offset, limit, queryMetas)
	if err != nil {
		return err
	}
	res.SetSkills(skills)
	return nil
}

type roleHandler struct {
	roleRepo repository.RoleRepo
}

func NewRoleHandler(roleRepo repository.RoleRepo) SearchHandler {
	return &roleHandler{
		roleRepo: roleRepo,
	}
}

func (r *roleHandler) search(ctx context.Context, queryMetas []domain.QueryMeta, offset, limit int, res *domain.SearchResult) error {
	roles, err := r.roleRepo.SearchRole(ctx, offset, limit, queryMetas)
	if err != nil {
		return err
	}
	res.SetRoles(roles)
	return nil
}

type jobHandler struct {
	jobRepo repository.JobRepo
}

func NewJobHandler(jobRepo repository.JobRepo) SearchHandler {
	return &jobHandler{
		jobRepo: jobRepo,
	}
}

func (j *jobHandler) search(ctx context.Context, queryMetas []domain.QueryMeta, offset, limit int, res *domain.SearchResult) error {
	jobs, err := j.jobRepo.SearchJob(ctx, offset, limit, queryMetas)
	if err != nil {
		return err
	}
	res.SetJobs(jobs)
	return nil
}
