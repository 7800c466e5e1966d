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
	"github.com/ecodeclub/skillbridge/internal/job/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/job/internal/repository/dao"
	"github.com/ecodeclub/skillbridge/internal/matching"
)

var (
	ErrJobNotFound       = dao.ErrRecordNotFound
	ErrJobSkillDuplicate = dao.ErrJobSkillDuplicate
)

type JobRepo interface {
	Save(ctx context.Context, j domain.Job) (int64, error)
	Close(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error

	List(ctx context.Context, offset, limit int) ([]domain.Job, error)
	Total(ctx context.Context) (int64, error)
	PubList(ctx context.Context, offset, limit int, category string, remoteOnly bool) ([]domain.Job, error)
	PubTotal(ctx context.Context, category string, remoteOnly bool) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Job, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Job, error)
	Fresh(ctx context.Context, postedAfter time.Time, limit int) ([]domain.Job, error)
	Categories(ctx context.Context) ([]domain.CategoryCount, error)
	ActiveJobs(ctx context.Context) ([]domain.Job, error)
	ExpireDue(ctx context.Context, now time.Time) (int64, error)

	SaveSkill(ctx context.Context, sk domain.JobSkill) (int64, error)
	DeleteSkill(ctx context.Context, id int64) error
	SkillsByJid(ctx context.Context, jid int64) ([]domain.JobSkill, error)
	SkillsByJids(ctx context.Context, jids []int64) (map[int64][]domain.JobSkill, error)
	CountActiveByRole(ctx context.Context) (map[int64]int64, error)
	CountSkillUsage(ctx context.Context) (map[int64]int64, error)
}

type jobRepo struct {
	jobDao dao.JobDAO
}

func NewJobRepo(jobDao dao.JobDAO) JobRepo {
	return &jobRepo{jobDao: jobDao}
}

func (r *jobRepo) Save(ctx context.Context, j domain.Job) (int64, error) {
	return r.jobDao.Save(ctx, r.toEntity(j))
}

func (r *jobRepo) Close(ctx context.Context, id int64) error {
	return r.jobDao.Close(ctx, id)
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	return r.jobDao.Delete(ctx, id)
}

func (r *jobRepo) List(ctx context.Context, offset, limit int) ([]domain.Job, error) {
	res, err := r.jobDao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepo) Total(ctx context.Context) (int64, error) {
	return r.jobDao.Total(ctx)
}

func (r *jobRepo) PubList(ctx context.Context, offset, limit int, category string, remoteOnly bool) ([]domain.Job, error) {
	res, err := r.jobDao.PubList(ctx, offset, limit, category, remoteOnly)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepo) PubTotal(ctx context.Context, category string, remoteOnly bool) (int64, error) {
	return r.jobDao.PubTotal(ctx, category, remoteOnly)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (domain.Job, error) {
	res, err := r.jobDao.GetByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	return r.toDomain(res), nil
}

func (r *jobRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Job, error) {
	res, err := r.jobDao.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepo) Fresh(ctx context.Context, postedAfter time.Time, limit int) ([]domain.Job, error) {
	res, err := r.jobDao.Fresh(ctx, postedAfter.UnixMilli(), limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepo) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	res, err := r.jobDao.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.CategoryCount) domain.CategoryCount {
		return domain.CategoryCount{
			Category: src.Category,
			Count:    src.Cnt,
		}
	}), nil
}

func (r *jobRepo) ActiveJobs(ctx context.Context) ([]domain.Job, error) {
	res, err := r.jobDao.ActiveJobs(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepo) ExpireDue(ctx context.Context, now time.Time) (int64, error) {
	return r.jobDao.ExpireDue(ctx, now.UnixMilli())
}

func (r *jobRepo) SaveSkill(ctx context.Context, sk domain.JobSkill) (int64, error) {
	return r.jobDao.SaveSkill(ctx, dao.JobSkill{
		Id:         sk.ID,
		Jid:        sk.Jid,
		Sid:        sk.Sid,
		Importance: sk.Importance.ToUint8(),
		Required:   sk.Required,
		MinRank:    sk.MinLevel.ToUint8(),
	})
}

func (r *jobRepo) DeleteSkill(ctx context.Context, id int64) error {
	return r.jobDao.DeleteSkill(ctx, id)
}

func (r *jobRepo) SkillsByJid(ctx context.Context, jid int64) ([]domain.JobSkill, error) {
	res, err := r.jobDao.SkillsByJid(ctx, jid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.JobSkill) domain.JobSkill {
		return r.skillToDomain(src)
	}), nil
}

func (r *jobRepo) SkillsByJids(ctx context.Context, jids []int64) (map[int64][]domain.JobSkill, error) {
	res, err := r.jobDao.SkillsByJids(ctx, jids)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]domain.JobSkill, len(jids))
	for _, sk := range res {
		grouped[sk.Jid] = append(grouped[sk.Jid], r.skillToDomain(sk))
	}
	return grouped, nil
}

func (r *jobRepo) CountActiveByRole(ctx context.Context) (map[int64]int64, error) {
	return r.jobDao.CountActiveByRole(ctx)
}

func (r *jobRepo) CountSkillUsage(ctx context.Context) (map[int64]int64, error) {
	return r.jobDao.CountSkillUsage(ctx)
}

func (r *jobRepo) toEntity(j domain.Job) dao.Job {
	res := dao.Job{
		Id:        j.ID,
		Title:     j.Title,
		Company:   j.Company,
		Location:  j.Location,
		Remote:    j.Remote,
		Category:  j.Category,
		Rid:       j.Rid,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Level:     j.Level.String(),
		Status:    j.Status.ToUint8(),
		Source:    j.Source,
		URL:       j.URL,
		Summary:   j.Summary,
		PostedAt:  j.PostedAt.UnixMilli(),
	}
	if !j.ExpiresAt.IsZero() {
		res.ExpiresAt = j.ExpiresAt.UnixMilli()
	}
	return res
}

func (r *jobRepo) toDomain(j dao.Job) domain.Job {
	res := domain.Job{
		ID:        j.Id,
		Title:     j.Title,
		Company:   j.Company,
		Location:  j.Location,
		Remote:    j.Remote,
		Category:  j.Category,
		Rid:       j.Rid,
		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,
		Level:     domain.Seniority(j.Level),
		Status:    domain.JobStatus(j.Status),
		Source:    j.Source,
		URL:       j.URL,
		Summary:   j.Summary,
		PostedAt:  time.UnixMilli(j.PostedAt),
		Ctime:     time.UnixMilli(j.Ctime),
		Utime:     time.UnixMilli(j.Utime),
	}
	if j.ExpiresAt > 0 {
		res.ExpiresAt = time.UnixMilli(j.ExpiresAt)
	}
	return res
}

func (r *jobRepo) skillToDomain(sk dao.JobSkill) domain.JobSkill {
	return domain.JobSkill{
		ID:         sk.Id,
		Jid:        sk.Jid,
		Sid:        sk.Sid,
		Importance: matching.Importance(sk.Importance),
		Required:   sk.Required,
		MinLevel:   matching.Level(sk.MinRank),
	}
}
