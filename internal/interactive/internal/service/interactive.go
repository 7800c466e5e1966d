package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ecodeclub/skillbridge/internal/interactive/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/repository"
)

type InteractiveService interface {
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	// CollectToggle 收藏或者取消收藏，返回执行之后是否处于收藏状态
	CollectToggle(ctx context.Context, biz string, bizId, uid int64) (bool, error)
	Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error)
	GetByIds(ctx context.Context, biz string, uid int64, ids []int64) (map[int64]domain.Interactive, error)
	// CollectionIds 用户在某个 biz 下收藏的资源 id
	CollectionIds(ctx context.Context, uid int64, biz string, offset, limit int) ([]int64, error)
	// ViewCnts biz_id => 浏览量，供热度类定时任务使用
	ViewCnts(ctx context.Context, biz string) (map[int64]int64, error)
}

type interactiveService struct {
	repo repository.InteractiveRepository
}

func NewService(repo repository.InteractiveRepository) InteractiveService {
	return &interactiveService{
		repo: repo,
	}
}

func (i *interactiveService) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	return i.repo.IncrViewCnt(ctx, biz, bizId)
}

func (i *interactiveService) CollectToggle(ctx context.Context, biz string, bizId, uid int64) (bool, error) {
	return i.repo.CollectToggle(ctx, biz, bizId, uid)
}

func (i *interactiveService) Get(ctx context.Context, biz string, id int64, uid int64) (domain.Interactive, error) {
	var (
		eg   errgroup.Group
		intr domain.Interactive
	)
	eg.Go(func() error {
		var er error
		intr, er = i.repo.Get(ctx, biz, id)
		return er
	})
	var collected bool
	eg.Go(func() error {
		var er error
		collected, er = i.repo.Collected(ctx, biz, id, uid)
		return er
	})
	if err := eg.Wait(); err != nil {
		return domain.Interactive{}, err
	}
	intr.Collected = collected
	return intr, nil
}

func (i *interactiveService) GetByIds(ctx context.Context, biz string, uid int64, ids []int64) (map[int64]domain.Interactive, error) {
	intrs, err := i.repo.GetByIds(ctx, biz, uid, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Interactive, len(intrs))
	for _, intr := range intrs {
		res[intr.BizId] = intr
	}
	return res, nil
}

func (i *interactiveService) CollectionIds(ctx context.Context, uid int64, biz string, offset, limit int) ([]int64, error) {
	return i.repo.CollectionIds(ctx, uid, biz, offset, limit)
}

func (i *interactiveService) ViewCnts(ctx context.Context, biz string) (map[int64]int64, error) {
	return i.repo.ViewCnts(ctx, biz)
}
