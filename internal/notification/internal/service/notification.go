package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ecodeclub/skillbridge/internal/notification/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/repository"
)

type Service interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	// List 返回通知列表、总数和未读数
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, int64, error)
	Read(ctx context.Context, uid int64, ids []int64) error
	ReadAll(ctx context.Context, uid int64) error
}

type service struct {
	repo repository.NotificationRepo
}

func NewService(repo repository.NotificationRepo) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return s.repo.Create(ctx, n)
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, int64, error) {
	var (
		eg     errgroup.Group
		ns     []domain.Notification
		total  int64
		unread int64
	)
	eg.Go(func() error {
		var err error
		ns, err = s.repo.List(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		unread, err = s.repo.UnreadCount(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, 0, err
	}
	return ns, total, unread, nil
}

func (s *service) Read(ctx context.Context, uid int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.MarkRead(ctx, uid, ids)
}

func (s *service) ReadAll(ctx context.Context, uid int64) error {
	return s.repo.MarkAllRead(ctx, uid)
}
