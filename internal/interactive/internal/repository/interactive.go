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
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/interactive/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type InteractiveRepository interface {
	IncrViewCnt(ctx context.Context, biz string, bizId int64) error
	// CollectToggle 返回切换之后的收藏状态
	CollectToggle(ctx context.Context, biz string, id int64, uid int64) (bool, error)
	Get(ctx context.Context, biz string, id int64) (domain.Interactive, error)
	GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error)
	Collected(ctx context.Context, biz string, id int64, uid int64) (bool, error)
	// CollectionIds 用户在某个 biz 下收藏的资源 id，按收藏时间倒序
	CollectionIds(ctx context.Context, uid int64, biz string, offset, limit int) ([]int64, error)
	// ViewCnts 某个 biz 下 biz_id => 浏览量
	ViewCnts(ctx context.Context, biz string) (map[int64]int64, error)
}

type interactiveRepository struct {
	interactiveDao dao.InteractiveDAO
}

func NewCachedInteractiveRepository(interactiveDao dao.InteractiveDAO) InteractiveRepository {
	return &interactiveRepository{
		interactiveDao: interactiveDao,
	}
}

func (i *interactiveRepository) IncrViewCnt(ctx context.Context, biz string, bizId int64) error {
	return i.interactiveDao.IncrViewCnt(ctx, biz, bizId)
}

func (i *interactiveRepository) CollectToggle(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	return i.interactiveDao.CollectToggle(ctx, dao.UserCollectionBiz{
		Biz:   biz,
		Uid:   uid,
		BizId: id,
	})
}

func (i *interactiveRepository) Collected(ctx context.Context, biz string, id int64, uid int64) (bool, error) {
	_, err := i.interactiveDao.GetCollectInfo(ctx, biz, id, uid)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (i *interactiveRepository) Get(ctx context.Context, biz string, id int64) (domain.Interactive, error) {
	intr, err := i.interactiveDao.Get(ctx, biz, id)
	if err != nil {
		if errors.Is(err, dao.ErrRecordNotFound) {
			// 没有任何互动数据也是合法的，返回零值
			return domain.Interactive{Biz: biz, BizId: id}, nil
		}
		return domain.Interactive{}, err
	}
	return i.toDomain(intr), nil
}

func (i *interactiveRepository) GetByIds(ctx context.Context, biz string, uid int64, ids []int64) ([]domain.Interactive, error) {
	var (
		intrs        []dao.Interactive
		collectedMap = map[int64]struct{}{}
		eg           errgroup.Group
	)
	eg.Go(func() error {
		var eerr error
		intrs, eerr = i.interactiveDao.GetByIds(ctx, biz, ids)
		return eerr
	})

	eg.Go(func() error {
		collecteds, eerr := i.interactiveDao.GetUserCollects(ctx, uid, biz, ids)
		if eerr != nil {
			return eerr
		}
		for _, collected := range collecteds {
			collectedMap[collected.BizId] = struct{}{}
		}
		return nil
	})

	err := eg.Wait()
	if err != nil {
		return nil, err
	}
	list := make([]domain.Interactive, 0, len(intrs))
	for _, intr := range intrs {
		domainIntr := i.toDomain(intr)
		_, collected := collectedMap[domainIntr.BizId]
		domainIntr.Collected = collected
		list = append(list, domainIntr)
	}
	return list, nil
}

func (i *interactiveRepository) CollectionIds(ctx context.Context, uid int64, biz string, offset, limit int) ([]int64, error) {
	records, err := i.interactiveDao.CollectionList(ctx, uid, biz, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(records, func(idx int, src dao.UserCollectionBiz) int64 {
		return src.BizId
	}), nil
}

func (i *interactiveRepository) ViewCnts(ctx context.Context, biz string) (map[int64]int64, error) {
	intrs, err := i.interactiveDao.ViewCnts(ctx, biz)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(intrs))
	for _, intr := range intrs {
		res[intr.BizId] = int64(intr.ViewCnt)
	}
	return res, nil
}

func (i *interactiveRepository) toDomain(ie dao.Interactive) domain.Interactive {
	return domain.Interactive{
		Biz:        ie.Biz,
		BizId:      ie.BizId,
		CollectCnt: ie.CollectCnt,
		ViewCnt:    ie.ViewCnt,
	}
}
