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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/skillbridge/internal/user/internal/event"
	"github.com/lithammer/shortuuid/v4"

	"github.com/ecodeclub/skillbridge/internal/user/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// Profile 登录态在外面建立，uid 可信，
	// 第一次访问的时候顺手初始化档案
	Profile(ctx context.Context, id int64) (domain.User, error)

	// UpdateNonSensitiveInfo 更新非敏感数据
	// 你可以在这里进一步补充究竟哪些数据会被更新
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	// UpdateInterests 全量覆盖兴趣方向
	UpdateInterests(ctx context.Context, uid int64, interests []string) error
	// UpdateTargetRole 选定目标职业方向的时候回写档案
	UpdateTargetRole(ctx context.Context, uid, rid int64, role string) error
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号
	user.SN = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) UpdateInterests(ctx context.Context, uid int64, interests []string) error {
	return svc.repo.UpdateInterests(ctx, uid, interests)
}

func (svc *userService) UpdateTargetRole(ctx context.Context, uid, rid int64, role string) error {
	return svc.repo.UpdateTargetRole(ctx, uid, rid, role)
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	return svc.create(ctx, id)
}

func (svc *userService) create(ctx context.Context, id int64) (domain.User, error) {
	sn := shortuuid.New()
	u := domain.User{
		Id:       id,
		SN:       sn,
		Nickname: sn[:4],
	}
	_, err := svc.repo.Create(ctx, u)
	switch {
	case errors.Is(err, repository.ErrUserDuplicate):
		// 并发的第一次访问，谁先建好用谁的
		return svc.repo.FindById(ctx, id)
	case err != nil:
		return domain.User{}, err
	}

	// 发送注册成功消息
	evt := event.RegistrationEvent{Uid: id}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return u, nil
}
