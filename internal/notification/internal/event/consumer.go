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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/notification/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

type NotificationEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewNotificationEventConsumer(svc service.Service, q mq.MQ) (*NotificationEventConsumer, error) {
	groupID := "notification_group"
	consumer, err := q.Consumer(NotificationTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &NotificationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *NotificationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费站内信事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *NotificationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt NotificationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	_, err = c.svc.Create(ctx, domain.Notification{
		Uid:     evt.Uid,
		Biz:     evt.Biz,
		BizId:   evt.BizID,
		Title:   evt.Title,
		Content: evt.Content,
	})
	if err != nil {
		c.logger.Error("站内信落库失败", elog.Any("notification_event", evt))
	}
	return err
}

func (c *NotificationEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
