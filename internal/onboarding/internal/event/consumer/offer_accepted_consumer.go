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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/hrportal/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/event"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// OfferAcceptedConsumer 为接受的 offer 创建入职记录。
// 创建是幂等的，重复投递的消息只会返回已有的记录。
type OfferAcceptedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOfferAcceptedConsumer(svc service.Service, q mq.MQ) (*OfferAcceptedConsumer, error) {
	const groupID = "onboarding"
	consumer, err := q.Consumer(event.OfferAcceptedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OfferAcceptedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("onboarding")),
	}, nil
}

func (c *OfferAcceptedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费 offer 接受事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *OfferAcceptedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.OfferAcceptedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	out, err := c.svc.StartFromOffer(ctx, domain.AcceptedOffer{
		OfferID:       evt.OfferID,
		SN:            evt.SN,
		CandidateID:   evt.CandidateID,
		ApplicationID: evt.ApplicationID,
		Name:          evt.Name,
		Email:         evt.Email,
		Phone:         evt.Phone,
		Position:      evt.Position,
		Salary:        evt.Salary,
		StartDate:     evt.StartDate,
		AcceptedAt:    evt.AcceptedAt,
	})
	if err != nil {
		return fmt.Errorf("创建入职记录失败 offer %d: %w", evt.OfferID, err)
	}
	// 通知失败不重新消费，HR 可以手动重发链接
	for _, w := range out.Warnings {
		c.logger.Warn("入职记录已创建，但是通知失败",
			elog.Int64("offerId", evt.OfferID),
			elog.Int64("recordId", out.Val.ID),
			elog.FieldErr(w))
	}
	c.logger.Info("入职记录已就绪",
		elog.Int64("offerId", evt.OfferID),
		elog.Int64("recordId", out.Val.ID),
		elog.String("status", out.Val.Status.String()))
	return nil
}

func (c *OfferAcceptedConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
