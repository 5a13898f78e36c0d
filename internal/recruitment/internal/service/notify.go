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

	"github.com/ecodeclub/hrportal/internal/notification"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "hrportal",
		Subsystem: "recruitment",
		Name:      "application_transitions_total",
		Help:      "已经提交的申请状态流转次数",
	},
	[]string{"from", "to"},
)

func observeTransition(t domain.Transition) {
	if t.IsNoop() {
		return
	}
	transitionCounter.WithLabelValues(t.From.String(), t.To.String()).Inc()
}

// notifier 通知失败只会变成告警，业务数据已经提交
type notifier struct {
	sender notification.Sender
	logger *elog.Component
}

func newNotifier(sender notification.Sender) notifier {
	return notifier{
		sender: sender,
		logger: elog.DefaultLogger.With(elog.FieldComponent("recruitment")),
	}
}

func (n notifier) notify(ctx context.Context, key notification.TemplateKey, c domain.Candidate, fields map[string]string) *bizerr.Error {
	err := n.sender.Send(ctx, notification.Message{
		Template: key,
		Recipient: notification.Recipient{
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		},
		Fields: fields,
	})
	if err == nil {
		return nil
	}
	n.logger.Warn("发送通知失败",
		elog.String("template", string(key)),
		elog.Int64("candidateId", c.ID),
		elog.FieldErr(err))
	return bizerr.Dependency(err, "通知 %s 发送失败", key)
}
