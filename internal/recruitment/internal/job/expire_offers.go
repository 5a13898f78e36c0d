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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// ExpireOffersJob 撤回已经过了有效期仍未回复的 offer
type ExpireOffersJob struct {
	svc       service.OfferService
	batchSize int
	timeout   time.Duration
	now       func() time.Time
	logger    *elog.Component
}

func NewExpireOffersJob(svc service.OfferService, batchSize int, timeout time.Duration) *ExpireOffersJob {
	return &ExpireOffersJob{
		svc:       svc,
		batchSize: batchSize,
		timeout:   timeout,
		now:       time.Now,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("ExpireOffersJob")),
	}
}

func (j *ExpireOffersJob) Name() string {
	return "ExpireOffersJob"
}

func (j *ExpireOffersJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	// 有效期当天仍然可以回复
	today := j.now().Format(domain.DateLayout)
	cnt, err := j.svc.ExpirePending(ctx, today, j.batchSize)
	if err != nil {
		return fmt.Errorf("撤回过期 offer 失败，已撤回 %d 个: %w", cnt, err)
	}
	if cnt > 0 {
		j.logger.Info("撤回过期 offer", elog.Int("count", cnt), elog.String("today", today))
	}
	return nil
}
