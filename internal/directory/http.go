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

package directory

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
)

var _ Writer = (*HTTPWriter)(nil)

const idempotencyHeader = "Idempotency-Key"

type writeResp struct {
	EmployeeID string `json:"employeeId"`
}

// HTTPWriter 通过 HTTP 调用目录服务。
// 目录服务按 Idempotency-Key 去重，所以 5xx 和网络错误可以放心重试。
type HTTPWriter struct {
	client     *resty.Client
	token      string
	maxRetries int32
	interval   time.Duration
	logger     *elog.Component
}

func NewHTTPWriter(client *resty.Client, cfg Config) *HTTPWriter {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &HTTPWriter{
		client:     client,
		token:      cfg.Token,
		maxRetries: maxRetries,
		interval:   100 * time.Millisecond,
		logger:     elog.DefaultLogger.With(elog.FieldComponent("directory")),
	}
}

func (w *HTTPWriter) Write(ctx context.Context, key string, e Employee) (string, error) {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(w.interval, 10*w.interval, w.maxRetries)
	if err != nil {
		return "", err
	}
	for {
		id, retryable, err := w.write(ctx, key, e)
		if err == nil {
			return id, nil
		}
		if !retryable {
			return "", err
		}
		next, ok := strategy.Next()
		if !ok {
			return "", fmt.Errorf("写入员工目录重试次数耗尽: %w", err)
		}
		w.logger.Warn("写入员工目录失败，准备重试",
			elog.String("key", key),
			elog.FieldErr(err))
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(next):
		}
	}
}

func (w *HTTPWriter) write(ctx context.Context, key string, e Employee) (string, bool, error) {
	var res writeResp
	resp, err := w.client.R().
		SetContext(ctx).
		SetAuthToken(w.token).
		SetHeader(idempotencyHeader, key).
		SetBody(e).
		SetResult(&res).
		Post("/employees")
	if err != nil {
		return "", ctx.Err() == nil, err
	}
	switch code := resp.StatusCode(); {
	case code == http.StatusOK || code == http.StatusCreated:
		if res.EmployeeID == "" {
			return "", false, fmt.Errorf("%w: 响应中没有员工编号", ErrRejected)
		}
		return res.EmployeeID, false, nil
	case code >= http.StatusInternalServerError:
		return "", true, fmt.Errorf("目录服务异常: %d", code)
	default:
		return "", false, fmt.Errorf("%w: %d %s", ErrRejected, code, resp.String())
	}
}
