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

// Package idempotency 记录客户端请求 ID 和已经创建出来的实体 ID 的对应关系，
// 重放同一个请求 ID 时直接返回第一次的结果。
package idempotency

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

const defaultExpiration = 24 * time.Hour

type Guard struct {
	ec         ecache.Cache
	expiration time.Duration
	logger     *elog.Component
}

func NewGuard(ec ecache.Cache) *Guard {
	return &Guard{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "idempotency:",
		},
		expiration: defaultExpiration,
		logger:     elog.DefaultLogger.With(elog.FieldComponent("idempotency")),
	}
}

// Do 在 requestID 第一次出现时执行 fn 并记录它返回的实体 ID。
// 重复的 requestID 不会再执行 fn，replayed 为 true。requestID 为空时总是执行 fn。
// 并发的重复请求仍然可能都执行 fn，这种情况依赖数据库的唯一索引兜底。
func (g *Guard) Do(ctx context.Context, scope, requestID string, fn func() (int64, error)) (id int64, replayed bool, err error) {
	if requestID == "" {
		id, err = fn()
		return id, false, err
	}
	key := g.key(scope, requestID)
	val := g.ec.Get(ctx, key)
	if val.Err == nil {
		id, err = parseID(val.Val)
		if err == nil {
			return id, true, nil
		}
		g.logger.Error("幂等记录损坏", elog.String("key", key), elog.FieldErr(err))
	} else if !val.KeyNotFound() {
		return 0, false, errors.Wrap(val.Err, "查询幂等记录失败")
	}

	id, err = fn()
	if err != nil {
		return 0, false, err
	}
	if err1 := g.ec.Set(ctx, key, strconv.FormatInt(id, 10), g.expiration); err1 != nil {
		// 命令已经成功，记录失败只影响重放
		g.logger.Error("记录幂等键失败", elog.String("key", key), elog.FieldErr(err1))
	}
	return id, false, nil
}

func (g *Guard) key(scope, requestID string) string {
	return fmt.Sprintf("%s:%s", scope, requestID)
}

func parseID(val any) (int64, error) {
	switch v := val.(type) {
	case string:
		return strconv.ParseInt(v, 10, 64)
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("未知的幂等记录类型 %T", val)
	}
}
