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

//go:build e2e

package idempotency

import (
	"context"
	"errors"
	"testing"

	testioc "github.com/ecodeclub/hrportal/internal/test/ioc"
	"github.com/lithammer/shortuuid/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Do(t *testing.T) {
	g := NewGuard(testioc.InitCache())
	ctx := context.Background()
	requestID := shortuuid.New()

	calls := 0
	fn := func() (int64, error) {
		calls++
		return 42, nil
	}
	id, replayed, err := g.Do(ctx, "offer:create", requestID, fn)
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, int64(42), id)

	id, replayed, err = g.Do(ctx, "offer:create", requestID, fn)
	require.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, 1, calls)

	// 不同的 scope 互不影响
	_, replayed, err = g.Do(ctx, "application:apply", requestID, fn)
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, 2, calls)
}

func TestGuard_Do_Failed(t *testing.T) {
	g := NewGuard(testioc.InitCache())
	ctx := context.Background()
	requestID := shortuuid.New()
	_, _, err := g.Do(ctx, "offer:create", requestID, func() (int64, error) {
		return 0, errors.New("db down")
	})
	require.Error(t, err)

	// 失败的请求不会被记录，重试会再次执行
	id, replayed, err := g.Do(ctx, "offer:create", requestID, func() (int64, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, int64(7), id)
}

func TestGuard_Do_EmptyRequestID(t *testing.T) {
	g := NewGuard(testioc.InitCache())
	calls := 0
	for i := 0; i < 2; i++ {
		_, replayed, err := g.Do(context.Background(), "offer:create", "", func() (int64, error) {
			calls++
			return 1, nil
		})
		require.NoError(t, err)
		assert.False(t, replayed)
	}
	assert.Equal(t, 2, calls)
}
