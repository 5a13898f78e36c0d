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

package bizerr

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		want    Kind
		wantMsg string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name:    "校验错误",
			err:     Validation("分数必须在 %d 到 %d 之间", 0, 5),
			want:    KindValidation,
			wantMsg: "分数必须在 0 到 5 之间",
		},
		{
			name:    "被 fmt 包装的状态冲突",
			err:     fmt.Errorf("创建 offer 失败: %w", StateConflict("申请尚未完成")),
			want:    KindStateConflict,
			wantMsg: "申请尚未完成",
		},
		{
			name:    "被 pkg/errors 包装的不存在",
			err:     errors.Wrap(NotFound("offer 不存在"), "查询"),
			want:    KindNotFound,
			wantMsg: "offer 不存在",
		},
		{
			name:    "普通错误",
			err:     errors.New("db down"),
			want:    KindUnknown,
			wantMsg: "系统错误",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
			if tc.err != nil {
				assert.Equal(t, tc.wantMsg, MessageOf(tc.err))
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("wrap: %w", StateConflict("已经是终态"))
	assert.True(t, errors.Is(err, ErrStateConflict))
	assert.False(t, errors.Is(err, ErrValidation))

	cause := errors.New("smtp timeout")
	dep := Dependency(cause, "通知发送失败")
	assert.True(t, errors.Is(dep, ErrDependency))
	assert.True(t, errors.Is(dep, cause))
}

func TestOutcome_Warn(t *testing.T) {
	o := NewOutcome(12)
	o.Warn(nil)
	assert.False(t, o.HasWarnings())
	o.Warn(Dependency(errors.New("x"), "通知失败"))
	assert.True(t, o.HasWarnings())
	assert.Equal(t, 12, o.Val)
}
