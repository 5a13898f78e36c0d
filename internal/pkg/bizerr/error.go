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

// Package bizerr 定义招聘流程引擎对外暴露的错误分类。
// 调用方只需要关心 Kind 和 Msg，底层原因通过 Unwrap 保留，方便日志排查。
package bizerr

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind string

const (
	// KindValidation 输入缺失或者越界，在任何写操作之前返回
	KindValidation Kind = "VALIDATION"
	// KindStateConflict 状态流转不合法或者前置条件不满足
	KindStateConflict Kind = "STATE_CONFLICT"
	// KindNotFound ID 不存在
	KindNotFound Kind = "NOT_FOUND"
	// KindDependency 外部协作方（通知、目录服务等）调用失败
	KindDependency Kind = "DEPENDENCY"
	// KindUnknown 非业务错误
	KindUnknown Kind = "UNKNOWN"
)

func (k Kind) String() string {
	return string(k)
}

type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is 只比较 Kind，这样 errors.Is(err, bizerr.ErrStateConflict) 可以用来判断分类
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// 用于 errors.Is 判断分类的哨兵错误，Msg 为空表示匹配该分类下的所有错误
var (
	ErrValidation    = &Error{Kind: KindValidation}
	ErrStateConflict = &Error{Kind: KindStateConflict}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrDependency    = &Error{Kind: KindDependency}
)

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func StateConflict(format string, args ...any) *Error {
	return &Error{Kind: KindStateConflict, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Dependency 包装外部协作方返回的错误
func Dependency(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindDependency, Msg: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf 返回 err 所属的分类，非 *Error 一律视为 KindUnknown
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

// MessageOf 返回给用户看的文案
func MessageOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Msg
	}
	return "系统错误"
}
