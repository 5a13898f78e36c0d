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

// Outcome 表示一次已经提交成功的命令的结果。
// Warnings 里只会出现非关键协作方（比如通知）的失败，它们不影响 Val 的有效性。
type Outcome[T any] struct {
	Val      T
	Warnings []*Error
}

func NewOutcome[T any](val T) Outcome[T] {
	return Outcome[T]{Val: val}
}

// Warn 记录一个依赖失败，nil 会被忽略
func (o *Outcome[T]) Warn(err *Error) {
	if err == nil {
		return
	}
	o.Warnings = append(o.Warnings, err)
}

func (o Outcome[T]) HasWarnings() bool {
	return len(o.Warnings) > 0
}
