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

package repository

import (
	"errors"

	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/dao"
	"gorm.io/gorm"
)

// toBizErr 把 DAO 层的错误翻译为业务错误，其余错误原样返回
func toBizErr(err error, entity string, duplicate string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return bizerr.NotFound("%s不存在", entity)
	case errors.Is(err, dao.ErrStatusConflict):
		return bizerr.StateConflict("%s状态已变更，请刷新后重试", entity)
	case errors.Is(err, dao.ErrDuplicate):
		return bizerr.StateConflict("%s", duplicate)
	default:
		return err
	}
}

func nullFloat(f *float64) (v float64, valid bool) {
	if f == nil {
		return 0, false
	}
	return *f, true
}

func floatPtr(v float64, valid bool) *float64 {
	if !valid {
		return nil
	}
	return &v
}
