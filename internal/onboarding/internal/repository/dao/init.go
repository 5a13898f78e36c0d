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

package dao

import (
	"errors"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var (
	// ErrStatusConflict 条件更新没有命中任何行
	ErrStatusConflict = errors.New("入职记录状态已变更")
	// ErrDuplicate 同一个 offer 已经有一条有效的入职记录
	ErrDuplicate = errors.New("入职记录已存在")
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Record{})
}

func isDuplicate(err error) bool {
	const uniqueIndexErr uint16 = 1062
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == uniqueIndexErr
}
