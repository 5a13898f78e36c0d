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
	// ErrStatusConflict 条件更新没有命中任何行，状态已经被别人改过
	ErrStatusConflict = errors.New("状态已变更")
	// ErrDuplicate 唯一索引冲突，open_key 或 active_key 已经被占用
	ErrDuplicate = errors.New("唯一索引冲突")
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(
		&Candidate{},
		&Application{},
		&ApplicationHistory{},
		&InterviewRound{},
		&Offer{},
	)
}

func isDuplicate(err error) bool {
	const uniqueIndexErr uint16 = 1062
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == uniqueIndexErr
}
