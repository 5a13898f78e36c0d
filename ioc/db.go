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


package ioc

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/hrportal/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type dbWaitConfig struct {
	Initial    time.Duration `yaml:"initial"`
	Max        time.Duration `yaml:"max"`
	MaxRetries int32         `yaml:"maxRetries"`
}

// InitDB 等 MySQL 可用之后再构建 egorm 组件，并挂上 tracing 插件。
// 各模块自己的表由 InitTablesOnce 建，这里不做迁移。
func InitDB() *egorm.Component {
	cfg := defaultDBWait
	err := econf.UnmarshalKey("mysql.wait", &cfg)
	if err != nil {
		panic(err)
	}
	err = waitForDB(econf.GetString("mysql.dsn"), cfg)
	if err != nil {
		panic(err)
	}
	db := egorm.Load("mysql").Build()
	err = database.NewGormTracingPlugin().Initialize(db)
	if err != nil {
		panic(err)
	}
	return db
}

var defaultDBWait = dbWaitConfig{Initial: time.Second, Max: 10 * time.Second, MaxRetries: 10}

// WaitForDBSetup 集成测试在建表之前调用
func WaitForDBSetup(dsn string) {
	if err := waitForDB(dsn, defaultDBWait); err != nil {
		panic(err)
	}
}

func waitForDB(dsn string, cfg dbWaitConfig) error {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	strategy, err := retry.NewExponentialBackoffRetryStrategy(cfg.Initial, cfg.Max, cfg.MaxRetries)
	if err != nil {
		return err
	}
	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		next, ok := strategy.Next()
		if !ok {
			return err
		}
		elog.DefaultLogger.Warn("MySQL 尚未就绪，稍后重试", elog.FieldErr(err), elog.Any("next", next))
		time.Sleep(next)
	}
}
