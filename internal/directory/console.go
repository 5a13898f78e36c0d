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
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/gotomicro/ego/core/elog"
)

var _ Writer = (*ConsoleWriter)(nil)

// ConsoleWriter 本地开发使用，在内存里分配员工编号
type ConsoleWriter struct {
	mu     sync.Mutex
	ids    map[string]string
	node   *snowflake.Node
	logger *elog.Component
}

func NewConsoleWriter() *ConsoleWriter {
	// 本地只有一个节点
	node, _ := snowflake.NewNode(1)
	return &ConsoleWriter{
		ids:    make(map[string]string),
		node:   node,
		logger: elog.DefaultLogger.With(elog.FieldComponent("directory.console")),
	}
}

func (c *ConsoleWriter) Write(ctx context.Context, key string, e Employee) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.ids[key]; ok {
		return id, nil
	}
	id := "EMP-" + c.node.Generate().String()
	c.ids[key] = id
	c.logger.Info("模拟写入员工目录",
		elog.String("key", key),
		elog.String("employeeId", id),
		elog.String("email", e.Email))
	return id, nil
}
