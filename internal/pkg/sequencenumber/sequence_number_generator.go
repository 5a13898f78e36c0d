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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const randomLength = 8

type ClockFunc func() time.Time

type ShortUUIDGenerateFunc func() string

// Generator 生成人可读的业务编号：前缀 + 日期 + ID 后四位 + 随机串
type Generator struct {
	prefix           string
	clock            ClockFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(prefix string, clock ClockFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		prefix:           prefix,
		clock:            clock,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator(prefix string) *Generator {
	return NewGeneratorWith(prefix, time.Now, shortuuid.New)
}

func (s *Generator) Generate(id int64) string {
	uuid := s.shortUUIDGenFunc()
	if len(uuid) > randomLength {
		uuid = uuid[:randomLength]
	}
	return fmt.Sprintf("%s%s%04d%s", s.prefix, s.clock().Format("20060102"), id%10000, uuid)
}
