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
	"github.com/ecodeclub/hrportal/internal/pipeline"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitPipeline 没有配置 pipeline 时使用默认的七轮流程
func InitPipeline() *pipeline.Definition {
	type Config struct {
		Version string               `yaml:"version"`
		Rounds  []pipeline.RoundType `yaml:"rounds"`
	}
	var cfg Config
	err := econf.UnmarshalKey("pipeline", &cfg)
	if err != nil || len(cfg.Rounds) == 0 {
		return pipeline.Default()
	}
	def, err := pipeline.New(cfg.Version, cfg.Rounds)
	if err != nil {
		panic(err)
	}
	elog.DefaultLogger.Info("加载面试流程",
		elog.String("version", def.Version),
		elog.Int("rounds", len(def.Rounds)))
	return def
}
