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
	"fmt"
	"time"

	"github.com/ecodeclub/hrportal/internal/onboarding"
	"github.com/ecodeclub/hrportal/internal/pkg/mqx"
	"github.com/ecodeclub/hrportal/internal/recruitment"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// 流程依赖的两个 topic，配置里漏掉时按默认分区数补上
const defaultPartitions = 3

var requiredTopics = []string{
	recruitment.OfferAcceptedEventName,
	onboarding.EmployeeOnboardedEventName,
}

func InitMQ() mq.MQ {
	type Config struct {
		Network   string        `yaml:"network"`
		Addresses []string      `yaml:"addresses"`
		Topics    []topicConfig `yaml:"topics"`
	}
	var cfg Config
	err := econf.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}

	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, t := range withRequiredTopics(cfg.Topics) {
		if e := q.CreateTopic(ctx, t.Name, t.Partitions); e != nil {
			panic(fmt.Sprintf("创建Topic失败: %s : Topic = %s, Partitions = %d", e.Error(), t.Name, t.Partitions))
		}
		elog.DefaultLogger.Info("topic 就绪", elog.String("topic", t.Name), elog.Int("partitions", t.Partitions))
	}
	// 所有事件的发送都带上 trace
	return mqx.NewTraceMq(q)
}

func withRequiredTopics(topics []topicConfig) []topicConfig {
	res := make([]topicConfig, 0, len(topics)+len(requiredTopics))
	seen := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		if t.Name == "" {
			continue
		}
		if t.Partitions <= 0 {
			t.Partitions = defaultPartitions
		}
		seen[t.Name] = struct{}{}
		res = append(res, t)
	}
	for _, name := range requiredTopics {
		if _, ok := seen[name]; !ok {
			res = append(res, topicConfig{Name: name, Partitions: defaultPartitions})
		}
	}
	return res
}
