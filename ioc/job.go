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
	"time"

	"github.com/ecodeclub/hrportal/internal/recruitment"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "hrportal",
	Subsystem: "cron",
	Name:      "job_duration_seconds",
	Help:      "定时任务单次运行耗时",
}, []string{"job", "result"})

func initCronJobs(rm *recruitment.Module) []ecron.Ecron {
	return []ecron.Ecron{
		newCron("cron.offerExpiry", rm.ExpireOffersJob),
	}
}

// newCron 超时由任务自己控制，这里只负责日志和耗时统计
func newCron(key string, job ecron.NamedJob) ecron.Ecron {
	return ecron.Load(key).Build(ecron.WithJob(funcJobWrapper(job)))
}

func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	logger := elog.DefaultLogger.With(elog.String("cronjob", name))
	return func(ctx context.Context) error {
		start := time.Now()
		err := job.Run(ctx)
		duration := time.Since(start)
		if err != nil {
			jobDuration.WithLabelValues(name, "fail").Observe(duration.Seconds())
			logger.Error("执行失败", elog.FieldErr(err), elog.FieldCost(duration))
			return err
		}
		jobDuration.WithLabelValues(name, "ok").Observe(duration.Seconds())
		logger.Debug("结束运行", elog.FieldCost(duration))
		return nil
	}
}
