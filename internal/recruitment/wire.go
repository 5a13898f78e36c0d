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

//go:build wireinject

package recruitment

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hrportal/internal/notification"
	"github.com/ecodeclub/hrportal/internal/pipeline"
	"github.com/ecodeclub/hrportal/internal/pkg/idempotency"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/event"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/job"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/cache"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/dao"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/service"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	def *pipeline.Definition,
	sender notification.Sender) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		dao.NewGORMInterviewDAO,
		dao.NewGORMOfferDAO,
		repository.NewApplicationRepository,
		repository.NewInterviewRepository,
		repository.NewOfferRepository,
		cache.NewCalendarCache,
		event.NewOfferAcceptedEventProducer,
		service.NewApplicationService,
		service.NewInterviewService,
		service.NewOfferService,
		idempotency.NewGuard,
		web.NewHandler,
		initExpireOffersJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}

type expireOffersConfig struct {
	BatchSize int           `yaml:"batchSize"`
	Timeout   time.Duration `yaml:"timeout"`
}

func initExpireOffersJob(svc service.OfferService) *job.ExpireOffersJob {
	cfg := expireOffersConfig{BatchSize: 100, Timeout: time.Minute}
	// 没有配置时使用默认值
	_ = econf.UnmarshalKey("recruitment.expireOffers", &cfg)
	return job.NewExpireOffersJob(svc, cfg.BatchSize, cfg.Timeout)
}
