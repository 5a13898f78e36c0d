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

package onboarding

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hrportal/internal/directory"
	"github.com/ecodeclub/hrportal/internal/document"
	"github.com/ecodeclub/hrportal/internal/notification"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/event"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/event/consumer"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/repository"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/repository/dao"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/service"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/web"
	"github.com/ecodeclub/hrportal/internal/pkg/idempotency"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	resolver document.Resolver,
	writer directory.Writer,
	sender notification.Sender) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		initFormLink,
		repository.NewRecordRepository,
		event.NewEmployeeOnboardedEventProducer,
		service.NewService,
		consumer.NewOfferAcceptedConsumer,
		idempotency.NewGuard,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.RecordDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMRecordDAO(db)
}

func initFormLink() service.FormLink {
	link := econf.GetString("onboarding.formUrl")
	if link == "" {
		link = "http://localhost:3000/onboarding/form"
	}
	return service.FormLink(link)
}
