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

package onboarding

import (
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/event"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/event/consumer"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/service"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/web"
)

type Module struct {
	Hdl                   *Hdl
	Svc                   Service
	OfferAcceptedConsumer *OfferAcceptedConsumer
}

type (
	Hdl                   = web.Handler
	Service               = service.Service
	OfferAcceptedConsumer = consumer.OfferAcceptedConsumer

	Record        = domain.Record
	Status        = domain.Status
	Form          = domain.Form
	FinalDetails  = domain.FinalDetails
	AcceptedOffer = domain.AcceptedOffer

	EmployeeOnboardedEvent = event.EmployeeOnboardedEvent
)

const EmployeeOnboardedEventName = event.EmployeeOnboardedEventName
