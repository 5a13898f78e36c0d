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

package recruitment

import (
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/event"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/job"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/service"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/web"
)

type Module struct {
	Hdl             *Hdl
	AppSvc          ApplicationService
	InterviewSvc    InterviewService
	OfferSvc        OfferService
	ExpireOffersJob *ExpireOffersJob
}

type (
	Hdl                = web.Handler
	ApplicationService = service.ApplicationService
	InterviewService   = service.InterviewService
	OfferService       = service.OfferService
	ExpireOffersJob    = job.ExpireOffersJob

	Candidate         = domain.Candidate
	Application       = domain.Application
	ApplicationStatus = domain.ApplicationStatus
	Offer             = domain.Offer
	OfferStatus       = domain.OfferStatus

	OfferAcceptedEvent = event.OfferAcceptedEvent
)

const OfferAcceptedEventName = event.OfferAcceptedEventName
