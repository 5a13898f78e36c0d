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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hrportal/internal/pkg/idempotency"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	appSvc       service.ApplicationService
	interviewSvc service.InterviewService
	offerSvc     service.OfferService
	guard        *idempotency.Guard
}

func NewHandler(appSvc service.ApplicationService,
	interviewSvc service.InterviewService,
	offerSvc service.OfferService,
	guard *idempotency.Guard) *Handler {
	return &Handler{
		appSvc:       appSvc,
		interviewSvc: interviewSvc,
		offerSvc:     offerSvc,
		guard:        guard,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	c := server.Group("/candidates")
	c.POST("/list", ginx.B[Page](h.ListCandidates))
	c.POST("/detail", ginx.B[IDReq](h.CandidateDetail))

	a := server.Group("/applications")
	a.POST("/apply", ginx.B[ApplyReq](h.Apply))
	a.POST("/list", ginx.B[ListApplicationsReq](h.ListApplications))
	a.POST("/detail", ginx.B[IDReq](h.ApplicationDetail))
	a.POST("/transition", ginx.BS[TransitReq](h.Transit))
	a.POST("/pipeline", ginx.B[CandidateReq](h.Pipeline))

	i := server.Group("/interviews")
	i.POST("/schedule", ginx.BS[ScheduleReq](h.Schedule))
	i.POST("/feedback", ginx.BS[FeedbackReq](h.RecordFeedback))
	i.POST("/next-stage", ginx.B[CandidateReq](h.NextStage))
	i.POST("/rounds", ginx.B[CandidateReq](h.Rounds))
	i.POST("/calendar/day", ginx.B[DateReq](h.CalendarDay))
	i.POST("/calendar/week", ginx.B[DateReq](h.CalendarWeek))

	o := server.Group("/offers")
	o.POST("/create", ginx.BS[CreateOfferReq](h.CreateOffer))
	o.POST("/update", ginx.B[UpdateOfferReq](h.UpdateOffer))
	o.POST("/respond", ginx.B[RespondReq](h.RespondOffer))
	o.POST("/withdraw", ginx.B[IDReq](h.WithdrawOffer))
	o.POST("/list", ginx.B[ListOffersReq](h.ListOffers))
	o.POST("/detail", ginx.B[IDReq](h.OfferDetail))
}

func page(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	return offset, limit
}
