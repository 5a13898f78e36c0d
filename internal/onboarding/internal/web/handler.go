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
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/service"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/pkg/idempotency"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	guard *idempotency.Guard
}

func NewHandler(svc service.Service, guard *idempotency.Guard) *Handler {
	return &Handler{svc: svc, guard: guard}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/onboarding")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/submit-form", ginx.B[SubmitFormReq](h.SubmitForm))
	g.POST("/resubmit", ginx.B[ResubmitReq](h.Resubmit))
	g.POST("/send-form-link", ginx.B[IDReq](h.SendFormLink))
	g.POST("/approve", ginx.B[CommandReq](h.Approve))
	g.POST("/raise-issue", ginx.B[RaiseIssueReq](h.RaiseIssue))
	g.POST("/final-onboard", ginx.B[FinalOnboardReq](h.FinalOnboard))
	g.POST("/complete", ginx.B[IDReq](h.Complete))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	filter, err := req.toDomain()
	if err != nil {
		return errorResult(err)
	}
	rs, total, err := h.svc.List(ctx.Request.Context(), filter)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: RecordList{
		Total:   total,
		Records: slice.Map(rs, func(_ int, src domain.Record) RecordVO { return newRecordVO(src) }),
	}}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.record(h.svc.Detail(ctx.Request.Context(), req.ID))
}

func (h *Handler) SubmitForm(ctx *ginx.Context, req SubmitFormReq) (ginx.Result, error) {
	return h.record(h.svc.SubmitForm(ctx.Request.Context(), req.ID, req.Form.toDomain()))
}

func (h *Handler) Resubmit(ctx *ginx.Context, req ResubmitReq) (ginx.Result, error) {
	c := ctx.Request.Context()
	return h.once(c, "resubmit", req.RequestID, func() (domain.Record, error) {
		return h.svc.Resubmit(c, req.OfferID, req.Form.toDomain())
	})
}

func (h *Handler) SendFormLink(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	return h.record(h.svc.SendFormLink(ctx.Request.Context(), req.ID))
}

func (h *Handler) Approve(ctx *ginx.Context, req CommandReq) (ginx.Result, error) {
	c := ctx.Request.Context()
	return h.once(c, "approve", req.RequestID, func() (domain.Record, error) {
		return h.svc.Approve(c, req.ID)
	})
}

func (h *Handler) RaiseIssue(ctx *ginx.Context, req RaiseIssueReq) (ginx.Result, error) {
	c := ctx.Request.Context()
	var out bizerr.Outcome[domain.Record]
	id, replayed, err := h.guard.Do(c, "raise-issue", req.RequestID, func() (int64, error) {
		var err error
		out, err = h.svc.RaiseIssue(c, req.ID, req.Details)
		return out.Val.ID, err
	})
	if err != nil {
		return errorResult(err)
	}
	if replayed {
		// 重放不会再次通知候选人，也就没有告警
		r, err := h.svc.Detail(c, id)
		if err != nil {
			return errorResult(err)
		}
		out = bizerr.NewOutcome(r)
	}
	return ginx.Result{Data: newOutcomeVO(out)}, nil
}

func (h *Handler) FinalOnboard(ctx *ginx.Context, req FinalOnboardReq) (ginx.Result, error) {
	c := ctx.Request.Context()
	return h.once(c, "final-onboard", req.RequestID, func() (domain.Record, error) {
		return h.svc.FinalOnboard(c, req.ID, req.Details.toDomain())
	})
}

// once 同一个 requestId 只执行一次 fn，重放时返回记录的最新状态
func (h *Handler) once(ctx context.Context, scope, requestID string,
	fn func() (domain.Record, error)) (ginx.Result, error) {
	var r domain.Record
	id, replayed, err := h.guard.Do(ctx, scope, requestID, func() (int64, error) {
		var err error
		r, err = fn()
		return r.ID, err
	})
	if err != nil {
		return errorResult(err)
	}
	if replayed {
		return h.record(h.svc.Detail(ctx, id))
	}
	return ginx.Result{Data: newRecordVO(r)}, nil
}

func (h *Handler) Complete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	out, err := h.svc.CompleteOnboard(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOutcomeVO(out)}, nil
}

func (h *Handler) record(r domain.Record, err error) (ginx.Result, error) {
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newRecordVO(r)}, nil
}
