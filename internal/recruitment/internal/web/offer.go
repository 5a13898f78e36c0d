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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
)

func (h *Handler) CreateOffer(ctx *ginx.Context, req CreateOfferReq, sess session.Session) (ginx.Result, error) {
	c := ctx.Request.Context()
	var out bizerr.Outcome[domain.Offer]
	id, replayed, err := h.guard.Do(c, "offer", req.RequestID, func() (int64, error) {
		var err error
		out, err = h.offerSvc.Create(c, req.CandidateID, req.Terms.toDomain(), sess.Claims().Uid)
		return out.Val.ID, err
	})
	if err != nil {
		return errorResult(err)
	}
	if replayed {
		o, err := h.offerSvc.Detail(c, id)
		if err != nil {
			return errorResult(err)
		}
		out = bizerr.Outcome[domain.Offer]{Val: o}
	}
	return ginx.Result{Data: newOutcomeVO(out, newOfferVO)}, nil
}

func (h *Handler) UpdateOffer(ctx *ginx.Context, req UpdateOfferReq) (ginx.Result, error) {
	o, err := h.offerSvc.Update(ctx.Request.Context(), req.ID, req.Terms.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOfferVO(o)}, nil
}

func (h *Handler) RespondOffer(ctx *ginx.Context, req RespondReq) (ginx.Result, error) {
	out, err := h.offerSvc.Respond(ctx.Request.Context(), req.ID, domain.OfferResponse(req.Response))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOutcomeVO(out, newOfferVO)}, nil
}

func (h *Handler) WithdrawOffer(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.offerSvc.Withdraw(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOfferVO(o)}, nil
}

func (h *Handler) ListOffers(ctx *ginx.Context, req ListOffersReq) (ginx.Result, error) {
	filter := domain.OfferFilter{CandidateID: req.CandidateID}
	filter.Offset, filter.Limit = page(req.Offset, req.Limit)
	for _, s := range req.Statuses {
		status := domain.OfferStatus(s)
		if !status.IsValid() {
			return errorResult(bizerr.Validation("未知的 offer 状态 %q", s))
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	os, total, err := h.offerSvc.List(ctx.Request.Context(), filter)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: OfferList{
		Total:  total,
		Offers: slice.Map(os, func(_ int, src domain.Offer) OfferVO { return newOfferVO(src) }),
	}}, nil
}

func (h *Handler) OfferDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.offerSvc.Detail(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOfferVO(o)}, nil
}
