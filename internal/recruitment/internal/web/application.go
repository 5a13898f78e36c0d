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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"golang.org/x/sync/errgroup"
)

func (h *Handler) ListCandidates(ctx *ginx.Context, req Page) (ginx.Result, error) {
	offset, limit := page(req.Offset, req.Limit)
	cs, total, err := h.appSvc.ListCandidates(ctx.Request.Context(), offset, limit)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: CandidateList{
		Total:      total,
		Candidates: slice.Map(cs, func(_ int, src domain.Candidate) CandidateVO { return newCandidateVO(src) }),
	}}, nil
}

func (h *Handler) CandidateDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	c, err := h.appSvc.Candidate(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newCandidateVO(c)}, nil
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq) (ginx.Result, error) {
	c := ctx.Request.Context()
	id, _, err := h.guard.Do(c, "apply", req.RequestID, func() (int64, error) {
		app, err := h.appSvc.Apply(c, domain.Candidate{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			ResumeRef: req.ResumeRef,
		}, domain.Application{
			JobPostingID:  req.JobPostingID,
			Position:      req.Position,
			CoverLetter:   req.CoverLetter,
			FallbackScore: req.FallbackScore,
		})
		return app.ID, err
	})
	if err != nil {
		return errorResult(err)
	}
	app, err := h.appSvc.Detail(c, id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newApplicationVO(app)}, nil
}

func (h *Handler) ListApplications(ctx *ginx.Context, req ListApplicationsReq) (ginx.Result, error) {
	filter, err := req.toDomain()
	if err != nil {
		return errorResult(err)
	}
	apps, total, err := h.appSvc.List(ctx.Request.Context(), filter)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: ApplicationList{
		Total:        total,
		Applications: slice.Map(apps, func(_ int, src domain.Application) ApplicationVO { return newApplicationVO(src) }),
	}}, nil
}

func (req ListApplicationsReq) toDomain() (domain.ApplicationFilter, error) {
	filter := domain.ApplicationFilter{
		CandidateID:  req.CandidateID,
		JobPostingID: req.JobPostingID,
	}
	filter.Offset, filter.Limit = page(req.Offset, req.Limit)
	for _, s := range req.Statuses {
		status := domain.ApplicationStatus(s)
		if !status.IsValid() {
			return filter, bizerr.Validation("未知的申请状态 %q", s)
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	if req.AppliedFrom != "" {
		t, err := time.ParseInLocation(domain.DateLayout, req.AppliedFrom, time.Local)
		if err != nil {
			return filter, bizerr.Validation("开始日期格式必须是 YYYY-MM-DD")
		}
		filter.AppliedFrom = t.UnixMilli()
	}
	if req.AppliedTo != "" {
		t, err := time.ParseInLocation(domain.DateLayout, req.AppliedTo, time.Local)
		if err != nil {
			return filter, bizerr.Validation("结束日期格式必须是 YYYY-MM-DD")
		}
		// 包含结束日期当天
		filter.AppliedTo = t.AddDate(0, 0, 1).UnixMilli() - 1
	}
	return filter, nil
}

func (h *Handler) ApplicationDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	var (
		eg      errgroup.Group
		app     domain.Application
		history []domain.StatusChange
	)
	c := ctx.Request.Context()
	eg.Go(func() error {
		var err error
		app, err = h.appSvc.Detail(c, req.ID)
		return err
	})
	eg.Go(func() error {
		var err error
		history, err = h.appSvc.History(c, req.ID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: ApplicationDetail{
		Application: newApplicationVO(app),
		History: slice.Map(history, func(_ int, src domain.StatusChange) StatusChangeVO {
			return StatusChangeVO{
				From:   src.From.String(),
				To:     src.To.String(),
				Actor:  src.Actor,
				Reason: src.Reason,
				Ctime:  formatMilli(src.Ctime),
			}
		}),
	}}, nil
}

func (h *Handler) Transit(ctx *ginx.Context, req TransitReq, sess session.Session) (ginx.Result, error) {
	c := ctx.Request.Context()
	var out bizerr.Outcome[domain.Application]
	id, replayed, err := h.guard.Do(c, "transition", req.RequestID, func() (int64, error) {
		var err error
		out, err = h.appSvc.Transit(c, domain.Transition{
			ApplicationID: req.ID,
			To:            domain.ApplicationStatus(req.Status),
			Actor:         sess.Claims().Uid,
			Reason:        req.Reason,
		})
		return out.Val.ID, err
	})
	if err != nil {
		return errorResult(err)
	}
	if replayed {
		app, err := h.appSvc.Detail(c, id)
		if err != nil {
			return errorResult(err)
		}
		out = bizerr.NewOutcome(app)
	}
	return ginx.Result{Data: newOutcomeVO(out, newApplicationVO)}, nil
}

func (h *Handler) Pipeline(ctx *ginx.Context, req CandidateReq) (ginx.Result, error) {
	view, err := h.interviewSvc.Pipeline(ctx.Request.Context(), req.CandidateID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: PipelineVO{
		Candidate:   newCandidateVO(view.Candidate),
		Application: newApplicationVO(view.Application),
		Rounds:      newRoundVOs(view.Rounds),
		NextStage:   view.NextStage,
		Score:       view.Score,
		Version:     view.Version,
	}}, nil
}
