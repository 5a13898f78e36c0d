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
	"github.com/ecodeclub/hrportal/internal/pipeline"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
)

func (h *Handler) Schedule(ctx *ginx.Context, req ScheduleReq, sess session.Session) (ginx.Result, error) {
	out, err := h.interviewSvc.Schedule(ctx.Request.Context(), domain.InterviewRound{
		CandidateID: req.CandidateID,
		Type:        req.Type,
		Date:        req.Date,
		Time:        req.Time,
		Interviewer: req.Interviewer,
		Location:    req.Location,
		Notes:       req.Notes,
	}, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOutcomeVO(out, newRoundVO)}, nil
}

func (h *Handler) RecordFeedback(ctx *ginx.Context, req FeedbackReq, sess session.Session) (ginx.Result, error) {
	c := ctx.Request.Context()
	var out bizerr.Outcome[domain.FeedbackResult]
	_, replayed, err := h.guard.Do(c, "feedback", req.RequestID, func() (int64, error) {
		var err error
		out, err = h.interviewSvc.RecordFeedback(c, domain.Feedback{
			RoundID:  req.RoundID,
			Score:    req.Score,
			Result:   pipeline.Result(req.Result),
			Feedback: req.Feedback,
			Actor:    sess.Claims().Uid,
		})
		return req.RoundID, err
	})
	if err != nil {
		return errorResult(err)
	}
	if replayed {
		// 重放的请求直接返回当前状态
		round, err := h.interviewSvc.Round(c, req.RoundID)
		if err != nil {
			return errorResult(err)
		}
		app, err := h.appSvc.Detail(c, round.ApplicationID)
		if err != nil {
			return errorResult(err)
		}
		out = bizerr.Outcome[domain.FeedbackResult]{
			Val: domain.FeedbackResult{Round: round, Application: app},
		}
	}
	return ginx.Result{Data: newOutcomeVO(out, func(src domain.FeedbackResult) FeedbackVO {
		return FeedbackVO{
			Round:       newRoundVO(src.Round),
			Application: newApplicationVO(src.Application),
		}
	})}, nil
}

func (h *Handler) NextStage(ctx *ginx.Context, req CandidateReq) (ginx.Result, error) {
	rt, ok, err := h.interviewSvc.NextStage(ctx.Request.Context(), req.CandidateID)
	if err != nil {
		return errorResult(err)
	}
	if !ok {
		return ginx.Result{Data: NextStageVO{}}, nil
	}
	return ginx.Result{Data: NextStageVO{Stage: rt.Name, Required: rt.Required}}, nil
}

func (h *Handler) Rounds(ctx *ginx.Context, req CandidateReq) (ginx.Result, error) {
	rs, err := h.interviewSvc.Rounds(ctx.Request.Context(), req.CandidateID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newRoundVOs(rs)}, nil
}

func (h *Handler) CalendarDay(ctx *ginx.Context, req DateReq) (ginx.Result, error) {
	es, err := h.interviewSvc.RoundsOnDate(ctx.Request.Context(), req.Date)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: CalendarDayVO{
		Date:    req.Date,
		Entries: newCalendarEntryVOs(es),
	}}, nil
}

func (h *Handler) CalendarWeek(ctx *ginx.Context, req DateReq) (ginx.Result, error) {
	days, err := h.interviewSvc.RoundsInWeek(ctx.Request.Context(), req.Date)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: slice.Map(days, func(_ int, src domain.CalendarDay) CalendarDayVO {
		return CalendarDayVO{
			Date:    src.Date,
			Entries: newCalendarEntryVOs(src.Entries),
		}
	})}, nil
}
