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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hrportal/internal/notification"
	"github.com/ecodeclub/hrportal/internal/pipeline"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./interview.go -package=recruitmentmocks -destination=../../mocks/interview.mock.go -typed InterviewService
type InterviewService interface {
	// NextStage 候选人下一个需要通过的必须轮次，全部通过时返回 false
	NextStage(ctx context.Context, candidateID int64) (pipeline.RoundType, bool, error)
	// Schedule 同类型还没有反馈的轮次会被原地改期，不会新建
	Schedule(ctx context.Context, r domain.InterviewRound, actor int64) (bizerr.Outcome[domain.InterviewRound], error)
	// RecordFeedback 记录反馈并执行门控，轮次和申请状态在同一个事务里提交
	RecordFeedback(ctx context.Context, fb domain.Feedback) (bizerr.Outcome[domain.FeedbackResult], error)
	Round(ctx context.Context, id int64) (domain.InterviewRound, error)
	Rounds(ctx context.Context, candidateID int64) ([]domain.InterviewRound, error)
	RoundsOnDate(ctx context.Context, date string) ([]domain.CalendarEntry, error)
	// RoundsInWeek date 可以是一周中的任意一天，返回周一到周日
	RoundsInWeek(ctx context.Context, date string) ([]domain.CalendarDay, error)
	Pipeline(ctx context.Context, candidateID int64) (domain.PipelineView, error)
}

type interviewService struct {
	def       *pipeline.Definition
	appRepo   repository.ApplicationRepository
	roundRepo repository.InterviewRepository
	cache     cache.CalendarCache
	notifier
}

func NewInterviewService(def *pipeline.Definition,
	appRepo repository.ApplicationRepository,
	roundRepo repository.InterviewRepository,
	c cache.CalendarCache,
	sender notification.Sender) InterviewService {
	return &interviewService{
		def:       def,
		appRepo:   appRepo,
		roundRepo: roundRepo,
		cache:     c,
		notifier:  newNotifier(sender),
	}
}

func (s *interviewService) NextStage(ctx context.Context, candidateID int64) (pipeline.RoundType, bool, error) {
	app, err := s.appRepo.FindLatestApplication(ctx, candidateID)
	if err != nil {
		return pipeline.RoundType{}, false, err
	}
	rounds, err := s.roundRepo.FindRoundsByApplication(ctx, app.ID)
	if err != nil {
		return pipeline.RoundType{}, false, err
	}
	next, ok := s.def.NextStage(pipeline.Summarize(s.outcomes(rounds)))
	return next, ok, nil
}

func (s *interviewService) Schedule(ctx context.Context, r domain.InterviewRound, actor int64) (bizerr.Outcome[domain.InterviewRound], error) {
	var out bizerr.Outcome[domain.InterviewRound]
	if err := s.validateSchedule(&r); err != nil {
		return out, err
	}
	app, err := s.appRepo.FindLatestApplication(ctx, r.CandidateID)
	if err != nil {
		return out, err
	}
	if app.Status != domain.StatusShortlisted {
		return out, bizerr.StateConflict("申请当前状态为 %s，不能安排面试", app.Status)
	}
	rounds, err := s.roundRepo.FindRoundsByApplication(ctx, app.ID)
	if err != nil {
		return out, err
	}
	if err = s.def.CheckSchedulable(r.Type, pipeline.Summarize(s.outcomes(rounds))); err != nil {
		return out, bizerr.StateConflict("%s", err.Error())
	}

	r.ApplicationID = app.ID
	r.Result = pipeline.ResultPending
	r.Score = nil
	r.Feedback = ""
	r.Completed = false
	res, err := s.roundRepo.Schedule(ctx, r, domain.Transition{
		ApplicationID: app.ID,
		From:          domain.StatusShortlisted,
		To:            domain.StatusShortlisted,
		Actor:         actor,
	})
	if err != nil {
		return out, err
	}
	out.Val = res

	s.invalidate(ctx, res.Date)
	for _, old := range rounds {
		// 改期到别的日期时旧日期的缓存也要删除
		if !old.Completed && old.Type == res.Type && old.Date != res.Date {
			s.invalidate(ctx, old.Date)
		}
	}

	c, err := s.appRepo.FindCandidate(ctx, r.CandidateID)
	if err != nil {
		out.Warn(bizerr.Dependency(err, "查询候选人失败，未发送通知"))
		return out, nil
	}
	out.Warn(s.notify(ctx, notification.TemplateInterviewScheduled, c, map[string]string{
		"Position":    app.Position,
		"Round":       res.Type,
		"Date":        res.Date,
		"Time":        res.Time,
		"Interviewer": res.Interviewer,
		"Location":    res.Location,
	}))
	return out, nil
}

func (s *interviewService) validateSchedule(r *domain.InterviewRound) error {
	r.Type = strings.TrimSpace(r.Type)
	r.Interviewer = strings.TrimSpace(r.Interviewer)
	if r.CandidateID <= 0 {
		return bizerr.Validation("候选人ID不能为空")
	}
	if _, ok := s.def.Lookup(r.Type); !ok {
		return bizerr.Validation("流程 %s 中不存在轮次 %q", s.def.Version, r.Type)
	}
	if _, err := time.Parse(domain.DateLayout, r.Date); err != nil {
		return bizerr.Validation("面试日期格式必须是 YYYY-MM-DD")
	}
	if _, err := time.Parse(domain.TimeLayout, r.Time); err != nil {
		return bizerr.Validation("面试时间格式必须是 HH:MM")
	}
	if r.Interviewer == "" {
		return bizerr.Validation("面试官不能为空")
	}
	return nil
}

func (s *interviewService) RecordFeedback(ctx context.Context, fb domain.Feedback) (bizerr.Outcome[domain.FeedbackResult], error) {
	var out bizerr.Outcome[domain.FeedbackResult]
	if !fb.Result.IsFinal() {
		return out, bizerr.Validation("面试结果只能是 Pass 或者 Fail")
	}
	round, err := s.roundRepo.FindRound(ctx, fb.RoundID)
	if err != nil {
		return out, err
	}
	if round.Completed {
		return out, bizerr.StateConflict("轮次 %s 已经记录过反馈", round.Type)
	}
	app, err := s.appRepo.FindApplication(ctx, round.ApplicationID)
	if err != nil {
		return out, err
	}
	if app.Status != domain.StatusShortlisted {
		return out, bizerr.StateConflict("申请当前状态为 %s，不能记录反馈", app.Status)
	}
	rounds, err := s.roundRepo.FindRoundsByApplication(ctx, app.ID)
	if err != nil {
		return out, err
	}

	round.Result = fb.Result
	round.Feedback = strings.TrimSpace(fb.Feedback)
	round.Completed = true
	if fb.Score != nil {
		score := pipeline.ClampScore(*fb.Score)
		round.Score = &score
	}
	outcomes := s.outcomes(slice.FindAll(rounds, func(src domain.InterviewRound) bool {
		return src.ID != round.ID
	}))
	outcomes = append(outcomes, round.Outcome())

	t := domain.Transition{
		ApplicationID: app.ID,
		From:          domain.StatusShortlisted,
		Actor:         fb.Actor,
		Reason:        fmt.Sprintf("%s: %s", round.Type, round.Result),
	}
	results := pipeline.Summarize(outcomes)
	switch s.def.Gate(results) {
	case pipeline.DecisionRejected:
		t.To = domain.StatusRejected
	case pipeline.DecisionCompleted:
		t.To = domain.StatusCompleted
	default:
		t.To = domain.StatusShortlisted
	}
	if err = s.roundRepo.Complete(ctx, round, t); err != nil {
		return out, err
	}
	if t.To == domain.StatusShortlisted && round.Result == pipeline.ResultPass && s.def.IsLast(round.Type) {
		// 最后一轮通过了，但是前面还有必须轮次没有通过，申请不会完成
		next, _ := s.def.NextStage(results)
		out.Warn(bizerr.StateConflict("%s 已通过，但是 %s 还没有通过，申请仍在面试中", round.Type, next.Name))
	}
	observeTransition(t)
	s.invalidate(ctx, round.Date)
	app.Status = t.To
	out.Val = domain.FeedbackResult{Round: round, Application: app}

	var key notification.TemplateKey
	switch t.To {
	case domain.StatusRejected:
		key = notification.TemplateRejected
	case domain.StatusCompleted:
		key = notification.TemplateSelected
	default:
		return out, nil
	}
	c, err := s.appRepo.FindCandidate(ctx, app.CandidateID)
	if err != nil {
		out.Warn(bizerr.Dependency(err, "查询候选人失败，未发送通知"))
		return out, nil
	}
	out.Warn(s.notify(ctx, key, c, map[string]string{
		"Position": app.Position,
		"Round":    round.Type,
		"Reason":   t.Reason,
	}))
	return out, nil
}

func (s *interviewService) Round(ctx context.Context, id int64) (domain.InterviewRound, error) {
	return s.roundRepo.FindRound(ctx, id)
}

func (s *interviewService) Rounds(ctx context.Context, candidateID int64) ([]domain.InterviewRound, error) {
	app, err := s.appRepo.FindLatestApplication(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return s.roundRepo.FindRoundsByApplication(ctx, app.ID)
}

func (s *interviewService) RoundsOnDate(ctx context.Context, date string) ([]domain.CalendarEntry, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, bizerr.Validation("日期格式必须是 YYYY-MM-DD")
	}
	res, err := s.cache.GetDay(ctx, date)
	if err == nil {
		return res, nil
	}
	s.logCacheErr(err, date)
	rounds, err := s.roundRepo.FindRoundsBetween(ctx, date, date)
	if err != nil {
		return nil, err
	}
	res, err = s.entries(ctx, rounds)
	if err != nil {
		return nil, err
	}
	if err = s.cache.SetDay(ctx, date, res); err != nil {
		s.logger.Warn("回写日历缓存失败", elog.String("date", date), elog.FieldErr(err))
	}
	return res, nil
}

func (s *interviewService) RoundsInWeek(ctx context.Context, date string) ([]domain.CalendarDay, error) {
	dates, err := domain.WeekDates(date)
	if err != nil {
		return nil, bizerr.Validation("日期格式必须是 YYYY-MM-DD")
	}
	monday := dates[0]
	res, err := s.cache.GetWeek(ctx, monday)
	if err == nil {
		return res, nil
	}
	s.logCacheErr(err, monday)
	rounds, err := s.roundRepo.FindRoundsBetween(ctx, monday, dates[len(dates)-1])
	if err != nil {
		return nil, err
	}
	entries, err := s.entries(ctx, rounds)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string][]domain.CalendarEntry, len(dates))
	for _, e := range entries {
		byDate[e.Round.Date] = append(byDate[e.Round.Date], e)
	}
	res = slice.Map(dates, func(_ int, d string) domain.CalendarDay {
		return domain.CalendarDay{Date: d, Entries: byDate[d]}
	})
	if err = s.cache.SetWeek(ctx, monday, res); err != nil {
		s.logger.Warn("回写日历缓存失败", elog.String("date", monday), elog.FieldErr(err))
	}
	return res, nil
}

// entries 补充候选人姓名和岗位，轮次的顺序保持不变
func (s *interviewService) entries(ctx context.Context, rounds []domain.InterviewRound) ([]domain.CalendarEntry, error) {
	if len(rounds) == 0 {
		return []domain.CalendarEntry{}, nil
	}
	cids := slice.Map(rounds, func(_ int, src domain.InterviewRound) int64 {
		return src.CandidateID
	})
	aids := slice.Map(rounds, func(_ int, src domain.InterviewRound) int64 {
		return src.ApplicationID
	})
	cs, err := s.appRepo.FindCandidatesByIDs(ctx, cids)
	if err != nil {
		return nil, err
	}
	apps, err := s.appRepo.FindApplicationsByIDs(ctx, aids)
	if err != nil {
		return nil, err
	}
	return slice.Map(rounds, func(_ int, src domain.InterviewRound) domain.CalendarEntry {
		return domain.CalendarEntry{
			Round:         src,
			CandidateName: cs[src.CandidateID].Name,
			Position:      apps[src.ApplicationID].Position,
		}
	}), nil
}

func (s *interviewService) Pipeline(ctx context.Context, candidateID int64) (domain.PipelineView, error) {
	c, err := s.appRepo.FindCandidate(ctx, candidateID)
	if err != nil {
		return domain.PipelineView{}, err
	}
	app, err := s.appRepo.FindLatestApplication(ctx, candidateID)
	if err != nil {
		return domain.PipelineView{}, err
	}
	rounds, err := s.roundRepo.FindRoundsByApplication(ctx, app.ID)
	if err != nil {
		return domain.PipelineView{}, err
	}
	view := domain.PipelineView{
		Candidate:   c,
		Application: app,
		Rounds:      rounds,
		Version:     s.def.Version,
	}
	if next, ok := s.def.NextStage(pipeline.Summarize(s.outcomes(rounds))); ok {
		view.NextStage = next.Name
	}
	scored := slice.FindAll(rounds, func(src domain.InterviewRound) bool {
		return src.Completed && src.Score != nil
	})
	scores := slice.Map(scored, func(_ int, src domain.InterviewRound) float64 {
		return *src.Score
	})
	view.Score = pipeline.Aggregate(scores, app.FallbackScore)
	return view, nil
}

func (s *interviewService) outcomes(rounds []domain.InterviewRound) []pipeline.RoundOutcome {
	return slice.Map(rounds, func(_ int, src domain.InterviewRound) pipeline.RoundOutcome {
		return src.Outcome()
	})
}

func (s *interviewService) invalidate(ctx context.Context, date string) {
	if err := s.cache.Invalidate(ctx, date); err != nil {
		s.logger.Warn("删除日历缓存失败", elog.String("date", date), elog.FieldErr(err))
	}
}

func (s *interviewService) logCacheErr(err error, date string) {
	if errors.Is(err, cache.ErrCalendarMiss) {
		return
	}
	s.logger.Warn("查询日历缓存失败", elog.String("date", date), elog.FieldErr(err))
}
