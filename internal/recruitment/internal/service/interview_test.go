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
	"testing"

	"github.com/ecodeclub/hrportal/internal/notification"
	notificationmocks "github.com/ecodeclub/hrportal/internal/notification/mocks"
	"github.com/ecodeclub/hrportal/internal/pipeline"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/cache"
	cachemocks "github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/cache/mocks"
	repomocks "github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type interviewMocks struct {
	appRepo   *repomocks.MockApplicationRepository
	roundRepo *repomocks.MockInterviewRepository
	cache     *cachemocks.MockCalendarCache
	sender    *notificationmocks.MockSender
}

func newInterviewMocks(ctrl *gomock.Controller) interviewMocks {
	return interviewMocks{
		appRepo:   repomocks.NewMockApplicationRepository(ctrl),
		roundRepo: repomocks.NewMockInterviewRepository(ctrl),
		cache:     cachemocks.NewMockCalendarCache(ctrl),
		sender:    notificationmocks.NewMockSender(ctrl),
	}
}

func (m interviewMocks) svc() InterviewService {
	return NewInterviewService(pipeline.Default(), m.appRepo, m.roundRepo, m.cache, m.sender)
}

func passed(appID int64, types ...string) []domain.InterviewRound {
	res := make([]domain.InterviewRound, 0, len(types))
	for i, typ := range types {
		score := 4.0
		res = append(res, domain.InterviewRound{
			ID:            int64(100 + i),
			CandidateID:   1,
			ApplicationID: appID,
			Type:          typ,
			Date:          "2025-11-03",
			Result:        pipeline.ResultPass,
			Score:         &score,
			Completed:     true,
		})
	}
	return res
}

func TestInterviewService_Schedule(t *testing.T) {
	alice := domain.Candidate{ID: 1, Name: "Alice", Email: "alice@example.com"}
	shortlisted := domain.Application{ID: 11, CandidateID: 1, Position: "Analyst", Status: domain.StatusShortlisted}
	phone := domain.InterviewRound{
		CandidateID: 1,
		Type:        pipeline.PhoneInterview,
		Date:        "2025-11-03",
		Time:        "10:00",
		Interviewer: "R. Kumar",
	}
	testCases := []struct {
		name     string
		mock     func(m interviewMocks)
		input    domain.InterviewRound
		wantKind bizerr.Kind
	}{
		{
			name:     "未知轮次",
			mock:     func(m interviewMocks) {},
			input:    domain.InterviewRound{CandidateID: 1, Type: "Lunch", Date: "2025-11-03", Time: "10:00", Interviewer: "R. Kumar"},
			wantKind: bizerr.KindValidation,
		},
		{
			name:     "时间格式错误",
			mock:     func(m interviewMocks) {},
			input:    domain.InterviewRound{CandidateID: 1, Type: pipeline.PhoneInterview, Date: "2025-11-03", Time: "10am", Interviewer: "R. Kumar"},
			wantKind: bizerr.KindValidation,
		},
		{
			name: "申请已经被拒绝",
			mock: func(m interviewMocks) {
				app := shortlisted
				app.Status = domain.StatusRejected
				m.appRepo.EXPECT().FindLatestApplication(gomock.Any(), int64(1)).Return(app, nil)
			},
			input:    phone,
			wantKind: bizerr.KindStateConflict,
		},
		{
			name: "还没有进入 Shortlisted",
			mock: func(m interviewMocks) {
				app := shortlisted
				app.Status = domain.StatusReviewing
				m.appRepo.EXPECT().FindLatestApplication(gomock.Any(), int64(1)).Return(app, nil)
			},
			input:    phone,
			wantKind: bizerr.KindStateConflict,
		},
		{
			name: "跳过前序轮次",
			mock: func(m interviewMocks) {
				m.appRepo.EXPECT().FindLatestApplication(gomock.Any(), int64(1)).Return(shortlisted, nil)
				m.roundRepo.EXPECT().FindRoundsByApplication(gomock.Any(), int64(11)).
					Return(passed(11, pipeline.PhoneInterview), nil)
			},
			input: domain.InterviewRound{
				CandidateID: 1, Type: pipeline.TechnicalTest,
				Date: "2025-11-04", Time: "10:00", Interviewer: "R. Kumar",
			},
			wantKind: bizerr.KindStateConflict,
		},
		{
			name: "排期成功",
			mock: func(m interviewMocks) {
				m.appRepo.EXPECT().FindLatestApplication(gomock.Any(), int64(1)).Return(shortlisted, nil)
				m.roundRepo.EXPECT().FindRoundsByApplication(gomock.Any(), int64(11)).Return(nil, nil)
				m.roundRepo.EXPECT().Schedule(gomock.Any(), gomock.Any(), domain.Transition{
					ApplicationID: 11,
					From:          domain.StatusShortlisted,
					To:            domain.StatusShortlisted,
					Actor:         9,
				}).DoAndReturn(func(ctx context.Context, r domain.InterviewRound, guard domain.Transition) (domain.InterviewRound, error) {
					assert.Equal(t, int64(11), r.ApplicationID)
					assert.Equal(t, pipeline.ResultPending, r.Result)
					r.ID = 101
					return r, nil
				})
				m.cache.EXPECT().Invalidate(gomock.Any(), "2025-11-03").Return(nil)
				m.appRepo.EXPECT().FindCandidate(gomock.Any(), int64(1)).Return(alice, nil)
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, msg notification.Message) error {
						assert.Equal(t, notification.TemplateInterviewScheduled, msg.Template)
						assert.Equal(t, "R. Kumar", msg.Fields["Interviewer"])
						return nil
					})
			},
			input: phone,
		},
		{
			name: "改期到其他日期",
			mock: func(m interviewMocks) {
				open := phone
				open.ID = 101
				open.ApplicationID = 11
				open.Result = pipeline.ResultPending
				m.appRepo.EXPECT().FindLatestApplication(gomock.Any(), int64(1)).Return(shortlisted, nil)
				m.roundRepo.EXPECT().FindRoundsByApplication(gomock.Any(), int64(11)).
					Return([]domain.InterviewRound{open}, nil)
				m.roundRepo.EXPECT().Schedule(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.InterviewRound, guard domain.Transition) (domain.InterviewRound, error) {
						r.ID = 101
						return r, nil
					})
				m.cache.EXPECT().Invalidate(gomock.Any(), "2025-11-05").Return(nil)
				m.cache.EXPECT().Invalidate(gomock.Any(), "2025-11-03").Return(nil)
				m.appRepo.EXPECT().FindCandidate(gomock.Any(), int64(1)).Return(alice, nil)
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
			},
			input: domain.InterviewRound{
				CandidateID: 1, Type: pipeline.PhoneInterview,
				Date: "2025-11-05", Time: "15:30", Interviewer: "R. Kumar",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newInterviewMocks(ctrl)
			tc.mock(m)
			out, err := m.svc().Schedule(context.Background(), tc.input, 9)
			if tc.wantKind != "" {
				assert.Equal(t, tc.wantKind, bizerr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(101), out.Val.ID)
			assert.False(t, out.HasWarnings())
		})
	}
}

func TestInterviewService_RecordFeedback(t *testing.T) {
	alice := domain.Candidate{ID: 1, Name: "Alice", Email: "alice@example.com"}
	shortlisted := domain.Application{ID: 11, CandidateID: 1, Position: "Analyst", Status: domain.StatusShortlisted}
	open := func(id int64, typ string) domain.InterviewRound {
		return domain.InterviewRound{
			ID: id, CandidateID: 1, ApplicationID: 11, Type: typ,
			Date: "2025-11-03", Time: "10:00", Result: pipeline.ResultPending,
		}
	}
	defRounds := pipeline.Default().Rounds
	allButLast := make([]string, 0, len(defRounds)-1)
	for _, r := range defRounds[:len(defRounds)-1] {
		allButLast = append(allButLast, r.Name)
	}
	score := func(v float64) *float64 { return &v }

	testCases := []struct {
		name       string
		mock       func(m interviewMocks)
		input      domain.Feedback
		wantKind   bizerr.Kind
		wantStatus domain.ApplicationStatus
		wantScore  float64
		// wantWarning 非空时要求结果带上对应的告警
		wantWarning string
	}{
		{
			name:     "结果不合法",
			mock:     func(m interviewMocks) {},
			input:    domain.Feedback{RoundID: 201, Result: pipeline.ResultPending},
			wantKind: bizerr.KindValidation,
		},
		{
			name: "轮次已经有反馈",
			mock: func(m interviewMocks) {
				r := open(201, pipeline.PhoneInterview)
				r.Completed = true
				m.roundRepo.EXPECT().FindRound(gomock.Any(), int64(201)).Return(r, nil)
			},
			input:    domain.Feedback{RoundID: 201, Result: pipeline.ResultPass},
			wantKind: bizerr.KindStateConflict,
		},
		{
			name: "申请已经结束",
			mock: func(m interviewMocks) {
				app := shortlisted
				app.Status = domain.StatusRejected
				m.roundRepo.EXPECT().FindRound(gomock.Any(), int64(201)).Return(open(201, pipeline.PhoneInterview), nil)
				m.appRepo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(app, nil)
			},
			input:    domain.Feedback{RoundID: 201, Result: pipeline.ResultPass},
			wantKind: bizerr.KindStateConflict,
		},
		{
			name: "不通过直接淘汰",
			mock: func(m interviewMocks) {
				r := open(201, pipeline.AptitudeTest)
				m.roundRepo.EXPECT().FindRound(gomock.Any(), int64(201)).Return(r, nil)
				m.appRepo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(shortlisted, nil)
				m.roundRepo.EXPECT().FindRoundsByApplication(gomock.Any(), int64(11)).
					Return(append(passed(11, pipeline.PhoneInterview), r), nil)
				m.roundRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.InterviewRound, tr domain.Transition) error {
						assert.True(t, r.Completed)
						assert.Equal(t, pipeline.ResultFail, r.Result)
						assert.Equal(t, domain.StatusShortlisted, tr.From)
						assert.Equal(t, domain.StatusRejected, tr.To)
						return nil
					})
				m.cache.EXPECT().Invalidate(gomock.Any(), "2025-11-03").Return(nil)
				m.appRepo.EXPECT().FindCandidate(gomock.Any(), int64(1)).Return(alice, nil)
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, msg notification.Message) error {
						assert.Equal(t, notification.TemplateRejected, msg.Template)
						return nil
					})
			},
			input:      domain.Feedback{RoundID: 201, Score: score(2), Result: pipeline.ResultFail, Feedback: "Weak"},
			wantStatus: domain.StatusRejected,
			wantScore:  2,
		},
		{
			name: "通过但还有后续轮次",
			mock: func(m interviewMocks) {
				r := open(201, pipeline.PhoneInterview)
				m.roundRepo.EXPECT().FindRound(gomock.Any(), int64(201)).Return(r, nil)
				m.appRepo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(shortlisted, nil)
				m.roundRepo.EXPECT().FindRoundsByApplication(gomock.Any(), int64(11)).
					Return([]domain.InterviewRound{r}, nil)
				m.roundRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.InterviewRound, tr domain.Transition) error {
						assert.True(t, tr.IsNoop())
						return nil
					})
				m.cache.EXPECT().Invalidate(gomock.Any(), "2025-11-03").Return(nil)
			},
			input:      domain.Feedback{RoundID: 201, Score: score(7), Result: pipeline.ResultPass, Feedback: "Good"},
			wantStatus: domain.StatusShortlisted,
			wantScore:  5,
		},
		{
			name: "最后一轮通过",
			mock: func(m interviewMocks) {
				r := open(201, pipeline.FinalInterview)
				m.roundRepo.EXPECT().FindRound(gomock.Any(), int64(201)).Return(r, nil)
				m.appRepo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(shortlisted, nil)
				m.roundRepo.EXPECT().FindRoundsByApplication(gomock.Any(), int64(11)).
					Return(append(passed(11, allButLast...), r), nil)
				m.roundRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.InterviewRound, tr domain.Transition) error {
						assert.Equal(t, domain.StatusCompleted, tr.To)
						return nil
					})
				m.cache.EXPECT().Invalidate(gomock.Any(), "2025-11-03").Return(nil)
				m.appRepo.EXPECT().FindCandidate(gomock.Any(), int64(1)).Return(alice, nil)
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, msg notification.Message) error {
						assert.Equal(t, notification.TemplateSelected, msg.Template)
						return nil
					})
			},
			input:      domain.Feedback{RoundID: 201, Score: score(4.5), Result: pipeline.ResultPass},
			wantStatus: domain.StatusCompleted,
			wantScore:  4.5,
		},
		{
			name: "最后一轮通过但前面还有轮次没有通过",
			mock: func(m interviewMocks) {
				r := open(201, pipeline.FinalInterview)
				m.roundRepo.EXPECT().FindRound(gomock.Any(), int64(201)).Return(r, nil)
				m.appRepo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(shortlisted, nil)
				m.roundRepo.EXPECT().FindRoundsByApplication(gomock.Any(), int64(11)).
					Return(append(passed(11, pipeline.PhoneInterview), r), nil)
				m.roundRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.InterviewRound, tr domain.Transition) error {
						assert.True(t, tr.IsNoop())
						return nil
					})
				m.cache.EXPECT().Invalidate(gomock.Any(), "2025-11-03").Return(nil)
			},
			input:       domain.Feedback{RoundID: 201, Score: score(4), Result: pipeline.ResultPass},
			wantStatus:  domain.StatusShortlisted,
			wantScore:   4,
			wantWarning: "Final Interview 已通过，但是 Aptitude Test 还没有通过，申请仍在面试中",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newInterviewMocks(ctrl)
			tc.mock(m)
			out, err := m.svc().RecordFeedback(context.Background(), tc.input)
			if tc.wantKind != "" {
				assert.Equal(t, tc.wantKind, bizerr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, out.Val.Application.Status)
			require.NotNil(t, out.Val.Round.Score)
			assert.Equal(t, tc.wantScore, *out.Val.Round.Score)
			assert.True(t, out.Val.Round.Completed)
			if tc.wantWarning == "" {
				assert.Empty(t, out.Warnings)
				return
			}
			require.Len(t, out.Warnings, 1)
			assert.Equal(t, bizerr.KindStateConflict, out.Warnings[0].Kind)
			assert.Equal(t, tc.wantWarning, out.Warnings[0].Msg)
		})
	}
}

func TestInterviewService_NextStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newInterviewMocks(ctrl)
	m.appRepo.EXPECT().FindLatestApplication(gomock.Any(), int64(1)).
		Return(domain.Application{ID: 11, Status: domain.StatusShortlisted}, nil)
	m.roundRepo.EXPECT().FindRoundsByApplication(gomock.Any(), int64(11)).
		Return(passed(11, pipeline.PhoneInterview), nil)

	next, ok, err := m.svc().NextStage(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, pipeline.AptitudeTest, next.Name)
}

func TestInterviewService_Pipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newInterviewMocks(ctrl)
	rounds := passed(11, pipeline.PhoneInterview, pipeline.AptitudeTest, pipeline.TechnicalTest)
	for i, v := range []float64{4, 5, 3} {
		v := v
		rounds[i].Score = &v
	}
	m.appRepo.EXPECT().FindCandidate(gomock.Any(), int64(1)).Return(domain.Candidate{ID: 1, Name: "Alice"}, nil)
	m.appRepo.EXPECT().FindLatestApplication(gomock.Any(), int64(1)).
		Return(domain.Application{ID: 11, Status: domain.StatusShortlisted}, nil)
	m.roundRepo.EXPECT().FindRoundsByApplication(gomock.Any(), int64(11)).Return(rounds, nil)

	view, err := m.svc().Pipeline(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "4.0", view.Score.String())
	assert.Equal(t, pipeline.TechnicalInterview, view.NextStage)
	assert.Equal(t, pipeline.DefaultVersion, view.Version)
	assert.Len(t, view.Rounds, 3)
}

func TestInterviewService_RoundsOnDate(t *testing.T) {
	t.Run("缓存命中", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newInterviewMocks(ctrl)
		cached := []domain.CalendarEntry{{CandidateName: "Alice"}}
		m.cache.EXPECT().GetDay(gomock.Any(), "2025-11-03").Return(cached, nil)

		res, err := m.svc().RoundsOnDate(context.Background(), "2025-11-03")
		require.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("缓存未命中", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newInterviewMocks(ctrl)
		rounds := passed(11, pipeline.PhoneInterview)
		m.cache.EXPECT().GetDay(gomock.Any(), "2025-11-03").Return(nil, cache.ErrCalendarMiss)
		m.roundRepo.EXPECT().FindRoundsBetween(gomock.Any(), "2025-11-03", "2025-11-03").Return(rounds, nil)
		m.appRepo.EXPECT().FindCandidatesByIDs(gomock.Any(), []int64{1}).
			Return(map[int64]domain.Candidate{1: {ID: 1, Name: "Alice"}}, nil)
		m.appRepo.EXPECT().FindApplicationsByIDs(gomock.Any(), []int64{11}).
			Return(map[int64]domain.Application{11: {ID: 11, Position: "Analyst"}}, nil)
		m.cache.EXPECT().SetDay(gomock.Any(), "2025-11-03", gomock.Any()).Return(nil)

		res, err := m.svc().RoundsOnDate(context.Background(), "2025-11-03")
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Alice", res[0].CandidateName)
		assert.Equal(t, "Analyst", res[0].Position)
	})

	t.Run("日期格式错误", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		_, err := newInterviewMocks(ctrl).svc().RoundsOnDate(context.Background(), "03/11/2025")
		assert.ErrorIs(t, err, bizerr.ErrValidation)
	})
}

func TestInterviewService_RoundsInWeek(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newInterviewMocks(ctrl)
	rounds := passed(11, pipeline.PhoneInterview, pipeline.AptitudeTest)
	rounds[1].Date = "2025-11-06"
	// 2025-11-05 是周三
	m.cache.EXPECT().GetWeek(gomock.Any(), "2025-11-03").Return(nil, cache.ErrCalendarMiss)
	m.roundRepo.EXPECT().FindRoundsBetween(gomock.Any(), "2025-11-03", "2025-11-09").Return(rounds, nil)
	m.appRepo.EXPECT().FindCandidatesByIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]domain.Candidate{1: {ID: 1, Name: "Alice"}}, nil)
	m.appRepo.EXPECT().FindApplicationsByIDs(gomock.Any(), gomock.Any()).
		Return(map[int64]domain.Application{11: {ID: 11, Position: "Analyst"}}, nil)
	m.cache.EXPECT().SetWeek(gomock.Any(), "2025-11-03", gomock.Any()).Return(nil)

	days, err := m.svc().RoundsInWeek(context.Background(), "2025-11-05")
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2025-11-03", days[0].Date)
	assert.Len(t, days[0].Entries, 1)
	assert.Len(t, days[3].Entries, 1)
	assert.Empty(t, days[6].Entries)
}
