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
	"testing"

	"github.com/ecodeclub/hrportal/internal/notification"
	notificationmocks "github.com/ecodeclub/hrportal/internal/notification/mocks"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository"
	repomocks "github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestApplicationService_Transit(t *testing.T) {
	alice := domain.Candidate{ID: 1, Name: "Alice", Email: "alice@example.com"}
	app := func(status domain.ApplicationStatus) domain.Application {
		return domain.Application{ID: 11, CandidateID: 1, Position: "Analyst", Status: status}
	}
	testCases := []struct {
		name  string
		mock  func(ctrl *gomock.Controller) (repository.ApplicationRepository, notification.Sender)
		input domain.Transition

		wantStatus   domain.ApplicationStatus
		wantWarnings int
		wantKind     bizerr.Kind
	}{
		{
			name: "未知状态",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, notification.Sender) {
				return repomocks.NewMockApplicationRepository(ctrl), notificationmocks.NewMockSender(ctrl)
			},
			input:    domain.Transition{ApplicationID: 11, To: "Hired"},
			wantKind: bizerr.KindValidation,
		},
		{
			name: "不能直接设置为 Completed",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, notification.Sender) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(app(domain.StatusShortlisted), nil)
				return repo, notificationmocks.NewMockSender(ctrl)
			},
			input:    domain.Transition{ApplicationID: 11, To: domain.StatusCompleted},
			wantKind: bizerr.KindStateConflict,
		},
		{
			name: "终态不能流转",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, notification.Sender) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(app(domain.StatusRejected), nil)
				return repo, notificationmocks.NewMockSender(ctrl)
			},
			input:    domain.Transition{ApplicationID: 11, To: domain.StatusRejected},
			wantKind: bizerr.KindStateConflict,
		},
		{
			name: "跳过 Reviewing",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, notification.Sender) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(app(domain.StatusApplied), nil)
				return repo, notificationmocks.NewMockSender(ctrl)
			},
			input:    domain.Transition{ApplicationID: 11, To: domain.StatusShortlisted},
			wantKind: bizerr.KindStateConflict,
		},
		{
			name: "并发修改",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, notification.Sender) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(app(domain.StatusApplied), nil)
				repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(bizerr.StateConflict("申请状态已变更，请刷新后重试"))
				return repo, notificationmocks.NewMockSender(ctrl)
			},
			input:    domain.Transition{ApplicationID: 11, To: domain.StatusReviewing},
			wantKind: bizerr.KindStateConflict,
		},
		{
			name: "进入 Reviewing 不发通知",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, notification.Sender) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(app(domain.StatusApplied), nil)
				repo.EXPECT().Transit(gomock.Any(), domain.Transition{
					ApplicationID: 11,
					From:          domain.StatusApplied,
					To:            domain.StatusReviewing,
					Actor:         7,
				}).Return(nil)
				return repo, notificationmocks.NewMockSender(ctrl)
			},
			input:      domain.Transition{ApplicationID: 11, To: domain.StatusReviewing, Actor: 7},
			wantStatus: domain.StatusReviewing,
		},
		{
			name: "进入 Shortlisted 并通知",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, notification.Sender) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(app(domain.StatusReviewing), nil)
				repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().FindCandidate(gomock.Any(), int64(1)).Return(alice, nil)
				sender := notificationmocks.NewMockSender(ctrl)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, msg notification.Message) error {
						assert.Equal(t, notification.TemplateShortlisted, msg.Template)
						assert.Equal(t, "alice@example.com", msg.Recipient.Email)
						assert.Equal(t, "Analyst", msg.Fields["Position"])
						return nil
					})
				return repo, sender
			},
			input:      domain.Transition{ApplicationID: 11, To: domain.StatusShortlisted},
			wantStatus: domain.StatusShortlisted,
		},
		{
			name: "通知失败只产生告警",
			mock: func(ctrl *gomock.Controller) (repository.ApplicationRepository, notification.Sender) {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().FindApplication(gomock.Any(), int64(11)).Return(app(domain.StatusShortlisted), nil)
				repo.EXPECT().Transit(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().FindCandidate(gomock.Any(), int64(1)).Return(alice, nil)
				sender := notificationmocks.NewMockSender(ctrl)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("mail server down"))
				return repo, sender
			},
			input:        domain.Transition{ApplicationID: 11, To: domain.StatusRejected, Reason: "岗位已招满"},
			wantStatus:   domain.StatusRejected,
			wantWarnings: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, sender := tc.mock(ctrl)
			svc := NewApplicationService(repo, sender)
			out, err := svc.Transit(context.Background(), tc.input)
			if tc.wantKind != "" {
				assert.Equal(t, tc.wantKind, bizerr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, out.Val.Status)
			assert.Len(t, out.Warnings, tc.wantWarnings)
			for _, w := range out.Warnings {
				assert.ErrorIs(t, w, bizerr.ErrDependency)
			}
		})
	}
}

func TestApplicationService_Apply(t *testing.T) {
	score := 6.0
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) repository.ApplicationRepository
		candidate domain.Candidate
		app       domain.Application
		wantErr   bool
	}{
		{
			name: "邮箱不合法",
			mock: func(ctrl *gomock.Controller) repository.ApplicationRepository {
				return repomocks.NewMockApplicationRepository(ctrl)
			},
			candidate: domain.Candidate{Name: "Alice", Email: "alice"},
			app:       domain.Application{JobPostingID: 1, Position: "Analyst"},
			wantErr:   true,
		},
		{
			name: "筛选分数越界",
			mock: func(ctrl *gomock.Controller) repository.ApplicationRepository {
				return repomocks.NewMockApplicationRepository(ctrl)
			},
			candidate: domain.Candidate{Name: "Alice", Email: "alice@example.com"},
			app:       domain.Application{JobPostingID: 1, Position: "Analyst", FallbackScore: &score},
			wantErr:   true,
		},
		{
			name: "申请成功",
			mock: func(ctrl *gomock.Controller) repository.ApplicationRepository {
				repo := repomocks.NewMockApplicationRepository(ctrl)
				repo.EXPECT().Apply(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, c domain.Candidate, a domain.Application) (domain.Candidate, domain.Application, error) {
						assert.Equal(t, "alice@example.com", c.Email)
						assert.Equal(t, domain.StatusApplied, a.Status)
						assert.NotZero(t, a.AppliedAt)
						c.ID, a.ID, a.CandidateID = 1, 11, 1
						return c, a, nil
					})
				return repo
			},
			candidate: domain.Candidate{Name: " Alice ", Email: " Alice@Example.com"},
			app:       domain.Application{JobPostingID: 1, Position: "Analyst"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewApplicationService(tc.mock(ctrl), notificationmocks.NewMockSender(ctrl))
			res, err := svc.Apply(context.Background(), tc.candidate, tc.app)
			if tc.wantErr {
				assert.ErrorIs(t, err, bizerr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), res.ID)
			assert.Equal(t, domain.StatusApplied, res.Status)
		})
	}
}
