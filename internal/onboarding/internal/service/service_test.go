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

	"github.com/ecodeclub/hrportal/internal/directory"
	directorymocks "github.com/ecodeclub/hrportal/internal/directory/mocks"
	docmocks "github.com/ecodeclub/hrportal/internal/document/mocks"
	"github.com/ecodeclub/hrportal/internal/notification"
	notificationmocks "github.com/ecodeclub/hrportal/internal/notification/mocks"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/event"
	evtmocks "github.com/ecodeclub/hrportal/internal/onboarding/internal/event/mocks"
	repomocks "github.com/ecodeclub/hrportal/internal/onboarding/internal/repository/mocks"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo     *repomocks.MockRecordRepository
	resolver *docmocks.MockResolver
	writer   *directorymocks.MockWriter
	producer *evtmocks.MockEmployeeOnboardedEventProducer
	sender   *notificationmocks.MockSender
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		repo:     repomocks.NewMockRecordRepository(ctrl),
		resolver: docmocks.NewMockResolver(ctrl),
		writer:   directorymocks.NewMockWriter(ctrl),
		producer: evtmocks.NewMockEmployeeOnboardedEventProducer(ctrl),
		sender:   notificationmocks.NewMockSender(ctrl),
	}
}

func (m mocks) svc() Service {
	return NewService(m.repo, m.resolver, m.writer, m.producer, m.sender, "https://hr.example.com/onboarding/form/")
}

func validForm() domain.Form {
	return domain.Form{
		PersonalNumber:    "9800000000",
		DateOfBirth:       "1998-04-01",
		CurrentAddress:    "Bengaluru",
		BankName:          "SBI",
		AccountNumber:     "000123",
		IFSCCode:          "SBIN0000001",
		AccountHolderName: "Alice",
		ProfileRef:        "onboarding/3/profile.png",
	}
}

func validFinal() domain.FinalDetails {
	return domain.FinalDetails{
		Reporting:       domain.ReportingHierarchy{HR: "Hema"},
		Zone:            "South",
		Region:          "KA",
		JoiningDate:     "2025-12-01",
		JoiningTime:     "09:30",
		JoiningLocation: "Bengaluru HQ",
	}
}

func TestService_StartFromOffer(t *testing.T) {
	offer := domain.AcceptedOffer{
		OfferID:     3,
		CandidateID: 1,
		Name:        "Alice",
		Email:       "alice@example.com",
		Position:    "Analyst",
		Salary:      "12 LPA",
	}
	created := domain.Record{
		ID:          7,
		OfferID:     3,
		CandidateID: 1,
		Name:        "Alice",
		Email:       "alice@example.com",
		Position:    "Analyst",
		Salary:      "12 LPA",
		Status:      domain.StatusPending,
	}
	formLink := notification.Message{
		Template:  notification.TemplateOnboardingForm,
		Recipient: notification.Recipient{Name: "Alice", Email: "alice@example.com"},
		Fields: map[string]string{
			"Position":  "Analyst",
			"StartDate": "",
			"Link":      "https://hr.example.com/onboarding/form/7",
		},
	}
	testCases := []struct {
		name         string
		offer        domain.AcceptedOffer
		mock         func(m mocks)
		want         domain.Record
		wantErr      error
		wantWarnings int
	}{
		{
			name:  "新建并发送资料链接",
			offer: offer,
			mock: func(m mocks) {
				m.repo.EXPECT().FindLatestByOffer(gomock.Any(), int64(3)).
					Return(domain.Record{}, bizerr.NotFound("入职记录不存在"))
				m.repo.EXPECT().Create(gomock.Any(), domain.Record{
					OfferID:     3,
					CandidateID: 1,
					Name:        "Alice",
					Email:       "alice@example.com",
					Position:    "Analyst",
					Salary:      "12 LPA",
				}).Return(created, nil)
				m.sender.EXPECT().Send(gomock.Any(), formLink).Return(nil)
			},
			want: created,
		},
		{
			name:  "新建但是通知失败",
			offer: offer,
			mock: func(m mocks) {
				m.repo.EXPECT().FindLatestByOffer(gomock.Any(), int64(3)).
					Return(domain.Record{}, bizerr.NotFound("入职记录不存在"))
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
				m.sender.EXPECT().Send(gomock.Any(), formLink).Return(errors.New("smtp timeout"))
			},
			want:         created,
			wantWarnings: 1,
		},
		{
			name:  "重复消息",
			offer: offer,
			mock: func(m mocks) {
				m.repo.EXPECT().FindLatestByOffer(gomock.Any(), int64(3)).
					Return(domain.Record{ID: 7, OfferID: 3, Status: domain.StatusApproved}, nil)
			},
			want: domain.Record{ID: 7, OfferID: 3, Status: domain.StatusApproved},
		},
		{
			name:  "并发创建",
			offer: offer,
			mock: func(m mocks) {
				m.repo.EXPECT().FindLatestByOffer(gomock.Any(), int64(3)).
					Return(domain.Record{}, bizerr.NotFound("入职记录不存在"))
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Record{}, bizerr.StateConflict("该 offer 已经有一条进行中的入职记录"))
				m.repo.EXPECT().FindActiveByOffer(gomock.Any(), int64(3)).
					Return(domain.Record{ID: 7, OfferID: 3, Status: domain.StatusPending}, nil)
			},
			want: domain.Record{ID: 7, OfferID: 3, Status: domain.StatusPending},
		},
		{
			name:    "offer 信息不完整",
			offer:   domain.AcceptedOffer{OfferID: 3},
			mock:    func(m mocks) {},
			wantErr: bizerr.ErrValidation,
		},
		{
			name:  "数据库错误",
			offer: offer,
			mock: func(m mocks) {
				m.repo.EXPECT().FindLatestByOffer(gomock.Any(), int64(3)).
					Return(domain.Record{}, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			got, err := m.svc().StartFromOffer(context.Background(), tc.offer)
			if tc.wantErr != nil {
				assertErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Val)
			assert.Len(t, got.Warnings, tc.wantWarnings)
			for _, w := range got.Warnings {
				assert.Equal(t, bizerr.KindDependency, w.Kind)
			}
		})
	}
}

func TestService_SendFormLink(t *testing.T) {
	pending := domain.Record{ID: 7, Name: "Alice", Email: "alice@example.com", Phone: "9800000000",
		Position: "Analyst", StartDate: "2025-12-01", Status: domain.StatusPending}
	msg := notification.Message{
		Template:  notification.TemplateOnboardingForm,
		Recipient: notification.Recipient{Name: "Alice", Email: "alice@example.com", Phone: "9800000000"},
		Fields: map[string]string{
			"Position":  "Analyst",
			"StartDate": "2025-12-01",
			"Link":      "https://hr.example.com/onboarding/form/7",
		},
	}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "重新发送",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pending, nil)
				m.sender.EXPECT().Send(gomock.Any(), msg).Return(nil)
			},
		},
		{
			name: "发送失败",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pending, nil)
				m.sender.EXPECT().Send(gomock.Any(), msg).Return(errors.New("smtp timeout"))
			},
			wantErr: bizerr.ErrDependency,
		},
		{
			name: "已经审批通过",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusApproved}, nil)
			},
			wantErr: bizerr.ErrStateConflict,
		},
		{
			name: "不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{}, bizerr.NotFound("入职记录不存在"))
			},
			wantErr: bizerr.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			got, err := m.svc().SendFormLink(context.Background(), 7)
			if tc.wantErr != nil {
				assertErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, pending, got)
		})
	}
}

func TestFormLink_For(t *testing.T) {
	assert.Equal(t, "https://hr.example.com/onboarding/form/7", FormLink("https://hr.example.com/onboarding/form/").For(7))
	assert.Equal(t, "http://localhost:3000/onboarding/form/12", FormLink("http://localhost:3000/onboarding/form").For(12))
}

func TestService_SubmitForm(t *testing.T) {
	testCases := []struct {
		name    string
		form    func() domain.Form
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "提交成功",
			form: validForm,
			mock: func(m mocks) {
				m.resolver.EXPECT().Validate("onboarding/3/profile.png").Return(nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusPending}, nil)
				m.repo.EXPECT().UpdateForm(gomock.Any(), int64(7), validForm()).Return(nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusPending, Form: validForm()}, nil)
			},
		},
		{
			name: "缺少银行账号",
			form: func() domain.Form {
				f := validForm()
				f.AccountNumber = " "
				return f
			},
			mock:    func(m mocks) {},
			wantErr: bizerr.Validation("银行账号不能为空"),
		},
		{
			name: "出生日期格式错误",
			form: func() domain.Form {
				f := validForm()
				f.DateOfBirth = "01/04/1998"
				return f
			},
			mock:    func(m mocks) {},
			wantErr: bizerr.ErrValidation,
		},
		{
			name: "附件引用不合法",
			form: validForm,
			mock: func(m mocks) {
				m.resolver.EXPECT().Validate("onboarding/3/profile.png").Return(errors.New("非法引用"))
			},
			wantErr: bizerr.ErrValidation,
		},
		{
			name: "已经审批",
			form: validForm,
			mock: func(m mocks) {
				m.resolver.EXPECT().Validate(gomock.Any()).Return(nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusApproved}, nil)
			},
			wantErr: bizerr.ErrStateConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			got, err := m.svc().SubmitForm(context.Background(), 7, tc.form())
			if tc.wantErr != nil {
				assertErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, validForm(), got.Form)
		})
	}
}

func TestService_Resubmit(t *testing.T) {
	issue := domain.Record{
		ID:          7,
		OfferID:     3,
		CandidateID: 1,
		Name:        "Alice",
		Email:       "alice@example.com",
		Position:    "Analyst",
		Status:      domain.StatusIssue,
	}
	testCases := []struct {
		name    string
		mock    func(m mocks)
		want    domain.Record
		wantErr error
	}{
		{
			name: "退回后重新提交",
			mock: func(m mocks) {
				m.resolver.EXPECT().Validate(gomock.Any()).Return(nil)
				m.repo.EXPECT().FindLatestByOffer(gomock.Any(), int64(3)).Return(issue, nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.Record{
					OfferID:       3,
					CandidateID:   1,
					Name:          "Alice",
					Email:         "alice@example.com",
					Position:      "Analyst",
					Form:          validForm(),
					FormSubmitted: true,
				}).Return(domain.Record{ID: 8, OfferID: 3, Status: domain.StatusPending}, nil)
			},
			want: domain.Record{ID: 8, OfferID: 3, Status: domain.StatusPending},
		},
		{
			name: "最新记录不是 issue",
			mock: func(m mocks) {
				m.resolver.EXPECT().Validate(gomock.Any()).Return(nil)
				m.repo.EXPECT().FindLatestByOffer(gomock.Any(), int64(3)).
					Return(domain.Record{ID: 8, OfferID: 3, Status: domain.StatusPending}, nil)
			},
			wantErr: bizerr.ErrStateConflict,
		},
		{
			name: "offer 没有入职记录",
			mock: func(m mocks) {
				m.resolver.EXPECT().Validate(gomock.Any()).Return(nil)
				m.repo.EXPECT().FindLatestByOffer(gomock.Any(), int64(3)).
					Return(domain.Record{}, bizerr.NotFound("入职记录不存在"))
			},
			wantErr: bizerr.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			got, err := m.svc().Resubmit(context.Background(), 3, validForm())
			if tc.wantErr != nil {
				assertErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_Approve(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "审批通过",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusPending, Form: validForm(), FormSubmitted: true}, nil)
				m.repo.EXPECT().Approve(gomock.Any(), int64(7)).Return(nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusApproved, ApprovedAt: 1}, nil)
			},
		},
		{
			name: "候选人还没有提交资料",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusPending}, nil)
			},
			wantErr: bizerr.ErrStateConflict,
		},
		{
			name: "已经被退回",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusIssue}, nil)
			},
			wantErr: bizerr.ErrStateConflict,
		},
		{
			name: "并发操作输掉",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusPending, FormSubmitted: true}, nil)
				m.repo.EXPECT().Approve(gomock.Any(), int64(7)).
					Return(bizerr.StateConflict("入职记录状态已变更，请刷新后重试"))
			},
			wantErr: bizerr.ErrStateConflict,
		},
		{
			name: "不存在",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{}, bizerr.NotFound("入职记录不存在"))
			},
			wantErr: bizerr.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			got, err := m.svc().Approve(context.Background(), 7)
			if tc.wantErr != nil {
				assertErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusApproved, got.Status)
		})
	}
}

func TestService_RaiseIssue(t *testing.T) {
	pending := domain.Record{ID: 7, Name: "Alice", Email: "alice@example.com", Position: "Analyst", Status: domain.StatusPending}
	issue := pending
	issue.Status = domain.StatusIssue
	issue.IssueDetails = "缺少银行流水"
	testCases := []struct {
		name         string
		details      string
		mock         func(m mocks)
		wantErr      error
		wantWarnings int
	}{
		{
			name:    "退回并通知",
			details: " 缺少银行流水 ",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pending, nil)
				m.repo.EXPECT().RaiseIssue(gomock.Any(), int64(7), "缺少银行流水").Return(nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(issue, nil)
				m.sender.EXPECT().Send(gomock.Any(), notification.Message{
					Template:  notification.TemplateOnboardingIssue,
					Recipient: notification.Recipient{Name: "Alice", Email: "alice@example.com"},
					Fields:    map[string]string{"Position": "Analyst", "Details": "缺少银行流水"},
				}).Return(nil)
			},
		},
		{
			name:    "通知失败仍然退回",
			details: "缺少银行流水",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(pending, nil)
				m.repo.EXPECT().RaiseIssue(gomock.Any(), int64(7), "缺少银行流水").Return(nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(issue, nil)
				m.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp timeout"))
			},
			wantWarnings: 1,
		},
		{
			name:    "问题描述为空",
			details: "  ",
			mock:    func(m mocks) {},
			wantErr: bizerr.ErrValidation,
		},
		{
			name:    "已经审批",
			details: "缺少银行流水",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusApproved}, nil)
			},
			wantErr: bizerr.ErrStateConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			out, err := m.svc().RaiseIssue(context.Background(), 7, tc.details)
			if tc.wantErr != nil {
				assertErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusIssue, out.Val.Status)
			assert.Len(t, out.Warnings, tc.wantWarnings)
		})
	}
}

func TestService_FinalOnboard(t *testing.T) {
	approved := domain.Record{ID: 7, Salary: "12 LPA", Status: domain.StatusApproved}
	testCases := []struct {
		name    string
		details func() domain.FinalDetails
		mock    func(m mocks)
		wantErr error
	}{
		{
			name:    "提交成功，薪资沿用 offer",
			details: validFinal,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(approved, nil)
				want := validFinal()
				want.Salary = "12 LPA"
				m.repo.EXPECT().SubmitFinal(gomock.Any(), int64(7), want).Return(nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusApproved, FinalSubmitted: true, Final: want}, nil)
			},
		},
		{
			name:    "还没有审批",
			details: validFinal,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusPending}, nil)
			},
			wantErr: bizerr.ErrStateConflict,
		},
		{
			name:    "重复提交",
			details: validFinal,
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusApproved, FinalSubmitted: true}, nil)
			},
			wantErr: bizerr.ErrStateConflict,
		},
		{
			name: "报到日期错误",
			details: func() domain.FinalDetails {
				d := validFinal()
				d.JoiningDate = "2025-13-01"
				return d
			},
			mock:    func(m mocks) {},
			wantErr: bizerr.ErrValidation,
		},
		{
			name: "缺少 HR",
			details: func() domain.FinalDetails {
				d := validFinal()
				d.Reporting.HR = ""
				return d
			},
			mock:    func(m mocks) {},
			wantErr: bizerr.ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			got, err := m.svc().FinalOnboard(context.Background(), 7, tc.details())
			if tc.wantErr != nil {
				assertErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.FinalSubmitted)
		})
	}
}

func TestService_CompleteOnboard(t *testing.T) {
	final := validFinal()
	final.Salary = "12 LPA"
	ready := domain.Record{
		ID:             7,
		OfferID:        3,
		CandidateID:    1,
		Name:           "Alice",
		Email:          "alice@example.com",
		Position:       "Analyst",
		Status:         domain.StatusApproved,
		FinalSubmitted: true,
		Final:          final,
	}
	done := ready
	done.Status = domain.StatusOnboarded
	done.EmployeeID = "E1001"
	done.Utime = 100

	testCases := []struct {
		name         string
		mock         func(m mocks)
		wantErr      error
		wantWarnings int
	}{
		{
			name: "写入目录并发送事件",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(ready, nil)
				m.writer.EXPECT().Write(gomock.Any(), "onboarding-7", directory.Employee{
					CandidateID:     1,
					OfferID:         3,
					Name:            "Alice",
					Email:           "alice@example.com",
					Position:        "Analyst",
					Zone:            "South",
					Region:          "KA",
					Salary:          "12 LPA",
					JoiningDate:     "2025-12-01",
					JoiningTime:     "09:30",
					JoiningLocation: "Bengaluru HQ",
					Reporting:       directory.ReportingHierarchy{HR: "Hema"},
				}).Return("E1001", nil)
				m.repo.EXPECT().Complete(gomock.Any(), int64(7), "E1001").Return(nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(done, nil)
				m.producer.EXPECT().Produce(gomock.Any(), event.EmployeeOnboardedEvent{
					RecordID:    7,
					OfferID:     3,
					CandidateID: 1,
					EmployeeID:  "E1001",
					Name:        "Alice",
					Email:       "alice@example.com",
					Position:    "Analyst",
					JoiningDate: "2025-12-01",
					OnboardedAt: 100,
				}).Return(nil)
			},
		},
		{
			name: "还没有提交最终信息",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(domain.Record{ID: 7, Status: domain.StatusApproved}, nil)
			},
			wantErr: bizerr.ErrStateConflict,
		},
		{
			name: "目录服务失败不改变状态",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(ready, nil)
				m.writer.EXPECT().Write(gomock.Any(), "onboarding-7", gomock.Any()).
					Return("", directory.ErrRejected)
			},
			wantErr: bizerr.ErrDependency,
		},
		{
			name: "事件发送失败变成告警",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(ready, nil)
				m.writer.EXPECT().Write(gomock.Any(), "onboarding-7", gomock.Any()).Return("E1001", nil)
				m.repo.EXPECT().Complete(gomock.Any(), int64(7), "E1001").Return(nil)
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(done, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantWarnings: 1,
		},
		{
			name: "重复提交补发事件",
			mock: func(m mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(done, nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)
			out, err := m.svc().CompleteOnboard(context.Background(), 7)
			if tc.wantErr != nil {
				assertErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusOnboarded, out.Val.Status)
			assert.Equal(t, "E1001", out.Val.EmployeeID)
			assert.Len(t, out.Warnings, tc.wantWarnings)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	filter := domain.Filter{Statuses: []domain.Status{domain.StatusPending}, Limit: 10}
	m.repo.EXPECT().List(gomock.Any(), filter).Return([]domain.Record{{ID: 1}, {ID: 2}}, nil)
	m.repo.EXPECT().Count(gomock.Any(), filter).Return(int64(12), nil)
	rs, total, err := m.svc().List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, rs, 2)
	assert.Equal(t, int64(12), total)
}

// assertErr 业务错误比较分类，其余错误比较文案
func assertErr(t *testing.T, want, got error) {
	t.Helper()
	var be *bizerr.Error
	if errors.As(want, &be) {
		assert.ErrorIs(t, got, want)
		return
	}
	assert.EqualError(t, got, want.Error())
}
