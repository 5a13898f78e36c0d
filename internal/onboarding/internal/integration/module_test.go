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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/hrportal/internal/directory"
	docmocks "github.com/ecodeclub/hrportal/internal/document/mocks"
	notificationmocks "github.com/ecodeclub/hrportal/internal/notification/mocks"
	"github.com/ecodeclub/hrportal/internal/onboarding"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/errs"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/integration/startup"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/web"
	"github.com/ecodeclub/hrportal/internal/recruitment"
	"github.com/ecodeclub/hrportal/internal/test"
	testioc "github.com/ecodeclub/hrportal/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/lithammer/shortuuid/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OnboardingTestSuite struct {
	suite.Suite
	server   *egin.Component
	db       *egorm.Component
	module   *onboarding.Module
	producer mq.Producer
	consumer mq.Consumer
}

func TestOnboardingModule(t *testing.T) {
	suite.Run(t, new(OnboardingTestSuite))
}

func (s *OnboardingTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())
	sender := notificationmocks.NewMockSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	resolver := docmocks.NewMockResolver(ctrl)
	resolver.EXPECT().Validate(gomock.Any()).Return(nil).AnyTimes()

	module, err := startup.InitModule(resolver, directory.NewConsoleWriter(), sender)
	require.NoError(s.T(), err)
	s.module = module

	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()

	q := testioc.InitMQ()
	s.producer, err = q.Producer(recruitment.OfferAcceptedEventName)
	require.NoError(s.T(), err)
	s.consumer, err = q.Consumer(onboarding.EmployeeOnboardedEventName, "onboarding_test")
	require.NoError(s.T(), err)
}

func (s *OnboardingTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `onboarding_records`").Error
	require.NoError(s.T(), err)
}

// offer 接受之后：填资料、审批、补充入职信息、完成入职
func (s *OnboardingTestSuite) TestHappyPath() {
	t := s.T()
	r := s.accept(101)
	assert.Equal(t, "pending", r.Status)
	assert.Equal(t, "Analyst", r.Position)
	assert.False(t, r.FormSubmitted)

	resent := post[web.RecordVO](t, s.server, "/onboarding/send-form-link", web.IDReq{ID: r.ID})
	require.Equal(t, 0, resent.Code, resent.Msg)

	submitted := post[web.RecordVO](t, s.server, "/onboarding/submit-form", web.SubmitFormReq{ID: r.ID, Form: form()})
	require.Equal(t, 0, submitted.Code, submitted.Msg)
	assert.Equal(t, "SBI", submitted.Data.Form.BankName)

	approveReq := web.CommandReq{RequestID: shortuuid.New(), ID: r.ID}
	approved := post[web.RecordVO](t, s.server, "/onboarding/approve", approveReq)
	require.Equal(t, 0, approved.Code, approved.Msg)
	assert.Equal(t, "approved", approved.Data.Status)
	assert.NotEmpty(t, approved.Data.ApprovedAt)

	// 同一个 requestId 重试不会因为状态已经变化而报错
	retried := post[web.RecordVO](t, s.server, "/onboarding/approve", approveReq)
	require.Equal(t, 0, retried.Code, retried.Msg)
	assert.Equal(t, approved.Data.ApprovedAt, retried.Data.ApprovedAt)

	// 已经审批的记录不再发送资料链接
	resent = post[web.RecordVO](t, s.server, "/onboarding/send-form-link", web.IDReq{ID: r.ID})
	assert.Equal(t, errs.StateConflict.Code, resent.Code)

	final := post[web.RecordVO](t, s.server, "/onboarding/final-onboard", web.FinalOnboardReq{ID: r.ID, Details: finalDetails()})
	require.Equal(t, 0, final.Code, final.Msg)
	assert.True(t, final.Data.FinalSubmitted)
	// 没有填写薪资时沿用 offer 上的
	assert.Equal(t, "12 LPA", final.Data.Final.Salary)

	done := post[web.OutcomeVO](t, s.server, "/onboarding/complete", web.IDReq{ID: r.ID})
	require.Equal(t, 0, done.Code, done.Msg)
	assert.Equal(t, "onboarded", done.Data.Entity.Status)
	assert.True(t, strings.HasPrefix(done.Data.Entity.EmployeeID, "EMP-"))
	assert.Empty(t, done.Data.Warnings)

	evt := s.consumeOnboarded()
	assert.Equal(t, r.ID, evt.RecordID)
	assert.Equal(t, int64(101), evt.OfferID)
	assert.Equal(t, done.Data.Entity.EmployeeID, evt.EmployeeID)
	assert.Equal(t, "2025-12-01", evt.JoiningDate)

	// 重复提交返回同一个员工编号，并补发事件
	again := post[web.OutcomeVO](t, s.server, "/onboarding/complete", web.IDReq{ID: r.ID})
	require.Equal(t, 0, again.Code, again.Msg)
	assert.Equal(t, done.Data.Entity.EmployeeID, again.Data.Entity.EmployeeID)
	assert.Equal(t, done.Data.Entity.EmployeeID, s.consumeOnboarded().EmployeeID)

	// 已经入职的记录不能再退回
	issue := post[web.OutcomeVO](t, s.server, "/onboarding/raise-issue", web.RaiseIssueReq{ID: r.ID, Details: "资料有误"})
	assert.Equal(t, errs.StateConflict.Code, issue.Code)
}

func (s *OnboardingTestSuite) TestIssueAndResubmit() {
	t := s.T()
	r := s.accept(102)

	blank := post[web.OutcomeVO](t, s.server, "/onboarding/raise-issue", web.RaiseIssueReq{ID: r.ID, Details: "  "})
	assert.Equal(t, errs.InvalidInput.Code, blank.Code)

	issue := post[web.OutcomeVO](t, s.server, "/onboarding/raise-issue", web.RaiseIssueReq{ID: r.ID, Details: "缺少银行流水"})
	require.Equal(t, 0, issue.Code, issue.Msg)
	assert.Equal(t, "issue", issue.Data.Entity.Status)
	assert.Equal(t, "缺少银行流水", issue.Data.Entity.IssueDetails)

	approve := post[web.RecordVO](t, s.server, "/onboarding/approve", web.CommandReq{ID: r.ID})
	assert.Equal(t, errs.StateConflict.Code, approve.Code)

	resubmitted := post[web.RecordVO](t, s.server, "/onboarding/resubmit", web.ResubmitReq{OfferID: 102, Form: form()})
	require.Equal(t, 0, resubmitted.Code, resubmitted.Msg)
	assert.Equal(t, "pending", resubmitted.Data.Status)
	assert.NotEqual(t, r.ID, resubmitted.Data.ID)

	// 最新的记录是 pending，不能再次重新提交
	dup := post[web.RecordVO](t, s.server, "/onboarding/resubmit", web.ResubmitReq{OfferID: 102, Form: form()})
	assert.Equal(t, errs.StateConflict.Code, dup.Code)

	// 重复投递的事件不会再创建记录
	redelivered := s.accept(102)
	assert.Equal(t, resubmitted.Data.ID, redelivered.ID)

	list := post[web.RecordList](t, s.server, "/onboarding/list", web.ListReq{OfferID: 102})
	require.Equal(t, 0, list.Code, list.Msg)
	assert.Equal(t, int64(2), list.Data.Total)
}

func (s *OnboardingTestSuite) TestOrderViolations() {
	t := s.T()
	r := s.accept(103)

	final := post[web.RecordVO](t, s.server, "/onboarding/final-onboard", web.FinalOnboardReq{ID: r.ID, Details: finalDetails()})
	assert.Equal(t, errs.StateConflict.Code, final.Code)

	complete := post[web.OutcomeVO](t, s.server, "/onboarding/complete", web.IDReq{ID: r.ID})
	assert.Equal(t, errs.StateConflict.Code, complete.Code)

	// 候选人还没有提交资料
	empty := post[web.RecordVO](t, s.server, "/onboarding/approve", web.CommandReq{ID: r.ID})
	assert.Equal(t, errs.StateConflict.Code, empty.Code)

	submitted := post[web.RecordVO](t, s.server, "/onboarding/submit-form", web.SubmitFormReq{ID: r.ID, Form: form()})
	require.Equal(t, 0, submitted.Code, submitted.Msg)
	assert.True(t, submitted.Data.FormSubmitted)

	approved := post[web.RecordVO](t, s.server, "/onboarding/approve", web.CommandReq{ID: r.ID})
	require.Equal(t, 0, approved.Code, approved.Msg)

	complete = post[web.OutcomeVO](t, s.server, "/onboarding/complete", web.IDReq{ID: r.ID})
	assert.Equal(t, errs.StateConflict.Code, complete.Code)

	post[web.RecordVO](t, s.server, "/onboarding/final-onboard", web.FinalOnboardReq{ID: r.ID, Details: finalDetails()})
	twice := post[web.RecordVO](t, s.server, "/onboarding/final-onboard", web.FinalOnboardReq{ID: r.ID, Details: finalDetails()})
	assert.Equal(t, errs.StateConflict.Code, twice.Code)

	missing := post[web.RecordVO](t, s.server, "/onboarding/detail", web.IDReq{ID: r.ID + 1000})
	assert.Equal(t, errs.NotFound.Code, missing.Code)
}

// accept 模拟招聘模块发出的 offer 接受事件，并同步消费一次
func (s *OnboardingTestSuite) accept(offerID int64) web.RecordVO {
	t := s.T()
	data, err := json.Marshal(recruitment.OfferAcceptedEvent{
		OfferID:     offerID,
		SN:          fmt.Sprintf("OF20251101%04dTESTTEST", offerID),
		CandidateID: offerID + 1000,
		Name:        "Alice",
		Email:       "alice@example.com",
		Position:    "Analyst",
		Salary:      "12 LPA",
		StartDate:   "2025-12-01",
		AcceptedAt:  time.Now().UnixMilli(),
	})
	require.NoError(t, err)
	_, err = s.producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.module.OfferAcceptedConsumer.Consume(ctx))

	list := post[web.RecordList](t, s.server, "/onboarding/list", web.ListReq{OfferID: offerID, Statuses: []string{"pending"}})
	require.Equal(t, 0, list.Code, list.Msg)
	require.NotEmpty(t, list.Data.Records)
	return list.Data.Records[0]
}

func (s *OnboardingTestSuite) consumeOnboarded() onboarding.EmployeeOnboardedEvent {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg, err := s.consumer.Consume(ctx)
	require.NoError(s.T(), err)
	var evt onboarding.EmployeeOnboardedEvent
	require.NoError(s.T(), json.Unmarshal(msg.Value, &evt))
	return evt
}

func form() web.FormVO {
	return web.FormVO{
		PersonalNumber:    "9800000000",
		DateOfBirth:       "1998-04-01",
		CurrentAddress:    "Bengaluru",
		BankName:          "SBI",
		AccountNumber:     "000123",
		IFSCCode:          "SBIN0000001",
		AccountHolderName: "Alice",
		ProfileRef:        "onboarding/alice/profile.png",
	}
}

func finalDetails() web.FinalDetailsVO {
	return web.FinalDetailsVO{
		Reporting:       web.ReportingVO{HR: "Hema", CEO: "Ravi"},
		Zone:            "South",
		Region:          "KA",
		JoiningDate:     "2025-12-01",
		JoiningTime:     "09:30",
		JoiningLocation: "Bengaluru HQ",
	}
}

func post[T any](t *testing.T, server *egin.Component, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}
