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

	"github.com/ecodeclub/hrportal/internal/directory"
	"github.com/ecodeclub/hrportal/internal/document"
	"github.com/ecodeclub/hrportal/internal/notification"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/event"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/repository"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var transitionCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "hrportal",
		Subsystem: "onboarding",
		Name:      "record_transitions_total",
		Help:      "入职记录状态流转次数",
	},
	[]string{"to"},
)

//go:generate mockgen -source=./service.go -package=onboardingmocks -destination=../../mocks/service.mock.go -typed Service
type Service interface {
	// StartFromOffer 幂等，同一个 offer 已经有记录时直接返回最新的一条。
	// 新建记录时会把填写资料的链接发给候选人，发送失败只作为告警返回
	StartFromOffer(ctx context.Context, o domain.AcceptedOffer) (bizerr.Outcome[domain.Record], error)
	// SendFormLink 重新发送填写资料的链接，只有 pending 的记录可以发送
	SendFormLink(ctx context.Context, id int64) (domain.Record, error)
	SubmitForm(ctx context.Context, id int64, form domain.Form) (domain.Record, error)
	// Resubmit 只有最新的记录处于 issue 时才能重新提交，会新建一条 pending 记录
	Resubmit(ctx context.Context, offerID int64, form domain.Form) (domain.Record, error)
	Approve(ctx context.Context, id int64) (domain.Record, error)
	RaiseIssue(ctx context.Context, id int64, details string) (bizerr.Outcome[domain.Record], error)
	FinalOnboard(ctx context.Context, id int64, details domain.FinalDetails) (domain.Record, error)
	// CompleteOnboard 写入员工目录之后才会把记录置为 onboarded
	CompleteOnboard(ctx context.Context, id int64) (bizerr.Outcome[domain.Record], error)
	Detail(ctx context.Context, id int64) (domain.Record, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.Record, int64, error)
}

// FormLink 候选人填写入职资料的页面地址，后面会拼上入职记录 ID
type FormLink string

func (l FormLink) For(id int64) string {
	return fmt.Sprintf("%s/%d", strings.TrimRight(string(l), "/"), id)
}

type service struct {
	repo     repository.RecordRepository
	resolver document.Resolver
	writer   directory.Writer
	producer event.EmployeeOnboardedEventProducer
	sender   notification.Sender
	formLink FormLink
	logger   *elog.Component
}

func NewService(repo repository.RecordRepository,
	resolver document.Resolver,
	writer directory.Writer,
	producer event.EmployeeOnboardedEventProducer,
	sender notification.Sender,
	formLink FormLink) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		writer:   writer,
		producer: producer,
		sender:   sender,
		formLink: formLink,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("onboarding")),
	}
}

func (s *service) StartFromOffer(ctx context.Context, o domain.AcceptedOffer) (bizerr.Outcome[domain.Record], error) {
	if o.OfferID <= 0 || o.CandidateID <= 0 {
		return bizerr.Outcome[domain.Record]{}, bizerr.Validation("offer 信息不完整")
	}
	latest, err := s.repo.FindLatestByOffer(ctx, o.OfferID)
	if err == nil {
		return bizerr.NewOutcome(latest), nil
	}
	if !errors.Is(err, bizerr.ErrNotFound) {
		return bizerr.Outcome[domain.Record]{}, err
	}
	r, err := s.repo.Create(ctx, domain.Record{
		OfferID:     o.OfferID,
		CandidateID: o.CandidateID,
		Name:        o.Name,
		Email:       o.Email,
		Phone:       o.Phone,
		Position:    o.Position,
		Salary:      o.Salary,
		StartDate:   o.StartDate,
	})
	if errors.Is(err, bizerr.ErrStateConflict) {
		// 并发投递的同一条消息，另一个已经创建成功，链接由它发送
		r, err = s.repo.FindActiveByOffer(ctx, o.OfferID)
		if err != nil {
			return bizerr.Outcome[domain.Record]{}, err
		}
		return bizerr.NewOutcome(r), nil
	}
	if err != nil {
		return bizerr.Outcome[domain.Record]{}, err
	}
	transitionCounter.WithLabelValues(domain.StatusPending.String()).Inc()
	out := bizerr.NewOutcome(r)
	out.Warn(s.notifyFormLink(ctx, r))
	return out, nil
}

func (s *service) SendFormLink(ctx context.Context, id int64) (domain.Record, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	if r.Status != domain.StatusPending {
		return domain.Record{}, bizerr.StateConflict("只有待审核的入职记录可以发送资料链接，当前状态 %s", r.Status)
	}
	if er := s.notifyFormLink(ctx, r); er != nil {
		return domain.Record{}, er
	}
	return r, nil
}

func (s *service) notifyFormLink(ctx context.Context, r domain.Record) *bizerr.Error {
	err := s.sender.Send(ctx, notification.Message{
		Template: notification.TemplateOnboardingForm,
		Recipient: notification.Recipient{
			Name:  r.Name,
			Email: r.Email,
			Phone: r.Phone,
		},
		Fields: map[string]string{
			"Position":  r.Position,
			"StartDate": r.StartDate,
			"Link":      s.formLink.For(r.ID),
		},
	})
	if err == nil {
		return nil
	}
	s.logger.Warn("发送入职资料链接失败", elog.Int64("recordId", r.ID), elog.FieldErr(err))
	return bizerr.Dependency(err, "通知 %s 发送失败", notification.TemplateOnboardingForm)
}

func (s *service) SubmitForm(ctx context.Context, id int64, form domain.Form) (domain.Record, error) {
	if err := s.validateForm(form); err != nil {
		return domain.Record{}, err
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	if r.Status != domain.StatusPending {
		return domain.Record{}, bizerr.StateConflict("只有待审核的入职记录可以修改资料，当前状态 %s", r.Status)
	}
	if err = s.repo.UpdateForm(ctx, id, form); err != nil {
		return domain.Record{}, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) Resubmit(ctx context.Context, offerID int64, form domain.Form) (domain.Record, error) {
	if err := s.validateForm(form); err != nil {
		return domain.Record{}, err
	}
	latest, err := s.repo.FindLatestByOffer(ctx, offerID)
	if err != nil {
		return domain.Record{}, err
	}
	if latest.Status != domain.StatusIssue {
		return domain.Record{}, bizerr.StateConflict("只有被退回的入职记录可以重新提交，当前状态 %s", latest.Status)
	}
	r, err := s.repo.Create(ctx, domain.Record{
		OfferID:       latest.OfferID,
		CandidateID:   latest.CandidateID,
		Name:          latest.Name,
		Email:         latest.Email,
		Phone:         latest.Phone,
		Position:      latest.Position,
		Salary:        latest.Salary,
		StartDate:     latest.StartDate,
		Form:          form,
		FormSubmitted: true,
	})
	if err != nil {
		return domain.Record{}, err
	}
	transitionCounter.WithLabelValues(domain.StatusPending.String()).Inc()
	return r, nil
}

func (s *service) Approve(ctx context.Context, id int64) (domain.Record, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	if r.Status != domain.StatusPending {
		return domain.Record{}, bizerr.StateConflict("只有待审核的入职记录可以审批，当前状态 %s", r.Status)
	}
	if !r.FormSubmitted {
		return domain.Record{}, bizerr.StateConflict("候选人还没有提交入职资料")
	}
	if err = s.repo.Approve(ctx, id); err != nil {
		return domain.Record{}, err
	}
	transitionCounter.WithLabelValues(domain.StatusApproved.String()).Inc()
	return s.repo.FindByID(ctx, id)
}

func (s *service) RaiseIssue(ctx context.Context, id int64, details string) (bizerr.Outcome[domain.Record], error) {
	details = strings.TrimSpace(details)
	if details == "" {
		return bizerr.Outcome[domain.Record]{}, bizerr.Validation("问题描述不能为空")
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return bizerr.Outcome[domain.Record]{}, err
	}
	if r.Status != domain.StatusPending {
		return bizerr.Outcome[domain.Record]{}, bizerr.StateConflict("只有待审核的入职记录可以退回，当前状态 %s", r.Status)
	}
	if err = s.repo.RaiseIssue(ctx, id, details); err != nil {
		return bizerr.Outcome[domain.Record]{}, err
	}
	transitionCounter.WithLabelValues(domain.StatusIssue.String()).Inc()
	r, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return bizerr.Outcome[domain.Record]{}, err
	}
	out := bizerr.NewOutcome(r)
	out.Warn(s.notifyIssue(ctx, r))
	return out, nil
}

func (s *service) notifyIssue(ctx context.Context, r domain.Record) *bizerr.Error {
	err := s.sender.Send(ctx, notification.Message{
		Template: notification.TemplateOnboardingIssue,
		Recipient: notification.Recipient{
			Name:  r.Name,
			Email: r.Email,
			Phone: r.Phone,
		},
		Fields: map[string]string{
			"Position": r.Position,
			"Details":  r.IssueDetails,
		},
	})
	if err == nil {
		return nil
	}
	s.logger.Warn("发送入职问题通知失败", elog.Int64("recordId", r.ID), elog.FieldErr(err))
	return bizerr.Dependency(err, "通知 %s 发送失败", notification.TemplateOnboardingIssue)
}

func (s *service) FinalOnboard(ctx context.Context, id int64, details domain.FinalDetails) (domain.Record, error) {
	if err := s.validateFinal(details); err != nil {
		return domain.Record{}, err
	}
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	if r.Status != domain.StatusApproved {
		return domain.Record{}, bizerr.StateConflict("入职记录还没有审批通过，当前状态 %s", r.Status)
	}
	if r.FinalSubmitted {
		return domain.Record{}, bizerr.StateConflict("入职信息已经提交过了")
	}
	if details.Salary == "" {
		details.Salary = r.Salary
	}
	if err = s.repo.SubmitFinal(ctx, id, details); err != nil {
		return domain.Record{}, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) CompleteOnboard(ctx context.Context, id int64) (bizerr.Outcome[domain.Record], error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return bizerr.Outcome[domain.Record]{}, err
	}
	if r.Status == domain.StatusOnboarded {
		// 重复提交，补发一次事件
		out := bizerr.NewOutcome(r)
		out.Warn(s.publish(ctx, r))
		return out, nil
	}
	if !r.CanComplete() {
		return bizerr.Outcome[domain.Record]{}, bizerr.StateConflict("需要先审批通过并提交入职信息")
	}
	employeeID, err := s.writer.Write(ctx, DirectoryKey(id), s.toEmployee(r))
	if err != nil {
		s.logger.Error("写入员工目录失败", elog.Int64("recordId", id), elog.FieldErr(err))
		return bizerr.Outcome[domain.Record]{}, bizerr.Dependency(err, "写入员工目录失败，请稍后重试")
	}
	if err = s.repo.Complete(ctx, id, employeeID); err != nil {
		return bizerr.Outcome[domain.Record]{}, err
	}
	transitionCounter.WithLabelValues(domain.StatusOnboarded.String()).Inc()
	r, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return bizerr.Outcome[domain.Record]{}, err
	}
	out := bizerr.NewOutcome(r)
	out.Warn(s.publish(ctx, r))
	return out, nil
}

// DirectoryKey 目录服务的幂等键，重试时保证不会生成两个员工
func DirectoryKey(id int64) string {
	return fmt.Sprintf("onboarding-%d", id)
}

func (s *service) publish(ctx context.Context, r domain.Record) *bizerr.Error {
	err := s.producer.Produce(ctx, event.EmployeeOnboardedEvent{
		RecordID:    r.ID,
		OfferID:     r.OfferID,
		CandidateID: r.CandidateID,
		EmployeeID:  r.EmployeeID,
		Name:        r.Name,
		Email:       r.Email,
		Position:    r.Position,
		JoiningDate: r.Final.JoiningDate,
		OnboardedAt: r.OnboardedAt(),
	})
	if err == nil {
		return nil
	}
	s.logger.Error("发送入职完成事件失败", elog.Int64("recordId", r.ID), elog.FieldErr(err))
	return bizerr.Dependency(err, "入职完成事件发送失败，请重新提交")
}

func (s *service) toEmployee(r domain.Record) directory.Employee {
	return directory.Employee{
		CandidateID:     r.CandidateID,
		OfferID:         r.OfferID,
		Name:            r.Name,
		Email:           r.Email,
		Position:        r.Position,
		Zone:            r.Final.Zone,
		Region:          r.Final.Region,
		Salary:          r.Final.Salary,
		JoiningDate:     r.Final.JoiningDate,
		JoiningTime:     r.Final.JoiningTime,
		JoiningLocation: r.Final.JoiningLocation,
		Reporting: directory.ReportingHierarchy{
			HR:           r.Final.Reporting.HR,
			FO:           r.Final.Reporting.FO,
			ZonalHead:    r.Final.Reporting.ZonalHead,
			RegionalHead: r.Final.Reporting.RegionalHead,
			CEO:          r.Final.Reporting.CEO,
		},
	}
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Record, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter domain.Filter) ([]domain.Record, int64, error) {
	var (
		eg    errgroup.Group
		rs    []domain.Record
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = s.repo.List(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return rs, total, eg.Wait()
}

func (s *service) validateForm(f domain.Form) error {
	required := []struct {
		name string
		val  string
	}{
		{name: "手机号", val: f.PersonalNumber},
		{name: "出生日期", val: f.DateOfBirth},
		{name: "现住址", val: f.CurrentAddress},
		{name: "开户行", val: f.BankName},
		{name: "银行账号", val: f.AccountNumber},
		{name: "IFSC", val: f.IFSCCode},
		{name: "账户名", val: f.AccountHolderName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return bizerr.Validation("%s不能为空", r.name)
		}
	}
	for _, d := range []string{f.DateOfBirth, f.FatherDOB, f.MotherDOB} {
		if d != "" && !domain.ValidDate(d) {
			return bizerr.Validation("日期 %q 格式必须是 YYYY-MM-DD", d)
		}
	}
	for _, ref := range f.Attachments() {
		if err := s.resolver.Validate(ref); err != nil {
			return bizerr.Validation("附件引用不合法: %s", ref)
		}
	}
	return nil
}

func (s *service) validateFinal(d domain.FinalDetails) error {
	if !domain.ValidDate(d.JoiningDate) {
		return bizerr.Validation("报到日期格式必须是 YYYY-MM-DD")
	}
	if d.JoiningTime != "" && !domain.ValidTime(d.JoiningTime) {
		return bizerr.Validation("报到时间格式必须是 HH:MM")
	}
	if strings.TrimSpace(d.JoiningLocation) == "" {
		return bizerr.Validation("报到地点不能为空")
	}
	if strings.TrimSpace(d.Reporting.HR) == "" {
		return bizerr.Validation("需要指定负责的 HR")
	}
	return nil
}
