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
	"net/mail"
	"strings"
	"time"

	"github.com/ecodeclub/hrportal/internal/notification"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./application.go -package=recruitmentmocks -destination=../../mocks/application.mock.go -typed ApplicationService
type ApplicationService interface {
	// Apply 首次申请时按邮箱创建候选人，申请的初始状态为 Applied
	Apply(ctx context.Context, c domain.Candidate, a domain.Application) (domain.Application, error)
	// Transit 由 HR 发起的状态流转，Completed 只能由面试门控设置
	Transit(ctx context.Context, t domain.Transition) (bizerr.Outcome[domain.Application], error)
	Detail(ctx context.Context, id int64) (domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, int64, error)
	History(ctx context.Context, id int64) ([]domain.StatusChange, error)

	Candidate(ctx context.Context, id int64) (domain.Candidate, error)
	ListCandidates(ctx context.Context, offset, limit int) ([]domain.Candidate, int64, error)
}

type applicationService struct {
	repo repository.ApplicationRepository
	notifier
}

func NewApplicationService(repo repository.ApplicationRepository, sender notification.Sender) ApplicationService {
	return &applicationService{repo: repo, notifier: newNotifier(sender)}
}

func (s *applicationService) Apply(ctx context.Context, c domain.Candidate, a domain.Application) (domain.Application, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.Name == "" {
		return domain.Application{}, bizerr.Validation("候选人姓名不能为空")
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return domain.Application{}, bizerr.Validation("邮箱格式不正确")
	}
	if a.JobPostingID <= 0 || strings.TrimSpace(a.Position) == "" {
		return domain.Application{}, bizerr.Validation("岗位信息不能为空")
	}
	if a.FallbackScore != nil && (*a.FallbackScore < 0 || *a.FallbackScore > 5) {
		return domain.Application{}, bizerr.Validation("筛选打分必须在 0 到 5 之间")
	}
	a.Status = domain.StatusApplied
	if a.AppliedAt == 0 {
		a.AppliedAt = time.Now().UnixMilli()
	}
	_, res, err := s.repo.Apply(ctx, c, a)
	return res, err
}

func (s *applicationService) Transit(ctx context.Context, t domain.Transition) (bizerr.Outcome[domain.Application], error) {
	var out bizerr.Outcome[domain.Application]
	if !t.To.IsValid() {
		return out, bizerr.Validation("未知的申请状态 %q", t.To)
	}
	app, err := s.repo.FindApplication(ctx, t.ApplicationID)
	if err != nil {
		return out, err
	}
	if !app.Status.CanTransitTo(t.To) {
		return out, bizerr.StateConflict("申请不能从 %s 变更为 %s", app.Status, t.To)
	}
	t.From = app.Status
	if err = s.repo.Transit(ctx, t); err != nil {
		return out, err
	}
	observeTransition(t)
	app.Status = t.To
	out.Val = app

	var key notification.TemplateKey
	switch t.To {
	case domain.StatusShortlisted:
		key = notification.TemplateShortlisted
	case domain.StatusRejected:
		key = notification.TemplateRejected
	default:
		return out, nil
	}
	c, err := s.repo.FindCandidate(ctx, app.CandidateID)
	if err != nil {
		out.Warn(bizerr.Dependency(err, "查询候选人失败，未发送通知"))
		return out, nil
	}
	out.Warn(s.notify(ctx, key, c, map[string]string{
		"Position": app.Position,
		"Reason":   t.Reason,
	}))
	return out, nil
}

func (s *applicationService) Detail(ctx context.Context, id int64) (domain.Application, error) {
	return s.repo.FindApplication(ctx, id)
}

func (s *applicationService) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, int64, error) {
	var (
		eg    errgroup.Group
		apps  []domain.Application
		total int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.ListApplications(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountApplications(ctx, filter)
		return err
	})
	return apps, total, eg.Wait()
}

func (s *applicationService) History(ctx context.Context, id int64) ([]domain.StatusChange, error) {
	return s.repo.History(ctx, id)
}

func (s *applicationService) Candidate(ctx context.Context, id int64) (domain.Candidate, error) {
	return s.repo.FindCandidate(ctx, id)
}

func (s *applicationService) ListCandidates(ctx context.Context, offset, limit int) ([]domain.Candidate, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.Candidate
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = s.repo.ListCandidates(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountCandidates(ctx)
		return err
	})
	return cs, total, eg.Wait()
}
