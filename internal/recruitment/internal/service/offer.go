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
	"strings"
	"time"

	"github.com/ecodeclub/hrportal/internal/notification"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/pkg/sequencenumber"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/event"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// DefaultOfferValidity 没有指定有效期时 offer 的有效天数
const DefaultOfferValidity = 7

//go:generate mockgen -source=./offer.go -package=recruitmentmocks -destination=../../mocks/offer.mock.go -typed OfferService
type OfferService interface {
	// Create 申请必须已经完成，同一个候选人同一个岗位只能有一个待回复的 offer
	Create(ctx context.Context, candidateID int64, terms domain.OfferTerms, actor int64) (bizerr.Outcome[domain.Offer], error)
	Update(ctx context.Context, id int64, terms domain.OfferTerms) (domain.Offer, error)
	// Respond 接受之后发送 OfferAcceptedEvent。重复提交同样的回复会重新发送事件
	Respond(ctx context.Context, id int64, resp domain.OfferResponse) (bizerr.Outcome[domain.Offer], error)
	// Withdraw 已经撤回的 offer 再次撤回什么也不做
	Withdraw(ctx context.Context, id int64) (domain.Offer, error)
	Detail(ctx context.Context, id int64) (domain.Offer, error)
	List(ctx context.Context, filter domain.OfferFilter) ([]domain.Offer, int64, error)
	// ExpirePending 撤回所有在 today 之前过期的待回复 offer，返回撤回的数量
	ExpirePending(ctx context.Context, today string, batchSize int) (int, error)
}

type offerService struct {
	appRepo   repository.ApplicationRepository
	offerRepo repository.OfferRepository
	producer  event.OfferAcceptedEventProducer
	sn        *sequencenumber.Generator
	notifier
}

func NewOfferService(appRepo repository.ApplicationRepository,
	offerRepo repository.OfferRepository,
	producer event.OfferAcceptedEventProducer,
	sender notification.Sender) OfferService {
	return &offerService{
		appRepo:   appRepo,
		offerRepo: offerRepo,
		producer:  producer,
		sn:        sequencenumber.NewGenerator("OF"),
		notifier:  newNotifier(sender),
	}
}

func (s *offerService) Create(ctx context.Context, candidateID int64, terms domain.OfferTerms, actor int64) (bizerr.Outcome[domain.Offer], error) {
	var out bizerr.Outcome[domain.Offer]
	today := time.Now().Format(domain.DateLayout)
	if strings.TrimSpace(terms.ExpiryDate) == "" {
		terms.ExpiryDate = time.Now().AddDate(0, 0, DefaultOfferValidity).Format(domain.DateLayout)
	}
	app, err := s.appRepo.FindLatestApplication(ctx, candidateID)
	if err != nil {
		return out, err
	}
	if strings.TrimSpace(terms.Position) == "" {
		terms.Position = app.Position
	}
	if err = s.validateTerms(&terms, today); err != nil {
		return out, err
	}
	if app.Status != domain.StatusCompleted {
		return out, bizerr.StateConflict("申请当前状态为 %s，完成全部面试之后才能发放 offer", app.Status)
	}
	c, err := s.appRepo.FindCandidate(ctx, candidateID)
	if err != nil {
		return out, err
	}
	o, err := s.offerRepo.Create(ctx, domain.Offer{
		SN:            s.sn.Generate(candidateID),
		CandidateID:   candidateID,
		ApplicationID: app.ID,
		CandidateName: c.Name,
		Email:         c.Email,
		Terms:         terms,
		OfferDate:     today,
	}, domain.Transition{
		ApplicationID: app.ID,
		From:          domain.StatusCompleted,
		To:            domain.StatusCompleted,
		Actor:         actor,
	})
	if err != nil {
		return out, err
	}
	out.Val = o
	out.Warn(s.notify(ctx, notification.TemplateOfferCreated, c, map[string]string{
		"SN":         o.SN,
		"Position":   o.Terms.Position,
		"Salary":     o.Terms.Salary,
		"StartDate":  o.Terms.StartDate,
		"ExpiryDate": o.Terms.ExpiryDate,
		"HRName":     o.Terms.HRName,
	}))
	return out, nil
}

func (s *offerService) validateTerms(terms *domain.OfferTerms, offerDate string) error {
	terms.Position = strings.TrimSpace(terms.Position)
	terms.Salary = strings.TrimSpace(terms.Salary)
	if terms.Position == "" {
		return bizerr.Validation("岗位不能为空")
	}
	if terms.Salary == "" {
		return bizerr.Validation("薪资不能为空")
	}
	if _, err := time.Parse(domain.DateLayout, terms.ExpiryDate); err != nil {
		return bizerr.Validation("有效期格式必须是 YYYY-MM-DD")
	}
	// 同样格式的日期可以直接按字符串比较
	if terms.ExpiryDate < offerDate {
		return bizerr.Validation("有效期不能早于发放日期 %s", offerDate)
	}
	if terms.StartDate != "" {
		if _, err := time.Parse(domain.DateLayout, terms.StartDate); err != nil {
			return bizerr.Validation("入职日期格式必须是 YYYY-MM-DD")
		}
	}
	return nil
}

func (s *offerService) Update(ctx context.Context, id int64, terms domain.OfferTerms) (domain.Offer, error) {
	o, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Offer{}, err
	}
	if strings.TrimSpace(terms.ExpiryDate) == "" {
		terms.ExpiryDate = o.Terms.ExpiryDate
	}
	if err = s.validateTerms(&terms, o.OfferDate); err != nil {
		return domain.Offer{}, err
	}
	if o.Status != domain.OfferPending {
		return domain.Offer{}, bizerr.StateConflict("offer 当前状态为 %s，不能修改", o.Status)
	}
	if err = s.offerRepo.UpdateTerms(ctx, id, terms); err != nil {
		return domain.Offer{}, err
	}
	return s.offerRepo.FindByID(ctx, id)
}

func (s *offerService) Respond(ctx context.Context, id int64, resp domain.OfferResponse) (bizerr.Outcome[domain.Offer], error) {
	var out bizerr.Outcome[domain.Offer]
	to, ok := resp.Status()
	if !ok {
		return out, bizerr.Validation("未知的回复 %q", resp)
	}
	o, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return out, err
	}
	switch o.Status {
	case to:
		// 重复提交，只需要补发事件
	case domain.OfferPending:
		o, err = s.transit(ctx, o, to)
		if err != nil {
			return out, err
		}
	default:
		return out, bizerr.StateConflict("offer 当前状态为 %s，不能再回复", o.Status)
	}
	out.Val = o
	if to == domain.OfferAccepted {
		out.Warn(s.publishAccepted(ctx, o))
	}
	return out, nil
}

func (s *offerService) publishAccepted(ctx context.Context, o domain.Offer) *bizerr.Error {
	evt := event.OfferAcceptedEvent{
		OfferID:       o.ID,
		SN:            o.SN,
		CandidateID:   o.CandidateID,
		ApplicationID: o.ApplicationID,
		Name:          o.CandidateName,
		Email:         o.Email,
		Position:      o.Terms.Position,
		Salary:        o.Terms.Salary,
		StartDate:     o.Terms.StartDate,
		AcceptedAt:    o.RespondedAt,
	}
	if c, err := s.appRepo.FindCandidate(ctx, o.CandidateID); err == nil {
		evt.Phone = c.Phone
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送 offer 接受事件失败",
			elog.Int64("offerId", o.ID),
			elog.FieldErr(err))
		return bizerr.Dependency(err, "入职流程未能启动，请重新提交接受")
	}
	return nil
}

func (s *offerService) Withdraw(ctx context.Context, id int64) (domain.Offer, error) {
	o, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Offer{}, err
	}
	switch o.Status {
	case domain.OfferWithdrawn:
		return o, nil
	case domain.OfferPending:
	default:
		return domain.Offer{}, bizerr.StateConflict("offer 当前状态为 %s，不能撤回", o.Status)
	}
	return s.transit(ctx, o, domain.OfferWithdrawn)
}

// transit 把待回复的 offer 改成 to。
// 并发时另一个请求（或者过期任务）可能已经把状态改成了同样的 to，这种情况按成功处理
func (s *offerService) transit(ctx context.Context, o domain.Offer, to domain.OfferStatus) (domain.Offer, error) {
	err := s.offerRepo.UpdateStatus(ctx, o.ID, to)
	switch {
	case err == nil:
		o.Status = to
		o.RespondedAt = time.Now().UnixMilli()
		return o, nil
	case errors.Is(err, bizerr.ErrStateConflict):
		cur, er := s.offerRepo.FindByID(ctx, o.ID)
		if er != nil {
			return domain.Offer{}, er
		}
		if cur.Status == to {
			return cur, nil
		}
		return domain.Offer{}, bizerr.StateConflict("offer 当前状态为 %s", cur.Status)
	default:
		return domain.Offer{}, err
	}
}

func (s *offerService) Detail(ctx context.Context, id int64) (domain.Offer, error) {
	return s.offerRepo.FindByID(ctx, id)
}

func (s *offerService) List(ctx context.Context, filter domain.OfferFilter) ([]domain.Offer, int64, error) {
	var (
		eg     errgroup.Group
		offers []domain.Offer
		total  int64
	)
	eg.Go(func() error {
		var err error
		offers, err = s.offerRepo.List(ctx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.offerRepo.Count(ctx, filter)
		return err
	})
	return offers, total, eg.Wait()
}

func (s *offerService) ExpirePending(ctx context.Context, today string, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}
	cnt := 0
	for {
		offers, err := s.offerRepo.FindExpired(ctx, today, batchSize)
		if err != nil {
			return cnt, err
		}
		for _, o := range offers {
			err = s.offerRepo.UpdateStatus(ctx, o.ID, domain.OfferWithdrawn)
			switch {
			case err == nil:
				cnt++
			case errors.Is(err, bizerr.ErrStateConflict):
				// 候选人刚好在这时回复了
			default:
				return cnt, err
			}
		}
		if len(offers) < batchSize {
			return cnt, nil
		}
	}
}
