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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/dao"
)

const duplicateOffer = "该候选人在这个岗位上已经有一个待回复的 offer"

//go:generate mockgen -source=./offer.go -package=repomocks -destination=mocks/offer.mock.go OfferRepository
type OfferRepository interface {
	// Create guard 用来校验申请已经完成
	Create(ctx context.Context, o domain.Offer, guard domain.Transition) (domain.Offer, error)
	UpdateTerms(ctx context.Context, id int64, terms domain.OfferTerms) error
	UpdateStatus(ctx context.Context, id int64, to domain.OfferStatus) error
	FindByID(ctx context.Context, id int64) (domain.Offer, error)
	List(ctx context.Context, filter domain.OfferFilter) ([]domain.Offer, error)
	Count(ctx context.Context, filter domain.OfferFilter) (int64, error)
	FindExpired(ctx context.Context, today string, limit int) ([]domain.Offer, error)
}

type offerRepository struct {
	dao dao.OfferDAO
}

func NewOfferRepository(d dao.OfferDAO) OfferRepository {
	return &offerRepository{dao: d}
}

func (r *offerRepository) Create(ctx context.Context, o domain.Offer, guard domain.Transition) (domain.Offer, error) {
	res, err := r.dao.Create(ctx, r.toEntity(o), toStatusChange(guard))
	if err != nil {
		return domain.Offer{}, toBizErr(err, "申请", duplicateOffer)
	}
	return r.toDomain(res), nil
}

func (r *offerRepository) UpdateTerms(ctx context.Context, id int64, terms domain.OfferTerms) error {
	o := r.toEntity(domain.Offer{ID: id, Terms: terms})
	return toBizErr(r.dao.UpdateTerms(ctx, o), "offer ", duplicateOffer)
}

func (r *offerRepository) UpdateStatus(ctx context.Context, id int64, to domain.OfferStatus) error {
	return toBizErr(r.dao.UpdateStatus(ctx, id, to.String()), "offer ", "")
}

func (r *offerRepository) FindByID(ctx context.Context, id int64) (domain.Offer, error) {
	res, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Offer{}, toBizErr(err, "offer ", "")
	}
	return r.toDomain(res), nil
}

func (r *offerRepository) List(ctx context.Context, filter domain.OfferFilter) ([]domain.Offer, error) {
	res, err := r.dao.List(ctx, r.toFilterEntity(filter), filter.Offset, filter.Limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(res), nil
}

func (r *offerRepository) Count(ctx context.Context, filter domain.OfferFilter) (int64, error) {
	return r.dao.Count(ctx, r.toFilterEntity(filter))
}

func (r *offerRepository) FindExpired(ctx context.Context, today string, limit int) ([]domain.Offer, error) {
	res, err := r.dao.FindExpired(ctx, today, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(res), nil
}

func (r *offerRepository) toFilterEntity(f domain.OfferFilter) dao.OfferFilter {
	return dao.OfferFilter{
		Statuses: slice.Map(f.Statuses, func(_ int, src domain.OfferStatus) string {
			return src.String()
		}),
		CandidateID: f.CandidateID,
	}
}

func (r *offerRepository) toDomains(os []dao.Offer) []domain.Offer {
	return slice.Map(os, func(_ int, src dao.Offer) domain.Offer {
		return r.toDomain(src)
	})
}

func (r *offerRepository) toEntity(o domain.Offer) dao.Offer {
	return dao.Offer{
		ID:               o.ID,
		SN:               o.SN,
		CandidateID:      o.CandidateID,
		ApplicationID:    o.ApplicationID,
		CandidateName:    o.CandidateName,
		Email:            o.Email,
		Position:         o.Terms.Position,
		Salary:           o.Terms.Salary,
		StartDate:        o.Terms.StartDate,
		ExpiryDate:       o.Terms.ExpiryDate,
		EmploymentType:   o.Terms.EmploymentType,
		Benefits:         o.Terms.Benefits,
		ServiceAgreement: o.Terms.ServiceAgreement,
		HRName:           o.Terms.HRName,
		OfferDate:        o.OfferDate,
		Status:           o.Status.String(),
	}
}

func (r *offerRepository) toDomain(o dao.Offer) domain.Offer {
	return domain.Offer{
		ID:            o.ID,
		SN:            o.SN,
		CandidateID:   o.CandidateID,
		ApplicationID: o.ApplicationID,
		CandidateName: o.CandidateName,
		Email:         o.Email,
		Terms: domain.OfferTerms{
			Position:         o.Position,
			Salary:           o.Salary,
			StartDate:        o.StartDate,
			ExpiryDate:       o.ExpiryDate,
			EmploymentType:   o.EmploymentType,
			Benefits:         o.Benefits,
			ServiceAgreement: o.ServiceAgreement,
			HRName:           o.HRName,
		},
		OfferDate:   o.OfferDate,
		Status:      domain.OfferStatus(o.Status),
		RespondedAt: o.RespondedAt,
		Ctime:       o.Ctime,
		Utime:       o.Utime,
	}
}
