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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/dao"
)

//go:generate mockgen -source=./application.go -package=repomocks -destination=mocks/application.mock.go ApplicationRepository
type ApplicationRepository interface {
	Apply(ctx context.Context, c domain.Candidate, a domain.Application) (domain.Candidate, domain.Application, error)
	FindCandidate(ctx context.Context, id int64) (domain.Candidate, error)
	FindCandidatesByIDs(ctx context.Context, ids []int64) (map[int64]domain.Candidate, error)
	ListCandidates(ctx context.Context, offset, limit int) ([]domain.Candidate, error)
	CountCandidates(ctx context.Context) (int64, error)

	FindApplication(ctx context.Context, id int64) (domain.Application, error)
	FindApplicationsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Application, error)
	FindLatestApplication(ctx context.Context, candidateID int64) (domain.Application, error)
	ListApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error)
	CountApplications(ctx context.Context, filter domain.ApplicationFilter) (int64, error)

	// Transit 条件更新申请状态并写入历史，状态不匹配返回 StateConflict
	Transit(ctx context.Context, t domain.Transition) error
	History(ctx context.Context, applicationID int64) ([]domain.StatusChange, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Apply(ctx context.Context, c domain.Candidate, a domain.Application) (domain.Candidate, domain.Application, error) {
	dc, da, err := r.dao.Apply(ctx, r.toCandidateEntity(c), r.toApplicationEntity(a))
	if err != nil {
		return domain.Candidate{}, domain.Application{}, err
	}
	return r.toCandidateDomain(dc), r.toApplicationDomain(da), nil
}

func (r *applicationRepository) FindCandidate(ctx context.Context, id int64) (domain.Candidate, error) {
	c, err := r.dao.FindCandidateByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, toBizErr(err, "候选人", "")
	}
	return r.toCandidateDomain(c), nil
}

func (r *applicationRepository) FindCandidatesByIDs(ctx context.Context, ids []int64) (map[int64]domain.Candidate, error) {
	cs, err := r.dao.FindCandidatesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Candidate, len(cs))
	for _, c := range cs {
		res[c.ID] = r.toCandidateDomain(c)
	}
	return res, nil
}

func (r *applicationRepository) ListCandidates(ctx context.Context, offset, limit int) ([]domain.Candidate, error) {
	cs, err := r.dao.ListCandidates(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(_ int, src dao.Candidate) domain.Candidate {
		return r.toCandidateDomain(src)
	}), nil
}

func (r *applicationRepository) CountCandidates(ctx context.Context) (int64, error) {
	return r.dao.CountCandidates(ctx)
}

func (r *applicationRepository) FindApplication(ctx context.Context, id int64) (domain.Application, error) {
	a, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, toBizErr(err, "申请", "")
	}
	return r.toApplicationDomain(a), nil
}

func (r *applicationRepository) FindApplicationsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Application, error) {
	as, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Application, len(as))
	for _, a := range as {
		res[a.ID] = r.toApplicationDomain(a)
	}
	return res, nil
}

func (r *applicationRepository) FindLatestApplication(ctx context.Context, candidateID int64) (domain.Application, error) {
	a, err := r.dao.FindLatestByCandidateID(ctx, candidateID)
	if err != nil {
		return domain.Application{}, toBizErr(err, "候选人的申请", "")
	}
	return r.toApplicationDomain(a), nil
}

func (r *applicationRepository) ListApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	as, err := r.dao.List(ctx, r.toFilterEntity(filter), filter.Offset, filter.Limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(_ int, src dao.Application) domain.Application {
		return r.toApplicationDomain(src)
	}), nil
}

func (r *applicationRepository) CountApplications(ctx context.Context, filter domain.ApplicationFilter) (int64, error) {
	return r.dao.Count(ctx, r.toFilterEntity(filter))
}

func (r *applicationRepository) Transit(ctx context.Context, t domain.Transition) error {
	return toBizErr(r.dao.Transit(ctx, toStatusChange(t)), "申请", "")
}

func (r *applicationRepository) History(ctx context.Context, applicationID int64) ([]domain.StatusChange, error) {
	hs, err := r.dao.FindHistory(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return slice.Map(hs, func(_ int, src dao.ApplicationHistory) domain.StatusChange {
		return domain.StatusChange{
			ID:            src.ID,
			ApplicationID: src.ApplicationID,
			From:          domain.ApplicationStatus(src.FromStatus),
			To:            domain.ApplicationStatus(src.ToStatus),
			Actor:         src.Actor,
			Reason:        src.Reason,
			Ctime:         src.Ctime,
		}
	}), nil
}

func toStatusChange(t domain.Transition) dao.StatusChange {
	return dao.StatusChange{
		ApplicationID: t.ApplicationID,
		From:          t.From.String(),
		To:            t.To.String(),
		Actor:         t.Actor,
		Reason:        t.Reason,
	}
}

func (r *applicationRepository) toFilterEntity(f domain.ApplicationFilter) dao.ApplicationFilter {
	return dao.ApplicationFilter{
		Statuses: slice.Map(f.Statuses, func(_ int, src domain.ApplicationStatus) string {
			return src.String()
		}),
		CandidateID:  f.CandidateID,
		JobPostingID: f.JobPostingID,
		AppliedFrom:  f.AppliedFrom,
		AppliedTo:    f.AppliedTo,
	}
}

func (r *applicationRepository) toCandidateEntity(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		ResumeRef: c.ResumeRef,
	}
}

func (r *applicationRepository) toCandidateDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		ResumeRef: c.ResumeRef,
		Ctime:     c.Ctime,
		Utime:     c.Utime,
	}
}

func (r *applicationRepository) toApplicationEntity(a domain.Application) dao.Application {
	v, valid := nullFloat(a.FallbackScore)
	return dao.Application{
		ID:            a.ID,
		CandidateID:   a.CandidateID,
		JobPostingID:  a.JobPostingID,
		Position:      a.Position,
		CoverLetter:   a.CoverLetter,
		Status:        a.Status.String(),
		AppliedAt:     a.AppliedAt,
		FallbackScore: sql.Null[float64]{V: v, Valid: valid},
	}
}

func (r *applicationRepository) toApplicationDomain(a dao.Application) domain.Application {
	return domain.Application{
		ID:            a.ID,
		CandidateID:   a.CandidateID,
		JobPostingID:  a.JobPostingID,
		Position:      a.Position,
		CoverLetter:   a.CoverLetter,
		Status:        domain.ApplicationStatus(a.Status),
		AppliedAt:     a.AppliedAt,
		FallbackScore: floatPtr(a.FallbackScore.V, a.FallbackScore.Valid),
		Ctime:         a.Ctime,
		Utime:         a.Utime,
	}
}
