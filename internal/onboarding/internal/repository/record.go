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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/repository/dao"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./record.go -package=repomocks -destination=./mocks/record.mock.go RecordRepository
type RecordRepository interface {
	Create(ctx context.Context, r domain.Record) (domain.Record, error)
	FindByID(ctx context.Context, id int64) (domain.Record, error)
	FindLatestByOffer(ctx context.Context, offerID int64) (domain.Record, error)
	FindActiveByOffer(ctx context.Context, offerID int64) (domain.Record, error)
	UpdateForm(ctx context.Context, id int64, form domain.Form) error
	Approve(ctx context.Context, id int64) error
	RaiseIssue(ctx context.Context, id int64, details string) error
	SubmitFinal(ctx context.Context, id int64, final domain.FinalDetails) error
	Complete(ctx context.Context, id int64, employeeID string) error
	List(ctx context.Context, filter domain.Filter) ([]domain.Record, error)
	Count(ctx context.Context, filter domain.Filter) (int64, error)
}

type recordRepository struct {
	dao dao.RecordDAO
}

func NewRecordRepository(d dao.RecordDAO) RecordRepository {
	return &recordRepository{dao: d}
}

func (r *recordRepository) Create(ctx context.Context, record domain.Record) (domain.Record, error) {
	res, err := r.dao.Create(ctx, r.toEntity(record))
	if err != nil {
		return domain.Record{}, toBizErr(err)
	}
	return r.toDomain(res), nil
}

func (r *recordRepository) FindByID(ctx context.Context, id int64) (domain.Record, error) {
	res, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Record{}, toBizErr(err)
	}
	return r.toDomain(res), nil
}

func (r *recordRepository) FindLatestByOffer(ctx context.Context, offerID int64) (domain.Record, error) {
	res, err := r.dao.FindLatestByOffer(ctx, offerID)
	if err != nil {
		return domain.Record{}, toBizErr(err)
	}
	return r.toDomain(res), nil
}

func (r *recordRepository) FindActiveByOffer(ctx context.Context, offerID int64) (domain.Record, error) {
	res, err := r.dao.FindActiveByOffer(ctx, offerID)
	if err != nil {
		return domain.Record{}, toBizErr(err)
	}
	return r.toDomain(res), nil
}

func (r *recordRepository) UpdateForm(ctx context.Context, id int64, form domain.Form) error {
	return toBizErr(r.dao.UpdateForm(ctx, id, r.toFormEntity(form)))
}

func (r *recordRepository) Approve(ctx context.Context, id int64) error {
	return toBizErr(r.dao.Approve(ctx, id))
}

func (r *recordRepository) RaiseIssue(ctx context.Context, id int64, details string) error {
	return toBizErr(r.dao.RaiseIssue(ctx, id, details))
}

func (r *recordRepository) SubmitFinal(ctx context.Context, id int64, final domain.FinalDetails) error {
	return toBizErr(r.dao.SubmitFinal(ctx, id, r.toFinalEntity(final)))
}

func (r *recordRepository) Complete(ctx context.Context, id int64, employeeID string) error {
	return toBizErr(r.dao.Complete(ctx, id, employeeID))
}

func (r *recordRepository) List(ctx context.Context, filter domain.Filter) ([]domain.Record, error) {
	res, err := r.dao.List(ctx, r.toFilterEntity(filter), filter.Offset, filter.Limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.Record) domain.Record {
		return r.toDomain(src)
	}), nil
}

func (r *recordRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	return r.dao.Count(ctx, r.toFilterEntity(filter))
}

func (r *recordRepository) toFilterEntity(filter domain.Filter) dao.Filter {
	return dao.Filter{
		Statuses: slice.Map(filter.Statuses, func(_ int, src domain.Status) string {
			return src.String()
		}),
		CandidateID: filter.CandidateID,
		OfferID:     filter.OfferID,
	}
}

func (r *recordRepository) toEntity(record domain.Record) dao.Record {
	return dao.Record{
		ID:          record.ID,
		OfferID:     record.OfferID,
		CandidateID: record.CandidateID,
		Name:        record.Name,
		Email:       record.Email,
		Phone:       record.Phone,
		Position:    record.Position,
		Salary:      record.Salary,
		StartDate:   record.StartDate,
		Form: sqlx.JsonColumn[dao.Form]{
			Val:   r.toFormEntity(record.Form),
			Valid: record.FormSubmitted,
		},
	}
}

func (r *recordRepository) toDomain(record dao.Record) domain.Record {
	f := record.Form.Val
	final := record.Final.Val
	return domain.Record{
		ID:          record.ID,
		OfferID:     record.OfferID,
		CandidateID: record.CandidateID,
		Name:        record.Name,
		Email:       record.Email,
		Phone:       record.Phone,
		Position:    record.Position,
		Salary:      record.Salary,
		StartDate:   record.StartDate,
		Form: domain.Form{
			PersonalNumber:    f.PersonalNumber,
			DateOfBirth:       f.DateOfBirth,
			Gender:            f.Gender,
			PANNumber:         f.PANNumber,
			AadharNumber:      f.AadharNumber,
			CurrentAddress:    f.CurrentAddress,
			PermanentAddress:  f.PermanentAddress,
			FatherName:        f.FatherName,
			FatherDOB:         f.FatherDOB,
			FatherMobile:      f.FatherMobile,
			MotherName:        f.MotherName,
			MotherDOB:         f.MotherDOB,
			MotherMobile:      f.MotherMobile,
			BankName:          f.BankName,
			AccountNumber:     f.AccountNumber,
			IFSCCode:          f.IFSCCode,
			AccountHolderName: f.AccountHolderName,
			ProfileRef:        f.ProfileRef,
			AadharRef:         f.AadharRef,
			PANRef:            f.PANRef,
			BankStatementRef:  f.BankStatementRef,
		},
		FormSubmitted:  record.FormSubmitted,
		Status:         domain.Status(record.Status),
		IssueDetails:   record.IssueDetails,
		FinalSubmitted: record.FinalSubmitted,
		Final: domain.FinalDetails{
			Reporting: domain.ReportingHierarchy{
				HR:           final.HR,
				FO:           final.FO,
				ZonalHead:    final.ZonalHead,
				RegionalHead: final.RegionalHead,
				CEO:          final.CEO,
			},
			Zone:            final.Zone,
			Region:          final.Region,
			Salary:          final.Salary,
			JoiningDate:     final.JoiningDate,
			JoiningTime:     final.JoiningTime,
			JoiningLocation: final.JoiningLocation,
		},
		ApprovedAt: record.ApprovedAt,
		EmployeeID: record.EmployeeID,
		Ctime:      record.Ctime,
		Utime:      record.Utime,
	}
}

func (r *recordRepository) toFormEntity(f domain.Form) dao.Form {
	return dao.Form{
		PersonalNumber:    f.PersonalNumber,
		DateOfBirth:       f.DateOfBirth,
		Gender:            f.Gender,
		PANNumber:         f.PANNumber,
		AadharNumber:      f.AadharNumber,
		CurrentAddress:    f.CurrentAddress,
		PermanentAddress:  f.PermanentAddress,
		FatherName:        f.FatherName,
		FatherDOB:         f.FatherDOB,
		FatherMobile:      f.FatherMobile,
		MotherName:        f.MotherName,
		MotherDOB:         f.MotherDOB,
		MotherMobile:      f.MotherMobile,
		BankName:          f.BankName,
		AccountNumber:     f.AccountNumber,
		IFSCCode:          f.IFSCCode,
		AccountHolderName: f.AccountHolderName,
		ProfileRef:        f.ProfileRef,
		AadharRef:         f.AadharRef,
		PANRef:            f.PANRef,
		BankStatementRef:  f.BankStatementRef,
	}
}

func (r *recordRepository) toFinalEntity(f domain.FinalDetails) dao.Final {
	return dao.Final{
		HR:              f.Reporting.HR,
		FO:              f.Reporting.FO,
		ZonalHead:       f.Reporting.ZonalHead,
		RegionalHead:    f.Reporting.RegionalHead,
		CEO:             f.Reporting.CEO,
		Zone:            f.Zone,
		Region:          f.Region,
		Salary:          f.Salary,
		JoiningDate:     f.JoiningDate,
		JoiningTime:     f.JoiningTime,
		JoiningLocation: f.JoiningLocation,
	}
}

func toBizErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return bizerr.NotFound("入职记录不存在")
	case errors.Is(err, dao.ErrStatusConflict):
		return bizerr.StateConflict("入职记录状态已变更，请刷新后重试")
	case errors.Is(err, dao.ErrDuplicate):
		return bizerr.StateConflict("该 offer 已经有一条进行中的入职记录")
	default:
		return err
	}
}
