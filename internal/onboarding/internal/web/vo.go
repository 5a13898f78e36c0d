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

package web

import (
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
)

type ErrorVO struct {
	Kind string `json:"kind"`
}

type WarningVO struct {
	Kind string `json:"kind"`
	Msg  string `json:"msg"`
}

type OutcomeVO struct {
	Entity   RecordVO    `json:"entity"`
	Warnings []WarningVO `json:"warnings,omitempty"`
}

func newOutcomeVO(out bizerr.Outcome[domain.Record]) OutcomeVO {
	return OutcomeVO{
		Entity: newRecordVO(out.Val),
		Warnings: slice.Map(out.Warnings, func(_ int, src *bizerr.Error) WarningVO {
			return WarningVO{Kind: src.Kind.String(), Msg: src.Msg}
		}),
	}
}

type IDReq struct {
	ID int64 `json:"id"`
}

// CommandReq 会修改入职记录的操作，requestId 用于去重
type CommandReq struct {
	RequestID string `json:"requestId"`
	ID        int64  `json:"id"`
}

type ListReq struct {
	Statuses    []string `json:"statuses"`
	CandidateID int64    `json:"candidateId"`
	OfferID     int64    `json:"offerId"`
	Offset      int      `json:"offset"`
	Limit       int      `json:"limit"`
}

func (req ListReq) toDomain() (domain.Filter, error) {
	filter := domain.Filter{
		CandidateID: req.CandidateID,
		OfferID:     req.OfferID,
		Offset:      req.Offset,
		Limit:       req.Limit,
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultLimit
	case filter.Limit > maxLimit:
		filter.Limit = maxLimit
	}
	for _, s := range req.Statuses {
		status := domain.Status(s)
		if !status.IsValid() {
			return domain.Filter{}, bizerr.Validation("未知的入职状态 %q", s)
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	return filter, nil
}

type FormVO struct {
	PersonalNumber   string `json:"personalNumber"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	PANNumber        string `json:"panNumber"`
	AadharNumber     string `json:"aadharNumber"`
	CurrentAddress   string `json:"currentAddress"`
	PermanentAddress string `json:"permanentAddress"`

	FatherName   string `json:"fatherName"`
	FatherDOB    string `json:"fatherDob"`
	FatherMobile string `json:"fatherMobile"`
	MotherName   string `json:"motherName"`
	MotherDOB    string `json:"motherDob"`
	MotherMobile string `json:"motherMobile"`

	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`

	ProfileRef       string `json:"profileRef"`
	AadharRef        string `json:"aadharRef"`
	PANRef           string `json:"panRef"`
	BankStatementRef string `json:"bankStatementRef"`
}

func (f FormVO) toDomain() domain.Form {
	return domain.Form(f)
}

func newFormVO(f domain.Form) FormVO {
	return FormVO(f)
}

type SubmitFormReq struct {
	ID   int64  `json:"id"`
	Form FormVO `json:"form"`
}

// ResubmitReq 被退回之后按 offer 重新提交
type ResubmitReq struct {
	RequestID string `json:"requestId"`
	OfferID   int64  `json:"offerId"`
	Form      FormVO `json:"form"`
}

type RaiseIssueReq struct {
	RequestID string `json:"requestId"`
	ID        int64  `json:"id"`
	Details   string `json:"details"`
}

type ReportingVO struct {
	HR           string `json:"hr"`
	FO           string `json:"fo"`
	ZonalHead    string `json:"zonalHead"`
	RegionalHead string `json:"regionalHead"`
	CEO          string `json:"ceo"`
}

type FinalDetailsVO struct {
	Reporting       ReportingVO `json:"reporting"`
	Zone            string      `json:"zone"`
	Region          string      `json:"region"`
	Salary          string      `json:"salary"`
	JoiningDate     string      `json:"joiningDate"`
	JoiningTime     string      `json:"joiningTime"`
	JoiningLocation string      `json:"joiningLocation"`
}

func (d FinalDetailsVO) toDomain() domain.FinalDetails {
	return domain.FinalDetails{
		Reporting:       domain.ReportingHierarchy(d.Reporting),
		Zone:            d.Zone,
		Region:          d.Region,
		Salary:          d.Salary,
		JoiningDate:     d.JoiningDate,
		JoiningTime:     d.JoiningTime,
		JoiningLocation: d.JoiningLocation,
	}
}

type FinalOnboardReq struct {
	RequestID string         `json:"requestId"`
	ID        int64          `json:"id"`
	Details   FinalDetailsVO `json:"details"`
}

type RecordVO struct {
	ID             int64           `json:"id"`
	OfferID        int64           `json:"offerId"`
	CandidateID    int64           `json:"candidateId"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Position       string          `json:"position"`
	Salary         string          `json:"salary"`
	StartDate      string          `json:"startDate"`
	Form           FormVO          `json:"form"`
	FormSubmitted  bool            `json:"formSubmitted"`
	Status         string          `json:"status"`
	IssueDetails   string          `json:"issueDetails,omitempty"`
	FinalSubmitted bool            `json:"finalOnboardSubmitted"`
	Final          *FinalDetailsVO `json:"final,omitempty"`
	ApprovedAt     string          `json:"approvedAt,omitempty"`
	EmployeeID     string          `json:"employeeId,omitempty"`
	Ctime          string          `json:"ctime"`
	Utime          string          `json:"utime"`
}

func newRecordVO(r domain.Record) RecordVO {
	vo := RecordVO{
		ID:             r.ID,
		OfferID:        r.OfferID,
		CandidateID:    r.CandidateID,
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Position:       r.Position,
		Salary:         r.Salary,
		StartDate:      r.StartDate,
		Form:           newFormVO(r.Form),
		FormSubmitted:  r.FormSubmitted,
		Status:         r.Status.String(),
		IssueDetails:   r.IssueDetails,
		FinalSubmitted: r.FinalSubmitted,
		ApprovedAt:     formatMilli(r.ApprovedAt),
		EmployeeID:     r.EmployeeID,
		Ctime:          formatMilli(r.Ctime),
		Utime:          formatMilli(r.Utime),
	}
	if r.FinalSubmitted {
		vo.Final = &FinalDetailsVO{
			Reporting:       ReportingVO(r.Final.Reporting),
			Zone:            r.Final.Zone,
			Region:          r.Final.Region,
			Salary:          r.Final.Salary,
			JoiningDate:     r.Final.JoiningDate,
			JoiningTime:     r.Final.JoiningTime,
			JoiningLocation: r.Final.JoiningLocation,
		}
	}
	return vo
}

type RecordList struct {
	Total   int64      `json:"total"`
	Records []RecordVO `json:"records"`
}

func formatMilli(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).Format(time.RFC3339)
}
