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

package domain

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	// StatusIssue 本轮审核结束，候选人需要重新提交
	StatusIssue     Status = "issue"
	StatusOnboarded Status = "onboarded"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusIssue, StatusOnboarded:
		return true
	default:
		return false
	}
}

// AcceptedOffer 候选人接受的 offer，入职记录从这里开始
type AcceptedOffer struct {
	OfferID       int64
	SN            string
	CandidateID   int64
	ApplicationID int64
	Name          string
	Email         string
	Phone         string
	Position      string
	Salary        string
	StartDate     string
	AcceptedAt    int64
}

// Form 候选人填写的入职资料，附件都是文档服务里的引用
type Form struct {
	PersonalNumber   string
	DateOfBirth      string
	Gender           string
	PANNumber        string
	AadharNumber     string
	CurrentAddress   string
	PermanentAddress string

	FatherName   string
	FatherDOB    string
	FatherMobile string
	MotherName   string
	MotherDOB    string
	MotherMobile string

	BankName          string
	AccountNumber     string
	IFSCCode          string
	AccountHolderName string

	ProfileRef       string
	AadharRef        string
	PANRef           string
	BankStatementRef string
}

// Attachments 非空的附件引用
func (f Form) Attachments() []string {
	res := make([]string, 0, 4)
	for _, ref := range []string{f.ProfileRef, f.AadharRef, f.PANRef, f.BankStatementRef} {
		if ref != "" {
			res = append(res, ref)
		}
	}
	return res
}

type ReportingHierarchy struct {
	HR           string
	FO           string
	ZonalHead    string
	RegionalHead string
	CEO          string
}

// FinalDetails 审批通过之后 HR 补充的组织和报到信息
type FinalDetails struct {
	Reporting       ReportingHierarchy
	Zone            string
	Region          string
	Salary          string
	JoiningDate     string
	JoiningTime     string
	JoiningLocation string
}

type Record struct {
	ID          int64
	OfferID     int64
	CandidateID int64
	Name        string
	Email       string
	Phone       string
	Position    string
	Salary      string
	StartDate   string

	Form Form
	// FormSubmitted 候选人提交过资料之后才能审批
	FormSubmitted bool
	Status        Status
	IssueDetails  string
	// FinalSubmitted 只能在 approved 状态下置为 true
	FinalSubmitted bool
	Final          FinalDetails
	ApprovedAt     int64
	EmployeeID     string
	Ctime          int64
	Utime          int64
}

// CanComplete onboarded 的前提是审批通过并且已经提交最终信息
func (r Record) CanComplete() bool {
	return r.Status == StatusApproved && r.FinalSubmitted
}

func (r Record) OnboardedAt() int64 {
	if r.Status != StatusOnboarded {
		return 0
	}
	return r.Utime
}

type Filter struct {
	Statuses    []Status
	CandidateID int64
	OfferID     int64
	Offset      int
	Limit       int
}

// ValidDate 判断 YYYY-MM-DD 格式
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
