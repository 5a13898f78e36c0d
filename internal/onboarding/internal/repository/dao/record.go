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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

const (
	statusPending   = "pending"
	statusApproved  = "approved"
	statusIssue     = "issue"
	statusOnboarded = "onboarded"
)

type Record struct {
	ID          int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	OfferID     int64  `gorm:"type:BIGINT;NOT NULL;index:idx_offer_id;comment:'offer ID'"`
	CandidateID int64  `gorm:"type:BIGINT;NOT NULL;index:idx_candidate_id;comment:'候选人ID'"`
	Name        string `gorm:"type:VARCHAR(255);NOT NULL;comment:'姓名'"`
	Email       string `gorm:"type:VARCHAR(255);NOT NULL;comment:'邮箱'"`
	Phone       string `gorm:"type:VARCHAR(32);comment:'手机号'"`
	Position    string `gorm:"type:VARCHAR(255);NOT NULL;comment:'岗位'"`
	Salary      string `gorm:"type:VARCHAR(128);comment:'offer 上的薪资'"`
	StartDate   string `gorm:"type:CHAR(10);comment:'offer 上的入职日期'"`

	Form           sqlx.JsonColumn[Form]  `gorm:"type:JSON;comment:'入职资料'"`
	FormSubmitted  bool                   `gorm:"type:BOOLEAN;NOT NULL;default:false;comment:'候选人是否已经提交入职资料'"`
	Status         string                 `gorm:"type:ENUM('pending','approved','issue','onboarded');NOT NULL;default:'pending';index:idx_status;comment:'状态'"`
	IssueDetails   string                 `gorm:"type:TEXT;comment:'问题描述，只在 issue 状态下有值'"`
	FinalSubmitted bool                   `gorm:"type:BOOLEAN;NOT NULL;default:false;comment:'是否已经提交最终信息'"`
	Final          sqlx.JsonColumn[Final] `gorm:"type:JSON;comment:'组织和报到信息'"`
	ApprovedAt     int64                  `gorm:"type:BIGINT;comment:'审批时间'"`
	EmployeeID     string                 `gorm:"type:VARCHAR(64);comment:'目录服务分配的员工编号'"`
	// ActiveKey 非 issue 状态下等于 offer ID，保证一个 offer 同时只有一条有效记录
	ActiveKey sql.Null[int64] `gorm:"type:BIGINT;uniqueIndex:uniq_active_key;comment:'offer ID'"`
	Ctime     int64
	Utime     int64
}

func (Record) TableName() string {
	return "onboarding_records"
}

type Form struct {
	PersonalNumber    string `json:"personalNumber"`
	DateOfBirth       string `json:"dateOfBirth"`
	Gender            string `json:"gender"`
	PANNumber         string `json:"panNumber"`
	AadharNumber      string `json:"aadharNumber"`
	CurrentAddress    string `json:"currentAddress"`
	PermanentAddress  string `json:"permanentAddress"`
	FatherName        string `json:"fatherName"`
	FatherDOB         string `json:"fatherDob"`
	FatherMobile      string `json:"fatherMobile"`
	MotherName        string `json:"motherName"`
	MotherDOB         string `json:"motherDob"`
	MotherMobile      string `json:"motherMobile"`
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
	ProfileRef        string `json:"profileRef"`
	AadharRef         string `json:"aadharRef"`
	PANRef            string `json:"panRef"`
	BankStatementRef  string `json:"bankStatementRef"`
}

type Final struct {
	HR              string `json:"hr"`
	FO              string `json:"fo"`
	ZonalHead       string `json:"zonalHead"`
	RegionalHead    string `json:"regionalHead"`
	CEO             string `json:"ceo"`
	Zone            string `json:"zone"`
	Region          string `json:"region"`
	Salary          string `json:"salary"`
	JoiningDate     string `json:"joiningDate"`
	JoiningTime     string `json:"joiningTime"`
	JoiningLocation string `json:"joiningLocation"`
}

type Filter struct {
	Statuses    []string
	CandidateID int64
	OfferID     int64
}

type RecordDAO interface {
	// Create 新建 pending 记录，同一个 offer 已经有有效记录时返回 ErrDuplicate
	Create(ctx context.Context, r Record) (Record, error)
	FindByID(ctx context.Context, id int64) (Record, error)
	// FindLatestByOffer 同一个 offer 最新的一条记录
	FindLatestByOffer(ctx context.Context, offerID int64) (Record, error)
	FindActiveByOffer(ctx context.Context, offerID int64) (Record, error)
	UpdateForm(ctx context.Context, id int64, form Form) error
	Approve(ctx context.Context, id int64) error
	// RaiseIssue 同时释放 active_key，候选人才能重新提交
	RaiseIssue(ctx context.Context, id int64, details string) error
	SubmitFinal(ctx context.Context, id int64, final Final) error
	Complete(ctx context.Context, id int64, employeeID string) error
	List(ctx context.Context, filter Filter, offset, limit int) ([]Record, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

type GORMRecordDAO struct {
	db *egorm.Component
}

func NewGORMRecordDAO(db *egorm.Component) RecordDAO {
	return &GORMRecordDAO{db: db}
}

func (g *GORMRecordDAO) Create(ctx context.Context, r Record) (Record, error) {
	now := time.Now().UnixMilli()
	r.Status = statusPending
	r.ActiveKey = sql.Null[int64]{V: r.OfferID, Valid: true}
	r.FormSubmitted = r.Form.Valid
	r.Ctime, r.Utime = now, now
	err := g.db.WithContext(ctx).Create(&r).Error
	if isDuplicate(err) {
		return Record{}, ErrDuplicate
	}
	return r, err
}

func (g *GORMRecordDAO) FindByID(ctx context.Context, id int64) (Record, error) {
	var r Record
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (g *GORMRecordDAO) FindLatestByOffer(ctx context.Context, offerID int64) (Record, error) {
	var r Record
	err := g.db.WithContext(ctx).Where("offer_id = ?", offerID).
		Order("id DESC").First(&r).Error
	return r, err
}

func (g *GORMRecordDAO) FindActiveByOffer(ctx context.Context, offerID int64) (Record, error) {
	var r Record
	err := g.db.WithContext(ctx).Where("active_key = ?", offerID).First(&r).Error
	return r, err
}

func (g *GORMRecordDAO) UpdateForm(ctx context.Context, id int64, form Form) error {
	return g.cas(g.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, statusPending), map[string]any{
		"form":           sqlx.JsonColumn[Form]{Val: form, Valid: true},
		"form_submitted": true,
	})
}

// Approve 候选人没有提交资料的记录不能审批
func (g *GORMRecordDAO) Approve(ctx context.Context, id int64) error {
	return g.cas(g.db.WithContext(ctx).
		Where("id = ? AND status = ? AND form_submitted = ?", id, statusPending, true), map[string]any{
		"status":      statusApproved,
		"approved_at": time.Now().UnixMilli(),
	})
}

func (g *GORMRecordDAO) RaiseIssue(ctx context.Context, id int64, details string) error {
	return g.cas(g.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, statusPending), map[string]any{
		"status":        statusIssue,
		"issue_details": details,
		"active_key":    nil,
	})
}

func (g *GORMRecordDAO) SubmitFinal(ctx context.Context, id int64, final Final) error {
	return g.cas(g.db.WithContext(ctx).
		Where("id = ? AND status = ? AND final_submitted = ?", id, statusApproved, false), map[string]any{
		"final_submitted": true,
		"final":           sqlx.JsonColumn[Final]{Val: final, Valid: true},
	})
}

func (g *GORMRecordDAO) Complete(ctx context.Context, id int64, employeeID string) error {
	return g.cas(g.db.WithContext(ctx).
		Where("id = ? AND status = ? AND final_submitted = ?", id, statusApproved, true), map[string]any{
		"status":      statusOnboarded,
		"employee_id": employeeID,
	})
}

// cas 条件更新，没有命中任何行说明状态已经被别人改过
func (g *GORMRecordDAO) cas(query *gorm.DB, updates map[string]any) error {
	updates["utime"] = time.Now().UnixMilli()
	res := query.Model(&Record{}).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *GORMRecordDAO) List(ctx context.Context, filter Filter, offset, limit int) ([]Record, error) {
	var res []Record
	err := g.filter(ctx, filter).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMRecordDAO) Count(ctx context.Context, filter Filter) (int64, error) {
	var count int64
	err := g.filter(ctx, filter).Count(&count).Error
	return count, err
}

func (g *GORMRecordDAO) filter(ctx context.Context, filter Filter) *gorm.DB {
	query := g.db.WithContext(ctx).Model(&Record{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.CandidateID > 0 {
		query = query.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.OfferID > 0 {
		query = query.Where("offer_id = ?", filter.OfferID)
	}
	return query
}
