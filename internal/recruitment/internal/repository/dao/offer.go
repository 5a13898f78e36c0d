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
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const offerPending = "Pending"

type Offer struct {
	ID               int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	SN               string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uniq_sn;comment:'offer 编号'"`
	CandidateID      int64  `gorm:"type:BIGINT;NOT NULL;index:idx_candidate_id;comment:'候选人ID'"`
	ApplicationID    int64  `gorm:"type:BIGINT;NOT NULL;index:idx_application_id;comment:'申请ID'"`
	CandidateName    string `gorm:"type:VARCHAR(255);NOT NULL;comment:'候选人姓名'"`
	Email            string `gorm:"type:VARCHAR(255);NOT NULL;comment:'候选人邮箱'"`
	Position         string `gorm:"type:VARCHAR(255);NOT NULL;comment:'岗位'"`
	Salary           string `gorm:"type:VARCHAR(128);NOT NULL;comment:'薪资'"`
	StartDate        string `gorm:"type:CHAR(10);comment:'入职日期'"`
	ExpiryDate       string `gorm:"type:CHAR(10);NOT NULL;index:idx_status_expiry,priority:2;comment:'有效期'"`
	EmploymentType   string `gorm:"type:VARCHAR(64);comment:'用工类型'"`
	Benefits         string `gorm:"type:TEXT;comment:'福利'"`
	ServiceAgreement string `gorm:"type:TEXT;comment:'服务协议'"`
	HRName           string `gorm:"type:VARCHAR(255);comment:'负责 HR'"`
	OfferDate        string `gorm:"type:CHAR(10);NOT NULL;comment:'发放日期'"`
	Status           string `gorm:"type:ENUM('Pending','Accepted','Declined','Withdrawn');NOT NULL;default:'Pending';index:idx_status_expiry,priority:1;comment:'状态'"`
	// ActiveKey 只在 Pending 时有值，保证同一候选人同一岗位只有一个未决的 offer
	ActiveKey   sql.Null[string] `gorm:"type:VARCHAR(320);uniqueIndex:uniq_active_key;comment:'候选人ID:岗位'"`
	RespondedAt int64
	Ctime       int64
	Utime       int64
}

func (Offer) TableName() string {
	return "offers"
}

func ActiveKey(candidateID int64, position string) string {
	return fmt.Sprintf("%d:%s", candidateID, position)
}

type OfferFilter struct {
	Statuses    []string
	CandidateID int64
}

type OfferDAO interface {
	// Create guard 校验申请已经完成
	Create(ctx context.Context, o Offer, guard StatusChange) (Offer, error)
	// UpdateTerms 只能修改 Pending 的 offer
	UpdateTerms(ctx context.Context, o Offer) error
	// UpdateStatus 从 Pending 流转到终态，同时释放 active_key
	UpdateStatus(ctx context.Context, id int64, to string) error
	FindByID(ctx context.Context, id int64) (Offer, error)
	List(ctx context.Context, filter OfferFilter, offset, limit int) ([]Offer, error)
	Count(ctx context.Context, filter OfferFilter) (int64, error)
	// FindExpired Pending 且有效期早于 today 的 offer
	FindExpired(ctx context.Context, today string, limit int) ([]Offer, error)
}

type GORMOfferDAO struct {
	db *egorm.Component
}

func NewGORMOfferDAO(db *egorm.Component) OfferDAO {
	return &GORMOfferDAO{db: db}
}

func (g *GORMOfferDAO) Create(ctx context.Context, o Offer, guard StatusChange) (Offer, error) {
	now := time.Now().UnixMilli()
	o.Status = offerPending
	o.ActiveKey = sql.Null[string]{V: ActiveKey(o.CandidateID, o.Position), Valid: true}
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := transit(tx, guard, now); err != nil {
			return err
		}
		err := tx.Create(&o).Error
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	})
	return o, err
}

func (g *GORMOfferDAO) UpdateTerms(ctx context.Context, o Offer) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur Offer
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status = ?", o.ID, offerPending).First(&cur).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStatusConflict
		}
		if err != nil {
			return err
		}
		err = tx.Model(&Offer{}).Where("id = ?", o.ID).Updates(map[string]any{
			"position":          o.Position,
			"salary":            o.Salary,
			"start_date":        o.StartDate,
			"expiry_date":       o.ExpiryDate,
			"employment_type":   o.EmploymentType,
			"benefits":          o.Benefits,
			"service_agreement": o.ServiceAgreement,
			"hr_name":           o.HRName,
			"active_key":        ActiveKey(cur.CandidateID, o.Position),
			"utime":             now,
		}).Error
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	})
}

func (g *GORMOfferDAO) UpdateStatus(ctx context.Context, id int64, to string) error {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Offer{}).
		Where("id = ? AND status = ?", id, offerPending).
		Updates(map[string]any{
			"status":       to,
			"active_key":   nil,
			"responded_at": now,
			"utime":        now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *GORMOfferDAO) FindByID(ctx context.Context, id int64) (Offer, error) {
	var o Offer
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (g *GORMOfferDAO) List(ctx context.Context, filter OfferFilter, offset, limit int) ([]Offer, error) {
	var res []Offer
	err := g.filter(ctx, filter).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMOfferDAO) Count(ctx context.Context, filter OfferFilter) (int64, error) {
	var count int64
	err := g.filter(ctx, filter).Count(&count).Error
	return count, err
}

func (g *GORMOfferDAO) filter(ctx context.Context, filter OfferFilter) *gorm.DB {
	query := g.db.WithContext(ctx).Model(&Offer{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.CandidateID > 0 {
		query = query.Where("candidate_id = ?", filter.CandidateID)
	}
	return query
}

func (g *GORMOfferDAO) FindExpired(ctx context.Context, today string, limit int) ([]Offer, error) {
	var res []Offer
	err := g.db.WithContext(ctx).
		Where("status = ? AND expiry_date < ?", offerPending, today).
		Order("id ASC").Limit(limit).Find(&res).Error
	return res, err
}
