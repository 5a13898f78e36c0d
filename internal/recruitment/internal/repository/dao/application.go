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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Candidate struct {
	ID        int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	Name      string `gorm:"type:VARCHAR(255);NOT NULL;comment:'姓名'"`
	Email     string `gorm:"type:VARCHAR(255);NOT NULL;uniqueIndex:uniq_email;comment:'邮箱，用来识别同一个候选人'"`
	Phone     string `gorm:"type:VARCHAR(32);comment:'手机号'"`
	ResumeRef string `gorm:"type:VARCHAR(512);comment:'简历在文档存储中的引用'"`
	Ctime     int64
	Utime     int64
}

func (Candidate) TableName() string {
	return "candidates"
}

type Application struct {
	ID            int64             `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	CandidateID   int64             `gorm:"type:BIGINT;NOT NULL;index:idx_candidate_id;comment:'候选人ID'"`
	JobPostingID  int64             `gorm:"type:BIGINT;NOT NULL;index:idx_job_posting_id;comment:'岗位ID，外部引用'"`
	Position      string            `gorm:"type:VARCHAR(255);NOT NULL;comment:'岗位名称'"`
	CoverLetter   string            `gorm:"type:TEXT;comment:'求职信'"`
	Status        string            `gorm:"type:ENUM('Applied','Reviewing','Shortlisted','Completed','Rejected');NOT NULL;default:'Applied';index:idx_status;comment:'申请状态'"`
	AppliedAt     int64             `gorm:"type:BIGINT;NOT NULL;index:idx_applied_at;comment:'申请时间'"`
	FallbackScore sql.Null[float64] `gorm:"type:DOUBLE;comment:'筛选阶段打分'"`
	Ctime         int64
	Utime         int64
}

func (Application) TableName() string {
	return "applications"
}

// ApplicationHistory 每一次提交成功的状态流转都会留下一行
type ApplicationHistory struct {
	ID            int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	ApplicationID int64  `gorm:"type:BIGINT;NOT NULL;index:idx_application_id;comment:'申请ID'"`
	FromStatus    string `gorm:"type:VARCHAR(32);NOT NULL;comment:'原状态'"`
	ToStatus      string `gorm:"type:VARCHAR(32);NOT NULL;comment:'新状态'"`
	Actor         int64  `gorm:"type:BIGINT;NOT NULL;comment:'操作人，0 表示系统'"`
	Reason        string `gorm:"type:VARCHAR(512);comment:'原因'"`
	Ctime         int64
}

func (ApplicationHistory) TableName() string {
	return "application_histories"
}

type ApplicationFilter struct {
	Statuses     []string
	CandidateID  int64
	JobPostingID int64
	AppliedFrom  int64
	AppliedTo    int64
}

// StatusChange 申请状态的条件更新，From 等于 To 时只校验当前状态
type StatusChange struct {
	ApplicationID int64
	From          string
	To            string
	Actor         int64
	Reason        string
}

type ApplicationDAO interface {
	// Apply 同一个邮箱只会有一个候选人，候选人信息以最新一次申请为准
	Apply(ctx context.Context, c Candidate, a Application) (Candidate, Application, error)
	FindCandidateByID(ctx context.Context, id int64) (Candidate, error)
	FindCandidatesByIDs(ctx context.Context, ids []int64) ([]Candidate, error)
	ListCandidates(ctx context.Context, offset, limit int) ([]Candidate, error)
	CountCandidates(ctx context.Context) (int64, error)

	FindByID(ctx context.Context, id int64) (Application, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Application, error)
	// FindLatestByCandidateID 候选人最近一次申请，面试和 offer 都挂在它上面
	FindLatestByCandidateID(ctx context.Context, cid int64) (Application, error)
	List(ctx context.Context, filter ApplicationFilter, offset, limit int) ([]Application, error)
	Count(ctx context.Context, filter ApplicationFilter) (int64, error)

	Transit(ctx context.Context, change StatusChange) error
	FindHistory(ctx context.Context, applicationID int64) ([]ApplicationHistory, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Apply(ctx context.Context, c Candidate, a Application) (Candidate, Application, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Candidate
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ?", c.Email).First(&existing).Error
		switch {
		case err == nil:
			c.ID = existing.ID
			c.Ctime = existing.Ctime
			c.Utime = now
			if c.ResumeRef == "" {
				c.ResumeRef = existing.ResumeRef
			}
			err = tx.Model(&Candidate{}).Where("id = ?", c.ID).Updates(map[string]any{
				"name":       c.Name,
				"phone":      c.Phone,
				"resume_ref": c.ResumeRef,
				"utime":      now,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.Ctime, c.Utime = now, now
			err = tx.Create(&c).Error
		}
		if err != nil {
			return err
		}
		a.CandidateID = c.ID
		a.Ctime, a.Utime = now, now
		if a.AppliedAt == 0 {
			a.AppliedAt = now
		}
		return tx.Create(&a).Error
	})
	return c, a, err
}

func (g *GORMApplicationDAO) FindCandidateByID(ctx context.Context, id int64) (Candidate, error) {
	var c Candidate
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *GORMApplicationDAO) FindCandidatesByIDs(ctx context.Context, ids []int64) ([]Candidate, error) {
	var res []Candidate
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) ListCandidates(ctx context.Context, offset, limit int) ([]Candidate, error) {
	var res []Candidate
	err := g.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) CountCandidates(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Candidate{}).Count(&count).Error
	return count, err
}

func (g *GORMApplicationDAO) FindByID(ctx context.Context, id int64) (Application, error) {
	var a Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (g *GORMApplicationDAO) FindByIDs(ctx context.Context, ids []int64) ([]Application, error) {
	var res []Application
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindLatestByCandidateID(ctx context.Context, cid int64) (Application, error) {
	var a Application
	err := g.db.WithContext(ctx).Where("candidate_id = ?", cid).
		Order("id DESC").First(&a).Error
	return a, err
}

func (g *GORMApplicationDAO) List(ctx context.Context, filter ApplicationFilter, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.filter(ctx, filter).Order("applied_at DESC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) Count(ctx context.Context, filter ApplicationFilter) (int64, error) {
	var count int64
	err := g.filter(ctx, filter).Count(&count).Error
	return count, err
}

func (g *GORMApplicationDAO) filter(ctx context.Context, filter ApplicationFilter) *gorm.DB {
	query := g.db.WithContext(ctx).Model(&Application{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.CandidateID > 0 {
		query = query.Where("candidate_id = ?", filter.CandidateID)
	}
	if filter.JobPostingID > 0 {
		query = query.Where("job_posting_id = ?", filter.JobPostingID)
	}
	if filter.AppliedFrom > 0 {
		query = query.Where("applied_at >= ?", filter.AppliedFrom)
	}
	if filter.AppliedTo > 0 {
		query = query.Where("applied_at < ?", filter.AppliedTo)
	}
	return query
}

func (g *GORMApplicationDAO) Transit(ctx context.Context, change StatusChange) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return transit(tx, change, time.Now().UnixMilli())
	})
}

func (g *GORMApplicationDAO) FindHistory(ctx context.Context, applicationID int64) ([]ApplicationHistory, error) {
	var res []ApplicationHistory
	err := g.db.WithContext(ctx).Where("application_id = ?", applicationID).
		Order("id ASC").Find(&res).Error
	return res, err
}

// transit 在事务内执行申请状态的条件更新，并且写入历史。
// From 等于 To 时只对当前行加锁校验状态，用来保证反馈和排期期间申请没有被并发终结。
func transit(tx *gorm.DB, change StatusChange, now int64) error {
	if change.From == change.To {
		var a Application
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status = ?", change.ApplicationID, change.From).
			First(&a).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStatusConflict
		}
		return err
	}
	res := tx.Model(&Application{}).
		Where("id = ? AND status = ?", change.ApplicationID, change.From).
		Updates(map[string]any{
			"status": change.To,
			"utime":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return tx.Create(&ApplicationHistory{
		ApplicationID: change.ApplicationID,
		FromStatus:    change.From,
		ToStatus:      change.To,
		Actor:         change.Actor,
		Reason:        change.Reason,
		Ctime:         now,
	}).Error
}
