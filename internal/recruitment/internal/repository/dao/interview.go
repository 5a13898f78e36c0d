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

type InterviewRound struct {
	ID            int64             `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	CandidateID   int64             `gorm:"type:BIGINT;NOT NULL;index:idx_candidate_id;comment:'候选人ID'"`
	ApplicationID int64             `gorm:"type:BIGINT;NOT NULL;index:idx_application_id;comment:'申请ID'"`
	Type          string            `gorm:"type:VARCHAR(64);NOT NULL;comment:'轮次类型，来自流程定义'"`
	Date          string            `gorm:"type:CHAR(10);NOT NULL;index:idx_date;comment:'面试日期 YYYY-MM-DD'"`
	Time          string            `gorm:"type:CHAR(5);NOT NULL;comment:'面试时间 HH:MM'"`
	Interviewer   string            `gorm:"type:VARCHAR(255);NOT NULL;comment:'面试官'"`
	Location      string            `gorm:"type:VARCHAR(255);comment:'地点或会议链接'"`
	Notes         string            `gorm:"type:TEXT;comment:'备注'"`
	Result        string            `gorm:"type:ENUM('Pending','Pass','Fail');NOT NULL;default:'Pending';comment:'结果'"`
	Score         sql.Null[float64] `gorm:"type:DOUBLE;comment:'打分 0-5'"`
	Feedback      string            `gorm:"type:TEXT;comment:'反馈'"`
	Completed     bool              `gorm:"type:BOOLEAN;NOT NULL;default:false;comment:'是否已经记录反馈'"`
	// OpenKey 只在轮次未完成时有值，保证同一个申请同一类型只有一个未完成的轮次
	OpenKey sql.Null[string] `gorm:"type:VARCHAR(128);uniqueIndex:uniq_open_key;comment:'申请ID:轮次类型'"`
	Ctime   int64
	Utime   int64
}

func (InterviewRound) TableName() string {
	return "interview_rounds"
}

func OpenKey(applicationID int64, typ string) string {
	return fmt.Sprintf("%d:%s", applicationID, typ)
}

type InterviewDAO interface {
	// Schedule guard 校验申请状态。同一类型已有未完成的轮次时原地改期，返回的 ID 不变
	Schedule(ctx context.Context, r InterviewRound, guard StatusChange) (InterviewRound, error)
	FindByID(ctx context.Context, id int64) (InterviewRound, error)
	FindByApplicationID(ctx context.Context, applicationID int64) ([]InterviewRound, error)
	// FindBetween 日期闭区间
	FindBetween(ctx context.Context, start, end string) ([]InterviewRound, error)
	// Complete 记录反馈，并在同一个事务里按门控结论流转申请
	Complete(ctx context.Context, r InterviewRound, change StatusChange) error
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Schedule(ctx context.Context, r InterviewRound, guard StatusChange) (InterviewRound, error) {
	now := time.Now().UnixMilli()
	key := OpenKey(r.ApplicationID, r.Type)
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := transit(tx, guard, now); err != nil {
			return err
		}
		var existing InterviewRound
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("open_key = ?", key).First(&existing).Error
		switch {
		case err == nil:
			r.ID = existing.ID
			r.Result = existing.Result
			r.Ctime = existing.Ctime
			r.Utime = now
			r.OpenKey = existing.OpenKey
			return tx.Model(&InterviewRound{}).Where("id = ?", r.ID).Updates(map[string]any{
				"date":        r.Date,
				"time":        r.Time,
				"interviewer": r.Interviewer,
				"location":    r.Location,
				"notes":       r.Notes,
				"utime":       now,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			r.OpenKey = sql.Null[string]{V: key, Valid: true}
			r.Completed = false
			r.Ctime, r.Utime = now, now
			err = tx.Create(&r).Error
			if isDuplicate(err) {
				return ErrDuplicate
			}
			return err
		default:
			return err
		}
	})
	return r, err
}

func (g *GORMInterviewDAO) FindByID(ctx context.Context, id int64) (InterviewRound, error) {
	var r InterviewRound
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (g *GORMInterviewDAO) FindByApplicationID(ctx context.Context, applicationID int64) ([]InterviewRound, error) {
	var res []InterviewRound
	err := g.db.WithContext(ctx).Where("application_id = ?", applicationID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) FindBetween(ctx context.Context, start, end string) ([]InterviewRound, error) {
	var res []InterviewRound
	err := g.db.WithContext(ctx).Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, time ASC, id ASC").Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) Complete(ctx context.Context, r InterviewRound, change StatusChange) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&InterviewRound{}).
			Where("id = ? AND completed = ?", r.ID, false).
			Updates(map[string]any{
				"score":     r.Score,
				"result":    r.Result,
				"feedback":  r.Feedback,
				"completed": true,
				"open_key":  nil,
				"utime":     now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		return transit(tx, change, now)
	})
}
