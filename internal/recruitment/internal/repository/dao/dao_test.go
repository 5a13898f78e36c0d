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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: conn,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		// 如果为 true ，则不允许 Ping数据库
		DisableAutomaticPing: true,
		// 如果为 false ，则即使是单一语句，也会开启事务
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestGORMApplicationDAO_Transit(t *testing.T) {
	testCases := []struct {
		name    string
		change  StatusChange
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:   "流转成功并写入历史",
			change: StatusChange{ApplicationID: 1, From: "Reviewing", To: "Shortlisted", Actor: 9},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `applications` SET .* WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `application_histories`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:   "状态已被并发修改",
			change: StatusChange{ApplicationID: 1, From: "Reviewing", To: "Shortlisted", Actor: 9},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `applications` SET .* WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrStatusConflict,
		},
		{
			name:   "只校验状态",
			change: StatusChange{ApplicationID: 1, From: "Shortlisted", To: "Shortlisted"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "Shortlisted")
				mock.ExpectQuery("SELECT \\* FROM `applications` WHERE .* FOR UPDATE").
					WillReturnRows(rows)
				mock.ExpectCommit()
			},
		},
		{
			name:   "校验状态失败",
			change: StatusChange{ApplicationID: 1, From: "Shortlisted", To: "Shortlisted"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `applications` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))
				mock.ExpectRollback()
			},
			wantErr: ErrStatusConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()
			tc.mock(mock)
			d := NewGORMApplicationDAO(newTestDB(t, mockDB))
			err = d.Transit(context.Background(), tc.change)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMInterviewDAO_Complete(t *testing.T) {
	round := InterviewRound{
		ID:       3,
		Result:   "Fail",
		Score:    sql.Null[float64]{V: 2, Valid: true},
		Feedback: "Weak",
	}
	testCases := []struct {
		name    string
		change  StatusChange
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:   "失败并淘汰",
			change: StatusChange{ApplicationID: 1, From: "Shortlisted", To: "Rejected"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `interview_rounds` SET .* WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `applications` SET .* WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `application_histories`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:   "轮次已经记录过反馈",
			change: StatusChange{ApplicationID: 1, From: "Shortlisted", To: "Rejected"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `interview_rounds` SET .* WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrStatusConflict,
		},
		{
			name:   "申请已经终结，反馈整体回滚",
			change: StatusChange{ApplicationID: 1, From: "Shortlisted", To: "Rejected"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `interview_rounds` SET .* WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `applications` SET .* WHERE .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: ErrStatusConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()
			tc.mock(mock)
			d := NewGORMInterviewDAO(newTestDB(t, mockDB))
			err = d.Complete(context.Background(), round, tc.change)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMOfferDAO_Create(t *testing.T) {
	guard := StatusChange{ApplicationID: 1, From: "Completed", To: "Completed"}
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `applications` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "Completed"))
				mock.ExpectExec("INSERT INTO `offers`").
					WillReturnResult(sqlmock.NewResult(5, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "申请还没有完成",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `applications` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}))
				mock.ExpectRollback()
			},
			wantErr: ErrStatusConflict,
		},
		{
			name: "已经有未决的 offer",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `applications` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "Completed"))
				mock.ExpectExec("INSERT INTO `offers`").
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
				mock.ExpectRollback()
			},
			wantErr: ErrDuplicate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()
			tc.mock(mock)
			d := NewGORMOfferDAO(newTestDB(t, mockDB))
			o, err := d.Create(context.Background(), Offer{
				SN:          "sn-1",
				CandidateID: 2,
				Position:    "Analyst",
				Salary:      "12 LPA",
				ExpiryDate:  "2025-12-31",
				OfferDate:   "2025-12-01",
			}, guard)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, int64(5), o.ID)
				assert.Equal(t, "2:Analyst", o.ActiveKey.V)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMOfferDAO_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "成功", affected: 1},
		{name: "不是 Pending", affected: 0, wantErr: ErrStatusConflict},
		{name: "数据库错误", execErr: errors.New("db down"), wantErr: errors.New("db down")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer mockDB.Close()
			exec := mock.ExpectExec("UPDATE `offers` SET .* WHERE .*")
			if tc.execErr != nil {
				exec.WillReturnError(tc.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tc.affected))
			}
			d := NewGORMOfferDAO(newTestDB(t, mockDB))
			err = d.UpdateStatus(context.Background(), 1, "Withdrawn")
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.wantErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
