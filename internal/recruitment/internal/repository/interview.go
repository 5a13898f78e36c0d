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
	"github.com/ecodeclub/hrportal/internal/pipeline"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/repository/dao"
)

//go:generate mockgen -source=./interview.go -package=repomocks -destination=mocks/interview.mock.go InterviewRepository
type InterviewRepository interface {
	// Schedule guard 用来校验申请仍处于可排期的状态
	Schedule(ctx context.Context, r domain.InterviewRound, guard domain.Transition) (domain.InterviewRound, error)
	FindRound(ctx context.Context, id int64) (domain.InterviewRound, error)
	FindRoundsByApplication(ctx context.Context, applicationID int64) ([]domain.InterviewRound, error)
	FindRoundsBetween(ctx context.Context, start, end string) ([]domain.InterviewRound, error)
	// Complete 记录反馈和门控流转，两者要么都成功要么都失败
	Complete(ctx context.Context, r domain.InterviewRound, t domain.Transition) error
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: d}
}

func (r *interviewRepository) Schedule(ctx context.Context, round domain.InterviewRound, guard domain.Transition) (domain.InterviewRound, error) {
	res, err := r.dao.Schedule(ctx, r.toEntity(round), toStatusChange(guard))
	if err != nil {
		return domain.InterviewRound{}, toBizErr(err, "申请", "该轮次正在被其他人排期，请刷新后重试")
	}
	return r.toDomain(res), nil
}

func (r *interviewRepository) FindRound(ctx context.Context, id int64) (domain.InterviewRound, error) {
	res, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.InterviewRound{}, toBizErr(err, "面试轮次", "")
	}
	return r.toDomain(res), nil
}

func (r *interviewRepository) FindRoundsByApplication(ctx context.Context, applicationID int64) ([]domain.InterviewRound, error) {
	res, err := r.dao.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(res), nil
}

func (r *interviewRepository) FindRoundsBetween(ctx context.Context, start, end string) ([]domain.InterviewRound, error) {
	res, err := r.dao.FindBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return r.toDomains(res), nil
}

func (r *interviewRepository) Complete(ctx context.Context, round domain.InterviewRound, t domain.Transition) error {
	err := r.dao.Complete(ctx, r.toEntity(round), toStatusChange(t))
	return toBizErr(err, "面试轮次或申请", "")
}

func (r *interviewRepository) toDomains(rounds []dao.InterviewRound) []domain.InterviewRound {
	return slice.Map(rounds, func(_ int, src dao.InterviewRound) domain.InterviewRound {
		return r.toDomain(src)
	})
}

func (r *interviewRepository) toEntity(round domain.InterviewRound) dao.InterviewRound {
	v, valid := nullFloat(round.Score)
	return dao.InterviewRound{
		ID:            round.ID,
		CandidateID:   round.CandidateID,
		ApplicationID: round.ApplicationID,
		Type:          round.Type,
		Date:          round.Date,
		Time:          round.Time,
		Interviewer:   round.Interviewer,
		Location:      round.Location,
		Notes:         round.Notes,
		Result:        round.Result.String(),
		Score:         sql.Null[float64]{V: v, Valid: valid},
		Feedback:      round.Feedback,
		Completed:     round.Completed,
	}
}

func (r *interviewRepository) toDomain(round dao.InterviewRound) domain.InterviewRound {
	return domain.InterviewRound{
		ID:            round.ID,
		CandidateID:   round.CandidateID,
		ApplicationID: round.ApplicationID,
		Type:          round.Type,
		Date:          round.Date,
		Time:          round.Time,
		Interviewer:   round.Interviewer,
		Location:      round.Location,
		Notes:         round.Notes,
		Result:        pipeline.Result(round.Result),
		Score:         floatPtr(round.Score.V, round.Score.Valid),
		Feedback:      round.Feedback,
		Completed:     round.Completed,
		Ctime:         round.Ctime,
		Utime:         round.Utime,
	}
}
