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
	"github.com/ecodeclub/hrportal/internal/pipeline"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
)

type ErrorVO struct {
	Kind string `json:"kind"`
}

type WarningVO struct {
	Kind string `json:"kind"`
	Msg  string `json:"msg"`
}

// OutcomeVO 命令已经提交，Warnings 里是通知之类的非关键失败
type OutcomeVO[T any] struct {
	Entity   T           `json:"entity"`
	Warnings []WarningVO `json:"warnings,omitempty"`
}

func newOutcomeVO[T, V any](out bizerr.Outcome[T], fn func(T) V) OutcomeVO[V] {
	return OutcomeVO[V]{
		Entity: fn(out.Val),
		Warnings: slice.Map(out.Warnings, func(_ int, src *bizerr.Error) WarningVO {
			return WarningVO{Kind: src.Kind.String(), Msg: src.Msg}
		}),
	}
}

type IDReq struct {
	ID int64 `json:"id"`
}

type CandidateReq struct {
	CandidateID int64 `json:"candidateId"`
}

type DateReq struct {
	Date string `json:"date"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ApplyReq RequestID 相同的请求只会创建一次申请
type ApplyReq struct {
	RequestID     string   `json:"requestId"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	ResumeRef     string   `json:"resumeRef"`
	JobPostingID  int64    `json:"jobPostingId"`
	Position      string   `json:"position"`
	CoverLetter   string   `json:"coverLetter"`
	FallbackScore *float64 `json:"fallbackScore"`
}

type ListApplicationsReq struct {
	Statuses     []string `json:"statuses"`
	CandidateID  int64    `json:"candidateId"`
	JobPostingID int64    `json:"jobPostingId"`
	// AppliedFrom 和 AppliedTo 是 YYYY-MM-DD，包含两端
	AppliedFrom string `json:"appliedFrom"`
	AppliedTo   string `json:"appliedTo"`
	Offset      int    `json:"offset"`
	Limit       int    `json:"limit"`
}

type TransitReq struct {
	RequestID string `json:"requestId"`
	ID        int64  `json:"id"`
	Status    string `json:"status"`
	Reason    string `json:"reason"`
}

type CandidateVO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ResumeRef string `json:"resumeRef"`
	Ctime     string `json:"ctime"`
}

func newCandidateVO(c domain.Candidate) CandidateVO {
	return CandidateVO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		ResumeRef: c.ResumeRef,
		Ctime:     formatMilli(c.Ctime),
	}
}

type CandidateList struct {
	Total      int64         `json:"total"`
	Candidates []CandidateVO `json:"candidates"`
}

type ApplicationVO struct {
	ID            int64    `json:"id"`
	CandidateID   int64    `json:"candidateId"`
	JobPostingID  int64    `json:"jobPostingId"`
	Position      string   `json:"position"`
	CoverLetter   string   `json:"coverLetter"`
	Status        string   `json:"status"`
	AppliedAt     string   `json:"appliedAt"`
	FallbackScore *float64 `json:"fallbackScore,omitempty"`
	Utime         string   `json:"utime"`
}

func newApplicationVO(a domain.Application) ApplicationVO {
	return ApplicationVO{
		ID:            a.ID,
		CandidateID:   a.CandidateID,
		JobPostingID:  a.JobPostingID,
		Position:      a.Position,
		CoverLetter:   a.CoverLetter,
		Status:        a.Status.String(),
		AppliedAt:     formatMilli(a.AppliedAt),
		FallbackScore: a.FallbackScore,
		Utime:         formatMilli(a.Utime),
	}
}

type ApplicationList struct {
	Total        int64           `json:"total"`
	Applications []ApplicationVO `json:"applications"`
}

type StatusChangeVO struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Actor  int64  `json:"actor"`
	Reason string `json:"reason"`
	Ctime  string `json:"ctime"`
}

type ApplicationDetail struct {
	Application ApplicationVO    `json:"application"`
	History     []StatusChangeVO `json:"history"`
}

type ScheduleReq struct {
	CandidateID int64  `json:"candidateId"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Interviewer string `json:"interviewer"`
	Location    string `json:"location"`
	Notes       string `json:"notes"`
}

type FeedbackReq struct {
	RequestID string   `json:"requestId"`
	RoundID   int64    `json:"roundId"`
	Score     *float64 `json:"score"`
	Result    string   `json:"result"`
	Feedback  string   `json:"feedback"`
}

type RoundVO struct {
	ID            int64    `json:"id"`
	CandidateID   int64    `json:"candidateId"`
	ApplicationID int64    `json:"applicationId"`
	Type          string   `json:"type"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Interviewer   string   `json:"interviewer"`
	Location      string   `json:"location"`
	Notes         string   `json:"notes"`
	Result        string   `json:"result"`
	Score         *float64 `json:"score,omitempty"`
	Feedback      string   `json:"feedback"`
	Completed     bool     `json:"completed"`
}

func newRoundVO(r domain.InterviewRound) RoundVO {
	return RoundVO{
		ID:            r.ID,
		CandidateID:   r.CandidateID,
		ApplicationID: r.ApplicationID,
		Type:          r.Type,
		Date:          r.Date,
		Time:          r.Time,
		Interviewer:   r.Interviewer,
		Location:      r.Location,
		Notes:         r.Notes,
		Result:        r.Result.String(),
		Score:         r.Score,
		Feedback:      r.Feedback,
		Completed:     r.Completed,
	}
}

func newRoundVOs(rs []domain.InterviewRound) []RoundVO {
	return slice.Map(rs, func(_ int, src domain.InterviewRound) RoundVO {
		return newRoundVO(src)
	})
}

type FeedbackVO struct {
	Round       RoundVO       `json:"round"`
	Application ApplicationVO `json:"application"`
}

type NextStageVO struct {
	// Stage 为空表示所有必须轮次都已通过
	Stage    string `json:"stage"`
	Required bool   `json:"required"`
}

type CalendarEntryVO struct {
	Round         RoundVO `json:"round"`
	CandidateName string  `json:"candidateName"`
	Position      string  `json:"position"`
}

func newCalendarEntryVOs(es []domain.CalendarEntry) []CalendarEntryVO {
	return slice.Map(es, func(_ int, src domain.CalendarEntry) CalendarEntryVO {
		return CalendarEntryVO{
			Round:         newRoundVO(src.Round),
			CandidateName: src.CandidateName,
			Position:      src.Position,
		}
	})
}

type CalendarDayVO struct {
	Date    string            `json:"date"`
	Entries []CalendarEntryVO `json:"entries"`
}

type PipelineVO struct {
	Candidate   CandidateVO    `json:"candidate"`
	Application ApplicationVO  `json:"application"`
	Rounds      []RoundVO      `json:"rounds"`
	NextStage   string         `json:"nextStage"`
	Score       pipeline.Score `json:"score"`
	Version     string         `json:"version"`
}

type OfferTermsVO struct {
	Position         string `json:"position"`
	Salary           string `json:"salary"`
	StartDate        string `json:"startDate"`
	ExpiryDate       string `json:"expiryDate"`
	EmploymentType   string `json:"employmentType"`
	Benefits         string `json:"benefits"`
	ServiceAgreement string `json:"serviceAgreement"`
	HRName           string `json:"hrName"`
}

func (t OfferTermsVO) toDomain() domain.OfferTerms {
	return domain.OfferTerms{
		Position:         t.Position,
		Salary:           t.Salary,
		StartDate:        t.StartDate,
		ExpiryDate:       t.ExpiryDate,
		EmploymentType:   t.EmploymentType,
		Benefits:         t.Benefits,
		ServiceAgreement: t.ServiceAgreement,
		HRName:           t.HRName,
	}
}

type CreateOfferReq struct {
	RequestID   string       `json:"requestId"`
	CandidateID int64        `json:"candidateId"`
	Terms       OfferTermsVO `json:"terms"`
}

type UpdateOfferReq struct {
	ID    int64        `json:"id"`
	Terms OfferTermsVO `json:"terms"`
}

type RespondReq struct {
	ID       int64  `json:"id"`
	Response string `json:"response"`
}

type ListOffersReq struct {
	Statuses    []string `json:"statuses"`
	CandidateID int64    `json:"candidateId"`
	Offset      int      `json:"offset"`
	Limit       int      `json:"limit"`
}

type OfferVO struct {
	ID            int64        `json:"id"`
	SN            string       `json:"sn"`
	CandidateID   int64        `json:"candidateId"`
	ApplicationID int64        `json:"applicationId"`
	CandidateName string       `json:"candidateName"`
	Email         string       `json:"email"`
	Terms         OfferTermsVO `json:"terms"`
	OfferDate     string       `json:"offerDate"`
	Status        string       `json:"status"`
	RespondedAt   string       `json:"respondedAt,omitempty"`
}

func newOfferVO(o domain.Offer) OfferVO {
	return OfferVO{
		ID:            o.ID,
		SN:            o.SN,
		CandidateID:   o.CandidateID,
		ApplicationID: o.ApplicationID,
		CandidateName: o.CandidateName,
		Email:         o.Email,
		Terms: OfferTermsVO{
			Position:         o.Terms.Position,
			Salary:           o.Terms.Salary,
			StartDate:        o.Terms.StartDate,
			ExpiryDate:       o.Terms.ExpiryDate,
			EmploymentType:   o.Terms.EmploymentType,
			Benefits:         o.Terms.Benefits,
			ServiceAgreement: o.Terms.ServiceAgreement,
			HRName:           o.Terms.HRName,
		},
		OfferDate:   o.OfferDate,
		Status:      o.Status.String(),
		RespondedAt: formatMilli(o.RespondedAt),
	}
}

type OfferList struct {
	Total  int64     `json:"total"`
	Offers []OfferVO `json:"offers"`
}

func formatMilli(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).Format(time.RFC3339)
}
