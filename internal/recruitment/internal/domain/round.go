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

import (
	"github.com/ecodeclub/hrportal/internal/pipeline"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// InterviewRound 一轮面试。记录反馈之后 Completed 为 true，之后不会再被修改
type InterviewRound struct {
	ID            int64
	CandidateID   int64
	ApplicationID int64
	Type          string
	Date          string
	Time          string
	Interviewer   string
	Location      string
	Notes         string
	Result        pipeline.Result
	// Score 为 nil 表示没有打分
	Score     *float64
	Feedback  string
	Completed bool
	Ctime     int64
	Utime     int64
}

func (r InterviewRound) Outcome() pipeline.RoundOutcome {
	return pipeline.RoundOutcome{Type: r.Type, Result: r.Result}
}

// Feedback 面试官提交的反馈
type Feedback struct {
	RoundID  int64
	Score    *float64
	Result   pipeline.Result
	Feedback string
	Actor    int64
}

// FeedbackResult 记录反馈之后的轮次和申请
type FeedbackResult struct {
	Round       InterviewRound
	Application Application
}

// CalendarEntry 日历上的一格
type CalendarEntry struct {
	Round         InterviewRound
	CandidateName string
	Position      string
}

type CalendarDay struct {
	Date    string
	Entries []CalendarEntry
}

// PipelineView 候选人在流程中的全貌
type PipelineView struct {
	Candidate   Candidate
	Application Application
	Rounds      []InterviewRound
	// NextStage 为空表示所有必须轮次都已通过
	NextStage string
	Score     pipeline.Score
	Version   string
}
