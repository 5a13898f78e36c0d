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

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "Applied"
	StatusReviewing   ApplicationStatus = "Reviewing"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusCompleted   ApplicationStatus = "Completed"
	StatusRejected    ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusReviewing, StatusShortlisted, StatusCompleted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal Completed 和 Rejected 之后不允许任何流转
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// CanTransitTo 调用方可以直接发起的流转。
// Completed 只能由面试门控设置，所以这里永远返回 false。
func (s ApplicationStatus) CanTransitTo(to ApplicationStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch to {
	case StatusReviewing:
		return s == StatusApplied
	case StatusShortlisted:
		return s == StatusReviewing
	case StatusRejected:
		return true
	default:
		return false
	}
}

type Candidate struct {
	ID    int64
	Name  string
	Email string
	Phone string
	// ResumeRef 文档存储里的引用，展示时再解析成地址
	ResumeRef string
	Ctime     int64
	Utime     int64
}

type Application struct {
	ID           int64
	CandidateID  int64
	JobPostingID int64
	// Position 岗位名称，冗余自岗位目录
	Position    string
	CoverLetter string
	Status      ApplicationStatus
	AppliedAt   int64
	// FallbackScore 筛选阶段的打分，还没有任何面试打分时用来排序
	FallbackScore *float64
	Ctime         int64
	Utime         int64
}

type ApplicationFilter struct {
	Statuses     []ApplicationStatus
	CandidateID  int64
	JobPostingID int64
	// AppliedFrom 和 AppliedTo 是毫秒时间戳，0 表示不限制
	AppliedFrom int64
	AppliedTo   int64
	Offset      int
	Limit       int
}

// Transition 一次申请状态的变更
type Transition struct {
	ApplicationID int64
	From          ApplicationStatus
	To            ApplicationStatus
	Actor         int64
	Reason        string
}

// IsNoop From 和 To 相同时只校验状态，不写历史
func (t Transition) IsNoop() bool {
	return t.From == t.To
}

// StatusChange 申请状态的历史记录
type StatusChange struct {
	ID            int64
	ApplicationID int64
	From          ApplicationStatus
	To            ApplicationStatus
	Actor         int64
	Reason        string
	Ctime         int64
}
