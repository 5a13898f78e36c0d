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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_CanComplete(t *testing.T) {
	testCases := []struct {
		name   string
		record Record
		want   bool
	}{
		{name: "待审批", record: Record{Status: StatusPending}},
		{name: "审批通过未提交", record: Record{Status: StatusApproved}},
		{name: "审批通过已提交", record: Record{Status: StatusApproved, FinalSubmitted: true}, want: true},
		{name: "已经入职", record: Record{Status: StatusOnboarded, FinalSubmitted: true}},
		{name: "有问题", record: Record{Status: StatusIssue}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.record.CanComplete())
		})
	}
}

func TestForm_Attachments(t *testing.T) {
	f := Form{ProfileRef: "onboarding/1/profile.png", BankStatementRef: "onboarding/1/bank.pdf"}
	assert.Equal(t, []string{"onboarding/1/profile.png", "onboarding/1/bank.pdf"}, f.Attachments())
	assert.Empty(t, Form{}.Attachments())
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-11-03"))
	assert.False(t, ValidDate("2025/11/03"))
	assert.False(t, ValidDate(""))
	assert.True(t, ValidTime("09:30"))
	assert.False(t, ValidTime("9.30"))
}
