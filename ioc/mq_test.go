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


package ioc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequiredTopics(t *testing.T) {
	testCases := []struct {
		name   string
		topics []topicConfig
		want   []topicConfig
	}{
		{
			name: "没有配置",
			want: []topicConfig{
				{Name: "offer_accepted_events", Partitions: 3},
				{Name: "employee_onboarded_events", Partitions: 3},
			},
		},
		{
			name: "保留配置的分区数",
			topics: []topicConfig{
				{Name: "offer_accepted_events", Partitions: 6},
				{Name: "audit_events"},
				{Partitions: 2},
			},
			want: []topicConfig{
				{Name: "offer_accepted_events", Partitions: 6},
				{Name: "audit_events", Partitions: 3},
				{Name: "employee_onboarded_events", Partitions: 3},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, withRequiredTopics(tc.topics))
		})
	}
}
