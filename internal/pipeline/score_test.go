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

package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	fallback := 3.2
	testCases := []struct {
		name     string
		scores   []float64
		fallback *float64
		want     Score
		wantStr  string
	}{
		{
			name:    "三轮平均",
			scores:  []float64{4, 5, 3},
			want:    Score{Value: 4.0, Valid: true},
			wantStr: "4.0",
		},
		{
			name:     "没有打分使用申请分数",
			fallback: &fallback,
			want:     Score{Value: 3.2, Valid: true},
			wantStr:  "3.2",
		},
		{
			name:    "没有打分也没有申请分数",
			want:    Score{},
			wantStr: "N/A",
		},
		{
			name:     "有打分时忽略申请分数",
			scores:   []float64{2, 3},
			fallback: &fallback,
			want:     Score{Value: 2.5, Valid: true},
			wantStr:  "2.5",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(tc.scores, tc.fallback)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantStr, got.String())
		})
	}
}

func TestScore_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Score `json:"a"`
		B Score `json:"b"`
	}{A: Score{Value: 4, Valid: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":4,"b":"N/A"}`, string(data))
}
