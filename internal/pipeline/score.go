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
	"strconv"
)

const NotAvailable = "N/A"

// Score 聚合后的分数，Valid 为 false 时展示为 N/A
type Score struct {
	Value float64
	Valid bool
}

func (s Score) String() string {
	if !s.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(s.Value, 'f', 1, 64)
}

func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(s.Value)
}

// Aggregate 计算已打分轮次的平均分。
// 没有任何打分时退回申请上的分数，两者都没有则为 N/A。
func Aggregate(scores []float64, fallback *float64) Score {
	if len(scores) == 0 {
		if fallback == nil {
			return Score{}
		}
		return Score{Value: *fallback, Valid: true}
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return Score{Value: sum / float64(len(scores)), Valid: true}
}
