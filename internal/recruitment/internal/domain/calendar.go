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

import "time"

const daysPerWeek = 7

// WeekDates 返回 date 所在周从周一到周日的七个日期
func WeekDates(date string) ([]string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return nil, err
	}
	// time.Sunday 为 0，周日要回退六天
	offset := (int(t.Weekday()) + 6) % daysPerWeek
	monday := t.AddDate(0, 0, -offset)
	res := make([]string, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		res = append(res, monday.AddDate(0, 0, i).Format(DateLayout))
	}
	return res, nil
}
