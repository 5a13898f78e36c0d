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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hrportal/internal/recruitment/internal/domain"
)

// CalendarExpiration 日历视图允许的最大延迟
const CalendarExpiration = 15 * time.Second

var ErrCalendarMiss = errors.New("日历缓存未命中")

//go:generate mockgen -source=./calendar.go -package=cachemocks -destination=mocks/calendar.mock.go CalendarCache
type CalendarCache interface {
	GetDay(ctx context.Context, date string) ([]domain.CalendarEntry, error)
	SetDay(ctx context.Context, date string, entries []domain.CalendarEntry) error
	GetWeek(ctx context.Context, monday string) ([]domain.CalendarDay, error)
	SetWeek(ctx context.Context, monday string, days []domain.CalendarDay) error
	// Invalidate 排期或者反馈之后删除当天和当周的缓存
	Invalidate(ctx context.Context, date string) error
}

type calendarCache struct {
	ec ecache.Cache
}

func NewCalendarCache(ec ecache.Cache) CalendarCache {
	return &calendarCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "recruitment:calendar:",
		},
	}
}

func (c *calendarCache) GetDay(ctx context.Context, date string) ([]domain.CalendarEntry, error) {
	var res []domain.CalendarEntry
	err := c.get(ctx, c.dayKey(date), &res)
	return res, err
}

func (c *calendarCache) SetDay(ctx context.Context, date string, entries []domain.CalendarEntry) error {
	return c.set(ctx, c.dayKey(date), entries)
}

func (c *calendarCache) GetWeek(ctx context.Context, monday string) ([]domain.CalendarDay, error) {
	var res []domain.CalendarDay
	err := c.get(ctx, c.weekKey(monday), &res)
	return res, err
}

func (c *calendarCache) SetWeek(ctx context.Context, monday string, days []domain.CalendarDay) error {
	return c.set(ctx, c.weekKey(monday), days)
}

func (c *calendarCache) Invalidate(ctx context.Context, date string) error {
	dates, err := domain.WeekDates(date)
	if err != nil {
		return err
	}
	_, err = c.ec.Delete(ctx, c.dayKey(date), c.weekKey(dates[0]))
	return err
}

func (c *calendarCache) get(ctx context.Context, key string, dst any) error {
	val := c.ec.Get(ctx, key)
	if val.KeyNotFound() {
		return ErrCalendarMiss
	}
	if val.Err != nil {
		return fmt.Errorf("查询日历缓存失败: %w", val.Err)
	}
	str, ok := val.Val.(string)
	if !ok {
		return ErrCalendarMiss
	}
	return json.Unmarshal([]byte(str), dst)
}

func (c *calendarCache) set(ctx context.Context, key string, val any) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, key, string(data), CalendarExpiration)
}

func (c *calendarCache) dayKey(date string) string {
	return fmt.Sprintf("day:%s", date)
}

func (c *calendarCache) weekKey(monday string) string {
	return fmt.Sprintf("week:%s", monday)
}
