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


package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "hrportal/internal/pkg/database"
	spanKey             = "hrportal:tracing_span"

	// EventCASMissed 带状态条件的 UPDATE 没有命中任何行
	EventCASMissed = "db.cas_missed"
)

// GormTracingPlugin 给每一次 gorm 调用开一个 span。
// 状态机的写操作全部是 UPDATE ... WHERE status = ?，
// 所以 UPDATE 影响 0 行时会额外记录一个 EventCASMissed 事件，方便排查并发冲突。
type GormTracingPlugin struct {
	tracer trace.Tracer
}

type Option func(p *GormTracingPlugin)

// WithTracerProvider 测试里用来注入 tracetest 的 provider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(p *GormTracingPlugin) {
		p.tracer = tp.Tracer(instrumentationName)
	}
}

func NewGormTracingPlugin(opts ...Option) *GormTracingPlugin {
	p := &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GormTracingPlugin) Name() string {
	return "hrportal:tracing"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Query().Before("gorm:query").Register("hrportal:before_query", p.before("QUERY")),
		cb.Query().After("gorm:query").Register("hrportal:after_query", p.after("QUERY")),
		cb.Create().Before("gorm:create").Register("hrportal:before_create", p.before("CREATE")),
		cb.Create().After("gorm:create").Register("hrportal:after_create", p.after("CREATE")),
		cb.Update().Before("gorm:update").Register("hrportal:before_update", p.before("UPDATE")),
		cb.Update().After("gorm:update").Register("hrportal:after_update", p.after("UPDATE")),
		cb.Delete().Before("gorm:delete").Register("hrportal:before_delete", p.before("DELETE")),
		cb.Delete().After("gorm:delete").Register("hrportal:after_delete", p.after("DELETE")),
		cb.Row().Before("gorm:row").Register("hrportal:before_row", p.before("ROW")),
		cb.Row().After("gorm:row").Register("hrportal:after_row", p.after("ROW")),
		cb.Raw().Before("gorm:raw").Register("hrportal:before_raw", p.before("RAW")),
		cb.Raw().After("gorm:raw").Register("hrportal:after_raw", p.after("RAW")),
	)
}

func (p *GormTracingPlugin) before(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		name := operation
		if table := tableOf(db); table != "" {
			name = table + " " + operation
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name,
			trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(operation string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", "mysql"),
			attribute.String("db.operation", operation),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		if table := tableOf(db); table != "" {
			attrs = append(attrs, attribute.String("db.sql.table", table))
		}
		if sql := db.Statement.SQL.String(); sql != "" {
			attrs = append(attrs, attribute.String("db.statement", sql))
		}
		span.SetAttributes(attrs...)
		switch {
		case db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound):
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
		case operation == "UPDATE" && db.Statement.RowsAffected == 0:
			span.AddEvent(EventCASMissed)
		default:
			span.SetStatus(codes.Ok, "")
		}
	}
}

func tableOf(db *gorm.DB) string {
	if db.Statement.Table != "" {
		return db.Statement.Table
	}
	if db.Statement.Schema != nil {
		return db.Statement.Schema.Table
	}
	return ""
}
