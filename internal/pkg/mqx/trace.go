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


package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "hrportal/internal/pkg/mqx"

// TraceMq 给 offer 和入职事件的发送、拉取打点。
// ConsumeChan 不经过这里，目前的消费者都用 Consume
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

type TraceOption func(t *TraceMq)

func WithTracerProvider(tp trace.TracerProvider) TraceOption {
	return func(t *TraceMq) {
		t.tracer = tp.Tracer(instrumentationName)
	}
}

func NewTraceMq(q mq.MQ, opts ...TraceOption) *TraceMq {
	t := &TraceMq{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &traceProducer{Producer: pro, topic: topic, tracer: t.tracer}, nil
}

func (t *TraceMq) Consumer(topic, groupID string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &traceConsumer{Consumer: c, topic: topic, group: groupID, tracer: t.tracer}, nil
}

type traceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *traceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	endSpan(span, err)
	return res, err
}

func (t *traceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.destination.partition.id", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	endSpan(span, err)
	return res, err
}

func (t *traceProducer) start(ctx context.Context, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, t.topic+" publish", trace.WithSpanKind(trace.SpanKindProducer))
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation", "publish"),
		attribute.String("messaging.destination.name", t.topic),
	}
	if m != nil {
		// key 是 offer id，按 key 能把同一个 offer 的事件串起来
		if len(m.Key) > 0 {
			attrs = append(attrs, attribute.String("messaging.kafka.message.key", string(m.Key)))
		}
		attrs = append(attrs, attribute.Int("messaging.message.body.size", len(m.Value)))
	}
	span.SetAttributes(attrs...)
	return ctx, span
}

type traceConsumer struct {
	mq.Consumer
	topic  string
	group  string
	tracer trace.Tracer
}

func (t *traceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	msg, err := t.Consumer.Consume(ctx)
	// 没拉到消息的空轮询不打点
	if msg == nil && err != nil {
		return msg, err
	}
	_, span := t.tracer.Start(ctx, t.topic+" receive", trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.operation", "receive"),
		attribute.String("messaging.destination.name", t.topic),
		attribute.String("messaging.kafka.consumer.group", t.group),
	)
	if msg != nil && len(msg.Key) > 0 {
		span.SetAttributes(attribute.String("messaging.kafka.message.key", string(msg.Key)))
	}
	endSpan(span, err)
	return msg, err
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
