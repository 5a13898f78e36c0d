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

package event

import (
	"context"
	"strconv"

	"github.com/ecodeclub/hrportal/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const OfferAcceptedEventName = "offer_accepted_events"

// OfferAcceptedEvent 候选人接受 offer 之后发出，入职模块据此创建入职记录。
// 同一个 offer 可能会被重复发送，消费方需要保证幂等
type OfferAcceptedEvent struct {
	OfferID       int64  `json:"offerId"`
	SN            string `json:"sn"`
	CandidateID   int64  `json:"candidateId"`
	ApplicationID int64  `json:"applicationId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Position      string `json:"position"`
	Salary        string `json:"salary"`
	StartDate     string `json:"startDate"`
	AcceptedAt    int64  `json:"acceptedAt"`
}

//go:generate mockgen -source=./types.go -package=evtmocks -destination=./mocks/producer.mock.go -typed OfferAcceptedEventProducer
type OfferAcceptedEventProducer interface {
	Produce(ctx context.Context, evt OfferAcceptedEvent) error
}

func NewOfferAcceptedEventProducer(q mq.MQ) (OfferAcceptedEventProducer, error) {
	return mqx.NewKeyedProducer[OfferAcceptedEvent](q, OfferAcceptedEventName, func(evt OfferAcceptedEvent) string {
		return strconv.FormatInt(evt.OfferID, 10)
	})
}
