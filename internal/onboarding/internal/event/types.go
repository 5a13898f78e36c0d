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

const (
	OfferAcceptedEventName     = "offer_accepted_events"
	EmployeeOnboardedEventName = "employee_onboarded_events"
)

// OfferAcceptedEvent 由招聘模块在 offer 被接受时发出
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

type EmployeeOnboardedEvent struct {
	RecordID    int64  `json:"recordId"`
	OfferID     int64  `json:"offerId"`
	CandidateID int64  `json:"candidateId"`
	EmployeeID  string `json:"employeeId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	JoiningDate string `json:"joiningDate"`
	OnboardedAt int64  `json:"onboardedAt"`
}

//go:generate mockgen -source=./types.go -package=evtmocks -destination=./mocks/producer.mock.go -typed EmployeeOnboardedEventProducer
type EmployeeOnboardedEventProducer interface {
	Produce(ctx context.Context, evt EmployeeOnboardedEvent) error
}

func NewEmployeeOnboardedEventProducer(q mq.MQ) (EmployeeOnboardedEventProducer, error) {
	return mqx.NewKeyedProducer[EmployeeOnboardedEvent](q, EmployeeOnboardedEventName, func(evt EmployeeOnboardedEvent) string {
		return strconv.FormatInt(evt.OfferID, 10)
	})
}
