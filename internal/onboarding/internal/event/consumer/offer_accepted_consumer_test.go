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

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	onboardingmocks "github.com/ecodeclub/hrportal/internal/onboarding/mocks"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hrportal/internal/onboarding/internal/event"
	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOfferAcceptedConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		value   []byte
		mock    func(svc *onboardingmocks.MockService)
		wantErr bool
	}{
		{
			name: "创建入职记录",
			value: mustJSON(t, event.OfferAcceptedEvent{
				OfferID:     3,
				SN:          "OF202512010001ABCDEFGH",
				CandidateID: 1,
				Name:        "Alice",
				Email:       "alice@example.com",
				Position:    "Analyst",
				Salary:      "12 LPA",
			}),
			mock: func(svc *onboardingmocks.MockService) {
				svc.EXPECT().StartFromOffer(gomock.Any(), domain.AcceptedOffer{
					OfferID:     3,
					SN:          "OF202512010001ABCDEFGH",
					CandidateID: 1,
					Name:        "Alice",
					Email:       "alice@example.com",
					Position:    "Analyst",
					Salary:      "12 LPA",
				}).Return(bizerr.NewOutcome(domain.Record{ID: 7, Status: domain.StatusPending}), nil)
			},
		},
		{
			name:  "记录已创建但是通知失败",
			value: mustJSON(t, event.OfferAcceptedEvent{OfferID: 3, CandidateID: 1}),
			mock: func(svc *onboardingmocks.MockService) {
				out := bizerr.NewOutcome(domain.Record{ID: 7, Status: domain.StatusPending})
				out.Warn(bizerr.Dependency(errors.New("smtp timeout"), "通知 onboarding_form 发送失败"))
				svc.EXPECT().StartFromOffer(gomock.Any(), gomock.Any()).Return(out, nil)
			},
		},
		{
			name:    "消息格式错误",
			value:   []byte("not json"),
			mock:    func(svc *onboardingmocks.MockService) {},
			wantErr: true,
		},
		{
			name:  "创建失败",
			value: mustJSON(t, event.OfferAcceptedEvent{OfferID: 3, CandidateID: 1}),
			mock: func(svc *onboardingmocks.MockService) {
				svc.EXPECT().StartFromOffer(gomock.Any(), gomock.Any()).
					Return(bizerr.Outcome[domain.Record]{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := onboardingmocks.NewMockService(ctrl)
			tc.mock(svc)

			q := memory.NewMQ()
			require.NoError(t, q.CreateTopic(context.Background(), event.OfferAcceptedEventName, 1))
			c, err := NewOfferAcceptedConsumer(svc, q)
			require.NoError(t, err)
			defer func() {
				_ = c.Stop(context.Background())
			}()

			p, err := q.Producer(event.OfferAcceptedEventName)
			require.NoError(t, err)
			_, err = p.Produce(context.Background(), &mq.Message{Value: tc.value})
			require.NoError(t, err)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			err = c.Consume(ctx)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func mustJSON(t *testing.T, v any) []byte {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
