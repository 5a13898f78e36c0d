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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	recruitmentmocks "github.com/ecodeclub/hrportal/internal/recruitment/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestExpireOffersJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(svc *recruitmentmocks.MockOfferService)
		wantErr bool
	}{
		{
			name: "撤回成功",
			mock: func(svc *recruitmentmocks.MockOfferService) {
				svc.EXPECT().ExpirePending(gomock.Any(), "2025-11-20", 50).Return(3, nil)
			},
		},
		{
			name: "撤回失败",
			mock: func(svc *recruitmentmocks.MockOfferService) {
				svc.EXPECT().ExpirePending(gomock.Any(), "2025-11-20", 50).Return(1, errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := recruitmentmocks.NewMockOfferService(ctrl)
			tc.mock(svc)
			j := NewExpireOffersJob(svc, 50, time.Second)
			j.now = func() time.Time {
				return time.Date(2025, 11, 20, 1, 0, 0, 0, time.Local)
			}
			assert.Equal(t, "ExpireOffersJob", j.Name())
			err := j.Run(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}
