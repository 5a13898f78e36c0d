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

package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPWriter_Write(t *testing.T) {
	testCases := []struct {
		name      string
		responses []int
		wantID    string
		wantErr   error
		wantCalls int32
	}{
		{
			name:      "一次成功",
			responses: []int{http.StatusCreated},
			wantID:    "EMP-1",
			wantCalls: 1,
		},
		{
			name:      "5xx 之后重试成功",
			responses: []int{http.StatusServiceUnavailable, http.StatusOK},
			wantID:    "EMP-1",
			wantCalls: 2,
		},
		{
			name:      "4xx 不重试",
			responses: []int{http.StatusBadRequest},
			wantErr:   ErrRejected,
			wantCalls: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				assert.Equal(t, "/employees", r.URL.Path)
				assert.Equal(t, "onboarding-7", r.Header.Get(idempotencyHeader))
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				var e Employee
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&e))
				assert.Equal(t, "alice@example.com", e.Email)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.responses[n-1])
				_, _ = w.Write([]byte(`{"employeeId":"EMP-1"}`))
			}))
			defer server.Close()

			writer := NewHTTPWriter(resty.New().SetBaseURL(server.URL), Config{Token: "secret"})
			writer.interval = time.Millisecond
			id, err := writer.Write(context.Background(), "onboarding-7", Employee{
				Name:  "Alice",
				Email: "alice@example.com",
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
			assert.Equal(t, tc.wantCalls, calls.Load())
		})
	}
}

func TestConsoleWriter_Write(t *testing.T) {
	w := NewConsoleWriter()
	id1, err := w.Write(context.Background(), "k1", Employee{Email: "a@example.com"})
	require.NoError(t, err)
	id2, err := w.Write(context.Background(), "k1", Employee{Email: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	id3, err := w.Write(context.Background(), "k2", Employee{Email: "b@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}
