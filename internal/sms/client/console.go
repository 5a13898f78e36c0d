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

package client

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var _ Client = (*ConsoleClient)(nil)

// ConsoleClient 只打日志，参数校验和线上一致
type ConsoleClient struct {
	logger *elog.Component
}

func NewConsoleClient() *ConsoleClient {
	return &ConsoleClient{
		logger: elog.DefaultLogger.With(elog.FieldComponent("sms.console")),
	}
}

func (c *ConsoleClient) Send(ctx context.Context, req SendReq) (SendResp, error) {
	phone, err := req.validate()
	if err != nil {
		return SendResp{}, err
	}
	reqID := shortuuid.New()
	c.logger.Info("模拟发送短信",
		elog.String("reqId", reqID),
		elog.String("template", req.TemplateID),
		elog.String("phone", phone),
		elog.Any("params", req.TemplateParam))
	return SendResp{
		RequestID: reqID,
		Phone:     phone,
		Status:    SendRespStatus{Code: OK},
	}, nil
}
