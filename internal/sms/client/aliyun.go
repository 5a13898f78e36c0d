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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"
)

var _ Client = (*AliyunSMS)(nil)

const defaultTimeout = 3 * time.Second

type AliyunSMS struct {
	client   *dysmsapi.Client
	signName string
}

func NewAliyunSMS(cfg Config) (*AliyunSMS, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	ms := int(defaultTimeout.Milliseconds())
	client, err := dysmsapi.NewClient(&openapi.Config{
		Credential:     cred,
		Endpoint:       tea.String("dysmsapi.aliyuncs.com"),
		ReadTimeout:    tea.Int(ms),
		ConnectTimeout: tea.Int(ms),
	})
	if err != nil {
		return nil, err
	}
	return &AliyunSMS{client: client, signName: cfg.SignName}, nil
}

func (a *AliyunSMS) Send(ctx context.Context, req SendReq) (SendResp, error) {
	phone, err := req.validate()
	if err != nil {
		return SendResp{}, err
	}
	// SDK 不认 context，至少不在已经取消的请求上再发短信
	if err = ctx.Err(); err != nil {
		return SendResp{}, err
	}
	var templateParam *string
	if len(req.TemplateParam) > 0 {
		params, er := json.Marshal(req.TemplateParam)
		if er != nil {
			return SendResp{}, fmt.Errorf("%w: %w", ErrInvalidParameter, er)
		}
		templateParam = tea.String(string(params))
	}
	request := &dysmsapi.SendSmsRequest{
		PhoneNumbers:  tea.String(phone),
		SignName:      tea.String(a.signName),
		TemplateCode:  tea.String(req.TemplateID),
		TemplateParam: templateParam,
	}
	response, err := a.client.SendSms(request)
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	body := response.Body
	if body == nil || !strings.EqualFold(tea.StringValue(body.Code), OK) {
		msg := "响应为空"
		if body != nil {
			msg = fmt.Sprintf("%s %s", tea.StringValue(body.Code), tea.StringValue(body.Message))
		}
		return SendResp{}, fmt.Errorf("%w: %s", ErrSendFailed, msg)
	}
	return SendResp{
		RequestID: tea.StringValue(body.RequestId),
		Phone:     phone,
		Status: SendRespStatus{
			Code:    tea.StringValue(body.Code),
			Message: tea.StringValue(body.Message),
		},
	}, nil
}
