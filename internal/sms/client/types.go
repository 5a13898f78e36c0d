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
	"errors"
	"fmt"
	"strings"
)

const (
	OK = "OK"
)

var (
	ErrSendFailed       = errors.New("发送短信失败")
	ErrInvalidParameter = errors.New("参数无效")
)

// Client 短信通道。每条通知只发给一个候选人
type Client interface {
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

type SendReq struct {
	Phone string
	// TemplateID 短信平台上审核通过的模板 ID
	TemplateID string
	// TemplateParam 模板参数，比如候选人姓名、岗位
	TemplateParam map[string]string
}

type SendResp struct {
	RequestID string
	// Phone 归一化之后的手机号
	Phone  string
	Status SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}

type Config struct {
	// Provider 为 console 时只打印日志，本地开发和测试环境使用
	Provider        string `yaml:"provider"`
	AccessKeyID     string `yaml:"accessKeyId"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	SignName        string `yaml:"signName"`
}

// NormalizePhone 候选人填写的手机号格式五花八门，
// 去掉空格、横线和 +86 / 0086 前缀后必须是 1 开头的 11 位数字
func NormalizePhone(phone string) (string, error) {
	p := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	for _, prefix := range []string{"+86", "0086"} {
		p = strings.TrimPrefix(p, prefix)
	}
	if len(p) != 11 || p[0] != '1' {
		return "", fmt.Errorf("%w: 手机号 %q 格式错误", ErrInvalidParameter, phone)
	}
	for _, c := range p {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: 手机号 %q 格式错误", ErrInvalidParameter, phone)
		}
	}
	return p, nil
}

func (r SendReq) validate() (string, error) {
	if r.TemplateID == "" {
		return "", fmt.Errorf("%w: 短信模板不能为空", ErrInvalidParameter)
	}
	return NormalizePhone(r.Phone)
}
