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

package notification

import "context"

// TemplateKey 通知模板，模板内容在配置文件 notification.templates 下维护
type TemplateKey string

const (
	TemplateShortlisted        TemplateKey = "application_shortlisted"
	TemplateRejected           TemplateKey = "application_rejected"
	TemplateSelected           TemplateKey = "application_selected"
	TemplateInterviewScheduled TemplateKey = "interview_scheduled"
	TemplateOfferCreated       TemplateKey = "offer_created"
	TemplateOnboardingForm     TemplateKey = "onboarding_form"
	TemplateOnboardingIssue    TemplateKey = "onboarding_issue"
)

type Recipient struct {
	Name  string
	Email string
	Phone string
}

// Message 一条待发送的通知。Fields 是模板变量，Recipient.Name 总是以 Name 注入
type Message struct {
	Template  TemplateKey
	Recipient Recipient
	Fields    map[string]string
}

// Sender 通知发送方。调用方把发送失败当作告警处理，不回滚已经提交的业务数据
//
//go:generate mockgen -source=./types.go -package=notificationmocks -destination=./mocks/notification.mock.go -typed Sender
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	// Robots 企业微信机器人，key 是机器人名称，value 是 webhook 地址
	Robots    map[string]string   `yaml:"robots"`
	Templates map[string]Template `yaml:"templates"`
}

type Template struct {
	Subject string `yaml:"subject"`
	// Body 使用 html/template 语法
	Body          string `yaml:"body"`
	SMSTemplateID string `yaml:"smsTemplateId"`
	// Robot 非空时同时推送到对应的企业微信群，用于提醒 HR
	Robot string `yaml:"robot"`
}
