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

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"maps"
	texttemplate "text/template"

	"github.com/ecodeclub/hrportal/internal/email"
	"github.com/ecodeclub/hrportal/internal/sms/client"
	"github.com/gotomicro/ego/core/elog"
)

var _ Sender = (*TemplateSender)(nil)

type compiled struct {
	// 标题还会用作短信和企业微信消息，不做 HTML 转义
	subject *texttemplate.Template
	body    *template.Template
	raw     Template
}

// TemplateSender 按模板渲染后，同时走邮件、短信和企业微信三个渠道。
// 某个渠道失败不影响其他渠道，所有错误合并后返回。
type TemplateSender struct {
	templates map[TemplateKey]compiled
	mail      email.Service
	sms       client.Client
	robot     *Robot
	logger    *elog.Component
}

func NewTemplateSender(cfg Config, mail email.Service, sms client.Client, robot *Robot) (*TemplateSender, error) {
	templates := make(map[TemplateKey]compiled, len(cfg.Templates))
	for key, tpl := range cfg.Templates {
		subject, err := texttemplate.New(key + ".subject").Parse(tpl.Subject)
		if err != nil {
			return nil, fmt.Errorf("解析通知模板 %s 的标题失败: %w", key, err)
		}
		body, err := template.New(key + ".body").Parse(tpl.Body)
		if err != nil {
			return nil, fmt.Errorf("解析通知模板 %s 的正文失败: %w", key, err)
		}
		templates[TemplateKey(key)] = compiled{subject: subject, body: body, raw: tpl}
	}
	return &TemplateSender{
		templates: templates,
		mail:      mail,
		sms:       sms,
		robot:     robot,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("notification")),
	}, nil
}

func (s *TemplateSender) Send(ctx context.Context, msg Message) error {
	tpl, ok := s.templates[msg.Template]
	if !ok {
		return fmt.Errorf("未配置通知模板: %s", msg.Template)
	}
	data := make(map[string]string, len(msg.Fields)+1)
	maps.Copy(data, msg.Fields)
	data["Name"] = msg.Recipient.Name

	subject, err := render(tpl.subject, data)
	if err != nil {
		return err
	}
	body, err := render(tpl.body, data)
	if err != nil {
		return err
	}

	var errs []error
	if msg.Recipient.Email != "" && tpl.raw.Body != "" {
		err = s.mail.SendMail(ctx, email.Mail{
			To:      msg.Recipient.Email,
			Subject: subject,
			Body:    []byte(body),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("发送邮件失败: %w", err))
		}
	}
	if msg.Recipient.Phone != "" && tpl.raw.SMSTemplateID != "" {
		_, err = s.sms.Send(ctx, client.SendReq{
			Phone:         msg.Recipient.Phone,
			TemplateID:    tpl.raw.SMSTemplateID,
			TemplateParam: data,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("发送短信失败: %w", err))
		}
	}
	if tpl.raw.Robot != "" && s.robot != nil {
		err = s.robot.Post(ctx, tpl.raw.Robot, subject+"\n"+body)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		s.logger.Error("发送通知失败",
			elog.String("template", string(msg.Template)),
			elog.String("to", msg.Recipient.Email),
			elog.FieldErr(errors.Join(errs...)))
	}
	return errors.Join(errs...)
}

type executor interface {
	Execute(w io.Writer, data any) error
	Name() string
}

func render(tpl executor, data map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("渲染通知模板 %s 失败: %w", tpl.Name(), err)
	}
	return buf.String(), nil
}
