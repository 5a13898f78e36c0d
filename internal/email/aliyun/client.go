package aliyun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/hrportal/internal/email"
)

var _ email.Service = (*DirectMail)(nil)

// DirectMail 阿里云邮件推送
type DirectMail struct {
	client      *dm20151123.Client
	accountName string
	fromAlias   string
}

func NewDirectMail(cfg email.Config) (*DirectMail, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建 DirectMail 客户端失败: %w", err)
	}
	return &DirectMail{
		client:      client,
		accountName: cfg.AccountName,
		fromAlias:   cfg.FromAlias,
	}, nil
}

func (d *DirectMail) SendMail(ctx context.Context, mail email.Mail) error {
	from := mail.From
	if from == "" {
		from = d.fromAlias
	}
	request := &dm20151123.SingleSendMailAdvanceRequest{
		AccountName: tea.String(d.accountName),
		FromAlias:   tea.String(from),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	if len(mail.Attachments) > 0 {
		attachments := make([]*dm20151123.SingleSendMailAdvanceRequestAttachments, 0, len(mail.Attachments))
		for idx := range mail.Attachments {
			att := &dm20151123.SingleSendMailAdvanceRequestAttachments{}
			att.SetAttachmentName(mail.Attachments[idx].Filename)
			att.SetAttachmentUrlObject(bytes.NewReader(mail.Attachments[idx].Content))
			attachments = append(attachments, att)
		}
		request.Attachments = attachments
	}
	_, err := d.client.SingleSendMailAdvance(request, &util.RuntimeOptions{})
	if err != nil {
		return d.handleError(err)
	}
	return nil
}

func (d *DirectMail) handleError(err error) error {
	var sdkError *tea.SDKError
	if !errors.As(err, &sdkError) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkError.Message))
	var data map[string]any
	if sdkError.Data != nil {
		_ = json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data))).Decode(&data)
	}
	if recommend, ok := data["Recommend"]; ok {
		msg += fmt.Sprintf(" | 建议: %v", recommend)
	}
	if requestId, ok := data["RequestId"]; ok {
		msg += fmt.Sprintf(" | RequestId: %v", requestId)
	}
	return errors.New(msg)
}
