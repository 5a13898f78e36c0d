package email

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
)

var _ Service = (*ConsoleService)(nil)

// ConsoleService 本地开发使用，只打印日志
type ConsoleService struct {
	logger *elog.Component
}

func NewConsoleService() *ConsoleService {
	return &ConsoleService{
		logger: elog.DefaultLogger.With(elog.FieldComponent("email.console")),
	}
}

func (c *ConsoleService) SendMail(ctx context.Context, mail Mail) error {
	c.logger.Info("模拟发送邮件",
		elog.String("to", mail.To),
		elog.String("subject", mail.Subject),
		elog.Int("attachments", len(mail.Attachments)))
	return nil
}
