package email

import "context"

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go -typed Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	// From 发信人昵称，为空时使用配置里的默认昵称
	From    string
	To      string
	Subject string
	Body    []byte
	// Attachments 比如 offer 附件、入职须知
	Attachments []Attachment
}

type Attachment struct {
	Filename string
	Content  []byte
}

// Config 对应配置文件中的 email 节点
type Config struct {
	// Provider 为 console 时只打印日志
	Provider        string `yaml:"provider"`
	AccessKeyID     string `yaml:"accessKeyId"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	// AccountName 阿里云控制台上配置的发信地址
	AccountName string `yaml:"accountName"`
	FromAlias   string `yaml:"fromAlias"`
}
