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

package ioc

import (
	"net/http"
	"time"

	"github.com/ecodeclub/hrportal/internal/email"
	"github.com/ecodeclub/hrportal/internal/email/aliyun"
	"github.com/ecodeclub/hrportal/internal/notification"
	"github.com/ecodeclub/hrportal/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

const consoleProvider = "console"

func InitNotificationSender(mail email.Service, sms client.Client) notification.Sender {
	var cfg notification.Config
	err := econf.UnmarshalKey("notification", &cfg)
	if err != nil {
		panic(err)
	}
	robot := notification.NewRobot(cfg.Robots, &http.Client{Timeout: 5 * time.Second})
	sender, err := notification.NewTemplateSender(cfg, mail, sms, robot)
	if err != nil {
		panic(err)
	}
	return sender
}

func InitEmailService() email.Service {
	var cfg email.Config
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Provider == consoleProvider {
		return email.NewConsoleService()
	}
	svc, err := aliyun.NewDirectMail(cfg)
	if err != nil {
		panic(err)
	}
	return svc
}

func InitSMSClient() client.Client {
	var cfg client.Config
	err := econf.UnmarshalKey("sms", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Provider == consoleProvider {
		return client.NewConsoleClient()
	}
	aliClient, err := client.NewAliyunSMS(cfg)
	if err != nil {
		panic(err)
	}
	return aliClient
}
