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
	"encoding/json"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// 企业微信文本消息的长度上限，单位字节
const robotContentLimit = 2048

type robotText struct {
	Content string `json:"content"`
}

type robotMessage struct {
	MsgType string    `json:"msgtype"`
	Text    robotText `json:"text"`
}

// Robot 企业微信群机器人
type Robot struct {
	webhooks map[string]string
	client   *http.Client
}

func NewRobot(webhooks map[string]string, client *http.Client) *Robot {
	if client == nil {
		client = http.DefaultClient
	}
	return &Robot{webhooks: webhooks, client: client}
}

func (r *Robot) Post(ctx context.Context, robot, content string) error {
	webhook, ok := r.webhooks[robot]
	if !ok {
		return fmt.Errorf("未知的企业微信机器人: %s", robot)
	}
	data, err := json.Marshal(robotMessage{
		MsgType: "text",
		Text:    robotText{Content: truncate(content, robotContentLimit)},
	})
	if err != nil {
		return fmt.Errorf("序列化企业微信消息失败: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhook, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("向企业微信发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("企业微信处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

// truncate 按字节截断，不会截断在多字节字符的中间
func truncate(content string, limit int) string {
	if limit < 0 {
		panic("notification: limit 不能为负数")
	}
	if len(content) <= limit {
		return content
	}
	end := limit
	for end > 0 && !utf8.RuneStart(content[end]) {
		end--
	}
	return content[:end]
}
