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

package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/ecodeclub/hrportal/internal/pkg/bizerr"
)

// Resolver 简历、入职材料等文件只以引用（对象存储里的 key）的形式保存在业务表里，
// 需要展示时再解析成地址。
//
//go:generate mockgen -source=./resolver.go -package=docmocks -destination=../../mocks/resolver.mock.go -typed Resolver
type Resolver interface {
	URL(ctx context.Context, ref string) (string, error)
	// Validate 引用必须落在允许的目录下，不能包含 ..
	Validate(ref string) error
}

type Config struct {
	// BaseURL 存储桶的访问域名，比如 https://hr-1250000000.cos.ap-nanjing.myqcloud.com
	BaseURL  string   `yaml:"baseUrl"`
	Prefixes []string `yaml:"prefixes"`

	AppID     string `yaml:"appId"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	SecretID  string `yaml:"secretId"`
	SecretKey string `yaml:"secretKey"`
}

var _ Resolver = (*URLResolver)(nil)

type URLResolver struct {
	baseURL  string
	prefixes []string
}

func NewURLResolver(cfg Config) *URLResolver {
	return &URLResolver{
		baseURL:  cfg.BaseURL,
		prefixes: cfg.Prefixes,
	}
}

func (r *URLResolver) URL(ctx context.Context, ref string) (string, error) {
	if err := r.Validate(ref); err != nil {
		return "", err
	}
	return url.JoinPath(r.baseURL, ref)
}

func (r *URLResolver) Validate(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return bizerr.Validation("文档引用不能为空")
	}
	if strings.HasPrefix(ref, "/") || strings.Contains(ref, "..") {
		return bizerr.Validation("文档引用不合法: %s", ref)
	}
	if len(r.prefixes) == 0 {
		return nil
	}
	for _, p := range r.prefixes {
		if strings.HasPrefix(ref, p) {
			return nil
		}
	}
	return bizerr.Validation("文档引用不在允许的目录下: %s", ref)
}
