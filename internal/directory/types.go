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

// Package directory 员工目录服务的客户端。入职完成后，员工信息写入目录服务，由目录服务分配员工编号。
package directory

import (
	"context"
	"errors"
)

var ErrRejected = errors.New("目录服务拒绝写入")

type ReportingHierarchy struct {
	HR           string `json:"hr"`
	FO           string `json:"fo"`
	ZonalHead    string `json:"zonalHead"`
	RegionalHead string `json:"regionalHead"`
	CEO          string `json:"ceo"`
}

type Employee struct {
	CandidateID     int64              `json:"candidateId"`
	OfferID         int64              `json:"offerId"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Position        string             `json:"position"`
	Zone            string             `json:"zone"`
	Region          string             `json:"region"`
	Salary          string             `json:"salary"`
	JoiningDate     string             `json:"joiningDate"`
	JoiningTime     string             `json:"joiningTime"`
	JoiningLocation string             `json:"joiningLocation"`
	Reporting       ReportingHierarchy `json:"reporting"`
}

// Writer 写入员工目录。
// key 是幂等键，同一个 key 重复写入必须返回同一个员工编号。
//
//go:generate mockgen -source=./types.go -package=directorymocks -destination=./mocks/directory.mock.go -typed Writer
type Writer interface {
	Write(ctx context.Context, key string, e Employee) (string, error)
}

type Config struct {
	// Provider 为 console 时不调用远程服务
	Provider string `yaml:"provider"`
	Addr     string `yaml:"addr"`
	Token    string `yaml:"token"`
	// MaxRetries 5xx 和网络错误的重试次数
	MaxRetries int32 `yaml:"maxRetries"`
}
