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

// Package pipeline 持有面试流程的唯一定义：轮次的顺序、是否必须以及评分上限。
// 其余模块只能引用 *Definition，不允许复制轮次列表。
package pipeline

import (
	"fmt"
	"strings"
)

const (
	MinScore = 0
	MaxScore = 5

	DefaultVersion = "v1"
)

// 默认的面试轮次，顺序即为门控顺序
const (
	PhoneInterview     = "Phone Interview"
	AptitudeTest       = "Aptitude Test"
	TechnicalTest      = "Technical Test"
	TechnicalInterview = "Technical Interview"
	ManagerRound       = "Manager Round"
	HRInterview        = "HR Interview"
	FinalInterview     = "Final Interview"
)

// Result 面试轮次的结果
type Result string

const (
	ResultPending Result = "Pending"
	ResultPass    Result = "Pass"
	ResultFail    Result = "Fail"
)

func (r Result) String() string {
	return string(r)
}

// IsFinal 只有 Pass 和 Fail 可以作为反馈结果
func (r Result) IsFinal() bool {
	return r == ResultPass || r == ResultFail
}

// RoundType 轮次描述
type RoundType struct {
	Name     string `yaml:"name"`
	Required bool   `yaml:"required"`
}

// Definition 带版本号的流程定义
type Definition struct {
	Version string
	Rounds  []RoundType
	index   map[string]int
}

// Default 返回 v1 版本的流程，七轮全部必须
func Default() *Definition {
	def, _ := New(DefaultVersion, []RoundType{
		{Name: PhoneInterview, Required: true},
		{Name: AptitudeTest, Required: true},
		{Name: TechnicalTest, Required: true},
		{Name: TechnicalInterview, Required: true},
		{Name: ManagerRound, Required: true},
		{Name: HRInterview, Required: true},
		{Name: FinalInterview, Required: true},
	})
	return def
}

func New(version string, rounds []RoundType) (*Definition, error) {
	if strings.TrimSpace(version) == "" {
		return nil, fmt.Errorf("流程版本号不能为空")
	}
	if len(rounds) == 0 {
		return nil, fmt.Errorf("流程 %s 没有任何轮次", version)
	}
	index := make(map[string]int, len(rounds))
	required := 0
	for i, r := range rounds {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("流程 %s 第 %d 轮名称为空", version, i+1)
		}
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("流程 %s 轮次重复: %s", version, name)
		}
		index[name] = i
		if r.Required {
			required++
		}
	}
	if required == 0 {
		return nil, fmt.Errorf("流程 %s 至少需要一轮必须通过的面试", version)
	}
	cp := make([]RoundType, len(rounds))
	copy(cp, rounds)
	return &Definition{Version: version, Rounds: cp, index: index}, nil
}

func (d *Definition) Lookup(name string) (RoundType, bool) {
	idx, ok := d.index[name]
	if !ok {
		return RoundType{}, false
	}
	return d.Rounds[idx], true
}

// Index 返回轮次在流程中的位置，不存在返回 -1
func (d *Definition) Index(name string) int {
	idx, ok := d.index[name]
	if !ok {
		return -1
	}
	return idx
}

// IsLast 是否为流程中最后一个必须轮次
func (d *Definition) IsLast(name string) bool {
	for i := len(d.Rounds) - 1; i >= 0; i-- {
		if d.Rounds[i].Required {
			return d.Rounds[i].Name == name
		}
	}
	return false
}

// RoundOutcome 门控只关心轮次类型和结果
type RoundOutcome struct {
	Type   string
	Result Result
}

// Summarize 把同一候选人的所有轮次按类型归并。
// 同类型只要有一轮 Fail 就是 Fail，否则有 Pass 即为 Pass。
func Summarize(outcomes []RoundOutcome) map[string]Result {
	res := make(map[string]Result, len(outcomes))
	for _, o := range outcomes {
		switch cur := res[o.Type]; {
		case cur == ResultFail:
		case o.Result == ResultFail:
			res[o.Type] = ResultFail
		case o.Result == ResultPass:
			res[o.Type] = ResultPass
		case cur == "":
			res[o.Type] = ResultPending
		}
	}
	return res
}

// NextStage 按流程顺序返回第一个尚未通过的必须轮次。
// 所有必须轮次都通过时返回 false。
func (d *Definition) NextStage(results map[string]Result) (RoundType, bool) {
	for _, r := range d.Rounds {
		if !r.Required {
			continue
		}
		if results[r.Name] != ResultPass {
			return r, true
		}
	}
	return RoundType{}, false
}

// Decision 门控结论
type Decision string

const (
	DecisionInProcess Decision = "InProcess"
	DecisionCompleted Decision = "Completed"
	DecisionRejected  Decision = "Rejected"
)

// Gate 任意一轮失败即淘汰，所有必须轮次通过即完成
func (d *Definition) Gate(results map[string]Result) Decision {
	for _, r := range results {
		if r == ResultFail {
			return DecisionRejected
		}
	}
	if _, ok := d.NextStage(results); !ok {
		return DecisionCompleted
	}
	return DecisionInProcess
}

// CheckSchedulable 检查某个轮次当前能否排期。
// 必须轮次只能是下一个待通过的轮次，已经通过的轮次不能再排；可选轮次不受顺序限制。
func (d *Definition) CheckSchedulable(name string, results map[string]Result) error {
	rt, ok := d.Lookup(name)
	if !ok {
		return &UnknownRoundError{Name: name, Version: d.Version}
	}
	if results[name] == ResultPass {
		return &OrderError{Round: name, Reason: "该轮次已经通过"}
	}
	if !rt.Required {
		return nil
	}
	next, ok := d.NextStage(results)
	if !ok {
		return &OrderError{Round: name, Reason: "所有必须轮次均已通过"}
	}
	if next.Name != name {
		return &OrderError{Round: name, Reason: fmt.Sprintf("需要先通过 %s", next.Name)}
	}
	return nil
}

// ClampScore 把分数限制在 [MinScore, MaxScore]
func ClampScore(score float64) float64 {
	switch {
	case score < MinScore:
		return MinScore
	case score > MaxScore:
		return MaxScore
	default:
		return score
	}
}

type UnknownRoundError struct {
	Name    string
	Version string
}

func (e *UnknownRoundError) Error() string {
	return fmt.Sprintf("流程 %s 中不存在轮次 %q", e.Version, e.Name)
}

type OrderError struct {
	Round  string
	Reason string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("轮次 %s 暂不能排期: %s", e.Round, e.Reason)
}
