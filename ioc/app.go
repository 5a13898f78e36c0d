package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
)

type App struct {
	Web       *egin.Component
	Crons     []ecron.Ecron
	Consumers []Consumer
}

// Consumer 启动后在后台持续消费，ctx 取消时退出
type Consumer interface {
	Start(ctx context.Context)
}
