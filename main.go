package main

import (
	"context"
	"time"

	"github.com/ecodeclub/hrportal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/local.yaml
func main() {
	egoApp := ego.New()
	tp := ioc.InitZipkinTracer()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			elog.Error("关闭 tracer 失败", elog.FieldErr(err))
		}
	}()

	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}

	// offer 被接受之后由消费者创建入职记录，进程退出时一起停掉
	consumerCtx, stopConsumers := context.WithCancel(context.Background())
	defer stopConsumers()
	for _, c := range app.Consumers {
		c.Start(consumerCtx)
	}

	err = egoApp.Invoker().
		Serve(egovernor.Load("server.governor").Build(), app.Web).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("hrportal 退出", elog.FieldErr(err))
	}
}
