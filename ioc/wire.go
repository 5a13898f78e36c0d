//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/hrportal/internal/document"
	"github.com/ecodeclub/hrportal/internal/onboarding"
	"github.com/ecodeclub/hrportal/internal/recruitment"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

var collaboratorSet = wire.NewSet(
	InitPipeline,
	InitEmailService,
	InitSMSClient,
	InitNotificationSender,
	InitDirectoryWriter,
	document.InitModule,
	wire.FieldsOf(new(*document.Module), "Resolver"),
)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		collaboratorSet,
		recruitment.InitModule,
		onboarding.InitModule,
		InitSession,
		initGinxServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
