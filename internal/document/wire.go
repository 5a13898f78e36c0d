//go:build wireinject

package document

import (
	"github.com/ecodeclub/hrportal/internal/document/internal/service"
	"github.com/ecodeclub/hrportal/internal/document/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule() *Module {
	wire.Build(
		initConfig,
		service.NewURLResolver,
		wire.Bind(new(service.Resolver), new(*service.URLResolver)),
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("document", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
