package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hrportal/internal/document"
	"github.com/ecodeclub/hrportal/internal/onboarding"
	"github.com/ecodeclub/hrportal/internal/pkg/middleware"
	"github.com/ecodeclub/hrportal/internal/recruitment"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	rm *recruitment.Module,
	om *onboarding.Module,
	dm *document.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	domain := econf.GetString("web.domain")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return domain != "" && strings.Contains(origin, domain)
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	rm.Hdl.PublicRoutes(res.Engine)
	om.Hdl.PublicRoutes(res.Engine)
	dm.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	rm.Hdl.PrivateRoutes(res.Engine)
	om.Hdl.PrivateRoutes(res.Engine)
	dm.Hdl.PrivateRoutes(res.Engine)
	return res
}
