package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/skillbridge/internal/bff"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/job"
	"github.com/ecodeclub/skillbridge/internal/notification"
	"github.com/ecodeclub/skillbridge/internal/pkg/middleware"
	"github.com/ecodeclub/skillbridge/internal/roadmap"
	"github.com/ecodeclub/skillbridge/internal/search"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	uh *user.Handler,
	sh *skill.Handler,
	ch *career.Handler,
	rh *roadmap.Handler,
	jh *job.Handler,
	ih *interactive.Handler,
	nh *notification.Handler,
	searchHdl *search.Handler,
	bh *bff.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "skillbridge.dev")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	uh.PublicRoutes(res.Engine)
	sh.PublicRoutes(res.Engine)
	ch.PublicRoutes(res.Engine)
	jh.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	bh.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	uh.PrivateRoutes(res.Engine)
	sh.PrivateRoutes(res.Engine)
	ch.PrivateRoutes(res.Engine)
	rh.PrivateRoutes(res.Engine)
	jh.PrivateRoutes(res.Engine)
	ih.PrivateRoutes(res.Engine)
	nh.PrivateRoutes(res.Engine)
	bh.PrivateRoutes(res.Engine)
	return res
}
