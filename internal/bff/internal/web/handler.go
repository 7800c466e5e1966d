package web

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/skillbridge/internal/career"
	"github.com/ecodeclub/skillbridge/internal/interactive"
	"github.com/ecodeclub/skillbridge/internal/job"
	"github.com/ecodeclub/skillbridge/internal/notification"
	"github.com/ecodeclub/skillbridge/internal/roadmap"
	"github.com/ecodeclub/skillbridge/internal/skill"
	"github.com/ecodeclub/skillbridge/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	userSvc     user.UserService
	skillSvc    skill.Service
	roleSvc     career.RoleService
	analysisSvc career.AnalysisService
	roadmapSvc  roadmap.Service
	jobSvc      job.Service
	intrSvc     interactive.InteractiveSvc
	notifySvc   notification.Service
	cache       ecache.Cache
	logger      *elog.Component
}

func NewHandler(
	userSvc user.UserService,
	skillSvc skill.Service,
	roleSvc career.RoleService,
	analysisSvc career.AnalysisService,
	roadmapSvc roadmap.Service,
	jobSvc job.Service,
	intrSvc interactive.InteractiveSvc,
	notifySvc notification.Service,
	ec ecache.Cache,
) *Handler {
	return &Handler{
		userSvc:     userSvc,
		skillSvc:    skillSvc,
		roleSvc:     roleSvc,
		analysisSvc: analysisSvc,
		roadmapSvc:  roadmapSvc,
		jobSvc:      jobSvc,
		intrSvc:     intrSvc,
		notifySvc:   notifySvc,
		cache: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "bff:",
		},
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/bff/statistics", ginx.W(h.Statistics))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/bff")
	g.POST("/dashboard", ginx.S(h.Dashboard))
	g.POST("/jobs/collected", ginx.BS[CollectedJobsReq](h.CollectedJobs))
}
